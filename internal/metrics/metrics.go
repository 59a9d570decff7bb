package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Recorder counts what happens during a console session.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	repliesTotal *prometheus.CounterVec
	guessesTotal *prometheus.CounterVec
	gamesTotal   *prometheus.CounterVec
}

// New creates the session counters and registers them with reg
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		repliesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatbot_replies_total",
				Help: "Total number of chatbot replies by matched intent",
			},
			[]string{"intent"},
		),
		guessesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hangman_guesses_total",
				Help: "Total number of hangman guesses by outcome",
			},
			[]string{"outcome"},
		),
		gamesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hangman_games_total",
				Help: "Total number of hangman games by result",
			},
			[]string{"result"},
		),
	}

	reg.MustRegister(r.repliesTotal, r.guessesTotal, r.gamesTotal)
	return r
}

func (r *Recorder) ObserveReply(intent string) {
	if r == nil {
		return
	}
	r.repliesTotal.WithLabelValues(intent).Inc()
}

func (r *Recorder) ObserveGuess(outcome string) {
	if r == nil {
		return
	}
	r.guessesTotal.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ObserveGame(result string) {
	if r == nil {
		return
	}
	r.gamesTotal.WithLabelValues(result).Inc()
}

// Sample is one counter value from a gathered registry
type Sample struct {
	Name   string
	Labels map[string]string
	Value  float64
}

// Snapshot flattens every counter in g, sorted by name. Used for the end-of-session summary.
func Snapshot(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}
			labels := make(map[string]string, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			out = append(out, Sample{
				Name:   mf.GetName(),
				Labels: labels,
				Value:  m.GetCounter().GetValue(),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// LogSnapshot writes every counter in g to logger at debug level
func LogSnapshot(logger *zap.Logger, g prometheus.Gatherer) {
	samples, err := Snapshot(g)
	if err != nil {
		logger.Warn("Failed to gather metrics", zap.Error(err))
		return
	}
	for _, s := range samples {
		logger.Debug("Metric",
			zap.String("name", s.Name),
			zap.Any("labels", s.Labels),
			zap.Float64("value", s.Value),
		)
	}
}
