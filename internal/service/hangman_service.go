package service

import (
	"math/rand"

	"go.uber.org/zap"

	apperror "console-playground/internal/error"
	"console-playground/internal/hangman"
	"console-playground/internal/metrics"
	"console-playground/internal/words"
)

const (
	outcomeRejected = "rejected"
	resultAbandoned = "abandoned"
)

type hangmanService struct {
	rng     *rand.Rand
	metrics *metrics.Recorder // Can be nil
	logger  *zap.Logger
}

// NewHangmanService creates a hangman service that draws secret words with rng
func NewHangmanService(rng *rand.Rand, recorder *metrics.Recorder, logger *zap.Logger) HangmanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &hangmanService{
		rng:     rng,
		metrics: recorder,
		logger:  logger,
	}
}

// ------------------------------------------------------------------------------------------------------
func (s *hangmanService) NewGame() *hangman.Game {
	game := hangman.New(words.Pick(s.rng))
	s.logger.Debug("Game started", zap.Int("letters", game.Len()))
	return game
}

// ------------------------------------------------------------------------------------------------------
func (s *hangmanService) Guess(game *hangman.Game, raw string) (hangman.Outcome, error) {
	outcome, err := game.Guess(raw)
	if err != nil {
		s.metrics.ObserveGuess(outcomeRejected)
		s.logger.Debug("Guess rejected",
			zap.String("type", string(apperror.TypeOf(err))),
			zap.Error(err),
		)
		return "", err
	}

	s.metrics.ObserveGuess(string(outcome))
	s.logger.Debug("Guess accepted",
		zap.String("outcome", string(outcome)),
		zap.Int("misses", game.Misses()),
		zap.Int("remaining_letters", game.RemainingLetters()),
	)
	return outcome, nil
}

// ------------------------------------------------------------------------------------------------------
// Finish records the result; a game still in play counts as abandoned
func (s *hangmanService) Finish(game *hangman.Game) {
	result := string(game.State())
	if !game.Finished() {
		result = resultAbandoned
	}

	s.metrics.ObserveGame(result)
	s.logger.Info("Game finished",
		zap.String("result", result),
		zap.Int("misses", game.Misses()),
		zap.Int("guesses", len(game.Guessed())),
	)
}
