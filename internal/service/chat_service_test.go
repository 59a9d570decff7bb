package service

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"console-playground/internal/metrics"
	"console-playground/internal/storage"
)

// Mock message store for testing
type mockMessageStore struct {
	exchanges [][2]string
}

func (m *mockMessageStore) AddExchange(input, reply string) {
	m.exchanges = append(m.exchanges, [2]string{input, reply})
}

func (m *mockMessageStore) GetMessages() []storage.Message {
	out := make([]storage.Message, 0, 2*len(m.exchanges))
	for _, e := range m.exchanges {
		out = append(out,
			storage.Message{Role: storage.RoleUser, Content: e[0]},
			storage.Message{Role: storage.RoleBot, Content: e[1]},
		)
	}
	return out
}

func (m *mockMessageStore) Exchanges() int { return len(m.exchanges) }

func TestRespond(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantIntent Intent
		wantText   string
	}{
		{"hello", "hello", IntentGreeting, GreetingReply},
		{"hello padded uppercase", " HELLO ", IntentGreeting, GreetingReply},
		{"hi", "hi", IntentGreeting, GreetingReply},
		{"hi mixed case", "Hi", IntentGreeting, GreetingReply},
		{"how are you", "how are you", IntentWellbeing, WellbeingReply},
		{"how are you with tabs", "\tHow Are You\n", IntentWellbeing, WellbeingReply},
		{"bye", "bye", IntentFarewell, FarewellReply},
		{"goodbye", "GOODBYE", IntentFarewell, FarewellReply},
		{"quit", "quit", IntentQuit, QuitSentinel},
		{"quit padded", "  Quit  ", IntentQuit, QuitSentinel},
		{"unit separator stripped", "\x1fhello", IntentGreeting, GreetingReply},
		{"record separator stripped", "bye\x1e", IntentFarewell, FarewellReply},
		{"unknown", "what's the weather", IntentUnknown, FallbackReply},
		{"empty", "", IntentUnknown, FallbackReply},
		{"question mark breaks exact match", "how are you?", IntentUnknown, FallbackReply},
		{"inner spacing is significant", "how  are you", IntentUnknown, FallbackReply},
		{"prefix is not a match", "hello there", IntentUnknown, FallbackReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Respond(tt.input)
			if got.Intent != tt.wantIntent {
				t.Errorf("Respond(%q).Intent = %q, want %q", tt.input, got.Intent, tt.wantIntent)
			}
			if got.Text != tt.wantText {
				t.Errorf("Respond(%q).Text = %q, want %q", tt.input, got.Text, tt.wantText)
			}
			if got.Quit() != (tt.wantIntent == IntentQuit) {
				t.Errorf("Respond(%q).Quit() = %v", tt.input, got.Quit())
			}
		})
	}
}

func TestRespond_OnlyQuitIsSentinel(t *testing.T) {
	for _, input := range []string{"bye", "goodbye", "exit", "q"} {
		if Respond(input).Quit() {
			t.Errorf("Respond(%q) must not end the conversation", input)
		}
	}
}

func TestChatService_RecordsExchanges(t *testing.T) {
	store := &mockMessageStore{}
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)

	svc := NewChatService(store, rec, nil)

	svc.Respond(" Hello ")
	svc.Respond("nonsense")
	reply := svc.Respond("quit")

	if !reply.Quit() {
		t.Fatalf("Expected sentinel reply, got %+v", reply)
	}
	if svc.Exchanges() != 3 {
		t.Fatalf("Expected 3 exchanges, got %d", svc.Exchanges())
	}
	if store.exchanges[0] != [2]string{" Hello ", GreetingReply} {
		t.Errorf("Unexpected first exchange: %v", store.exchanges[0])
	}

	transcript := svc.Transcript()
	if len(transcript) != 6 || transcript[5].Content != QuitSentinel {
		t.Errorf("Unexpected transcript: %+v", transcript)
	}

	samples, err := metrics.Snapshot(reg)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	counts := map[string]float64{}
	for _, s := range samples {
		counts[s.Labels["intent"]] = s.Value
	}
	if counts["greeting"] != 1 || counts["unknown"] != 1 || counts["quit"] != 1 {
		t.Errorf("Unexpected reply counters: %v", counts)
	}
	n, err := testutil.GatherAndCount(reg, "chatbot_replies_total")
	if err != nil {
		t.Fatalf("GatherAndCount() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Expected 3 labelled series, got %d", n)
	}
}

func TestChatService_NilDependencies(t *testing.T) {
	svc := NewChatService(nil, nil, nil)

	if got := svc.Respond("hi"); got.Text != GreetingReply {
		t.Errorf("Respond(hi) = %+v", got)
	}
	if svc.Transcript() != nil {
		t.Error("Expected nil transcript without a store")
	}
	if svc.Exchanges() != 0 {
		t.Errorf("Exchanges() = %d, want 0 without a store", svc.Exchanges())
	}
}

func TestChatService_WithMemoryStore(t *testing.T) {
	svc := NewChatService(storage.NewMemoryStore(1), nil, nil)

	svc.Respond("hi")
	svc.Respond("bye")

	transcript := svc.Transcript()
	if len(transcript) != 2 {
		t.Fatalf("Expected the store bound to keep 1 exchange, got %+v", transcript)
	}
	if transcript[1].Content != FarewellReply {
		t.Errorf("Expected latest exchange kept, got %+v", transcript)
	}
}
