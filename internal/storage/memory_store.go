package storage

import (
	"sync"
)

const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// Message is one line of the chat transcript
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// MemoryStore keeps the session transcript in memory. Nothing outlives the process.
type MemoryStore struct {
	mu           sync.RWMutex
	messages     []Message
	maxExchanges int
}

// ------------------------------------------------------------------------------------------------------
// NewMemoryStore creates a transcript bounded to maxExchanges user/bot pairs; <= 0 means unbounded
func NewMemoryStore(maxExchanges int) *MemoryStore {
	return &MemoryStore{
		messages:     make([]Message, 0),
		maxExchanges: maxExchanges,
	}
}

// ------------------------------------------------------------------------------------------------------
func (s *MemoryStore) AddExchange(input, reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages,
		Message{Role: RoleUser, Content: input},
		Message{Role: RoleBot, Content: reply},
	)
	s.trimToMaxExchanges()
}

// ------------------------------------------------------------------------------------------------------
func (s *MemoryStore) GetMessages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Message, len(s.messages))
	copy(result, s.messages)
	return result
}

// ------------------------------------------------------------------------------------------------------
func (s *MemoryStore) Exchanges() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.messages) / 2
}

// ------------------------------------------------------------------------------------------------------
// Messages are always appended in pairs, so dropping from the front in steps of two keeps pairs intact
func (s *MemoryStore) trimToMaxExchanges() {
	if s.maxExchanges <= 0 {
		return
	}

	if excess := len(s.messages) - 2*s.maxExchanges; excess > 0 {
		kept := make([]Message, len(s.messages)-excess)
		copy(kept, s.messages[excess:])
		s.messages = kept
	}
}
