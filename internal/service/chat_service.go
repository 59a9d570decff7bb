package service

import (
	"go.uber.org/zap"

	"console-playground/internal/metrics"
	"console-playground/internal/storage"
	"console-playground/internal/words"
)

// Intent names which table entry an input matched
type Intent string

const (
	IntentGreeting  Intent = "greeting"
	IntentWellbeing Intent = "wellbeing"
	IntentFarewell  Intent = "farewell"
	IntentQuit      Intent = "quit"
	IntentUnknown   Intent = "unknown"
)

const (
	GreetingReply  = "Hi! How can I help you today?"
	WellbeingReply = "I'm fine, thanks! How about you?"
	FarewellReply  = "Goodbye! Have a great day!"
	FallbackReply  = "Sorry, I don't understand that. Try 'hello', 'how are you', or 'bye'."

	// QuitSentinel is the reply that tells the caller to stop the loop
	QuitSentinel = "quit"
)

// Reply is a canned chatbot answer
type Reply struct {
	Intent Intent
	Text   string
}

// Quit reports whether this is the sentinel reply
func (r Reply) Quit() bool {
	return r.Intent == IntentQuit
}

// replies is the complete response table, keyed by normalized input
var replies = map[string]Reply{
	"hello":       {Intent: IntentGreeting, Text: GreetingReply},
	"hi":          {Intent: IntentGreeting, Text: GreetingReply},
	"how are you": {Intent: IntentWellbeing, Text: WellbeingReply},
	"bye":         {Intent: IntentFarewell, Text: FarewellReply},
	"goodbye":     {Intent: IntentFarewell, Text: FarewellReply},
	"quit":        {Intent: IntentQuit, Text: QuitSentinel},
}

// ------------------------------------------------------------------------------------------------------
// Respond maps raw input to its fixed reply. It has no side effects.
func Respond(input string) Reply {
	if reply, ok := replies[words.Normalize(input)]; ok {
		return reply
	}
	return Reply{Intent: IntentUnknown, Text: FallbackReply}
}

// chatService records each exchange around the pure Respond
type chatService struct {
	messageStore storage.MessageStore // Can be nil
	metrics      *metrics.Recorder    // Can be nil
	logger       *zap.Logger
}

// NewChatService creates a new chat service with injected dependencies
func NewChatService(
	messageStore storage.MessageStore,
	recorder *metrics.Recorder,
	logger *zap.Logger,
) ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &chatService{
		messageStore: messageStore,
		metrics:      recorder,
		logger:       logger,
	}
}

// ------------------------------------------------------------------------------------------------------
func (s *chatService) Respond(input string) Reply {
	reply := Respond(input)

	if s.messageStore != nil {
		s.messageStore.AddExchange(input, reply.Text)
	}
	s.metrics.ObserveReply(string(reply.Intent))

	s.logger.Debug("Chat reply",
		zap.String("intent", string(reply.Intent)),
		zap.Int("input_len", len(input)),
	)

	return reply
}

// ------------------------------------------------------------------------------------------------------
func (s *chatService) Transcript() []storage.Message {
	if s.messageStore == nil {
		return nil
	}
	return s.messageStore.GetMessages()
}

// ------------------------------------------------------------------------------------------------------
func (s *chatService) Exchanges() int {
	if s.messageStore == nil {
		return 0
	}
	return s.messageStore.Exchanges()
}
