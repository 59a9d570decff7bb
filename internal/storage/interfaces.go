package storage

// MessageStore holds the transcript of one chat session
type MessageStore interface {
	AddExchange(input, reply string)
	GetMessages() []Message
	Exchanges() int
}
