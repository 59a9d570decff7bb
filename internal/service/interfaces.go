package service

import (
	"console-playground/internal/hangman"
	"console-playground/internal/storage"
)

// ChatService defines the interface for chatbot operations
type ChatService interface {
	Respond(input string) Reply
	Transcript() []storage.Message
	Exchanges() int
}

// HangmanService defines the interface for running hangman games
type HangmanService interface {
	NewGame() *hangman.Game
	Guess(game *hangman.Game, raw string) (hangman.Outcome, error)
	Finish(game *hangman.Game)
}
