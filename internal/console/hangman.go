package console

import (
	"context"

	"go.uber.org/zap"

	apperror "console-playground/internal/error"
	"console-playground/internal/hangman"
	"console-playground/internal/service"
)

const GuessPrompt = "Guess a letter: "

// RunHangman plays one game. It returns nil once the game is won or lost.
// A session ended early still reports the game to the service as finished.
func RunHangman(ctx context.Context, c *Console, games service.HangmanService, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	game := games.NewGame()
	defer games.Finish(game)

	c.Println("Welcome to Hangman! Guess the word one letter at a time.")
	c.Printf("Word has %d letters: %s\n", game.Len(), game.Placeholder())
	c.Printf("You have %d incorrect guesses allowed.\n\n", hangman.MaxMisses)

	for !game.Finished() {
		raw, err := c.ReadLine(ctx, GuessPrompt)
		if err != nil {
			logger.Debug("Hangman session ended", zap.Error(err))
			return err
		}

		outcome, err := games.Guess(game, raw)
		if err != nil {
			if !apperror.IsValidation(err) {
				return err
			}
			c.Println(apperror.Message(err) + "\n")
			continue
		}

		switch outcome {
		case hangman.OutcomeHit:
			c.Printf("Good guess! Current: %s\n\n", game.Masked())
		case hangman.OutcomeMiss:
			c.Printf("Wrong guess! %d incorrect guesses left.\n\n", game.RemainingMisses())
		}
	}

	if game.State() == hangman.StateWon {
		c.Printf("Congratulations! You guessed the word '%s'!\n", game.Word())
	} else {
		c.Printf("You lost! The word was '%s'.\n", game.Word())
	}
	return c.Err()
}
