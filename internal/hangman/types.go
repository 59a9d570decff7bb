package hangman

// MaxMisses is the number of wrong guesses that loses the game.
const MaxMisses = 6

// Outcome is the result of an accepted guess.
type Outcome string

const (
	OutcomeHit  Outcome = "hit"
	OutcomeMiss Outcome = "miss"
)

// State is the coarse game state.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Reprompt texts for rejected guesses.
const (
	MsgInvalidGuess  = "Please enter a single letter."
	MsgRepeatedGuess = "You already guessed that letter."
	MsgGameOver      = "The game is already over."
)

// Game holds one hangman session. The zero value is not usable; call New.
type Game struct {
	word      string            // secret word, lowercase, never changes
	remaining map[rune]struct{} // letters of word not yet guessed
	guessed   map[rune]struct{} // every accepted guess, hit or miss
	misses    int               // 0..MaxMisses
}
