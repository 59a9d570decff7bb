package hangman

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	apperror "console-playground/internal/error"
	"console-playground/internal/words"
)

// New starts a game for word. The word is lowercased.
func New(word string) *Game {
	word = cases.Lower(language.Und).String(word)

	remaining := make(map[rune]struct{})
	for _, r := range word {
		remaining[r] = struct{}{}
	}

	return &Game{
		word:      word,
		remaining: remaining,
		guessed:   make(map[rune]struct{}),
	}
}

// ParseLetter normalises raw input and accepts exactly one letter.
func ParseLetter(raw string) (rune, error) {
	s := words.Normalize(raw)
	if utf8.RuneCountInString(s) != 1 {
		return 0, apperror.NewValidationError(MsgInvalidGuess, apperror.ErrInvalidGuess)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) {
		return 0, apperror.NewValidationError(MsgInvalidGuess, apperror.ErrInvalidGuess)
	}
	return r, nil
}

// Guess validates raw and applies it.
//
// Rejected guesses (not one letter, already guessed, game over) return an
// *apperror.AppError and leave the game untouched.
func (g *Game) Guess(raw string) (Outcome, error) {
	if g.State() != StatePlaying {
		return "", apperror.NewStateError(MsgGameOver, apperror.ErrGameOver)
	}

	letter, err := ParseLetter(raw)
	if err != nil {
		return "", err
	}
	if _, seen := g.guessed[letter]; seen {
		return "", apperror.NewValidationError(MsgRepeatedGuess, apperror.ErrRepeatedGuess)
	}

	g.guessed[letter] = struct{}{}

	if _, ok := g.remaining[letter]; ok {
		delete(g.remaining, letter)
		return OutcomeHit, nil
	}

	g.misses++
	return OutcomeMiss, nil
}

// State reports playing, won or lost. Winning is checked first, matching the
// loop condition that stops as soon as either limit is hit.
func (g *Game) State() State {
	switch {
	case len(g.remaining) == 0:
		return StateWon
	case g.misses >= MaxMisses:
		return StateLost
	default:
		return StatePlaying
	}
}

func (g *Game) Finished() bool { return g.State() != StatePlaying }

func (g *Game) Word() string { return g.word }

func (g *Game) Misses() int { return g.misses }

// RemainingMisses is how many more wrong guesses are allowed.
func (g *Game) RemainingMisses() int { return MaxMisses - g.misses }

// RemainingLetters is the number of distinct letters still hidden.
func (g *Game) RemainingLetters() int { return len(g.remaining) }

// Guessed returns the accepted guesses in alphabetical order.
func (g *Game) Guessed() []rune {
	out := make([]rune, 0, len(g.guessed))
	for r := range g.guessed {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Masked renders the word with unguessed letters as "_", space separated: "p _ t _ o _".
func (g *Game) Masked() string {
	parts := make([]string, 0, len(g.word))
	for _, r := range g.word {
		if _, ok := g.guessed[r]; ok {
			parts = append(parts, string(r))
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

// Placeholder is the opening banner form: " _ " once per letter.
func (g *Game) Placeholder() string {
	return strings.Repeat(" _ ", utf8.RuneCountInString(g.word))
}

// Len is the word length in letters.
func (g *Game) Len() int { return utf8.RuneCountInString(g.word) }
