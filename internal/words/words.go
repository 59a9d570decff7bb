// Package words holds the fixed list of secret words for hangman and the
// input normalisation shared by both games.
package words

import "math/rand"

// list is the complete word table. Adding a word means editing this literal.
var list = [...]string{"python", "hangman", "guessing", "letter", "simple"}

// Pick returns one word chosen uniformly with rng.
func Pick(rng *rand.Rand) string {
	return list[rng.Intn(len(list))]
}
