package error

import "errors"

var (
	ErrInvalidGuess   = errors.New("guess must be a single letter")
	ErrRepeatedGuess  = errors.New("letter already guessed")
	ErrGameOver       = errors.New("game is over")
	ErrInputClosed    = errors.New("input closed")
	ErrInvalidSetting = errors.New("invalid setting")
)
