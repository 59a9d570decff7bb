package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  NewStateError("game is over", nil),
			want: "state_error: game is over",
		},
		{
			name: "with cause",
			err:  NewValidationError("Please enter a single letter.", ErrInvalidGuess),
			want: "validation_error: Please enter a single letter.: guess must be a single letter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_UnwrapsSentinel(t *testing.T) {
	err := fmt.Errorf("guess: %w", NewValidationError("You already guessed that letter.", ErrRepeatedGuess))

	if !errors.Is(err, ErrRepeatedGuess) {
		t.Errorf("expected errors.Is to find ErrRepeatedGuess in %v", err)
	}
	if !IsValidation(err) {
		t.Errorf("expected %v to be a validation error", err)
	}
	if got := Message(err); got != "You already guessed that letter." {
		t.Errorf("Message() = %q", got)
	}
}

func TestTypeOf_ForeignError(t *testing.T) {
	err := errors.New("boom")

	if got := TypeOf(err); got != ErrorTypeInternal {
		t.Errorf("TypeOf() = %q, want %q", got, ErrorTypeInternal)
	}
	if IsValidation(err) {
		t.Error("foreign error must not be a validation error")
	}
	if IsValidation(nil) {
		t.Error("nil must not be a validation error")
	}
	if got := Message(err); got != "boom" {
		t.Errorf("Message() = %q, want %q", got, "boom")
	}
}
