package game

import (
	"errors"
	"fmt"
)

var (
	ErrTooShort    = errors.New("too short")
	ErrTooLong     = errors.New("too long")
	ErrNotAWord    = errors.New("not a word")
	ErrRoundOver   = errors.New("round is over")
	ErrBadSolution = errors.New("solution must be 5 letters a-z")
)

// ValidationError reports a rejected guess. The round is unchanged and the
// caller should ask for another guess.
type ValidationError struct {
	Guess string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid guess %q: %v", e.Guess, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a rejected-guess error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
