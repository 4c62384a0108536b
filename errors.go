package pamflet

import (
	"errors"
	"fmt"
)

// ErrUnexpectedState matches every *UnexpectedStateError. It reports a broken
// contract between tokenizer and parser, never a problem with the input.
var ErrUnexpectedState = errors.New("unexpected parser state")

// UnexpectedStateError describes an internal parser fault.
type UnexpectedStateError struct {
	State    string
	Expected string
	Actual   string
}

func (e *UnexpectedStateError) Error() string {
	return fmt.Sprintf("%v in %s: expected %s, got %s", ErrUnexpectedState, e.State, e.Expected, e.Actual)
}

func (e *UnexpectedStateError) Is(target error) bool {
	return target == ErrUnexpectedState
}

func unexpected(state parserMode, expected, actual string) error {
	return &UnexpectedStateError{
		State:    state.String(),
		Expected: expected,
		Actual:   actual,
	}
}

func describe(e Element) string {
	if e == nil {
		return "no element"
	}
	return string(e.Kind()) + " element"
}
