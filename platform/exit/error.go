package exit

import (
	"errors"
	"fmt"
	"strings"
)

// Error is a failure that carries the code the process should exit with.
type Error struct {
	Err    error
	Code   int
	Action []string
}

func (e *Error) Error() string {
	message := "failed to " + strings.Join(e.Action, " ")
	if e.Err == nil {
		return message
	}
	return fmt.Sprintf("%s: %s", message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code int, action ...string) *Error {
	return &Error{Code: code, Action: action}
}

// Wrap attaches action to err, keeping the code of any Error in err's chain.
func Wrap(err error, action ...string) *Error {
	return &Error{Err: err, Code: CodeOf(err), Action: action}
}

// CodeOf returns the code of the first Error in err's chain, CodeForFailed if there is
// none, or CodeForPass for a nil err.
func CodeOf(err error) int {
	if err == nil {
		return CodeForPass
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeForFailed
}
