package expr

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

var (
	// ErrSyntax is returned when an expression cannot be parsed.
	ErrSyntax = errors.New("syntax error")
	// ErrUnknownHelper is returned for calls to names with no binding.
	ErrUnknownHelper = errors.New("unknown helper")
	// ErrArgument is returned when arguments have the wrong count or type.
	ErrArgument = errors.New("invalid argument")
)

// Error attaches a position within the expression source to an error.
type Error struct {
	Pos lexer.Position
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %v", e.Pos.Line, e.Pos.Column, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errorAt(pos lexer.Position, err error) error {
	var existing *Error
	if errors.As(err, &existing) {
		return err
	}
	return &Error{Pos: pos, Err: err}
}
