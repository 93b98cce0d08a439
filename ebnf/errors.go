package ebnf

import (
	"fmt"
	"text/scanner"
)

// Error in an EBNF grammar that ebnf.Verify does not catch.
type Error struct {
	Message string
	Pos     scanner.Position
}

func errorf(pos scanner.Position, format string, args ...interface{}) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}
