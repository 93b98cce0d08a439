package descent

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoStart is returned when recognition is attempted without a start symbol.
	ErrNoStart = errors.New("no start symbol")
	// ErrForeignNonTerminal is returned when a NonTerminal of one Grammar is
	// used as the start symbol of another.
	ErrForeignNonTerminal = errors.New("nonterminal belongs to another grammar")
)

// UnboundError is returned when a NonTerminal without a rule is reached.
type UnboundError struct {
	NonTerminal *NonTerminal
	// Path of NonTerminals leading to the unbound one, if known.
	Path []*NonTerminal
}

func (u *UnboundError) Error() string {
	msg := fmt.Sprintf("nonterminal %s has no rule", u.NonTerminal.name)
	if len(u.Path) > 1 {
		msg += " (via " + joinNames(u.Path, " > ") + ")"
	}
	return msg
}

// LeftRecursionError is returned for grammars where a NonTerminal can reach
// itself without consuming any input.
type LeftRecursionError struct {
	// Cycle of NonTerminals, starting from the first one found.
	Cycle []*NonTerminal
}

func (l *LeftRecursionError) Error() string {
	lines := make([]string, 0, len(l.Cycle))
	for _, nt := range l.Cycle {
		lines = append(lines, "  "+production(nt))
	}
	return "left recursion detected on\n\n" + strings.Join(lines, "\n")
}

// IsConfigError returns true if err reports a grammar authoring mistake
// rather than a failure to recognise input.
func IsConfigError(err error) bool {
	var (
		unbound *UnboundError
		left    *LeftRecursionError
	)
	return errors.Is(err, ErrNoStart) ||
		errors.Is(err, ErrForeignNonTerminal) ||
		errors.As(err, &unbound) ||
		errors.As(err, &left)
}

func joinNames(nts []*NonTerminal, sep string) string {
	names := make([]string, 0, len(nts))
	for _, nt := range nts {
		names = append(names, nt.name)
	}
	return strings.Join(names, sep)
}

func recoverToError(err *error) {
	if msg := recover(); msg != nil {
		switch msg := msg.(type) {
		case *UnboundError:
			*err = msg
		default:
			panic(msg)
		}
	}
}

// Error is the panic value used for misuse of the expression builders.
type Error string

func (e Error) Error() string { return string(e) }

func panicf(f string, args ...interface{}) {
	panic(Error(fmt.Sprintf(f, args...)))
}
