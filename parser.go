package descent

import (
	"fmt"
	"io"
)

// A Grammar owns a set of NonTerminals and recognises input from its start
// symbol.
//
// A Grammar holds no recognition state, so Parse and Match may be called
// concurrently as long as the grammar is not being modified at the same time.
type Grammar struct {
	nonTerminals  []*NonTerminal
	names         map[string]*NonTerminal
	start         *NonTerminal
	trace         io.Writer
	allowTrailing bool
}

// New creates an empty Grammar.
func New(options ...Option) (*Grammar, error) {
	g := &Grammar{names: map[string]*NonTerminal{}}
	for _, option := range options {
		if err := option(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// MustNew creates an empty Grammar or panics.
func MustNew(options ...Option) *Grammar {
	g, err := New(options...)
	if err != nil {
		panic(err)
	}
	return g
}

// CreateNonTerminal declares a new, automatically named, NonTerminal.
//
// The first NonTerminal declared becomes the start symbol unless one has
// already been set.
func (g *Grammar) CreateNonTerminal() *NonTerminal {
	return g.declare(fmt.Sprintf("N%d", len(g.nonTerminals)))
}

// Define returns the NonTerminal called name, declaring it if necessary.
func (g *Grammar) Define(name string) *NonTerminal {
	if nt, ok := g.names[name]; ok {
		return nt
	}
	return g.declare(name)
}

func (g *Grammar) declare(name string) *NonTerminal {
	nt := &NonTerminal{grammar: g, name: name}
	g.nonTerminals = append(g.nonTerminals, nt)
	if _, ok := g.names[name]; !ok {
		g.names[name] = nt
	}
	if g.start == nil {
		g.start = nt
	}
	return nt
}

// Lookup a NonTerminal by name. Returns nil if there is none.
func (g *Grammar) Lookup(name string) *NonTerminal {
	return g.names[name]
}

// NonTerminals in declaration order.
func (g *Grammar) NonTerminals() []*NonTerminal {
	return append([]*NonTerminal(nil), g.nonTerminals...)
}

// Start symbol, or nil.
func (g *Grammar) Start() *NonTerminal {
	return g.start
}

// SetStart sets the start symbol.
//
// nt must have been declared by this Grammar. A nil nt clears the start symbol.
func (g *Grammar) SetStart(nt *NonTerminal) error {
	if nt != nil && nt.grammar != g {
		return fmt.Errorf("%s: %w", nt.name, ErrForeignNonTerminal)
	}
	g.start = nt
	return nil
}

// Parse returns true if the whole of input is recognised from the start
// symbol.
//
// With the AllowTrailing option a recognised prefix is sufficient.
//
// Configuration errors, such as a missing start symbol, an unbound
// NonTerminal or left recursion, are returned as errors and never reported as
// a false result.
func (g *Grammar) Parse(input string) (bool, error) {
	n, ok, err := g.Match(input)
	if err != nil || !ok {
		return false, err
	}
	return g.allowTrailing || n == len(input), nil
}

// Match recognises a prefix of input from the start symbol and returns its
// length in bytes.
func (g *Grammar) Match(input string) (n int, ok bool, err error) {
	if g.start == nil {
		return 0, false, ErrNoStart
	}
	if err := g.checkLeftRecursion(); err != nil {
		return 0, false, err
	}
	ctx := newParseContext(input, g.trace)
	defer recoverToError(&err)
	if !g.start.match(ctx) {
		return 0, false, nil
	}
	return ctx.cursor, true, nil
}
