package descent

import (
	"fmt"
	"strings"
)

// An Expression in a grammar.
//
// Matching an Expression attempts to recognise a prefix of the remaining input
// at the current cursor. On success the cursor is left just past the prefix.
type Expression interface {
	// Match at the cursor of ctx.
	match(ctx *parseContext) bool
	// String renders the expression in EBNF notation.
	String() string
}

// Lambda is the empty Terminal. It always matches and never consumes input.
var Lambda = &Terminal{}

// A Terminal matches a fixed literal.
type Terminal struct {
	value string
}

// Lit returns a Terminal matching s.
//
// The empty string always yields Lambda.
func Lit(s string) *Terminal {
	if s == "" {
		return Lambda
	}
	return &Terminal{value: s}
}

// Value of the literal.
func (t *Terminal) Value() string { return t.value }

func (t *Terminal) String() string { return fmt.Sprintf("%q", t.value) }

func (t *Terminal) match(ctx *parseContext) bool {
	ok := strings.HasPrefix(ctx.remaining(), t.value)
	ctx.tracef("%q %s %s", ctx.peek(), t, outcome(ok))
	if ok {
		ctx.advance(len(t.value))
	}
	return ok
}

// A Concatenation matches each of its items in order.
//
// Items that matched before a failing item are not rolled back. The enclosing
// Alternation is responsible for restoring the cursor.
type Concatenation struct {
	items  []Expression
	sealed bool
}

// Items in match order.
func (c *Concatenation) Items() []Expression {
	return append([]Expression(nil), c.items...)
}

// Append an Expression or string literal to the sequence.
//
// Panics if the Concatenation is part of a bound rule.
func (c *Concatenation) Append(e interface{}) *Concatenation {
	if c.sealed {
		panicf("cannot append to %s: it is part of a bound rule", c)
	}
	next := expr(e)
	if next == Expression(c) {
		panicf("cannot append %s to itself", c)
	}
	c.items = append(c.items, next)
	return c
}

func (c *Concatenation) String() string {
	out := make([]string, 0, len(c.items))
	for _, item := range c.items {
		s := item.String()
		if a, ok := item.(*Alternation); ok && len(a.alternatives) > 1 {
			s = "(" + s + ")"
		}
		out = append(out, s)
	}
	return strings.Join(out, " ")
}

func (c *Concatenation) match(ctx *parseContext) bool {
	for _, item := range c.items {
		if !item.match(ctx) {
			return false
		}
	}
	return true
}

// An Alternation matches the first of its alternatives, in order, that
// matches at the cursor. It is ordered choice, not longest match.
type Alternation struct {
	alternatives []Expression
	sealed       bool
}

// Alternatives in the order they are tried.
func (a *Alternation) Alternatives() []Expression {
	return append([]Expression(nil), a.alternatives...)
}

// Append an Expression or string literal as a further alternative.
//
// Panics if the Alternation is part of a bound rule.
func (a *Alternation) Append(e interface{}) *Alternation {
	if a.sealed {
		panicf("cannot append to %s: it is part of a bound rule", a)
	}
	next := expr(e)
	if next == Expression(a) {
		panicf("cannot append %s to itself", a)
	}
	a.alternatives = append(a.alternatives, next)
	return a
}

func (a *Alternation) String() string {
	out := make([]string, 0, len(a.alternatives))
	for _, alt := range a.alternatives {
		s := alt.String()
		if len(a.alternatives) > 1 {
			switch alt := alt.(type) {
			case *Concatenation:
				if len(alt.items) > 1 {
					s = "(" + s + ")"
				}
			case *Alternation:
				if len(alt.alternatives) > 1 {
					s = "(" + s + ")"
				}
			}
		}
		out = append(out, s)
	}
	return strings.Join(out, " | ")
}

func (a *Alternation) match(ctx *parseContext) bool {
	mark := ctx.cursor
	for _, alt := range a.alternatives {
		if alt.match(ctx) {
			return true
		}
		ctx.rewind(mark)
	}
	return false
}

// A NonTerminal is a named grammar symbol whose meaning is given by its rule.
//
// NonTerminals are created by a Grammar and may appear in their own rule.
type NonTerminal struct {
	grammar *Grammar
	name    string
	rule    *Alternation
}

// Name of the NonTerminal.
func (n *NonTerminal) Name() string { return n.name }

// Grammar that declared the NonTerminal.
func (n *NonTerminal) Grammar() *Grammar { return n.grammar }

// Rule bound to the NonTerminal, or nil.
func (n *NonTerminal) Rule() *Alternation { return n.rule }

// Bound returns true if a rule has been bound.
func (n *NonTerminal) Bound() bool { return n.rule != nil }

// Bind e as the rule of the NonTerminal, replacing any previous rule.
//
// An *Alternation becomes the rule as is. Any other Expression, or a string
// literal, is wrapped in a single-alternative Alternation. Every
// Concatenation and Alternation in the rule is sealed against further
// appends.
func (n *NonTerminal) Bind(e interface{}) *NonTerminal {
	x := expr(e)
	rule, ok := x.(*Alternation)
	if !ok {
		rule = &Alternation{alternatives: []Expression{x}}
	}
	seal(rule)
	n.rule = rule
	return n
}

func (n *NonTerminal) String() string { return n.name }

func (n *NonTerminal) match(ctx *parseContext) bool {
	ctx.tracef("%q %s", ctx.peek(), n.name)
	ctx.push(n)
	if n.rule == nil {
		panic(&UnboundError{NonTerminal: n, Path: ctx.path()})
	}
	ok := n.rule.match(ctx)
	ctx.pop()
	ctx.tracef("%s %s", n.name, outcome(ok))
	return ok
}
