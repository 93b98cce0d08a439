// Package ebnf loads grammars written in the EBNF notation of
// "golang.org/x/exp/ebnf" into a descent.Grammar.
//
// Each production becomes a NonTerminal of the same name, and the
// constructs are translated as follows:
//
//     a | b      Alternation, tried in order
//     a b        Concatenation
//     ( a )      a
//     [ a ]      a | ""
//     { a }      a fresh NonTerminal R = a R | ""
//     "a" … "z"  an Alternation of every single rune in the range
//     "lit"      Terminal
//
// The grammar must pass ebnf.Verify: every referenced production must exist
// and every production must be reachable from the start production.
//
// Here's a grammar for comma separated identifiers:
//
// 		List  = Ident { "," Ident } .
//		Ident = alpha { alpha | digit } .
//		alpha = "a" … "z" | "A" … "Z" | "_" .
//		digit = "0" … "9" .
package ebnf

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"

	"github.com/alecthomas/descent"
)

// Ranges spanning more runes than this are rejected.
const maxRange = 1 << 16

type loader struct {
	start   string
	options []descent.Option
	grammar *descent.Grammar
	fresh   int
}

// New loads a Grammar from EBNF source.
func New(grammar string, options ...Option) (*descent.Grammar, error) {
	return Parse("<grammar>", strings.NewReader(grammar), options...)
}

// Parse loads a Grammar from EBNF read from r.
//
// The start symbol is the first production in the source unless the Start
// option is given.
func Parse(filename string, r io.Reader, options ...Option) (g *descent.Grammar, err error) {
	l := &loader{}
	for _, option := range options {
		if err = option(l); err != nil {
			return nil, err
		}
	}
	ast, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	productions := make([]*ebnf.Production, 0, len(ast))
	for _, production := range ast {
		productions = append(productions, production)
	}
	if len(productions) == 0 {
		return nil, fmt.Errorf("%s: no productions", filename)
	}
	sort.Slice(productions, func(i, j int) bool {
		return productions[i].Pos().Offset < productions[j].Pos().Offset
	})
	start := l.start
	if start == "" {
		start = productions[0].Name.String
	}
	if err = ebnf.Verify(ast, start); err != nil {
		return nil, err
	}

	l.grammar, err = descent.New(l.options...)
	if err != nil {
		return nil, err
	}
	// Declare everything up front so rules can refer forward.
	for _, production := range productions {
		l.grammar.Define(production.Name.String)
	}
	if err = l.grammar.SetStart(l.grammar.Lookup(start)); err != nil {
		return nil, err
	}

	defer func() {
		if msg := recover(); msg != nil {
			if perr, ok := msg.(*Error); ok {
				g, err = nil, perr
				return
			}
			panic(msg)
		}
	}()
	for _, production := range productions {
		name := production.Name.String
		l.grammar.Lookup(name).Bind(l.translate(name, production.Expr))
	}
	return l.grammar, nil
}

func (l *loader) translate(name string, expr ebnf.Expression) descent.Expression {
	switch n := expr.(type) {
	case nil:
		return descent.Lambda

	case ebnf.Alternative:
		out := descent.Choice()
		for _, alt := range n {
			out.Append(l.translate(name, alt))
		}
		return out

	case ebnf.Sequence:
		out := descent.Seq()
		for _, item := range n {
			out.Append(l.translate(name, item))
		}
		return out

	case *ebnf.Group:
		return l.translate(name, n.Body)

	case *ebnf.Name:
		return l.grammar.Lookup(n.String)

	case *ebnf.Token:
		return descent.Lit(n.String)

	case *ebnf.Option:
		return descent.Or(l.translate(name, n.Body), descent.Lambda)

	case *ebnf.Repetition:
		rep := l.grammar.Define(l.freshName(name))
		rep.Bind(descent.Or(descent.Concat(l.translate(name, n.Body), rep), descent.Lambda))
		return rep

	case *ebnf.Range:
		begin, _ := utf8.DecodeRuneInString(n.Begin.String)
		end, _ := utf8.DecodeRuneInString(n.End.String)
		if end-begin >= maxRange {
			panic(errorf(n.Pos(), "%s: range %q … %q spans more than %d runes", name, begin, end, maxRange))
		}
		out := descent.Choice()
		for rn := begin; rn <= end; rn++ {
			out.Append(string(rn))
		}
		return out
	}
	panic(errorf(expr.Pos(), "%s: unsupported EBNF expression %T", name, expr))
}

// A name for a synthesised NonTerminal that does not clash with a production.
func (l *loader) freshName(name string) string {
	for {
		l.fresh++
		candidate := fmt.Sprintf("%s_%d", name, l.fresh)
		if l.grammar.Lookup(candidate) == nil {
			return candidate
		}
	}
}
