package descent_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/descent"
)

func mustParse(t *testing.T, g *descent.Grammar, input string) bool {
	t.Helper()
	ok, err := g.Parse(input)
	require.NoError(t, err)
	return ok
}

// S = "a" S | "" .
func repeatGrammar(t *testing.T, options ...descent.Option) *descent.Grammar {
	t.Helper()
	g, err := descent.New(options...)
	require.NoError(t, err)
	s := g.CreateNonTerminal()
	s.Bind(descent.Or(descent.Concat("a", s), ""))
	return g
}

func TestParseRecursiveRule(t *testing.T) {
	g := repeatGrammar(t)
	require.True(t, mustParse(t, g, "aaa"))
	require.True(t, mustParse(t, g, ""))
	require.False(t, mustParse(t, g, "aab"))
	require.False(t, mustParse(t, g, "b"))
}

func TestParseSingleTerminal(t *testing.T) {
	g := descent.MustNew()
	g.CreateNonTerminal().Bind("x")
	require.True(t, mustParse(t, g, "x"))
	require.False(t, mustParse(t, g, "y"))
	require.False(t, mustParse(t, g, ""))
	require.False(t, mustParse(t, g, "xx"))
}

func TestParseOrderedChoice(t *testing.T) {
	g := descent.MustNew()
	g.CreateNonTerminal().Bind(descent.Or("a", "ab"))

	n, ok, err := g.Match("ab")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, n)

	// The first alternative commits, so the whole input is not consumed.
	require.False(t, mustParse(t, g, "ab"))
	require.True(t, mustParse(t, g, "a"))
}

func TestParseAllowTrailing(t *testing.T) {
	g := descent.MustNew(descent.AllowTrailing())
	g.CreateNonTerminal().Bind(descent.Or("a", "ab"))
	require.True(t, mustParse(t, g, "ab"))
	require.True(t, mustParse(t, g, "a and more"))
	require.False(t, mustParse(t, g, "b"))

	g = repeatGrammar(t, descent.AllowTrailing())
	require.True(t, mustParse(t, g, "aab"))
}

func TestMatchFailure(t *testing.T) {
	g := descent.MustNew()
	g.CreateNonTerminal().Bind("x")
	n, ok, err := g.Match("y")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 0, n)
}

func TestParseUnboundStart(t *testing.T) {
	g := descent.MustNew()
	s := g.CreateNonTerminal()
	ok, err := g.Parse("anything")
	require.False(t, ok)
	var unbound *descent.UnboundError
	require.True(t, errors.As(err, &unbound))
	require.True(t, unbound.NonTerminal == s)
	require.True(t, descent.IsConfigError(err))
	require.EqualError(t, err, "nonterminal N0 has no rule")
}

func TestParseUnboundReachedThroughRules(t *testing.T) {
	g := descent.MustNew()
	s := g.Define("S")
	a := g.Define("A")
	b := g.Define("B")
	s.Bind(descent.Or("x", descent.Concat("y", a)))
	a.Bind(descent.Concat("z", b))

	// B is never reached when the first alternative matches.
	require.True(t, mustParse(t, g, "x"))

	_, err := g.Parse("yz")
	require.EqualError(t, err, "nonterminal B has no rule (via S > A > B)")
}

func TestParseNoStart(t *testing.T) {
	g := descent.MustNew()
	ok, err := g.Parse("anything")
	require.False(t, ok)
	require.True(t, errors.Is(err, descent.ErrNoStart))
	require.True(t, descent.IsConfigError(err))

	g.CreateNonTerminal().Bind("a")
	require.NoError(t, g.SetStart(nil))
	_, _, err = g.Match("a")
	require.True(t, errors.Is(err, descent.ErrNoStart))
}

func TestDefaultStartIsFirstNonTerminal(t *testing.T) {
	g := descent.MustNew()
	first := g.CreateNonTerminal()
	g.CreateNonTerminal()
	require.True(t, g.Start() == first)
}

func TestSetStart(t *testing.T) {
	g := descent.MustNew()
	a := g.Define("A").Bind("a")
	b := g.Define("B").Bind("b")
	require.True(t, g.Start() == a)
	require.NoError(t, g.SetStart(b))
	require.True(t, mustParse(t, g, "b"))
	require.False(t, mustParse(t, g, "a"))
}

func TestSetStartForeign(t *testing.T) {
	g := descent.MustNew()
	other := descent.MustNew()
	nt := other.CreateNonTerminal()
	err := g.SetStart(nt)
	require.True(t, errors.Is(err, descent.ErrForeignNonTerminal))
	require.True(t, descent.IsConfigError(err))
	require.Nil(t, g.Start())
}

func TestDefineAndLookup(t *testing.T) {
	g := descent.MustNew()
	expr := g.Define("Expr")
	require.True(t, g.Define("Expr") == expr)
	require.True(t, g.Lookup("Expr") == expr)
	require.Nil(t, g.Lookup("Missing"))
	require.Equal(t, "Expr", expr.Name())
	require.True(t, expr.Grammar() == g)

	n := g.CreateNonTerminal()
	require.Equal(t, "N1", n.Name())
	require.Len(t, g.NonTerminals(), 2)
}

func TestParseMutualRecursion(t *testing.T) {
	// Balanced parentheses.
	g := descent.MustNew()
	list := g.Define("List")
	item := g.Define("Item")
	list.Bind(descent.Or(descent.Concat(item, list), ""))
	item.Bind(descent.Seq("(", list, ")"))

	for input, expected := range map[string]bool{
		"":         true,
		"()":       true,
		"(())()":   true,
		"((()))()": true,
		"(":        false,
		"())":      false,
		")(":       false,
	} {
		require.Equal(t, expected, mustParse(t, g, input), "%q", input)
	}
}

func TestParseBacktracksIntoLaterAlternative(t *testing.T) {
	g := descent.MustNew()
	s := g.Define("S")
	s.Bind(descent.Choice(descent.Seq("a", "b", "c"), descent.Seq("a", "b", "d"), "a"))
	require.True(t, mustParse(t, g, "abd"))
	require.True(t, mustParse(t, g, "abc"))
	require.True(t, mustParse(t, g, "a"))
	require.False(t, mustParse(t, g, "ab"))
}

func TestParseConcurrently(t *testing.T) {
	g := repeatGrammar(t)
	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := ""
			for j := 0; j < i*10; j++ {
				input += "a"
			}
			ok, err := g.Parse(input)
			if err != nil || !ok {
				t.Errorf("failed to recognise %q: %v", input, err)
			}
		}(i)
	}
	wg.Wait()
}
