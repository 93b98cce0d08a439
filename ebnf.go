package descent

import (
	"fmt"
	"strings"
)

// String returns the EBNF for the grammar.
//
// The start symbol comes first, followed by the remaining bound NonTerminals
// in declaration order. Unbound NonTerminals have no production.
func (g *Grammar) String() string {
	out := []string{}
	if g.start != nil && g.start.Bound() {
		out = append(out, production(g.start))
	}
	for _, nt := range g.nonTerminals {
		if nt == g.start || !nt.Bound() {
			continue
		}
		out = append(out, production(nt))
	}
	return strings.Join(out, "\n")
}

func production(nt *NonTerminal) string {
	if nt.rule == nil {
		return fmt.Sprintf("%s = .", nt.name)
	}
	return fmt.Sprintf("%s = %s .", nt.name, nt.rule)
}
