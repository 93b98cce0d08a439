package descent

// A Production is a plain snapshot of a NonTerminal and its rule, suitable for
// dumping.
type Production struct {
	Name         string
	Bound        bool
	Alternatives []string
}

// Productions of every declared NonTerminal, in declaration order.
func (g *Grammar) Productions() []Production {
	out := make([]Production, 0, len(g.nonTerminals))
	for _, nt := range g.nonTerminals {
		p := Production{Name: nt.name, Bound: nt.rule != nil}
		if nt.rule != nil {
			for _, alt := range nt.rule.alternatives {
				p.Alternatives = append(p.Alternatives, alt.String())
			}
		}
		out = append(out, p)
	}
	return out
}
