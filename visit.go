package descent

type visitorFunc func(e Expression, next func() error) error

// Walk the expression graph from e, following NonTerminal rules.
//
// Each Expression is visited once, so cyclic rules terminate.
func visit(e Expression, visitor visitorFunc) error {
	return _visit(map[Expression]bool{}, e, visitor)
}

func _visit(seen map[Expression]bool, e Expression, visitor visitorFunc) error {
	if seen[e] {
		return nil
	}
	seen[e] = true
	return visitor(e, func() error {
		switch e := e.(type) {
		case *NonTerminal:
			if e.rule != nil {
				return _visit(seen, e.rule, visitor)
			}

		case *Alternation:
			for _, alt := range e.alternatives {
				if err := _visit(seen, alt, visitor); err != nil {
					return err
				}
			}

		case *Concatenation:
			for _, item := range e.items {
				if err := _visit(seen, item, visitor); err != nil {
					return err
				}
			}

		case *Terminal:

		default:
			panic("unsupported")
		}
		return nil
	})
}

// NonTerminals reachable from start, in the order they are discovered.
func reachable(start *NonTerminal) []*NonTerminal {
	out := []*NonTerminal{}
	_ = visit(start, func(e Expression, next func() error) error {
		if nt, ok := e.(*NonTerminal); ok {
			out = append(out, nt)
		}
		return next()
	})
	return out
}
