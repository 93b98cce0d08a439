package descent

// Concat e2 onto e1.
//
// Operands are Expressions or string literals, which are converted with Lit.
// If e1 is a Concatenation that is not part of a bound rule, e2 is appended to
// it and e1 is returned, so that chains of Concat build a single flat
// sequence. If e1 is part of a bound rule, a new Concatenation holding a copy
// of its items followed by e2 is returned instead. Otherwise the result is a
// new Concatenation of [e1, e2].
func Concat(e1, e2 interface{}) *Concatenation {
	left, right := expr(e1), expr(e2)
	if c, ok := left.(*Concatenation); ok {
		if !c.sealed {
			return c.Append(right)
		}
		return &Concatenation{items: append(c.Items(), right)}
	}
	return &Concatenation{items: []Expression{left, right}}
}

// Or adds e2 as an alternative to e1.
//
// The flattening rules are the same as for Concat.
func Or(e1, e2 interface{}) *Alternation {
	left, right := expr(e1), expr(e2)
	if a, ok := left.(*Alternation); ok {
		if !a.sealed {
			return a.Append(right)
		}
		return &Alternation{alternatives: append(a.Alternatives(), right)}
	}
	return &Alternation{alternatives: []Expression{left, right}}
}

// Seq returns a new Concatenation of items.
func Seq(items ...interface{}) *Concatenation {
	out := &Concatenation{}
	for _, item := range items {
		out.Append(item)
	}
	return out
}

// Choice returns a new Alternation of alternatives.
func Choice(alternatives ...interface{}) *Alternation {
	out := &Alternation{}
	for _, alt := range alternatives {
		out.Append(alt)
	}
	return out
}

// Convert an operand to an Expression.
func expr(v interface{}) Expression {
	switch v := v.(type) {
	case Expression:
		return v
	case string:
		return Lit(v)
	}
	panicf("expected an Expression or string but got %T", v)
	return nil
}

// Seal every Concatenation and Alternation reachable from e without crossing
// a NonTerminal.
func seal(e Expression) {
	switch e := e.(type) {
	case *Concatenation:
		if e.sealed {
			return
		}
		e.sealed = true
		for _, item := range e.items {
			seal(item)
		}

	case *Alternation:
		if e.sealed {
			return
		}
		e.sealed = true
		for _, alt := range e.alternatives {
			seal(alt)
		}
	}
}
