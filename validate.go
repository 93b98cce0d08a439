package descent

// Validate the grammar reachable from the start symbol.
//
// It reports a missing start symbol, unbound NonTerminals and left recursion.
// Parse performs the same checks lazily: unbound NonTerminals are only an
// error there if recognition actually reaches them.
func (g *Grammar) Validate() error {
	if g.start == nil {
		return ErrNoStart
	}
	for _, nt := range reachable(g.start) {
		if nt.rule == nil {
			return &UnboundError{NonTerminal: nt}
		}
	}
	return g.checkLeftRecursion()
}

// Find a NonTerminal that can reach itself without consuming input.
//
// Recursive descent over such a grammar would never terminate.
func (g *Grammar) checkLeftRecursion() error {
	nts := reachable(g.start)
	empty := nullable(nts)

	const (
		unvisited = iota
		active
		done
	)
	state := map[*NonTerminal]int{}
	stack := []*NonTerminal{}
	var cycle []*NonTerminal

	var walk func(nt *NonTerminal) bool
	walk = func(nt *NonTerminal) bool {
		state[nt] = active
		stack = append(stack, nt)
		found := false
		if nt.rule == nil {
			stack = stack[:len(stack)-1]
			state[nt] = done
			return false
		}
		leftCorners(nt.rule, empty, func(next *NonTerminal) bool {
			switch state[next] {
			case active:
				for i, frame := range stack {
					if frame == next {
						cycle = append([]*NonTerminal(nil), stack[i:]...)
						break
					}
				}
				found = true
			case unvisited:
				found = walk(next)
			}
			return !found
		})
		stack = stack[:len(stack)-1]
		state[nt] = done
		return found
	}

	for _, nt := range nts {
		if state[nt] == unvisited && walk(nt) {
			return &LeftRecursionError{Cycle: cycle}
		}
	}
	return nil
}

// Compute the set of bound NonTerminals that can match without consuming input.
func nullable(nts []*NonTerminal) map[*NonTerminal]bool {
	out := map[*NonTerminal]bool{}
	for changed := true; changed; {
		changed = false
		for _, nt := range nts {
			if !out[nt] && nt.rule != nil && isNullable(nt.rule, out) {
				out[nt] = true
				changed = true
			}
		}
	}
	return out
}

func isNullable(e Expression, empty map[*NonTerminal]bool) bool {
	switch e := e.(type) {
	case *Terminal:
		return e.value == ""

	case *NonTerminal:
		return empty[e]

	case *Concatenation:
		for _, item := range e.items {
			if !isNullable(item, empty) {
				return false
			}
		}
		return true

	case *Alternation:
		for _, alt := range e.alternatives {
			if isNullable(alt, empty) {
				return true
			}
		}
		return false
	}
	return false
}

// Call yield with each NonTerminal that may be entered from e before any input
// is consumed. Stops early if yield returns false.
func leftCorners(e Expression, empty map[*NonTerminal]bool, yield func(*NonTerminal) bool) bool {
	switch e := e.(type) {
	case *NonTerminal:
		return yield(e)

	case *Concatenation:
		for _, item := range e.items {
			if !leftCorners(item, empty, yield) {
				return false
			}
			if !isNullable(item, empty) {
				break
			}
		}

	case *Alternation:
		for _, alt := range e.alternatives {
			if !leftCorners(alt, empty, yield) {
				return false
			}
		}
	}
	return true
}
