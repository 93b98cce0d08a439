package descent

import (
	"fmt"
	"io"
	"strings"
)

// Trace recognition to "w".
//
// Each NonTerminal and Terminal attempt is written as a line indented by the
// NonTerminal depth, with the upcoming input and the outcome.
func Trace(w io.Writer) Option {
	return func(g *Grammar) error {
		g.trace = w
		return nil
	}
}

const peekLimit = 16

// A short view of the remaining input.
func (p *parseContext) peek() string {
	rest := p.remaining()
	if len(rest) > peekLimit {
		return rest[:peekLimit] + "..."
	}
	return rest
}

func (p *parseContext) tracef(format string, args ...interface{}) {
	if p.trace == nil {
		return
	}
	fmt.Fprintf(p.trace, "%s%s\n", strings.Repeat(" ", len(p.stack)*2), fmt.Sprintf(format, args...))
}

func outcome(ok bool) string {
	if ok {
		return "ok"
	}
	return "no match"
}
