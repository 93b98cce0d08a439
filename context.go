package descent

import "io"

// Context for a single recognition.
type parseContext struct {
	input  string
	cursor int
	stack  []*NonTerminal
	trace  io.Writer
}

func newParseContext(input string, trace io.Writer) *parseContext {
	return &parseContext{
		input: input,
		trace: trace,
	}
}

// Input not yet consumed.
func (p *parseContext) remaining() string {
	return p.input[p.cursor:]
}

// Consume n bytes.
func (p *parseContext) advance(n int) {
	p.cursor += n
}

// Rewind to a cursor previously read from p.cursor.
func (p *parseContext) rewind(cursor int) {
	p.cursor = cursor
}

// Push a NonTerminal frame.
func (p *parseContext) push(n *NonTerminal) {
	p.stack = append(p.stack, n)
}

func (p *parseContext) pop() {
	p.stack = p.stack[:len(p.stack)-1]
}

// NonTerminals currently being matched, outermost first.
func (p *parseContext) path() []*NonTerminal {
	return append([]*NonTerminal(nil), p.stack...)
}
