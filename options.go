package descent

// An Option to modify the behaviour of the Grammar.
type Option func(g *Grammar) error

// AllowTrailing allows Parse to succeed without consuming all of its input.
func AllowTrailing() Option {
	return func(g *Grammar) error {
		g.allowTrailing = true
		return nil
	}
}
