package ebnf

import "github.com/alecthomas/descent"

// Option for configuring the EBNF loader.
type Option func(*loader) error

// Start selects the start production by name.
func Start(name string) Option {
	return func(l *loader) error {
		l.start = name
		return nil
	}
}

// GrammarOptions are passed through to descent.New.
func GrammarOptions(options ...descent.Option) Option {
	return func(l *loader) error {
		l.options = append(l.options, options...)
		return nil
	}
}
