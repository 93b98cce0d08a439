// Package descent builds grammars out of combinators and recognises input
// with them by recursive descent.
//
// A grammar is made of four kinds of Expression:
//
//     - Terminal: a literal, created with Lit. Lit("") is the shared Lambda.
//     - Concatenation: items that must match in order, created with Concat or Seq.
//     - Alternation: ordered choice, created with Or or Choice. The first
//       alternative that matches wins and the cursor is restored between
//       attempts.
//     - NonTerminal: a named symbol declared by a Grammar and given a rule
//       with Bind. A NonTerminal may appear in its own rule.
//
// Wherever an Expression is accepted a string literal may be used instead.
//
// Here's a grammar recognising zero or more "a"s.
//
//     g := descent.MustNew()
//     s := g.CreateNonTerminal()
//     s.Bind(descent.Or(descent.Concat("a", s), ""))
//     ok, err := g.Parse("aaa")
//
// Grammars in which a NonTerminal can reach itself without consuming input
// are rejected with a LeftRecursionError rather than recursing forever.
package descent
