// Command descent recognises input against a grammar written in EBNF.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"gopkg.in/alecthomas/kingpin.v3-unstable"

	"github.com/alecthomas/descent"
	"github.com/alecthomas/descent/ebnf"
)

var (
	startFlag  = kingpin.Flag("start", "Start production (defaults to the first production).").Short('s').String()
	prefixFlag = kingpin.Flag("prefix", "Accept input when a prefix of it is recognised.").Bool()
	traceFlag  = kingpin.Flag("trace", "Trace recognition to stderr.").Bool()
	dumpFlag   = kingpin.Flag("dump", "Dump the loaded grammar to stderr.").Bool()
	grammarArg = kingpin.Arg("grammar", "EBNF grammar file.").Required().ExistingFile()
	inputArgs  = kingpin.Arg("input", "Inputs to recognise. Lines of stdin are used if none are given.").Strings()
)

func main() {
	kingpin.CommandLine.Help = `Recognise input with a recursive descent grammar.

The grammar uses the notation of Go's exp/ebnf:

  Production  = name "=" [ Expression ] "." .
  Expression  = Alternative { "|" Alternative } .
  Alternative = Term { Term } .
  Term        = name | token [ "…" token ] | Group | Option | Repetition .
  Group       = "(" Expression ")" .
  Option      = "[" Expression "]" .
  Repetition  = "{" Expression "}" .

Alternatives are tried in order and the first that matches wins.
`
	kingpin.Parse()

	options := []ebnf.Option{}
	if *startFlag != "" {
		options = append(options, ebnf.Start(*startFlag))
	}
	grammarOptions := []descent.Option{}
	if *prefixFlag {
		grammarOptions = append(grammarOptions, descent.AllowTrailing())
	}
	if *traceFlag {
		grammarOptions = append(grammarOptions, descent.Trace(os.Stderr))
	}
	options = append(options, ebnf.GrammarOptions(grammarOptions...))

	r, err := os.Open(*grammarArg)
	kingpin.FatalIfError(err, "")
	g, err := ebnf.Parse(*grammarArg, r, options...)
	_ = r.Close()
	kingpin.FatalIfError(err, "")
	kingpin.FatalIfError(g.Validate(), "")

	if *dumpFlag {
		repr.New(os.Stderr).Println(g.Productions())
	}

	inputs := *inputArgs
	if len(inputs) == 0 {
		inputs, err = readLines(os.Stdin)
		kingpin.FatalIfError(err, "")
	}

	rejected := false
	for _, input := range inputs {
		ok, err := g.Parse(input)
		kingpin.FatalIfError(err, "%q", input)
		if ok {
			fmt.Printf("accept %q\n", input)
		} else {
			fmt.Printf("reject %q\n", input)
			rejected = true
		}
	}
	if rejected {
		os.Exit(1)
	}
}

func readLines(r io.Reader) ([]string, error) {
	lines := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
