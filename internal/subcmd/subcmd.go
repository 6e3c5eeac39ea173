// Package subcmd builds flag sets for the idw command's subcommands with a
// usage message that lists positional arguments.
package subcmd

import (
	"flag"
	"fmt"
	"io"
	"os"
)

// New creates a subcommand whose usage is written to stderr.
func New(name, doc string) *Subcommand {
	return NewWithOutput(name, doc, os.Stderr)
}

// NewWithOutput creates a subcommand whose usage and parse errors are
// written to w.
func NewWithOutput(name, doc string, w io.Writer) *Subcommand {
	sc := &Subcommand{
		FlagSet: flag.NewFlagSet(name, flag.ContinueOnError),
	}
	sc.FlagSet.SetOutput(w)
	sc.FlagSet.Usage = func() {
		argSuffix := ""
		for _, a := range sc.args {
			argSuffix += fmt.Sprintf(" <%s>", a.name)
		}
		fmt.Fprintf(w, "\n%s\n\n", doc)
		fmt.Fprintf(w, "  idw %s [flags]%s\n\n", name, argSuffix)
		fmt.Fprintf(w, "flags:\n")
		sc.FlagSet.PrintDefaults()
		for _, a := range sc.args {
			fmt.Fprintf(w, "  <%s> %s\n", a.name, a.typename)
			fmt.Fprintf(w, "  \t%s\n", a.usage)
		}
	}
	return sc
}

// Subcommand is a flag set with documented positional arguments.
type Subcommand struct {
	*flag.FlagSet
	args []arg
}

type arg struct {
	name     string
	typename string
	usage    string
}

// AddArg documents a positional argument.
func (sc *Subcommand) AddArg(name, typename, usage string) *Subcommand {
	sc.args = append(sc.args, arg{name, typename, usage})
	return sc
}

// ParseArgs parses flags and checks that exactly the documented number of
// positional arguments remain.
func (sc *Subcommand) ParseArgs(args []string) ([]string, error) {
	if err := sc.Parse(args); err != nil {
		return nil, err
	}
	if sc.NArg() != len(sc.args) {
		sc.Usage()
		return nil, fmt.Errorf("%s: expected %d argument(s), got %d", sc.Name(), len(sc.args), sc.NArg())
	}
	return sc.Args(), nil
}
