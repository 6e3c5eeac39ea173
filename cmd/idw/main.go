// idw loads scattered 2D samples into a SQLite file and estimates values at
// query points by inverse distance weighting or nearest neighbour.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil && !errors.Is(err, flag.ErrHelp) {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "canceled")
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

var usage = strings.TrimSpace(`
usage: idw $cmd
valid $cmd are 'load', 'estimate', 'stats', 'datasets'
for help: idw $cmd -help
negative coordinates go after --, e.g. idw estimate -- -1 2
`)

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) < 1 {
		return errors.New(usage)
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "load":
		return load(ctx, args, stdout)
	case "estimate":
		return estimate(ctx, args, stdout)
	case "stats":
		return stats(ctx, args, stdout)
	case "datasets":
		return datasets(ctx, args, stdout)
	default:
		return fmt.Errorf("unknown cmd: '%s'\n%s", cmd, usage)
	}
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("idw: ")
}
