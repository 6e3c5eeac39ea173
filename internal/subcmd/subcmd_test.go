package subcmd

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"
)

func TestParseArgs(t *testing.T) {
	var out bytes.Buffer
	sc := NewWithOutput("estimate", "estimate a value", &out).
		AddArg("x", "float", "query x").
		AddArg("y", "float", "query y")
	power := sc.Float64("power", 2, "power exponent")

	args, err := sc.ParseArgs([]string{"-power", "3", "1.5", "2"})
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if *power != 3 {
		t.Fatalf("power = %v, want 3", *power)
	}
	if len(args) != 2 || args[0] != "1.5" || args[1] != "2" {
		t.Fatalf("args = %v, want [1.5 2]", args)
	}
}

func TestParseArgs_WrongCount(t *testing.T) {
	var out bytes.Buffer
	sc := NewWithOutput("load", "load samples", &out).AddArg("file", "path", "CSV file")
	if _, err := sc.ParseArgs(nil); err == nil {
		t.Fatalf("expected error for missing argument")
	}
	if !strings.Contains(out.String(), "idw load [flags] <file>") {
		t.Fatalf("usage not printed: %q", out.String())
	}
}

func TestParseArgs_Help(t *testing.T) {
	var out bytes.Buffer
	sc := NewWithOutput("stats", "describe a dataset", &out)
	_, err := sc.ParseArgs([]string{"-help"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("ParseArgs(-help) error = %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(out.String(), "describe a dataset") {
		t.Fatalf("usage missing doc: %q", out.String())
	}
}
