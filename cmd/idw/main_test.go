package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/viant/sqlite-idw/idw"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), args, &out)
	return strings.TrimSpace(out.String()), err
}

func writeCSV(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "samples.csv")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestRun_LoadEstimateStats(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "idw.sqlite")
	csvPath := writeCSV(t, dir, "x,y,value\n0,0,10\n10,0,20\n0,10,30\n10,10,40\n")

	out, err := runCmd(t, "load", "-db", dbPath, "-dataset", "square", csvPath)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if out != "4" {
		t.Fatalf("load output = %q, want 4", out)
	}

	for _, viaSQL := range []string{"-sql=false", "-sql=true"} {
		out, err = runCmd(t, "estimate", "-db", dbPath, "-dataset", "square", viaSQL, "5", "5")
		if err != nil {
			t.Fatalf("estimate %s failed: %v", viaSQL, err)
		}
		if out != "25" {
			t.Fatalf("estimate %s = %q, want 25", viaSQL, out)
		}
	}

	out, err = runCmd(t, "estimate", "-db", dbPath, "-dataset", "square", "-method", "NN", "9", "1")
	if err != nil {
		t.Fatalf("estimate nn failed: %v", err)
	}
	if out != "20" {
		t.Fatalf("estimate nn = %q, want 20", out)
	}

	// Negative coordinates follow "--" so they are not parsed as flags.
	out, err = runCmd(t, "estimate", "-db", dbPath, "-dataset", "square", "-method", "nn", "--", "-1", "-2")
	if err != nil {
		t.Fatalf("estimate with negative query failed: %v", err)
	}
	if out != "10" {
		t.Fatalf("estimate nn at (-1, -2) = %q, want 10", out)
	}

	out, err = runCmd(t, "stats", "-db", dbPath, "-dataset", "square")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	for _, want := range []string{"samples\t4", "bounds\t0,0 10,10", "values\t10 40"} {
		if !strings.Contains(out, want) {
			t.Fatalf("stats output %q missing %q", out, want)
		}
	}

	out, err = runCmd(t, "datasets", "-db", dbPath)
	if err != nil {
		t.Fatalf("datasets failed: %v", err)
	}
	if out != "square\t4" {
		t.Fatalf("datasets output = %q, want square\\t4", out)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "idw.sqlite")

	if _, err := runCmd(t); err == nil {
		t.Fatalf("expected usage error with no command")
	}
	if _, err := runCmd(t, "plot"); err == nil || !strings.Contains(err.Error(), "unknown cmd") {
		t.Fatalf("unknown command error = %v", err)
	}
	if _, err := runCmd(t, "estimate", "-db", dbPath, "-method", "bogus", "1", "1"); !errors.Is(err, idw.ErrUnsupportedMethod) {
		t.Fatalf("bogus method error = %v, want ErrUnsupportedMethod", err)
	}
	if _, err := runCmd(t, "estimate", "-db", dbPath, "-dataset", "empty", "1", "1"); !errors.Is(err, idw.ErrEmptyInput) {
		t.Fatalf("empty dataset error = %v, want ErrEmptyInput", err)
	}
	if _, err := runCmd(t, "estimate", "-db", dbPath, "-power", "NaN", "1", "1"); !errors.Is(err, idw.ErrInvalidParameter) {
		t.Fatalf("NaN power error = %v, want ErrInvalidParameter", err)
	}
	if _, err := runCmd(t, "stats", "-help"); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("stats -help error = %v, want flag.ErrHelp", err)
	}
}

func TestReadSamples(t *testing.T) {
	refs, err := readSamples(strings.NewReader("# comment\n1,2,3\n 4, 5, 6\n"))
	if err != nil {
		t.Fatalf("readSamples failed: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("readSamples returned %d samples, want 2", len(refs))
	}
	if v, _ := refs[1].Value(); refs[1].X != 4 || refs[1].Y != 5 || v != 6 {
		t.Fatalf("second sample = %+v, want (4,5,6)", refs[1])
	}

	if _, err := readSamples(strings.NewReader("x,y,value\n1,2,3\n1,oops,3\n")); err == nil {
		t.Fatalf("expected parse error for non-numeric row")
	}
	if _, err := readSamples(strings.NewReader("1,2\n")); err == nil {
		t.Fatalf("expected error for short record")
	}
}
