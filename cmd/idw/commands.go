package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/viant/sqlite-idw/engine"
	"github.com/viant/sqlite-idw/geom"
	"github.com/viant/sqlite-idw/idw"
	"github.com/viant/sqlite-idw/internal/subcmd"
	"github.com/viant/sqlite-idw/sample"
	"github.com/viant/sqlite-idw/surface"
)

const defaultDB = "idw.sqlite"

func openStore(path string) (*sql.DB, *sample.SQLiteStore, error) {
	db, err := engine.OpenWithFunctions(path)
	if err != nil {
		return nil, nil, err
	}
	store, err := sample.NewSQLiteStore(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, store, nil
}

func load(ctx context.Context, args []string, stdout io.Writer) error {
	sc := subcmd.New("load", "append x,y,value rows from a CSV file to a dataset").
		AddArg("file", "path", "CSV file with x,y,value rows, '-' for stdin")
	var (
		dbPath  = sc.String("db", defaultDB, "sqlite database file")
		dataset = sc.String("dataset", "default", "dataset name")
		replace = sc.Bool("replace", false, "remove existing samples first")
	)
	rest, err := sc.ParseArgs(args)
	if err != nil {
		return err
	}

	in := io.Reader(os.Stdin)
	if rest[0] != "-" {
		f, err := os.Open(rest[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	samples, err := readSamples(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", rest[0], err)
	}

	db, store, err := openStore(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if *replace {
		if err := store.Remove(ctx, *dataset); err != nil {
			return err
		}
	}
	if err := store.Add(ctx, *dataset, samples); err != nil {
		return err
	}
	n, err := store.Count(ctx, *dataset)
	if err != nil {
		return err
	}
	log.Printf("loaded %d samples into %s (%d total)", len(samples), *dataset, n)
	fmt.Fprintln(stdout, n)
	return nil
}

func estimate(ctx context.Context, args []string, stdout io.Writer) error {
	sc := subcmd.New("estimate", "estimate the value at a query point\n\nput -- before negative coordinates: idw estimate -- -1 2").
		AddArg("x", "float", "query x coordinate").
		AddArg("y", "float", "query y coordinate")
	var (
		dbPath  = sc.String("db", defaultDB, "sqlite database file")
		dataset = sc.String("dataset", "default", "dataset name")
		method  = sc.String("method", string(idw.InverseDistance), "interpolation method: idw or nn")
		power   = sc.Float64("power", idw.DefaultPower, "inverse distance power exponent")
		viaSQL  = sc.Bool("sql", false, "compute with the SQL aggregate instead of in Go")
	)
	rest, err := sc.ParseArgs(args)
	if err != nil {
		return err
	}
	m, err := idw.ParseMethod(*method)
	if err != nil {
		return err
	}
	q, err := parseQuery(rest[0], rest[1])
	if err != nil {
		return err
	}

	db, _, err := openStore(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := surface.NewSurface(db, *dataset, m, *power)
	if err != nil {
		return err
	}
	var v float64
	if *viaSQL {
		v, err = s.EstimateSQL(ctx, q)
	} else {
		v, err = s.Estimate(ctx, q)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, strconv.FormatFloat(v, 'g', -1, 64))
	return nil
}

func stats(ctx context.Context, args []string, stdout io.Writer) error {
	sc := subcmd.New("stats", "describe a dataset: count, bounds and value range")
	var (
		dbPath  = sc.String("db", defaultDB, "sqlite database file")
		dataset = sc.String("dataset", "default", "dataset name")
	)
	if _, err := sc.ParseArgs(args); err != nil {
		return err
	}

	db, store, err := openStore(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	refs, err := store.Load(ctx, *dataset)
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		return fmt.Errorf("dataset %q: %w", *dataset, idw.ErrEmptyInput)
	}
	min, max := geom.Bounds(refs)
	lo, _ := refs[0].Value()
	hi := lo
	for _, p := range refs[1:] {
		v, _ := p.Value()
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	fmt.Fprintf(stdout, "dataset\t%s\n", *dataset)
	fmt.Fprintf(stdout, "samples\t%d\n", len(refs))
	fmt.Fprintf(stdout, "bounds\t%g,%g %g,%g\n", min.X, min.Y, max.X, max.Y)
	fmt.Fprintf(stdout, "values\t%g %g\n", lo, hi)
	return nil
}

func datasets(ctx context.Context, args []string, stdout io.Writer) error {
	sc := subcmd.New("datasets", "list datasets")
	dbPath := sc.String("db", defaultDB, "sqlite database file")
	if _, err := sc.ParseArgs(args); err != nil {
		return err
	}

	db, store, err := openStore(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	names, err := store.Datasets(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		n, err := store.Count(ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s\t%d\n", name, n)
	}
	return nil
}
