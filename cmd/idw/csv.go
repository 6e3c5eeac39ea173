package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/viant/sqlite-idw/geom"
)

// readSamples parses x,y,value rows. A first row whose fields are not all
// numeric is treated as a header and skipped; blank lines are ignored by the
// csv reader.
func readSamples(r io.Reader) ([]geom.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var out []geom.Point
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		vals, err := parseRecord(rec)
		if err != nil {
			if line == 1 {
				continue
			}
			row, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", row, err)
		}
		out = append(out, geom.NewSample(vals[0], vals[1], vals[2]))
	}
}

func parseRecord(rec []string) ([3]float64, error) {
	var vals [3]float64
	for i, field := range rec {
		f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return vals, fmt.Errorf("field %d: %w", i+1, err)
		}
		vals[i] = f
	}
	return vals, nil
}

func parseQuery(xs, ys string) (geom.Point, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("query x: %w", err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("query y: %w", err)
	}
	return geom.NewPoint(x, y), nil
}
