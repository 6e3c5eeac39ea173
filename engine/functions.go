package engine

import (
	"database/sql"
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/viant/vec/search"
	sqlite "modernc.org/sqlite"

	"github.com/viant/sqlite-idw/geom"
	"github.com/viant/sqlite-idw/idw"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterFunctions registers the IDW SQL functions with the driver so they
// are available on new connections opened after this call:
//
//	idw_distance(x1, y1, x2, y2)        REAL, Euclidean distance
//	idw_l2(a, b)                        REAL, distance between coordinate BLOBs
//	idw(x, y, value, qx, qy, power)     aggregate, IDW estimate at (qx, qy)
//	idw_nearest(x, y, value, qx, qy)    aggregate, nearest-neighbour value
//
// The aggregates take (qx, qy) and power from the first row and fail when a
// later row in the group passes different ones. A NULL power means
// idw.DefaultPower.
//
// Registration is process-wide and happens once; the db argument is accepted
// for symmetry with other registration helpers.
// Note: existing open connections will not see new functions.
func RegisterFunctions(_ *sql.DB) error {
	registerOnce.Do(func() {
		registerErr = register()
	})
	return registerErr
}

func register() error {
	if err := sqlite.RegisterDeterministicScalarFunction("idw_distance", 4, distanceImpl); err != nil {
		return err
	}
	if err := sqlite.RegisterDeterministicScalarFunction("idw_l2", 2, l2Impl); err != nil {
		return err
	}
	if err := sqlite.RegisterFunction("idw", &sqlite.FunctionImpl{
		NArgs:         6,
		Deterministic: true,
		MakeAggregate: newAggregate(idw.InverseDistance),
	}); err != nil {
		return err
	}
	return sqlite.RegisterFunction("idw_nearest", &sqlite.FunctionImpl{
		NArgs:         5,
		Deterministic: true,
		MakeAggregate: newAggregate(idw.NearestNeighbor),
	})
}

func distanceImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 4 {
		return nil, fmt.Errorf("idw_distance: expected 4 arguments, got %d", len(args))
	}
	var c [4]float64
	for i, arg := range args {
		if arg == nil {
			return nil, nil
		}
		f, err := asFloat(arg)
		if err != nil {
			return nil, fmt.Errorf("idw_distance: argument %d: %w", i+1, err)
		}
		c[i] = f
	}
	return geom.Distance(geom.NewPoint(c[0], c[1]), geom.NewPoint(c[2], c[3])), nil
}

func l2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("idw_l2: expected 2 arguments, got %d", len(args))
	}
	a, err := asCoord(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asCoord(args[1])
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("idw_l2: dim mismatch %d vs %d", len(a), len(b))
	}
	return float64(search.Float32s(a).EuclideanDistance(b)), nil
}

// aggregate collects rows for the idw and idw_nearest SQL aggregates. The
// query location and power are fixed by the first row; later rows must repeat
// them.
type aggregate struct {
	method  idw.Method
	refs    []geom.Point
	query   geom.Point
	power   float64
	started bool
}

func newAggregate(method idw.Method) func(sqlite.FunctionContext) (sqlite.AggregateFunction, error) {
	return func(sqlite.FunctionContext) (sqlite.AggregateFunction, error) {
		return &aggregate{method: method, power: idw.DefaultPower}, nil
	}
}

func (a *aggregate) Step(_ *sqlite.FunctionContext, args []driver.Value) error {
	if len(args) < 5 {
		return fmt.Errorf("%s: expected at least 5 arguments, got %d", a.name(), len(args))
	}
	if args[0] == nil || args[1] == nil {
		return fmt.Errorf("%s: NULL coordinate at row %d", a.name(), len(a.refs)+1)
	}
	if args[2] == nil {
		return fmt.Errorf("%s: %w at row %d", a.name(), idw.ErrMissingValue, len(a.refs)+1)
	}
	row, err := asFloats(args[:3])
	if err != nil {
		return fmt.Errorf("%s: %w", a.name(), err)
	}
	query, power, err := a.params(args[3:])
	if err != nil {
		return err
	}
	if !a.started {
		a.query, a.power, a.started = query, power, true
	} else if !sameFloat(query.X, a.query.X) || !sameFloat(query.Y, a.query.Y) || !sameFloat(power, a.power) {
		return fmt.Errorf("%s: query (%v, %v) power %v at row %d differs from (%v, %v) power %v",
			a.name(), query.X, query.Y, power, len(a.refs)+1, a.query.X, a.query.Y, a.power)
	}
	a.refs = append(a.refs, geom.NewSample(row[0], row[1], row[2]))
	return nil
}

func (a *aggregate) params(args []driver.Value) (geom.Point, float64, error) {
	q, err := asFloats(args[:2])
	if err != nil {
		return geom.Point{}, 0, fmt.Errorf("%s: query: %w", a.name(), err)
	}
	power := idw.DefaultPower
	if len(args) > 2 && args[2] != nil {
		if power, err = asFloat(args[2]); err != nil {
			return geom.Point{}, 0, fmt.Errorf("%s: power: %w", a.name(), err)
		}
	}
	return geom.NewPoint(q[0], q[1]), power, nil
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// WindowInverse drops the oldest row when the aggregate runs as a window
// function.
func (a *aggregate) WindowInverse(_ *sqlite.FunctionContext, _ []driver.Value) error {
	if len(a.refs) > 0 {
		a.refs = a.refs[1:]
	}
	return nil
}

func (a *aggregate) WindowValue(_ *sqlite.FunctionContext) (driver.Value, error) {
	v, err := idw.Interpolate(a.query, a.refs, a.method, a.power)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name(), err)
	}
	return v, nil
}

func (a *aggregate) Final(_ *sqlite.FunctionContext) {}

func (a *aggregate) name() string {
	if a.method == idw.NearestNeighbor {
		return "idw_nearest"
	}
	return "idw"
}

func asFloats(args []driver.Value) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		f, err := asFloat(arg)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func asFloat(arg driver.Value) (float64, error) {
	switch v := arg.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as REAL: %w", string(v), err)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as REAL: %w", v, err)
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("unexpected NULL")
	default:
		return 0, fmt.Errorf("unsupported argument type %T", arg)
	}
}

func asCoord(arg driver.Value) ([]float32, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return decodeCoord(v)
	default:
		return nil, fmt.Errorf("idw_l2: unsupported argument type %T for coordinate; want BLOB", arg)
	}
}

// Local minimal helper to avoid an import cycle with package sample.
func decodeCoord(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("idw_l2: invalid coordinate blob length %d", len(b))
	}
	n := len(b) / 4
	v := make([]float32, n)
	for i := 0; i < n; i++ {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v, nil
}
