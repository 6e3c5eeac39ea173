package idw

import (
	"github.com/viant/sqlite-idw/geom"
)

// Interpolator binds a reference set to a method and power so repeated
// queries against the same samples need no re-validation. It is immutable
// after New and safe for concurrent use.
type Interpolator struct {
	refs   []geom.Point
	method Method
	power  float64
}

// Option configures an Interpolator.
type Option func(*Interpolator)

// WithMethod selects the interpolation method (default InverseDistance).
func WithMethod(m Method) Option {
	return func(ip *Interpolator) { ip.method = m }
}

// WithPower sets the power exponent (default DefaultPower).
func WithPower(p float64) Option {
	return func(ip *Interpolator) { ip.power = p }
}

// New validates refs and the options and returns an Interpolator over a copy
// of refs.
func New(refs []geom.Point, opts ...Option) (*Interpolator, error) {
	ip := &Interpolator{method: InverseDistance, power: DefaultPower}
	for _, opt := range opts {
		opt(ip)
	}
	if !ip.method.Valid() {
		return nil, unsupported(ip.method)
	}
	if err := ValidatePower(ip.power); err != nil {
		return nil, err
	}
	if err := validateRefs(refs); err != nil {
		return nil, err
	}
	ip.refs = append([]geom.Point(nil), refs...)
	return ip, nil
}

// Len returns the number of reference points.
func (ip *Interpolator) Len() int { return len(ip.refs) }

// Method returns the configured method.
func (ip *Interpolator) Method() Method { return ip.method }

// Power returns the configured power exponent.
func (ip *Interpolator) Power() float64 { return ip.power }

// Estimate returns the interpolated value at query.
func (ip *Interpolator) Estimate(query geom.Point) (float64, error) {
	if err := ValidateQuery(query); err != nil {
		return 0, err
	}
	return ip.method.Func()(query, ip.refs, ip.power), nil
}
