// Package grid implements rectilinear lat/lon grid lookup and interpolation
// engines (nearest, bilinear, bicubic) for continuous spatial fields.
//
// Fields are stored row-major with canonical ascending axes:
// vals[j*nlon+i] where j indexes latitude and i longitude. Constructors
// accept descending input axes and reorder values once at build time so the
// lookup path never branches on orientation.
package grid

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Method selects the interpolation engine.
type Method int

const (
	// Nearest returns the value at the closest grid node.
	Nearest Method = iota

	// Bilinear blends the four surrounding nodes linearly per axis.
	Bilinear

	// Bicubic blends a 4x4 node neighbourhood with Catmull-Rom cubic
	// weights per axis. Smoother than bilinear, may overshoot extremes.
	Bicubic
)

// Bounds selects the behaviour for sample points outside the grid domain.
type Bounds int

const (
	// BoundsError reports ErrOutOfBounds for outside points.
	BoundsError Bounds = iota

	// BoundsFill yields the configured fill value for outside points.
	BoundsFill

	// BoundsClamp clamps outside points onto the grid edge.
	BoundsClamp
)

// Errors returned by grid constructors and lookups.
var (
	// ErrOutOfBounds indicates a sample point outside the grid domain.
	ErrOutOfBounds = errors.New("sample point outside grid domain")

	// ErrAxis indicates a coordinate axis that is too short, non-finite,
	// or not strictly monotonic.
	ErrAxis = errors.New("invalid grid axis")

	// ErrShape indicates a value buffer whose length does not match the
	// axes that describe it.
	ErrShape = errors.New("grid shape mismatch")
)

// minAxisLen is the minimum number of nodes per axis. Two nodes bracket a
// single cell, the least a linear engine can interpolate in.
const minAxisLen = 2

// axis is a strictly ascending coordinate vector. wrap marks a longitude
// axis, where queries outside the span are retried at x±360 before being
// declared out of bounds.
type axis struct {
	vals []float64
	wrap bool
}

// newAxis validates and canonicalises a coordinate vector. It returns the
// ascending axis and whether the input was descending (so callers can
// reorder their values to match).
func newAxis(vals []float64, wrap bool) (axis, bool, error) {
	if len(vals) < minAxisLen {
		return axis{}, false, ErrAxis
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return axis{}, false, ErrAxis
		}
	}

	reversed := vals[0] > vals[len(vals)-1]
	out := make([]float64, len(vals))
	if reversed {
		for i, v := range vals {
			out[len(vals)-1-i] = v
		}
	} else {
		copy(out, vals)
	}

	for i := 1; i < len(out); i++ {
		if out[i] <= out[i-1] {
			return axis{}, false, ErrAxis
		}
	}

	return axis{vals: out, wrap: wrap}, reversed, nil
}

func (a axis) len() int      { return len(a.vals) }
func (a axis) min() float64  { return a.vals[0] }
func (a axis) max() float64  { return a.vals[len(a.vals)-1] }
func (a axis) span() float64 { return a.max() - a.min() }

// alias shifts a longitude query by ±360 when that brings it inside the
// axis span, so grids in [0, 360) accept signed longitudes and vice versa.
func (a axis) alias(x float64) float64 {
	if !a.wrap || (x >= a.min() && x <= a.max()) {
		return x
	}
	if x < a.min() && x+360 >= a.min() && x+360 <= a.max() {
		return x + 360
	}
	if x > a.max() && x-360 >= a.min() && x-360 <= a.max() {
		return x - 360
	}
	return x
}

// locate returns the lower bracketing node index and the fractional
// position of x inside that cell. ok is false when x lies outside the axis.
func (a axis) locate(x float64) (i int, t float64, ok bool) {
	x = a.alias(x)
	if x < a.min() || x > a.max() || math.IsNaN(x) {
		return 0, 0, false
	}

	// The last node belongs to the last cell.
	if x == a.max() {
		i = a.len() - minAxisLen
		return i, 1, true
	}

	i = floats.Within(a.vals, x)
	if i < 0 {
		return 0, 0, false
	}
	t = (x - a.vals[i]) / (a.vals[i+1] - a.vals[i])
	return i, t, true
}

// clamp returns x limited to the axis span, after longitude aliasing.
func (a axis) clamp(x float64) float64 {
	x = a.alias(x)
	if x < a.min() {
		return a.min()
	}
	if x > a.max() {
		return a.max()
	}
	return x
}

// geom is the shared lat/lon geometry of a Field or Series.
type geom struct {
	lats axis
	lons axis
}

func newGeom(lats, lons []float64) (g geom, latRev, lonRev bool, err error) {
	g.lats, latRev, err = newAxis(lats, false)
	if err != nil {
		return geom{}, false, false, err
	}
	g.lons, lonRev, err = newAxis(lons, true)
	if err != nil {
		return geom{}, false, false, err
	}
	return g, latRev, lonRev, nil
}

// Shape returns the number of latitude and longitude nodes.
func (g *geom) Shape() (nlat, nlon int) {
	return g.lats.len(), g.lons.len()
}

// Lats returns the canonical (ascending) latitude axis.
func (g *geom) Lats() []float64 { return g.lats.vals }

// Lons returns the canonical (ascending) longitude axis.
func (g *geom) Lons() []float64 { return g.lons.vals }
