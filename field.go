package radialsampler

import (
	"github.com/dkalash/go-radial-sampler/internal/grid"
)

// Field is a 2D spatial field on a rectilinear lat/lon grid. Values are
// row-major over the axes as given: vals[j*len(lons)+i] for latitude j and
// longitude i. Axes may be ascending or descending; longitudes may use the
// signed [-180, 180] or the [0, 360) convention.
type Field struct {
	grid *grid.Field
}

// NewField builds a field from coordinate axes and row-major values.
func NewField(lats, lons, vals []float64) (*Field, error) {
	g, err := grid.NewField(lats, lons, vals)
	if err != nil {
		return nil, err
	}
	return &Field{grid: g}, nil
}

// NewFieldFloat32 is like NewField for float32 values. Values are widened
// to float64 for interpolation.
func NewFieldFloat32(lats, lons []float64, vals []float32) (*Field, error) {
	vals64 := make([]float64, len(vals))
	for i, v := range vals {
		vals64[i] = float64(v)
	}
	return NewField(lats, lons, vals64)
}

// Shape returns the number of latitude and longitude nodes.
func (f *Field) Shape() (nlat, nlon int) { return f.grid.Shape() }

// Lats returns the canonical (ascending) latitude axis.
func (f *Field) Lats() []float64 { return f.grid.Lats() }

// Lons returns the canonical (ascending) longitude axis.
func (f *Field) Lons() []float64 { return f.grid.Lons() }

// Value returns the stored value at canonical node (j, i).
func (f *Field) Value(j, i int) float64 { return f.grid.Value(j, i) }

// Min returns the smallest stored value.
func (f *Field) Min() float64 { return f.grid.Min() }

// Max returns the largest stored value.
func (f *Field) Max() float64 { return f.grid.Max() }

// Mean returns the arithmetic mean of the stored values.
func (f *Field) Mean() float64 { return f.grid.Mean() }

// Scale multiplies every stored value by s in place. Useful for unit
// conversions before sampling. Not safe to race with Sample calls.
func (f *Field) Scale(s float64) { f.grid.Scale(s) }

// Shift adds s to every stored value in place (e.g. Kelvin to Celsius).
func (f *Field) Shift(s float64) { f.grid.Shift(s) }

// Series is a time-varying spatial field: one row-major value buffer per
// time step, all sharing the same axes.
type Series struct {
	grid *grid.Series
}

// NewSeries builds a series from coordinate axes and one row-major field
// per time step.
func NewSeries(lats, lons []float64, steps [][]float64) (*Series, error) {
	g, err := grid.NewSeries(lats, lons, steps)
	if err != nil {
		return nil, err
	}
	return &Series{grid: g}, nil
}

// Shape returns the number of latitude and longitude nodes.
func (s *Series) Shape() (nlat, nlon int) { return s.grid.Shape() }

// Steps returns the number of time steps.
func (s *Series) Steps() int { return s.grid.Steps() }
