package grid

import (
	"gonum.org/v1/gonum/floats"

	"github.com/dkalash/go-radial-sampler/internal/simdops"
)

// Field is a two-dimensional spatial field on a rectilinear lat/lon grid.
// Values are stored row-major in canonical ascending-axis order:
// vals[j*nlon+i].
type Field struct {
	geom
	vals []float64
}

// NewField builds a field from coordinate axes and row-major values laid
// out to match the axes as given. Descending axes are accepted; values are
// reordered into canonical ascending order.
func NewField(lats, lons, vals []float64) (*Field, error) {
	g, latRev, lonRev, err := newGeom(lats, lons)
	if err != nil {
		return nil, err
	}

	nlat, nlon := g.Shape()
	if len(vals) != nlat*nlon {
		return nil, ErrShape
	}

	out := make([]float64, len(vals))
	for j := range nlat {
		for i := range nlon {
			out[j*nlon+i] = vals[sourceIndex(j, i, nlat, nlon, latRev, lonRev)]
		}
	}

	return &Field{geom: g, vals: out}, nil
}

// sourceIndex maps a canonical (j, i) node to its position in the caller's
// value order, undoing any axis reversal performed at construction.
func sourceIndex(j, i, nlat, nlon int, latRev, lonRev bool) int {
	if latRev {
		j = nlat - 1 - j
	}
	if lonRev {
		i = nlon - 1 - i
	}
	return j*nlon + i
}

// At interpolates the field at (lat, lon) using the given method and bounds
// policy. fill is returned for outside points under BoundsFill.
func (f *Field) At(m Method, b Bounds, fill, lat, lon float64) (float64, error) {
	var st stencil
	if err := f.build(m, b, lat, lon, &st); err != nil {
		return 0, err
	}
	if st.oob {
		return fill, nil
	}

	var gathered [maxStencil]float64
	for k := range st.n {
		gathered[k] = f.vals[st.idx[k]]
	}
	return simdops.DotProduct(st.w[:st.n], gathered[:st.n]), nil
}

// Value returns the stored value at canonical node (j, i).
func (f *Field) Value(j, i int) float64 {
	_, nlon := f.Shape()
	return f.vals[j*nlon+i]
}

// Values returns the canonical row-major value buffer. The slice is the
// field's backing store; callers must not resize it.
func (f *Field) Values() []float64 { return f.vals }

// Min returns the smallest stored value.
func (f *Field) Min() float64 { return floats.Min(f.vals) }

// Max returns the largest stored value.
func (f *Field) Max() float64 { return floats.Max(f.vals) }

// Mean returns the arithmetic mean of the stored values.
func (f *Field) Mean() float64 {
	return simdops.Sum(f.vals) / float64(len(f.vals))
}

// Scale multiplies every stored value by s in place. Useful for unit
// conversions before sampling.
func (f *Field) Scale(s float64) {
	simdops.Scale(f.vals, f.vals, s)
}

// Shift adds s to every stored value in place.
func (f *Field) Shift(s float64) {
	for i := range f.vals {
		f.vals[i] += s
	}
}
