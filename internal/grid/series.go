package grid

import (
	"gonum.org/v1/gonum/floats"
)

// Series is a time-varying spatial field: one value per grid node per time
// step. Values are stored cell-major so each node's time vector is
// contiguous, letting interpolation accumulate whole step vectors at once:
// vals[(j*nlon+i)*steps + t].
type Series struct {
	geom
	steps int
	vals  []float64
}

// NewSeries builds a series from coordinate axes and one row-major field
// per time step. All steps must have the same shape as the axes.
func NewSeries(lats, lons []float64, steps [][]float64) (*Series, error) {
	g, latRev, lonRev, err := newGeom(lats, lons)
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, ErrShape
	}

	nlat, nlon := g.Shape()
	for _, step := range steps {
		if len(step) != nlat*nlon {
			return nil, ErrShape
		}
	}

	s := &Series{geom: g, steps: len(steps)}
	s.vals = make([]float64, nlat*nlon*s.steps)
	for j := range nlat {
		for i := range nlon {
			cell := s.vals[(j*nlon+i)*s.steps : (j*nlon+i+1)*s.steps]
			src := sourceIndex(j, i, nlat, nlon, latRev, lonRev)
			for t, step := range steps {
				cell[t] = step[src]
			}
		}
	}

	return s, nil
}

// Steps returns the number of time steps.
func (s *Series) Steps() int { return s.steps }

// cell returns the contiguous time vector of the node with flat index idx.
func (s *Series) cell(idx int) []float64 {
	return s.vals[idx*s.steps : (idx+1)*s.steps]
}

// At interpolates the series at (lat, lon) into dst, one value per time
// step. dst must have length Steps. fill is written for outside points
// under BoundsFill.
func (s *Series) At(m Method, b Bounds, fill, lat, lon float64, dst []float64) error {
	if len(dst) != s.steps {
		return ErrShape
	}

	var st stencil
	if err := s.build(m, b, lat, lon, &st); err != nil {
		return err
	}
	if st.oob {
		for t := range dst {
			dst[t] = fill
		}
		return nil
	}

	for t := range dst {
		dst[t] = 0
	}
	for k := range st.n {
		floats.AddScaled(dst, st.w[k], s.cell(st.idx[k]))
	}
	return nil
}
