package grid

// maxStencil is the largest stencil any engine uses (bicubic, 4x4 nodes).
const maxStencil = 16

// stencil holds the flat node indices of a row-major field together with
// the matching interpolation weights. n is zero when the point fell outside
// the domain under BoundsFill.
type stencil struct {
	idx [maxStencil]int
	w   [maxStencil]float64
	n   int
	oob bool
}

// halfCell is the fractional threshold for nearest-node rounding.
const halfCell = 0.5

// build computes the interpolation stencil at (lat, lon) for the given
// method and bounds policy.
func (g *geom) build(m Method, b Bounds, lat, lon float64, st *stencil) error {
	st.n, st.oob = 0, false

	jlat, tlat, okLat := g.lats.locate(lat)
	ilon, tlon, okLon := g.lons.locate(lon)
	if !okLat || !okLon {
		switch b {
		case BoundsFill:
			st.oob = true
			return nil
		case BoundsClamp:
			jlat, tlat, okLat = g.lats.locate(g.lats.clamp(lat))
			ilon, tlon, okLon = g.lons.locate(g.lons.clamp(lon))
			if !okLat || !okLon {
				return ErrOutOfBounds
			}
		default:
			return ErrOutOfBounds
		}
	}

	nlat, nlon := g.Shape()

	switch m {
	case Nearest:
		jr, ir := jlat, ilon
		if tlat >= halfCell {
			jr++
		}
		if tlon >= halfCell {
			ir++
		}
		st.idx[0] = jr*nlon + ir
		st.w[0] = 1
		st.n = 1

	case Bilinear:
		base := jlat*nlon + ilon
		st.idx[0], st.w[0] = base, (1-tlat)*(1-tlon)
		st.idx[1], st.w[1] = base+1, (1-tlat)*tlon
		st.idx[2], st.w[2] = base+nlon, tlat*(1-tlon)
		st.idx[3], st.w[3] = base+nlon+1, tlat*tlon
		st.n = 4

	case Bicubic:
		wlat := hermiteWeights(tlat)
		wlon := hermiteWeights(tlon)
		k := 0
		for r := range 4 {
			jj := clampIndex(jlat-1+r, nlat-1)
			for c := range 4 {
				ii := clampIndex(ilon-1+c, nlon-1)
				st.idx[k] = jj*nlon + ii
				st.w[k] = wlat[r] * wlon[c]
				k++
			}
		}
		st.n = maxStencil

	default:
		return ErrOutOfBounds
	}

	return nil
}

// hermiteWeights returns the Catmull-Rom cubic weights for fractional
// position t across the four nodes at offsets [-1, 0, 1, 2]. The weights
// sum to one for any t and reproduce linear fields exactly.
func hermiteWeights(t float64) [4]float64 {
	return [4]float64{
		((-0.5*t+1)*t - 0.5) * t,
		(1.5*t-2.5)*t*t + 1,
		((-1.5*t+2)*t + 0.5) * t,
		(0.5*t - 0.5) * t * t,
	}
}

// clampIndex limits i to [0, max]. Edge cells reuse their boundary node,
// which degrades bicubic to one-sided stencils at the grid rim.
func clampIndex(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}
