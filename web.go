package radialsampler

import (
	"github.com/dkalash/go-radial-sampler/internal/geodesy"
)

// webSize returns the number of points a web with the given steps contains.
func webSize(radiusSteps, degreeSteps []float64) int {
	n := len(radiusSteps) * len(degreeSteps)
	if len(radiusSteps) > 0 && radiusSteps[0] > 0 {
		n++
	}
	return n
}

// buildWeb lays out a radial web around center: one great-circle
// destination per (ring, bearing) pair, ring-major. When the innermost ring
// is at a positive distance the center itself is prepended at index 0; a
// zero innermost ring already yields the center once per bearing.
func buildWeb(center Point, radiusSteps, degreeSteps []float64) []Point {
	pts := make([]Point, 0, webSize(radiusSteps, degreeSteps))
	if radiusSteps[0] > 0 {
		pts = append(pts, center)
	}

	origin := geodesy.Point(center)
	for _, km := range radiusSteps {
		for _, deg := range degreeSteps {
			dest := geodesy.Destination(origin, deg, km)
			pts = append(pts, Point(dest))
		}
	}
	return pts
}

// Distance returns the great-circle distance between two points in
// kilometres.
func Distance(a, b Point) float64 {
	return geodesy.Distance(geodesy.Point(a), geodesy.Point(b))
}

// Destination returns the point reached by travelling km kilometres from p
// at the given bearing (degrees clockwise from north).
func Destination(p Point, bearingDeg, km float64) Point {
	return Point(geodesy.Destination(geodesy.Point(p), bearingDeg, km))
}
