package radialsampler

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Rings returns ring distances from startKm to stopKm inclusive at stepKm
// spacing, for use as Config.RadiusSteps. Returns nil when the range is
// empty or the step is not positive.
func Rings(startKm, stopKm, stepKm float64) []float64 {
	if stepKm <= 0 || stopKm < startKm {
		return nil
	}
	n := int(math.Floor((stopKm-startKm)/stepKm+spanEpsilon)) + 1
	if n == 1 {
		return []float64{startKm}
	}
	return floats.Span(make([]float64, n), startKm, startKm+stepKm*float64(n-1))
}

// Bearings returns bearings covering the full circle at stepDeg spacing,
// starting due north: 0, step, ..., up to but excluding 360. Returns nil
// when the step is not in (0, 360].
func Bearings(stepDeg float64) []float64 {
	if stepDeg <= 0 || stepDeg > fullCircleDeg {
		return nil
	}
	n := int(math.Floor(fullCircleDeg/stepDeg + spanEpsilon))
	if n <= 1 {
		return []float64{0}
	}
	return floats.Span(make([]float64, n), 0, stepDeg*float64(n-1))
}

// NewSynoptic creates a sampler with the synoptic-scale web of Loikith &
// Broccoli (2012): 50 km rings out to 2000 km at 10 degree bearings,
// bilinear interpolation.
func NewSynoptic(centerLat, centerLon float64) (*Sampler, error) {
	return New(&Config{
		CenterLat:   centerLat,
		CenterLon:   centerLon,
		RadiusSteps: Rings(0, SynopticMaxRadiusKm, SynopticRingSpacingKm),
		DegreeSteps: Bearings(SynopticBearingStepDeg),
		Method:      MethodBilinear,
	})
}

// SampleField is a convenience function for one-shot sampling of a 2D
// field around a single center. It returns the interpolated values and the
// web coordinates in matching order.
func SampleField(f *Field, centerLat, centerLon float64, radiusSteps, degreeSteps []float64, method Method) ([]float64, []Point, error) {
	s, err := New(&Config{
		CenterLat:   centerLat,
		CenterLon:   centerLon,
		RadiusSteps: radiusSteps,
		DegreeSteps: degreeSteps,
		Method:      method,
	})
	if err != nil {
		return nil, nil, err
	}

	vals, err := s.Sample(f)
	if err != nil {
		return nil, nil, err
	}
	return vals, s.Points(), nil
}

// SampleFieldSeries is a convenience function for one-shot sampling of a
// time series around a single center. The result is indexed [point][step].
func SampleFieldSeries(sr *Series, centerLat, centerLon float64, radiusSteps, degreeSteps []float64, method Method) ([][]float64, []Point, error) {
	s, err := New(&Config{
		CenterLat:   centerLat,
		CenterLon:   centerLon,
		RadiusSteps: radiusSteps,
		DegreeSteps: degreeSteps,
		Method:      method,
	})
	if err != nil {
		return nil, nil, err
	}

	vals, err := s.SampleSeries(sr)
	if err != nil {
		return nil, nil, err
	}
	return vals, s.Points(), nil
}

// SampleFieldMulti is a convenience function for one-shot sampling of a 2D
// field around multiple centers. Centers are processed concurrently. The
// result is indexed [center][point].
func SampleFieldMulti(f *Field, centers []Point, radiusSteps, degreeSteps []float64, method Method) ([][]float64, error) {
	if len(centers) == 0 {
		return nil, ErrInvalidConfig
	}
	s, err := New(&Config{
		CenterLat:   centers[0].Lat,
		CenterLon:   centers[0].Lon,
		RadiusSteps: radiusSteps,
		DegreeSteps: degreeSteps,
		Method:      method,
		Parallel:    true,
	})
	if err != nil {
		return nil, err
	}
	return s.SampleMulti(f, centers)
}

// SampleFieldFloat32 is like SampleField but returns float32 values.
func SampleFieldFloat32(f *Field, centerLat, centerLon float64, radiusSteps, degreeSteps []float64, method Method) ([]float32, []Point, error) {
	vals, pts, err := SampleField(f, centerLat, centerLon, radiusSteps, degreeSteps, method)
	if err != nil {
		return nil, nil, err
	}
	out := make([]float32, len(vals))
	for i, v := range vals {
		out[i] = float32(v)
	}
	return out, pts, nil
}
