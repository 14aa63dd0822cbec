package radialsampler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkalash/go-radial-sampler/internal/testutil"
)

// testSpan returns n evenly spaced values from start with the given step.
func testSpan(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// latPlane builds a field whose value equals the latitude, handy for
// checking sample ordering and clamping.
func latPlane(lats, lons []float64) *Field {
	vals := make([]float64, len(lats)*len(lons))
	for j, lat := range lats {
		for i := range lons {
			vals[j*len(lons)+i] = lat
		}
	}
	f, err := NewField(lats, lons, vals)
	if err != nil {
		panic(err)
	}
	return f
}

// testConfig returns a small valid configuration centered mid-grid.
func testConfig() *Config {
	return &Config{
		CenterLat:   45,
		CenterLon:   -100,
		RadiusSteps: []float64{0, 100, 200},
		DegreeSteps: []float64{0, 90, 180, 270},
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no radius steps", func(c *Config) { c.RadiusSteps = nil }},
		{"negative starting radius", func(c *Config) { c.RadiusSteps = []float64{-50, 100} }},
		{"non-increasing radii", func(c *Config) { c.RadiusSteps = []float64{0, 100, 100} }},
		{"nan radius", func(c *Config) { c.RadiusSteps = []float64{0, math.NaN()} }},
		{"no degree steps", func(c *Config) { c.DegreeSteps = nil }},
		{"inf bearing", func(c *Config) { c.DegreeSteps = []float64{0, math.Inf(1)} }},
		{"latitude too high", func(c *Config) { c.CenterLat = 91 }},
		{"latitude nan", func(c *Config) { c.CenterLat = math.NaN() }},
		{"longitude inf", func(c *Config) { c.CenterLon = math.Inf(-1) }},
		{"unknown method", func(c *Config) { c.Method = Method(99) }},
		{"unknown bounds", func(c *Config) { c.Bounds = BoundsPolicy(99) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := testConfig()
			tc.mutate(config)
			assert.ErrorIs(t, config.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, testConfig().Validate())
}

func TestNewNilConfig(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNumPointsOriginRule(t *testing.T) {
	// Zero innermost ring: the zero ring yields the center per bearing,
	// nothing is prepended.
	config := testConfig()
	s, err := New(config)
	require.NoError(t, err)
	assert.Equal(t, 12, s.NumPoints())

	pts := s.Points()
	for i := range config.DegreeSteps {
		assert.InDelta(t, config.CenterLat, pts[i].Lat, 1e-12, "zero-ring point %d", i)
		assert.InDelta(t, config.CenterLon, pts[i].Lon, 1e-12, "zero-ring point %d", i)
	}

	// Positive innermost ring: center prepended at index 0.
	config.RadiusSteps = []float64{100, 200}
	s, err = New(config)
	require.NoError(t, err)
	assert.Equal(t, 9, s.NumPoints())
	assert.Equal(t, s.Center(), s.Points()[0])
}

func TestPointsIsACopy(t *testing.T) {
	s, err := New(testConfig())
	require.NoError(t, err)

	pts := s.Points()
	pts[0] = Point{Lat: -88, Lon: 0}
	assert.NotEqual(t, pts[0], s.Points()[0])
}

func TestSampleConstantField(t *testing.T) {
	lats := testSpan(40, 1, 11)
	lons := testSpan(-105, 1, 11)
	vals := make([]float64, len(lats)*len(lons))
	for i := range vals {
		vals[i] = 42.5
	}
	f, err := NewField(lats, lons, vals)
	require.NoError(t, err)

	for _, m := range []Method{MethodNearest, MethodBilinear, MethodBicubic} {
		config := testConfig()
		config.Method = m
		s, err := New(config)
		require.NoError(t, err)

		out, err := s.Sample(f)
		require.NoError(t, err)
		require.Len(t, out, s.NumPoints())
		for i, v := range out {
			assert.InDelta(t, 42.5, v, testutil.LinearTolerance, "method %v point %d", m, i)
		}
	}
}

func TestSampleOrdering(t *testing.T) {
	f := latPlane(testSpan(40, 1, 11), testSpan(-105, 1, 11))

	s, err := New(&Config{
		CenterLat:   45,
		CenterLon:   -100,
		RadiusSteps: []float64{0, 100},
		DegreeSteps: []float64{0, 90, 180, 270},
	})
	require.NoError(t, err)

	out, err := s.Sample(f)
	require.NoError(t, err)
	require.Len(t, out, 8)

	// Zero ring samples the center latitude.
	for i := range 4 {
		assert.InDelta(t, 45.0, out[i], testutil.LinearTolerance, "zero-ring point %d", i)
	}

	// Ring-major layout: index 4 is 100 km due north, index 6 due south.
	assert.Greater(t, out[4], 45.0)
	assert.Less(t, out[6], 45.0)
	// Due east and west stay near the center latitude.
	assert.InDelta(t, 45.0, out[5], 0.1)
	assert.InDelta(t, 45.0, out[7], 0.1)
}

func TestSampleOutOfBounds(t *testing.T) {
	f := latPlane(testSpan(44, 1, 3), testSpan(-101, 1, 3))

	// 200 km rings leave a 2x2 degree grid around its own center.
	config := testConfig()
	s, err := New(config)
	require.NoError(t, err)

	_, err = s.Sample(f)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	config.Bounds = BoundsFill
	config.FillValue = math.NaN()
	s, err = New(config)
	require.NoError(t, err)

	out, err := s.Sample(f)
	require.NoError(t, err)
	var nans int
	for _, v := range out {
		if math.IsNaN(v) {
			nans++
		}
	}
	assert.Greater(t, nans, 0)
	// The zero ring stays on the grid.
	assert.InDelta(t, 45.0, out[0], testutil.LinearTolerance)

	config.Bounds = BoundsClamp
	s, err = New(config)
	require.NoError(t, err)

	out, err = s.Sample(f)
	require.NoError(t, err)
	testutil.AssertNoNaNOrInf(t, out)
	testutil.AssertAllInRange(t, out, 44, 46)
}

func TestSampleSeries(t *testing.T) {
	lats := testSpan(40, 1, 11)
	lons := testSpan(-105, 1, 11)
	steps := make([][]float64, 4)
	for step := range steps {
		vals := make([]float64, len(lats)*len(lons))
		for i := range vals {
			vals[i] = float64(step) * 10
		}
		steps[step] = vals
	}
	sr, err := NewSeries(lats, lons, steps)
	require.NoError(t, err)

	s, err := New(testConfig())
	require.NoError(t, err)

	out, err := s.SampleSeries(sr)
	require.NoError(t, err)
	require.Len(t, out, s.NumPoints())
	for i, row := range out {
		require.Len(t, row, 4, "point %d", i)
		for step, v := range row {
			assert.InDelta(t, float64(step)*10, v, testutil.LinearTolerance,
				"point %d step %d", i, step)
		}
	}
}

func TestSampleMulti(t *testing.T) {
	f := latPlane(testSpan(30, 1, 31), testSpan(-120, 1, 41))

	centers := []Point{
		{Lat: 40, Lon: -110},
		{Lat: 45, Lon: -100},
		{Lat: 35, Lon: -90},
	}

	config := testConfig()
	s, err := New(config)
	require.NoError(t, err)

	sequential, err := s.SampleMulti(f, centers)
	require.NoError(t, err)
	require.Len(t, sequential, len(centers))
	for i, row := range sequential {
		require.Len(t, row, s.NumPoints(), "center %d", i)
		// Zero ring reproduces each center's latitude.
		assert.InDelta(t, centers[i].Lat, row[0], testutil.LinearTolerance)
	}

	config.Parallel = true
	sp, err := New(config)
	require.NoError(t, err)

	parallel, err := sp.SampleMulti(f, centers)
	require.NoError(t, err)
	assert.Equal(t, sequential, parallel)
}

func TestSampleMultiErrors(t *testing.T) {
	f := latPlane(testSpan(30, 1, 31), testSpan(-120, 1, 41))
	s, err := New(testConfig())
	require.NoError(t, err)

	_, err = s.SampleMulti(f, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = s.SampleMulti(nil, []Point{{40, -110}})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	// One center off the grid fails the whole call under BoundsError.
	_, err = s.SampleMulti(f, []Point{{40, -110}, {0, 0}})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestSampleFloat32(t *testing.T) {
	f := latPlane(testSpan(40, 1, 11), testSpan(-105, 1, 11))
	s, err := New(testConfig())
	require.NoError(t, err)

	out64, err := s.Sample(f)
	require.NoError(t, err)
	out32, err := s.SampleFloat32(f)
	require.NoError(t, err)

	require.Len(t, out32, len(out64))
	for i := range out64 {
		assert.InDelta(t, out64[i], float64(out32[i]), 1e-4)
	}
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "bilinear", MethodBilinear.String())
	assert.Equal(t, "nearest", MethodNearest.String())
	assert.Equal(t, "bicubic", MethodBicubic.String())
	assert.Equal(t, "unknown", Method(99).String())
}
