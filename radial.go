package radialsampler

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/dkalash/go-radial-sampler/internal/grid"
)

// Point is a geographic coordinate in signed decimal degrees.
// Latitude is positive north, longitude positive east.
type Point struct {
	Lat float64
	Lon float64
}

// Method selects the grid interpolation engine.
type Method int

const (
	// MethodBilinear blends the four surrounding grid nodes linearly per
	// axis. This is the default.
	MethodBilinear Method = iota

	// MethodNearest returns the value at the closest grid node.
	MethodNearest

	// MethodBicubic blends a 4x4 node neighbourhood with Catmull-Rom
	// cubic weights per axis.
	MethodBicubic
)

// String returns the method name as used by the CLI tools.
func (m Method) String() string {
	switch m {
	case MethodBilinear:
		return "bilinear"
	case MethodNearest:
		return "nearest"
	case MethodBicubic:
		return "bicubic"
	default:
		return "unknown"
	}
}

// engine maps the public method to its internal engine.
func (m Method) engine() (grid.Method, error) {
	switch m {
	case MethodBilinear:
		return grid.Bilinear, nil
	case MethodNearest:
		return grid.Nearest, nil
	case MethodBicubic:
		return grid.Bicubic, nil
	default:
		return 0, fmt.Errorf("%w: unknown method %d", ErrInvalidConfig, m)
	}
}

// BoundsPolicy selects the behaviour for web points that fall outside the
// sampled grid.
type BoundsPolicy int

const (
	// BoundsError fails the sample call with ErrOutOfBounds. This is the
	// default.
	BoundsError BoundsPolicy = iota

	// BoundsFill yields Config.FillValue for outside points.
	BoundsFill

	// BoundsClamp clamps outside points onto the grid edge.
	BoundsClamp
)

// policy maps the public bounds policy to its internal counterpart.
func (b BoundsPolicy) policy() (grid.Bounds, error) {
	switch b {
	case BoundsError:
		return grid.BoundsError, nil
	case BoundsFill:
		return grid.BoundsFill, nil
	case BoundsClamp:
		return grid.BoundsClamp, nil
	default:
		return 0, fmt.Errorf("%w: unknown bounds policy %d", ErrInvalidConfig, b)
	}
}

// Errors returned by the sampler.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid sampler configuration")

	// ErrOutOfBounds indicates a web point outside the sampled grid
	// under the BoundsError policy.
	ErrOutOfBounds = grid.ErrOutOfBounds

	// ErrAxis indicates a coordinate axis that is too short, non-finite,
	// or not strictly monotonic.
	ErrAxis = grid.ErrAxis

	// ErrShape indicates a value buffer whose length does not match its
	// coordinate axes.
	ErrShape = grid.ErrShape
)

// Config holds radial sampling configuration.
type Config struct {
	// CenterLat is the latitude of the web origin in degrees.
	CenterLat float64

	// CenterLon is the longitude of the web origin in degrees.
	CenterLon float64

	// RadiusSteps lists the ring distances from the center in
	// kilometres, strictly increasing. The first ring may be zero, in
	// which case the zero ring yields the center once per bearing; a
	// positive first ring causes the center point itself to be
	// prepended to the web.
	RadiusSteps []float64

	// DegreeSteps lists the bearings in degrees clockwise from true
	// north at which each ring is sampled.
	DegreeSteps []float64

	// Method selects the interpolation engine.
	Method Method

	// Bounds selects the behaviour for web points outside the grid.
	Bounds BoundsPolicy

	// FillValue is the value produced for outside points under
	// BoundsFill. math.NaN() is the conventional choice.
	FillValue float64

	// Parallel enables concurrent center processing in SampleMulti.
	// Has no effect on single-center sampling.
	Parallel bool
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.CenterLat < -maxLatDeg || c.CenterLat > maxLatDeg || math.IsNaN(c.CenterLat) {
		return fmt.Errorf("%w: center latitude %v outside [-90, 90]", ErrInvalidConfig, c.CenterLat)
	}
	if math.IsNaN(c.CenterLon) || math.IsInf(c.CenterLon, 0) {
		return fmt.Errorf("%w: center longitude must be finite", ErrInvalidConfig)
	}

	if len(c.RadiusSteps) == 0 {
		return fmt.Errorf("%w: at least one radius step required", ErrInvalidConfig)
	}
	if c.RadiusSteps[0] < 0 {
		return fmt.Errorf("%w: starting radius must not be negative", ErrInvalidConfig)
	}
	for i, km := range c.RadiusSteps {
		if math.IsNaN(km) || math.IsInf(km, 0) {
			return fmt.Errorf("%w: radius step %d is not finite", ErrInvalidConfig, i)
		}
		if i > 0 && km <= c.RadiusSteps[i-1] {
			return fmt.Errorf("%w: radius steps must be strictly increasing", ErrInvalidConfig)
		}
	}

	if len(c.DegreeSteps) == 0 {
		return fmt.Errorf("%w: at least one degree step required", ErrInvalidConfig)
	}
	for i, deg := range c.DegreeSteps {
		if math.IsNaN(deg) || math.IsInf(deg, 0) {
			return fmt.Errorf("%w: degree step %d is not finite", ErrInvalidConfig, i)
		}
	}

	if n := webSize(c.RadiusSteps, c.DegreeSteps); n > maxWebPoints {
		return fmt.Errorf("%w: web of %d points exceeds maximum %d", ErrInvalidConfig, n, maxWebPoints)
	}

	if _, err := c.Method.engine(); err != nil {
		return err
	}
	if _, err := c.Bounds.policy(); err != nil {
		return err
	}

	return nil
}

// Sampler samples gridded fields along a precomputed radial web. A Sampler
// holds no mutable state after construction and is safe for concurrent use.
type Sampler struct {
	config Config
	method grid.Method
	bounds grid.Bounds
	points []Point
}

// New creates a sampler with the specified configuration. The web is laid
// out once, so repeated Sample calls only pay for interpolation.
func New(config *Config) (*Sampler, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	method, err := config.Method.engine()
	if err != nil {
		return nil, err
	}
	bounds, err := config.Bounds.policy()
	if err != nil {
		return nil, err
	}

	s := &Sampler{
		config: *config,
		method: method,
		bounds: bounds,
	}
	s.config.RadiusSteps = append([]float64(nil), config.RadiusSteps...)
	s.config.DegreeSteps = append([]float64(nil), config.DegreeSteps...)
	s.points = buildWeb(
		Point{Lat: config.CenterLat, Lon: config.CenterLon},
		s.config.RadiusSteps, s.config.DegreeSteps)

	return s, nil
}

// Center returns the web origin.
func (s *Sampler) Center() Point {
	return Point{Lat: s.config.CenterLat, Lon: s.config.CenterLon}
}

// NumPoints returns the number of points in the web.
func (s *Sampler) NumPoints() int {
	return len(s.points)
}

// Points returns the web coordinates in sample order. Useful for plotting
// results on geographically projected axes.
func (s *Sampler) Points() []Point {
	return append([]Point(nil), s.points...)
}

// Sample interpolates a 2D field at every web point. The result has
// NumPoints entries in web order.
func (s *Sampler) Sample(f *Field) ([]float64, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: field is nil", ErrInvalidConfig)
	}
	return s.sampleWeb(f, s.points)
}

// SampleFloat32 is like Sample but returns float32 values. Interpolation
// still runs in float64; the conversion happens at the boundary.
func (s *Sampler) SampleFloat32(f *Field) ([]float32, error) {
	out64, err := s.Sample(f)
	if err != nil {
		return nil, err
	}
	out32 := make([]float32, len(out64))
	for i, v := range out64 {
		out32[i] = float32(v)
	}
	return out32, nil
}

// SampleSeries interpolates a time series at every web point. The result
// is indexed [point][step].
func (s *Sampler) SampleSeries(sr *Series) ([][]float64, error) {
	if sr == nil {
		return nil, fmt.Errorf("%w: series is nil", ErrInvalidConfig)
	}

	out := make([][]float64, len(s.points))
	for i, p := range s.points {
		row := make([]float64, sr.Steps())
		if err := sr.grid.At(s.method, s.bounds, s.config.FillValue, p.Lat, p.Lon, row); err != nil {
			return nil, fmt.Errorf("point %d (%.4f, %.4f): %w", i, p.Lat, p.Lon, err)
		}
		out[i] = row
	}
	return out, nil
}

// SampleMulti samples a 2D field around multiple centers using the
// configured ring and bearing steps; the configured center is ignored. The
// result is indexed [center][point]. When Config.Parallel is set, centers
// are processed concurrently.
func (s *Sampler) SampleMulti(f *Field, centers []Point) ([][]float64, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: field is nil", ErrInvalidConfig)
	}
	if len(centers) == 0 {
		return nil, fmt.Errorf("%w: at least one center required", ErrInvalidConfig)
	}

	output := make([][]float64, len(centers))

	if !s.config.Parallel || len(centers) <= 1 {
		for i, c := range centers {
			web := buildWeb(c, s.config.RadiusSteps, s.config.DegreeSteps)
			result, err := s.sampleWeb(f, web)
			if err != nil {
				return nil, fmt.Errorf("center %d: %w", i, err)
			}
			output[i] = result
		}
		return output, nil
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(centers))

	for i, c := range centers {
		wg.Add(1)
		go func(idx int, center Point) {
			defer wg.Done()

			web := buildWeb(center, s.config.RadiusSteps, s.config.DegreeSteps)
			result, err := s.sampleWeb(f, web)
			if err != nil {
				errChan <- fmt.Errorf("center %d: %w", idx, err)
				return
			}
			output[idx] = result
		}(i, c)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return output, nil
}

// sampleWeb interpolates the field at each point of a web.
func (s *Sampler) sampleWeb(f *Field, web []Point) ([]float64, error) {
	out := make([]float64, len(web))
	for i, p := range web {
		v, err := f.grid.At(s.method, s.bounds, s.config.FillValue, p.Lat, p.Lon)
		if err != nil {
			return nil, fmt.Errorf("point %d (%.4f, %.4f): %w", i, p.Lat, p.Lon, err)
		}
		out[i] = v
	}
	return out, nil
}
