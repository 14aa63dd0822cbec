// Package gridio implements the CSV grid format and flag parsing shared by
// the radial-sample and radial-plot commands.
//
// The grid format is a plain CSV matrix: the first row holds a corner
// label followed by the longitude axis, every following row holds a
// latitude followed by that row's values.
package gridio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	radialsampler "github.com/dkalash/go-radial-sampler"
)

// ErrFormat indicates a malformed grid CSV file.
var ErrFormat = errors.New("malformed grid csv")

// ringSpecParts is the number of colon-separated fields in a ring spec.
const ringSpecParts = 3

// ReadField parses a CSV grid matrix into a Field.
func ReadField(r io.Reader) (*radialsampler.Field, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if len(records) < 3 || len(records[0]) < 3 {
		return nil, fmt.Errorf("%w: need at least a 2x2 grid", ErrFormat)
	}

	lons := make([]float64, len(records[0])-1)
	for i, cell := range records[0][1:] {
		lons[i], err = strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: longitude %q", ErrFormat, cell)
		}
	}

	lats := make([]float64, len(records)-1)
	vals := make([]float64, len(lats)*len(lons))
	for j, row := range records[1:] {
		if len(row) != len(lons)+1 {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrFormat, j+1, len(row), len(lons)+1)
		}
		lats[j], err = strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: latitude %q", ErrFormat, row[0])
		}
		for i, cell := range row[1:] {
			vals[j*len(lons)+i], err = strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: value %q at row %d col %d", ErrFormat, cell, j+1, i+1)
			}
		}
	}

	return radialsampler.NewField(lats, lons, vals)
}

// WriteSamples writes sampled web points as CSV rows of
// index,lat,lon,value.
func WriteSamples(w io.Writer, pts []radialsampler.Point, vals []float64) error {
	if len(pts) != len(vals) {
		return fmt.Errorf("%w: %d points but %d values", ErrFormat, len(pts), len(vals))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "lat", "lon", "value"}); err != nil {
		return err
	}
	for i, p := range pts {
		record := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(p.Lat, 'f', -1, 64),
			strconv.FormatFloat(p.Lon, 'f', -1, 64),
			strconv.FormatFloat(vals[i], 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseRingSpec parses a "start:step:stop" ring specification in
// kilometres (e.g. "0:50:1000") into ring distances.
func ParseRingSpec(spec string) ([]float64, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != ringSpecParts {
		return nil, fmt.Errorf("ring spec %q: want start:step:stop", spec)
	}

	nums := make([]float64, ringSpecParts)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("ring spec %q: %v", spec, err)
		}
		nums[i] = v
	}

	rings := radialsampler.Rings(nums[0], nums[2], nums[1])
	if rings == nil {
		return nil, fmt.Errorf("ring spec %q: empty range or non-positive step", spec)
	}
	return rings, nil
}

// ParseMethod maps a method name to its interpolation method.
func ParseMethod(s string) (radialsampler.Method, error) {
	switch strings.ToLower(s) {
	case "bilinear", "linear":
		return radialsampler.MethodBilinear, nil
	case "nearest":
		return radialsampler.MethodNearest, nil
	case "bicubic", "cubic":
		return radialsampler.MethodBicubic, nil
	default:
		return 0, fmt.Errorf("unknown method %q (want nearest, bilinear, or bicubic)", s)
	}
}

// ParseBounds maps a bounds policy name to its policy.
func ParseBounds(s string) (radialsampler.BoundsPolicy, error) {
	switch strings.ToLower(s) {
	case "error":
		return radialsampler.BoundsError, nil
	case "fill":
		return radialsampler.BoundsFill, nil
	case "clamp":
		return radialsampler.BoundsClamp, nil
	default:
		return 0, fmt.Errorf("unknown bounds policy %q (want error, fill, or clamp)", s)
	}
}
