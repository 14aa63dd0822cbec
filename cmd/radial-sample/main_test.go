package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	radialsampler "github.com/dkalash/go-radial-sampler"
)

// writeTestGrid writes a uniform 11x11 grid centered on (45, -100) filled
// with a constant value and returns its path.
func writeTestGrid(t *testing.T, value float64) string {
	t.Helper()

	format := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

	var sb strings.Builder
	sb.WriteString("lat\\lon")
	for i := range 11 {
		sb.WriteString(",")
		sb.WriteString(format(-105 + float64(i)))
	}
	sb.WriteString("\n")
	for j := range 11 {
		sb.WriteString(format(40 + float64(j)))
		for range 11 {
			sb.WriteString(",")
			sb.WriteString(format(value))
		}
		sb.WriteString("\n")
	}

	path := filepath.Join(t.TempDir(), "grid.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
	return path
}

func testConfig() *radialsampler.Config {
	return &radialsampler.Config{
		CenterLat:   45,
		CenterLon:   -100,
		RadiusSteps: radialsampler.Rings(0, 200, 100),
		DegreeSteps: radialsampler.Bearings(90),
	}
}

func TestSampleFile_Success(t *testing.T) {
	inputPath := writeTestGrid(t, 7)
	outputPath := filepath.Join(t.TempDir(), "samples.csv")

	n, err := sampleFile(inputPath, outputPath, testConfig(), 1, 0)
	require.NoError(t, err)
	// Zero innermost ring: 3 rings x 4 bearings, no extra origin point.
	assert.Equal(t, 12, n)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, n+1)
	assert.Equal(t, "index,lat,lon,value", lines[0])
	for _, line := range lines[1:] {
		assert.True(t, strings.HasSuffix(line, ",7"), "constant field sample: %s", line)
	}
}

func TestSampleFile_ScaleAndOffset(t *testing.T) {
	inputPath := writeTestGrid(t, 10)
	outputPath := filepath.Join(t.TempDir(), "samples.csv")

	// 10*2 - 5 = 15
	_, err := sampleFile(inputPath, outputPath, testConfig(), 2, -5)
	require.NoError(t, err)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	for _, line := range lines[1:] {
		assert.True(t, strings.HasSuffix(line, ",15"), "scaled sample: %s", line)
	}
}

func TestSampleFile_InputNotFound(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "samples.csv")

	_, err := sampleFile("/nonexistent/grid.csv", outputPath, testConfig(), 1, 0)
	require.Error(t, err)
}

func TestSampleFile_InvalidGrid(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "bad.csv")
	require.NoError(t, os.WriteFile(inputPath, []byte("not,a\ngrid,csv\n"), 0o644))

	_, err := sampleFile(inputPath, filepath.Join(tmpDir, "out.csv"), testConfig(), 1, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read grid")
}

func TestSampleFile_InvalidConfig(t *testing.T) {
	inputPath := writeTestGrid(t, 1)
	config := testConfig()
	config.CenterLat = 91

	_, err := sampleFile(inputPath, filepath.Join(t.TempDir(), "out.csv"), config, 1, 0)
	require.ErrorIs(t, err, radialsampler.ErrInvalidConfig)
}

func TestSampleFile_OutOfBounds(t *testing.T) {
	inputPath := writeTestGrid(t, 1)
	config := testConfig()
	config.RadiusSteps = radialsampler.Rings(0, 5000, 1000)

	_, err := sampleFile(inputPath, filepath.Join(t.TempDir(), "out.csv"), config, 1, 0)
	require.ErrorIs(t, err, radialsampler.ErrOutOfBounds)
}

func TestSampleFile_OutputNotWritable(t *testing.T) {
	inputPath := writeTestGrid(t, 1)

	_, err := sampleFile(inputPath, "/nonexistent/dir/out.csv", testConfig(), 1, 0)
	require.Error(t, err)
}
