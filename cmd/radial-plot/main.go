// Command radial-plot renders a radial web sample as an HTML scatter
// chart: web points are laid out in plane polar coordinates around the
// center and coloured by interpolated value.
//
// Usage:
//
//	radial-plot -lat 45.5 -lon -122.6 grid.csv web.html
//	radial-plot -lat 45.5 -lon -122.6 -rings 0:100:2000 -method bicubic grid.csv web.html
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	radialsampler "github.com/dkalash/go-radial-sampler"
	"github.com/dkalash/go-radial-sampler/internal/gridio"
)

const (
	defaultRingSpec   = "0:50:1000"
	defaultBearingDeg = 10.0
	minRequiredArgs   = 2

	// Chart layout
	chartSize  = "900px"
	symbolSize = 6
	axisPad    = 1.05
)

// viridisColors is the value colour ramp for the visual map.
var viridisColors = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	lat := flag.Float64("lat", math.NaN(), "Center latitude in degrees (required)")
	lon := flag.Float64("lon", math.NaN(), "Center longitude in degrees (required)")
	ringSpec := flag.String("rings", defaultRingSpec, "Ring distances in km as start:step:stop")
	bearingDeg := flag.Float64("bearings", defaultBearingDeg, "Bearing resolution in degrees")
	method := flag.String("method", "bilinear", "Interpolation method: nearest, bilinear, bicubic")
	title := flag.String("title", "Radial web sample", "Chart title")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs || math.IsNaN(*lat) || math.IsNaN(*lon) {
		fmt.Fprintf(os.Stderr, "Usage: %s -lat LAT -lon LON [options] grid.csv web.html\n\n", os.Args[0])
		flag.PrintDefaults()
		return fmt.Errorf("missing center or file arguments")
	}

	rings, err := gridio.ParseRingSpec(*ringSpec)
	if err != nil {
		return err
	}
	bearings := radialsampler.Bearings(*bearingDeg)
	if bearings == nil {
		return fmt.Errorf("invalid bearing resolution %v", *bearingDeg)
	}
	m, err := gridio.ParseMethod(*method)
	if err != nil {
		return err
	}

	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	field, err := gridio.ReadField(in)
	if err != nil {
		return fmt.Errorf("failed to read grid: %w", err)
	}

	vals, err := sampleWeb(field, *lat, *lon, rings, bearings, m)
	if err != nil {
		return err
	}

	scatter := buildChart(*title, rings, bearings, vals)
	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	if err := scatter.Render(out); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	fmt.Printf("Rendered %d web points to %s\n", len(vals), args[1])
	return nil
}

func sampleWeb(field *radialsampler.Field, lat, lon float64, rings, bearings []float64, m radialsampler.Method) ([]float64, error) {
	vals, _, err := radialsampler.SampleField(field, lat, lon, rings, bearings, m)
	if err != nil {
		return nil, fmt.Errorf("failed to sample grid: %w", err)
	}
	return vals, nil
}

// buildChart lays the web out in plane polar coordinates (x east, y north,
// km from center) and colours each point by its sampled value.
func buildChart(title string, rings, bearings, vals []float64) *charts.Scatter {
	data := make([]opts.ScatterData, 0, len(vals))
	minVal, maxVal := vals[0], vals[0]

	// Mirror the web layout: optional origin first, then ring-major.
	k := 0
	appendPoint := func(km, bearing float64) {
		v := vals[k]
		theta := bearing * math.Pi / 180
		x := km * math.Sin(theta)
		y := km * math.Cos(theta)
		data = append(data, opts.ScatterData{Value: []interface{}{x, y, v}})
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
		k++
	}
	if rings[0] > 0 {
		appendPoint(0, 0)
	}
	for _, km := range rings {
		for _, deg := range bearings {
			appendPoint(km, deg)
		}
	}

	pad := rings[len(rings)-1] * axisPad
	if pad == 0 {
		pad = 1
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     chartSize,
			Height:    chartSize,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d rings x %d bearings", len(rings), len(bearings)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "East (km)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "North (km)", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(minVal),
			Max:        float32(maxVal),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridisColors},
		}),
	)

	scatter.AddSeries("web", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: symbolSize}))
	return scatter
}
