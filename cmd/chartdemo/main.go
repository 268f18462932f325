// Command chartdemo renders a sample box-and-whisker chart.
package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/backend/raster"
)

func main() {
	var (
		width      = flag.Int("width", 800, "image width")
		height     = flag.Int("height", 600, "image height")
		output     = flag.String("output", "boxplot.png", "output file")
		horizontal = flag.Bool("horizontal", false, "lay the boxes sideways")
		seed       = flag.Int64("seed", 42, "sample generator seed")
	)
	flag.Parse()

	orient := chart.Vertical
	if *horizontal {
		orient = chart.Horizontal
	}

	hosts := []string{"fra-1", "fra-2", "ams-1", "sfo-1", "syd-1"}
	samples := makeSamples(hosts, *seed)

	p := chart.New[string](orient, *width, *height, chart.WithPadding(48))
	palette := chart.DefaultPalette()

	for i, host := range hosts {
		q := chart.NewQuartiles(samples[host])
		style := chart.Style{Color: palette.Color(i), StrokeWidth: 2}
		if orient == chart.Horizontal {
			p.Add(chart.NewHorizontalBoxplot(host, q).Style(style).Width(24))
		} else {
			p.Add(chart.NewVerticalBoxplot(host, q).Style(style).Width(24))
		}

		// An error bar beside each box marks the whisker span with the
		// median as its center.
		bar := errorBar(orient, host, q).Style(style.LineColor()).Width(10).Offset(22)
		p.Add(bar)
	}

	dc := gg.NewContext(*width, *height)
	dc.ClearWithColor(gg.White)

	if err := p.Draw(raster.New(dc)); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}
	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Chart saved to %s (%dx%d)\n", *output, *width, *height)
}

// makeSamples fabricates a latency-like distribution per host: a cloud of
// values around a per-host center plus a couple of far-out spikes so every
// box gets visible outliers.
func makeSamples(hosts []string, seed int64) map[string][]float64 {
	rng := rand.New(rand.NewSource(seed))
	samples := make(map[string][]float64, len(hosts))
	for i, host := range hosts {
		center := 40 + 15*float64(i)
		spread := 6 + 2*float64(i)
		values := make([]float64, 0, 60)
		for range 56 {
			values = append(values, center+rng.NormFloat64()*spread)
		}
		values = append(values,
			center+spread*8,
			center+spread*10,
			center-spread*7,
		)
		samples[host] = values
	}
	return samples
}

func errorBar(orient chart.Orientation, host string, q *chart.Quartiles) *chart.ErrorBar[string] {
	if orient == chart.Horizontal {
		return chart.NewHorizontalErrorBar(host, q.Minimum(), q.Median(), q.Maximum())
	}
	return chart.NewVerticalErrorBar(host, q.Minimum(), q.Median(), q.Maximum())
}
