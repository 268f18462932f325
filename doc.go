// Package chart provides statistical chart elements for Go.
//
// # Overview
//
// chart is a Pure Go library of statistical chart elements designed to
// integrate with the GoGPU ecosystem. It reduces raw numeric samples to
// box-and-whisker summaries and renders them through pluggable drawing
// backends, along either a vertical or a horizontal key axis.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/chart"
//	    "github.com/gogpu/chart/backend/raster"
//	    "github.com/gogpu/gg"
//	)
//
//	// Summarize a sample
//	q := chart.NewQuartiles([]float64{7, 15, 36, 39, 40, 41})
//
//	// Assemble a plot with one vertical boxplot
//	p := chart.New[string](chart.Vertical, 640, 480)
//	p.Add(chart.NewVerticalBoxplot("trial", q).Width(24))
//
//	// Render through a gg drawing context
//	dc := gg.NewContext(640, 480)
//	if err := p.Draw(raster.New(dc)); err != nil {
//	    // handle backend failure
//	}
//
// # Architecture
//
// The library is organized into:
//   - Statistics: Quartiles (five-number summary plus Tukey outliers)
//   - Elements: Boxplot, ErrorBar (orientation-agnostic draw geometry)
//   - Assembly: Plot, Linear and Bands scales (domain-to-pixel projection)
//   - Backends: DrawingBackend implementations under backend/ and record/
//
// # Coordinate System
//
// Backend space uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// An element's key axis carries its categorical position; the value axis
// carries the measured quantity. Vertical elements put the key on X,
// horizontal elements put it on Y.
//
// # Error Model
//
// API misuse such as an empty sample or NaN input panics. Only drawing
// backend failures surface as errors, wrapped in [DrawingError] and
// reported by the draw entry points.
package chart
