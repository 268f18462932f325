package chart

import "github.com/gogpu/gg"

// Style describes how a backend strokes or fills a primitive: a color and
// a stroke width in pixels. Colors use the GoGPU ecosystem color type
// [gg.RGBA] with components in [0, 1].
type Style struct {
	// Color is the stroke and fill color.
	Color gg.RGBA

	// StrokeWidth is the outline width in pixels.
	StrokeWidth float64
}

// DefaultStyle returns the style elements are created with: an opaque
// black stroke one pixel wide.
func DefaultStyle() Style {
	return Style{Color: gg.Black, StrokeWidth: 1}
}

// LineColor reduces the style to its color alone, with a one pixel stroke.
func (s Style) LineColor() Style {
	return Style{Color: s.Color, StrokeWidth: 1}
}
