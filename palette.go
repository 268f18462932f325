package chart

import (
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// Palette is a fixed cycle of series colors. Indexing past the end wraps
// around, so any number of elements can share one palette.
type Palette struct {
	colors []gg.RGBA
}

// NewPalette builds a palette from the given colors. Called with none it
// returns the default palette.
func NewPalette(colors ...color.Color) Palette {
	if len(colors) == 0 {
		return DefaultPalette()
	}
	p := Palette{colors: make([]gg.RGBA, len(colors))}
	for i, c := range colors {
		p.colors[i] = gg.FromColor(c)
	}
	return p
}

// DefaultPalette returns the package's categorical series colors, picked
// from the SVG named colors for contrast between neighbors.
func DefaultPalette() Palette {
	return NewPalette(
		colornames.Steelblue,
		colornames.Darkorange,
		colornames.Seagreen,
		colornames.Crimson,
		colornames.Mediumpurple,
		colornames.Goldenrod,
		colornames.Teal,
		colornames.Palevioletred,
	)
}

// Len reports the number of colors before the palette repeats.
func (p Palette) Len() int { return len(p.colors) }

// Color returns the color for series index i, wrapping modulo the palette
// length. Negative indexes wrap the same way.
func (p Palette) Color(i int) gg.RGBA {
	n := len(p.colors)
	return p.colors[((i%n)+n)%n]
}
