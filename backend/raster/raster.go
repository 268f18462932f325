// Package raster renders chart primitives through a gg raster context.
//
// The backend wraps a caller-owned [gg.Context], so chart drawing can
// interleave freely with any other drawing on the same context. Every
// primitive sets the context's color and line width from the element
// style, builds the path, and strokes or fills it immediately.
//
//	dc := gg.NewContext(640, 480)
//	if err := plot.Draw(raster.New(dc)); err != nil {
//	    // ...
//	}
//	img := dc.Image()
package raster

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/chart"
)

// Backend adapts a gg context to chart.DrawingBackend.
type Backend struct {
	dc *gg.Context
}

var _ chart.DrawingBackend = (*Backend)(nil)

// New wraps an existing gg context. The context's pixel buffer and
// transform are left exactly as the caller configured them.
func New(dc *gg.Context) *Backend {
	return &Backend{dc: dc}
}

// Context returns the wrapped gg context.
func (b *Backend) Context() *gg.Context { return b.dc }

// DrawLine implements chart.DrawingBackend.
func (b *Backend) DrawLine(p0, p1 chart.Point, style chart.Style) error {
	b.apply(style)
	b.dc.DrawLine(p0.X, p0.Y, p1.X, p1.Y)
	return b.dc.Stroke()
}

// DrawRect implements chart.DrawingBackend.
func (b *Backend) DrawRect(upperLeft, bottomRight chart.Point, style chart.Style, filled bool) error {
	b.apply(style)
	b.dc.DrawRectangle(
		upperLeft.X, upperLeft.Y,
		bottomRight.X-upperLeft.X, bottomRight.Y-upperLeft.Y,
	)
	if filled {
		return b.dc.Fill()
	}
	return b.dc.Stroke()
}

// DrawCircle implements chart.DrawingBackend.
func (b *Backend) DrawCircle(center chart.Point, radius int, style chart.Style, filled bool) error {
	b.apply(style)
	b.dc.DrawCircle(center.X, center.Y, float64(radius))
	if filled {
		return b.dc.Fill()
	}
	return b.dc.Stroke()
}

// apply moves the style onto the context ahead of a path build.
func (b *Backend) apply(style chart.Style) {
	c := style.Color
	b.dc.SetRGBA(c.R, c.G, c.B, c.A)
	b.dc.SetLineWidth(style.StrokeWidth)
}
