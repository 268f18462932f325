// Package vgcanvas renders chart primitives onto a gonum/plot canvas.
//
// The backend adapts a [draw.Canvas] to chart.DrawingBackend, which puts
// every vg target (PNG, SVG, PDF, EPS canvases) behind the chart drawing
// contract. One chart pixel maps to one printer's point on the canvas.
//
// The vg coordinate system has its origin at the bottom-left with Y
// growing upward; chart coordinates grow downward from the top-left. The
// adapter flips Y against the canvas rectangle, so elements land on the
// canvas the same way they land on a raster image.
package vgcanvas

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/gogpu/chart"
)

// Backend adapts a draw.Canvas to chart.DrawingBackend.
//
// vg canvases report failures when the target is finally written out, not
// per operation, so every Backend method returns nil.
type Backend struct {
	canvas draw.Canvas
}

var _ chart.DrawingBackend = (*Backend)(nil)

// New wraps a draw canvas. Drawing uses the canvas rectangle as the chart
// surface: chart (0, 0) is the rectangle's top-left corner.
func New(c draw.Canvas) *Backend {
	return &Backend{canvas: c}
}

// DrawLine implements chart.DrawingBackend.
func (b *Backend) DrawLine(p0, p1 chart.Point, style chart.Style) error {
	b.apply(style)
	var path vg.Path
	path.Move(b.point(p0))
	path.Line(b.point(p1))
	b.canvas.Stroke(path)
	return nil
}

// DrawRect implements chart.DrawingBackend.
func (b *Backend) DrawRect(upperLeft, bottomRight chart.Point, style chart.Style, filled bool) error {
	b.apply(style)
	var path vg.Path
	path.Move(b.point(upperLeft))
	path.Line(b.point(chart.Pt(bottomRight.X, upperLeft.Y)))
	path.Line(b.point(bottomRight))
	path.Line(b.point(chart.Pt(upperLeft.X, bottomRight.Y)))
	path.Close()
	if filled {
		b.canvas.Fill(path)
	} else {
		b.canvas.Stroke(path)
	}
	return nil
}

// DrawCircle implements chart.DrawingBackend.
func (b *Backend) DrawCircle(center chart.Point, radius int, style chart.Style, filled bool) error {
	b.apply(style)
	c := b.point(center)
	r := vg.Length(radius)
	var path vg.Path
	path.Move(vg.Point{X: c.X + r, Y: c.Y})
	path.Arc(c, r, 0, 2*math.Pi)
	path.Close()
	if filled {
		b.canvas.Fill(path)
	} else {
		b.canvas.Stroke(path)
	}
	return nil
}

// apply moves the style onto the canvas. The dash pattern is cleared so a
// previously dashed canvas does not leak into chart output.
func (b *Backend) apply(style chart.Style) {
	b.canvas.SetColor(style.Color.Color())
	b.canvas.SetLineWidth(vg.Length(style.StrokeWidth))
	b.canvas.SetLineDash(nil, 0)
}

// point flips a chart point into the canvas coordinate system.
func (b *Backend) point(p chart.Point) vg.Point {
	return vg.Point{
		X: b.canvas.Rectangle.Min.X + vg.Length(p.X),
		Y: b.canvas.Rectangle.Max.Y - vg.Length(p.Y),
	}
}
