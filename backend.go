package chart

// DrawingBackend is the interface chart elements draw through. It abstracts
// the rendering implementation, allowing the library to target raster
// contexts, vector canvases, or recording sinks.
//
// Implementations live under backend/ and record/. All coordinates are
// backend-space pixels (see [Point]); radius is integral because circle
// primitives are the only place the backends require a whole-pixel size.
//
// Each method reports the backend's own failure, if any. Elements stop at
// the first failure and propagate it wrapped in [DrawingError].
type DrawingBackend interface {
	// DrawLine strokes a straight line between two points.
	DrawLine(p0, p1 Point, style Style) error

	// DrawRect draws an axis-aligned rectangle given its upper-left and
	// bottom-right corners. When filled is false only the outline is
	// stroked.
	DrawRect(upperLeft, bottomRight Point, style Style, filled bool) error

	// DrawCircle draws a circle of the given pixel radius. When filled is
	// false only the outline is stroked.
	DrawCircle(center Point, radius int, style Style, filled bool) error
}
