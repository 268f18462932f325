package chart

// Coord is a single data-space coordinate emitted by an element: a key
// identifying the category slot and a numeric value along the value axis.
type Coord[K comparable] struct {
	Key   K
	Value float64
}

// Element is a drawable chart element.
//
// An element never draws from data space directly. It first exposes the
// coordinates it needs through Coords, the plot projects each of them to a
// pixel [Point], and Draw then receives the projected points in the same
// order. This keeps elements ignorant of scales and lets one element type
// serve any plot that can project its coordinates.
type Element[K comparable] interface {
	// Orient reports the orientation the element was built for. A plot
	// only accepts elements matching its own orientation.
	Orient() Orientation

	// Coords returns every data-space coordinate the element draws
	// through, in a fixed documented order.
	Coords() []Coord[K]

	// Draw renders the element onto the backend. points holds the
	// projection of Coords, index for index. Drawing stops at the first
	// backend failure and returns it.
	Draw(points []Point, b DrawingBackend) error
}
