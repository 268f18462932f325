package chart

// Orientation selects which screen axis carries an element's key and
// which carries its values.
//
// Every coordinate an element emits is a (key, value) pair in data space.
// The orientation maps that pair onto a backend [Point]: Vertical puts the
// key on X and the value on Y, Horizontal does the opposite. Elements and
// plots built with different orientations cannot be mixed.
type Orientation uint8

const (
	// Vertical draws keys along the horizontal axis and values along the
	// vertical axis. Boxes stand upright.
	Vertical Orientation = iota

	// Horizontal draws keys along the vertical axis and values along the
	// horizontal axis. Boxes lie sideways.
	Horizontal
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	default:
		return "Unknown"
	}
}

// MakePoint assembles a backend point from a projected key position and a
// projected value position, each already in pixel space.
func (o Orientation) MakePoint(key, value float64) Point {
	if o == Horizontal {
		return Pt(value, key)
	}
	return Pt(key, value)
}

// OffsetKey shifts a point by delta along the key axis, leaving the value
// axis untouched. Offsetting by delta and then by -delta restores the
// original point.
func (o Orientation) OffsetKey(p Point, delta float64) Point {
	if o == Horizontal {
		return Pt(p.X, p.Y+delta)
	}
	return Pt(p.X+delta, p.Y)
}

// key reads back the key-axis component of a point.
func (o Orientation) key(p Point) float64 {
	if o == Horizontal {
		return p.Y
	}
	return p.X
}

// value reads back the value-axis component of a point.
func (o Orientation) value(p Point) float64 {
	if o == Horizontal {
		return p.X
	}
	return p.Y
}
