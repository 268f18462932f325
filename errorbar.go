package chart

// ErrorBar marks a central value together with its uncertainty range:
// a stem from low to high, a cap at each end, and a filled circle at the
// center value. It shares the boxplot's orientation and offset machinery,
// so the two compose on the same plot.
type ErrorBar[K comparable] struct {
	orient Orientation
	key    K
	low    float64
	mid    float64
	high   float64
	style  Style
	width  int
	offset float64
}

var _ Element[string] = (*ErrorBar[string])(nil)

// NewVerticalErrorBar builds an upright error bar for key covering the
// value range low..high with its center marker at mid.
func NewVerticalErrorBar[K comparable](key K, low, mid, high float64) *ErrorBar[K] {
	return newErrorBar(Vertical, key, low, mid, high)
}

// NewHorizontalErrorBar builds a sideways error bar for key covering the
// value range low..high with its center marker at mid.
func NewHorizontalErrorBar[K comparable](key K, low, mid, high float64) *ErrorBar[K] {
	return newErrorBar(Horizontal, key, low, mid, high)
}

func newErrorBar[K comparable](o Orientation, key K, low, mid, high float64) *ErrorBar[K] {
	return &ErrorBar[K]{
		orient: o,
		key:    key,
		low:    low,
		mid:    mid,
		high:   high,
		style:  DefaultStyle(),
		width:  10,
	}
}

// Style sets the stroke style and returns the element for chaining.
func (eb *ErrorBar[K]) Style(s Style) *ErrorBar[K] {
	eb.style = s
	return eb
}

// Width sets the cap span in pixels along the key axis. The default is 10.
func (eb *ErrorBar[K]) Width(w int) *ErrorBar[K] {
	eb.width = w
	return eb
}

// Offset shifts the whole figure by delta pixels along the key axis.
func (eb *ErrorBar[K]) Offset(delta float64) *ErrorBar[K] {
	eb.offset = delta
	return eb
}

// Orient reports the orientation fixed at construction.
func (eb *ErrorBar[K]) Orient() Orientation { return eb.orient }

// Coords returns the three data-space coordinates in order low, mid, high.
func (eb *ErrorBar[K]) Coords() []Coord[K] {
	return []Coord[K]{
		{Key: eb.key, Value: eb.low},
		{Key: eb.key, Value: eb.mid},
		{Key: eb.key, Value: eb.high},
	}
}

// Draw renders the bar through b. points must be the projection of
// [ErrorBar.Coords]; with fewer than three points Draw returns nil
// without touching the backend. The first backend failure aborts the
// sequence and comes back as a [DrawingError].
func (eb *ErrorBar[K]) Draw(points []Point, b DrawingBackend) error {
	if len(points) < 3 {
		return nil
	}

	width := float64(eb.width)
	moved := func(p Point) Point { return eb.orient.OffsetKey(p, eb.offset) }
	startBar := func(p Point) Point { return eb.orient.OffsetKey(moved(p), -width/2) }
	endBar := func(p Point) Point { return eb.orient.OffsetKey(moved(p), width/2) }

	if err := b.DrawLine(startBar(points[0]), endBar(points[0]), eb.style); err != nil {
		return drawErr("cap", err)
	}
	if err := b.DrawLine(moved(points[0]), moved(points[2]), eb.style); err != nil {
		return drawErr("stem", err)
	}
	if err := b.DrawLine(startBar(points[2]), endBar(points[2]), eb.style); err != nil {
		return drawErr("cap", err)
	}
	if err := b.DrawCircle(moved(points[1]), eb.width/2, eb.style, true); err != nil {
		return drawErr("marker", err)
	}
	return nil
}
