package chart

import "math"

// Boxplot is a box-and-whisker element for one [Quartiles] summary.
//
// The figure is a rectangle spanning the quartiles, a line across the
// median, whiskers out to the extreme in-fence values with caps at their
// ends, and one unfilled circle per outlier. Construction fixes the
// orientation and the summary; everything else is tuned through the
// fluent setters, which must finish before the element is drawn.
//
//	q := chart.NewQuartiles(sample)
//	box := chart.NewVerticalBoxplot("apples", q).Width(16).Offset(-8)
type Boxplot[K comparable] struct {
	orient       Orientation
	key          K
	values       [5]float64
	outliers     []float64
	style        Style
	width        int
	whiskerWidth float64
	offset       float64
}

var _ Element[string] = (*Boxplot[string])(nil)

// NewVerticalBoxplot builds an upright boxplot for key: the key axis runs
// horizontally and values grow along Y.
func NewVerticalBoxplot[K comparable](key K, q *Quartiles) *Boxplot[K] {
	return newBoxplot(Vertical, key, q)
}

// NewHorizontalBoxplot builds a sideways boxplot for key: the key axis
// runs vertically and values grow along X.
func NewHorizontalBoxplot[K comparable](key K, q *Quartiles) *Boxplot[K] {
	return newBoxplot(Horizontal, key, q)
}

func newBoxplot[K comparable](o Orientation, key K, q *Quartiles) *Boxplot[K] {
	return &Boxplot[K]{
		orient:       o,
		key:          key,
		values:       q.Values(),
		outliers:     q.Outliers(),
		style:        DefaultStyle(),
		width:        10,
		whiskerWidth: 1,
	}
}

// Style sets the stroke style for every part of the figure and returns
// the element for chaining.
func (bp *Boxplot[K]) Style(s Style) *Boxplot[K] {
	bp.style = s
	return bp
}

// Width sets the box width in pixels, measured along the key axis. The
// default is 10.
func (bp *Boxplot[K]) Width(w int) *Boxplot[K] {
	bp.width = w
	return bp
}

// WhiskerWidth sets the whisker cap span as a fraction of the box width.
// The default of 1 makes caps as wide as the box.
func (bp *Boxplot[K]) WhiskerWidth(f float64) *Boxplot[K] {
	bp.whiskerWidth = f
	return bp
}

// Offset shifts the whole figure by delta pixels along the key axis,
// which lets several boxplots share one key slot side by side.
func (bp *Boxplot[K]) Offset(delta float64) *Boxplot[K] {
	bp.offset = delta
	return bp
}

// Orient reports the orientation fixed at construction.
func (bp *Boxplot[K]) Orient() Orientation { return bp.orient }

// Coords returns the element's data-space coordinates: the five summary
// values in whisker order followed by the outliers ascending, all under
// the element's key.
func (bp *Boxplot[K]) Coords() []Coord[K] {
	coords := make([]Coord[K], 0, len(bp.values)+len(bp.outliers))
	for _, v := range bp.values {
		coords = append(coords, Coord[K]{Key: bp.key, Value: v})
	}
	for _, v := range bp.outliers {
		coords = append(coords, Coord[K]{Key: bp.key, Value: v})
	}
	return coords
}

// Draw renders the figure through b. points must be the projection of
// [Boxplot.Coords]; with fewer than five points there is no figure to
// draw and Draw returns nil without touching the backend. The first
// backend failure aborts the sequence and comes back as a [DrawingError].
func (bp *Boxplot[K]) Draw(points []Point, b DrawingBackend) error {
	if len(points) < 5 {
		return nil
	}

	width := float64(bp.width)
	moved := func(p Point) Point { return bp.orient.OffsetKey(p, bp.offset) }
	startBar := func(p Point) Point { return bp.orient.OffsetKey(moved(p), -width/2) }
	endBar := func(p Point) Point { return bp.orient.OffsetKey(moved(p), width/2) }
	startWhisker := func(p Point) Point {
		return bp.orient.OffsetKey(moved(p), -width*bp.whiskerWidth/2)
	}
	endWhisker := func(p Point) Point {
		return bp.orient.OffsetKey(moved(p), width*bp.whiskerWidth/2)
	}

	// Lower whisker cap.
	if err := b.DrawLine(startWhisker(points[0]), endWhisker(points[0]), bp.style); err != nil {
		return drawErr("whisker cap", err)
	}

	// Lower whisker stem, stroked in the line color alone.
	if err := b.DrawLine(moved(points[0]), moved(points[1]), bp.style.LineColor()); err != nil {
		return drawErr("whisker stem", err)
	}

	// Box between the quartiles. Which corner ends up upper-left depends
	// on the projection's axis direction, so normalize instead of
	// assuming an order.
	c1 := startBar(points[3])
	c2 := endBar(points[1])
	upperLeft := Pt(math.Min(c1.X, c2.X), math.Min(c1.Y, c2.Y))
	bottomRight := Pt(math.Max(c1.X, c2.X), math.Max(c1.Y, c2.Y))
	if err := b.DrawRect(upperLeft, bottomRight, bp.style, false); err != nil {
		return drawErr("box", err)
	}

	// Median line across the box width.
	if err := b.DrawLine(startBar(points[2]), endBar(points[2]), bp.style); err != nil {
		return drawErr("median", err)
	}

	// Upper whisker stem and cap.
	if err := b.DrawLine(moved(points[3]), moved(points[4]), bp.style); err != nil {
		return drawErr("whisker stem", err)
	}
	if err := b.DrawLine(startWhisker(points[4]), endWhisker(points[4]), bp.style); err != nil {
		return drawErr("whisker cap", err)
	}

	// One unfilled circle per outlier.
	for _, p := range points[5:] {
		if err := b.DrawCircle(moved(p), bp.width/2, bp.style, false); err != nil {
			return drawErr("outlier", err)
		}
	}
	return nil
}
