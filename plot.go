package chart

// Plot arranges elements of one orientation on a fixed-size pixel canvas.
//
// The plot owns the projection. Keys land on band centers along the key
// axis, values map linearly onto the value axis, and each element receives
// its projected points in coordinate order. Elements draw strictly
// sequentially in the order they were added; the first failure stops the
// draw and leaves the canvas partially rendered.
//
// A Plot is not safe for concurrent use.
type Plot[K comparable] struct {
	orient     Orientation
	width      float64
	height     float64
	padding    float64
	valueMin   float64
	valueMax   float64
	valueFixed bool
	bands      *Bands[K]
	elements   []Element[K]
}

// New creates an empty plot with the given orientation and canvas size in
// pixels.
func New[K comparable](o Orientation, width, height int, opts ...PlotOption) *Plot[K] {
	options := defaultPlotOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Plot[K]{
		orient:     o,
		width:      float64(width),
		height:     float64(height),
		padding:    options.padding,
		valueMin:   options.valueMin,
		valueMax:   options.valueMax,
		valueFixed: options.valueFixed,
		bands:      NewBands[K](),
	}
}

// Orient reports the plot's orientation.
func (p *Plot[K]) Orient() Orientation { return p.orient }

// Keys returns the keys registered so far, in insertion order.
func (p *Plot[K]) Keys() []K { return p.bands.Keys() }

// Add registers an element and every key it draws under. The element must
// share the plot's orientation; mixing orientations is a programmer error
// and panics.
func (p *Plot[K]) Add(el Element[K]) {
	if el.Orient() != p.orient {
		panic("chart: element orientation does not match the plot")
	}
	for _, c := range el.Coords() {
		p.bands.Add(c.Key)
	}
	p.elements = append(p.elements, el)
}

// Draw projects every element and renders it through b, in the order the
// elements were added. With nothing added, Draw is a no-op. The first
// element failure stops the draw and is returned.
func (p *Plot[K]) Draw(b DrawingBackend) error {
	if len(p.elements) == 0 {
		return nil
	}

	vmin, vmax := p.valueMin, p.valueMax
	if !p.valueFixed {
		vmin, vmax = p.fitValueRange()
	}
	keyLo, keyHi, value := p.frame(vmin, vmax)

	Logger().Debug("drawing plot",
		"orientation", p.orient.String(),
		"elements", len(p.elements),
		"keys", p.bands.Len(),
		"valueMin", vmin,
		"valueMax", vmax)

	for _, el := range p.elements {
		coords := el.Coords()
		points := make([]Point, len(coords))
		for i, c := range coords {
			key := p.bands.Center(c.Key, keyLo, keyHi)
			points[i] = p.orient.MakePoint(key, value.Project(c.Value))
		}
		if err := el.Draw(points, b); err != nil {
			return err
		}
	}
	return nil
}

// fitValueRange scans the registered coordinates for the value extent.
func (p *Plot[K]) fitValueRange() (lo, hi float64) {
	first := true
	for _, el := range p.elements {
		for _, c := range el.Coords() {
			if first || c.Value < lo {
				lo = c.Value
			}
			if first || c.Value > hi {
				hi = c.Value
			}
			first = false
		}
	}
	return lo, hi
}

// frame lays out the key-axis pixel interval and the value scale inside
// the padded canvas. Values grow upward when vertical and rightward when
// horizontal, matching the usual reading of each orientation on a Y-down
// canvas.
func (p *Plot[K]) frame(vmin, vmax float64) (keyLo, keyHi float64, value Linear) {
	if p.orient == Horizontal {
		value = Linear{
			DomainMin: vmin, DomainMax: vmax,
			PixelMin: p.padding, PixelMax: p.width - p.padding,
		}
		return p.padding, p.height - p.padding, value
	}
	value = Linear{
		DomainMin: vmin, DomainMax: vmax,
		PixelMin: p.height - p.padding, PixelMax: p.padding,
	}
	return p.padding, p.width - p.padding, value
}
