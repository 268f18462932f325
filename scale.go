package chart

// Linear maps a continuous domain interval onto a pixel interval by
// linear interpolation. The pixel interval may run in either direction,
// which is how a vertical plot makes larger values land higher on a
// Y-down canvas.
type Linear struct {
	DomainMin, DomainMax float64
	PixelMin, PixelMax   float64
}

// Project maps a domain value to its pixel position. Values outside the
// domain extrapolate linearly. A degenerate domain maps everything to the
// middle of the pixel interval.
func (l Linear) Project(v float64) float64 {
	span := l.DomainMax - l.DomainMin
	if span == 0 {
		return (l.PixelMin + l.PixelMax) / 2
	}
	t := (v - l.DomainMin) / span
	return l.PixelMin + t*(l.PixelMax-l.PixelMin)
}

// Bands assigns categorical keys to equal-width bands in insertion order.
// Each key projects to the center of its band.
type Bands[K comparable] struct {
	keys  []K
	index map[K]int
}

// NewBands returns an empty band scale.
func NewBands[K comparable]() *Bands[K] {
	return &Bands[K]{index: make(map[K]int)}
}

// Add registers a key. Adding a key again keeps its original slot.
func (b *Bands[K]) Add(key K) {
	if _, ok := b.index[key]; ok {
		return
	}
	b.index[key] = len(b.keys)
	b.keys = append(b.keys, key)
}

// Len reports the number of registered keys.
func (b *Bands[K]) Len() int { return len(b.keys) }

// Keys returns the registered keys in insertion order. The returned slice
// is a copy.
func (b *Bands[K]) Keys() []K {
	if len(b.keys) == 0 {
		return nil
	}
	out := make([]K, len(b.keys))
	copy(out, b.keys)
	return out
}

// Center returns the pixel center of key's band when the bands split the
// interval lo..hi evenly. Looking up a key that was never added is a
// programmer error and panics.
func (b *Bands[K]) Center(key K, lo, hi float64) float64 {
	i, ok := b.index[key]
	if !ok {
		panic("chart: band scale lookup of an unregistered key")
	}
	bandWidth := (hi - lo) / float64(len(b.keys))
	return lo + (float64(i)+0.5)*bandWidth
}
