package record

import "github.com/gogpu/chart"

// Backend is a chart.DrawingBackend that records instead of rendering.
// The zero value is ready to use. Backend is not safe for concurrent use.
type Backend struct {
	recording Recording
	calls     int

	armed     bool
	failAfter int
	failErr   error
}

var _ chart.DrawingBackend = (*Backend)(nil)

// New returns an empty recording backend.
func New() *Backend {
	return &Backend{}
}

// FailAfter arms deterministic failure injection: the next n draw calls
// succeed and every call after that returns err. FailAfter(0, err) fails
// the very next call. Reset disarms.
func (b *Backend) FailAfter(n int, err error) {
	b.armed = true
	b.failAfter = n
	b.failErr = err
}

// Reset clears the recording and call counter and disarms failure
// injection.
func (b *Backend) Reset() {
	b.recording = nil
	b.calls = 0
	b.armed = false
	b.failAfter = 0
	b.failErr = nil
}

// Recording returns a copy of the commands recorded so far, in call order.
// Failed calls are not included.
func (b *Backend) Recording() Recording {
	if len(b.recording) == 0 {
		return nil
	}
	out := make(Recording, len(b.recording))
	copy(out, b.recording)
	return out
}

// Len reports the number of recorded commands.
func (b *Backend) Len() int { return len(b.recording) }

// Calls reports the total number of draw calls received, including calls
// that failed.
func (b *Backend) Calls() int { return b.calls }

// DrawLine implements chart.DrawingBackend.
func (b *Backend) DrawLine(p0, p1 chart.Point, style chart.Style) error {
	if err := b.nextErr(); err != nil {
		return err
	}
	b.recording = append(b.recording, LineCommand{P0: p0, P1: p1, Style: style})
	return nil
}

// DrawRect implements chart.DrawingBackend.
func (b *Backend) DrawRect(upperLeft, bottomRight chart.Point, style chart.Style, filled bool) error {
	if err := b.nextErr(); err != nil {
		return err
	}
	b.recording = append(b.recording, RectCommand{
		UpperLeft:   upperLeft,
		BottomRight: bottomRight,
		Style:       style,
		Filled:      filled,
	})
	return nil
}

// DrawCircle implements chart.DrawingBackend.
func (b *Backend) DrawCircle(center chart.Point, radius int, style chart.Style, filled bool) error {
	if err := b.nextErr(); err != nil {
		return err
	}
	b.recording = append(b.recording, CircleCommand{
		Center: center,
		Radius: radius,
		Style:  style,
		Filled: filled,
	})
	return nil
}

// nextErr counts the call and reports the injected failure once the
// armed threshold is crossed.
func (b *Backend) nextErr() error {
	b.calls++
	if b.armed && b.calls > b.failAfter {
		return b.failErr
	}
	return nil
}
