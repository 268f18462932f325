package record

import "github.com/gogpu/chart"

// Op identifies the kind of a recorded command.
type Op uint8

const (
	// OpLine is a straight line between two points.
	OpLine Op = iota
	// OpRect is an axis-aligned rectangle.
	OpRect
	// OpCircle is a circle with an integral pixel radius.
	OpCircle
)

// opNames maps Op values to their string representation.
var opNames = [...]string{
	OpLine:   "Line",
	OpRect:   "Rect",
	OpCircle: "Circle",
}

// String returns the string representation of an Op.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Unknown"
}

// Command is one recorded drawing operation. The concrete types are
// [LineCommand], [RectCommand] and [CircleCommand]; all of them are
// comparable, so recorded commands can be asserted against expected
// values with ==.
type Command interface {
	// Op returns the command's kind.
	Op() Op
}

// LineCommand records a DrawLine call.
type LineCommand struct {
	P0, P1 chart.Point
	Style  chart.Style
}

// Op implements Command.
func (LineCommand) Op() Op { return OpLine }

// RectCommand records a DrawRect call.
type RectCommand struct {
	UpperLeft   chart.Point
	BottomRight chart.Point
	Style       chart.Style
	Filled      bool
}

// Op implements Command.
func (RectCommand) Op() Op { return OpRect }

// CircleCommand records a DrawCircle call.
type CircleCommand struct {
	Center chart.Point
	Radius int
	Style  chart.Style
	Filled bool
}

// Op implements Command.
func (CircleCommand) Op() Op { return OpCircle }

// Recording is an ordered sequence of recorded commands.
type Recording []Command

// Playback issues every command against dst in recorded order, stopping
// at the first backend error.
func (r Recording) Playback(dst chart.DrawingBackend) error {
	for _, c := range r {
		var err error
		switch cmd := c.(type) {
		case LineCommand:
			err = dst.DrawLine(cmd.P0, cmd.P1, cmd.Style)
		case RectCommand:
			err = dst.DrawRect(cmd.UpperLeft, cmd.BottomRight, cmd.Style, cmd.Filled)
		case CircleCommand:
			err = dst.DrawCircle(cmd.Center, cmd.Radius, cmd.Style, cmd.Filled)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Ops returns just the command kinds, in order. Handy for asserting a
// draw sequence without spelling out full geometry.
func (r Recording) Ops() []Op {
	if len(r) == 0 {
		return nil
	}
	ops := make([]Op, len(r))
	for i, c := range r {
		ops[i] = c.Op()
	}
	return ops
}
