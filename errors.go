package chart

import "fmt"

// DrawingError wraps a backend failure raised while drawing an element.
// Op names the figure part whose primitive failed ("whisker cap", "box",
// "median", ...); the underlying backend error is reachable through
// errors.Is and errors.As.
type DrawingError struct {
	// Op names the figure part being drawn when the failure happened.
	Op string
	// Err is the backend's error.
	Err error
}

func (e *DrawingError) Error() string {
	return fmt.Sprintf("chart: draw %s: %v", e.Op, e.Err)
}

// Unwrap returns the backend's error.
func (e *DrawingError) Unwrap() error {
	return e.Err
}

// drawErr wraps err as a *DrawingError, or returns nil when err is nil.
func drawErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DrawingError{Op: op, Err: err}
}
