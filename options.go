package chart

// PlotOption configures a Plot during creation.
// Use functional options to customize Plot behavior.
//
// Example:
//
//	// Default layout
//	p := chart.New[string](chart.Vertical, 640, 480)
//
//	// Fixed value axis
//	p := chart.New[string](chart.Vertical, 640, 480, chart.WithValueRange(0, 100))
type PlotOption func(*plotOptions)

// plotOptions holds optional configuration for Plot creation.
type plotOptions struct {
	padding    float64
	valueMin   float64
	valueMax   float64
	valueFixed bool
}

// defaultPlotOptions returns the default plot options.
func defaultPlotOptions() plotOptions {
	return plotOptions{
		padding: 30,
	}
}

// WithPadding sets the margin in pixels between the canvas edge and the
// plotting area on every side. The default is 30.
func WithPadding(px float64) PlotOption {
	return func(o *plotOptions) {
		o.padding = px
	}
}

// WithValueRange fixes the value-axis domain to lo..hi. Without it the
// plot fits the domain to the registered elements when drawn.
func WithValueRange(lo, hi float64) PlotOption {
	return func(o *plotOptions) {
		o.valueMin = lo
		o.valueMax = hi
		o.valueFixed = true
	}
}
