package chart

import (
	"math"
	"sort"
)

// Number is the set of built-in numeric types a sample may consist of.
// Every sample value is widened to float64 before any statistics run.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Quartiles is the five-number summary of a sample plus its outliers.
//
// The quartiles are interpolated percentiles of the full sample. Outliers
// are the values beyond the Tukey fences at 1.5 times the interquartile
// range; Minimum and Maximum are the extreme values that remain inside the
// fences. A Quartiles is built once by [NewQuartiles] and never mutated.
type Quartiles struct {
	minimum       float64
	lowerQuartile float64
	median        float64
	upperQuartile float64
	maximum       float64
	outliers      []float64
}

// NewQuartiles summarizes a sample into its five-number summary and
// outlier set.
//
// The sample must be non-empty and free of NaN values; violating either
// precondition panics, since continuing would silently produce meaningless
// statistics. The sample itself is not modified.
func NewQuartiles[T Number](sample []T) *Quartiles {
	if len(sample) == 0 {
		panic("chart: NewQuartiles called with an empty sample")
	}

	values := make([]float64, len(sample))
	for i, v := range sample {
		f := float64(v)
		if math.IsNaN(f) {
			panic("chart: NewQuartiles called with a NaN sample value")
		}
		values[i] = f
	}
	sort.Float64s(values)

	lower := percentileOfSorted(values, 25)
	median := percentileOfSorted(values, 50)
	upper := percentileOfSorted(values, 75)

	iqr := upper - lower
	lowerFence := lower - 1.5*iqr
	upperFence := upper + 1.5*iqr

	q := &Quartiles{
		lowerQuartile: lower,
		median:        median,
		upperQuartile: upper,
	}

	// One ascending pass: values beyond the fences are outliers, the rest
	// bound the whiskers. The fences always contain the quartiles, so at
	// least one sample value lands in-fence.
	seen := false
	for _, v := range values {
		if v < lowerFence || v > upperFence {
			q.outliers = append(q.outliers, v)
			continue
		}
		if !seen {
			q.minimum = v
			seen = true
		}
		q.maximum = v
	}
	return q
}

// percentileOfSorted extracts the pct percentile of a sorted sample by
// linear interpolation between the two nearest ranks.
//
// The slice must be non-empty and pct must lie in [0, 100]; both are
// programmer errors otherwise.
func percentileOfSorted(sorted []float64, pct float64) float64 {
	if len(sorted) == 0 {
		panic("chart: percentile of an empty sample")
	}
	if pct < 0 || pct > 100 {
		panic("chart: percentile out of range [0, 100]")
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	if math.Abs(pct-100) < epsilon {
		return sorted[len(sorted)-1]
	}
	rank := (pct / 100) * float64(len(sorted)-1)
	lo := math.Floor(rank)
	frac := rank - lo
	n := int(lo)
	return sorted[n] + (sorted[n+1]-sorted[n])*frac
}

// epsilon bounds the floating comparison against the 100th percentile.
const epsilon = 2.220446049250313e-16

// Minimum returns the smallest in-fence sample value.
func (q *Quartiles) Minimum() float64 { return q.minimum }

// LowerQuartile returns the interpolated 25th percentile.
func (q *Quartiles) LowerQuartile() float64 { return q.lowerQuartile }

// Median returns the interpolated 50th percentile.
func (q *Quartiles) Median() float64 { return q.median }

// UpperQuartile returns the interpolated 75th percentile.
func (q *Quartiles) UpperQuartile() float64 { return q.upperQuartile }

// Maximum returns the largest in-fence sample value.
func (q *Quartiles) Maximum() float64 { return q.maximum }

// Values returns the five summary numbers in whisker order: minimum,
// lower quartile, median, upper quartile, maximum.
func (q *Quartiles) Values() [5]float64 {
	return [5]float64{q.minimum, q.lowerQuartile, q.median, q.upperQuartile, q.maximum}
}

// Outliers returns the values beyond the Tukey fences in ascending order.
// The returned slice is a copy; callers may modify it freely.
func (q *Quartiles) Outliers() []float64 {
	if len(q.outliers) == 0 {
		return nil
	}
	out := make([]float64, len(q.outliers))
	copy(out, q.outliers)
	return out
}

// IQR returns the interquartile range, the span between the lower and
// upper quartiles.
func (q *Quartiles) IQR() float64 {
	return q.upperQuartile - q.lowerQuartile
}

// Fences returns the Tukey fences: the thresholds at 1.5 times the IQR
// below the lower quartile and above the upper quartile. Values strictly
// outside them are the outliers.
func (q *Quartiles) Fences() (lower, upper float64) {
	iqr := q.IQR()
	return q.lowerQuartile - 1.5*iqr, q.upperQuartile + 1.5*iqr
}
