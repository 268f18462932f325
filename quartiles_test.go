package chart

import (
	"math"
	"testing"
)

func TestNewQuartilesSingleton(t *testing.T) {
	q := NewQuartiles([]float64{6})

	want := [5]float64{6, 6, 6, 6, 6}
	if q.Values() != want {
		t.Errorf("Values() = %v, want %v", q.Values(), want)
	}
	if len(q.Outliers()) != 0 {
		t.Errorf("Outliers() = %v, want none", q.Outliers())
	}
}

func TestNewQuartilesWorkedExample(t *testing.T) {
	q := NewQuartiles([]float64{7, 15, 36, 39, 40, 41})

	if q.LowerQuartile() != 20.25 {
		t.Errorf("LowerQuartile() = %v, want 20.25", q.LowerQuartile())
	}
	if q.Median() != 37.5 {
		t.Errorf("Median() = %v, want 37.5", q.Median())
	}
	if q.UpperQuartile() != 39.75 {
		t.Errorf("UpperQuartile() = %v, want 39.75", q.UpperQuartile())
	}
	if q.IQR() != 19.5 {
		t.Errorf("IQR() = %v, want 19.5", q.IQR())
	}

	lo, hi := q.Fences()
	if lo != -9 || hi != 69 {
		t.Errorf("Fences() = (%v, %v), want (-9, 69)", lo, hi)
	}

	// Every value sits inside the fences.
	if len(q.Outliers()) != 0 {
		t.Errorf("Outliers() = %v, want none", q.Outliers())
	}
	if q.Minimum() != 7 {
		t.Errorf("Minimum() = %v, want 7", q.Minimum())
	}
	if q.Maximum() != 41 {
		t.Errorf("Maximum() = %v, want 41", q.Maximum())
	}
}

func TestNewQuartilesOutlierExtraction(t *testing.T) {
	// The same sample with a far-out spike appended. The spike must land
	// in the outlier set and leave the whisker ends on in-fence values.
	q := NewQuartiles([]float64{7, 15, 36, 39, 40, 41, 1000})

	outliers := q.Outliers()
	if len(outliers) != 1 || outliers[0] != 1000 {
		t.Fatalf("Outliers() = %v, want [1000]", outliers)
	}
	if q.Minimum() != 7 {
		t.Errorf("Minimum() = %v, want 7", q.Minimum())
	}
	if q.Maximum() != 41 {
		t.Errorf("Maximum() = %v, want 41", q.Maximum())
	}

	// The quartiles are interpolated over the full sample, spike included.
	if q.LowerQuartile() != 25.5 {
		t.Errorf("LowerQuartile() = %v, want 25.5", q.LowerQuartile())
	}
	if q.Median() != 39 {
		t.Errorf("Median() = %v, want 39", q.Median())
	}
	if q.UpperQuartile() != 40.5 {
		t.Errorf("UpperQuartile() = %v, want 40.5", q.UpperQuartile())
	}
	lo, hi := q.Fences()
	if lo != 3 || hi != 63 {
		t.Errorf("Fences() = (%v, %v), want (3, 63)", lo, hi)
	}
}

func TestNewQuartilesLowOutlier(t *testing.T) {
	q := NewQuartiles([]float64{-1000, 7, 15, 36, 39, 40, 41})

	outliers := q.Outliers()
	if len(outliers) != 1 || outliers[0] != -1000 {
		t.Fatalf("Outliers() = %v, want [-1000]", outliers)
	}
	if q.Minimum() != 7 {
		t.Errorf("Minimum() = %v, want 7", q.Minimum())
	}
	if q.Maximum() != 41 {
		t.Errorf("Maximum() = %v, want 41", q.Maximum())
	}
}

func TestNewQuartilesMonotonic(t *testing.T) {
	tests := []struct {
		name   string
		sample []float64
	}{
		{"ascending", []float64{1, 2, 3, 4, 5, 6, 7, 8}},
		{"descending", []float64{9, 7, 5, 3, 1}},
		{"duplicates", []float64{4, 4, 4, 4, 4, 4}},
		{"negative", []float64{-8, -3, -5, -13, -1}},
		{"mixed", []float64{2.5, -7, 0, 19, 4.25, -0.5}},
		{"with outliers", []float64{10, 11, 12, 13, 14, 500, -500}},
		{"pair", []float64{3, 11}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuartiles(tt.sample)
			v := q.Values()
			for i := 1; i < len(v); i++ {
				if v[i-1] > v[i] {
					t.Fatalf("Values() = %v, not ascending at index %d", v, i)
				}
			}
		})
	}
}

func TestNewQuartilesOrderInvariance(t *testing.T) {
	base := []float64{7, 15, 36, 39, 40, 41, 1000}
	q1 := NewQuartiles(base)

	permuted := []float64{1000, 40, 7, 41, 36, 15, 39}
	q2 := NewQuartiles(permuted)

	if q1.Values() != q2.Values() {
		t.Errorf("Values() differ: %v vs %v", q1.Values(), q2.Values())
	}
	o1, o2 := q1.Outliers(), q2.Outliers()
	if len(o1) != len(o2) {
		t.Fatalf("Outliers() differ in length: %v vs %v", o1, o2)
	}
	for i := range o1 {
		if o1[i] != o2[i] {
			t.Errorf("Outliers() differ at %d: %v vs %v", i, o1, o2)
		}
	}
}

func TestNewQuartilesLeavesSampleAlone(t *testing.T) {
	sample := []float64{5, 3, 1, 4, 2}
	NewQuartiles(sample)

	want := []float64{5, 3, 1, 4, 2}
	for i := range sample {
		if sample[i] != want[i] {
			t.Fatalf("sample mutated: %v, want %v", sample, want)
		}
	}
}

func TestNewQuartilesIntegerSample(t *testing.T) {
	q := NewQuartiles([]int{7, 15, 36, 39, 40, 41})
	if q.Median() != 37.5 {
		t.Errorf("Median() = %v, want 37.5", q.Median())
	}

	q8 := NewQuartiles([]uint8{1, 2, 3})
	if q8.Median() != 2 {
		t.Errorf("Median() = %v, want 2", q8.Median())
	}
}

func TestNewQuartilesPanics(t *testing.T) {
	t.Run("empty sample", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewQuartiles did not panic on an empty sample")
			}
		}()
		NewQuartiles([]float64{})
	})

	t.Run("NaN value", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewQuartiles did not panic on NaN")
			}
		}()
		NewQuartiles([]float64{1, math.NaN(), 3})
	})
}

func TestPercentileOfSorted(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}

	tests := []struct {
		name string
		pct  float64
		want float64
	}{
		{"zeroth", 0, 10},
		{"hundredth", 100, 40},
		{"median", 50, 25},
		{"between ranks", 25, 17.5},
		{"at rank", 100.0 / 3.0, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := percentileOfSorted(sorted, tt.pct)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("percentileOfSorted(%v, %v) = %v, want %v", sorted, tt.pct, got, tt.want)
			}
		})
	}

	t.Run("single element", func(t *testing.T) {
		if got := percentileOfSorted([]float64{42}, 75); got != 42 {
			t.Errorf("percentileOfSorted([42], 75) = %v, want 42", got)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("percentileOfSorted did not panic on pct > 100")
			}
		}()
		percentileOfSorted(sorted, 101)
	})

	t.Run("empty", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("percentileOfSorted did not panic on an empty slice")
			}
		}()
		percentileOfSorted(nil, 50)
	})
}

func TestQuartilesOutliersIsACopy(t *testing.T) {
	q := NewQuartiles([]float64{7, 15, 36, 39, 40, 41, 1000})

	out := q.Outliers()
	out[0] = -1
	if got := q.Outliers(); got[0] != 1000 {
		t.Errorf("Outliers() = %v after mutating a previous copy, want [1000]", got)
	}
}
