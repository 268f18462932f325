package chart_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/record"
)

func TestPlotDrawEndToEnd(t *testing.T) {
	// Clean quartiles: exactly 0, 25, 50, 75, 100 with no outliers.
	q := chart.NewQuartiles([]float64{0, 25, 50, 75, 100})

	p := chart.New[string](chart.Vertical, 200, 100,
		chart.WithPadding(10),
		chart.WithValueRange(0, 100))
	p.Add(chart.NewVerticalBoxplot("k", q))

	rec := record.New()
	if err := p.Draw(rec); err != nil {
		t.Fatalf("Draw() = %v, want nil", err)
	}

	// One key centers at x=100. Values 0..100 map onto y=90..10, so the
	// summary lands on y = 90, 70, 50, 30, 10 bottom to top.
	style := chart.DefaultStyle()
	want := record.Recording{
		record.LineCommand{P0: chart.Pt(95, 90), P1: chart.Pt(105, 90), Style: style},
		record.LineCommand{P0: chart.Pt(100, 90), P1: chart.Pt(100, 70), Style: style.LineColor()},
		record.RectCommand{UpperLeft: chart.Pt(95, 30), BottomRight: chart.Pt(105, 70), Style: style},
		record.LineCommand{P0: chart.Pt(95, 50), P1: chart.Pt(105, 50), Style: style},
		record.LineCommand{P0: chart.Pt(100, 30), P1: chart.Pt(100, 10), Style: style},
		record.LineCommand{P0: chart.Pt(95, 10), P1: chart.Pt(105, 10), Style: style},
	}

	got := rec.Recording()
	if len(got) != len(want) {
		t.Fatalf("recorded %d commands, want %d: %v", len(got), len(want), got.Ops())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPlotDrawTwoKeys(t *testing.T) {
	q := chart.NewQuartiles([]float64{0, 25, 50, 75, 100})

	p := chart.New[string](chart.Vertical, 200, 100,
		chart.WithPadding(10),
		chart.WithValueRange(0, 100))
	p.Add(chart.NewVerticalBoxplot("b", q))
	p.Add(chart.NewVerticalBoxplot("a", q))

	rec := record.New()
	if err := p.Draw(rec); err != nil {
		t.Fatalf("Draw() = %v, want nil", err)
	}

	got := rec.Recording()
	if len(got) != 12 {
		t.Fatalf("recorded %d commands, want 12", len(got))
	}

	// Two bands over x=10..190 center at 55 and 145, in insertion order.
	// The first command of each element is its lower whisker cap.
	first := got[0].(record.LineCommand)
	if first.P0 != chart.Pt(50, 90) || first.P1 != chart.Pt(60, 90) {
		t.Errorf("first element cap = %+v, want x 50..60 at y 90", first)
	}
	second := got[6].(record.LineCommand)
	if second.P0 != chart.Pt(140, 90) || second.P1 != chart.Pt(150, 90) {
		t.Errorf("second element cap = %+v, want x 140..150 at y 90", second)
	}
}

func TestPlotDrawHorizontal(t *testing.T) {
	q := chart.NewQuartiles([]float64{0, 25, 50, 75, 100})

	p := chart.New[string](chart.Horizontal, 200, 100,
		chart.WithPadding(10),
		chart.WithValueRange(0, 100))
	p.Add(chart.NewHorizontalBoxplot("k", q))

	rec := record.New()
	if err := p.Draw(rec); err != nil {
		t.Fatalf("Draw() = %v, want nil", err)
	}

	got := rec.Recording()
	if len(got) != 6 {
		t.Fatalf("recorded %d commands, want 6", len(got))
	}

	// The key axis is Y now: one band centers at y=50, and the minimum
	// value projects to x=10, so the first cap runs vertically at x=10.
	first := got[0].(record.LineCommand)
	if first.P0 != chart.Pt(10, 45) || first.P1 != chart.Pt(10, 55) {
		t.Errorf("first cap = %+v, want y 45..55 at x 10", first)
	}
}

func TestPlotDrawAutoFitMatchesExplicit(t *testing.T) {
	// The sample spans exactly 0..100, so auto-fitting must reproduce the
	// explicit range command for command.
	sample := []float64{0, 25, 50, 75, 100}

	explicit := chart.New[string](chart.Vertical, 200, 100,
		chart.WithPadding(10),
		chart.WithValueRange(0, 100))
	explicit.Add(chart.NewVerticalBoxplot("k", chart.NewQuartiles(sample)))

	auto := chart.New[string](chart.Vertical, 200, 100, chart.WithPadding(10))
	auto.Add(chart.NewVerticalBoxplot("k", chart.NewQuartiles(sample)))

	recExplicit, recAuto := record.New(), record.New()
	if err := explicit.Draw(recExplicit); err != nil {
		t.Fatalf("explicit Draw() = %v", err)
	}
	if err := auto.Draw(recAuto); err != nil {
		t.Fatalf("auto Draw() = %v", err)
	}

	if !reflect.DeepEqual(recExplicit.Recording(), recAuto.Recording()) {
		t.Errorf("auto-fit drew %+v, explicit drew %+v",
			recAuto.Recording(), recExplicit.Recording())
	}
}

func TestPlotDrawEmpty(t *testing.T) {
	p := chart.New[string](chart.Vertical, 200, 100)

	rec := record.New()
	if err := p.Draw(rec); err != nil {
		t.Errorf("Draw() = %v, want nil", err)
	}
	if rec.Calls() != 0 {
		t.Errorf("empty plot touched the backend %d times", rec.Calls())
	}
}

func TestPlotDrawStopsAtFirstFailure(t *testing.T) {
	errBoom := errors.New("boom")
	q := chart.NewQuartiles([]float64{0, 25, 50, 75, 100})

	p := chart.New[string](chart.Vertical, 200, 100)
	p.Add(chart.NewVerticalBoxplot("a", q))
	p.Add(chart.NewVerticalBoxplot("b", q))

	rec := record.New()
	rec.FailAfter(0, errBoom)

	err := p.Draw(rec)
	if !errors.Is(err, errBoom) {
		t.Fatalf("Draw() = %v, want errBoom", err)
	}
	if rec.Calls() != 1 {
		t.Errorf("backend saw %d calls, want 1: the second element must never draw", rec.Calls())
	}
}
