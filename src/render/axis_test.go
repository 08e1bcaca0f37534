package render

import (
	"testing"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
)

func TestTimeTicksThirtyMinuteSpacing(t *testing.T) {
	minT := time.Date(2024, 3, 1, 12, 5, 0, 0, time.UTC)
	maxT := minT.Add(2 * time.Hour)
	ticks := timeTicks(minT, maxT)
	// edges plus the 12:30, 13:00, 13:30, 14:00 boundaries
	if len(ticks) != 6 {
		t.Fatalf("expected 6 ticks, got %d", len(ticks))
	}
	if ticks[0].Label != "2024-03-01 12:05:00" {
		t.Errorf("first tick label: %q", ticks[0].Label)
	}
	if ticks[1].Label != "2024-03-01 12:30:00" {
		t.Errorf("second tick label: %q", ticks[1].Label)
	}
	for i := 2; i < 5; i++ {
		prev, _ := time.Parse(tickLabelFormat, ticks[i-1].Label)
		cur, _ := time.Parse(tickLabelFormat, ticks[i].Label)
		if cur.Sub(prev) != tickInterval {
			t.Errorf("tick %d is %v after tick %d, want %v", i, cur.Sub(prev), i-1, tickInterval)
		}
	}
	if ticks[5].Label != "2024-03-01 14:05:00" {
		t.Errorf("last tick label: %q", ticks[5].Label)
	}
}

func TestTimeTicksShortSpanKeepsEdges(t *testing.T) {
	minT := time.Date(2024, 3, 1, 12, 1, 0, 0, time.UTC)
	ticks := timeTicks(minT, minT.Add(5*time.Minute))
	if len(ticks) != 2 {
		t.Fatalf("expected only the two edge ticks, got %d", len(ticks))
	}
}

func TestBuildTimeAxisDegenerateSpan(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ax := buildTimeAxis([]time.Time{at, at})
	rng := ax.Range.(*chart.ContinuousRange)
	if rng.Max <= rng.Min {
		t.Fatalf("expected widened range, got [%v,%v]", rng.Min, rng.Max)
	}
	if len(ax.Ticks) < 2 {
		t.Fatalf("expected boundary ticks, got %d", len(ax.Ticks))
	}
}

func TestBuildTimeAxisMetadata(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ax := buildTimeAxis([]time.Time{at, at.Add(time.Hour)})
	if ax.Name != "Time" {
		t.Errorf("axis name: %q", ax.Name)
	}
	if ax.Style.TextRotationDegrees != tickLabelRotation {
		t.Errorf("tick labels should be rotated, got %v", ax.Style.TextRotationDegrees)
	}
	if ax.GridMajorStyle.StrokeWidth == 0 {
		t.Error("time axis should carry grid lines")
	}
}

func TestNiceAxisBoundsWiden(t *testing.T) {
	lo, hi := niceAxisBounds(10, 10)
	if lo >= hi {
		t.Fatalf("expected widened bounds, got [%v,%v]", lo, hi)
	}
	lo, hi = niceAxisBounds(1.2, 8.7)
	if lo > 1.2 || hi < 8.7 {
		t.Fatalf("bounds must cover input: [%v,%v]", lo, hi)
	}
}

func TestNiceTicksCoverRangeWithLabels(t *testing.T) {
	ticks := niceTicks(0, 100, 6)
	if len(ticks) < 2 {
		t.Fatalf("expected ticks, got %d", len(ticks))
	}
	for i, tk := range ticks {
		if tk.Label == "" {
			t.Errorf("tick %d has empty label", i)
		}
		if i > 0 && tk.Value <= ticks[i-1].Value {
			t.Errorf("ticks not increasing at %d", i)
		}
	}
}

func TestValueAxisSingleValue(t *testing.T) {
	rng, ticks := valueAxis([]float64{2.0})
	if rng.Max <= rng.Min {
		t.Fatalf("degenerate value range: [%v,%v]", rng.Min, rng.Max)
	}
	if rng.Min > 2.0 || rng.Max < 2.0 {
		t.Fatalf("range must cover the value: [%v,%v]", rng.Min, rng.Max)
	}
	if len(ticks) < 2 {
		t.Fatalf("expected ticks, got %d", len(ticks))
	}
}
