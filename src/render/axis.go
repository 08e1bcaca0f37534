package render

import (
	"fmt"
	"math"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	// tickInterval is the fixed spacing of time-axis tick marks.
	tickInterval = 30 * time.Minute
	// tickLabelFormat renders full calendar date-time labels.
	tickLabelFormat = "2006-01-02 15:04:05"
	// tickLabelRotation keeps the long date labels legible.
	tickLabelRotation = 30.0
)

// buildTimeAxis constructs the shared horizontal axis over all sample times.
// Degenerate spans (a single distinct timestamp) are widened so go-chart has a
// usable domain; ticks land on every 30-minute boundary inside the span plus
// the span edges themselves.
func buildTimeAxis(times []time.Time) chart.XAxis {
	minT, maxT := timeBounds(times)
	if !maxT.After(minT) {
		minT = minT.Add(-30 * time.Second)
		maxT = maxT.Add(30 * time.Second)
	}
	return chart.XAxis{
		Name:           "Time",
		Style:          chart.Style{TextRotationDegrees: tickLabelRotation},
		Ticks:          timeTicks(minT, maxT),
		Range:          &chart.ContinuousRange{Min: chart.TimeToFloat64(minT), Max: chart.TimeToFloat64(maxT)},
		GridMajorStyle: gridStyle(),
	}
}

func timeTicks(minT, maxT time.Time) []chart.Tick {
	ticks := []chart.Tick{tickAt(minT)}
	for t := minT.Truncate(tickInterval).Add(tickInterval); t.Before(maxT); t = t.Add(tickInterval) {
		if t.After(minT) {
			ticks = append(ticks, tickAt(t))
		}
	}
	return append(ticks, tickAt(maxT))
}

func tickAt(t time.Time) chart.Tick {
	return chart.Tick{Value: chart.TimeToFloat64(t), Label: t.UTC().Format(tickLabelFormat)}
}

func timeBounds(times []time.Time) (time.Time, time.Time) {
	minT, maxT := times[0], times[0]
	for _, t := range times[1:] {
		if t.Before(minT) {
			minT = t
		}
		if t.After(maxT) {
			maxT = t
		}
	}
	return minT, maxT
}

// valueAxis computes an explicit range and tick set for a vertical axis.
// Explicit ranges keep single-sample traces renderable and both y-axes stable
// across style changes.
func valueAxis(vals []float64) (*chart.ContinuousRange, []chart.Tick) {
	minV, maxV := vals[0], vals[0]
	for _, v := range vals[1:] {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	lo, hi := niceAxisBounds(minV, maxV)
	return &chart.ContinuousRange{Min: lo, Max: hi}, niceTicks(lo, hi, 6)
}

// niceAxisBounds expands [min,max] by a small margin and rounds outward to
// round numbers for readability.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// niceTicks generates up to n tick marks between [min,max] using 1/2/2.5/5
// steps scaled by powers of ten.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	mag := math.Pow(10, math.Floor(math.Log10((max-min)/float64(n-1))))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Ceil((max - min) / step)
		if count < 2 {
			count = 2
		}
		if score := math.Abs(count - float64(n)); score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var ticks []chart.Tick
	for v := start; v <= end+bestStep/2; v += bestStep {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	switch av := math.Abs(v); {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func gridStyle() chart.Style {
	return chart.Style{
		StrokeColor: drawing.Color{R: 0, G: 0, B: 0, A: 40},
		StrokeWidth: 1.0,
	}
}
