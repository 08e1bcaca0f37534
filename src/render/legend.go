package render

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const legendFontSize = 8.0

// legendSpec records how a legend was attached so tests can assert the series
// split and that both legends share one style.
type legendSpec struct {
	Labels      []string
	AnchorRight bool
	FontSize    float64
}

var lastLegendSpecs []legendSpec

// attachLegends anchors one legend per vertical axis: primary-axis series top
// left, secondary-axis series top right. go-chart's stock legend draws a
// single box for every series, so these are custom renderables.
func attachLegends(ch *chart.Chart) {
	primary, secondary := splitByAxis(ch.Series)
	ch.Elements = []chart.Renderable{
		legendFor(primary, false),
		legendFor(secondary, true),
	}
	lastLegendSpecs = append(lastLegendSpecs,
		legendSpec{Labels: seriesNames(primary), AnchorRight: false, FontSize: legendFontSize},
		legendSpec{Labels: seriesNames(secondary), AnchorRight: true, FontSize: legendFontSize},
	)
}

func splitByAxis(series []chart.Series) (primary, secondary []chart.Series) {
	for _, s := range series {
		if s.GetYAxis() == chart.YAxisSecondary {
			secondary = append(secondary, s)
		} else {
			primary = append(primary, s)
		}
	}
	return primary, secondary
}

func seriesNames(series []chart.Series) []string {
	out := make([]string, len(series))
	for i, s := range series {
		out[i] = s.GetName()
	}
	return out
}

// legendFor draws a boxed legend for the given series inside the top of the
// canvas, anchored left or right.
func legendFor(series []chart.Series, anchorRight bool) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
		style := chartDefaults.InheritFrom(chart.Style{
			FillColor:   drawing.ColorWhite,
			FontColor:   chart.DefaultTextColor,
			FontSize:    legendFontSize,
			StrokeColor: chart.DefaultAxisColor,
			StrokeWidth: chart.DefaultAxisLineWidth,
		})

		const (
			padding    = 5
			lineGap    = 5
			swatchLen  = 25
			rowSpacing = 5
			margin     = 8
		)

		style.GetTextOptions().WriteToRenderer(r)

		var contentWidth, contentHeight int
		for i, s := range series {
			tb := r.MeasureText(s.GetName())
			if i > 0 {
				contentHeight += rowSpacing
			}
			contentHeight += tb.Height()
			if w := tb.Width() + lineGap + swatchLen; w > contentWidth {
				contentWidth = w
			}
		}

		left := cb.Left + margin
		if anchorRight {
			left = cb.Right - contentWidth - 2*padding - margin
		}
		top := cb.Top + margin
		box := chart.Box{
			Left:   left,
			Top:    top,
			Right:  left + contentWidth + 2*padding,
			Bottom: top + contentHeight + 2*padding,
		}
		chart.Draw.Box(r, box, style)

		style.GetTextOptions().WriteToRenderer(r)
		tx := left + padding
		ycursor := top + padding
		for i, s := range series {
			if i > 0 {
				ycursor += rowSpacing
			}
			label := s.GetName()
			tb := r.MeasureText(label)
			ty := ycursor + tb.Height()
			r.Text(label, tx, ty)

			r.SetStrokeColor(swatchColor(s.GetStyle()))
			r.SetStrokeWidth(strokeWidth)
			ly := ty - tb.Height()/2
			lx := tx + tb.Width() + lineGap
			r.MoveTo(lx, ly)
			r.LineTo(lx+swatchLen, ly)
			r.Stroke()

			ycursor += tb.Height()
		}
	}
}

// swatchColor picks the series color regardless of style mode: the stroke
// color when lines are drawn, otherwise the marker color.
func swatchColor(s chart.Style) drawing.Color {
	if s.StrokeWidth > 0 {
		return s.StrokeColor
	}
	return s.DotColor
}
