// Package render builds the dual-axis comparison chart: client predicted /
// received / smoothed values and the server value on the primary axis, the
// three velocity series on the secondary axis, all sharing one time axis.
package render

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// StyleMode is the resolved series rendering style.
type StyleMode int

const (
	// StyleMarkers draws unconnected point markers only.
	StyleMarkers StyleMode = iota
	// StyleLines draws connected lines without markers.
	StyleLines
	// StyleBoth draws connected lines with a marker at each sample.
	StyleBoth
)

func (m StyleMode) String() string {
	switch m {
	case StyleLines:
		return "lines"
	case StyleBoth:
		return "lines+markers"
	default:
		return "markers"
	}
}

// Options are the two style flags of the original diagnostic.
type Options struct {
	ConnectLines bool
	ShowBoth     bool
}

// Mode resolves the flags; ConnectLines takes precedence over ShowBoth.
func (o Options) Mode() StyleMode {
	if o.ConnectLines {
		return StyleLines
	}
	if o.ShowBoth {
		return StyleBoth
	}
	return StyleMarkers
}

const (
	strokeWidth = 2.0
	dotWidth    = 4.0
)

// seriesStyle returns the go-chart style for one series under the given mode.
func seriesStyle(mode StyleMode, col drawing.Color) chart.Style {
	switch mode {
	case StyleLines:
		return chart.Style{StrokeWidth: strokeWidth, StrokeColor: col}
	case StyleBoth:
		return chart.Style{StrokeWidth: strokeWidth, StrokeColor: col, DotWidth: dotWidth, DotColor: col}
	default:
		return chart.Style{StrokeWidth: chart.Disabled, DotWidth: dotWidth, DotColor: col}
	}
}
