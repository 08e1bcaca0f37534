package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/gretchenfrage/predview/src/trace"
)

// Title is the fixed chart title.
const Title = "Client and Server Values and Velocities Over Time"

// One color per series, matching the original diagnostic's palette.
var (
	colPredicted    = drawing.ColorFromHex("0000ff") // blue
	colReceived     = drawing.ColorFromHex("008000") // green
	colSmoothed     = drawing.ColorFromHex("800080") // purple
	colServer       = drawing.ColorFromHex("ff0000") // red
	colPredictedVel = drawing.ColorFromHex("00bfbf") // cyan
	colReceivedVel  = drawing.ColorFromHex("ff00ff") // magenta
	colServerVel    = drawing.ColorFromHex("ff8c00") // orange
)

// BuildChart assembles the seven series onto the two vertical axes sharing
// one time axis. Both traces must be non-empty; nothing is joined, dropped or
// interpolated, each rendered series carries exactly its source rows.
func BuildChart(client []trace.ClientSample, server []trace.ServerSample, opts Options) (*chart.Chart, error) {
	if len(client) == 0 {
		return nil, errors.New("client trace has no samples")
	}
	if len(server) == 0 {
		return nil, errors.New("server trace has no samples")
	}
	mode := opts.Mode()

	clientTimes := make([]time.Time, len(client))
	predicted := make([]float64, len(client))
	received := make([]float64, len(client))
	smoothed := make([]float64, len(client))
	predictedVel := make([]float64, len(client))
	receivedVel := make([]float64, len(client))
	for i, s := range client {
		clientTimes[i] = s.Timestamp
		predicted[i] = s.Predicted
		received[i] = s.Received
		smoothed[i] = s.Smoothed
		predictedVel[i] = s.PredictedVel
		receivedVel[i] = s.ReceivedVel
	}

	serverTimes := make([]time.Time, len(server))
	serverVals := make([]float64, len(server))
	serverVels := make([]float64, len(server))
	for i, s := range server {
		serverTimes[i] = s.Timestamp
		serverVals[i] = s.Value
		serverVels[i] = s.Velocity
	}

	series := []chart.Series{
		chart.TimeSeries{Name: "Client Predicted", XValues: clientTimes, YValues: predicted, Style: seriesStyle(mode, colPredicted)},
		chart.TimeSeries{Name: "Client Received", XValues: clientTimes, YValues: received, Style: seriesStyle(mode, colReceived)},
		chart.TimeSeries{Name: "Client Smoothed", XValues: clientTimes, YValues: smoothed, Style: seriesStyle(mode, colSmoothed)},
		chart.TimeSeries{Name: "Server", XValues: serverTimes, YValues: serverVals, Style: seriesStyle(mode, colServer)},
		chart.TimeSeries{Name: "Client Predicted Vel", YAxis: chart.YAxisSecondary, XValues: clientTimes, YValues: predictedVel, Style: seriesStyle(mode, colPredictedVel)},
		chart.TimeSeries{Name: "Client Received Vel", YAxis: chart.YAxisSecondary, XValues: clientTimes, YValues: receivedVel, Style: seriesStyle(mode, colReceivedVel)},
		chart.TimeSeries{Name: "Server Vel", YAxis: chart.YAxisSecondary, XValues: serverTimes, YValues: serverVels, Style: seriesStyle(mode, colServerVel)},
	}

	allTimes := append(append([]time.Time{}, clientTimes...), serverTimes...)
	valueRange, valueTicks := valueAxis(concat(predicted, received, smoothed, serverVals))
	velRange, velTicks := valueAxis(concat(predictedVel, receivedVel, serverVels))

	ch := &chart.Chart{
		Title:      Title,
		Background: chart.Style{Padding: chart.Box{Top: 16, Left: 16, Right: 16, Bottom: 56}},
		XAxis:      buildTimeAxis(allTimes),
		YAxis: chart.YAxis{
			Name:           "Value",
			Range:          valueRange,
			Ticks:          valueTicks,
			GridMajorStyle: gridStyle(),
		},
		// secondary axis carries no grid
		YAxisSecondary: chart.YAxis{
			Name:  "Velocity",
			Range: velRange,
			Ticks: velTicks,
		},
		Series: series,
	}
	attachLegends(ch)
	return ch, nil
}

// Render rasterizes the chart at the given pixel size.
func Render(ch *chart.Chart, width, height int) (image.Image, error) {
	ch.Width = width
	ch.Height = height
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode rendered chart: %w", err)
	}
	return img, nil
}

func concat(slices ...[]float64) []float64 {
	var n int
	for _, s := range slices {
		n += len(s)
	}
	out := make([]float64, 0, n)
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}
