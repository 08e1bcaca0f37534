package trace

import "github.com/montanaflynn/stats"

// SeriesSummary aggregates one plotted series for the viewer's Stats tab and
// the predstat tool.
type SeriesSummary struct {
	Name   string
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// SummarizeClient returns summaries for the five client series in plot order.
func SummarizeClient(rows []ClientSample) []SeriesSummary {
	pred := make([]float64, len(rows))
	recv := make([]float64, len(rows))
	smooth := make([]float64, len(rows))
	predVel := make([]float64, len(rows))
	recvVel := make([]float64, len(rows))
	for i, r := range rows {
		pred[i] = r.Predicted
		recv[i] = r.Received
		smooth[i] = r.Smoothed
		predVel[i] = r.PredictedVel
		recvVel[i] = r.ReceivedVel
	}
	return []SeriesSummary{
		summarize("Client Predicted", pred),
		summarize("Client Received", recv),
		summarize("Client Smoothed", smooth),
		summarize("Client Predicted Vel", predVel),
		summarize("Client Received Vel", recvVel),
	}
}

// SummarizeServer returns summaries for the two server series in plot order.
func SummarizeServer(rows []ServerSample) []SeriesSummary {
	vals := make([]float64, len(rows))
	vels := make([]float64, len(rows))
	for i, r := range rows {
		vals[i] = r.Value
		vels[i] = r.Velocity
	}
	return []SeriesSummary{
		summarize("Server", vals),
		summarize("Server Vel", vels),
	}
}

func summarize(name string, vals []float64) SeriesSummary {
	s := SeriesSummary{Name: name, Count: len(vals)}
	if len(vals) == 0 {
		return s
	}
	d := stats.Float64Data(vals)
	// stats only errors on empty input, which is handled above
	s.Min, _ = d.Min()
	s.Max, _ = d.Max()
	s.Mean, _ = d.Mean()
	s.StdDev, _ = d.StandardDeviation()
	return s
}
