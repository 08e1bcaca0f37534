package trace

import (
	"math"
	"testing"
	"time"
)

func TestSummarizeClientOrderAndValues(t *testing.T) {
	rows := []ClientSample{
		{Timestamp: time.Unix(1, 0), Predicted: 1, Received: 2, Smoothed: 3, PredictedVel: 4, ReceivedVel: 5},
		{Timestamp: time.Unix(2, 0), Predicted: 3, Received: 4, Smoothed: 5, PredictedVel: 6, ReceivedVel: 7},
	}
	sums := SummarizeClient(rows)
	if len(sums) != 5 {
		t.Fatalf("expected 5 summaries, got %d", len(sums))
	}
	wantNames := []string{"Client Predicted", "Client Received", "Client Smoothed", "Client Predicted Vel", "Client Received Vel"}
	for i, n := range wantNames {
		if sums[i].Name != n {
			t.Errorf("summary %d name: got %q want %q", i, sums[i].Name, n)
		}
		if sums[i].Count != 2 {
			t.Errorf("summary %d count: got %d", i, sums[i].Count)
		}
	}
	if sums[0].Min != 1 || sums[0].Max != 3 || sums[0].Mean != 2 {
		t.Errorf("predicted summary: %+v", sums[0])
	}
	if math.Abs(sums[0].StdDev-1) > 1e-9 {
		t.Errorf("predicted stddev: got %v want 1", sums[0].StdDev)
	}
}

func TestSummarizeServer(t *testing.T) {
	sums := SummarizeServer([]ServerSample{{Value: 10, Velocity: -2}})
	if len(sums) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(sums))
	}
	if sums[0].Name != "Server" || sums[1].Name != "Server Vel" {
		t.Errorf("names: %q %q", sums[0].Name, sums[1].Name)
	}
	if sums[1].Min != -2 || sums[1].Max != -2 || sums[1].Mean != -2 {
		t.Errorf("velocity summary: %+v", sums[1])
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sums := SummarizeClient(nil)
	for _, s := range sums {
		if s.Count != 0 || s.Min != 0 || s.Mean != 0 {
			t.Errorf("empty summary should be zeroed: %+v", s)
		}
	}
}
