// Package trace loads the two fixed-schema CSV traces produced by a
// prediction-debug session: the client-side trace (predicted / received /
// smoothed values plus velocities) and the server-side authoritative trace.
// Timestamps in both files are integer microseconds since the Unix epoch and
// are interpreted as UTC.
package trace

import "time"

// ClientSample is one row of the client trace: the locally predicted value,
// the last value received from the server, the smoothed display value, and
// the two client-side velocity estimates, all captured at Timestamp.
type ClientSample struct {
	Timestamp    time.Time
	Predicted    float64
	Received     float64
	Smoothed     float64
	PredictedVel float64
	ReceivedVel  float64
}

// ServerSample is one row of the authoritative server trace.
type ServerSample struct {
	Timestamp time.Time
	Value     float64
	Velocity  float64
}

// FromMicros converts a microseconds-since-epoch count to a UTC timestamp.
func FromMicros(us int64) time.Time { return time.UnixMicro(us).UTC() }

// ToMicros is the exact inverse of FromMicros.
func ToMicros(t time.Time) int64 { return t.UnixMicro() }
