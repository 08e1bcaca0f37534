package trace

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Fixed column counts. The files are headerless; anything that deviates from
// the schema fails the whole load, there is no row skipping or repair.
const (
	clientColumns = 6
	serverColumns = 3
)

// LoadClientSamples reads a headerless client trace CSV with columns
// timestamp, predicted, received, smoothed, predicted_vel, received_vel.
func LoadClientSamples(path string) ([]ClientSample, error) {
	records, err := readRows(path, clientColumns)
	if err != nil {
		return nil, err
	}
	out := make([]ClientSample, 0, len(records))
	for i, rec := range records {
		us, vals, err := parseRow(path, i+1, rec)
		if err != nil {
			return nil, err
		}
		out = append(out, ClientSample{
			Timestamp:    FromMicros(us),
			Predicted:    vals[0],
			Received:     vals[1],
			Smoothed:     vals[2],
			PredictedVel: vals[3],
			ReceivedVel:  vals[4],
		})
	}
	return out, nil
}

// LoadServerSamples reads a headerless server trace CSV with columns
// timestamp, value, velocity.
func LoadServerSamples(path string) ([]ServerSample, error) {
	records, err := readRows(path, serverColumns)
	if err != nil {
		return nil, err
	}
	out := make([]ServerSample, 0, len(records))
	for i, rec := range records {
		us, vals, err := parseRow(path, i+1, rec)
		if err != nil {
			return nil, err
		}
		out = append(out, ServerSample{
			Timestamp: FromMicros(us),
			Value:     vals[0],
			Velocity:  vals[1],
		})
	}
	return out, nil
}

func readRows(path string, columns int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	// csv rejects any row whose field count differs; this is the schema check.
	r.FieldsPerRecord = columns
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// parseRow converts one record: integer microsecond timestamp followed by
// real-valued columns. line is 1-based for diagnostics.
func parseRow(path string, line int, rec []string) (int64, []float64, error) {
	us, err := strconv.ParseInt(rec[0], 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: line %d: bad timestamp %q: %w", path, line, rec[0], err)
	}
	vals := make([]float64, len(rec)-1)
	for i, field := range rec[1:] {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return 0, nil, fmt.Errorf("%s: line %d: bad value %q: %w", path, line, field, err)
		}
		vals[i] = v
	}
	return us, vals, nil
}
