package trace

import (
	"testing"
	"time"
)

func TestMicrosRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 1_000_000, 1_700_000_123_456_789, -62_000_000_000}
	for _, us := range cases {
		if got := ToMicros(FromMicros(us)); got != us {
			t.Errorf("round trip %d: got %d", us, got)
		}
	}
}

func TestFromMicrosIsEpochOffset(t *testing.T) {
	got := FromMicros(1_000_000)
	want := time.Unix(1, 0).UTC()
	if !got.Equal(want) {
		t.Fatalf("expected epoch+1s, got %v", got)
	}
	if got.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", got.Location())
	}
}

func TestFromMicrosSubSecond(t *testing.T) {
	got := FromMicros(1_500_250)
	if got.Nanosecond() != 500_250_000 {
		t.Fatalf("expected 500250µs fraction, got %dns", got.Nanosecond())
	}
}
