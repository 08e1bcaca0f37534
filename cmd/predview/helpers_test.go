package main

import (
	"image"
	"strings"
	"testing"

	"github.com/gretchenfrage/predview/src/config"
)

func TestComputeChartDimensionsClamps(t *testing.T) {
	w, h := computeChartDimensions(200)
	if w != 800 {
		t.Errorf("narrow window should clamp to 800, got %d", w)
	}
	if h < 420 || h > 860 {
		t.Errorf("height out of bounds: %d", h)
	}
	w, h = computeChartDimensions(3000)
	if w != 3000 {
		t.Errorf("wide window should pass through, got %d", w)
	}
	if h != 860 {
		t.Errorf("height should clamp to 860, got %d", h)
	}
}

func TestStyleHint(t *testing.T) {
	cfg := config.Default() // show_both=true
	if got := styleHint(cfg); got != "style: lines+markers" {
		t.Errorf("default hint: %q", got)
	}
	cfg.ConnectLines = true
	if got := styleHint(cfg); got != "style: lines" {
		t.Errorf("connect-lines hint: %q", got)
	}
	cfg.ConnectLines = false
	cfg.ShowBoth = false
	if got := styleHint(cfg); got != "style: markers" {
		t.Errorf("markers hint: %q", got)
	}
}

func TestTruncatePath(t *testing.T) {
	if got := truncatePath("short.csv", 50); got != "short.csv" {
		t.Errorf("short path changed: %q", got)
	}
	long := "/very/long/directory/structure/holding/traces/steve-client.csv"
	got := truncatePath(long, 30)
	if len(got) > 34 {
		t.Errorf("truncated path still long: %q", got)
	}
	if !strings.HasSuffix(got, "steve-client.csv") {
		t.Errorf("base name lost: %q", got)
	}
}

func TestDrawHintPreservesBounds(t *testing.T) {
	src := blank(300, 120)
	out := drawHint(src, "style: markers")
	if out.Bounds() != src.Bounds() {
		t.Errorf("bounds changed: %v vs %v", out.Bounds(), src.Bounds())
	}
	// empty text is a no-op
	if got := drawHint(src, "  "); got != src {
		t.Error("blank hint should return the input image")
	}
}

func TestBlankSize(t *testing.T) {
	img := blank(64, 32)
	if img.Bounds() != image.Rect(0, 0, 64, 32) {
		t.Errorf("bounds: %v", img.Bounds())
	}
}
