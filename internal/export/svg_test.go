package export

import (
	"strings"
	"testing"
)

func TestCurveToSVG(t *testing.T) {
	out := CurveToSVG([]Series{
		{X: []float64{150, 300, 700}, Y: []float64{28, 413, 12250}, Stroke: "#ff4444"},
		{X: []float64{150, 700}, Y: []float64{64, 64}},
	}, 800, 400)

	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>") {
		t.Fatalf("not an svg document:\n%s", out)
	}
	if strings.Count(out, "<path") != 2 {
		t.Errorf("expected 2 paths, got %d", strings.Count(out, "<path"))
	}
	if !strings.Contains(out, `stroke="#ff4444"`) {
		t.Error("custom stroke missing")
	}
	if !strings.Contains(out, `width="800" height="400"`) {
		t.Error("size missing")
	}
}

func TestCurveToSVG_SkipsBadSeries(t *testing.T) {
	if out := CurveToSVG([]Series{{X: []float64{1}, Y: []float64{1}}}, 100, 100); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
	if out := CurveToSVG([]Series{{X: []float64{1, 2}, Y: []float64{1}}}, 100, 100); out != "" {
		t.Errorf("expected empty output for mismatched lengths, got %q", out)
	}
	if out := CurveToSVG(nil, 100, 100); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestCurveToSVG_FlatSeries(t *testing.T) {
	out := CurveToSVG([]Series{{X: []float64{0, 1, 2}, Y: []float64{5, 5, 5}}}, 100, 50)
	if strings.Contains(out, "NaN") || strings.Contains(out, "Inf") {
		t.Errorf("flat series produced invalid coordinates:\n%s", out)
	}
}
