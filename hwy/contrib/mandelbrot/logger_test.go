package mandelbrot

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var out bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug})))

	e := NewEngine()
	if _, err := e.Render(Viewport{Width: 4, Height: 4, Zoom: 1, MaxIterations: 4}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, msg := range []string{"mandelbrot engine created", "pixel buffer grown"} {
		if !strings.Contains(out.String(), msg) {
			t.Errorf("log output missing %q:\n%s", msg, out.String())
		}
	}

	out.Reset()
	if _, err := RenderZoom(nil, Viewport{Width: 4, Height: 4, Zoom: 1, MaxIterations: 4}, 2, 2); err != nil {
		t.Fatalf("RenderZoom: %v", err)
	}
	for _, msg := range []string{"zoom frame rendered", "elapsed=", "zoom sequence rendered"} {
		if !strings.Contains(out.String(), msg) {
			t.Errorf("log output missing %q:\n%s", msg, out.String())
		}
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the discarding logger")
	}
}
