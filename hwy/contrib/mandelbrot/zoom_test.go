package mandelbrot

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/ajroetker/go-fractal/hwy/contrib/workerpool"
)

func TestRenderZoom_MatchesSequential(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	vp := Viewport{Width: 21, Height: 13, CenterX: -0.745, CenterY: 0.11, Zoom: 1, MaxIterations: 80}
	const frames, factor = 5, 2.0

	got, err := RenderZoom(pool, vp, frames, factor)
	if err != nil {
		t.Fatalf("RenderZoom: %v", err)
	}
	if len(got) != frames {
		t.Fatalf("RenderZoom: got %d frames, want %d", len(got), frames)
	}

	e := NewEngine()
	for i, img := range got {
		fvp := vp
		fvp.Zoom = math.Pow(factor, float64(i))
		want, err := e.Render(fvp)
		if err != nil {
			t.Fatalf("Render frame %d: %v", i, err)
		}
		if img == nil || !bytes.Equal(img.Pix, want) {
			t.Errorf("frame %d differs from a sequential render", i)
		}
	}

	// Frames are independent copies.
	if &got[0].Pix[0] == &got[1].Pix[0] {
		t.Error("frames 0 and 1 share storage")
	}
}

func TestRenderZoom_NilPool(t *testing.T) {
	vp := Viewport{Width: 9, Height: 9, Zoom: 1, MaxIterations: 30}
	seq, err := RenderZoom(nil, vp, 3, 1.5, WithKernel(ScalarKernel))
	if err != nil {
		t.Fatalf("RenderZoom(nil): %v", err)
	}

	pool := workerpool.New(3)
	defer pool.Close()
	par, err := RenderZoom(pool, vp, 3, 1.5)
	if err != nil {
		t.Fatalf("RenderZoom(pool): %v", err)
	}
	for i := range seq {
		if !bytes.Equal(seq[i].Pix, par[i].Pix) {
			t.Errorf("frame %d: nil pool and worker pool disagree", i)
		}
	}
}

func TestRenderZoom_Invalid(t *testing.T) {
	vp := Viewport{Width: 4, Height: 4, Zoom: 1, MaxIterations: 10}

	for _, factor := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		if _, err := RenderZoom(nil, vp, 2, factor); !errors.Is(err, ErrInvalidViewport) {
			t.Errorf("factor %v: got %v, want ErrInvalidViewport", factor, err)
		}
	}

	if out, err := RenderZoom(nil, vp, 0, 2); out != nil || err != nil {
		t.Errorf("zero frames: got %v, %v, want nil, nil", out, err)
	}

	// Every frame of a zero-zoom sequence fails; the errors are joined.
	bad := vp
	bad.Zoom = 0
	out, err := RenderZoom(nil, bad, 2, 2)
	if !errors.Is(err, ErrInvalidViewport) {
		t.Fatalf("zero zoom: got %v, want ErrInvalidViewport", err)
	}
	for i, img := range out {
		if img != nil {
			t.Errorf("frame %d: got image for failed frame", i)
		}
	}
}
