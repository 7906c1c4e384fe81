package main

import (
	"bytes"
	stdimage "image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "golang.org/x/image/bmp"

	"github.com/ajroetker/go-fractal/hwy/contrib/mandelbrot"
)

func testJob(t *testing.T, name string) *Job {
	t.Helper()
	return &Job{
		Viewport: mandelbrot.Viewport{
			Width: 12, Height: 9, CenterX: -0.5, Zoom: 1, MaxIterations: 40,
		},
		Output:      filepath.Join(t.TempDir(), name),
		Supersample: 1,
		Frames:      1,
		Factor:      1.5,
		Kernel:      "auto",
		Stdout:      &bytes.Buffer{},
	}
}

func decode(t *testing.T, path string) (stdimage.Image, string) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	img, format, err := stdimage.Decode(f)
	if err != nil {
		t.Fatalf("Decode %s: %v", path, err)
	}
	return img, format
}

func TestJob_SingleFrame(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		format      string
		supersample int
		wantFormat  string
	}{
		{"png by extension", "out.png", "", 1, "png"},
		{"bmp by flag", "out.img", "bmp", 1, "bmp"},
		{"no extension", "out", "", 1, "png"},
		{"supersampled", "ss.png", "", 3, "png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := testJob(t, tt.output)
			j.Format = tt.format
			j.Supersample = tt.supersample
			if err := j.Run(); err != nil {
				t.Fatalf("Run: %v", err)
			}

			img, format := decode(t, j.Output)
			if format != tt.wantFormat {
				t.Errorf("format: got %s, want %s", format, tt.wantFormat)
			}
			if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 9 {
				t.Errorf("bounds: got %v, want 12x9", b)
			}
		})
	}
}

func TestJob_ZoomSequence(t *testing.T) {
	j := testJob(t, "zoom.png")
	j.Frames = 3
	j.Workers = 2
	if err := j.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	dir := filepath.Dir(j.Output)
	for _, name := range []string{"zoom_000.png", "zoom_001.png", "zoom_002.png"} {
		decode(t, filepath.Join(dir, name))
	}
	if _, err := os.Stat(j.Output); !os.IsNotExist(err) {
		t.Errorf("zoom sequence should not write %s", j.Output)
	}
}

func TestJob_ZoomSequenceWriteError(t *testing.T) {
	j := testJob(t, filepath.Join("missing", "zoom.png"))
	j.Frames = 4
	j.Workers = 2

	err := j.Run()
	if err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
	for _, name := range []string{"zoom_000.png", "zoom_003.png"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error should name %s: %v", name, err)
		}
	}
}

func TestJob_Bench(t *testing.T) {
	j := testJob(t, "unused.png")
	j.BenchRuns = 2
	j.Kernel = "scalar"
	if err := j.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := j.Stdout.(*bytes.Buffer).String()
	for _, want := range []string{mandelbrot.ModuleIdentifier(), "kernel: scalar", "2 runs", "avg"} {
		if !strings.Contains(out, want) {
			t.Errorf("bench output missing %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat(j.Output); !os.IsNotExist(err) {
		t.Error("bench should not write an image")
	}
}

func TestJob_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Job)
	}{
		{"unknown kernel", func(j *Job) { j.Kernel = "avx9" }},
		{"unknown format", func(j *Job) { j.Format = "gif" }},
		{"zero supersample", func(j *Job) { j.Supersample = 0 }},
		{"zero frames", func(j *Job) { j.Frames = 0 }},
		{"zero zoom", func(j *Job) { j.Viewport.Zoom = 0 }},
		{"empty frame", func(j *Job) { j.Viewport.Width = 0 }},
		{"bad factor", func(j *Job) { j.Frames, j.Factor = 2, -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := testJob(t, "out.png")
			tt.modify(j)
			if err := j.Run(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
