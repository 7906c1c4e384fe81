// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// mandel renders Mandelbrot frames to image files.
//
// Usage:
//
//	mandel -width 800 -height 600 -cx -0.745 -cy 0.11 -zoom 50 -iter 1000 -o out.png
//	mandel -frames 30 -factor 1.2 -o zoom.png   # writes zoom_000.png ... zoom_029.png
//	mandel -bench 20 -width 1024 -height 1024
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ajroetker/go-fractal/hwy/contrib/mandelbrot"
)

var (
	width       = flag.Uint("width", 800, "Frame width in pixels")
	height      = flag.Uint("height", 600, "Frame height in pixels")
	centerX     = flag.Float64("cx", -0.5, "Real part of the frame center")
	centerY     = flag.Float64("cy", 0, "Imaginary part of the frame center")
	zoom        = flag.Float64("zoom", 1, "Zoom factor; 1 shows 4 plane units across")
	maxIter     = flag.Uint("iter", 256, "Iteration budget per pixel")
	output      = flag.String("o", "mandelbrot.png", "Output file")
	format      = flag.String("format", "", "Output format (png, bmp, tiff); default: from the -o extension")
	supersample = flag.Int("supersample", 1, "Render at N times the size and downsample")
	frames      = flag.Int("frames", 1, "Number of zoom frames to render")
	factor      = flag.Float64("factor", 1.1, "Zoom multiplier between frames")
	workers     = flag.Int("workers", 0, "Render workers for zoom sequences (default: GOMAXPROCS)")
	bench       = flag.Int("bench", 0, "Render N times and print timings instead of writing a file")
	kernel      = flag.String("kernel", "auto", "Escape kernel (auto, lanes, scalar, or avx2 in GOEXPERIMENT=simd builds)")
	verbose     = flag.Bool("v", false, "Log debug output to stderr")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	mandelbrot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *width > 1<<32-1 || *height > 1<<32-1 || *maxIter > 1<<32-1 {
		fmt.Fprintf(os.Stderr, "Error: -width, -height and -iter must fit in 32 bits\n")
		os.Exit(1)
	}

	job := &Job{
		Viewport: mandelbrot.Viewport{
			Width:         uint32(*width),
			Height:        uint32(*height),
			CenterX:       *centerX,
			CenterY:       *centerY,
			Zoom:          *zoom,
			MaxIterations: uint32(*maxIter),
		},
		Output:      *output,
		Format:      *format,
		Supersample: *supersample,
		Frames:      *frames,
		Factor:      *factor,
		Workers:     *workers,
		BenchRuns:   *bench,
		Kernel:      *kernel,
		Stdout:      os.Stdout,
	}

	if err := job.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
