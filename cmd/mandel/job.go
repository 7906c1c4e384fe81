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

package main

import (
	"errors"
	"fmt"
	stdimage "image"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ajroetker/go-fractal/hwy"
	"github.com/ajroetker/go-fractal/hwy/contrib/image"
	"github.com/ajroetker/go-fractal/hwy/contrib/mandelbrot"
	"github.com/ajroetker/go-fractal/hwy/contrib/workerpool"
)

// Job is one invocation of the command: a single frame, a zoom sequence or a
// benchmark.
type Job struct {
	Viewport    mandelbrot.Viewport
	Output      string
	Format      string
	Supersample int
	Frames      int
	Factor      float64
	Workers     int
	BenchRuns   int
	Kernel      string
	Stdout      io.Writer
}

// Run executes the job.
func (j *Job) Run() error {
	k, err := mandelbrot.KernelByName(j.Kernel)
	if err != nil {
		return err
	}
	if j.Supersample < 1 {
		return fmt.Errorf("-supersample must be at least 1, got %d", j.Supersample)
	}
	if j.Frames < 1 {
		return fmt.Errorf("-frames must be at least 1, got %d", j.Frames)
	}

	if j.BenchRuns > 0 {
		return j.bench(k)
	}

	f, err := j.outputFormat()
	if err != nil {
		return err
	}

	vp, err := j.renderViewport()
	if err != nil {
		return err
	}

	if j.Frames == 1 {
		img, err := mandelbrot.NewEngine(mandelbrot.WithKernel(k)).RenderImage(vp)
		if err != nil {
			return err
		}
		return j.write(j.Output, img, f)
	}

	pool := workerpool.New(j.Workers)
	defer pool.Close()

	imgs, err := mandelbrot.RenderZoom(pool, vp, j.Frames, j.Factor, mandelbrot.WithKernel(k))
	if err != nil {
		return err
	}
	ext := filepath.Ext(j.Output)
	base := strings.TrimSuffix(j.Output, ext)
	if ext == "" {
		ext = "." + f.String()
	}

	// Encoding costs the same for every frame, so contiguous ranges suffice.
	errs := make([]error, len(imgs))
	pool.ParallelFor(len(imgs), func(_, start, end int) {
		for i := start; i < end; i++ {
			errs[i] = j.write(fmt.Sprintf("%s_%03d%s", base, i, ext), imgs[i], f)
		}
	})
	return errors.Join(errs...)
}

// renderViewport scales the viewport by the supersampling factor. The zoom
// is unchanged so the frame covers the same plane region.
func (j *Job) renderViewport() (mandelbrot.Viewport, error) {
	vp := j.Viewport
	if j.Supersample == 1 {
		return vp, nil
	}
	w := uint64(vp.Width) * uint64(j.Supersample)
	h := uint64(vp.Height) * uint64(j.Supersample)
	if w > math.MaxUint32 || h > math.MaxUint32 {
		return vp, fmt.Errorf("supersampled frame %dx%d: %w", w, h, image.ErrFrameTooLarge)
	}
	vp.Width, vp.Height = uint32(w), uint32(h)
	return vp, nil
}

func (j *Job) outputFormat() (image.Format, error) {
	name := j.Format
	if name == "" {
		name = filepath.Ext(j.Output)
	}
	if name == "" {
		return image.PNG, nil
	}
	return image.ParseFormat(name)
}

// write downsamples a supersampled frame back to the requested size and
// encodes it to path.
func (j *Job) write(path string, img *stdimage.RGBA, f image.Format) (err error) {
	if img.Bounds().Empty() {
		return fmt.Errorf("%s: nothing to write for a %dx%d frame", path, j.Viewport.Width, j.Viewport.Height)
	}
	if j.Supersample > 1 {
		img = image.Downsample(img, int(j.Viewport.Width), int(j.Viewport.Height))
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	if err := image.Encode(file, img, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	mandelbrot.Logger().Info("frame written", "path", path, "format", f.String(),
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}

func (j *Job) bench(k mandelbrot.Kernel) error {
	e := mandelbrot.NewEngine(mandelbrot.WithKernel(k))
	res, err := mandelbrot.Benchmark(e, j.Viewport, j.BenchRuns)
	if err != nil {
		return err
	}

	vp := j.Viewport
	fmt.Fprintf(j.Stdout, "%s\n", mandelbrot.ModuleIdentifier())
	fmt.Fprintf(j.Stdout, "SIMD Level: %s, kernel: %s\n", hwy.CurrentName(), k.Name())
	fmt.Fprintf(j.Stdout, "%dx%d, %d iterations, %d runs\n", vp.Width, vp.Height, vp.MaxIterations, res.Runs)
	fmt.Fprintf(j.Stdout, "min %v  avg %v  max %v\n", res.Min, res.Avg, res.Max)
	return nil
}
