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

package mandelbrot

import (
	"fmt"
	stdimage "image"
	"math"

	"github.com/ajroetker/go-fractal/hwy"
	"github.com/ajroetker/go-fractal/hwy/contrib/image"
)

// moduleIdentifier labels this implementation in benchmark reports.
const moduleIdentifier = "Go/hwy lane-grouped Mandelbrot"

// ModuleIdentifier returns a static description of the engine.
func ModuleIdentifier() string {
	return moduleIdentifier
}

// Engine renders frames into a pixel buffer it owns.
//
// An Engine is not safe for concurrent use. The palette it holds is
// immutable and may be shared with other engines.
type Engine struct {
	buf     *image.PixelBuffer
	palette *Palette
	kernel  Kernel
}

// Option configures an Engine.
type Option func(*Engine)

// WithKernel sets the lane-group kernel. Nil keeps the default.
func WithKernel(k Kernel) Option {
	return func(e *Engine) {
		if k != nil {
			e.kernel = k
		}
	}
}

// WithPalette sets the color table. Nil keeps the default.
func WithPalette(p *Palette) Option {
	return func(e *Engine) {
		if p != nil {
			e.palette = p
		}
	}
}

// WithInitialCapacity preallocates n bytes of pixel buffer.
func WithInitialCapacity(n int) Option {
	return func(e *Engine) {
		e.buf = image.NewPixelBuffer(n)
	}
}

// NewEngine creates an engine using DefaultKernel and DefaultPalette unless
// overridden by opts.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		buf:     image.NewPixelBuffer(0),
		palette: DefaultPalette(),
		kernel:  DefaultKernel(),
	}
	for _, opt := range opts {
		opt(e)
	}
	Logger().Debug("mandelbrot engine created",
		"kernel", e.kernel.Name(),
		"simd", hwy.CurrentName(),
		"capacity", e.buf.Cap())
	return e
}

// Kernel returns the engine's lane-group kernel.
func (e *Engine) Kernel() Kernel {
	return e.kernel
}

// Palette returns the engine's color table.
func (e *Engine) Palette() *Palette {
	return e.palette
}

// Buffer returns the engine's pixel buffer. It holds the most recent frame.
func (e *Engine) Buffer() *image.PixelBuffer {
	return e.buf
}

// AcquireBuffer ensures the engine's buffer holds at least minSize bytes and
// returns the whole storage for zero-copy access. Only the extent written by
// the most recent Render holds meaningful pixels.
func (e *Engine) AcquireBuffer(minSize int) ([]byte, error) {
	before := e.buf.Cap()
	data, err := e.buf.Grow(minSize)
	if err != nil {
		return nil, fmt.Errorf("acquire buffer: %w", err)
	}
	e.logGrowth(before)
	return data, nil
}

// Render writes the frame described by vp into the engine's buffer and
// returns its width*height*4 RGBA bytes in row-major order.
//
// A viewport without pixels returns an empty slice and writes nothing. A
// zero iteration budget renders every pixel as in the set. The returned
// slice aliases the buffer and is overwritten by the next Render.
func (e *Engine) Render(vp Viewport) ([]byte, error) {
	if vp.Empty() {
		return e.buf.Frame(0, 0)
	}
	if uint64(vp.Width) > math.MaxInt || uint64(vp.Height) > math.MaxInt {
		return nil, fmt.Errorf("render %dx%d: %w", vp.Width, vp.Height, image.ErrFrameTooLarge)
	}

	m, err := vp.Mapping()
	if err != nil {
		return nil, err
	}

	width, height := int(vp.Width), int(vp.Height)
	before := e.buf.Cap()
	pix, err := e.buf.Frame(width, height)
	if err != nil {
		return nil, fmt.Errorf("render %dx%d: %w", width, height, err)
	}
	e.logGrowth(before)

	e.renderFrame(pix, width, height, m, vp.MaxIterations)
	return pix, nil
}

// RenderImage is Render returning a zero-copy image view of the frame.
func (e *Engine) RenderImage(vp Viewport) (*stdimage.RGBA, error) {
	if _, err := e.Render(vp); err != nil {
		return nil, err
	}
	return e.buf.RGBA(), nil
}

// renderFrame fills pix row by row: lane groups for the aligned part of each
// row, EscapeScalar for the remainder. Both paths take seeds from m,
// so a pixel's bytes do not depend on which path computed it.
func (e *Engine) renderFrame(pix []byte, width, height int, m Mapping, maxIterations uint32) {
	stride := width * image.BytesPerPixel
	for py := range height {
		row := pix[py*stride : (py+1)*stride]
		y0 := m.Y(py)

		hwy.ProcessWithTail(width,
			func(px int) {
				var seeds [hwy.NumLanes]Seed
				for i := range seeds {
					seeds[i] = Seed{X0: m.X(px + i), Y0: y0}
				}
				counts := e.kernel.Escape4(seeds, maxIterations)
				for i, k := range counts {
					e.shade(row[(px+i)*image.BytesPerPixel:], k, maxIterations)
				}
			},
			func(px, count int) {
				for i := px; i < px+count; i++ {
					k := EscapeScalar(Seed{X0: m.X(i), Y0: y0}, maxIterations)
					e.shade(row[i*image.BytesPerPixel:], k, maxIterations)
				}
			},
		)
	}
}

// shade writes the color of escape count k to dst[0:4].
func (e *Engine) shade(dst []byte, k, maxIterations uint32) {
	_ = dst[3]
	if k >= maxIterations {
		dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 255
		return
	}
	c := e.palette.entries[PaletteIndex(k, maxIterations)]
	dst[0], dst[1], dst[2], dst[3] = c.R, c.G, c.B, 255
}

func (e *Engine) logGrowth(before int) {
	if after := e.buf.Cap(); after != before {
		Logger().Debug("pixel buffer grown", "from", before, "to", after)
	}
}
