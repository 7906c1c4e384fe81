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

import "sync"

// PaletteSize is the number of entries in a Palette.
const PaletteSize = 2048

// Ramp constants of the hue-saturation-lightness conversion.
const (
	paletteSaturation = 0.8
	paletteLightness  = 0.5
)

// RGB is one palette entry.
type RGB struct {
	R, G, B uint8
}

// Palette is a cyclic hue ramp of PaletteSize colors.
// A Palette is immutable once built and safe to share between goroutines.
type Palette struct {
	entries [PaletteSize]RGB
}

// NewPalette computes a palette. Entry i has hue i/PaletteSize at fixed
// saturation and lightness.
func NewPalette() *Palette {
	p := &Palette{}
	for i := range p.entries {
		p.entries[i] = hslToRGB(float32(i) / PaletteSize)
	}
	return p
}

// Len returns PaletteSize.
func (p *Palette) Len() int {
	return len(p.entries)
}

// At returns entry i. Indexes outside [0, PaletteSize) are clamped.
func (p *Palette) At(i int) RGB {
	return p.entries[min(max(i, 0), PaletteSize-1)]
}

// PaletteIndex maps an escape count to a palette entry:
// min(k*PaletteSize/maxIterations, PaletteSize-1).
// The product is formed in 64 bits so large budgets do not wrap.
func PaletteIndex(k, maxIterations uint32) int {
	if maxIterations == 0 {
		return 0
	}
	idx := uint64(k) * PaletteSize / uint64(maxIterations)
	return int(min(idx, PaletteSize-1))
}

// PaletteCache builds a Palette on first use and hands out the same table
// afterwards. The zero value is ready to use.
type PaletteCache struct {
	once    sync.Once
	palette *Palette
}

// Build returns the cached palette, computing it on the first call.
// Later calls are no-ops that return the same pointer.
func (c *PaletteCache) Build() *Palette {
	c.once.Do(func() {
		c.palette = NewPalette()
	})
	return c.palette
}

var defaultPalette PaletteCache

// DefaultPalette returns the process-wide shared palette used by engines
// created without WithPalette.
func DefaultPalette() *Palette {
	return defaultPalette.Build()
}

// hslToRGB converts hue h in [0, 1) at the ramp's saturation and lightness.
// Channels are truncated, not rounded, to bytes.
func hslToRGB(h float32) RGB {
	const s, l = paletteSaturation, paletteLightness

	q := float32(l + s - l*s)
	p := float32(2*l) - q

	r := hueToChannel(p, q, h+1.0/3)
	g := hueToChannel(p, q, h)
	b := hueToChannel(p, q, h-1.0/3)

	return RGB{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255)}
}

func hueToChannel(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
