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
	"errors"
	"fmt"
	"math"
)

// ErrInvalidViewport is returned for viewports whose zoom or center cannot be
// mapped to finite float32 plane coordinates.
var ErrInvalidViewport = errors.New("invalid viewport")

// planeSpan is the width of the complex plane shown at zoom 1.
const planeSpan = 4.0

// Viewport describes one frame: its size in pixels, the plane point at its
// center, the zoom factor and the iteration budget.
type Viewport struct {
	Width, Height    uint32
	CenterX, CenterY float64
	Zoom             float64
	MaxIterations    uint32
}

// Empty reports whether the viewport has no pixels.
func (vp Viewport) Empty() bool {
	return vp.Width == 0 || vp.Height == 0
}

// Seed is the plane coordinate c = X0 + i*Y0 iterated for one pixel.
type Seed struct {
	X0, Y0 float32
}

// Mapping converts pixel coordinates to seeds. The zero value is not useful;
// obtain one from Viewport.Mapping.
type Mapping struct {
	halfWidth, halfHeight float32
	scale                 float32
	centerX, centerY      float32
}

// Mapping validates the viewport and returns its pixel-to-plane mapping.
//
// The center and zoom are narrowed to float32, the precision the escape loop
// runs at. scale = 4 / (width * zoom) is the plane distance between adjacent
// pixels, and pixel (width/2, height/2) maps to the center.
func (vp Viewport) Mapping() (Mapping, error) {
	if vp.Empty() {
		return Mapping{}, fmt.Errorf("%w: %dx%d has no pixels", ErrInvalidViewport, vp.Width, vp.Height)
	}

	zoom := float32(vp.Zoom)
	if !(zoom > 0) || isInf32(zoom) {
		return Mapping{}, fmt.Errorf("%w: zoom %v", ErrInvalidViewport, vp.Zoom)
	}
	cx, cy := float32(vp.CenterX), float32(vp.CenterY)
	if !isFinite32(cx) || !isFinite32(cy) {
		return Mapping{}, fmt.Errorf("%w: center (%v, %v)", ErrInvalidViewport, vp.CenterX, vp.CenterY)
	}

	width := float32(vp.Width)
	scale := planeSpan / float32(width*zoom)
	if !(scale > 0) || isInf32(scale) {
		return Mapping{}, fmt.Errorf("%w: zoom %v gives pixel scale %v", ErrInvalidViewport, vp.Zoom, scale)
	}

	return Mapping{
		halfWidth:  width * 0.5,
		halfHeight: float32(vp.Height) * 0.5,
		scale:      scale,
		centerX:    cx,
		centerY:    cy,
	}, nil
}

// Scale returns the plane distance between adjacent pixels.
func (m Mapping) Scale() float32 {
	return m.scale
}

// X returns the real part of the seed for column px.
func (m Mapping) X(px int) float32 {
	return float32((float32(px)-m.halfWidth)*m.scale) + m.centerX
}

// Y returns the imaginary part of the seed for row py.
func (m Mapping) Y(py int) float32 {
	return float32((float32(py)-m.halfHeight)*m.scale) + m.centerY
}

// Seed returns the seed for pixel (px, py).
func (m Mapping) Seed(px, py int) Seed {
	return Seed{X0: m.X(px), Y0: m.Y(py)}
}

func isInf32(f float32) bool {
	return math.IsInf(float64(f), 0)
}

func isFinite32(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
