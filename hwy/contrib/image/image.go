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

package image

import (
	"errors"
	"fmt"
	stdimage "image"
	"math"
)

// BytesPerPixel is the size of one interleaved RGBA pixel.
const BytesPerPixel = 4

// ErrFrameTooLarge is returned when a frame's byte size does not fit in an int.
var ErrFrameTooLarge = errors.New("frame too large")

// FrameSize returns width*height*BytesPerPixel.
// Non-positive dimensions give 0.
func FrameSize(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, nil
	}
	if width > math.MaxInt/BytesPerPixel/height {
		return 0, fmt.Errorf("%dx%d: %w", width, height, ErrFrameTooLarge)
	}
	return width * height * BytesPerPixel, nil
}

// PixelBuffer is a growable RGBA byte buffer reused across frames.
// It performs no locking; a PixelBuffer must have a single writer.
type PixelBuffer struct {
	data   []byte
	width  int // current frame width in pixels
	height int // current frame height in pixels
}

// NewPixelBuffer creates a buffer with capacity bytes already allocated.
func NewPixelBuffer(capacity int) *PixelBuffer {
	b := &PixelBuffer{}
	if capacity > 0 {
		b.data = make([]byte, capacity)
	}
	return b
}

// Grow ensures the buffer holds at least minSize bytes and returns the whole
// storage. Requests at or below the current capacity are no-ops; Grow never
// shrinks. Existing bytes are preserved.
func (b *PixelBuffer) Grow(minSize int) ([]byte, error) {
	if minSize < 0 {
		return nil, fmt.Errorf("grow to %d bytes: negative size", minSize)
	}
	if minSize > len(b.data) {
		grown := make([]byte, minSize)
		copy(grown, b.data)
		b.data = grown
	}
	return b.data, nil
}

// Frame sizes the buffer for a width x height frame and returns exactly the
// frame's bytes. A degenerate frame returns an empty slice and leaves the
// storage untouched.
func (b *PixelBuffer) Frame(width, height int) ([]byte, error) {
	size, err := FrameSize(width, height)
	if err != nil {
		return nil, err
	}
	if _, err := b.Grow(size); err != nil {
		return nil, err
	}
	if size == 0 {
		width, height = 0, 0
	}
	b.width, b.height = width, height
	return b.data[:size], nil
}

// Width returns the current frame width in pixels.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the current frame height in pixels.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Stride returns the number of bytes per row of the current frame.
func (b *PixelBuffer) Stride() int {
	return b.width * BytesPerPixel
}

// Len returns the byte length of the current frame.
func (b *PixelBuffer) Len() int {
	return b.width * b.height * BytesPerPixel
}

// Cap returns the number of bytes allocated.
func (b *PixelBuffer) Cap() int {
	return len(b.data)
}

// Bytes returns the current frame's bytes.
func (b *PixelBuffer) Bytes() []byte {
	return b.data[:b.Len()]
}

// Row returns a mutable slice for row y of the current frame.
func (b *PixelBuffer) Row(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	stride := b.Stride()
	start := y * stride
	return b.data[start : start+stride : start+stride]
}

// RGBA returns a zero-copy view of the current frame.
func (b *PixelBuffer) RGBA() *stdimage.RGBA {
	return &stdimage.RGBA{
		Pix:    b.Bytes(),
		Stride: b.Stride(),
		Rect:   stdimage.Rect(0, 0, b.width, b.height),
	}
}

// CloneRGBA returns a copy of the current frame that does not alias the buffer.
func (b *PixelBuffer) CloneRGBA() *stdimage.RGBA {
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.Bytes())
	return img
}
