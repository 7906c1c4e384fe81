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
	"fmt"
	stdimage "image"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Format is an output file format for rendered frames.
type Format int

const (
	// PNG is lossless and the default.
	PNG Format = iota

	// BMP is uncompressed.
	BMP

	// TIFF is deflate-compressed with a horizontal predictor.
	TIFF
)

// String returns the format's file extension without the dot.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name or file extension, case-insensitively,
// with or without a leading dot.
func ParseFormat(name string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(name), ".") {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return 0, fmt.Errorf("unknown image format %q (want png, bmp or tiff)", name)
	}
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img stdimage.Image, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("encode: unsupported format %d", int(f))
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}

// Downsample resizes src to width x height with a Catmull-Rom filter.
// Rendering at a multiple of the target size and downsampling antialiases
// the set's boundary.
func Downsample(src *stdimage.RGBA, width, height int) *stdimage.RGBA {
	dst := stdimage.NewRGBA(stdimage.Rect(0, 0, max(width, 0), max(height, 0)))
	if dst.Rect.Empty() || src.Rect.Empty() {
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Rect, src, src.Rect, draw.Src, nil)
	return dst
}
