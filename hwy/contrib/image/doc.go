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

// Package image provides the reusable RGBA pixel buffer frames are rendered
// into.
//
// A PixelBuffer owns one contiguous byte slice holding interleaved RGBA
// pixels in row-major order, four bytes per pixel. The slice grows to fit the
// largest frame ever requested and is never shrunk, so rendering the same or
// a smaller frame again costs no allocation.
//
// # Usage Example
//
//	buf := image.NewPixelBuffer(0)
//	pix, err := buf.Frame(640, 480) // len(pix) == 640*480*4
//	if err != nil {
//	    return err
//	}
//	row := buf.Row(10) // the 640*4 bytes of row 10
//	img := buf.RGBA()  // zero-copy *image.RGBA view of the frame
//
// # Lifetime
//
// Slices and images returned by a PixelBuffer alias its storage. They are
// valid until the next call to Grow or Frame; callers that keep a frame
// longer must copy it with CloneRGBA.
package image
