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

// Package contrib groups the packages built on hwy lane operations.
//
// # Subpackages
//
//   - mandelbrot: escape-time renderer with lane-grouped and scalar kernels
//   - image: growable RGBA pixel buffer, frame encoding and resampling
//   - workerpool: persistent workers with stable indexes for per-worker state
//
// # Rendering a frame
//
//	import "github.com/ajroetker/go-fractal/hwy/contrib/mandelbrot"
//
//	e := mandelbrot.NewEngine()
//	img, err := e.RenderImage(mandelbrot.Viewport{
//	    Width: 640, Height: 480, CenterX: -0.5, Zoom: 1, MaxIterations: 500,
//	})
//
// # Writing it out
//
//	import "github.com/ajroetker/go-fractal/hwy/contrib/image"
//
//	err = image.Encode(w, img, image.PNG)
//
// No build flags are required; every package is pure Go and selects its
// kernel at run time.
package contrib
