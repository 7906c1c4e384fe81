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

// Package mandelbrot renders the Mandelbrot escape-time set into RGBA frames.
//
// The escape loop runs four pixels at a time through hwy lane groups, with a
// scalar loop for the pixels left over at the end of each row. Both paths
// perform identical rounded float32 arithmetic, so a pixel's color never depends
// on which path computed it.
//
// # Engines
//
// An Engine owns the pixel buffer its frames are written into and holds a
// shared, immutable Palette. The buffer grows to the largest frame rendered
// and is reused, so repeated renders of the same size do not allocate:
//
//	e := mandelbrot.NewEngine()
//	pix, err := e.Render(mandelbrot.Viewport{
//	    Width: 800, Height: 600,
//	    CenterX: -0.5, Zoom: 1,
//	    MaxIterations: 256,
//	})
//
// The returned bytes alias the engine's buffer and are overwritten by the next
// render. An Engine performs no locking: use one Engine per goroutine, as
// RenderZoom does.
//
// # Kernels
//
// Built with GOEXPERIMENT=simd on an AVX2 machine, the default kernel runs
// each lane group in archsimd registers. Otherwise the pure Go lane kernel is
// used when hwy detects a SIMD level, and groups are unrolled into the scalar
// loop when it does not (or when HWY_NO_SIMD is set). Kernels lists what is
// available; WithKernel forces one.
package mandelbrot
