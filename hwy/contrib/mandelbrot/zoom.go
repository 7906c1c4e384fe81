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
	stdimage "image"
	"math"
	"time"

	"github.com/ajroetker/go-fractal/hwy/contrib/workerpool"
)

// RenderZoom renders a zoom sequence: frame i is vp with its zoom multiplied
// by factor^i. Frames are distributed over pool with one Engine per worker,
// each built from opts, and returned as independent copies.
//
// A nil pool renders the frames sequentially on one engine. Errors of
// individual frames are joined; frames that failed are nil.
func RenderZoom(pool *workerpool.Pool, vp Viewport, frames int, factor float64, opts ...Option) ([]*stdimage.RGBA, error) {
	if frames <= 0 {
		return nil, nil
	}
	if !(factor > 0) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("%w: zoom factor %v", ErrInvalidViewport, factor)
	}

	workers := 1
	if pool != nil {
		workers = pool.NumWorkers()
	}
	engines := make([]*Engine, workers)
	out := make([]*stdimage.RGBA, frames)
	errs := make([]error, frames)

	renderOne := func(worker, i int) {
		e := engines[worker]
		if e == nil {
			e = NewEngine(opts...)
			engines[worker] = e
		}

		fvp := vp
		fvp.Zoom = vp.Zoom * math.Pow(factor, float64(i))
		start := time.Now()
		if _, err := e.Render(fvp); err != nil {
			errs[i] = fmt.Errorf("frame %d: %w", i, err)
			return
		}
		out[i] = e.Buffer().CloneRGBA()
		Logger().Debug("zoom frame rendered",
			"frame", i, "zoom", fvp.Zoom, "worker", worker, "elapsed", time.Since(start))
	}

	if pool == nil {
		for i := range frames {
			renderOne(0, i)
		}
	} else {
		pool.ForEach(frames, renderOne)
	}

	err := errors.Join(errs...)
	Logger().Info("zoom sequence rendered", "frames", frames, "workers", workers, "failed", err != nil)
	return out, err
}
