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
	"time"
)

// BenchResult summarizes repeated renders of one viewport.
type BenchResult struct {
	Runs          int
	Min, Max, Avg time.Duration
	Total         time.Duration
}

// Benchmark renders vp runs times on e and reports the timings. The first
// render is included, so a fresh engine's buffer growth counts toward Max.
func Benchmark(e *Engine, vp Viewport, runs int) (BenchResult, error) {
	if runs <= 0 {
		return BenchResult{}, fmt.Errorf("benchmark: runs must be positive, got %d", runs)
	}

	res := BenchResult{Runs: runs}
	for i := range runs {
		start := time.Now()
		if _, err := e.Render(vp); err != nil {
			return BenchResult{}, fmt.Errorf("benchmark run %d: %w", i, err)
		}
		d := time.Since(start)

		res.Total += d
		if i == 0 || d < res.Min {
			res.Min = d
		}
		if d > res.Max {
			res.Max = d
		}
	}
	res.Avg = res.Total / time.Duration(runs)

	Logger().Debug("benchmark finished",
		"runs", runs, "min", res.Min, "avg", res.Avg, "max", res.Max)
	return res, nil
}
