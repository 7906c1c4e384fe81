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
	"strings"

	"github.com/ajroetker/go-fractal/hwy"
)

// escapeRadius2 is the squared magnitude a point must exceed to escape.
const escapeRadius2 = 4.0

// EscapeScalar iterates z = z*z + c from z = 0 for seed c and returns the
// number of iterations performed while |z|^2 <= 4, at most maxIterations.
// A result equal to maxIterations means the point did not escape.
//
// Each product is converted back to float32 so that no compiler may fuse it
// into a multiply-add; EscapeLanes depends on this to match bit for bit.
func EscapeScalar(seed Seed, maxIterations uint32) uint32 {
	var x, y float32
	var n uint32
	for n < maxIterations {
		x2 := float32(x * x)
		y2 := float32(y * y)
		if !(float32(x2+y2) <= escapeRadius2) {
			break
		}
		x, y = float32(x2-y2)+seed.X0, float32(float32(2*x)*y)+seed.Y0
		n++
	}
	return n
}

// EscapeLanes runs EscapeScalar for four seeds in lockstep.
//
// All lanes are updated every step; a per-lane active mask gates only the
// count increment. Once a lane's mask is cleared its z values are never read
// again, so they may overflow to Inf or NaN harmlessly. The loop stops early
// when no lane is active.
func EscapeLanes(seeds [hwy.NumLanes]Seed, maxIterations uint32) [hwy.NumLanes]uint32 {
	var xs, ys [hwy.NumLanes]float32
	for i, s := range seeds {
		xs[i], ys[i] = s.X0, s.Y0
	}
	x0 := hwy.Load(xs[:])
	y0 := hwy.Load(ys[:])

	four := hwy.Set[float32](escapeRadius2)
	two := hwy.Set[float32](2)
	one := hwy.Set[uint32](1)

	x := hwy.Zero[float32]()
	y := hwy.Zero[float32]()
	x2 := hwy.Zero[float32]()
	y2 := hwy.Zero[float32]()
	counts := hwy.Zero[uint32]()
	active := hwy.FirstN[float32](hwy.NumLanes)

	for range maxIterations {
		magnitude := hwy.Add(x2, y2)
		active = hwy.MaskAnd(active, hwy.LessEqual(magnitude, four))
		if hwy.AllFalse(active) {
			break
		}

		// y uses the previous x, so it is updated first.
		y = hwy.Add(hwy.Mul(hwy.Mul(two, x), y), y0)
		x = hwy.Add(hwy.Sub(x2, y2), x0)
		x2 = hwy.Mul(x, x)
		y2 = hwy.Mul(y, y)

		counts = hwy.Add(counts, hwy.IfThenElseZero(hwy.RebindMask[uint32](active), one))
	}

	return counts.Data()
}

// Kernel computes escape counts for one lane group of seeds.
// Implementations must agree with EscapeScalar for every lane.
type Kernel interface {
	// Name identifies the kernel, as accepted by KernelByName.
	Name() string

	// Escape4 returns the escape count of each seed.
	Escape4(seeds [hwy.NumLanes]Seed, maxIterations uint32) [hwy.NumLanes]uint32
}

type laneKernel struct{}

func (laneKernel) Name() string { return "lanes" }

func (laneKernel) Escape4(seeds [hwy.NumLanes]Seed, maxIterations uint32) [hwy.NumLanes]uint32 {
	return EscapeLanes(seeds, maxIterations)
}

type scalarKernel struct{}

func (scalarKernel) Name() string { return "scalar" }

func (scalarKernel) Escape4(seeds [hwy.NumLanes]Seed, maxIterations uint32) [hwy.NumLanes]uint32 {
	var counts [hwy.NumLanes]uint32
	for i, s := range seeds {
		counts[i] = EscapeScalar(s, maxIterations)
	}
	return counts
}

var (
	// LaneKernel advances lane groups with hwy vector operations.
	LaneKernel Kernel = laneKernel{}

	// ScalarKernel unrolls lane groups into EscapeScalar calls.
	ScalarKernel Kernel = scalarKernel{}
)

// hardwareKernel runs lane groups on CPU vector registers. It is set at init
// by the architecture files when the build and the CPU support it, and is nil
// otherwise.
var hardwareKernel Kernel

// DefaultKernel returns the hardware kernel when one is available, LaneKernel
// when hwy detected a SIMD level, and ScalarKernel otherwise.
func DefaultKernel() Kernel {
	if hwy.CurrentLevel() == hwy.DispatchScalar {
		return ScalarKernel
	}
	if hardwareKernel != nil {
		return hardwareKernel
	}
	return LaneKernel
}

// Kernels returns every kernel usable in this process.
func Kernels() []Kernel {
	ks := []Kernel{LaneKernel, ScalarKernel}
	if hardwareKernel != nil {
		ks = append(ks, hardwareKernel)
	}
	return ks
}

// KernelByName returns the kernel called name, one of Kernels, or
// DefaultKernel for "auto" and "".
func KernelByName(name string) (Kernel, error) {
	if name == "" || name == "auto" {
		return DefaultKernel(), nil
	}
	names := []string{"auto"}
	for _, k := range Kernels() {
		if k.Name() == name {
			return k, nil
		}
		names = append(names, k.Name())
	}
	return nil, fmt.Errorf("unknown kernel %q (want %s)", name, strings.Join(names, ", "))
}
