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

//go:build amd64 && goexperiment.simd

package mandelbrot

import (
	"simd/archsimd"

	"github.com/ajroetker/go-fractal/hwy"
)

func init() {
	if hwy.NoSimdEnv() || !archsimd.X86.AVX2() {
		return
	}
	hardwareKernel = avx2Kernel{}
}

// avx2Kernel advances a lane group in one 128-bit AVX2 register per operand.
type avx2Kernel struct{}

func (avx2Kernel) Name() string { return "avx2" }

func (avx2Kernel) Escape4(seeds [hwy.NumLanes]Seed, maxIterations uint32) [hwy.NumLanes]uint32 {
	return escape_AVX2_F32x4(seeds, maxIterations)
}

// escape_AVX2_F32x4 is EscapeLanes on archsimd vectors. Mul and Add are
// separate instructions, so no lane is ever fused into a multiply-add.
func escape_AVX2_F32x4(seeds [hwy.NumLanes]Seed, maxIterations uint32) [hwy.NumLanes]uint32 {
	var xs, ys [hwy.NumLanes]float32
	for i, s := range seeds {
		xs[i], ys[i] = s.X0, s.Y0
	}
	x0 := archsimd.LoadFloat32x4Slice(xs[:])
	y0 := archsimd.LoadFloat32x4Slice(ys[:])

	four := archsimd.BroadcastFloat32x4(escapeRadius2)
	two := archsimd.BroadcastFloat32x4(2)
	one := archsimd.BroadcastUint32x4(1)
	zeroCount := archsimd.BroadcastUint32x4(0)

	zero := archsimd.BroadcastFloat32x4(0)
	x, y, x2, y2 := zero, zero, zero, zero
	counts := zeroCount
	active := zero.LessEqual(zero)

	for range maxIterations {
		active = active.And(x2.Add(y2).LessEqual(four))
		if active.ToBits() == 0 {
			break
		}

		y = two.Mul(x).Mul(y).Add(y0)
		x = x2.Sub(y2).Add(x0)
		x2 = x.Mul(x)
		y2 = y.Mul(y)

		// Merge semantics: a.Merge(b, mask) returns a when TRUE, b when FALSE
		counts = counts.Add(one.Merge(zeroCount, active))
	}

	var out [hwy.NumLanes]uint32
	counts.StoreSlice(out[:])
	return out
}
