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
	"testing"

	"simd/archsimd"

	"github.com/ajroetker/go-fractal/hwy"
)

func TestAVX2Kernel_Selected(t *testing.T) {
	if !archsimd.X86.AVX2() || hwy.NoSimdEnv() {
		t.Skip("AVX2 not available")
	}
	if DefaultKernel().Name() != "avx2" {
		t.Errorf("DefaultKernel: got %s, want avx2", DefaultKernel().Name())
	}
	k, err := KernelByName("avx2")
	if err != nil || k != hardwareKernel {
		t.Errorf("KernelByName(avx2): got %v, %v", k, err)
	}
}

func TestAVX2Kernel_MixedGroup(t *testing.T) {
	if hardwareKernel == nil {
		t.Skip("AVX2 not available")
	}
	seeds := [hwy.NumLanes]Seed{{3, 0}, {0, 0}, {2, 0}, {0.3, 0.5}}
	if got, want := hardwareKernel.Escape4(seeds, 1000), EscapeLanes(seeds, 1000); got != want {
		t.Errorf("avx2: got %v, want %v", got, want)
	}
}

func BenchmarkEscapeAVX2(b *testing.B) {
	if hardwareKernel == nil {
		b.Skip("AVX2 not available")
	}
	seeds := [hwy.NumLanes]Seed{{-0.75, 0.1}, {-0.74, 0.1}, {-0.73, 0.1}, {-0.72, 0.1}}
	b.ReportAllocs()
	for b.Loop() {
		hardwareKernel.Escape4(seeds, 256)
	}
}
