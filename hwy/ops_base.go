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

package hwy

// This file provides the pure Go implementations of the lane operations.
// Every arithmetic result is converted back to T before it is stored, which
// rounds it to lane precision and keeps the compiler from fusing a multiply
// into a following add. A lane therefore computes exactly what the same
// sequence of float32 statements computes outside a Vec.

// Load creates a vector from the first NumLanes elements of src.
// Missing elements are zero.
func Load[T Lanes](src []T) Vec[T] {
	var v Vec[T]
	copy(v.data[:], src)
	return v
}

// Store writes a vector's lanes to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.data[:])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	var v Vec[T]
	for i := range v.data {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	for i := range r.data {
		r.data[i] = T(a.data[i] + b.data[i])
	}
	return r
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	for i := range r.data {
		r.data[i] = T(a.data[i] - b.data[i])
	}
	return r
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	for i := range r.data {
		r.data[i] = T(a.data[i] * b.data[i])
	}
	return r
}

// LessEqual performs element-wise less-than-or-equal comparison.
// NaN lanes compare false.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	for i := range m.bits {
		m.bits[i] = a.data[i] <= b.data[i]
	}
	return m
}

// IfThenElseZero returns a where mask is true, zero otherwise.
// Used to gate per-lane increments.
func IfThenElseZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	var r Vec[T]
	for i := range r.data {
		if mask.bits[i] {
			r.data[i] = a.data[i]
		}
	}
	return r
}

// FirstN creates a mask with the first n lanes set to true.
func FirstN[T Lanes](n int) Mask[T] {
	var m Mask[T]
	for i := 0; i < n && i < NumLanes; i++ {
		m.bits[i] = true
	}
	return m
}

// MaskAnd performs bitwise AND on two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	var m Mask[T]
	for i := range m.bits {
		m.bits[i] = a.bits[i] && b.bits[i]
	}
	return m
}

// RebindMask reinterprets a mask computed on T lanes as a mask on U lanes.
// Both types are 32 bits wide, so lane i maps to lane i.
func RebindMask[U, T Lanes](mask Mask[T]) Mask[U] {
	return Mask[U]{bits: mask.bits}
}

// AllFalse returns true if all lanes are false.
func AllFalse[T Lanes](mask Mask[T]) bool {
	return !mask.AnyTrue()
}
