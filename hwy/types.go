// Package hwy provides portable fixed-width lane operations with runtime CPU
// dispatch.
//
// A Vec holds four 32-bit lanes, the width of one 128-bit register on every
// target the package knows about (SSE2 on amd64, NEON on arm64). Operations
// are written once in pure Go and process all four lanes in lockstep; callers
// that need bit-exact agreement with a one-lane loop get it because every lane
// performs the same rounded float32 operations in the same order.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-fractal/hwy"
//
//	a := hwy.Load(xs)
//	b := hwy.Set[float32](4)
//	m := hwy.LessEqual(a, b)
//	n := hwy.IfThenElseZero(hwy.RebindMask[uint32](m), hwy.Set[uint32](1))
package hwy

// Floats is a constraint for 32-bit floating-point lanes.
type Floats interface {
	~float32
}

// Integers is a constraint for 32-bit integer lanes.
type Integers interface {
	~int32 | ~uint32
}

// Lanes is a constraint for all types that can be stored in a lane.
type Lanes interface {
	Floats | Integers
}

// NumLanes is the number of lanes in every Vec and Mask.
const NumLanes = 4

// Vec is a group of four lanes advanced together.
//
// Vec instances should not be created directly; use Load, Set or Zero.
type Vec[T Lanes] struct {
	data [NumLanes]T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return NumLanes
}

// Data returns a copy of the lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() [NumLanes]T {
	return v.data
}

// Store writes the vector's lanes to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask represents the result of a comparison operation.
// It can be used with IfThenElse and IfThenElseZero to perform
// conditional operations.
//
// Mask instances should not be created directly; use comparison operations
// like LessEqual, or FirstN.
type Mask[T Lanes] struct {
	bits [NumLanes]bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return NumLanes
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= NumLanes {
		return false
	}
	return m.bits[i]
}
