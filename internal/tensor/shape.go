package tensor

import (
	"fmt"
	"math"
)

// Shape represents the extents of a tensor, outermost axis first.
type Shape []int

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	return CalcSize(s)
}

// Validate checks that the shape has at least one axis and no negative extent.
// Zero extents are allowed and describe an empty tensor. The product of the
// non-zero extents must fit in an int, so every size and stride derived from
// the shape is exact.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: rank must be at least 1", ErrInvalidShape)
	}
	acc := 1
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension at index %d is %d (must be >= 0)", ErrInvalidShape, i, dim)
		}
		if dim > 1 {
			if acc > math.MaxInt/dim {
				return fmt.Errorf("%w: shape %v overflows int", ErrInvalidShape, []int(s))
			}
			acc *= dim
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	ComputeStrides(s, strides)
	return strides
}
