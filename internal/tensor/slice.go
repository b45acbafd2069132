package tensor

import (
	"fmt"
	"slices"
)

// Slice describes the geometry of a tensor over a flat buffer: the offset of
// element (0, ..., 0), the extent and stride of every axis, and the number of
// addressable elements. It owns no data.
//
// The rank of a Slice is len(Extents) and never changes after construction.
type Slice struct {
	Start   int
	Size    int
	Extents []int
	Strides []int
}

// NewSlice returns a row-major descriptor starting at offset 0.
// Panics with ErrInvalidShape if extents is empty or has a negative entry.
func NewSlice(extents ...int) Slice {
	return NewSliceAt(0, extents...)
}

// NewSliceAt returns a row-major descriptor whose first element is at start.
func NewSliceAt(start int, extents ...int) Slice {
	if err := Shape(extents).Validate(); err != nil {
		panic(fmt.Errorf("new slice: %w", err))
	}
	if start < 0 {
		fail("new slice", ErrInvalidShape, "negative start %d", start)
	}
	s := Slice{
		Start:   start,
		Extents: slices.Clone(extents),
		Strides: make([]int, len(extents)),
	}
	s.Size = ComputeStrides(s.Extents, s.Strides)
	return s
}

// NewSliceStrided returns a descriptor with explicit strides. Size is the
// product of extents; strides are taken as given.
// Panics with ErrInvalidShape on a negative start or stride.
func NewSliceStrided(start int, extents, strides []int) Slice {
	if err := Shape(extents).Validate(); err != nil {
		panic(fmt.Errorf("new slice: %w", err))
	}
	if len(strides) != len(extents) {
		fail("new slice", ErrRankMismatch, "%d extents but %d strides", len(extents), len(strides))
	}
	if start < 0 {
		fail("new slice", ErrInvalidShape, "negative start %d", start)
	}
	for k, st := range strides {
		if st < 0 {
			fail("new slice", ErrInvalidShape, "negative stride %d on axis %d", st, k)
		}
	}
	return Slice{
		Start:   start,
		Size:    CalcSize(extents),
		Extents: slices.Clone(extents),
		Strides: slices.Clone(strides),
	}
}

// emptySlice returns a rank n descriptor with zero extents and strides.
func emptySlice(n int) Slice {
	return Slice{
		Extents: make([]int, n),
		Strides: make([]int, n),
	}
}

// Order returns the rank of the descriptor.
func (s Slice) Order() int {
	return len(s.Extents)
}

// FlatIndex returns Start + sum(idx[k] * Strides[k]). No bounds checking is
// done; use CheckBounds first.
func (s Slice) FlatIndex(idx []int) int {
	off := s.Start
	for k, i := range idx {
		off += i * s.Strides[k]
	}
	return off
}

// Offset is the variadic form of FlatIndex.
func (s Slice) Offset(indices ...int) int {
	return s.FlatIndex(indices)
}

// Equal reports whether both descriptors have the same start, extents and
// strides.
func (s Slice) Equal(other Slice) bool {
	return s.Start == other.Start &&
		slices.Equal(s.Extents, other.Extents) &&
		slices.Equal(s.Strides, other.Strides)
}

// Clone returns a deep copy of the descriptor.
func (s Slice) Clone() Slice {
	return Slice{
		Start:   s.Start,
		Size:    s.Size,
		Extents: slices.Clone(s.Extents),
		Strides: slices.Clone(s.Strides),
	}
}

// IsContiguous reports whether the descriptor addresses Size consecutive
// elements in row-major order.
func (s Slice) IsContiguous() bool {
	acc := 1
	for k := len(s.Extents) - 1; k >= 0; k-- {
		if s.Extents[k] > 1 && s.Strides[k] != acc {
			return false
		}
		acc *= s.Extents[k]
	}
	return true
}

// String returns a debug dump of the descriptor.
func (s Slice) String() string {
	return fmt.Sprintf("size: %d extents: %v strides: %v start: %d", s.Size, s.Extents, s.Strides, s.Start)
}
