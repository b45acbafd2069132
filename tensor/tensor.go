// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"io"

	"github.com/born-ml/ndtensor/internal/tensor"
)

// Type aliases for public API

// Number is the constraint for tensor element types.
type Number = tensor.Number

// Integer is the subset of Number that supports the remainder operator.
type Integer = tensor.Integer

// Shape represents the extents of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Slice describes the geometry of a tensor over a flat buffer.
type Slice = tensor.Slice

// Tensor is an owning dense tensor of fixed rank.
//
// Example:
//
//	m := tensor.New[float32](3, 4)
//	m.Set(2, 1, 1)
type Tensor[T Number] = tensor.Tensor[T]

// Ref is a non-owning view into a Tensor's buffer. The owner must outlive
// every Ref derived from it.
type Ref[T Number] = tensor.Ref[T]

// Iterator walks a tensor or view in row-major order.
type Iterator[T Number] = tensor.Iterator[T]

// Tensorlike is implemented by *Tensor and *Ref.
type Tensorlike[T Number] = tensor.Tensorlike[T]

// FormatOption configures Format.
type FormatOption = tensor.FormatOption

// Errors wrapped by every contract violation.
var (
	ErrInvalidShape  = tensor.ErrInvalidShape
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrOutOfRange    = tensor.ErrOutOfRange
	ErrJaggedShape   = tensor.ErrJaggedShape
	ErrRankMismatch  = tensor.ErrRankMismatch
)

// Descriptor functions

// NewSlice returns a row-major descriptor for extents.
func NewSlice(extents ...int) Slice {
	return tensor.NewSlice(extents...)
}

// NewSliceStrided returns a descriptor with explicit start and strides.
func NewSliceStrided(start int, extents, strides []int) Slice {
	return tensor.NewSliceStrided(start, extents, strides)
}

// SliceDim derives the rank N-1 descriptor with axis dim fixed to offset.
func SliceDim(dim, offset int, src Slice) Slice {
	return tensor.SliceDim(dim, offset, src)
}

// CheckBounds reports whether indices address an element of s.
func CheckBounds(s *Slice, indices ...int) bool {
	return tensor.CheckBounds(s, indices...)
}

// Creation functions

// New creates a zero-filled tensor.
//
// Example:
//
//	x := tensor.New[float32](2, 3)
func New[T Number](extents ...int) *Tensor[T] {
	return tensor.New[T](extents...)
}

// Full creates a tensor filled with value.
func Full[T Number](value T, extents ...int) *Tensor[T] {
	return tensor.Full(value, extents...)
}

// FromFlat creates a tensor from row-major data.
//
// Example:
//
//	x, err := tensor.FromFlat([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
func FromFlat[T Number](data []T, extents ...int) (*Tensor[T], error) {
	return tensor.FromFlat(data, extents...)
}

// FromSlice creates a vector holding a copy of data.
func FromSlice[T Number](data []T) *Tensor[T] {
	return tensor.FromSlice(data)
}

// FromInit creates a rank order tensor from a nested literal.
//
// Example:
//
//	m, err := tensor.FromInit[int](2, [][]int{{1, 2, 3}, {4, 5, 6}})
func FromInit[T Number](order int, literal any) (*Tensor[T], error) {
	return tensor.FromInit[T](order, literal)
}

// MustFromInit is like FromInit but panics on error.
func MustFromInit[T Number](order int, literal any) *Tensor[T] {
	return tensor.MustFromInit[T](order, literal)
}

// FromRef creates an owning copy of a tensor or view.
func FromRef[T Number](src Tensorlike[T]) *Tensor[T] {
	return tensor.FromRef(src)
}

// Convert creates a copy of src with elements converted to T.
//
// Example:
//
//	f := tensor.Convert[float64, int](m) // m is a *Tensor[int]
func Convert[T, U Number](src Tensorlike[U]) *Tensor[T] {
	return tensor.Convert[T, U](src)
}

// NewRef wraps a descriptor over a buffer owned elsewhere.
func NewRef[T Number](desc Slice, elems []T) *Ref[T] {
	return tensor.NewRef(desc, elems)
}

// NewVec creates a zero vector.
func NewVec[T Number](n int) *Tensor[T] { return tensor.NewVec[T](n) }

// NewMat creates a zero matrix.
func NewMat[T Number](rows, cols int) *Tensor[T] { return tensor.NewMat[T](rows, cols) }

// NewCube creates a zero rank 3 tensor.
func NewCube[T Number](a, b, c int) *Tensor[T] { return tensor.NewCube[T](a, b, c) }

// NewHCube creates a zero rank 4 tensor.
func NewHCube[T Number](a, b, c, d int) *Tensor[T] { return tensor.NewHCube[T](a, b, c, d) }

// Operators

// Add returns a + b element-wise.
func Add[T Number](a, b Tensorlike[T]) *Tensor[T] { return tensor.Add(a, b) }

// Sub returns a - b element-wise.
func Sub[T Number](a, b Tensorlike[T]) *Tensor[T] { return tensor.Sub(a, b) }

// Mul returns the element-wise product.
func Mul[T Number](a, b Tensorlike[T]) *Tensor[T] { return tensor.Mul(a, b) }

// Div returns the element-wise quotient.
func Div[T Number](a, b Tensorlike[T]) *Tensor[T] { return tensor.Div(a, b) }

// Mod returns a % b element-wise.
func Mod[T Integer](a, b Tensorlike[T]) *Tensor[T] { return tensor.Mod(a, b) }

// ModAssign sets t to t % other element-wise.
func ModAssign[T Integer](t *Tensor[T], other Tensorlike[T]) *Tensor[T] {
	return tensor.ModAssign(t, other)
}

// ModScalar sets t to t % v.
func ModScalar[T Integer](t *Tensor[T], v T) *Tensor[T] { return tensor.ModScalar(t, v) }

// Equal reports element-wise equality. Panics if the extents differ.
func Equal[T Number](a, b Tensorlike[T]) bool { return tensor.Equal(a, b) }

// NotEqual is the negation of Equal.
func NotEqual[T Number](a, b Tensorlike[T]) bool { return tensor.NotEqual(a, b) }

// Dot returns the inner product of two vectors.
func Dot[T Number](a, b Tensorlike[T]) T { return tensor.Dot(a, b) }

// MatMul returns the matrix product a x b.
//
// Example:
//
//	a := tensor.New[float32](3, 4)
//	b := tensor.New[float32](4, 5)
//	c := tensor.MatMul[float32](a, b) // extents [3 5]
func MatMul[T Number](a, b Tensorlike[T]) *Tensor[T] { return tensor.MatMul(a, b) }

// VecMat returns the vector-matrix product v x m.
func VecMat[T Number](v, m Tensorlike[T]) *Tensor[T] { return tensor.VecMat(v, m) }

// Formatting

// Format writes a debug rendering of t to w.
func Format[T Number](w io.Writer, t Tensorlike[T], opts ...FormatOption) error {
	return tensor.Format(w, t, opts...)
}

// WithPrecision prints floats with p digits after the decimal point.
func WithPrecision(p int) FormatOption {
	return tensor.WithPrecision(p)
}
