package tensor

import "slices"

// base holds the descriptor shared by Tensor and Ref and answers the
// geometry queries common to both.
type base struct {
	desc Slice
}

// Descriptor returns a copy of the tensor's slice descriptor.
func (b *base) Descriptor() Slice {
	return b.desc.Clone()
}

// Order returns the rank.
func (b *base) Order() int {
	return b.desc.Order()
}

// Size returns the number of elements.
func (b *base) Size() int {
	return b.desc.Size
}

// Extent returns the extent of axis i.
func (b *base) Extent(i int) int {
	if i < 0 || i >= b.desc.Order() {
		fail("extent", ErrOutOfRange, "axis %d not in [0, %d)", i, b.desc.Order())
	}
	return b.desc.Extents[i]
}

// Extents returns a copy of all extents.
func (b *base) Extents() []int {
	return slices.Clone(b.desc.Extents)
}

// Shape returns the extents as a Shape.
func (b *base) Shape() Shape {
	return Shape(b.Extents())
}

// Rows returns the number of rows of a matrix.
// Panics with ErrRankMismatch if the rank is not 2.
func (b *base) Rows() int {
	b.requireOrder("rows", 2)
	return b.desc.Extents[0]
}

// Cols returns the number of columns of a matrix.
// Panics with ErrRankMismatch if the rank is not 2.
func (b *base) Cols() int {
	b.requireOrder("cols", 2)
	return b.desc.Extents[1]
}

func (b *base) slice() *Slice {
	return &b.desc
}

func (b *base) requireOrder(op string, n int) {
	if b.desc.Order() != n {
		fail(op, ErrRankMismatch, "requires rank %d, got %d", n, b.desc.Order())
	}
}

// offset validates indices and returns their flat offset.
func (b *base) offset(op string, indices []int) int {
	if len(indices) != b.desc.Order() {
		fail(op, ErrRankMismatch, "expected %d indices, got %d", b.desc.Order(), len(indices))
	}
	if !CheckBounds(&b.desc, indices...) {
		fail(op, ErrOutOfRange, "indices %v for extents %v", indices, b.desc.Extents)
	}
	return b.desc.FlatIndex(indices)
}

// Tensorlike is implemented by *Tensor and *Ref. The operator layer accepts
// it so that owning tensors and views mix freely.
type Tensorlike[T Number] interface {
	Descriptor() Slice
	Order() int
	Size() int
	Extent(i int) int
	Extents() []int
	Rows() int
	Cols() int
	At(indices ...int) T
	Row(i int) *Ref[T]
	Col(i int) *Ref[T]
	Begin() *Iterator[T]
	End() *Iterator[T]

	slice() *Slice
}

func requireSameExtents(op string, a, b *Slice) {
	if !slices.Equal(a.Extents, b.Extents) {
		fail(op, ErrShapeMismatch, "extents %v vs %v", a.Extents, b.Extents)
	}
}
