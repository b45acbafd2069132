package tensor

import (
	"fmt"
	"slices"
)

// Tensor is a dense N-dimensional array that owns a contiguous row-major
// buffer of exactly Size elements. The rank is fixed when the tensor is
// built.
//
// Example:
//
//	m := tensor.New[float64](3, 4)
//	m.Set(1.5, 1, 2)
//	row := m.Row(1) // view into m, no copy
type Tensor[T Number] struct {
	base
	elems []T
}

// New creates a zero-filled tensor with the given extents.
// Panics with ErrInvalidShape if no extents are given or one is negative.
//
// Example:
//
//	t := tensor.New[int](2, 3, 4)
func New[T Number](extents ...int) *Tensor[T] {
	desc := NewSlice(extents...)
	return &Tensor[T]{
		base:  base{desc: desc},
		elems: make([]T, desc.Size),
	}
}

// Full creates a tensor with the given extents and every element set to value.
func Full[T Number](value T, extents ...int) *Tensor[T] {
	t := New[T](extents...)
	for i := range t.elems {
		t.elems[i] = value
	}
	return t
}

// FromFlat creates a tensor from row-major data.
// The data is copied into the tensor's memory.
func FromFlat[T Number](data []T, extents ...int) (*Tensor[T], error) {
	if err := Shape(extents).Validate(); err != nil {
		return nil, err
	}
	if n := CalcSize(extents); n != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d", ErrShapeMismatch, extents, n, len(data))
	}
	t := New[T](extents...)
	copy(t.elems, data)
	return t, nil
}

// FromSlice creates a vector holding a copy of data.
func FromSlice[T Number](data []T) *Tensor[T] {
	t := New[T](len(data))
	copy(t.elems, data)
	return t
}

// FromRef creates a tensor with src's extents and a copy of its elements in
// row-major order. src may be a view with arbitrary strides.
func FromRef[T Number](src Tensorlike[T]) *Tensor[T] {
	t := New[T](src.slice().Extents...)
	t.CopyFrom(src)
	return t
}

// Convert creates a tensor with src's extents whose elements are src's
// converted to T with Go's numeric conversion rules, so float to integer
// truncates toward zero.
//
// Example:
//
//	f := tensor.Convert[float64, int](m.Col(0)) // m is a *Tensor[int]
func Convert[T, U Number](src Tensorlike[U]) *Tensor[T] {
	t := New[T](src.slice().Extents...)
	i := 0
	for it := src.Begin(); !it.Done(); it.Next() {
		t.elems[i] = T(it.Value())
		i++
	}
	return t
}

// At returns the element at the given indices.
// Panics with ErrRankMismatch or ErrOutOfRange on bad indices.
//
// Example:
//
//	t := tensor.New[float32](3, 4)
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T]) At(indices ...int) T {
	return t.elems[t.offset("at", indices)]
}

// Ptr returns a pointer to the element at the given indices.
func (t *Tensor[T]) Ptr(indices ...int) *T {
	return &t.elems[t.offset("ptr", indices)]
}

// Set stores value at the given indices.
func (t *Tensor[T]) Set(value T, indices ...int) {
	t.elems[t.offset("set", indices)] = value
}

// Elem returns a pointer to element i of a vector.
// Panics with ErrRankMismatch if the rank is not 1.
func (t *Tensor[T]) Elem(i int) *T {
	t.requireOrder("elem", 1)
	return t.Ptr(i)
}

// Ref returns a full-rank view over the tensor's buffer.
func (t *Tensor[T]) Ref() *Ref[T] {
	return NewRef(t.desc.Clone(), t.elems)
}

// Slice returns the view with axis dim fixed to i. The view aliases t.
//
// Example:
//
//	c := tensor.New[int](2, 3, 4)
//	plane := c.Slice(1, 2) // extents [2 4]
func (t *Tensor[T]) Slice(dim, i int) *Ref[T] {
	return NewRef(SliceDim(dim, i, t.desc), t.elems)
}

// Row returns row i of a matrix as a vector view.
func (t *Tensor[T]) Row(i int) *Ref[T] {
	t.requireOrder("row", 2)
	return t.Slice(0, i)
}

// Col returns column i of a matrix as a vector view.
func (t *Tensor[T]) Col(i int) *Ref[T] {
	t.requireOrder("col", 2)
	return t.Slice(1, i)
}

// Index is the subscript form of Row.
func (t *Tensor[T]) Index(i int) *Ref[T] {
	return t.Row(i)
}

// Data returns the tensor's buffer in row-major order.
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	return t.elems
}

// Begin returns an iterator at the first element.
func (t *Tensor[T]) Begin() *Iterator[T] {
	return newIterator(&t.desc, t.elems, false)
}

// End returns an iterator at the terminal position.
func (t *Tensor[T]) End() *Iterator[T] {
	return newIterator(&t.desc, t.elems, true)
}

// Apply calls f on every element in storage order and returns t.
func (t *Tensor[T]) Apply(f func(*T)) *Tensor[T] {
	for i := range t.elems {
		f(&t.elems[i])
	}
	return t
}

// ApplyWith calls f(elem, otherElem) over t and other in lockstep and
// returns t. other may be a strided view. Panics with ErrShapeMismatch unless
// the extents are identical.
func (t *Tensor[T]) ApplyWith(other Tensorlike[T], f func(*T, T)) *Tensor[T] {
	zipStrided[T]("apply", t, other, f)
	return t
}

// CopyFrom copies src's elements into t, which keeps its own descriptor.
// Panics with ErrShapeMismatch unless the extents are identical.
func (t *Tensor[T]) CopyFrom(src Tensorlike[T]) *Tensor[T] {
	zipStrided[T]("copy", t, src, assignTo[T])
	return t
}

// AssignRef replaces t's contents with a row-major copy of src. Unlike
// CopyFrom, the extents may differ; t is resized to match src, keeping its
// rank.
func (t *Tensor[T]) AssignRef(src Tensorlike[T]) *Tensor[T] {
	s := src.slice()
	if t.Order() != 0 && s.Order() != t.Order() {
		fail("assign", ErrRankMismatch, "cannot assign rank %d to rank %d", s.Order(), t.Order())
	}
	elems := make([]T, s.Size)
	i := 0
	for it := src.Begin(); !it.Done(); it.Next() {
		elems[i] = it.Value()
		i++
	}
	t.desc = NewSlice(s.Extents...)
	t.elems = elems
	return t
}

// AssignInit replaces t's contents with a nested literal of t's rank.
func (t *Tensor[T]) AssignInit(literal any) error {
	if t.Order() == 0 {
		return fmt.Errorf("%w: cannot infer rank of an empty tensor", ErrRankMismatch)
	}
	desc, elems, err := flattenInit[T](t.Order(), literal)
	if err != nil {
		return err
	}
	t.desc = desc
	t.elems = elems
	return nil
}

// Clone returns a deep copy of t.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return &Tensor[T]{
		base:  base{desc: t.desc.Clone()},
		elems: slices.Clone(t.elems),
	}
}

// Move transfers t's buffer to a new tensor and leaves t empty: same rank,
// all extents zero, no elements.
func (t *Tensor[T]) Move() *Tensor[T] {
	moved := &Tensor[T]{base: t.base, elems: t.elems}
	t.desc = emptySlice(t.Order())
	t.elems = nil
	return moved
}

// Fill sets every element to v.
func (t *Tensor[T]) Fill(v T) *Tensor[T] {
	return t.Apply(func(x *T) { *x = v })
}

// AddScalar adds v to every element.
func (t *Tensor[T]) AddScalar(v T) *Tensor[T] {
	return t.Apply(func(x *T) { *x += v })
}

// SubScalar subtracts v from every element.
func (t *Tensor[T]) SubScalar(v T) *Tensor[T] {
	return t.Apply(func(x *T) { *x -= v })
}

// MulScalar multiplies every element by v.
func (t *Tensor[T]) MulScalar(v T) *Tensor[T] {
	return t.Apply(func(x *T) { *x *= v })
}

// DivScalar divides every element by v.
func (t *Tensor[T]) DivScalar(v T) *Tensor[T] {
	return t.Apply(func(x *T) { *x /= v })
}

// AddAssign adds other element-wise.
func (t *Tensor[T]) AddAssign(other Tensorlike[T]) *Tensor[T] {
	zipStrided[T]("add", t, other, addTo[T])
	return t
}

// SubAssign subtracts other element-wise.
func (t *Tensor[T]) SubAssign(other Tensorlike[T]) *Tensor[T] {
	zipStrided[T]("sub", t, other, subTo[T])
	return t
}

// MulAssign multiplies by other element-wise.
func (t *Tensor[T]) MulAssign(other Tensorlike[T]) *Tensor[T] {
	zipStrided[T]("mul", t, other, mulTo[T])
	return t
}

// DivAssign divides by other element-wise.
func (t *Tensor[T]) DivAssign(other Tensorlike[T]) *Tensor[T] {
	zipStrided[T]("div", t, other, divTo[T])
	return t
}

// String formats the tensor; see Format.
func (t *Tensor[T]) String() string {
	return formatString[T](t)
}

// NewVec creates a zero vector.
func NewVec[T Number](n int) *Tensor[T] { return New[T](n) }

// NewMat creates a zero rows x cols matrix.
func NewMat[T Number](rows, cols int) *Tensor[T] { return New[T](rows, cols) }

// NewCube creates a zero rank 3 tensor.
func NewCube[T Number](a, b, c int) *Tensor[T] { return New[T](a, b, c) }

// NewHCube creates a zero rank 4 tensor.
func NewHCube[T Number](a, b, c, d int) *Tensor[T] { return New[T](a, b, c, d) }
