package tensor

import "slices"

// Iterator walks the index space of a descriptor in row-major order (last
// axis fastest) and dereferences through the descriptor's strides, so it
// visits views with gaps or offsets correctly.
//
// The descriptor and buffer are borrowed: the iterator is invalid once the
// tensor it came from is reassigned.
//
//	for it := r.Begin(); !it.Done(); it.Next() {
//	    sum += it.Value()
//	}
type Iterator[T Number] struct {
	desc  *Slice
	elems []T
	pos   []int
}

func newIterator[T Number](desc *Slice, elems []T, end bool) *Iterator[T] {
	it := &Iterator[T]{
		desc:  desc,
		elems: elems,
		pos:   make([]int, desc.Order()),
	}
	if (end || desc.Size == 0) && len(it.pos) > 0 {
		it.pos[0] = desc.Extents[0]
	}
	return it
}

// Done reports whether the iterator has reached the terminal position.
func (it *Iterator[T]) Done() bool {
	return len(it.pos) == 0 || it.pos[0] >= it.desc.Extents[0]
}

// Next advances to the following position. Advancing past the last element
// moves to the terminal position; advancing from there is a no-op.
func (it *Iterator[T]) Next() {
	if it.Done() {
		return
	}
	for axis := len(it.pos) - 1; axis >= 0; axis-- {
		it.pos[axis]++
		if it.pos[axis] < it.desc.Extents[axis] {
			return
		}
		it.pos[axis] = 0
	}
	it.pos[0] = it.desc.Extents[0]
}

// Index returns the flat offset of the current element.
func (it *Iterator[T]) Index() int {
	return it.desc.FlatIndex(it.pos)
}

// Pos returns a copy of the current multi-index.
func (it *Iterator[T]) Pos() []int {
	return slices.Clone(it.pos)
}

// Ptr returns a pointer to the current element.
// Panics with ErrOutOfRange at the terminal position.
func (it *Iterator[T]) Ptr() *T {
	if it.Done() {
		fail("iterator", ErrOutOfRange, "dereference past the end")
	}
	return &it.elems[it.desc.FlatIndex(it.pos)]
}

// Value returns the current element.
func (it *Iterator[T]) Value() T {
	return *it.Ptr()
}

// Set stores v at the current element.
func (it *Iterator[T]) Set(v T) {
	*it.Ptr() = v
}

// Equal reports whether both iterators are at the same position. The
// iterators are assumed to walk compatible descriptors.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	return slices.Equal(it.pos, other.pos)
}
