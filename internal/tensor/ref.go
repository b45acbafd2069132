package tensor

// Ref is a non-owning view: a descriptor over a buffer owned by some Tensor.
//
// Ref never allocates. Writes through a Ref land in the owner's buffer, and
// several Refs may alias the same elements. The caller must keep the owner
// alive, and must not reassign it, for as long as any Ref derived from it is
// in use; this is not tracked.
type Ref[T Number] struct {
	base
	elems []T
}

// NewRef wraps desc over elems. elems is the full backing buffer, indexed
// through desc.Start and desc.Strides; every offset desc can address must be
// inside it.
func NewRef[T Number](desc Slice, elems []T) *Ref[T] {
	return &Ref[T]{base: base{desc: desc}, elems: elems}
}

// At returns the element at the given indices.
// Panics with ErrRankMismatch or ErrOutOfRange on bad indices.
func (r *Ref[T]) At(indices ...int) T {
	return r.elems[r.offset("at", indices)]
}

// Ptr returns a pointer to the element at the given indices.
func (r *Ref[T]) Ptr(indices ...int) *T {
	return &r.elems[r.offset("ptr", indices)]
}

// Set stores value at the given indices.
func (r *Ref[T]) Set(value T, indices ...int) {
	r.elems[r.offset("set", indices)] = value
}

// Elem returns a pointer to element i of a vector.
// Panics with ErrRankMismatch if the rank is not 1.
func (r *Ref[T]) Elem(i int) *T {
	r.requireOrder("elem", 1)
	return r.Ptr(i)
}

// Slice returns the view with axis dim fixed to i.
func (r *Ref[T]) Slice(dim, i int) *Ref[T] {
	return NewRef(SliceDim(dim, i, r.desc), r.elems)
}

// Row returns row i of a matrix as a vector view.
func (r *Ref[T]) Row(i int) *Ref[T] {
	r.requireOrder("row", 2)
	return r.Slice(0, i)
}

// Col returns column i of a matrix as a vector view.
func (r *Ref[T]) Col(i int) *Ref[T] {
	r.requireOrder("col", 2)
	return r.Slice(1, i)
}

// Index is the subscript form of Row.
func (r *Ref[T]) Index(i int) *Ref[T] {
	return r.Row(i)
}

// Data returns the borrowed backing buffer.
func (r *Ref[T]) Data() []T {
	return r.elems
}

// Begin returns an iterator at the first element.
func (r *Ref[T]) Begin() *Iterator[T] {
	return newIterator(&r.desc, r.elems, false)
}

// End returns an iterator at the terminal position.
func (r *Ref[T]) End() *Iterator[T] {
	return newIterator(&r.desc, r.elems, true)
}

// Apply calls f on every element in row-major order and returns r.
func (r *Ref[T]) Apply(f func(*T)) *Ref[T] {
	eachStrided[T](r, f)
	return r
}

// ApplyWith calls f(elem, otherElem) over r and other in lockstep and
// returns r. Panics with ErrShapeMismatch unless the extents are identical.
func (r *Ref[T]) ApplyWith(other Tensorlike[T], f func(*T, T)) *Ref[T] {
	zipStrided[T]("apply", r, other, f)
	return r
}

// CopyFrom copies src's elements into the viewed buffer. The view keeps its
// own descriptor.
func (r *Ref[T]) CopyFrom(src Tensorlike[T]) *Ref[T] {
	zipStrided[T]("copy", r, src, assignTo[T])
	return r
}

// Fill sets every viewed element to v.
func (r *Ref[T]) Fill(v T) *Ref[T] {
	return r.Apply(func(x *T) { *x = v })
}

// AddScalar adds v to every element.
func (r *Ref[T]) AddScalar(v T) *Ref[T] {
	return r.Apply(func(x *T) { *x += v })
}

// SubScalar subtracts v from every element.
func (r *Ref[T]) SubScalar(v T) *Ref[T] {
	return r.Apply(func(x *T) { *x -= v })
}

// MulScalar multiplies every element by v.
func (r *Ref[T]) MulScalar(v T) *Ref[T] {
	return r.Apply(func(x *T) { *x *= v })
}

// DivScalar divides every element by v.
func (r *Ref[T]) DivScalar(v T) *Ref[T] {
	return r.Apply(func(x *T) { *x /= v })
}

// AddAssign adds other element-wise.
func (r *Ref[T]) AddAssign(other Tensorlike[T]) *Ref[T] {
	zipStrided[T]("add", r, other, addTo[T])
	return r
}

// SubAssign subtracts other element-wise.
func (r *Ref[T]) SubAssign(other Tensorlike[T]) *Ref[T] {
	zipStrided[T]("sub", r, other, subTo[T])
	return r
}

// MulAssign multiplies by other element-wise.
func (r *Ref[T]) MulAssign(other Tensorlike[T]) *Ref[T] {
	zipStrided[T]("mul", r, other, mulTo[T])
	return r
}

// DivAssign divides by other element-wise.
func (r *Ref[T]) DivAssign(other Tensorlike[T]) *Ref[T] {
	zipStrided[T]("div", r, other, divTo[T])
	return r
}

// String formats the view; see Format.
func (r *Ref[T]) String() string {
	return formatString[T](r)
}
