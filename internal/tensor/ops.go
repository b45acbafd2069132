package tensor

// Add returns a + b element-wise as a new tensor.
// Panics with ErrShapeMismatch unless the extents are identical.
//
// Example:
//
//	c := tensor.Add(a, b.Row(0)) // operands may be views
func Add[T Number](a, b Tensorlike[T]) *Tensor[T] {
	return FromRef(a).AddAssign(b)
}

// Sub returns a - b element-wise as a new tensor.
func Sub[T Number](a, b Tensorlike[T]) *Tensor[T] {
	return FromRef(a).SubAssign(b)
}

// Mul returns the element-wise product of a and b as a new tensor.
func Mul[T Number](a, b Tensorlike[T]) *Tensor[T] {
	return FromRef(a).MulAssign(b)
}

// Div returns the element-wise quotient of a and b as a new tensor.
func Div[T Number](a, b Tensorlike[T]) *Tensor[T] {
	return FromRef(a).DivAssign(b)
}

// ModAssign sets every element of t to t % other element-wise.
func ModAssign[T Integer](t *Tensor[T], other Tensorlike[T]) *Tensor[T] {
	zipStrided[T]("mod", t, other, modTo[T])
	return t
}

// ModScalar sets every element of t to t % v.
func ModScalar[T Integer](t *Tensor[T], v T) *Tensor[T] {
	return t.Apply(func(x *T) { *x %= v })
}

// Mod returns a % b element-wise as a new tensor.
func Mod[T Integer](a, b Tensorlike[T]) *Tensor[T] {
	return ModAssign(FromRef(a), b)
}

// Equal reports whether a and b hold the same elements in row-major order.
// Panics with ErrShapeMismatch if the extents differ: comparing tensors of
// different shapes is a caller bug, not an inequality.
func Equal[T Number](a, b Tensorlike[T]) bool {
	requireSameExtents("equal", a.slice(), b.slice())
	y := b.Begin()
	for x := a.Begin(); !x.Done(); x.Next() {
		if x.Value() != y.Value() {
			return false
		}
		y.Next()
	}
	return true
}

// NotEqual is the negation of Equal.
func NotEqual[T Number](a, b Tensorlike[T]) bool {
	return !Equal(a, b)
}

// Dot returns the inner product of two vectors, accumulated from zero.
// Panics with ErrRankMismatch unless both are rank 1, and with
// ErrShapeMismatch if their sizes differ.
func Dot[T Number](a, b Tensorlike[T]) T {
	requireRank("dot", a, 1)
	requireRank("dot", b, 1)
	if a.Size() != b.Size() {
		fail("dot", ErrShapeMismatch, "sizes %d and %d", a.Size(), b.Size())
	}
	var sum T
	y := b.Begin()
	for x := a.Begin(); !x.Done(); x.Next() {
		sum += x.Value() * y.Value()
		y.Next()
	}
	return sum
}

// MatMul returns the matrix product a x b with result(i, j) = Dot(a.Row(i), b.Col(j)).
//
// Requirements:
//   - both operands rank 2 (ErrRankMismatch otherwise)
//   - a.Cols() == b.Rows() (ErrShapeMismatch otherwise)
//
// Example:
//
//	a := tensor.New[float32](3, 4)
//	b := tensor.New[float32](4, 5)
//	c := tensor.MatMul(a, b) // extents [3 5]
func MatMul[T Number](a, b Tensorlike[T]) *Tensor[T] {
	requireRank("matmul", a, 2)
	requireRank("matmul", b, 2)
	if a.Cols() != b.Rows() {
		fail("matmul", ErrShapeMismatch, "(%d, %d) x (%d, %d)", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	r, c := a.Rows(), b.Cols()
	result := New[T](r, c)
	for i := 0; i < r; i++ {
		row := a.Row(i)
		for j := 0; j < c; j++ {
			result.Set(Dot[T](row, b.Col(j)), i, j)
		}
	}
	return result
}

// VecMat returns the vector-matrix product with result(k) = Dot(v, m.Col(k)).
// Panics with ErrShapeMismatch unless v.Size() == m.Rows().
func VecMat[T Number](v, m Tensorlike[T]) *Tensor[T] {
	requireRank("vecmat", v, 1)
	requireRank("vecmat", m, 2)
	if v.Size() != m.Rows() {
		fail("vecmat", ErrShapeMismatch, "vector of %d x (%d, %d)", v.Size(), m.Rows(), m.Cols())
	}
	c := m.Cols()
	result := New[T](c)
	for k := 0; k < c; k++ {
		result.Set(Dot[T](v, m.Col(k)), k)
	}
	return result
}

func requireRank[T Number](op string, t Tensorlike[T], n int) {
	if t.Order() != n {
		fail(op, ErrRankMismatch, "requires rank %d, got %d", n, t.Order())
	}
}
