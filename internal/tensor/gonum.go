package tensor

import "gonum.org/v1/gonum/mat"

// ToDense copies a float64 matrix into a new gonum *mat.Dense.
// t may be a strided view. Panics with ErrRankMismatch unless t is rank 2.
func ToDense(t Tensorlike[float64]) *mat.Dense {
	requireRank("to dense", t, 2)
	r, c := t.Rows(), t.Cols()
	if r == 0 || c == 0 {
		fail("to dense", ErrInvalidShape, "gonum matrices cannot be empty, got (%d, %d)", r, c)
	}
	return mat.NewDense(r, c, FromRef(t).Data())
}

// FromMatrix copies any gonum matrix into a new rank 2 tensor.
func FromMatrix(m mat.Matrix) *Tensor[float64] {
	r, c := m.Dims()
	t := New[float64](r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			t.elems[i*c+j] = m.At(i, j)
		}
	}
	return t
}

// ToVecDense copies a float64 vector into a new gonum *mat.VecDense.
// Panics with ErrRankMismatch unless t is rank 1.
func ToVecDense(t Tensorlike[float64]) *mat.VecDense {
	requireRank("to vec dense", t, 1)
	if t.Size() == 0 {
		fail("to vec dense", ErrInvalidShape, "gonum vectors cannot be empty")
	}
	return mat.NewVecDense(t.Size(), FromRef(t).Data())
}

// FromVector copies a gonum vector into a new rank 1 tensor.
func FromVector(v mat.Vector) *Tensor[float64] {
	n := v.Len()
	t := New[float64](n)
	for i := 0; i < n; i++ {
		t.elems[i] = v.AtVec(i)
	}
	return t
}
