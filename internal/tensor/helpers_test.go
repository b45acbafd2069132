package tensor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requirePanicsIs fails unless f panics with an error matching target.
func requirePanicsIs(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	f()
}

// mustMat builds an int matrix from a literal.
func mustMat(t *testing.T, lit [][]int) *Tensor[int] {
	t.Helper()
	m, err := FromInit[int](2, lit)
	require.NoError(t, err)
	return m
}

// arange returns a tensor with extents whose elements are 0, 1, 2, ... in
// row-major order.
func arange(extents ...int) *Tensor[int] {
	t := New[int](extents...)
	for i := range t.Data() {
		t.Data()[i] = i
	}
	return t
}

// collect returns the elements of t in row-major order.
func collect[T Number](t Tensorlike[T]) []T {
	var out []T
	for it := t.Begin(); !it.Done(); it.Next() {
		out = append(out, it.Value())
	}
	return out
}

// allIndices enumerates every multi-index of extents in row-major order.
func allIndices(extents []int) [][]int {
	if CalcSize(extents) == 0 {
		return nil
	}
	var out [][]int
	idx := make([]int, len(extents))
	for {
		out = append(out, append([]int(nil), idx...))
		k := len(idx) - 1
		for ; k >= 0; k-- {
			idx[k]++
			if idx[k] < extents[k] {
				break
			}
			idx[k] = 0
		}
		if k < 0 {
			return out
		}
	}
}
