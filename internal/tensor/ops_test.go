package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSubIdentity(t *testing.T) {
	a := MustFromInit[float64](2, [][]float64{{1.5, -2, 3}, {0, 7, 8.25}})
	b := MustFromInit[float64](2, [][]float64{{4, 5, 6}, {-1, 2, 0.5}})

	sum := Add[float64](a, b)
	assert.Equal(t, []float64{5.5, 3, 9, -1, 9, 8.75}, sum.Data())
	assert.True(t, Equal[float64](Sub[float64](sum, b), a))

	// Operands are untouched.
	assert.Equal(t, []float64{1.5, -2, 3, 0, 7, 8.25}, a.Data())
}

func TestElementwiseOnViews(t *testing.T) {
	m := mustMat(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	assert.Equal(t, []int{5, 7, 9}, Add[int](m.Row(0), m.Row(1)).Data())
	assert.Equal(t, []int{-2, -2}, Sub[int](m.Col(0), m.Col(2)).Data())
	assert.Equal(t, []int{4, 10, 18}, Mul[int](m.Row(0), m.Row(1)).Data())
	assert.Equal(t, []int{4, 2, 2}, Div[int](m.Row(1), m.Row(0)).Data())
	assert.Equal(t, []int{0, 1, 0}, Mod[int](m.Row(1), m.Row(0)).Data())

	requirePanicsIs(t, ErrShapeMismatch, func() { Add[int](m.Row(0), m.Col(0)) })
}

func TestEqual(t *testing.T) {
	m := mustMat(t, [][]int{{1, 2}, {1, 2}})

	assert.True(t, Equal[int](m.Row(0), m.Row(1)))
	assert.True(t, Equal[int](m, m.Clone()))
	assert.False(t, Equal[int](m.Col(0), m.Col(1)))
	assert.True(t, NotEqual[int](m.Col(0), m.Col(1)))

	// Different extents are a contract violation, not inequality.
	requirePanicsIs(t, ErrShapeMismatch, func() { Equal[int](m.Row(0), FromSlice([]int{1, 2, 3})) })
	requirePanicsIs(t, ErrShapeMismatch, func() { NotEqual[int](m, New[int](1, 4)) })
}

func TestDot(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]int{4, 5, 6})
	assert.Equal(t, 32, Dot[int](a, b))

	m := mustMat(t, [][]int{{1, 4}, {2, 5}, {3, 6}})
	assert.Equal(t, 32, Dot[int](m.Col(0), m.Col(1)), "strided operands")
	assert.Equal(t, 0, Dot[int](New[int](0), New[int](0)))

	requirePanicsIs(t, ErrShapeMismatch, func() { Dot[int](a, FromSlice([]int{1, 2})) })
	requirePanicsIs(t, ErrRankMismatch, func() { Dot[int](m, m) })
}

func TestMatMul(t *testing.T) {
	a := mustMat(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := mustMat(t, [][]int{{7, 8}, {9, 10}, {11, 12}})

	c := MatMul[int](a, b)
	assert.True(t, Equal[int](c, mustMat(t, [][]int{{58, 64}, {139, 154}})))
	assert.Equal(t, []int{2, 2}, c.Extents())

	requirePanicsIs(t, ErrShapeMismatch, func() { MatMul[int](a, a) })
	requirePanicsIs(t, ErrRankMismatch, func() { MatMul[int](a, FromSlice([]int{1, 2, 3})) })
}

func TestMatMulOnViews(t *testing.T) {
	cube := arange(2, 2, 3)
	b := mustMat(t, [][]int{{7, 8}, {9, 10}, {11, 12}})

	// cube.Slice(0, 1) is {{6, 7, 8}, {9, 10, 11}} starting at offset 6.
	got := MatMul[int](cube.Slice(0, 1), b)
	assert.Equal(t, []int{193, 214, 274, 304}, got.Data())

	// cube.Slice(2, 1) is {{1, 4}, {7, 10}} with strides (6, 3).
	eye := mustMat(t, [][]int{{1, 0}, {0, 1}})
	assert.Equal(t, []int{1, 4, 7, 10}, MatMul[int](cube.Slice(2, 1), eye).Data())
	assert.Equal(t, []int{1, 4, 7, 10}, MatMul[int](eye, cube.Slice(2, 1)).Data())
}

func TestVecMat(t *testing.T) {
	v := FromSlice([]int{1, 2})
	m := mustMat(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	got := VecMat[int](v, m)
	require.Equal(t, []int{3}, got.Extents())
	assert.Equal(t, []int{9, 12, 15}, got.Data())

	// A column view works as the vector operand.
	assert.Equal(t, []int{27, 36, 45}, VecMat[int](m.Col(2), m).Data())

	requirePanicsIs(t, ErrShapeMismatch, func() { VecMat[int](FromSlice([]int{1, 2, 3}), m) })
	requirePanicsIs(t, ErrRankMismatch, func() { VecMat[int](m, m) })
}
