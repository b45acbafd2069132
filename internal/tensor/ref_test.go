package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefAliasesOwner(t *testing.T) {
	m := mustMat(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	row := m.Row(1)
	row.Set(50, 1)
	assert.Equal(t, 50, m.At(1, 1))

	col := m.Col(2)
	*col.Ptr(0) = 30
	assert.Equal(t, 30, m.At(0, 2))

	assert.Same(t, &m.Data()[0], &row.Data()[0], "view borrows the owner's buffer")
}

func TestRefGeometry(t *testing.T) {
	c := arange(2, 3, 4)

	plane := c.Slice(1, 2)
	assert.Equal(t, []int{2, 4}, plane.Extents())
	assert.Equal(t, 8, plane.Size())
	assert.Equal(t, 2, plane.Order())
	assert.Equal(t, 2, plane.Rows())
	assert.Equal(t, 4, plane.Cols())
	for a := 0; a < 2; a++ {
		for b := 0; b < 4; b++ {
			assert.Equal(t, a*12+2*4+b, plane.At(a, b))
		}
	}

	// Slicing a view keeps the accumulated start offset.
	assert.Equal(t, []int{20, 21, 22, 23}, collect[int](c.Slice(0, 1).Row(2)))
	assert.Equal(t, []int{14, 18, 22}, collect[int](c.Slice(0, 1).Col(2)))
	assert.Equal(t, 22, *c.Slice(0, 1).Index(2).Elem(2))
}

func TestRefBounds(t *testing.T) {
	m := arange(2, 3)
	col := m.Col(1)

	requirePanicsIs(t, ErrOutOfRange, func() { col.At(2) })
	requirePanicsIs(t, ErrRankMismatch, func() { col.At(0, 0) })
	requirePanicsIs(t, ErrRankMismatch, func() { col.Row(0) })
	requirePanicsIs(t, ErrRankMismatch, func() { m.Ref().Elem(0) })
	requirePanicsIs(t, ErrOutOfRange, func() { m.Ref().Row(2) })
	requirePanicsIs(t, ErrRankMismatch, func() { col.Rows() })
}

func TestRefApply(t *testing.T) {
	m := mustMat(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	m.Col(0).AddScalar(10)
	assert.Equal(t, []int{11, 2, 3, 14, 5, 6}, m.Data())

	m.Row(1).MulScalar(2)
	assert.Equal(t, []int{11, 2, 3, 28, 10, 12}, m.Data())

	m.Col(1).SubScalar(1).DivScalar(1)
	assert.Equal(t, []int{11, 1, 3, 28, 9, 12}, m.Data())

	m.Col(2).Fill(0)
	assert.Equal(t, []int{11, 1, 0, 28, 9, 0}, m.Data())

	var seen []int
	m.Col(0).Apply(func(x *int) { seen = append(seen, *x) })
	assert.Equal(t, []int{11, 28}, seen)
}

func TestRefCompound(t *testing.T) {
	m := mustMat(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	v := FromSlice([]int{10, 20})

	m.Col(1).AddAssign(v)
	assert.Equal(t, []int{1, 12, 3, 4, 25, 6}, m.Data())

	m.Col(1).SubAssign(v)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, m.Data())

	m.Col(0).MulAssign(m.Col(2))
	assert.Equal(t, []int{3, 2, 3, 24, 5, 6}, m.Data())

	m.Col(0).DivAssign(m.Col(2))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, m.Data())

	m.Row(0).ApplyWith(m.Row(1), func(a *int, b int) { *a = *a*10 + b })
	assert.Equal(t, []int{14, 25, 36, 4, 5, 6}, m.Data())
}

func TestRefCopyFrom(t *testing.T) {
	m := mustMat(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	// Assigning into a view copies values; the view is not rebound.
	col := m.Col(0)
	col.CopyFrom(m.Col(2))
	assert.Equal(t, []int{3, 2, 3, 6, 5, 6}, m.Data())
	assert.Equal(t, NewSliceStrided(0, []int{2}, []int{3}), col.Descriptor())

	requirePanicsIs(t, ErrShapeMismatch, func() { col.CopyFrom(m.Row(0)) })
	requirePanicsIs(t, ErrShapeMismatch, func() { m.Row(0).AddAssign(m.Col(0)) })
}

func TestNewRefOverForeignBuffer(t *testing.T) {
	buf := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	r := NewRef(NewSliceStrided(1, []int{2, 2}, []int{4, 2}), buf)

	assert.Equal(t, []float64{1, 3, 5, 7}, collect[float64](r))
	r.Set(-1, 1, 0)
	require.Equal(t, float64(-1), buf[5])
}

func TestRefString(t *testing.T) {
	m := mustMat(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, "{ 2, 5 }", m.Col(1).String())
}
