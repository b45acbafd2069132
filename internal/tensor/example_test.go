package tensor_test

import (
	"fmt"

	"github.com/born-ml/ndtensor/internal/tensor"
)

func ExampleMatMul() {
	a := tensor.MustFromInit[int](2, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := tensor.MustFromInit[int](2, [][]int{{7, 8}, {9, 10}, {11, 12}})

	fmt.Println(tensor.MatMul[int](a, b))
	// Output:
	// {
	//  { 58, 64 }
	//  { 139, 154 }
	// }
}

func ExampleDot() {
	a := tensor.FromSlice([]int{1, 2, 3})
	b := tensor.FromSlice([]int{4, 5, 6})

	fmt.Println(tensor.Dot[int](a, b))
	// Output: 32
}

func ExampleTensor_Col() {
	m := tensor.MustFromInit[int](2, [][]int{{1, 2, 3}, {4, 5, 6}})

	col := m.Col(1)
	col.MulScalar(10)

	fmt.Println(col)
	fmt.Println(m)
	// Output:
	// { 20, 50 }
	// {
	//  { 1, 20, 3 }
	//  { 4, 50, 6 }
	// }
}

func ExampleTensor_Slice() {
	c := tensor.New[int](2, 3, 4)
	for i := range c.Data() {
		c.Data()[i] = i
	}

	plane := c.Slice(1, 2)
	fmt.Println(plane.Extents())
	fmt.Println(plane.Descriptor())
	fmt.Println(plane)
	// Output:
	// [2 4]
	// size: 8 extents: [2 4] strides: [12 1] start: 8
	// {
	//  { 8, 9, 10, 11 }
	//  { 20, 21, 22, 23 }
	// }
}

func ExampleIterator() {
	m := tensor.MustFromInit[int](2, [][]int{{1, 2}, {3, 4}})

	for it := m.Col(0).Begin(); !it.Done(); it.Next() {
		fmt.Println(it.Pos(), it.Value())
	}
	// Output:
	// [0] 1
	// [1] 3
}

func ExampleFromInit() {
	_, err := tensor.FromInit[int](2, [][]int{{1, 2}, {3}})
	fmt.Println(err)
	// Output: tensor: jagged initializer: length 1 at depth 1, siblings have 2
}
