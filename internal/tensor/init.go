package tensor

import (
	"fmt"
	"reflect"
)

// FromInit creates a rank order tensor from a nested literal: order levels of
// slices or arrays ([][]int, [][3]float64, []any{[]any{...}}, ...) whose
// leaves are numbers convertible to T. Extents are taken outermost first and
// elements are stored depth-first, left to right, which is row-major order.
//
// Returns ErrJaggedShape if siblings at one depth have different lengths or
// the nesting depth is not order, and ErrInvalidShape for a non-numeric leaf.
//
// Example:
//
//	m, err := tensor.FromInit[int](2, [][]int{{1, 2, 3}, {4, 5, 6}})
func FromInit[T Number](order int, literal any) (*Tensor[T], error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: rank must be at least 1, got %d", ErrInvalidShape, order)
	}
	desc, elems, err := flattenInit[T](order, literal)
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{base: base{desc: desc}, elems: elems}, nil
}

// MustFromInit is like FromInit but panics on error.
func MustFromInit[T Number](order int, literal any) *Tensor[T] {
	t, err := FromInit[T](order, literal)
	if err != nil {
		panic(err)
	}
	return t
}

func flattenInit[T Number](order int, literal any) (Slice, []T, error) {
	f := flattener[T]{
		order:   order,
		extents: make([]int, order),
		seen:    make([]bool, order),
		elemTyp: reflect.TypeFor[T](),
	}
	if err := f.walk(reflect.ValueOf(literal), 0); err != nil {
		return Slice{}, nil, err
	}
	desc := NewSlice(f.extents...)
	if len(f.elems) != desc.Size {
		return Slice{}, nil, fmt.Errorf("%w: flattened %d elements for extents %v", ErrJaggedShape, len(f.elems), f.extents)
	}
	return desc, f.elems, nil
}

type flattener[T Number] struct {
	order   int
	extents []int
	seen    []bool
	elemTyp reflect.Type
	elems   []T
}

func (f *flattener[T]) walk(v reflect.Value, depth int) error {
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if depth == f.order {
		x, err := f.leaf(v)
		if err != nil {
			return err
		}
		f.elems = append(f.elems, x)
		return nil
	}

	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return fmt.Errorf("%w: expected a sequence at depth %d, got %s", ErrJaggedShape, depth, kindOf(v))
	}
	n := v.Len()
	if !f.seen[depth] {
		f.seen[depth] = true
		f.extents[depth] = n
	} else if f.extents[depth] != n {
		return fmt.Errorf("%w: length %d at depth %d, siblings have %d", ErrJaggedShape, n, depth, f.extents[depth])
	}
	for i := 0; i < n; i++ {
		if err := f.walk(v.Index(i), depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (f *flattener[T]) leaf(v reflect.Value) (T, error) {
	var zero T
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return v.Convert(f.elemTyp).Interface().(T), nil
	case reflect.Slice, reflect.Array:
		return zero, fmt.Errorf("%w: nesting deeper than rank %d", ErrJaggedShape, f.order)
	default:
		return zero, fmt.Errorf("%w: non-numeric element of kind %s", ErrInvalidShape, kindOf(v))
	}
}

func kindOf(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Kind().String()
}
