// Package tensor provides the fixed-rank dense tensor core: strided slice
// descriptors, owning tensors, non-owning views, and row-major iteration.
package tensor

// Number is the constraint for tensor element types.
// It uses Go generics to ensure compile-time type safety.
type Number interface {
	Integer | ~float32 | ~float64
}

// Integer is the subset of Number that supports the remainder operator.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}
