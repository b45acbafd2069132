// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides fixed-rank dense N-dimensional arrays over
// contiguous numeric buffers.
//
// # Overview
//
// The package is built around a strided layout descriptor:
//   - Slice: start offset, per-axis extents and strides, element count
//   - Tensor[T]: owns a row-major buffer of exactly Size elements
//   - Ref[T]: a view that borrows another tensor's buffer
//   - Iterator[T]: row-major cursor honoring strides and offsets
//
// # Basic Usage
//
//	import "github.com/born-ml/ndtensor/tensor"
//
//	func main() {
//	    a := tensor.MustFromInit[int](2, [][]int{{1, 2, 3}, {4, 5, 6}})
//	    b := tensor.MustFromInit[int](2, [][]int{{7, 8}, {9, 10}, {11, 12}})
//
//	    c := tensor.MatMul[int](a, b) // {{58, 64}, {139, 154}}
//	    fmt.Println(c)
//	}
//
// # Supported Data Types
//
// Any type satisfying Number: signed and unsigned integers of every width,
// float32 and float64, and named types derived from them. The remainder
// operations (Mod, ModAssign, ModScalar) require Integer.
//
// # Views
//
// Slice, Row, Col and Index return a Ref that aliases the owner's buffer.
// Writing through the view writes the owner:
//
//	m := tensor.New[float64](3, 3)
//	m.Col(1).Fill(1) // sets the middle column of m
//
// A Ref does not keep its owner alive in any meaningful sense: reassigning
// the owner (AssignInit, AssignRef, Move) leaves existing views pointing at
// the old buffer. Nothing tracks this.
//
// # Rank
//
// The rank of a tensor is fixed when it is built. Rank-specific operations
// (Row, Col, Rows, Cols, Index, Elem, Dot, MatMul, VecMat) check the rank at
// call time and panic with ErrRankMismatch on misuse.
//
// # Errors
//
// Shape mismatches, out-of-range indices and rank misuse are programming
// errors and panic with an error wrapping ErrShapeMismatch, ErrOutOfRange or
// ErrRankMismatch. Constructors fed by caller data (FromInit, FromFlat)
// return ErrJaggedShape, ErrShapeMismatch or ErrInvalidShape instead.
//
// # Interop
//
// ToDense, FromMatrix, ToVecDense and FromVector convert float64 tensors to
// and from gonum's mat package.
package tensor
