// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndtensor/internal/tensor"
)

// ToDense copies a float64 matrix into a gonum *mat.Dense.
func ToDense(t Tensorlike[float64]) *mat.Dense {
	return tensor.ToDense(t)
}

// FromMatrix copies a gonum matrix into a rank 2 tensor.
func FromMatrix(m mat.Matrix) *Tensor[float64] {
	return tensor.FromMatrix(m)
}

// ToVecDense copies a float64 vector into a gonum *mat.VecDense.
func ToVecDense(t Tensorlike[float64]) *mat.VecDense {
	return tensor.ToVecDense(t)
}

// FromVector copies a gonum vector into a rank 1 tensor.
func FromVector(v mat.Vector) *Tensor[float64] {
	return tensor.FromVector(v)
}
