// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmix

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// lsqFit solves min ‖A·x − y‖₂ for a small dense design matrix A (m×n,
// m ≥ n) via modified Gram-Schmidt QR with column scaling. The systems
// here have n ≤ 6 columns; scaling keeps the factorisation well behaved
// for bases with widely different magnitudes (e.g. 1 vs T⁵).
func lsqFit(A [][]float64, y []float64) (x []float64, err error) {
	m := len(A)
	n := len(A[0])
	if m < n {
		return nil, chk.Err("least-squares fit needs at least %d samples; got %d", n, m)
	}

	// scale columns to unit norm
	s := make([]float64, n)
	Q := utl.Alloc(m, n)
	for j := 0; j < n; j++ {
		sum := 0.0
		for i := 0; i < m; i++ {
			sum += A[i][j] * A[i][j]
		}
		s[j] = math.Sqrt(sum)
		if s[j] == 0 {
			s[j] = 1
		}
		for i := 0; i < m; i++ {
			Q[i][j] = A[i][j] / s[j]
		}
	}

	// factorise: Q·R = A·diag(1/s)
	R := utl.Alloc(n, n)
	for j := 0; j < n; j++ {
		for i := 0; i < j; i++ {
			r := 0.0
			for k := 0; k < m; k++ {
				r += Q[k][i] * Q[k][j]
			}
			R[i][j] = r
			for k := 0; k < m; k++ {
				Q[k][j] -= r * Q[k][i]
			}
		}
		d := 0.0
		for k := 0; k < m; k++ {
			d += Q[k][j] * Q[k][j]
		}
		d = math.Sqrt(d)
		if d < 1e-14 {
			return nil, chk.Err("least-squares design matrix is rank deficient (column %d)", j)
		}
		R[j][j] = d
		for k := 0; k < m; k++ {
			Q[k][j] /= d
		}
	}

	// back substitution of R·x' = Qᵀ·y
	x = make([]float64, n)
	for j := n - 1; j >= 0; j-- {
		r := 0.0
		for k := 0; k < m; k++ {
			r += Q[k][j] * y[k]
		}
		for i := j + 1; i < n; i++ {
			r -= R[j][i] * x[i]
		}
		x[j] = r / R[j][j]
	}

	// undo column scaling
	for j := 0; j < n; j++ {
		x[j] /= s[j]
	}
	return
}
