// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmix

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/lhp18/OpenFOAM-dev/mfunc"
)

// refit derives new coefficients of the family shared by fa and fb such
// that the family evaluated with them approximates the sampled target
// curve y over the abscissae T. Families linear in their coefficients are
// fitted by ordinary least squares; the remaining families are linearised
// through their known transform (log-transform for exponential forms),
// holding the shape coefficients listed in the package documentation at
// their fraction-weighted average.
func refit(fa, fb mfunc.Function, w float64, T, y []float64) (c []float64, err error) {
	ca := fa.Coefs()
	cb := fb.Coefs()
	avg := func(i int) float64 { return w*ca[i] + (1-w)*cb[i] }
	m := len(T)

	switch fa.TypeName() {

	case "cte", "apidiff":
		// coefficients combine directly
		c = make([]float64, len(ca))
		for i := range ca {
			c[i] = avg(i)
		}
		return

	case "nsrds0":
		A := utl.Alloc(m, 6)
		for i, t := range T {
			A[i][0] = 1
			for j := 1; j < 6; j++ {
				A[i][j] = A[i][j-1] * t
			}
		}
		return lsqFit(A, y)

	case "nsrds4":
		A := utl.Alloc(m, 5)
		for i, t := range T {
			t8 := math.Pow(t, 8)
			A[i][0] = 1
			A[i][1] = 1 / t
			A[i][2] = 1 / (t * t * t)
			A[i][3] = 1 / t8
			A[i][4] = 1 / (t8 * t)
		}
		return lsqFit(A, y)

	case "nsrds1":
		// exponent e from the dominant source
		e := ca[4]
		if w < 0.5 {
			e = cb[4]
		}
		z, err := logSamples("nsrds1", y)
		if err != nil {
			return nil, err
		}
		if e == 0 {
			// T^e degenerates into the intercept; fit without the d term
			A := utl.Alloc(m, 3)
			for i, t := range T {
				A[i][0] = 1
				A[i][1] = 1 / t
				A[i][2] = math.Log(t)
			}
			x, err := lsqFit(A, z)
			if err != nil {
				return nil, err
			}
			return []float64{x[0], x[1], x[2], 0, 0}, nil
		}
		A := utl.Alloc(m, 4)
		for i, t := range T {
			A[i][0] = 1
			A[i][1] = 1 / t
			A[i][2] = math.Log(t)
			A[i][3] = math.Pow(t, e)
		}
		x, err := lsqFit(A, z)
		if err != nil {
			return nil, err
		}
		return []float64{x[0], x[1], x[2], x[3], e}, nil

	case "nsrds2":
		// a may be negative together with the denominator; fit the
		// magnitude and carry the common sign
		cc, dd := avg(2), avg(3)
		z := make([]float64, m)
		sign := 1.0
		for i, t := range T {
			den := 1 + cc/t + dd/(t*t)
			v := y[i] * den
			if i == 0 && v < 0 {
				sign = -1
			}
			v *= sign
			if v <= 0 {
				return nil, chk.Err("nsrds2: cannot log-transform sample %g at T=%g", y[i]*den, t)
			}
			z[i] = math.Log(v)
		}
		A := utl.Alloc(m, 2)
		for i, t := range T {
			A[i][0] = 1
			A[i][1] = math.Log(t)
		}
		x, err := lsqFit(A, z)
		if err != nil {
			return nil, err
		}
		return []float64{sign * math.Exp(x[0]), x[1], cc, dd}, nil

	case "nsrds3":
		cc, dd := avg(2), avg(3)
		A := utl.Alloc(m, 2)
		for i, t := range T {
			A[i][0] = 1
			A[i][1] = math.Exp(-cc / math.Pow(t, dd))
		}
		x, err := lsqFit(A, y)
		if err != nil {
			return nil, err
		}
		return []float64{x[0], x[1], cc, dd}, nil

	case "nsrds5":
		cc, dd := avg(2), avg(3)
		z, err := logSamples("nsrds5", y)
		if err != nil {
			return nil, err
		}
		// ln f = (ln a - ln b) - ln b · (1 - T/c)^d
		A := utl.Alloc(m, 2)
		for i, t := range T {
			A[i][0] = 1
			A[i][1] = math.Pow(1-t/cc, dd)
		}
		x, err := lsqFit(A, z)
		if err != nil {
			return nil, err
		}
		lnb := -x[1]
		lna := x[0] + lnb
		return []float64{math.Exp(lna), math.Exp(lnb), cc, dd}, nil

	case "nsrds6":
		tc := avg(0)
		z, err := logSamples("nsrds6", y)
		if err != nil {
			return nil, err
		}
		// ln f = ln a + (b + c Tr + d Tr² + e Tr³) ln(1 - Tr)
		A := utl.Alloc(m, 5)
		for i, t := range T {
			tr := t / tc
			lr := math.Log(1 - tr)
			A[i][0] = 1
			A[i][1] = lr
			A[i][2] = tr * lr
			A[i][3] = tr * tr * lr
			A[i][4] = tr * tr * tr * lr
		}
		x, err := lsqFit(A, z)
		if err != nil {
			return nil, err
		}
		return []float64{tc, math.Exp(x[0]), x[1], x[2], x[3], x[4]}, nil

	case "nsrds7":
		cc, ee := avg(2), avg(4)
		A := utl.Alloc(m, 3)
		for i, t := range T {
			sh := (cc / t) / math.Sinh(cc/t)
			ch := (ee / t) / math.Cosh(ee/t)
			A[i][0] = 1
			A[i][1] = sh * sh
			A[i][2] = ch * ch
		}
		x, err := lsqFit(A, y)
		if err != nil {
			return nil, err
		}
		return []float64{x[0], x[1], cc, x[2], ee}, nil
	}

	return nil, chk.Err("family %q cannot be re-fitted", fa.TypeName())
}

// logSamples log-transforms the target curve of an exponential family
func logSamples(family string, y []float64) (z []float64, err error) {
	z = make([]float64, len(y))
	for i, v := range y {
		if v <= 0 {
			return nil, chk.Err("%s: cannot log-transform non-positive sample %g", family, v)
		}
		z[i] = math.Log(v)
	}
	return
}
