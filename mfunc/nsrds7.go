// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfunc

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// NSRDS7 implements the NSRDS-7 hyperbolic correlation
//
//   f = a + b ((c/T)/sinh(c/T))² + d ((e/T)/cosh(e/T))²
//
// used for ideal gas heat capacity
type NSRDS7 struct {
	a, b, c, d, e float64
	tlow, thigh   float64
}

var nsrds7names = []string{"a", "b", "c", "d", "e"}

// add function to factory
func init() {
	Register("nsrds7", func() Function { return new(NSRDS7) })
}

// Init initialises this structure
func (o *NSRDS7) Init(prms dbf.Params) (err error) {
	c, tlo, thi, err := coefs("nsrds7", prms, nsrds7names)
	if err != nil {
		return
	}
	o.a, o.b, o.c, o.d, o.e = c[0], c[1], c[2], c[3], c[4]
	o.tlow, o.thigh = tlo, thi
	return
}

// GetPrms gets (an example of) coefficients
func (o NSRDS7) GetPrms(example bool) dbf.Params {
	if example {
		return prmsOf(nsrds7names, []float64{1851.73, 1487.54, 2609.3, 493.367, 1167.6}, 273.16, 1073.15)
	}
	return prmsOf(nsrds7names, o.Coefs(), o.tlow, o.thigh)
}

// TypeName returns the name of this family
func (o NSRDS7) TypeName() string { return "nsrds7" }

// Coefs returns the coefficients, in declared order
func (o NSRDS7) Coefs() []float64 { return []float64{o.a, o.b, o.c, o.d, o.e} }

// TempRange returns the validity range
func (o NSRDS7) TempRange() (tlow, thigh float64) { return o.tlow, o.thigh }

// F evaluates the correlation. The pressure is not used.
func (o NSRDS7) F(p, T float64) (float64, error) {
	if T <= 0 {
		return 0, &DomainError{"nsrds7", io.Sf("T=%g must be positive", T)}
	}
	sh := (o.c / T) / math.Sinh(o.c/T)
	ch := (o.e / T) / math.Cosh(o.e/T)
	return o.a + o.b*sh*sh + o.d*ch*ch, nil
}
