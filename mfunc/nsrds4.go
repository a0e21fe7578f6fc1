// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfunc

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// NSRDS4 implements the NSRDS-4 inverse-power correlation
//
//   f = a + b/T + c/T³ + d/T⁸ + e/T⁹
//
// used for the second virial coefficient
type NSRDS4 struct {
	a, b, c, d, e float64
	tlow, thigh   float64
}

var nsrds4names = []string{"a", "b", "c", "d", "e"}

// add function to factory
func init() {
	Register("nsrds4", func() Function { return new(NSRDS4) })
}

// Init initialises this structure
func (o *NSRDS4) Init(prms dbf.Params) (err error) {
	c, tlo, thi, err := coefs("nsrds4", prms, nsrds4names)
	if err != nil {
		return
	}
	o.a, o.b, o.c, o.d, o.e = c[0], c[1], c[2], c[3], c[4]
	o.tlow, o.thigh = tlo, thi
	return
}

// GetPrms gets (an example of) coefficients
func (o NSRDS4) GetPrms(example bool) dbf.Params {
	if example {
		return prmsOf(nsrds4names, []float64{0.0015, -0.497, -7.5e6, -2.9e19, 5.0e21}, 273.16, 647.13)
	}
	return prmsOf(nsrds4names, o.Coefs(), o.tlow, o.thigh)
}

// TypeName returns the name of this family
func (o NSRDS4) TypeName() string { return "nsrds4" }

// Coefs returns the coefficients, in declared order
func (o NSRDS4) Coefs() []float64 { return []float64{o.a, o.b, o.c, o.d, o.e} }

// TempRange returns the validity range
func (o NSRDS4) TempRange() (tlow, thigh float64) { return o.tlow, o.thigh }

// F evaluates the correlation. The pressure is not used.
func (o NSRDS4) F(p, T float64) (float64, error) {
	if T <= 0 {
		return 0, &DomainError{"nsrds4", io.Sf("T=%g must be positive", T)}
	}
	T3 := T * T * T
	T8 := math.Pow(T, 8)
	return o.a + o.b/T + o.c/T3 + o.d/T8 + o.e/(T8*T), nil
}
