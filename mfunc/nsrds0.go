// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfunc

import "github.com/cpmech/gosl/fun/dbf"

// NSRDS0 implements the NSRDS-0 polynomial correlation
//
//   f = a + b T + c T² + d T³ + e T⁴ + f T⁵
//
// used for liquid heat capacity, enthalpy and thermal conductivity
type NSRDS0 struct {
	a, b, c, d, e, f float64
	tlow, thigh      float64
}

var nsrds0names = []string{"a", "b", "c", "d", "e", "f"}

// add function to factory
func init() {
	Register("nsrds0", func() Function { return new(NSRDS0) })
}

// Init initialises this structure
func (o *NSRDS0) Init(prms dbf.Params) (err error) {
	c, tlo, thi, err := coefs("nsrds0", prms, nsrds0names)
	if err != nil {
		return
	}
	o.a, o.b, o.c, o.d, o.e, o.f = c[0], c[1], c[2], c[3], c[4], c[5]
	o.tlow, o.thigh = tlo, thi
	return
}

// GetPrms gets (an example of) coefficients
func (o NSRDS0) GetPrms(example bool) dbf.Params {
	if example {
		return prmsOf(nsrds0names, []float64{15341.1, -116.02, 0.451013, -7.83569e-4, 5.20128e-7, 0}, 273.16, 533.15)
	}
	return prmsOf(nsrds0names, o.Coefs(), o.tlow, o.thigh)
}

// TypeName returns the name of this family
func (o NSRDS0) TypeName() string { return "nsrds0" }

// Coefs returns the coefficients, in declared order
func (o NSRDS0) Coefs() []float64 { return []float64{o.a, o.b, o.c, o.d, o.e, o.f} }

// TempRange returns the validity range
func (o NSRDS0) TempRange() (tlow, thigh float64) { return o.tlow, o.thigh }

// F evaluates the correlation. The pressure is not used.
func (o NSRDS0) F(p, T float64) (float64, error) {
	return o.a + T*(o.b+T*(o.c+T*(o.d+T*(o.e+T*o.f)))), nil
}
