// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfunc

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// NSRDS1 implements the NSRDS-1 exponential correlation
//
//   f = exp(a + b/T + c ln(T) + d T^e)
//
// used for vapour pressure and liquid viscosity
type NSRDS1 struct {
	a, b, c, d, e float64
	tlow, thigh   float64
}

var nsrds1names = []string{"a", "b", "c", "d", "e"}

// add function to factory
func init() {
	Register("nsrds1", func() Function { return new(NSRDS1) })
}

// Init initialises this structure
func (o *NSRDS1) Init(prms dbf.Params) (err error) {
	c, tlo, thi, err := coefs("nsrds1", prms, nsrds1names)
	if err != nil {
		return
	}
	o.a, o.b, o.c, o.d, o.e = c[0], c[1], c[2], c[3], c[4]
	o.tlow, o.thigh = tlo, thi
	return
}

// GetPrms gets (an example of) coefficients
func (o NSRDS1) GetPrms(example bool) dbf.Params {
	if example {
		return prmsOf(nsrds1names, []float64{73.649, -7258.2, -7.3037, 4.1653e-6, 2}, 273.16, 647.13)
	}
	return prmsOf(nsrds1names, o.Coefs(), o.tlow, o.thigh)
}

// TypeName returns the name of this family
func (o NSRDS1) TypeName() string { return "nsrds1" }

// Coefs returns the coefficients, in declared order
func (o NSRDS1) Coefs() []float64 { return []float64{o.a, o.b, o.c, o.d, o.e} }

// TempRange returns the validity range
func (o NSRDS1) TempRange() (tlow, thigh float64) { return o.tlow, o.thigh }

// F evaluates the correlation. The pressure is not used.
func (o NSRDS1) F(p, T float64) (float64, error) {
	if T <= 0 {
		return 0, &DomainError{"nsrds1", io.Sf("T=%g must be positive", T)}
	}
	return math.Exp(o.a + o.b/T + o.c*math.Log(T) + o.d*math.Pow(T, o.e)), nil
}
