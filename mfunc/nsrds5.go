// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfunc

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// NSRDS5 implements the NSRDS-5 saturated-density correlation
//
//   f = a / b^(1 + (1 - T/c)^d)
//
// The coefficient c corresponds to the critical temperature; the form is
// undefined at or above it.
type NSRDS5 struct {
	a, b, c, d  float64
	tlow, thigh float64
}

var nsrds5names = []string{"a", "b", "c", "d"}

// add function to factory
func init() {
	Register("nsrds5", func() Function { return new(NSRDS5) })
}

// Init initialises this structure
func (o *NSRDS5) Init(prms dbf.Params) (err error) {
	c, tlo, thi, err := coefs("nsrds5", prms, nsrds5names)
	if err != nil {
		return
	}
	o.a, o.b, o.c, o.d = c[0], c[1], c[2], c[3]
	o.tlow, o.thigh = tlo, thi
	return
}

// GetPrms gets (an example of) coefficients
func (o NSRDS5) GetPrms(example bool) dbf.Params {
	if example {
		return prmsOf(nsrds5names, []float64{98.343885, 0.30542, 647.13, 0.081}, 273.16, 640.0)
	}
	return prmsOf(nsrds5names, o.Coefs(), o.tlow, o.thigh)
}

// TypeName returns the name of this family
func (o NSRDS5) TypeName() string { return "nsrds5" }

// Coefs returns the coefficients, in declared order
func (o NSRDS5) Coefs() []float64 { return []float64{o.a, o.b, o.c, o.d} }

// TempRange returns the validity range
func (o NSRDS5) TempRange() (tlow, thigh float64) { return o.tlow, o.thigh }

// F evaluates the correlation. The pressure is not used.
func (o NSRDS5) F(p, T float64) (float64, error) {
	if T >= o.c {
		return 0, &DomainError{"nsrds5", io.Sf("T=%g must be below the critical temperature c=%g", T, o.c)}
	}
	return o.a / math.Pow(o.b, 1.0+math.Pow(1.0-T/o.c, o.d)), nil
}
