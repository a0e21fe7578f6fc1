// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfunc

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// NSRDS3 implements the NSRDS-3 exponential correlation
//
//   f = a + b exp(-c / T^d)
//
type NSRDS3 struct {
	a, b, c, d  float64
	tlow, thigh float64
}

var nsrds3names = []string{"a", "b", "c", "d"}

// add function to factory
func init() {
	Register("nsrds3", func() Function { return new(NSRDS3) })
}

// Init initialises this structure
func (o *NSRDS3) Init(prms dbf.Params) (err error) {
	c, tlo, thi, err := coefs("nsrds3", prms, nsrds3names)
	if err != nil {
		return
	}
	o.a, o.b, o.c, o.d = c[0], c[1], c[2], c[3]
	o.tlow, o.thigh = tlo, thi
	return
}

// GetPrms gets (an example of) coefficients
func (o NSRDS3) GetPrms(example bool) dbf.Params {
	if example {
		return prmsOf(nsrds3names, []float64{0.0542, 0.0016, 600.0, 1.0}, 273.16, 533.15)
	}
	return prmsOf(nsrds3names, o.Coefs(), o.tlow, o.thigh)
}

// TypeName returns the name of this family
func (o NSRDS3) TypeName() string { return "nsrds3" }

// Coefs returns the coefficients, in declared order
func (o NSRDS3) Coefs() []float64 { return []float64{o.a, o.b, o.c, o.d} }

// TempRange returns the validity range
func (o NSRDS3) TempRange() (tlow, thigh float64) { return o.tlow, o.thigh }

// F evaluates the correlation. The pressure is not used.
func (o NSRDS3) F(p, T float64) (float64, error) {
	if T <= 0 {
		return 0, &DomainError{"nsrds3", io.Sf("T=%g must be positive", T)}
	}
	return o.a + o.b*math.Exp(-o.c/math.Pow(T, o.d)), nil
}
