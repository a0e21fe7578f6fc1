// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfunc

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// NSRDS6 implements the NSRDS-6 reduced-temperature correlation
//
//   f = a (1 - Tr)^(b + c Tr + d Tr² + e Tr³),   Tr = T/Tc
//
// used for heat of vapourisation and surface tension. The form is undefined
// at or above the critical temperature Tc.
type NSRDS6 struct {
	tc, a, b, c, d, e float64
	tlow, thigh       float64
}

var nsrds6names = []string{"Tc", "a", "b", "c", "d", "e"}

// add function to factory
func init() {
	Register("nsrds6", func() Function { return new(NSRDS6) })
}

// Init initialises this structure
func (o *NSRDS6) Init(prms dbf.Params) (err error) {
	c, tlo, thi, err := coefs("nsrds6", prms, nsrds6names)
	if err != nil {
		return
	}
	o.tc, o.a, o.b, o.c, o.d, o.e = c[0], c[1], c[2], c[3], c[4], c[5]
	o.tlow, o.thigh = tlo, thi
	return
}

// GetPrms gets (an example of) coefficients
func (o NSRDS6) GetPrms(example bool) dbf.Params {
	if example {
		return prmsOf(nsrds6names, []float64{647.13, 2.8894e6, 0.3199, -0.212, 0.25795, 0}, 273.16, 640.0)
	}
	return prmsOf(nsrds6names, o.Coefs(), o.tlow, o.thigh)
}

// TypeName returns the name of this family
func (o NSRDS6) TypeName() string { return "nsrds6" }

// Coefs returns the coefficients, in declared order
func (o NSRDS6) Coefs() []float64 { return []float64{o.tc, o.a, o.b, o.c, o.d, o.e} }

// TempRange returns the validity range
func (o NSRDS6) TempRange() (tlow, thigh float64) { return o.tlow, o.thigh }

// Tcrit returns the critical temperature coefficient
func (o NSRDS6) Tcrit() float64 { return o.tc }

// F evaluates the correlation. The pressure is not used.
func (o NSRDS6) F(p, T float64) (float64, error) {
	if T >= o.tc {
		return 0, &DomainError{"nsrds6", io.Sf("T=%g must be below the critical temperature Tc=%g", T, o.tc)}
	}
	Tr := T / o.tc
	return o.a * math.Pow(1.0-Tr, o.b+Tr*(o.c+Tr*(o.d+Tr*o.e))), nil
}
