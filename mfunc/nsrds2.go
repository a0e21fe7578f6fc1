// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfunc

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// NSRDS2 implements the NSRDS-2 rational correlation
//
//   f = a T^b / (1 + c/T + d/T²)
//
// used for vapour viscosity and vapour thermal conductivity
type NSRDS2 struct {
	a, b, c, d  float64
	tlow, thigh float64
}

var nsrds2names = []string{"a", "b", "c", "d"}

// add function to factory
func init() {
	Register("nsrds2", func() Function { return new(NSRDS2) })
}

// Init initialises this structure
func (o *NSRDS2) Init(prms dbf.Params) (err error) {
	c, tlo, thi, err := coefs("nsrds2", prms, nsrds2names)
	if err != nil {
		return
	}
	o.a, o.b, o.c, o.d = c[0], c[1], c[2], c[3]
	o.tlow, o.thigh = tlo, thi
	return
}

// GetPrms gets (an example of) coefficients
func (o NSRDS2) GetPrms(example bool) dbf.Params {
	if example {
		return prmsOf(nsrds2names, []float64{2.6986e-6, 0.498, 1257.7, -19570}, 273.16, 1073.15)
	}
	return prmsOf(nsrds2names, o.Coefs(), o.tlow, o.thigh)
}

// TypeName returns the name of this family
func (o NSRDS2) TypeName() string { return "nsrds2" }

// Coefs returns the coefficients, in declared order
func (o NSRDS2) Coefs() []float64 { return []float64{o.a, o.b, o.c, o.d} }

// TempRange returns the validity range
func (o NSRDS2) TempRange() (tlow, thigh float64) { return o.tlow, o.thigh }

// F evaluates the correlation. The pressure is not used.
func (o NSRDS2) F(p, T float64) (float64, error) {
	if T <= 0 {
		return 0, &DomainError{"nsrds2", io.Sf("T=%g must be positive", T)}
	}
	return o.a * math.Pow(T, o.b) / (1.0 + o.c/T + o.d/(T*T)), nil
}
