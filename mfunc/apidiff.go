// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfunc

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// APIdiff implements the API vapour diffusivity correlation
//
//   f = 3.6059e-3 (1.8 T)^1.75 α / (p β)
//
// with α = √(1/wf + 1/wa) and β = (a^⅓ + b^⅓)², where a and b are the
// molecular volumes and wf and wa the molecular weights of fuel and air.
// This is the only family that uses the pressure.
type APIdiff struct {
	a, b, wf, wa float64
	alpha, beta  float64 // derived
	tlow, thigh  float64
}

var apidiffnames = []string{"a", "b", "wf", "wa"}

// add function to factory
func init() {
	Register("apidiff", func() Function { return new(APIdiff) })
}

// Init initialises this structure
func (o *APIdiff) Init(prms dbf.Params) (err error) {
	c, tlo, thi, err := coefs("apidiff", prms, apidiffnames)
	if err != nil {
		return
	}
	o.a, o.b, o.wf, o.wa = c[0], c[1], c[2], c[3]
	o.alpha = math.Sqrt(1.0/o.wf + 1.0/o.wa)
	cb := math.Cbrt(o.a) + math.Cbrt(o.b)
	o.beta = cb * cb
	o.tlow, o.thigh = tlo, thi
	return
}

// GetPrms gets (an example of) coefficients
func (o APIdiff) GetPrms(example bool) dbf.Params {
	if example {
		return prmsOf(apidiffnames, []float64{147.18, 20.1, 100.204, 28.85}, 273.16, 540.0)
	}
	return prmsOf(apidiffnames, o.Coefs(), o.tlow, o.thigh)
}

// TypeName returns the name of this family
func (o APIdiff) TypeName() string { return "apidiff" }

// Coefs returns the coefficients, in declared order
func (o APIdiff) Coefs() []float64 { return []float64{o.a, o.b, o.wf, o.wa} }

// TempRange returns the validity range
func (o APIdiff) TempRange() (tlow, thigh float64) { return o.tlow, o.thigh }

// F evaluates the correlation
func (o APIdiff) F(p, T float64) (float64, error) {
	if p <= 0 {
		return 0, &DomainError{"apidiff", io.Sf("p=%g must be positive", p)}
	}
	if T <= 0 {
		return 0, &DomainError{"apidiff", io.Sf("T=%g must be positive", T)}
	}
	return 3.6059e-3 * math.Pow(1.8*T, 1.75) * o.alpha / (p * o.beta), nil
}
