// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfunc

import "github.com/cpmech/gosl/fun/dbf"

// Cte implements a constant correlation: f = a for all (p,T)
type Cte struct {
	a           float64
	tlow, thigh float64
}

var ctenames = []string{"a"}

// add function to factory
func init() {
	Register("cte", func() Function { return new(Cte) })
}

// Init initialises this structure
func (o *Cte) Init(prms dbf.Params) (err error) {
	c, tlo, thi, err := coefs("cte", prms, ctenames)
	if err != nil {
		return
	}
	o.a = c[0]
	o.tlow, o.thigh = tlo, thi
	return
}

// GetPrms gets (an example of) coefficients
func (o Cte) GetPrms(example bool) dbf.Params {
	if example {
		return prmsOf(ctenames, []float64{1.0}, 0, 0)
	}
	return prmsOf(ctenames, o.Coefs(), o.tlow, o.thigh)
}

// TypeName returns the name of this family
func (o Cte) TypeName() string { return "cte" }

// Coefs returns the coefficients
func (o Cte) Coefs() []float64 { return []float64{o.a} }

// TempRange returns the validity range
func (o Cte) TempRange() (tlow, thigh float64) { return o.tlow, o.thigh }

// F evaluates the correlation
func (o Cte) F(p, T float64) (float64, error) {
	return o.a, nil
}
