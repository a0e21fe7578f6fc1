// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfunc

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Table implements a piecewise-linear correlation over tabulated (T,v)
// pairs. Coefficients are named t0,v0,t1,v1,... with strictly increasing
// abscissae; at least two pairs are required. Evaluation outside the
// tabulated span fails.
type Table struct {
	tt, vv      []float64
	tlow, thigh float64
}

// add function to factory
func init() {
	Register("table", func() Function { return new(Table) })
}

// Init initialises this structure
func (o *Table) Init(prms dbf.Params) (err error) {
	var vals []float64
	for _, p := range prms {
		switch p.N {
		case "tlow":
			o.tlow = p.V
			continue
		case "thigh":
			o.thigh = p.V
			continue
		}
		i := len(vals)
		name := io.Sf("t%d", i/2)
		if i%2 == 1 {
			name = io.Sf("v%d", i/2)
		}
		if p.N != name {
			return &MalformedCoefsError{"table", 4, io.Sf("coefficient %q is out of place; %q expected", p.N, name)}
		}
		vals = append(vals, p.V)
	}
	if len(vals)%2 != 0 || len(vals) < 4 {
		return &MalformedCoefsError{"table", 4, io.Sf("got %d values; an even number (at least 4) of t/v pairs is required", len(vals))}
	}
	n := len(vals) / 2
	o.tt = make([]float64, n)
	o.vv = make([]float64, n)
	for i := 0; i < n; i++ {
		o.tt[i] = vals[2*i]
		o.vv[i] = vals[2*i+1]
		if i > 0 && o.tt[i] <= o.tt[i-1] {
			return &MalformedCoefsError{"table", 4, io.Sf("abscissae must increase strictly: t%d=%g ≤ t%d=%g", i, o.tt[i], i-1, o.tt[i-1])}
		}
	}
	return
}

// GetPrms gets (an example of) coefficients
func (o Table) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "t0", V: 273.16}, &dbf.P{N: "v0", V: 999.8},
			&dbf.P{N: "t1", V: 323.15}, &dbf.P{N: "v1", V: 988.0},
			&dbf.P{N: "t2", V: 373.15}, &dbf.P{N: "v2", V: 958.4},
		}
	}
	var prms dbf.Params
	for i := range o.tt {
		prms = append(prms, &dbf.P{N: io.Sf("t%d", i), V: o.tt[i]})
		prms = append(prms, &dbf.P{N: io.Sf("v%d", i), V: o.vv[i]})
	}
	if o.tlow != 0 || o.thigh != 0 {
		prms = append(prms, &dbf.P{N: "tlow", V: o.tlow})
		prms = append(prms, &dbf.P{N: "thigh", V: o.thigh})
	}
	return prms
}

// TypeName returns the name of this family
func (o Table) TypeName() string { return "table" }

// Coefs returns the interleaved t/v values
func (o Table) Coefs() []float64 {
	c := make([]float64, 0, 2*len(o.tt))
	for i := range o.tt {
		c = append(c, o.tt[i], o.vv[i])
	}
	return c
}

// TempRange returns the validity range; the tabulated span if not set
func (o Table) TempRange() (tlow, thigh float64) {
	if o.tlow == 0 && o.thigh == 0 && len(o.tt) > 0 {
		return o.tt[0], o.tt[len(o.tt)-1]
	}
	return o.tlow, o.thigh
}

// F evaluates the correlation by linear interpolation. The pressure is not used.
func (o Table) F(p, T float64) (float64, error) {
	n := len(o.tt)
	if T < o.tt[0] || T > o.tt[n-1] {
		return 0, &DomainError{"table", io.Sf("T=%g is outside the tabulated span [%g, %g]", T, o.tt[0], o.tt[n-1])}
	}
	for i := 1; i < n; i++ {
		if T <= o.tt[i] {
			t0, t1 := o.tt[i-1], o.tt[i]
			v0, v1 := o.vv[i-1], o.vv[i]
			return v0 + (T-t0)*(v1-v0)/(t1-t0), nil
		}
	}
	return o.vv[n-1], nil
}
