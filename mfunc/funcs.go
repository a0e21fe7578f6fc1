// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mfunc implements thermophysical correlation functions f(p,T)
//
// Each function family is a closed-form formula parameterised by a fixed,
// ordered coefficient vector. Families follow the NSRDS equation numbering
// (NSRDS form n corresponds to DIPPR equation 100+n). Coefficients may be
// followed by the optional parameters "tlow" and "thigh" delimiting the
// validity temperature range.
package mfunc

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Function defines thermophysical correlation functions
type Function interface {
	Init(prms dbf.Params) error       // Init binds the (ordered) coefficients
	GetPrms(example bool) dbf.Params  // gets (an example of) coefficients, in declared order
	TypeName() string                 // name of this family in the database
	Coefs() []float64                 // coefficient values, in declared order
	TempRange() (tlow, thigh float64) // validity range; (0,0) if not set
	F(p, T float64) (float64, error)  // evaluates the correlation
}

// New returns a new correlation function
func New(name string) (fcn Function, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, &UnknownFuncError{name}
	}
	return allocator(), nil
}

// Register adds a new function family to the database.
// Duplicated names indicate a programming error and cause a panic.
func Register(name string, allocator func() Function) {
	if _, ok := allocators[name]; ok {
		chk.Panic("correlation function %q is registered twice in 'mfunc' database", name)
	}
	allocators[name] = allocator
}

// allocators holds all available function families
var allocators = map[string]func() Function{}

// FromCoefs returns an initialised function given positional coefficient
// values. Coefficient names are taken from the family declaration order.
func FromCoefs(family string, c []float64, tlow, thigh float64) (Function, error) {
	fcn, err := New(family)
	if err != nil {
		return nil, err
	}
	var prms dbf.Params
	k := 0
	for _, p := range fcn.GetPrms(true) {
		if p.N == "tlow" || p.N == "thigh" {
			continue
		}
		if k == len(c) {
			break
		}
		prms = append(prms, &dbf.P{N: p.N, V: c[k]})
		k++
	}
	if k != len(c) {
		return nil, &MalformedCoefsError{family, k, io.Sf("got %d coefficient values", len(c))}
	}
	if tlow != 0 || thigh != 0 {
		prms = append(prms, &dbf.P{N: "tlow", V: tlow})
		prms = append(prms, &dbf.P{N: "thigh", V: thigh})
	}
	if err = fcn.Init(prms); err != nil {
		return nil, err
	}
	return fcn, nil
}

// MustNew is like FromCoefs but panics on error. It is meant for built-in
// substance data, where inconsistencies are programming errors.
func MustNew(family string, c []float64, tlow, thigh float64) Function {
	fcn, err := FromCoefs(family, c, tlow, thigh)
	if err != nil {
		chk.Panic("%v", err)
	}
	return fcn
}

// coefs extracts the family coefficients, in declared order, plus the
// optional validity range. The parameter list must hold each named
// coefficient exactly once.
func coefs(family string, prms dbf.Params, names []string) (c []float64, tlow, thigh float64, err error) {
	c = make([]float64, len(names))
	seen := make(map[string]bool)
	n := 0
	for _, p := range prms {
		switch p.N {
		case "tlow":
			tlow = p.V
			continue
		case "thigh":
			thigh = p.V
			continue
		}
		idx := -1
		for i, name := range names {
			if p.N == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, 0, 0, &MalformedCoefsError{family, len(names), io.Sf("coefficient %q is unknown", p.N)}
		}
		if seen[p.N] {
			return nil, 0, 0, &MalformedCoefsError{family, len(names), io.Sf("coefficient %q is given twice", p.N)}
		}
		seen[p.N] = true
		c[idx] = p.V
		n++
	}
	if n != len(names) {
		return nil, 0, 0, &MalformedCoefsError{family, len(names), io.Sf("got %d coefficients", n)}
	}
	return
}

// prmsOf builds the ordered parameter list of a function from its
// coefficient names/values and validity range
func prmsOf(names []string, vals []float64, tlow, thigh float64) (prms dbf.Params) {
	for i, name := range names {
		prms = append(prms, &dbf.P{N: name, V: vals[i]})
	}
	if tlow != 0 || thigh != 0 {
		prms = append(prms, &dbf.P{N: "tlow", V: tlow})
		prms = append(prms, &dbf.P{N: "thigh", V: thigh})
	}
	return
}
