// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfunc

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// None is the placeholder for property slots that were never configured.
// Construction always succeeds; every evaluation fails with UndefinedError
// carrying the owning material and slot.
type None struct {
	Mat  string // owning material
	Slot string // property slot
}

// add function to factory
func init() {
	Register("none", func() Function { return new(None) })
}

// NewNone returns a placeholder bound to the given material and slot
func NewNone(mat, slot string) *None {
	return &None{Mat: mat, Slot: slot}
}

// Init initialises this structure. No coefficients are accepted.
func (o *None) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if p.N != "tlow" && p.N != "thigh" {
			return &MalformedCoefsError{"none", 0, io.Sf("coefficient %q is unknown", p.N)}
		}
	}
	return
}

// GetPrms gets coefficients; none has no coefficients
func (o None) GetPrms(example bool) dbf.Params { return nil }

// TypeName returns the name of this family
func (o None) TypeName() string { return "none" }

// Coefs returns the coefficients; none has no coefficients
func (o None) Coefs() []float64 { return nil }

// TempRange returns the validity range; none has no range
func (o None) TempRange() (tlow, thigh float64) { return 0, 0 }

// F always fails
func (o None) F(p, T float64) (float64, error) {
	return 0, &UndefinedError{o.Mat, o.Slot}
}
