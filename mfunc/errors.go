// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfunc

import "github.com/cpmech/gosl/io"

// UnknownFuncError indicates that a family name has no registered allocator
type UnknownFuncError struct {
	Name string // requested family name
}

func (e *UnknownFuncError) Error() string {
	return io.Sf("correlation function %q is not available in 'mfunc' database", e.Name)
}

// MalformedCoefsError indicates a coefficient list that does not match the
// arity of the requested family
type MalformedCoefsError struct {
	Family string // family name
	Arity  int    // number of coefficients the family requires
	Reason string // what went wrong
}

func (e *MalformedCoefsError) Error() string {
	return io.Sf("%s: coefficient list is malformed (%d coefficients required): %s", e.Family, e.Arity, e.Reason)
}

// UndefinedError indicates the evaluation of a property slot that was never
// configured. It carries the owning material and slot for diagnostics.
type UndefinedError struct {
	Mat  string // owning material
	Slot string // property slot
}

func (e *UndefinedError) Error() string {
	return io.Sf("required function %q of material %q is not defined", e.Slot, e.Mat)
}

// DomainError indicates an evaluation outside the mathematically valid
// domain of a family; e.g. T at or above the critical temperature for
// reduced-temperature forms
type DomainError struct {
	Family string // family name
	Msg    string // violated condition
}

func (e *DomainError) Error() string {
	return io.Sf("%s: evaluation outside valid domain: %s", e.Family, e.Msg)
}
