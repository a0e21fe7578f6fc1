// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mliq implements liquid materials as bundles of thermophysical
// correlation functions plus critical-point constants
package mliq

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Slots lists the property slots of a liquid, in output order
var Slots = []string{"rho", "pv", "hl", "cp", "h", "cpg", "b", "mu", "mug", "kappa", "kappag", "sigma", "d"}

// UnknownLiqError indicates that a material name has no registered allocator
type UnknownLiqError struct {
	Name string // requested material name
}

func (e *UnknownLiqError) Error() string {
	return io.Sf("liquid %q is not available in 'mliq' database", e.Name)
}

// New returns a new pre-configured liquid
func New(name string) (liq *Liquid, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, &UnknownLiqError{name}
	}
	return allocator(), nil
}

// Register adds a new liquid to the database.
// Duplicated names indicate a programming error and cause a panic.
func Register(name string, allocator func() *Liquid) {
	if _, ok := allocators[name]; ok {
		chk.Panic("liquid %q is registered twice in 'mliq' database", name)
	}
	allocators[name] = allocator
}

// allocators holds all available liquids
var allocators = map[string]func() *Liquid{}

// knownSlot tells whether name is a valid property slot
func knownSlot(name string) bool {
	for _, s := range Slots {
		if s == name {
			return true
		}
	}
	return false
}
