// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mliq

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/lhp18/OpenFOAM-dev/mfunc"
)

// Liquid holds the full set of thermophysical correlations and critical
// constants of one substance. Construction never fails because of missing
// property slots: unset slots hold the "none" placeholder and fail on
// evaluation only. After construction a Liquid is immutable and may be
// shared by any number of concurrent readers.
type Liquid struct {

	// identity and scalar constants
	Name string  // substance name
	W    float64 // molecular weight [kg/kmol]
	Tc   float64 // critical temperature [K]
	Pc   float64 // critical pressure [Pa]
	Vc   float64 // critical volume [m³/kmol]
	Tb   float64 // normal boiling temperature [K]

	// correlation slots
	funcs map[string]mfunc.Function
}

// Init initialises the liquid with its scalar constants and pre-fills every
// property slot with the "none" placeholder
func (o *Liquid) Init(name string, prms dbf.Params) (err error) {
	o.Name = name
	for _, p := range prms {
		switch p.N {
		case "W":
			o.W = p.V
		case "Tc":
			o.Tc = p.V
		case "Pc":
			o.Pc = p.V
		case "Vc":
			o.Vc = p.V
		case "Tb":
			o.Tb = p.V
		default:
			return chk.Err("liquid %q: scalar constant named %q is incorrect", name, p.N)
		}
	}
	o.funcs = make(map[string]mfunc.Function)
	for _, slot := range Slots {
		o.funcs[slot] = mfunc.NewNone(name, slot)
	}
	return
}

// GetPrms gets the scalar constants, in declared order
func (o Liquid) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "W", V: o.W},
		&dbf.P{N: "Tc", V: o.Tc},
		&dbf.P{N: "Pc", V: o.Pc},
		&dbf.P{N: "Vc", V: o.Vc},
		&dbf.P{N: "Tb", V: o.Tb},
	}
}

// Set binds a correlation function to a property slot
func (o *Liquid) Set(slot string, fcn mfunc.Function) (err error) {
	if !knownSlot(slot) {
		return chk.Err("liquid %q: property slot %q is incorrect; options are %v", o.Name, slot, Slots)
	}
	if n, ok := fcn.(*mfunc.None); ok && n.Mat == "" {
		n.Mat, n.Slot = o.Name, slot
	}
	o.funcs[slot] = fcn
	return
}

// mustSet binds a built-in correlation given positional coefficients.
// Inconsistent built-in data is a programming error and causes a panic.
func (o *Liquid) mustSet(slot, model string, c []float64, tlow, thigh float64) {
	if err := o.Set(slot, mfunc.MustNew(model, c, tlow, thigh)); err != nil {
		chk.Panic("%v", err)
	}
}

// Get returns the correlation function bound to a property slot
//  Note: returns nil if the slot name is incorrect
func (o Liquid) Get(slot string) mfunc.Function {
	return o.funcs[slot]
}

// eval forwards to the function bound to slot
func (o Liquid) eval(slot string, p, T float64) (float64, error) {
	return o.funcs[slot].F(p, T)
}

// Rho returns the liquid density [kg/m³]
func (o Liquid) Rho(p, T float64) (float64, error) { return o.eval("rho", p, T) }

// Pv returns the vapour pressure [Pa]
func (o Liquid) Pv(p, T float64) (float64, error) { return o.eval("pv", p, T) }

// Hl returns the heat of vapourisation [J/kg]
func (o Liquid) Hl(p, T float64) (float64, error) { return o.eval("hl", p, T) }

// Cp returns the liquid heat capacity [J/kg/K]
func (o Liquid) Cp(p, T float64) (float64, error) { return o.eval("cp", p, T) }

// H returns the liquid enthalpy [J/kg]
func (o Liquid) H(p, T float64) (float64, error) { return o.eval("h", p, T) }

// Cpg returns the ideal gas heat capacity [J/kg/K]
func (o Liquid) Cpg(p, T float64) (float64, error) { return o.eval("cpg", p, T) }

// B returns the second virial coefficient [m³/kg]
func (o Liquid) B(p, T float64) (float64, error) { return o.eval("b", p, T) }

// Mu returns the liquid viscosity [Pa·s]
func (o Liquid) Mu(p, T float64) (float64, error) { return o.eval("mu", p, T) }

// Mug returns the vapour viscosity [Pa·s]
func (o Liquid) Mug(p, T float64) (float64, error) { return o.eval("mug", p, T) }

// Kappa returns the liquid thermal conductivity [W/m/K]
func (o Liquid) Kappa(p, T float64) (float64, error) { return o.eval("kappa", p, T) }

// Kappag returns the vapour thermal conductivity [W/m/K]
func (o Liquid) Kappag(p, T float64) (float64, error) { return o.eval("kappag", p, T) }

// Sigma returns the surface tension [N/m]
func (o Liquid) Sigma(p, T float64) (float64, error) { return o.eval("sigma", p, T) }

// D returns the vapour diffusivity [m²/s]
func (o Liquid) D(p, T float64) (float64, error) { return o.eval("d", p, T) }

// String writes the material record in the input-file shape: type name
// first, coefficients in declared order. Loading the output reproduces a
// liquid whose every slot evaluates identically.
func (o Liquid) String() string {
	l := io.Sf("    {\n      \"name\" : %q, \"type\" : \"liquid\",\n", o.Name)
	l += io.Sf("      \"prms\" : [%v],\n", prmsLine(o.GetPrms(false)))
	l += "      \"props\" : [\n"
	for i, slot := range Slots {
		if i > 0 {
			l += ",\n"
		}
		fcn := o.funcs[slot]
		l += io.Sf("        { \"slot\":%q, \"model\":%q, \"prms\":[%v] }", slot, fcn.TypeName(), prmsLine(fcn.GetPrms(false)))
	}
	l += "\n      ]\n    }"
	return l
}

// prmsLine writes parameters on one line
func prmsLine(prms dbf.Params) string {
	l := ""
	for i, p := range prms {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("{\"n\":%q, \"v\":%v}", p.N, p.V)
	}
	return l
}
