// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.mat) and (.run) JSON files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/lhp18/OpenFOAM-dev/mfunc"
	"github.com/lhp18/OpenFOAM-dev/mliq"
	"github.com/lhp18/OpenFOAM-dev/mmix"
)

// PropData holds one correlation record: property slot, family name and
// ordered coefficients
type PropData struct {
	Slot  string     `json:"slot"`  // property slot; e.g. "rho", "pv", "mu"
	Model string     `json:"model"` // family name; e.g. "nsrds0", "apidiff"
	Prms  dbf.Params `json:"prms"`  // coefficients, in declared order
}

// Material holds material data
type Material struct {

	// input
	Name  string      `json:"name"`  // name of material
	Type  string      `json:"type"`  // type of material: "liquid" or "mixture"
	Model string      `json:"model"` // liquids only: name of a built-in substance to start from
	Extra string      `json:"extra"` // mixtures only: the two source material names
	Frac  *float64    `json:"frac"`  // mixtures only: blend fraction of the first source; must be given
	Np    int         `json:"np"`    // mixtures only: number of fitting samples; 0 means default
	Tlo   float64     `json:"tlo"`   // mixtures only: working range override
	Thi   float64     `json:"thi"`   // mixtures only: working range override
	Prms  dbf.Params  `json:"prms"`  // liquids only: scalar constants (W, Tc, Pc, Vc, Tb)
	Props []*PropData `json:"props"` // liquids only: correlation records

	// derived
	Liq *mliq.Liquid // pointer to actual liquid
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	Liquids map[string]*Material // subset with materials: liquids
	Mixes   map[string]*Material // subset with materials: mixtures
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	fpath := filepath.Join(dir, fn)
	if _, e := os.Stat(fpath); e != nil {
		return nil, chk.Err("cannot open materials file %q", fpath)
	}
	b := io.ReadFile(fpath)

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return
	}

	// subsets
	mdb.Liquids = make(map[string]*Material)
	mdb.Mixes = make(map[string]*Material)
	for _, m := range mdb.Materials {
		switch m.Type {
		case "liquid":
			mdb.Liquids[m.Name] = m
		case "mixture":
			mdb.Mixes[m.Name] = m
		default:
			err = chk.Err("material type %q is incorrect; options are \"liquid\" and \"mixture\"", m.Type)
			return
		}
	}

	// alloc/init: liquids
	for _, m := range mdb.Liquids {
		m.Liq, err = allocLiquid(m)
		if err != nil {
			return
		}
	}

	// alloc/init: mixtures (sources must be liquids; no nesting)
	for _, m := range mdb.Mixes {
		if m.Frac == nil {
			err = chk.Err("mixture %q does not set \"frac\"", m.Name)
			return
		}
		names := strings.Fields(m.Extra)
		if len(names) != 2 {
			err = chk.Err("mixture %q must name exactly two source materials in \"extra\"; got %q", m.Name, m.Extra)
			return
		}
		var src [2]*mliq.Liquid
		for i, name := range names {
			mm, ok := mdb.Liquids[name]
			if !ok {
				err = chk.Err("mixture %q: source material %q is not a liquid in this database", m.Name, name)
				return
			}
			src[i] = mm.Liq
		}
		opts := mmix.DefaultOpts()
		if m.Np > 0 {
			opts.Np = m.Np
		}
		opts.Tlo, opts.Thi = m.Tlo, m.Thi
		m.Liq, err = mmix.Blend(m.Name, src[0], src[1], *m.Frac, opts)
		if err != nil {
			return
		}
	}
	return
}

// allocLiquid builds one liquid from its material record. With Model set,
// the registered substance provides the starting correlation set and the
// record's entries override it; otherwise all data comes from the record.
func allocLiquid(m *Material) (liq *mliq.Liquid, err error) {
	if m.Model != "" {
		liq, err = mliq.New(m.Model)
		if err != nil {
			return
		}
		liq.Name = m.Name
		// scalar overrides keep unmentioned constants
		for _, p := range m.Prms {
			switch p.N {
			case "W":
				liq.W = p.V
			case "Tc":
				liq.Tc = p.V
			case "Pc":
				liq.Pc = p.V
			case "Vc":
				liq.Vc = p.V
			case "Tb":
				liq.Tb = p.V
			default:
				return nil, chk.Err("liquid %q: scalar constant named %q is incorrect", m.Name, p.N)
			}
		}
	} else {
		liq = new(mliq.Liquid)
		err = liq.Init(m.Name, m.Prms)
		if err != nil {
			return
		}
	}
	for _, pd := range m.Props {
		var fcn mfunc.Function
		fcn, err = mfunc.New(pd.Model)
		if err != nil {
			return nil, err
		}
		err = fcn.Init(pd.Prms)
		if err != nil {
			return nil, chk.Err("cannot initialise slot %q of liquid %q: %v", pd.Slot, m.Name, err)
		}
		err = liq.Set(pd.Slot, fcn)
		if err != nil {
			return nil, err
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// String prints one material. Mixtures are written as plain liquids
// carrying their fitted coefficients, so the written database reproduces
// the same property values without re-fitting.
func (o *Material) String() string {
	if o.Liq != nil {
		return o.Liq.String()
	}
	return io.Sf("    { \"name\" : %q, \"type\" : %q }", o.Name, o.Type)
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n%v\n}", o.Materials)
}
