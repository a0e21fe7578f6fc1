// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/lhp18/OpenFOAM-dev/mfunc"
	"github.com/lhp18/OpenFOAM-dev/mliq"
)

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. materials file")

	mdb, err := ReadMat("data", "liquids.mat")
	if err != nil {
		tst.Errorf("cannot read materials: %v\n", err)
		return
	}
	io.Pforan("liquids  = %v\n", len(mdb.Liquids))
	io.Pforan("mixtures = %v\n", len(mdb.Mixes))
	if len(mdb.Liquids) != 3 || len(mdb.Mixes) != 1 {
		tst.Errorf("wrong number of materials: %d liquids, %d mixtures\n", len(mdb.Liquids), len(mdb.Mixes))
		return
	}

	// "water" starts from the built-in substance
	water := mdb.Get("water")
	if water == nil || water.Liq == nil {
		tst.Errorf("material \"water\" is missing\n")
		return
	}
	chk.StrAssert(water.Liq.Name, "water")
	v, err := water.Liq.Rho(101325, 298.15)
	if err != nil {
		tst.Errorf("Rho failed: %v\n", err)
		return
	}
	chk.Float64(tst, "water rho", 1.0, v, 994.8)

	// "amn" and "decane" come fully from their records
	amn := mdb.Get("amn").Liq
	dec := mdb.Get("decane").Liq
	chk.Float64(tst, "amn Tc", 1e-15, amn.Tc, 772.04)
	chk.Float64(tst, "decane Tc", 1e-15, dec.Tc, 617.70)
	v, err = amn.Rho(101325, 300)
	if err != nil {
		tst.Errorf("Rho failed: %v\n", err)
		return
	}
	io.Pforan("amn rho(300)    = %v\n", v)
	chk.Float64(tst, "amn rho", 15.0, v, 1019.0)
	v, err = dec.Rho(101325, 300)
	if err != nil {
		tst.Errorf("Rho failed: %v\n", err)
		return
	}
	io.Pforan("decane rho(300) = %v\n", v)
	chk.Float64(tst, "decane rho", 15.0, v, 725.0)

	// slots absent from the records stay undefined
	_, err = dec.Cpg(101325, 300)
	if err == nil {
		tst.Errorf("unset slot must fail on evaluation\n")
		return
	}
	if _, ok := err.(*mfunc.UndefinedError); !ok {
		tst.Errorf("wrong error type: %v\n", err)
		return
	}
}

func Test_mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat02. mixture material")

	mdb, err := ReadMat("data", "liquids.mat")
	if err != nil {
		tst.Errorf("cannot read materials: %v\n", err)
		return
	}
	idea := mdb.Get("idea")
	if idea == nil || idea.Liq == nil {
		tst.Errorf("mixture \"idea\" is missing\n")
		return
	}
	amn := mdb.Get("amn").Liq
	dec := mdb.Get("decane").Liq

	// scalar constants: averages and lowest critical values
	chk.Float64(tst, "W", 1e-12, idea.Liq.W, 0.3*142.2+0.7*142.285)
	chk.Float64(tst, "Tc", 1e-15, idea.Liq.Tc, 617.70)
	chk.Float64(tst, "Pc", 1e-15, idea.Liq.Pc, 2.11e6)
	chk.Float64(tst, "Vc", 1e-15, idea.Liq.Vc, 0.523)

	// polynomial slots blend exactly
	for _, slot := range []string{"cp", "kappa"} {
		for _, T := range []float64{280, 350, 420, 500, 560} {
			va, err := amn.Get(slot).F(101325, T)
			if err != nil {
				tst.Errorf("amn %s failed: %v\n", slot, err)
				return
			}
			vb, err := dec.Get(slot).F(101325, T)
			if err != nil {
				tst.Errorf("decane %s failed: %v\n", slot, err)
				return
			}
			vm, err := idea.Liq.Get(slot).F(101325, T)
			if err != nil {
				tst.Errorf("idea %s failed: %v\n", slot, err)
				return
			}
			want := 0.3*va + 0.7*vb
			chk.Float64(tst, io.Sf("%s(%g)", slot, T), 1e-7*(1+math.Abs(want)), vm, want)
		}
	}

	// the fitted density follows the blend within a few percent mid-range
	for _, T := range []float64{300, 400, 500} {
		va, _ := amn.Rho(101325, T)
		vb, _ := dec.Rho(101325, T)
		vm, err := idea.Liq.Rho(101325, T)
		if err != nil {
			tst.Errorf("idea rho failed: %v\n", err)
			return
		}
		want := 0.3*va + 0.7*vb
		io.Pforan("rho(%g): fitted=%v blend=%v\n", T, vm, want)
		chk.Float64(tst, io.Sf("rho(%g)", T), 0.05*want, vm, want)
	}

	// slots undefined in the sources stay undefined in the mixture
	_, err = idea.Liq.Cpg(101325, 300)
	if err == nil {
		tst.Errorf("unset slot must stay unset in the mixture\n")
		return
	}
}

func Test_mat03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat03. write and re-read materials")

	mdb, err := ReadMat("data", "liquids.mat")
	if err != nil {
		tst.Errorf("cannot read materials: %v\n", err)
		return
	}

	fn := "liquids-rt.mat"
	io.WriteStringToFileD("/tmp/gofoam/inp", fn, mdb.String())
	mdb2, err := ReadMat("/tmp/gofoam/inp", fn)
	if err != nil {
		tst.Errorf("cannot re-read materials: %v\n", err)
		return
	}

	// every material, slot and sample evaluates identically
	for _, name := range []string{"water", "amn", "decane", "idea"} {
		m1 := mdb.Get(name)
		m2 := mdb2.Get(name)
		if m2 == nil || m2.Liq == nil {
			tst.Errorf("material %q did not survive the round trip\n", name)
			return
		}
		for _, slot := range mliq.Slots {
			f1 := m1.Liq.Get(slot)
			if _, none := f1.(*mfunc.None); none {
				f2 := m2.Liq.Get(slot)
				if _, none := f2.(*mfunc.None); !none {
					tst.Errorf("%s/%s: unset slot became defined\n", name, slot)
					return
				}
				continue
			}
			tlo, thi := f1.TempRange()
			T := utl.LinSpace(tlo+1e-3*(thi-tlo), thi-1e-3*(thi-tlo), 7)
			for _, t := range T {
				v1, err1 := f1.F(101325, t)
				v2, err2 := m2.Liq.Get(slot).F(101325, t)
				if err1 != nil || err2 != nil {
					tst.Errorf("%s/%s at T=%g: %v; %v\n", name, slot, t, err1, err2)
					return
				}
				chk.Float64(tst, io.Sf("%s/%s(%.1f)", name, slot, t), 1e-12*(1+math.Abs(v1)), v2, v1)
			}
		}
	}
	io.Pforan("round trip OK\n")
}

func Test_mat04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat04. mixture without blend fraction")

	// a record omitting "frac" must be rejected, not treated as frac=0
	db := `{
  "materials" : [
    { "name" : "liqA", "type" : "liquid", "model" : "h2o" },
    { "name" : "liqB", "type" : "liquid", "model" : "c7h16" },
    { "name" : "nofrac", "type" : "mixture", "extra" : "liqA liqB" }
  ]
}`
	fn := "nofrac.mat"
	io.WriteStringToFileD("/tmp/gofoam/inp", fn, db)
	_, err := ReadMat("/tmp/gofoam/inp", fn)
	if err == nil {
		tst.Errorf("a mixture without \"frac\" must fail to load\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// an explicit frac of zero is a valid pure-B blend
	db = strings.Replace(db, "\"extra\" : \"liqA liqB\"", "\"extra\" : \"liqA liqB\", \"frac\" : 0", 1)
	io.WriteStringToFileD("/tmp/gofoam/inp", fn, db)
	mdb, err := ReadMat("/tmp/gofoam/inp", fn)
	if err != nil {
		tst.Errorf("cannot read materials: %v\n", err)
		return
	}
	mix := mdb.Get("nofrac")
	if mix == nil || mix.Liq == nil {
		tst.Errorf("mixture \"nofrac\" is missing\n")
		return
	}
	chk.Float64(tst, "W", 1e-12, mix.Liq.W, 100.204)
}

func Test_run01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run01. run file")

	run, err := ReadRun("data/idea.run")
	if err != nil {
		tst.Errorf("cannot read run file: %v\n", err)
		return
	}
	chk.StrAssert(run.Matfile, "liquids.mat")
	chk.StrAssert(run.Material, "idea")
	chk.StrAssert(run.Dir, "data")
	chk.Float64(tst, "pref", 1e-15, run.Pref, 101325)
	chk.Float64(tst, "tmin", 1e-15, run.Tmin, 280)
	chk.Float64(tst, "tmax", 1e-15, run.Tmax, 560)
	if run.Np != 15 {
		tst.Errorf("np = %d is incorrect\n", run.Np)
		return
	}

	// missing file
	if _, err := ReadRun("data/nosuch.run"); err == nil {
		tst.Errorf("ReadRun must fail with a missing file\n")
		return
	}
	io.Pforan("run: %v\n", run.Desc)
}
