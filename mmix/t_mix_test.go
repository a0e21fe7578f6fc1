// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmix

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/lhp18/OpenFOAM-dev/mfunc"
	"github.com/lhp18/OpenFOAM-dev/mliq"
)

// cmpSlots compares every defined slot of mix against the pointwise blend
// of the sources over the interior of the fitted range
func cmpSlots(tst *testing.T, mix, a, b *mliq.Liquid, w, pref, tol float64) {
	for _, slot := range mliq.Slots {
		fcn := mix.Get(slot)
		if _, none := fcn.(*mfunc.None); none {
			continue
		}
		tlo, thi := fcn.TempRange()
		T := utl.LinSpace(tlo+1e-3*(thi-tlo), thi-1e-3*(thi-tlo), 11)
		for _, t := range T {
			va, err := a.Get(slot).F(pref, t)
			if err != nil {
				tst.Errorf("slot %q of %q failed at T=%g: %v\n", slot, a.Name, t, err)
				return
			}
			vb, err := b.Get(slot).F(pref, t)
			if err != nil {
				tst.Errorf("slot %q of %q failed at T=%g: %v\n", slot, b.Name, t, err)
				return
			}
			vm, err := fcn.F(pref, t)
			if err != nil {
				tst.Errorf("slot %q of mixture failed at T=%g: %v\n", slot, t, err)
				return
			}
			want := w*va + (1-w)*vb
			chk.Float64(tst, io.Sf("%s(%.1f)", slot, t), tol*(1+math.Abs(want)), vm, want)
		}
	}
}

func Test_mix01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mix01. pure fractions reproduce the sources")

	a, err := mliq.New("h2o")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	b, err := mliq.New("c7h16")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	// w=1: every slot reproduces water
	mix, err := Blend("allwater", a, b, 1.0, nil)
	if err != nil {
		tst.Errorf("Blend failed: %v\n", err)
		return
	}
	chk.Float64(tst, "W", 1e-12, mix.W, a.W)
	chk.Float64(tst, "Tb", 1e-12, mix.Tb, a.Tb)
	cmpSlots(tst, mix, a, b, 1.0, 101325, 1e-5)

	// w=0: every slot reproduces heptane
	mix, err = Blend("allheptane", a, b, 0.0, nil)
	if err != nil {
		tst.Errorf("Blend failed: %v\n", err)
		return
	}
	chk.Float64(tst, "W", 1e-12, mix.W, b.W)
	cmpSlots(tst, mix, a, b, 0.0, 101325, 1e-5)
}

func Test_mix02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mix02. scalar constants of a 30/70 blend")

	a, err := mliq.New("h2o")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	b, err := mliq.New("c7h16")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	mix, err := Blend("blend37", a, b, 0.3, nil)
	if err != nil {
		tst.Errorf("Blend failed: %v\n", err)
		return
	}

	// W and Tb average; critical constants take the lowest source
	chk.Float64(tst, "W", 1e-12, mix.W, 0.3*18.015+0.7*100.204)
	chk.Float64(tst, "Tb", 1e-12, mix.Tb, 0.3*373.15+0.7*371.6)
	chk.Float64(tst, "Tc", 1e-15, mix.Tc, 540.2)
	chk.Float64(tst, "Pc", 1e-15, mix.Pc, 2.74e6)
	chk.Float64(tst, "Vc", 1e-15, mix.Vc, 0.05595)

	// directly-combining families blend coefficient-wise
	cd := mix.Get("d").Coefs()
	ca, cb := a.Get("d").Coefs(), b.Get("d").Coefs()
	for i := range cd {
		chk.Float64(tst, io.Sf("d coef %d", i), 1e-12*(1+math.Abs(cd[i])), cd[i], 0.3*ca[i]+0.7*cb[i])
	}
}

func Test_mix03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mix03. blend of coefficient-linear families is exact")

	// two hand-built liquids: polynomial heat capacity, tabulated density
	newLiq := func(name string, cp []float64, rho0, rho1 float64) *mliq.Liquid {
		o := new(mliq.Liquid)
		if err := o.Init(name, dbf.Params{&dbf.P{N: "W", V: 100}}); err != nil {
			tst.Fatalf("Init failed: %v\n", err)
		}
		if err := o.Set("cp", mfunc.MustNew("nsrds0", cp, 300, 500)); err != nil {
			tst.Fatalf("Set failed: %v\n", err)
		}
		if err := o.Set("rho", mfunc.MustNew("table", []float64{300, rho0, 400, 0.5 * (rho0 + rho1), 500, rho1}, 0, 0)); err != nil {
			tst.Fatalf("Set failed: %v\n", err)
		}
		return o
	}
	a := newLiq("liqA", []float64{2000, 1.5, 0.002, 0, 0, 0}, 900, 820)
	b := newLiq("liqB", []float64{1400, 2.5, 0.001, 1e-6, 0, 0}, 750, 640)

	mix, err := Blend("mixAB", a, b, 0.3, nil)
	if err != nil {
		tst.Errorf("Blend failed: %v\n", err)
		return
	}
	cmpSlots(tst, mix, a, b, 0.3, 101325, 1e-7)

	// unset slots of either source stay unset
	_, err = mix.Mu(101325, 400)
	if err == nil {
		tst.Errorf("slot undefined in the sources must stay undefined\n")
		return
	}
	if _, ok := err.(*mfunc.UndefinedError); !ok {
		tst.Errorf("wrong error type: %v\n", err)
	}
}

func Test_mix04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mix04. incompatible families and bad arguments")

	newLiq := func(name, model string, c []float64) *mliq.Liquid {
		o := new(mliq.Liquid)
		if err := o.Init(name, nil); err != nil {
			tst.Fatalf("Init failed: %v\n", err)
		}
		if err := o.Set("rho", mfunc.MustNew(model, c, 300, 500)); err != nil {
			tst.Fatalf("Set failed: %v\n", err)
		}
		return o
	}
	a := newLiq("liqA", "cte", []float64{900})
	b := newLiq("liqB", "nsrds0", []float64{750, 0.1, 0, 0, 0, 0})

	// different families in the same slot cannot be blended
	_, err := Blend("bad", a, b, 0.5, nil)
	if err == nil {
		tst.Errorf("Blend of incompatible families must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// fraction outside [0,1]
	if _, err := Blend("bad", a, a, -0.1, nil); err == nil {
		tst.Errorf("Blend with w<0 must fail\n")
		return
	}
	if _, err := Blend("bad", a, a, 1.1, nil); err == nil {
		tst.Errorf("Blend with w>1 must fail\n")
		return
	}

	// disjoint validity ranges
	c := newLiq("liqC", "cte", []float64{800})
	d := newLiq("liqD", "cte", []float64{700})
	if err := c.Set("rho", mfunc.MustNew("cte", []float64{800}, 300, 400)); err != nil {
		tst.Fatalf("Set failed: %v\n", err)
	}
	if err := d.Set("rho", mfunc.MustNew("cte", []float64{700}, 450, 600)); err != nil {
		tst.Fatalf("Set failed: %v\n", err)
	}
	if _, err := Blend("bad", c, d, 0.5, nil); err == nil {
		tst.Errorf("Blend over disjoint ranges must fail\n")
		return
	}

	// an explicit working range overrides the sources
	mix, err := Blend("ok", c, d, 0.5, &Opts{Np: 10, Pref: 101325, Tlo: 350, Thi: 500})
	if err != nil {
		tst.Errorf("Blend with explicit range failed: %v\n", err)
		return
	}
	v, err := mix.Rho(101325, 420)
	if err != nil {
		tst.Errorf("Rho failed: %v\n", err)
		return
	}
	chk.Float64(tst, "rho", 1e-12, v, 750)
}
