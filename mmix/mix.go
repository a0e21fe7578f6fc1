// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mmix builds mixture liquids by blending two source liquids
//
// Every correlation slot of the result is a re-fitted function of the same
// family approximating w·fa + (1-w)·fb pointwise over the overlap of the
// sources' validity ranges. The result therefore carries its own
// coefficient vector and round-trips through the input files like any
// other material; it is never a runtime average of two live evaluators.
//
// Shape coefficients that cannot be linearised are held at their
// fraction-weighted average during fitting: the exponent e of nsrds1
// (taken from the dominant source), c and d of nsrds2, nsrds3 and nsrds5,
// the critical temperature of nsrds6, and c and e of nsrds7. The apidiff
// and cte coefficients combine directly. Scalar constants: W and Tb are
// fraction-weighted averages; Tc, Pc and Vc take the smaller (more
// conservative) of the two sources.
package mmix

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/lhp18/OpenFOAM-dev/mfunc"
	"github.com/lhp18/OpenFOAM-dev/mliq"
)

// IncompatError indicates that the two sources bind different correlation
// families to the same property slot
type IncompatError struct {
	Slot string // property slot
	A, B string // family names of the two sources
}

func (e *IncompatError) Error() string {
	return io.Sf("property slot %q uses incompatible correlation families: %q vs %q", e.Slot, e.A, e.B)
}

// Opts holds the mixture fitting tunables
type Opts struct {
	Np       int     // number of temperature samples per slot
	Pref     float64 // reference pressure for sampling
	Tlo, Thi float64 // working range override; (0,0) derives it from the sources
}

// DefaultOpts returns the default fitting tunables: 50 samples at
// atmospheric pressure over the overlap of the sources' validity ranges
func DefaultOpts() *Opts {
	return &Opts{Np: 50, Pref: 101325}
}

// Blend returns a new liquid approximating the blend of fraction w of a
// with fraction (1-w) of b. Slots that are undefined in either source stay
// undefined in the result.
func Blend(name string, a, b *mliq.Liquid, w float64, opts *Opts) (res *mliq.Liquid, err error) {

	// arguments
	if w < 0 || w > 1 {
		return nil, chk.Err("blend fraction w=%g must be within [0, 1]", w)
	}
	if opts == nil {
		opts = DefaultOpts()
	}
	np := opts.Np
	if np < 2 {
		np = 50
	}
	pref := opts.Pref
	if pref <= 0 {
		pref = 101325
	}

	// scalar constants
	res = new(mliq.Liquid)
	err = res.Init(name, dbf.Params{
		&dbf.P{N: "W", V: w*a.W + (1-w)*b.W},
		&dbf.P{N: "Tc", V: utl.Min(a.Tc, b.Tc)},
		&dbf.P{N: "Pc", V: utl.Min(a.Pc, b.Pc)},
		&dbf.P{N: "Vc", V: utl.Min(a.Vc, b.Vc)},
		&dbf.P{N: "Tb", V: w*a.Tb + (1-w)*b.Tb},
	})
	if err != nil {
		return nil, err
	}

	// slots
	for _, slot := range mliq.Slots {
		fa := a.Get(slot)
		fb := b.Get(slot)
		_, aNone := fa.(*mfunc.None)
		_, bNone := fb.(*mfunc.None)
		if aNone || bNone {
			continue // stays none; fails on evaluation only
		}
		if fa.TypeName() != fb.TypeName() {
			return nil, &IncompatError{slot, fa.TypeName(), fb.TypeName()}
		}

		// working range
		tlo, thi, err := workRange(fa, fb, w, opts)
		if err != nil {
			return nil, chk.Err("cannot determine working range of slot %q of mixture %q: %v", slot, name, err)
		}

		// target curve
		T := utl.LinSpace(tlo, thi, np)
		y := make([]float64, np)
		for i, t := range T {
			va, err := fa.F(pref, t)
			if err != nil {
				return nil, chk.Err("cannot sample slot %q of %q at T=%g: %v", slot, a.Name, t, err)
			}
			vb, err := fb.F(pref, t)
			if err != nil {
				return nil, chk.Err("cannot sample slot %q of %q at T=%g: %v", slot, b.Name, t, err)
			}
			y[i] = w*va + (1-w)*vb
		}

		// re-fit
		var fcn mfunc.Function
		if fa.TypeName() == "table" {
			fcn, err = tableOf(T, y, tlo, thi)
		} else {
			var c []float64
			c, err = refit(fa, fb, w, T, y)
			if err == nil {
				fcn, err = mfunc.FromCoefs(fa.TypeName(), c, tlo, thi)
			}
		}
		if err != nil {
			return nil, chk.Err("cannot re-fit slot %q of mixture %q: %v", slot, name, err)
		}
		err = res.Set(slot, fcn)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// workRange derives the overlap of the sources' validity ranges, honouring
// the override in opts. Reduced-temperature families are additionally
// capped just below the blended critical temperature.
func workRange(fa, fb mfunc.Function, w float64, opts *Opts) (tlo, thi float64, err error) {
	tlo, thi = opts.Tlo, opts.Thi
	if tlo == 0 && thi == 0 {
		alo, ahi := fa.TempRange()
		blo, bhi := fb.TempRange()
		if ahi == 0 && alo == 0 {
			tlo, thi = blo, bhi
		} else if bhi == 0 && blo == 0 {
			tlo, thi = alo, ahi
		} else {
			tlo = utl.Max(alo, blo)
			thi = utl.Min(ahi, bhi)
		}
	}
	ca, cb := fa.Coefs(), fb.Coefs()
	switch fa.TypeName() {
	case "nsrds5":
		thi = utl.Min(thi, 0.999*(w*ca[2]+(1-w)*cb[2]))
	case "nsrds6":
		thi = utl.Min(thi, 0.999*(w*ca[0]+(1-w)*cb[0]))
	}
	if thi <= tlo {
		return 0, 0, chk.Err("validity ranges do not overlap; set Tlo and Thi explicitly")
	}
	return
}

// tableOf stores the sampled target curve directly as a table (the blend
// of two piecewise-linear functions is exact at the shared sample points)
func tableOf(T, y []float64, tlo, thi float64) (mfunc.Function, error) {
	var prms dbf.Params
	for i := range T {
		prms = append(prms, &dbf.P{N: io.Sf("t%d", i), V: T[i]})
		prms = append(prms, &dbf.P{N: io.Sf("v%d", i), V: y[i]})
	}
	prms = append(prms, &dbf.P{N: "tlow", V: tlo})
	prms = append(prms, &dbf.P{N: "thigh", V: thi})
	fcn, err := mfunc.New("table")
	if err != nil {
		return nil, err
	}
	if err = fcn.Init(prms); err != nil {
		return nil, err
	}
	return fcn, nil
}
