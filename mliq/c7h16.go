// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mliq

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// add liquid to factory
func init() {
	Register("c7h16", newC7H16)
}

// newC7H16 returns n-heptane with its full correlation set
func newC7H16() *Liquid {
	o := new(Liquid)
	err := o.Init("c7h16", dbf.Params{
		&dbf.P{N: "W", V: 100.204},
		&dbf.P{N: "Tc", V: 540.2},
		&dbf.P{N: "Pc", V: 2.74e6},
		&dbf.P{N: "Vc", V: 0.428},
		&dbf.P{N: "Tb", V: 371.6},
	})
	if err != nil {
		chk.Panic("cannot initialise built-in liquid \"c7h16\": %v", err)
	}
	o.mustSet("rho", "nsrds5", []float64{61.38910518, 0.26211, 540.2, 0.28141}, 182.57, 535.0)
	o.mustSet("pv", "nsrds1", []float64{87.829, -6996.4, -9.8802, 7.2099e-6, 2}, 182.57, 540.2)
	o.mustSet("hl", "nsrds6", []float64{540.2, 4.9912e5, 0.38795, 0, 0, 0}, 182.57, 535.0)
	o.mustSet("cp", "nsrds0", []float64{961.0, 3.47, 0.00289, 0, 0, 0}, 182.57, 520.0)
	o.mustSet("h", "nsrds0", []float64{-4.0e5, 961.0, 1.735, 9.6333e-4, 0, 0}, 182.57, 520.0)
	o.mustSet("cpg", "nsrds7", []float64{1365.7, 3537.1, 1670.1, 2477.5, 766.9}, 182.57, 1073.15)
	o.mustSet("b", "nsrds4", []float64{0.0015, -0.765, -3.84e7, -1.06e22, 8.86e23}, 182.57, 540.2)
	o.mustSet("mu", "nsrds1", []float64{-24.451, 1533.1, 2.0087, 0, 0}, 182.57, 535.0)
	o.mustSet("mug", "nsrds2", []float64{6.672e-8, 0.82837, 85.752, 0}, 182.57, 1073.15)
	o.mustSet("kappa", "nsrds0", []float64{0.215, -3.03e-4, 0, 0, 0, 0}, 182.57, 520.0)
	o.mustSet("kappag", "nsrds2", []float64{-0.070028, 0.38068, -7049.9, -2400500}, 250.0, 1073.15)
	o.mustSet("sigma", "nsrds6", []float64{540.2, 0.054143, 1.2512, 0, 0, 0}, 182.57, 535.0)
	o.mustSet("d", "apidiff", []float64{147.18, 20.1, 100.204, 28.85}, 182.57, 535.0)
	return o
}
