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
	Register("h2o", newH2O)
}

// newH2O returns water with its full correlation set.
// Validity ranges span the liquid region at atmospheric pressure.
func newH2O() *Liquid {
	o := new(Liquid)
	err := o.Init("h2o", dbf.Params{
		&dbf.P{N: "W", V: 18.015},
		&dbf.P{N: "Tc", V: 647.13},
		&dbf.P{N: "Pc", V: 2.2055e7},
		&dbf.P{N: "Vc", V: 0.05595},
		&dbf.P{N: "Tb", V: 373.15},
	})
	if err != nil {
		chk.Panic("cannot initialise built-in liquid \"h2o\": %v", err)
	}
	o.mustSet("rho", "nsrds5", []float64{98.343885, 0.30542, 647.13, 0.081}, 273.16, 643.15)
	o.mustSet("pv", "nsrds1", []float64{73.649, -7258.2, -7.3037, 4.1653e-6, 2}, 273.16, 647.13)
	o.mustSet("hl", "nsrds6", []float64{647.13, 2.8894e6, 0.3199, -0.212, 0.25795, 0}, 273.16, 643.15)
	o.mustSet("cp", "nsrds0", []float64{15341.1, -116.02, 0.451013, -7.83569e-4, 5.20128e-7, 0}, 273.16, 533.15)
	o.mustSet("h", "nsrds0", []float64{-1.1342e7, 15341.1, -58.01, 0.150338, -1.95892e-4, 1.04026e-7}, 273.16, 533.15)
	o.mustSet("cpg", "nsrds7", []float64{1851.73, 1487.54, 2609.3, 493.367, 1167.6}, 273.16, 1073.15)
	o.mustSet("b", "nsrds4", []float64{0.0015, -0.497, -7.5e6, -2.9e19, 5.0e21}, 273.16, 647.13)
	o.mustSet("mu", "nsrds1", []float64{-51.964, 3670.6, 5.7331, -5.349e-29, 10}, 273.16, 643.15)
	o.mustSet("mug", "nsrds2", []float64{2.6986e-6, 0.498, 1257.7, -19570}, 273.16, 1073.15)
	o.mustSet("kappa", "nsrds0", []float64{-0.4267, 0.0056903, -8.0065e-6, 1.815e-9, 0, 0}, 273.16, 623.15)
	o.mustSet("kappag", "nsrds2", []float64{6.977e-5, 1.1243, 844.9, -148850}, 273.16, 1073.15)
	o.mustSet("sigma", "nsrds6", []float64{647.13, 0.18548, 2.717, -3.554, 2.047, 0}, 273.16, 643.15)
	o.mustSet("d", "apidiff", []float64{15.0, 15.0, 18.015, 28.85}, 273.16, 643.15)
	return o
}
