// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfunc

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01. correlation plots")

	if !chk.Verbose {
		return
	}

	// water density and vapour pressure
	rho := MustNew("nsrds5", []float64{98.343885, 0.30542, 647.13, 0.081}, 273.16, 643.15)
	Plot(rho, 101325, 273.16, 643.15, "/tmp/gofoam", "plot-rho", 101, true)

	pv := MustNew("nsrds1", []float64{73.649, -7258.2, -7.3037, 4.1653e-6, 2}, 273.16, 647.13)
	Plot(pv, 101325, 273.16, 643.15, "/tmp/gofoam", "plot-pv", 101, true)
}
