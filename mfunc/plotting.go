// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfunc

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots a correlation function over [tmin, tmax] at reference
// pressure pref. Points outside the valid domain are skipped.
func Plot(o Function, pref, tmin, tmax float64, dirout, fnkey string, np int, withText bool) {
	T := utl.LinSpace(tmin, tmax, np)
	X := make([]float64, 0, np)
	Y := make([]float64, 0, np)
	for i := 0; i < np; i++ {
		y, err := o.F(pref, T[i])
		if err != nil {
			continue
		}
		X = append(X, T[i])
		Y = append(Y, y)
	}
	plt.Plot(X, Y, &plt.A{C: "b", Ls: "-", NoClip: true})
	if withText && len(X) > 0 {
		l := len(X) - 1
		plt.Text(X[0], Y[0], io.Sf("(%g, %g)", X[0], Y[0]), &plt.A{Ha: "left", C: "red", Fsz: 8})
		plt.Text(X[l], Y[l], io.Sf("(%g, %g)", X[l], Y[l]), &plt.A{Ha: "right", C: "red", Fsz: 8})
	}
	plt.Gll("$T$", io.Sf("$f_{%s}$", o.TypeName()), nil)
	plt.Save(dirout, fnkey)
}
