// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/lhp18/OpenFOAM-dev/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	runfile, fnkey := io.ArgToFilename(0, "data/idea", ".run", true)
	verbose := io.ArgToBool(1, true)
	writeMat := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nGofoam -- liquid thermophysical property tables\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"run file path", "runfile", runfile,
			"show messages", "verbose", verbose,
			"write material database back out", "writeMat", writeMat,
		))
	}

	// run data
	run, err := inp.ReadRun(runfile)
	if err != nil {
		chk.Panic("cannot read run file:\n%v", err)
	}

	// material database
	mdb, err := inp.ReadMat(run.Dir, run.Matfile)
	if err != nil {
		chk.Panic("cannot read materials file:\n%v", err)
	}
	mat := mdb.Get(run.Material)
	if mat == nil {
		chk.Panic("material %q is not in %q", run.Material, run.Matfile)
	}

	// property table
	liq := mat.Liq
	io.Pf("\nmaterial %q (W=%g, Tc=%g, Pc=%g, Vc=%g, Tb=%g)\n\n", liq.Name, liq.W, liq.Tc, liq.Pc, liq.Vc, liq.Tb)
	io.Pf("%10s%12s%12s%12s%12s%12s\n", "T", "rho", "pv", "cp", "mu", "sigma")
	T := utl.LinSpace(run.Tmin, run.Tmax, run.Np)
	for _, t := range T {
		l := io.Sf("%10.2f", t)
		for _, slot := range []string{"rho", "pv", "cp", "mu", "sigma"} {
			v, err := liq.Get(slot).F(run.Pref, t)
			if err != nil {
				l += io.Sf("%12s", "-")
				continue
			}
			l += io.Sf("%12.5g", v)
		}
		io.Pf("%s\n", l)
	}

	// write database back out
	if writeMat {
		fn := fnkey + "-out.mat"
		io.WriteStringToFileD(run.DirOut, fn, mdb.String())
		if verbose {
			io.Pf("\nfile <%s> written\n", filepath.Join(run.DirOut, fn))
		}
	}
}
