// Copyright 2020 The Gofoam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// RunData holds the driver configuration read from a .run JSON file
type RunData struct {

	// global information
	Desc    string `json:"desc"`    // description of this run
	Matfile string `json:"matfile"` // materials file path, relative to the .run file
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/gofoam

	// table definition
	Material string  `json:"material"` // name of material to tabulate
	Pref     float64 `json:"pref"`     // reference pressure; 0 means atmospheric
	Tmin     float64 `json:"tmin"`     // lower temperature bound
	Tmax     float64 `json:"tmax"`     // upper temperature bound
	Np       int     `json:"np"`       // number of table rows; 0 means 11

	// derived
	Dir string // directory holding the .run file
}

// ReadRun reads the driver configuration from a .run JSON file
func ReadRun(runfilepath string) (o *RunData, err error) {

	// read file
	if _, e := os.Stat(runfilepath); e != nil {
		return nil, chk.Err("cannot open run file %q", runfilepath)
	}
	b := io.ReadFile(runfilepath)

	// decode
	o = new(RunData)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, err
	}
	o.Dir = filepath.Dir(runfilepath)

	// defaults
	if o.Pref <= 0 {
		o.Pref = 101325
	}
	if o.Np < 2 {
		o.Np = 11
	}
	if o.DirOut == "" {
		o.DirOut = "/tmp/gofoam"
	}

	// check
	if o.Matfile == "" {
		return nil, chk.Err("%q does not name a materials file", runfilepath)
	}
	if o.Material == "" {
		return nil, chk.Err("%q does not name a material to tabulate", runfilepath)
	}
	if o.Tmax <= o.Tmin {
		return nil, chk.Err("temperature range [%g, %g] is empty", o.Tmin, o.Tmax)
	}
	return
}
