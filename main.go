// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gohx/inp"
	"github.com/cpmech/gohx/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "simple", ".hx", true)
	verbose := io.ArgToBool(1, true)
	saveJson := io.ArgToBool(2, true)
	dirout := io.ArgToString(3, "/tmp/gohx")

	// message
	if verbose {
		io.PfWhite("\nGohx -- Plate Heat Exchanger Analysis for Humid Air\n")
		io.Pf("Copyright 2016 The Gohx Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"save json summary", "saveJson", saveJson,
			"output directory", "dirout", dirout,
		))
	}

	// read case
	c, err := inp.ReadCase(filepath.Dir(fnamepath), filepath.Base(fnamepath))
	if err != nil {
		chk.Panic("cannot read case file:\n%v", err)
	}

	// run analysis
	res, err := c.Run()
	if err != nil {
		chk.Panic("analysis failed:\n%v", err)
	}

	// results
	if verbose {
		io.Pf("\n%v", out.Report(res))
	}
	if saveJson {
		err = out.Save(dirout, fnkey+".json", res)
		if err != nil {
			chk.Panic("cannot save summary:\n%v", err)
		}
		if verbose {
			io.Pf("file <%s> written\n", filepath.Join(dirout, fnkey+".json"))
		}
	}
}
