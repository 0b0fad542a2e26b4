// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heat

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gohx/mdl/air"
	"github.com/cpmech/gohx/mdl/flow"
)

func Test_props01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("props01. conductivity, Prandtl number and film coefficient")

	chk.Float64(tst, "k(0)", 1e-15, Conductivity(0), 0.0241)
	chk.Float64(tst, "k(25)", 1e-5, Conductivity(25), 0.026076)
	if Conductivity(60) <= Conductivity(20) {
		tst.Errorf("conductivity must grow with temperature\n")
	}

	chk.Float64(tst, "Pr", 1e-12, Prandtl(1.8e-5, 1006, 0.026), 1.8e-5*1006/0.026)
	chk.Float64(tst, "h", 1e-12, HTC(30, 0.026, 0.006), 30.0*0.026/0.006)
}

func Test_props02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("props02. overall heat transfer coefficient")

	U, err := OverallU(100, 100, 0.0005, 16)
	if err != nil {
		tst.Errorf("OverallU failed: %v\n", err)
		return
	}
	chk.Float64(tst, "U", 1e-12, U, 1.0/(1.0/100+0.0005/16+1.0/100))

	// U is below both film coefficients
	U, err = OverallU(50, 200, 0.0005, 16)
	if err != nil {
		tst.Errorf("OverallU failed: %v\n", err)
		return
	}
	if U >= 50 {
		tst.Errorf("U must be smaller than the smallest film coefficient; U=%g\n", U)
	}

	var verr *air.ValidationError
	_, err = OverallU(-1, 100, 0.0005, 16)
	if err == nil || !errors.As(err, &verr) {
		tst.Errorf("non-positive film coefficient must fail with a validation error\n")
	}
}

func Test_nusselt01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nusselt01. regimes and correlation database")

	chk.String(tst, Regime(1000), Laminar)
	chk.String(tst, Regime(3000), Transitional)
	chk.String(tst, Regime(5000), Turbulent)

	for _, name := range []string{"smooth", "plate", "dittus", "gnielinski"} {
		corr, err := New(name)
		if err != nil {
			tst.Errorf("allocation of %q failed: %v\n", name, err)
			return
		}
		err = corr.Init(corr.GetPrms(true))
		if err != nil {
			tst.Errorf("Init of %q with example parameters failed: %v\n", name, err)
			return
		}
		Nu, err := corr.Nu(5000, 0.7)
		if err != nil {
			tst.Errorf("Nu of %q failed: %v\n", name, err)
			return
		}
		if Nu <= 0 {
			tst.Errorf("%q: Nu must be positive; got %g\n", name, Nu)
		}
		_, err = corr.Nu(-1, 0.7)
		if err == nil {
			tst.Errorf("%q: negative Re must fail\n", name)
		}
	}

	_, err := New("magic")
	if err == nil {
		tst.Errorf("unknown correlation must fail\n")
	}
}

func Test_nusselt02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nusselt02. correlation values")

	smooth, _ := New("smooth")
	smooth.Init(nil)
	Nu, _ := smooth.Nu(1000, 0.7)
	chk.Float64(tst, "smooth laminar", 1e-3, Nu, 9.322)
	Nu, _ = smooth.Nu(1e4, 0.7)
	chk.Float64(tst, "smooth turbulent", 1e-2, Nu, 40.675)

	plate, _ := New("plate")
	plate.Init(nil)
	Nu, _ = plate.Nu(500, 0.7)
	chk.Float64(tst, "plate low Re", 1e-3, Nu, 13.203)
	Nu, _ = plate.Nu(2000, 0.7)
	chk.Float64(tst, "plate high Re", 2e-2, Nu, 20.56)

	dittus, _ := New("dittus")
	dittus.Init(nil)
	Nu, _ = dittus.Nu(1e4, 0.7)
	chk.Float64(tst, "dittus heating", 1e-2, Nu, 31.61)

	// cooling uses the lower Prandtl exponent
	dittus.Init([]*dbf.P{&dbf.P{N: "heating", V: 0}})
	NuCool, _ := dittus.Nu(1e4, 0.7)
	if NuCool <= Nu {
		tst.Errorf("cooling exponent must raise Nu for Pr < 1\n")
	}

	// unknown parameter is rejected
	err := dittus.Init([]*dbf.P{&dbf.P{N: "bogus", V: 1}})
	if err == nil {
		tst.Errorf("unknown parameter must fail\n")
	}
}

func Test_nusselt03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nusselt03. Gnielinski consistency")

	g, _ := New("gnielinski")
	g.Init(nil)
	Re, Pr := 1e4, 0.7
	Nu, err := g.Nu(Re, Pr)
	if err != nil {
		tst.Errorf("Nu failed: %v\n", err)
		return
	}
	correct, _ := gnielinski(Re, Pr, flow.PetukhovFriction(Re))
	chk.Float64(tst, "gnielinski", 1e-14, Nu, correct)
	if Nu < 20 || Nu > 40 {
		tst.Errorf("Gnielinski out of expected band at Re=1e4, Pr=0.7: Nu=%g\n", Nu)
	}

	// no parameters accepted
	err = g.Init(g.GetPrms(true))
	if err != nil {
		tst.Errorf("empty parameter set must be accepted: %v\n", err)
	}
}
