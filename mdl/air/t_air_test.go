// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package air

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

func Test_sat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sat01. saturation pressure")

	chk.Float64(tst, "psat(0)", 1e-10, SatPressure(0), 610.78)
	chk.Float64(tst, "psat(20)", 1.0, SatPressure(20), 2338.4)
	chk.Float64(tst, "psat(-10)", 1.0, SatPressure(-10), 259.5)

	// Goff-Gratch branch for extreme temperatures
	p90 := SatPressure(90.0)
	if p90 < 69000 || p90 > 71500 {
		tst.Errorf("psat(90) = %g Pa outside expected range\n", p90)
		return
	}

	// inverse consistency over both Magnus branches
	for _, T := range []float64{-30, -10, -1, 0, 1, 10, 25, 40} {
		chk.Float64(tst, io.Sf("Tsat(psat(%g))", T), 1e-8, SatTemperature(SatPressure(T)), T)
	}

	// analytic derivative vs numerical
	for _, T := range []float64{-20, -5, 5, 20, 40} {
		dana := SatPressureDeriv(T)
		dnum := num.DerivCen5(T, 1e-3, func(t float64) float64 {
			return SatPressure(t)
		})
		chk.Float64(tst, io.Sf("dpsat/dT(%g)", T), 1e-4*math.Abs(dana), dana, dnum)
	}
}

func Test_sat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sat02. barometric pressure")

	chk.Float64(tst, "p(0m)", 1e-10, AtmosphericPressure(0), 101325)
	chk.Float64(tst, "p(1000m)", 10.0, AtmosphericPressure(1000), 89875)
	p3000 := AtmosphericPressure(3000)
	if p3000 < 68000 || p3000 > 71000 {
		tst.Errorf("p(3000m) = %g Pa outside expected range\n", p3000)
	}
}

func Test_air01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("air01. comfort state 25°C / 60%RH")

	a, err := New(25.0, StdPressure, ByRelativeHumidity(60.0))
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	twb, err := a.WetBulb()
	if err != nil {
		tst.Errorf("WetBulb failed: %v\n", err)
		return
	}
	io.Pforan("w   = %v\n", a.HumidityRatio())
	io.Pforan("tdp = %v\n", a.DewPoint())
	io.Pforan("twb = %v\n", twb)
	io.Pforan("rho = %v\n", a.Density())
	io.Pforan("h   = %v\n", a.Enthalpy())

	chk.Float64(tst, "w", 1e-5, a.HumidityRatio(), 0.011891)
	chk.Float64(tst, "tdp", 0.1, a.DewPoint(), 16.7)
	chk.Float64(tst, "twb", 0.3, twb, 19.4)
	chk.Float64(tst, "rho", 1e-3, a.Density(), 1.1617)
	chk.Float64(tst, "h", 0.1, a.Enthalpy(), 55.4)
	chk.Float64(tst, "v", 1e-6, a.SpecificVolume()*a.Density(), 1.0)
}

func Test_air02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("air02. temperature ordering invariant")

	for T := 0.0; T <= 50.0; T += 5.0 {
		for _, rh := range []float64{5, 20, 40, 60, 80, 95} {
			a, err := New(T, StdPressure, ByRelativeHumidity(rh))
			if err != nil {
				tst.Errorf("New(%g,%g) failed: %v\n", T, rh, err)
				return
			}
			twb, err := a.WetBulb()
			if err != nil {
				tst.Errorf("WetBulb(%g,%g) failed: %v\n", T, rh, err)
				return
			}
			tdp := a.DewPoint()
			if !ConsistentTemps(T, twb, tdp) {
				tst.Errorf("ordering violated at T=%g rh=%g: tdp=%g twb=%g\n", T, rh, tdp, twb)
				return
			}
		}
	}
}

func Test_air03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("air03. roundtrips")

	// relative humidity roundtrip
	for _, rh := range []float64{10, 35.5, 60, 88.8, 100} {
		a, err := New(22.0, StdPressure, ByRelativeHumidity(rh))
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("rh=%g", rh), 1e-6, a.RelativeHumidity(), rh)
	}

	// wet-bulb roundtrip
	for _, tc := range [][]float64{{25, 19.4}, {30, 22}, {20, 15}, {35, 28}, {15, 12}} {
		T, wbIn := tc[0], tc[1]
		a, err := New(T, StdPressure, ByWetBulb(wbIn))
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		wbOut, err := a.WetBulb()
		if err != nil {
			tst.Errorf("WetBulb failed: %v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("T=%g wb=%g", T, wbIn), 0.01, wbOut, wbIn)
	}

	// dew-point roundtrip
	for _, tc := range [][]float64{{25, 16.7}, {30, 5}, {10, -5}} {
		T, dpIn := tc[0], tc[1]
		a, err := New(T, StdPressure, ByDewPoint(dpIn))
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("T=%g dp=%g", T, dpIn), 0.01, a.DewPoint(), dpIn)
	}
}

func Test_air04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("air04. saturation boundary")

	for _, T := range []float64{0, 10, 20, 25, 30, 40, 50} {
		a, err := New(T, StdPressure, ByRelativeHumidity(100.0))
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		twb, err := a.WetBulb()
		if err != nil {
			tst.Errorf("WetBulb failed: %v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("twb(T=%g)", T), 0.01, twb, T)
		chk.Float64(tst, io.Sf("tdp(T=%g)", T), 0.01, a.DewPoint(), T)
	}
}

func Test_air05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("air05. memoisation idempotence")

	a, err := New(25.0, StdPressure, ByRelativeHumidity(60.0))
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	twb1, _ := a.WetBulb()
	twb2, _ := a.WetBulb()
	if a.RelativeHumidity() != a.RelativeHumidity() ||
		a.DewPoint() != a.DewPoint() ||
		a.Density() != a.Density() ||
		a.Enthalpy() != a.Enthalpy() ||
		twb1 != twb2 {
		tst.Errorf("repeated property access must return bit-identical values\n")
	}
}

func Test_air06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("air06. input validation")

	var verr *ValidationError

	// wet-bulb above dry-bulb
	_, err := New(20.0, StdPressure, ByWetBulb(25.0))
	if !errors.As(err, &verr) {
		tst.Errorf("wet-bulb above dry-bulb must fail with ValidationError; got %v\n", err)
		return
	}

	// dew point above dry-bulb
	_, err = New(20.0, StdPressure, ByDewPoint(25.0))
	if !errors.As(err, &verr) {
		tst.Errorf("dew point above dry-bulb must fail with ValidationError; got %v\n", err)
		return
	}

	// supersaturated relative humidity
	_, err = New(20.0, StdPressure, ByRelativeHumidity(105.0))
	if !errors.As(err, &verr) {
		tst.Errorf("rh > 100 must fail with ValidationError; got %v\n", err)
		return
	}

	// negative humidity ratio
	_, err = New(20.0, StdPressure, ByHumidityRatio(-0.001))
	if !errors.As(err, &verr) {
		tst.Errorf("negative humidity ratio must fail with ValidationError; got %v\n", err)
		return
	}

	// non-finite input
	_, err = New(math.NaN(), StdPressure, ByRelativeHumidity(50.0))
	if !errors.As(err, &verr) {
		tst.Errorf("NaN temperature must fail with ValidationError; got %v\n", err)
		return
	}

	// missing humidity input
	_, err = New(20.0, StdPressure, HumiditySpec{})
	if !errors.As(err, &verr) {
		tst.Errorf("missing humidity input must fail with ValidationError; got %v\n", err)
		return
	}

	// out-of-range state
	_, err = New(150.0, StdPressure, ByRelativeHumidity(50.0))
	if !errors.As(err, &verr) {
		tst.Errorf("temperature outside absolute range must fail; got %v\n", err)
		return
	}

	// wet-bulb equal to dry-bulb is valid (saturated)
	a, err := New(25.0, StdPressure, ByWetBulb(25.0))
	if err != nil {
		tst.Errorf("wet-bulb equal to dry-bulb must be valid: %v\n", err)
		return
	}
	chk.Float64(tst, "rh at saturation", 0.1, a.RelativeHumidity(), 100.0)
}

func Test_air07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("air07. sub-zero dew point (ice branch)")

	a, err := New(5.0, StdPressure, ByRelativeHumidity(30.0))
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	tdp := a.DewPoint()
	io.Pforan("tdp = %v\n", tdp)
	if tdp >= 0 {
		tst.Errorf("dew point must be below zero for 5°C/30%%RH; got %g\n", tdp)
		return
	}

	// implied vapour pressure must match the ice branch
	pv := a.HumidityRatio() * a.Pressure() / (0.622 + a.HumidityRatio())
	chk.Float64(tst, "pv(tdp)", 1e-6*pv, SatPressure(tdp), pv)

	// extra accessors stay in physical ranges
	if a.SpecificHeatDryAir() < 1.0 || a.SpecificHeatDryAir() > 1.01 {
		tst.Errorf("cp dry air out of range: %g\n", a.SpecificHeatDryAir())
	}
	if a.LatentHeatVaporization() < 2480 || a.LatentHeatVaporization() > 2502 {
		tst.Errorf("latent heat out of range: %g\n", a.LatentHeatVaporization())
	}
	if !a.IsPhysicallyValid() {
		tst.Errorf("state must be physically valid\n")
	}
}

func Test_air08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("air08. wet-bulb error contract")

	// the solver must never leak a panic through WetBulb; failures
	// surface as ConvergenceError on the error return
	solve := func(T, rh float64) (twb float64, err error) {
		defer func() {
			if r := recover(); r != nil {
				tst.Fatalf("WetBulb(T=%g,rh=%g) panicked: %v\n", T, rh, r)
			}
		}()
		a, e := New(T, StdPressure, ByRelativeHumidity(rh))
		if e != nil {
			tst.Fatalf("New(%g,%g) failed: %v\n", T, rh, e)
		}
		return a.WetBulb()
	}

	var cerr *ConvergenceError
	for _, T := range []float64{-10, 0, 10, 25, 40, 55} {
		for _, rh := range []float64{1, 10, 30, 50, 70, 90, 99} {
			twb, err := solve(T, rh)
			if err != nil {
				if !errors.As(err, &cerr) {
					tst.Errorf("WetBulb(T=%g,rh=%g) returned a non-convergence error type: %v\n", T, rh, err)
				}
				continue
			}
			if twb > T || math.IsNaN(twb) {
				tst.Errorf("invalid wet-bulb at T=%g rh=%g: twb=%g\n", T, rh, twb)
				return
			}
		}
	}
}
