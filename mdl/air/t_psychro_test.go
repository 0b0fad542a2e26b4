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
)

func Test_mix01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mix01. adiabatic mixing conservation")

	a, err := New(25.0, StdPressure, ByRelativeHumidity(30.0))
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	b, err := New(15.0, StdPressure, ByRelativeHumidity(80.0))
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	for _, flows := range [][]float64{{1, 1}, {0.3, 2.7}, {5, 0.01}} {
		ma, mb := flows[0], flows[1]
		m, err := Mix(a, ma, b, mb)
		if err != nil {
			tst.Errorf("Mix failed: %v\n", err)
			return
		}

		// enthalpy and water mass conservation
		hsum := a.Enthalpy()*ma + b.Enthalpy()*mb
		wsum := a.HumidityRatio()*ma + b.HumidityRatio()*mb
		chk.Float64(tst, io.Sf("h (m1=%g m2=%g)", ma, mb), 1e-6*math.Abs(hsum), m.Enthalpy()*(ma+mb), hsum)
		chk.Float64(tst, io.Sf("w (m1=%g m2=%g)", ma, mb), 1e-12, m.HumidityRatio()*(ma+mb), wsum)

		// mixed temperature between inlet temperatures
		if m.Temperature() <= b.Temperature() || m.Temperature() >= a.Temperature() {
			tst.Errorf("mixed temperature %g°C outside (%g, %g)\n", m.Temperature(), b.Temperature(), a.Temperature())
			return
		}
	}
}

func Test_mix02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mix02. invalid flows")

	a, _ := New(25.0, StdPressure, ByRelativeHumidity(30.0))
	b, _ := New(15.0, StdPressure, ByRelativeHumidity(80.0))

	var verr *ValidationError
	for _, flows := range [][]float64{{0, 1}, {1, 0}, {-1, 1}, {1, -0.5}} {
		_, err := Mix(a, flows[0], b, flows[1])
		if !errors.As(err, &verr) {
			tst.Errorf("non-positive flow (%g, %g) must fail with ValidationError; got %v\n", flows[0], flows[1], err)
			return
		}
	}
}

func Test_cool01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cool01. sensible cooling")

	inlet, err := New(30.0, StdPressure, ByRelativeHumidity(50.0))
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	io.Pforan("dew point = %v\n", inlet.DewPoint())

	// cooling above the dew point keeps the humidity ratio
	out, err := SensibleCooling(inlet, 20.0)
	if err != nil {
		tst.Errorf("SensibleCooling failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Tout", 1e-15, out.Temperature(), 20.0)
	chk.Float64(tst, "w", 1e-15, out.HumidityRatio(), inlet.HumidityRatio())
	if out.RelativeHumidity() <= inlet.RelativeHumidity() {
		tst.Errorf("cooling must raise the relative humidity\n")
		return
	}

	// heating works too
	hot, err := SensibleCooling(inlet, 40.0)
	if err != nil {
		tst.Errorf("sensible heating failed: %v\n", err)
		return
	}
	chk.Float64(tst, "w heat", 1e-15, hot.HumidityRatio(), inlet.HumidityRatio())
}

func Test_cool02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cool02. cooling below dew point fails")

	inlet, err := New(30.0, StdPressure, ByRelativeHumidity(50.0))
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	// dew point of 30°C/50%RH is about 18.4°C; cooling to 15°C implies
	// condensation and must be reported, not silently corrected
	var verr *ValidationError
	_, err = SensibleCooling(inlet, 15.0)
	if !errors.As(err, &verr) {
		tst.Errorf("cooling below dew point must fail with ValidationError; got %v\n", err)
	}
}
