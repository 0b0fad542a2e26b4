// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package air

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
)

// validity ranges
const (
	TempMin    = -100.0    // absolute minimum temperature [°C]
	TempMax    = 100.0     // absolute maximum temperature [°C]
	TempMinOpt = -20.0     // lower bound of optimal accuracy [°C]
	TempMaxOpt = 60.0      // upper bound of optimal accuracy [°C]
	PresMin    = 10000.0   // absolute minimum pressure [Pa]
	PresMax    = 1000000.0 // absolute maximum pressure [Pa]
	PresMinOpt = 80000.0   // lower bound of optimal accuracy [Pa]
	PresMaxOpt = 120000.0  // upper bound of optimal accuracy [Pa]
	WMax       = 0.030     // practical maximum humidity ratio [kg/kg]
)

// WetBulbMaxIt caps the iterations of the wet-bulb Newton solve
const WetBulbMaxIt = 50

// humidity input kinds
const (
	byHumidityRatio = iota + 1
	byRelativeHumidity
	byWetBulb
	byDewPoint
)

// HumiditySpec selects which single humidity quantity defines a MoistAir
// state. Exactly one quantity is carried, so "exactly one humidity input"
// is guaranteed structurally.
type HumiditySpec struct {
	kind  int
	value float64
}

// ByHumidityRatio specifies the state via humidity ratio w [kg/kg]
func ByHumidityRatio(w float64) HumiditySpec { return HumiditySpec{byHumidityRatio, w} }

// ByRelativeHumidity specifies the state via relative humidity [%]
func ByRelativeHumidity(rh float64) HumiditySpec { return HumiditySpec{byRelativeHumidity, rh} }

// ByWetBulb specifies the state via wet-bulb temperature [°C]
func ByWetBulb(twb float64) HumiditySpec { return HumiditySpec{byWetBulb, twb} }

// ByDewPoint specifies the state via dew-point temperature [°C]
func ByDewPoint(tdp float64) HumiditySpec { return HumiditySpec{byDewPoint, tdp} }

// MoistAir holds one humid-air state. Instances are immutable once
// constructed; derived properties are computed on first access and cached.
// The caches hold deterministic values, so concurrent first access may
// recompute redundantly but always stores the same result.
type MoistAir struct {

	// state
	t   float64 // dry-bulb temperature [°C]
	p   float64 // total pressure [Pa]
	w   float64 // humidity ratio [kg water / kg dry air]
	eng Engine  // optional property back end; nil means built-in

	// memoized derived properties
	mrh  *float64 // relative humidity [%]
	mtdp *float64 // dew point [°C]
	mtwb *float64 // wet-bulb temperature [°C]
	mrho *float64 // density [kg/m³]
	mh   *float64 // enthalpy [kJ/kg dry air]
}

// New creates a humid-air state from dry-bulb temperature T [°C], total
// pressure p [Pa] (use StdPressure for 1 atm) and one humidity input.
// Built-in ASHRAE correlations are used for all derived properties.
func New(T, p float64, hum HumiditySpec) (*MoistAir, error) {
	return NewWithEngine(T, p, hum, nil)
}

// NewWithEngine is like New but attaches a property engine; see NewEngine.
// A nil engine means the built-in correlations.
func NewWithEngine(T, p float64, hum HumiditySpec, eng Engine) (o *MoistAir, err error) {

	// validate state inputs
	if !isFinite(T) || !isFinite(p) || !isFinite(hum.value) {
		return nil, ValErr("non-finite input: T=%v p=%v humidity=%v", T, p, hum.value)
	}
	if T < TempMin || T > TempMax {
		return nil, ValErr("temperature %g°C outside absolute range (%g°C to %g°C)", T, TempMin, TempMax)
	}
	if p < PresMin || p > PresMax {
		return nil, ValErr("pressure %g kPa outside absolute range (%g to %g kPa)", p/1000.0, PresMin/1000.0, PresMax/1000.0)
	}

	// resolve humidity ratio
	o = &MoistAir{t: T, p: p, eng: eng}
	switch hum.kind {
	case byHumidityRatio:
		if hum.value < 0 {
			return nil, ValErr("humidity ratio cannot be negative: %g", hum.value)
		}
		o.w = hum.value
	case byRelativeHumidity:
		if hum.value < 0 || hum.value > 100.0 {
			return nil, ValErr("relative humidity %g%% outside 0-100%%", hum.value)
		}
		pv := hum.value / 100.0 * SatPressure(T)
		o.w = 0.622 * pv / (p - pv)
	case byWetBulb:
		o.w, err = humidityRatioFromWetBulb(T, hum.value, p)
		if err != nil {
			return nil, err
		}
	case byDewPoint:
		if hum.value > T+0.01 {
			return nil, ValErr("dew point (%g°C) cannot exceed dry-bulb temperature (%g°C)", hum.value, T)
		}
		ps := SatPressure(hum.value)
		o.w = 0.622 * ps / (p - ps)
	default:
		return nil, ValErr("humidity input is missing; use ByHumidityRatio, ByRelativeHumidity, ByWetBulb or ByDewPoint")
	}

	// reject supersaturation (small margin for roundoff only)
	if rh := o.RelativeHumidity(); rh > 100.0+1e-6 {
		return nil, ValErr("state is supersaturated: relative humidity = %g%% at %g°C", rh, T)
	}
	return
}

// humidityRatioFromWetBulb solves the ASHRAE enthalpy balance
//   h(T,w) = h(Twb,wsat(Twb)) + (wsat(Twb) - w)・cpw・(T - Twb)
// for w. The balance is linear in w, so the Newton step is exact.
func humidityRatioFromWetBulb(T, twb, p float64) (float64, error) {
	if twb > T+0.01 {
		return 0, ValErr("wet-bulb temperature (%g°C) cannot exceed dry-bulb temperature (%g°C)", twb, T)
	}
	wsat := SatHumidityRatio(twb, p)
	if math.Abs(T-twb) < 0.01 { // saturated
		return wsat, nil
	}
	dt := T - twb
	hwb := Enthalpy(twb, wsat)
	w := (hwb + wsat*CpWat*dt - CpAir*T) / (Hfg0 + CpVap*T + CpWat*dt)
	if w < 0 {
		w = 0
	}
	if w > wsat {
		w = wsat
	}
	return w, nil
}

// Temperature returns the dry-bulb temperature [°C]
func (o *MoistAir) Temperature() float64 { return o.t }

// Pressure returns the total pressure [Pa]
func (o *MoistAir) Pressure() float64 { return o.p }

// HumidityRatio returns the humidity ratio [kg water / kg dry air]
func (o *MoistAir) HumidityRatio() float64 { return o.w }

// RelativeHumidity returns the relative humidity [%]
func (o *MoistAir) RelativeHumidity() float64 {
	if o.mrh != nil {
		return *o.mrh
	}
	var rh float64
	if ps, ok := o.engineProps(); ok {
		rh = ps.Rh
	} else {
		pv := o.w * o.p / (0.622 + o.w)
		rh = 100.0 * pv / SatPressure(o.t)
	}
	o.mrh = &rh
	return rh
}

// DewPoint returns the dew-point temperature [°C]: the saturation
// temperature at the vapour pressure implied by the humidity ratio
func (o *MoistAir) DewPoint() float64 {
	if o.mtdp != nil {
		return *o.mtdp
	}
	var tdp float64
	if ps, ok := o.engineProps(); ok {
		tdp = ps.Tdp
	} else {
		pv := o.w * o.p / (0.622 + o.w)
		if pv < 1e-6 { // essentially dry air
			tdp = TempMin
		} else {
			tdp = SatTemperature(pv)
		}
	}
	o.mtdp = &tdp
	return tdp
}

// WetBulb returns the wet-bulb temperature [°C]. A Newton-Raphson solve of
// the enthalpy balance with analytic Jacobian; hard iteration cap
// WetBulbMaxIt bounds the worst case.
func (o *MoistAir) WetBulb() (float64, error) {
	if o.mtwb != nil {
		return *o.mtwb, nil
	}
	var twb float64
	if ps, ok := o.engineProps(); ok {
		twb = ps.Twb
	} else {
		var err error
		twb, err = o.solveWetBulb()
		if err != nil {
			return 0, err
		}
	}
	o.mtwb = &twb
	return twb, nil
}

// solveWetBulb finds Twb such that the enthalpy balance holds
func (o *MoistAir) solveWetBulb() (twb float64, err error) {

	// saturated air: wet-bulb equals dry-bulb
	if o.RelativeHumidity() >= 99.9 {
		return o.t, nil
	}

	// residual and derivative of the balance
	//   f(t) = h(T,w) - h(t,wsat(t)) - (wsat(t) - w)・cpw・(T - t)
	h := Enthalpy(o.t, o.w)
	ffcn := func(fx, x la.Vector) {
		t := x[0]
		ws := SatHumidityRatio(t, o.p)
		fx[0] = h - Enthalpy(t, ws) - (ws-o.w)*CpWat*(o.t-t)
	}
	Jfcn := func(dfdx *la.Matrix, x la.Vector) {
		t := x[0]
		ws := SatHumidityRatio(t, o.p)
		dws := SatHumidityRatioDeriv(t, o.p)
		dfdx.Set(0, 0, -(CpAir+dws*(Hfg0+CpVap*t)+CpVap*ws)-dws*CpWat*(o.t-t)+(ws-o.w)*CpWat)
	}

	// solve with initial guess between dew point and dry-bulb. Solve panics
	// when the iteration cap is hit; recover it into a ConvergenceError so
	// callers keep the error-return contract.
	tdp := o.DewPoint()
	x := la.Vector{tdp + 0.33*(o.t-tdp)}
	var nls num.NlSolver
	defer nls.Free()
	nls.Init(1, ffcn, nil, Jfcn, true, false, map[string]float64{
		"maxIt": WetBulbMaxIt,
		"ftol":  1e-8,
	})
	err = func() (e error) {
		defer func() {
			if r := recover(); r != nil {
				e = ConvErr("wet-bulb solve did not converge within %d iterations (T=%g°C, w=%g): %v", WetBulbMaxIt, o.t, o.w, r)
			}
		}()
		nls.Solve(x, true)
		return
	}()
	if err != nil {
		return 0, err
	}

	// keep within physical bounds
	twb = x[0]
	if twb > o.t {
		twb = o.t
	}
	if twb < tdp {
		twb = tdp
	}
	return
}

// Density returns the density of the humid air [kg/m³]
func (o *MoistAir) Density() float64 {
	if o.mrho != nil {
		return *o.mrho
	}
	var rho float64
	if ps, ok := o.engineProps(); ok {
		rho = ps.Rho
	} else {
		rho = o.p / (Rdry * (o.t + 273.15) * (1.0 + 1.608*o.w))
	}
	o.mrho = &rho
	return rho
}

// SpecificVolume returns the specific volume [m³/kg]
func (o *MoistAir) SpecificVolume() float64 {
	return 1.0 / o.Density()
}

// Enthalpy returns the specific enthalpy [kJ/kg dry air]
func (o *MoistAir) Enthalpy() float64 {
	if o.mh != nil {
		return *o.mh
	}
	var h float64
	if ps, ok := o.engineProps(); ok {
		h = ps.H
	} else {
		h = Enthalpy(o.t, o.w)
	}
	o.mh = &h
	return h
}

// SpecificHeatDryAir returns the temperature-dependent specific heat of
// dry air [kJ/(kg・K)] (polynomial fit to NIST data)
func (o *MoistAir) SpecificHeatDryAir() float64 {
	T := o.t + 273.15
	return 1.030356 - 0.00028470*T + 7.8163e-7*T*T - 4.2773e-10*T*T*T
}

// SpecificHeatWaterVapor returns the temperature-dependent specific heat
// of water vapour [kJ/(kg・K)] (polynomial fit to NIST data)
func (o *MoistAir) SpecificHeatWaterVapor() float64 {
	T := o.t + 273.15
	return 1.3605 + 2.31334e-3*T - 2.46784e-10*T*T + 5.91332e-13*T*T*T
}

// LatentHeatVaporization returns the temperature-dependent latent heat of
// vaporisation [kJ/kg]
func (o *MoistAir) LatentHeatVaporization() float64 {
	return 2501.3 - 2.361*o.t
}

// SpecificHeatMoist returns the specific heat of the humid mixture
// [J/(kg・K)] used for capacity rates
func (o *MoistAir) SpecificHeatMoist() float64 {
	return 1006.0 + 1860.0*o.w
}

// IsPhysicallyValid checks the basic consistency of this state
func (o *MoistAir) IsPhysicallyValid() bool {
	rh := o.RelativeHumidity()
	if rh < 0 || rh > 100.0+1e-6 {
		return false
	}
	if o.w < 0 {
		return false
	}
	twb, err := o.WetBulb()
	if err != nil {
		return false
	}
	return ConsistentTemps(o.t, twb, o.DewPoint())
}

// ValidationWarnings returns descriptive warnings for values outside the
// optimal accuracy ranges. Empty slice means no warnings.
func (o *MoistAir) ValidationWarnings() (res []string) {
	if o.t < TempMinOpt || o.t > TempMaxOpt {
		res = append(res, io.Sf("temperature %g°C outside optimal range (%g°C to %g°C)", o.t, TempMinOpt, TempMaxOpt))
	}
	if o.p < PresMinOpt || o.p > PresMaxOpt {
		res = append(res, io.Sf("pressure %g kPa outside optimal range (%g to %g kPa)", o.p/1000.0, PresMinOpt/1000.0, PresMaxOpt/1000.0))
	}
	if o.w > WMax {
		res = append(res, io.Sf("humidity ratio %.4f kg/kg above practical limit (%g kg/kg)", o.w, WMax))
	}
	return
}

// engineProps queries the optional engine; ok=false means built-in
func (o *MoistAir) engineProps() (*Props, bool) {
	if o.eng == nil {
		return nil, false
	}
	return o.eng.Properties(o.t, o.p, o.w)
}

// ConsistentTemps checks the physical ordering tdp ≤ twb ≤ T with a small
// tolerance
func ConsistentTemps(T, twb, tdp float64) bool {
	const tol = 0.01 // [°C]
	return tdp <= twb+tol && twb <= T+tol
}

// isFinite returns true unless x is NaN or ±Inf
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
