// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package air implements psychrometric models for humid air
package air

import "math"

// constants
const (
	StdPressure = 101325.0 // standard atmospheric pressure [Pa]
	Rdry        = 287.055  // gas constant of dry air [J/(kg・K)]
	CpAir       = 1.006    // specific heat of dry air [kJ/(kg・K)]
	CpVap       = 1.86     // specific heat of water vapour [kJ/(kg・K)]
	CpWat       = 4.186    // specific heat of liquid water [kJ/(kg・K)]
	Hfg0        = 2501.0   // latent heat of vaporisation at 0°C [kJ/kg]
	TripleP     = 611.21   // vapour pressure at the triple point [Pa]
)

// SatPressure computes the saturation pressure of water vapour [Pa] at
// temperature T [°C]. Magnus formulae are used over liquid (T ≥ 0) and ice
// (T < 0); outside -40°C to 80°C the Goff-Gratch equation takes over.
// Total function: defined for all finite T; accuracy degrades outside
// roughly -60°C to 60°C.
func SatPressure(T float64) float64 {
	if T < -40.0 || T > 80.0 {
		return satPressureGoffGratch(T)
	}
	if T >= 0 {
		return 610.78 * math.Exp(17.27*T/(T+237.3))
	}
	return 610.78 * math.Exp(21.875*T/(T+265.5))
}

// SatPressureDeriv computes dpsat/dT [Pa/K] of the Magnus branches
func SatPressureDeriv(T float64) float64 {
	ps := SatPressure(T)
	if T >= 0 {
		return ps * 17.27 * 237.3 / ((T + 237.3) * (T + 237.3))
	}
	return ps * 21.875 * 265.5 / ((T + 265.5) * (T + 265.5))
}

// SatTemperature inverts the Magnus formulae: returns the temperature [°C]
// at which pv [Pa] is the saturation pressure. The ice branch is selected
// below the triple point pressure.
func SatTemperature(pv float64) float64 {
	L := math.Log(pv / 610.78)
	if pv <= TripleP {
		return 265.5 * L / (21.875 - L)
	}
	return 237.3 * L / (17.27 - L)
}

// SatHumidityRatio computes the humidity ratio [kg/kg] of saturated air at
// temperature T [°C] and total pressure p [Pa]
func SatHumidityRatio(T, p float64) float64 {
	ps := SatPressure(T)
	return 0.622 * ps / (p - ps)
}

// SatHumidityRatioDeriv computes ∂wsat/∂T [1/K] at constant pressure
func SatHumidityRatioDeriv(T, p float64) float64 {
	ps := SatPressure(T)
	dps := SatPressureDeriv(T)
	return 0.622 * p * dps / ((p - ps) * (p - ps))
}

// satPressureGoffGratch computes the saturation pressure [Pa] with the
// Goff-Gratch equations for extreme temperatures (-100°C to 100°C)
func satPressureGoffGratch(T float64) float64 {
	TK := T + 273.15
	if T >= 0.01 {
		Ts := 373.16 // steam point [K]
		log10p := -7.90298*(Ts/TK-1.0) +
			5.02808*math.Log10(Ts/TK) -
			1.3816e-7*(math.Pow(10, 11.344*(1.0-TK/Ts))-1.0) +
			8.1328e-3*(math.Pow(10, -3.49149*(Ts/TK-1.0))-1.0) +
			math.Log10(1013.246)
		return 100.0 * math.Pow(10, log10p) // [mbar] to [Pa]
	}
	Ts := 273.16 // ice point [K]
	log10p := -9.09718*(Ts/TK-1.0) -
		3.56654*math.Log10(Ts/TK) +
		0.876793*(1.0-TK/Ts) +
		math.Log10(6.1071)
	return 100.0 * math.Pow(10, log10p)
}

// Enthalpy computes the specific enthalpy [kJ/kg dry air] of humid air at
// temperature T [°C] with humidity ratio w [kg/kg]:
//   h = cpa・T + w・(hfg0 + cpv・T)
func Enthalpy(T, w float64) float64 {
	return CpAir*T + w*(Hfg0+CpVap*T)
}

// TemperatureFromEnthalpy inverts Enthalpy for T [°C] given h [kJ/kg] and
// w [kg/kg]
func TemperatureFromEnthalpy(h, w float64) float64 {
	return (h - w*Hfg0) / (CpAir + CpVap*w)
}

// AtmosphericPressure computes the barometric pressure [Pa] at a given
// altitude [m] above sea level (standard atmosphere; valid up to ~11000m)
func AtmosphericPressure(altitude float64) float64 {
	return StdPressure * math.Pow(1.0-2.25577e-5*altitude, 5.25588)
}
