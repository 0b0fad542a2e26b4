// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package air

import "errors"

// Mix computes the state resulting from the adiabatic mixing of two humid
// air streams, conserving dry-air mass, water mass, and enthalpy:
//   wmix = (w1・m1 + w2・m2)/(m1+m2)
//   hmix = (h1・m1 + h2・m2)/(m1+m2)
// and the mixed temperature follows from inverting h(T,w). The mixed state
// takes the pressure of the first stream.
func Mix(a *MoistAir, ma float64, b *MoistAir, mb float64) (*MoistAir, error) {
	if ma <= 0 || mb <= 0 {
		return nil, ValErr("mass flows must be positive: m1=%g kg/s, m2=%g kg/s", ma, mb)
	}
	mt := ma + mb
	wmix := (a.HumidityRatio()*ma + b.HumidityRatio()*mb) / mt
	hmix := (a.Enthalpy()*ma + b.Enthalpy()*mb) / mt
	Tmix := TemperatureFromEnthalpy(hmix, wmix)
	return New(Tmix, a.Pressure(), ByHumidityRatio(wmix))
}

// SensibleCooling computes the outlet state of a sensible cooling (or
// heating) process: humidity ratio held fixed, temperature set to Tout
// [°C]. Fails with a ValidationError if the outlet would be supersaturated,
// which signals that latent cooling is physically required.
func SensibleCooling(inlet *MoistAir, Tout float64) (*MoistAir, error) {
	out, err := New(Tout, inlet.Pressure(), ByHumidityRatio(inlet.HumidityRatio()))
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return nil, ValErr("sensible cooling to %g°C implies condensation (dew point = %g°C); latent cooling required: %v", Tout, inlet.DewPoint(), err)
		}
		return nil, err
	}
	return out, nil
}
