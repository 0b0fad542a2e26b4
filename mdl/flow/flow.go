// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flow implements duct-flow characteristics: viscosity, Reynolds
// numbers, friction factors and pressure drops in exchanger channels
package flow

import (
	"math"

	"github.com/cpmech/gohx/geo"
	"github.com/cpmech/gohx/mdl/air"
)

// regime thresholds (fixed; applied with no hysteresis)
const (
	ReLaminarMax = 2300.0 // upper Reynolds number of laminar duct flow
	ReTurbulent  = 4000.0 // lower Reynolds number of fully turbulent flow
)

// Calc computes flow characteristics for one humid-air stream
type Calc struct {
	Fluid *air.MoistAir // fluid state
}

// NewCalc returns a flow calculator bound to a fluid state
func NewCalc(fluid *air.MoistAir) *Calc {
	return &Calc{Fluid: fluid}
}

// DynamicViscosity returns μ [Pa・s] via Sutherland's law for air
func (o Calc) DynamicViscosity() float64 {
	T := o.Fluid.Temperature() + 273.15
	return 1.716e-5 * math.Pow(T/273.15, 1.5) * (273.15 + 110.4) / (T + 110.4)
}

// KinematicViscosity returns ν [m²/s]
func (o Calc) KinematicViscosity() float64 {
	return o.DynamicViscosity() / o.Fluid.Density()
}

// Reynolds computes the Reynolds number for velocity v [m/s] and
// characteristic length L [m]
func (o Calc) Reynolds(v, L float64) float64 {
	return v * L / o.KinematicViscosity()
}

// Velocity computes the mean channel velocity [m/s] from the mass flow
// [kg/s] and flow area [m²]
func (o Calc) Velocity(massflow, area float64) float64 {
	return massflow / (o.Fluid.Density() * area)
}

// FrictionFactor computes the Darcy friction factor of a duct:
// 64/Re when laminar, Colebrook-White otherwise
func (o Calc) FrictionFactor(Re, relRough float64) float64 {
	if Re < ReLaminarMax {
		return 64.0 / Re
	}
	return ColebrookWhite(Re, relRough)
}

// ColebrookWhite solves the Colebrook-White equation for the friction
// factor by bounded fixed-point iteration
func ColebrookWhite(Re, relRough float64) float64 {
	f := 0.02
	for it := 0; it < 10; it++ {
		fnew := math.Pow(-2.0*math.Log10(relRough/3.7+2.51/(Re*math.Sqrt(f))), -2.0)
		if math.Abs(fnew-f) < 1e-6 {
			return fnew
		}
		f = fnew
	}
	return f
}

// PetukhovFriction returns the smooth-duct friction factor
// f = (0.79 ln(Re) - 1.64)^-2
func PetukhovFriction(Re float64) float64 {
	d := 0.79*math.Log(Re) - 1.64
	return 1.0 / (d * d)
}

// PressureDropChannel computes the pressure drop [Pa] along a channel of
// length L [m] and hydraulic diameter Dh [m] with surface roughness [m]
func (o Calc) PressureDropChannel(v, L, Dh, roughness float64) float64 {
	Re := o.Reynolds(v, Dh)
	f := o.FrictionFactor(Re, roughness/Dh)
	return f * (L / Dh) * 0.5 * o.Fluid.Density() * v * v
}

// PressureDropPlate computes the pressure drop [Pa] across one corrugated
// plate passage using the plate friction correlation
func (o Calc) PressureDropPlate(v float64, plate *geo.Plate) float64 {
	Re := o.Reynolds(v, plate.HydraulicDiameter())
	f := plate.FrictionFactor(Re)
	return f * 0.5 * o.Fluid.Density() * v * v
}
