// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package hx analyses plate heat exchangers by combining psychrometrics,
// flow characteristics and heat transfer correlations
package hx

import (
	"github.com/cpmech/gohx/geo"
	"github.com/cpmech/gohx/mdl/air"
	"github.com/cpmech/gohx/mdl/flow"
	"github.com/cpmech/gohx/mdl/heat"
)

// default wall data (stainless plate)
const (
	DefaultWallThickness    = 0.0005 // [m]
	DefaultWallConductivity = 16.0   // [W/(m・K)]
)

// Exchanger holds one plate heat exchanger ready for analysis
type Exchanger struct {
	Core             *geo.Core // plate stack geometry
	WallThickness    float64   // plate thickness [m]
	WallConductivity float64   // plate material conductivity [W/(m・K)]
	Arrangement      string    // flow arrangement; see package heat
	Corr             heat.Corr // Nusselt correlation
}

// Results holds the outcome of one analysis. Created once per Analyze
// call and never mutated.
type Results struct {
	Q             float64       // heat transfer rate [W]
	Effectiveness float64       // effectiveness [-]
	Ntu           float64       // number of transfer units [-]
	Cr            float64       // capacity rate ratio [-]
	U             float64       // overall heat transfer coefficient [W/(m²・K)]
	HtcHot        float64       // hot-side film coefficient [W/(m²・K)]
	HtcCold       float64       // cold-side film coefficient [W/(m²・K)]
	VelHot        float64       // hot-side channel velocity [m/s]
	VelCold       float64       // cold-side channel velocity [m/s]
	DpHot         float64       // hot-side pressure drop [Pa]
	DpCold        float64       // cold-side pressure drop [Pa]
	HotOut        *air.MoistAir // hot-side outlet state
	ColdOut       *air.MoistAir // cold-side outlet state
	Condensation  bool          // hot outlet fell below the inlet dew point
}

// NewExchanger returns an exchanger with default wall data, counterflow
// arrangement and the plate Nusselt correlation
func NewExchanger(core *geo.Core) (*Exchanger, error) {
	corr, err := heat.New("plate")
	if err != nil {
		return nil, err
	}
	err = corr.Init(nil)
	if err != nil {
		return nil, err
	}
	return &Exchanger{
		Core:             core,
		WallThickness:    DefaultWallThickness,
		WallConductivity: DefaultWallConductivity,
		Arrangement:      heat.Counterflow,
		Corr:             corr,
	}, nil
}

// Analyze performs the full analysis for the given inlet states and mass
// flows [kg/s]. Three sequential stages: film coefficients, e-NTU
// performance, outlet states. Any stage error aborts the call; partial
// results are never returned.
func (o *Exchanger) Analyze(hotIn, coldIn *air.MoistAir, mHot, mCold float64) (res *Results, err error) {

	if mHot <= 0 || mCold <= 0 {
		return nil, air.ValErr("mass flows must be positive: hot=%g kg/s, cold=%g kg/s", mHot, mCold)
	}

	// stage 1: film coefficients and overall U
	res = new(Results)
	hotCalc := flow.NewCalc(hotIn)
	coldCalc := flow.NewCalc(coldIn)
	res.VelHot = hotCalc.Velocity(mHot, o.Core.HotFlowArea())
	res.VelCold = coldCalc.Velocity(mCold, o.Core.ColdFlowArea())
	res.HtcHot, err = o.filmCoefficient(hotCalc, res.VelHot)
	if err != nil {
		return nil, err
	}
	res.HtcCold, err = o.filmCoefficient(coldCalc, res.VelCold)
	if err != nil {
		return nil, err
	}
	res.U, err = heat.OverallU(res.HtcHot, res.HtcCold, o.WallThickness, o.WallConductivity)
	if err != nil {
		return nil, err
	}

	// stage 2: e-NTU performance
	cHot := mHot * hotIn.SpecificHeatMoist()
	cCold := mCold * coldIn.SpecificHeatMoist()
	cMin := cHot
	if cCold < cMin {
		cMin = cCold
	}
	res.Ntu = heat.NTU(res.U*o.Core.TotalArea(), cMin)
	res.Cr = heat.CapacityRatio(cHot, cCold)
	res.Effectiveness, err = heat.Effectiveness(o.Arrangement, res.Ntu, res.Cr)
	if err != nil {
		return nil, err
	}

	// stage 3: heat duty and outlet states
	res.Q = res.Effectiveness * cMin * (hotIn.Temperature() - coldIn.Temperature())
	hotOutTemp := hotIn.Temperature() - res.Q/cHot
	coldOutTemp := coldIn.Temperature() + res.Q/cCold

	// hot side: condensation is flagged, not resolved; the outlet is then
	// held at saturation and the latent duty is NOT added to Q
	if hotOutTemp < hotIn.DewPoint() {
		res.Condensation = true
		res.HotOut, err = air.New(hotOutTemp, hotIn.Pressure(), air.ByRelativeHumidity(100.0))
	} else {
		res.HotOut, err = air.SensibleCooling(hotIn, hotOutTemp)
	}
	if err != nil {
		return nil, err
	}
	res.ColdOut, err = air.SensibleCooling(coldIn, coldOutTemp)
	if err != nil {
		return nil, err
	}

	// pressure drops
	res.DpHot = hotCalc.PressureDropPlate(res.VelHot, o.Core.Plate)
	res.DpCold = coldCalc.PressureDropPlate(res.VelCold, o.Core.Plate)
	return
}

// filmCoefficient computes the convective coefficient of one side
func (o *Exchanger) filmCoefficient(c *flow.Calc, vel float64) (float64, error) {
	Dh := o.Core.Plate.HydraulicDiameter()
	Re := c.Reynolds(vel, Dh)
	k := heat.Conductivity(c.Fluid.Temperature())
	Pr := heat.Prandtl(c.DynamicViscosity(), c.Fluid.SpecificHeatMoist(), k)
	Nu, err := o.Corr.Nu(Re, Pr)
	if err != nil {
		return 0, err
	}
	return heat.HTC(Nu, k, Dh), nil
}
