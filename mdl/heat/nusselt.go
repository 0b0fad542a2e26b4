// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heat

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gohx/mdl/flow"
)

// flow regimes
const (
	Laminar      = "laminar"
	Transitional = "transitional"
	Turbulent    = "turbulent"
)

// Regime classifies the flow regime by the Reynolds number. The
// thresholds are fixed constants applied with no hysteresis.
func Regime(Re float64) string {
	if Re < flow.ReLaminarMax {
		return Laminar
	}
	if Re < flow.ReTurbulent {
		return Transitional
	}
	return Turbulent
}

// Corr defines Nusselt number correlations
type Corr interface {
	Init(prms dbf.Params) error          // initialises this correlation
	GetPrms(example bool) dbf.Params     // gets (an example) of parameters
	Nu(Re, Pr float64) (float64, error) // computes the Nusselt number
}

// New returns a Nusselt correlation by name
func New(name string) (Corr, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("correlation %q is not available in 'heat' database", name)
	}
	return allocator(), nil
}

// allocators holds all available correlations
var allocators = map[string]func() Corr{}

// Smooth implements the default smooth-duct correlation set with a
// distinct closed form per regime:
//   laminar      Nu = cLam・Re^0.5・Pr^(1/3)
//   transitional Gnielinski with Petukhov friction
//   turbulent    Nu = cTur・Re^0.8・Pr^0.4
type Smooth struct {
	cLam float64 // laminar coefficient
	cTur float64 // turbulent coefficient
}

func init() {
	allocators["smooth"] = func() Corr { return new(Smooth) }
}

// Init initialises this structure
func (o *Smooth) Init(prms dbf.Params) (err error) {
	o.cLam, o.cTur = 0.332, 0.0296
	for _, p := range prms {
		switch p.N {
		case "clam":
			o.cLam = p.V
		case "ctur":
			o.cTur = p.V
		default:
			return chk.Err("smooth: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Smooth) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "clam", V: 0.332},
		&dbf.P{N: "ctur", V: 0.0296},
	}
}

// Nu computes the Nusselt number
func (o Smooth) Nu(Re, Pr float64) (float64, error) {
	if Re <= 0 || Pr <= 0 {
		return 0, chk.Err("Re and Pr must be positive: Re=%g, Pr=%g", Re, Pr)
	}
	switch Regime(Re) {
	case Laminar:
		return o.cLam * math.Sqrt(Re) * math.Cbrt(Pr), nil
	case Transitional:
		return gnielinski(Re, Pr, flow.PetukhovFriction(Re))
	}
	return o.cTur * math.Pow(Re, 0.8) * math.Pow(Pr, 0.4), nil
}

// PlateCorr implements the herringbone-plate correlation
type PlateCorr struct {
	cLow  float64 // coefficient below ReSwitch
	cHigh float64 // coefficient above ReSwitch
}

// ReSwitch is the regime boundary of the plate correlation
const ReSwitch = 1000.0

func init() {
	allocators["plate"] = func() Corr { return new(PlateCorr) }
}

// Init initialises this structure
func (o *PlateCorr) Init(prms dbf.Params) (err error) {
	o.cLow, o.cHigh = 0.665, 0.135
	for _, p := range prms {
		switch p.N {
		case "clow":
			o.cLow = p.V
		case "chigh":
			o.cHigh = p.V
		default:
			return chk.Err("plate: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o PlateCorr) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "clow", V: 0.665},
		&dbf.P{N: "chigh", V: 0.135},
	}
}

// Nu computes the Nusselt number
func (o PlateCorr) Nu(Re, Pr float64) (float64, error) {
	if Re <= 0 || Pr <= 0 {
		return 0, chk.Err("Re and Pr must be positive: Re=%g, Pr=%g", Re, Pr)
	}
	if Re < ReSwitch {
		return o.cLow * math.Sqrt(Re) * math.Cbrt(Pr), nil
	}
	return o.cHigh * math.Pow(Re, 0.68) * math.Pow(Pr, 0.4), nil
}

// DittusBoelter implements the Dittus-Boelter correlation for turbulent
// duct flow; the Prandtl exponent depends on whether the fluid is heated
type DittusBoelter struct {
	heating bool
}

func init() {
	allocators["dittus"] = func() Corr { return &DittusBoelter{heating: true} }
}

// Init initialises this structure
func (o *DittusBoelter) Init(prms dbf.Params) (err error) {
	o.heating = true
	for _, p := range prms {
		switch p.N {
		case "heating":
			o.heating = p.V > 0
		default:
			return chk.Err("dittus: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o DittusBoelter) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "heating", V: 1},
	}
}

// Nu computes the Nusselt number
func (o DittusBoelter) Nu(Re, Pr float64) (float64, error) {
	if Re <= 0 || Pr <= 0 {
		return 0, chk.Err("Re and Pr must be positive: Re=%g, Pr=%g", Re, Pr)
	}
	n := 0.4
	if !o.heating {
		n = 0.3
	}
	return 0.023 * math.Pow(Re, 0.8) * math.Pow(Pr, n), nil
}

// Gnielinski implements the Gnielinski correlation with Petukhov friction
type Gnielinski struct{}

func init() {
	allocators["gnielinski"] = func() Corr { return new(Gnielinski) }
}

// Init initialises this structure
func (o *Gnielinski) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("gnielinski: correlation has no parameters")
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Gnielinski) GetPrms(example bool) dbf.Params {
	return nil
}

// Nu computes the Nusselt number
func (o Gnielinski) Nu(Re, Pr float64) (float64, error) {
	if Re <= 0 || Pr <= 0 {
		return 0, chk.Err("Re and Pr must be positive: Re=%g, Pr=%g", Re, Pr)
	}
	return gnielinski(Re, Pr, flow.PetukhovFriction(Re))
}

// gnielinski evaluates the Gnielinski correlation with friction factor f
func gnielinski(Re, Pr, f float64) (float64, error) {
	den := 1.0 + 12.7*math.Sqrt(f/8.0)*(math.Pow(Pr, 2.0/3.0)-1.0)
	if math.Abs(den) < 1e-12 {
		return 0, chk.Err("gnielinski: denominator vanishes at Re=%g, Pr=%g", Re, Pr)
	}
	return (f / 8.0) * (Re - 1000.0) * Pr / den, nil
}
