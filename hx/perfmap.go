// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hx

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gohx/geo"
	"github.com/cpmech/gohx/mdl/air"
)

// PerfMap holds exchanger performance over a range of balanced mass flows
type PerfMap struct {
	Mflows []float64 // mass flows [kg/s]
	Q      []float64 // heat transfer rates [W]
	Eff    []float64 // effectivenesses [-]
	DpHot  []float64 // hot-side pressure drops [Pa]
	DpCold []float64 // cold-side pressure drops [Pa]
}

// PerformanceMap sweeps npts balanced mass flows within [mMin, mMax] and
// collects the exchanger performance at each point
func (o *Exchanger) PerformanceMap(hotIn, coldIn *air.MoistAir, mMin, mMax float64, npts int) (*PerfMap, error) {
	if mMin <= 0 || mMax <= mMin {
		return nil, air.ValErr("mass flow range [%g, %g] kg/s is invalid", mMin, mMax)
	}
	if npts < 2 {
		return nil, air.ValErr("performance map needs at least 2 points; got %d", npts)
	}
	pm := &PerfMap{
		Mflows: utl.LinSpace(mMin, mMax, npts),
		Q:      make([]float64, npts),
		Eff:    make([]float64, npts),
		DpHot:  make([]float64, npts),
		DpCold: make([]float64, npts),
	}
	for i, m := range pm.Mflows {
		res, err := o.Analyze(hotIn, coldIn, m, m)
		if err != nil {
			return nil, err
		}
		pm.Q[i] = res.Q
		pm.Eff[i] = res.Effectiveness
		pm.DpHot[i] = res.DpHot
		pm.DpCold[i] = res.DpCold
	}
	return pm, nil
}

// SizeForEffectiveness searches the plate count (5 to 49, odd steps)
// giving the effectiveness closest to the target and returns the
// corresponding core. The plate geometry and wall data are kept.
func (o *Exchanger) SizeForEffectiveness(hotIn, coldIn *air.MoistAir, mHot, mCold, target float64) (*geo.Core, error) {
	if target <= 0 || target >= 1 {
		return nil, air.ValErr("target effectiveness must be within (0,1); got %g", target)
	}
	bestN := o.Core.Nplates
	bestDiff := math.MaxFloat64
	for n := 5; n < 50; n += 2 {
		core, err := geo.NewCoreSplit(n, o.Core.Plate)
		if err != nil {
			return nil, err
		}
		trial := &Exchanger{
			Core:             core,
			WallThickness:    o.WallThickness,
			WallConductivity: o.WallConductivity,
			Arrangement:      o.Arrangement,
			Corr:             o.Corr,
		}
		res, err := trial.Analyze(hotIn, coldIn, mHot, mCold)
		if err != nil {
			return nil, err
		}
		diff := math.Abs(res.Effectiveness - target)
		if diff < bestDiff {
			bestN, bestDiff = n, diff
		}
		if diff < 0.01 {
			break
		}
	}
	return geo.NewCoreSplit(bestN, o.Core.Plate)
}
