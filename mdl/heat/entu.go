// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heat

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// flow arrangements
const (
	Counterflow       = "counterflow"
	Parallelflow      = "parallel"
	Crossflow         = "crossflow" // both streams unmixed (plate default)
	CrossflowCmaxMix  = "crossflow-cmax-mixed"
	CrossflowCminMix  = "crossflow-cmin-mixed"
	crEqualTol        = 1e-6 // tolerance for the Cr → 1 counterflow limit
	crZeroTol         = 1e-6 // below this, one capacity is effectively infinite
)

// NTU returns the number of transfer units UA/Cmin [-]
func NTU(UA, Cmin float64) float64 {
	return UA / Cmin
}

// CapacityRatio returns Cr = Cmin/Cmax [-]
func CapacityRatio(cHot, cCold float64) float64 {
	return math.Min(cHot, cCold) / math.Max(cHot, cCold)
}

// Effectiveness evaluates the closed-form effectiveness relation of the
// given flow arrangement. For Cr → 0 (one side with effectively infinite
// capacity) the limiting form 1-exp(-NTU) applies to every arrangement.
func Effectiveness(arrangement string, ntu, cr float64) (float64, error) {
	if ntu < 0 {
		return 0, chk.Err("NTU must be non-negative; got %g", ntu)
	}
	if cr < 0 || cr > 1 {
		return 0, chk.Err("capacity ratio must be within [0,1]; got %g", cr)
	}
	if cr < crZeroTol {
		return 1.0 - math.Exp(-ntu), nil
	}
	switch arrangement {
	case Counterflow:
		if math.Abs(cr-1.0) < crEqualTol {
			return ntu / (1.0 + ntu), nil
		}
		e := math.Exp(-ntu * (1.0 - cr))
		return (1.0 - e) / (1.0 - cr*e), nil
	case Parallelflow:
		return (1.0 - math.Exp(-ntu*(1.0+cr))) / (1.0 + cr), nil
	case Crossflow:
		return 1.0 - math.Exp(math.Pow(ntu, 0.22)/cr*(math.Exp(-cr*math.Pow(ntu, 0.78))-1.0)), nil
	case CrossflowCmaxMix:
		return (1.0 - math.Exp(-cr*(1.0-math.Exp(-ntu)))) / cr, nil
	case CrossflowCminMix:
		return 1.0 - math.Exp(-(1.0-math.Exp(-cr*ntu))/cr), nil
	}
	return 0, chk.Err("flow arrangement %q is not available; options are %q, %q, %q, %q, and %q",
		arrangement, Counterflow, Parallelflow, Crossflow, CrossflowCmaxMix, CrossflowCminMix)
}
