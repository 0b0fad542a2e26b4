// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify the
// effectiveness-NTU computations
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Lmtd returns the log-mean temperature difference of a counterflow
// exchanger given the four terminal temperatures [°C]. When the two
// terminal differences coincide the limit ΔTlm = ΔT applies.
func Lmtd(thIn, thOut, tcIn, tcOut float64) (float64, error) {
	dt1 := thIn - tcOut
	dt2 := thOut - tcIn
	if dt1 <= 0 || dt2 <= 0 {
		return 0, chk.Err("terminal temperature differences must be positive: ΔT1=%g, ΔT2=%g", dt1, dt2)
	}
	if math.Abs(dt1-dt2) < 1e-9 {
		return dt1, nil
	}
	return (dt1 - dt2) / math.Log(dt1/dt2), nil
}

// CounterflowEff returns the exact counterflow effectiveness; used to
// cross-check the closed forms in package heat
func CounterflowEff(ntu, cr float64) float64 {
	if cr < 1e-12 {
		return 1.0 - math.Exp(-ntu)
	}
	if math.Abs(cr-1.0) < 1e-12 {
		return ntu / (1.0 + ntu)
	}
	e := math.Exp(-ntu * (1.0 - cr))
	return (1.0 - e) / (1.0 - cr*e)
}
