// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package heat implements convective heat transfer correlations and the
// effectiveness-NTU evaluation of heat exchangers
package heat

import (
	"math"

	"github.com/cpmech/gohx/mdl/air"
)

// Conductivity returns the thermal conductivity of air [W/(m・K)] at
// temperature T [°C]
func Conductivity(T float64) float64 {
	TK := T + 273.15
	return 0.0241 * math.Pow(TK/273.15, 0.9)
}

// Prandtl returns the Prandtl number from dynamic viscosity μ [Pa・s],
// specific heat cp [J/(kg・K)] and conductivity k [W/(m・K)]
func Prandtl(mu, cp, k float64) float64 {
	return mu * cp / k
}

// HTC returns the convective heat transfer coefficient [W/(m²・K)]
// h = Nu・k / Dh
func HTC(Nu, k, Dh float64) float64 {
	return Nu * k / Dh
}

// OverallU combines the film coefficients and the wall resistance in
// series (matched areas, no fouling):
//   1/U = 1/hHot + thickness/kWall + 1/hCold
func OverallU(hHot, hCold, thickness, kWall float64) (float64, error) {
	if hHot <= 0 || hCold <= 0 {
		return 0, air.ValErr("film coefficients must be positive: hHot=%g, hCold=%g", hHot, hCold)
	}
	return 1.0 / (1.0/hHot + thickness/kWall + 1.0/hCold), nil
}
