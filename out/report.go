// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out formats and saves analysis results
package out

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gohx/hx"
)

// StreamSummary holds the serialisable data of one outlet state
type StreamSummary struct {
	T   float64 `json:"t"`   // dry-bulb temperature [°C]
	W   float64 `json:"w"`   // humidity ratio [kg/kg]
	Rh  float64 `json:"rh"`  // relative humidity [%]
	Tdp float64 `json:"tdp"` // dew-point temperature [°C]
	H   float64 `json:"h"`   // specific enthalpy [kJ/kg]
}

// Summary holds the serialisable view of one analysis
type Summary struct {
	Q             float64       `json:"q"`             // heat transfer rate [W]
	Effectiveness float64       `json:"effectiveness"` // effectiveness [-]
	Ntu           float64       `json:"ntu"`           // number of transfer units [-]
	Cr            float64       `json:"cr"`            // capacity rate ratio [-]
	U             float64       `json:"u"`             // overall coefficient [W/(m²・K)]
	DpHot         float64       `json:"dphot"`         // hot-side pressure drop [Pa]
	DpCold        float64       `json:"dpcold"`        // cold-side pressure drop [Pa]
	Condensation  bool          `json:"condensation"`  // hot side condensed
	HotOut        StreamSummary `json:"hotout"`        // hot outlet
	ColdOut       StreamSummary `json:"coldout"`       // cold outlet
}

// NewSummary converts analysis results into their serialisable view
func NewSummary(res *hx.Results) *Summary {
	return &Summary{
		Q:             res.Q,
		Effectiveness: res.Effectiveness,
		Ntu:           res.Ntu,
		Cr:            res.Cr,
		U:             res.U,
		DpHot:         res.DpHot,
		DpCold:        res.DpCold,
		Condensation:  res.Condensation,
		HotOut: StreamSummary{
			T:   res.HotOut.Temperature(),
			W:   res.HotOut.HumidityRatio(),
			Rh:  res.HotOut.RelativeHumidity(),
			Tdp: res.HotOut.DewPoint(),
			H:   res.HotOut.Enthalpy(),
		},
		ColdOut: StreamSummary{
			T:   res.ColdOut.Temperature(),
			W:   res.ColdOut.HumidityRatio(),
			Rh:  res.ColdOut.RelativeHumidity(),
			Tdp: res.ColdOut.DewPoint(),
			H:   res.ColdOut.Enthalpy(),
		},
	}
}

// Report renders a human readable report of one analysis
func Report(res *hx.Results) string {
	l := io.Sf("heat transfer rate  Q     = %.1f W\n", res.Q)
	l += io.Sf("effectiveness       ε     = %.4f\n", res.Effectiveness)
	l += io.Sf("transfer units      NTU   = %.4f\n", res.Ntu)
	l += io.Sf("capacity ratio      Cr    = %.4f\n", res.Cr)
	l += io.Sf("overall coefficient U     = %.2f W/(m²・K)\n", res.U)
	l += io.Sf("hot outlet                = %.2f °C  (w = %.5f kg/kg, RH = %.1f %%)\n",
		res.HotOut.Temperature(), res.HotOut.HumidityRatio(), res.HotOut.RelativeHumidity())
	l += io.Sf("cold outlet               = %.2f °C  (w = %.5f kg/kg, RH = %.1f %%)\n",
		res.ColdOut.Temperature(), res.ColdOut.HumidityRatio(), res.ColdOut.RelativeHumidity())
	l += io.Sf("pressure drops            = %.1f / %.1f Pa (hot/cold)\n", res.DpHot, res.DpCold)
	if res.Condensation {
		l += "condensation on the hot side: outlet held at saturation\n"
	}
	return l
}

// Save writes the JSON summary of one analysis to dir/fn
func Save(dir, fn string, res *hx.Results) error {
	b, err := json.MarshalIndent(NewSummary(res), "", "  ")
	if err != nil {
		return chk.Err("cannot encode results: %v", err)
	}
	io.WriteFileD(dir, fn, bytes.NewBuffer(b))
	return nil
}
