// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gohx/mdl/air"
)

// Distribution computes mass-flow distributions over parallel channels
type Distribution struct {
	Nchannels int // number of parallel channels
}

// Uniform returns the uniform distribution of total [kg/s]
func (o Distribution) Uniform(total float64) []float64 {
	m := la.NewVector(o.Nchannels)
	m.Fill(total / float64(o.Nchannels))
	return m
}

// ByResistance distributes total [kg/s] inversely proportional to the
// hydraulic resistance of each channel
func (o Distribution) ByResistance(total float64, resistances []float64) ([]float64, error) {
	if len(resistances) != o.Nchannels {
		return nil, air.ValErr("need %d channel resistances; got %d", o.Nchannels, len(resistances))
	}
	g := make([]float64, o.Nchannels)
	var gsum float64
	for i, r := range resistances {
		if r <= 0 {
			return nil, air.ValErr("channel resistance must be positive; R[%d]=%g", i, r)
		}
		g[i] = 1.0 / r
		gsum += g[i]
	}
	m := make([]float64, o.Nchannels)
	for i := range m {
		m[i] = total * g[i] / gsum
	}
	return m, nil
}
