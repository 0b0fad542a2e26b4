// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Core holds the plate stack of one exchanger
type Core struct {
	Nplates      int    // number of plates
	Plate        *Plate // plate geometry
	HotChannels  int    // number of hot-side channels
	ColdChannels int    // number of cold-side channels
}

// NewCore returns a plate stack after checking channel consistency:
// hot + cold channels must fill the nplates-1 gaps
func NewCore(nplates int, plate *Plate, hotChannels, coldChannels int) (*Core, error) {
	if hotChannels+coldChannels != nplates-1 {
		return nil, chk.Err("channel counts (%d hot + %d cold) must equal nplates-1 = %d", hotChannels, coldChannels, nplates-1)
	}
	if hotChannels < 1 || coldChannels < 1 {
		return nil, chk.Err("each side needs at least one channel; got %dH-%dC", hotChannels, coldChannels)
	}
	return &Core{Nplates: nplates, Plate: plate, HotChannels: hotChannels, ColdChannels: coldChannels}, nil
}

// NewCoreSplit returns a plate stack with the nplates-1 channels split as
// evenly as possible between the two sides
func NewCoreSplit(nplates int, plate *Plate) (*Core, error) {
	hot := (nplates - 1) / 2
	return NewCore(nplates, plate, hot, nplates-1-hot)
}

// TotalArea returns the total heat transfer area [m²]
func (o Core) TotalArea() float64 {
	return float64(o.Nplates-1) * o.Plate.EffectiveArea()
}

// HotFlowArea returns the hot-side flow area [m²]
func (o Core) HotFlowArea() float64 {
	return float64(o.HotChannels) * o.Plate.FlowArea()
}

// ColdFlowArea returns the cold-side flow area [m²]
func (o Core) ColdFlowArea() float64 {
	return float64(o.ColdChannels) * o.Plate.FlowArea()
}

// Config returns the channel configuration; e.g. "10H-10C"
func (o Core) Config() string {
	return io.Sf("%dH-%dC", o.HotChannels, o.ColdChannels)
}
