// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the reading of simulation case files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gohx/geo"
	"github.com/cpmech/gohx/hx"
	"github.com/cpmech/gohx/mdl/air"
	"github.com/cpmech/gohx/mdl/heat"
)

// StreamData holds one inlet stream. Exactly one of the humidity fields
// (rh, w, twb, tdp) must be present.
type StreamData struct {
	T    float64  `json:"t"`    // dry-bulb temperature [°C]
	P    float64  `json:"p"`    // pressure [Pa]; 0 means standard atmosphere
	Mdot float64  `json:"mdot"` // mass flow [kg/s]
	Rh   *float64 `json:"rh"`   // relative humidity [%]
	W    *float64 `json:"w"`    // humidity ratio [kg/kg]
	Twb  *float64 `json:"twb"`  // wet-bulb temperature [°C]
	Tdp  *float64 `json:"tdp"`  // dew-point temperature [°C]
}

// GeomData holds the core geometry. A preset size or explicit plate
// dimensions; explicit dimensions win when both are present.
type GeomData struct {
	Size          string  `json:"size"`          // preset plate size; see geo.StandardSizes
	Nplates       int     `json:"nplates"`       // number of plates
	HotChannels   int     `json:"hotchannels"`   // hot channels; 0 means even split
	ColdChannels  int     `json:"coldchannels"`  // cold channels; 0 means even split
	Length        float64 `json:"length"`        // explicit plate length [m]
	Width         float64 `json:"width"`         // explicit plate width [m]
	Thickness     float64 `json:"thickness"`     // explicit plate thickness [m]
	ChannelHeight float64 `json:"channelheight"` // explicit channel gap [m]
}

// WallData holds the separating wall properties
type WallData struct {
	Thickness    float64 `json:"thickness"`    // wall thickness [m]
	Conductivity float64 `json:"conductivity"` // wall conductivity [W/(m・K)]
}

// Case holds one simulation case read from a .hx JSON file
type Case struct {

	// input
	Name        string     `json:"name"`        // case name
	Geometry    GeomData   `json:"geometry"`    // core geometry
	Wall        WallData   `json:"wall"`        // wall data; zero values keep the defaults
	Arrangement string     `json:"arrangement"` // flow arrangement; empty means counterflow
	Correlation string     `json:"correlation"` // Nusselt correlation; empty means "plate"
	Engine      string     `json:"engine"`      // property engine; empty means built-in
	Hot         StreamData `json:"hot"`         // hot inlet
	Cold        StreamData `json:"cold"`        // cold inlet

	// derived
	eng air.Engine
}

// ReadCase reads a case from a .hx JSON file
func ReadCase(dir, fn string) (c *Case, err error) {

	// io.ReadFile panics on a missing file, so check existence first and
	// keep broken paths on the error-return contract
	c = new(Case)
	path := filepath.Join(dir, fn)
	if _, err = os.Stat(path); err != nil {
		return nil, chk.Err("cannot open case file %q: %v", path, err)
	}
	b := io.ReadFile(path)
	err = json.Unmarshal(b, c)
	if err != nil {
		return nil, chk.Err("cannot parse case file %q: %v", fn, err)
	}

	// defaults
	if c.Arrangement == "" {
		c.Arrangement = heat.Counterflow
	}
	if c.Correlation == "" {
		c.Correlation = "plate"
	}
	c.eng = air.NewEngine(c.Engine)

	// early humidity check so that broken cases fail on read, not on use
	for _, s := range []*StreamData{&c.Hot, &c.Cold} {
		if _, err = s.humidity(); err != nil {
			return nil, err
		}
	}
	return
}

// humidity returns the humidity specification of this stream
func (o StreamData) humidity() (air.HumiditySpec, error) {
	n := 0
	var spec air.HumiditySpec
	if o.Rh != nil {
		n++
		spec = air.ByRelativeHumidity(*o.Rh)
	}
	if o.W != nil {
		n++
		spec = air.ByHumidityRatio(*o.W)
	}
	if o.Twb != nil {
		n++
		spec = air.ByWetBulb(*o.Twb)
	}
	if o.Tdp != nil {
		n++
		spec = air.ByDewPoint(*o.Tdp)
	}
	if n != 1 {
		return spec, air.ValErr("stream needs exactly one humidity field among \"rh\", \"w\", \"twb\", and \"tdp\"; got %d", n)
	}
	return spec, nil
}

// pressure returns the stream pressure, defaulting to standard atmosphere
func (o StreamData) pressure() float64 {
	if o.P == 0 {
		return air.StdPressure
	}
	return o.P
}

// Stream resolves the inlet state of one side; side is "hot" or "cold"
func (o *Case) Stream(side string) (*air.MoistAir, error) {
	var s StreamData
	switch side {
	case "hot":
		s = o.Hot
	case "cold":
		s = o.Cold
	default:
		return nil, chk.Err("side must be \"hot\" or \"cold\"; got %q", side)
	}
	spec, err := s.humidity()
	if err != nil {
		return nil, err
	}
	return air.NewWithEngine(s.T, s.pressure(), spec, o.eng)
}

// plate returns the plate geometry of this case
func (o *Case) plate() (*geo.Plate, error) {
	if o.Geometry.Length > 0 {
		if o.Geometry.Width <= 0 || o.Geometry.Thickness <= 0 || o.Geometry.ChannelHeight <= 0 {
			return nil, air.ValErr("explicit plate dimensions must all be positive")
		}
		return geo.NewPlate(o.Geometry.Length, o.Geometry.Width, o.Geometry.Thickness, o.Geometry.ChannelHeight), nil
	}
	return geo.StandardPlate(o.Geometry.Size)
}

// Exchanger builds the exchanger described by this case
func (o *Case) Exchanger() (*hx.Exchanger, error) {

	// core
	plate, err := o.plate()
	if err != nil {
		return nil, err
	}
	var core *geo.Core
	if o.Geometry.HotChannels > 0 || o.Geometry.ColdChannels > 0 {
		core, err = geo.NewCore(o.Geometry.Nplates, plate, o.Geometry.HotChannels, o.Geometry.ColdChannels)
	} else {
		core, err = geo.NewCoreSplit(o.Geometry.Nplates, plate)
	}
	if err != nil {
		return nil, err
	}

	// exchanger
	ex, err := hx.NewExchanger(core)
	if err != nil {
		return nil, err
	}
	ex.Arrangement = o.Arrangement
	if o.Wall.Thickness > 0 {
		ex.WallThickness = o.Wall.Thickness
	}
	if o.Wall.Conductivity > 0 {
		ex.WallConductivity = o.Wall.Conductivity
	}
	if o.Correlation != "plate" {
		ex.Corr, err = heat.New(o.Correlation)
		if err != nil {
			return nil, err
		}
		err = ex.Corr.Init(nil)
		if err != nil {
			return nil, err
		}
	}
	return ex, nil
}

// Run resolves the inlet states and analyses the exchanger of this case
func (o *Case) Run() (*hx.Results, error) {
	hot, err := o.Stream("hot")
	if err != nil {
		return nil, err
	}
	cold, err := o.Stream("cold")
	if err != nil {
		return nil, err
	}
	ex, err := o.Exchanger()
	if err != nil {
		return nil, err
	}
	return ex.Analyze(hot, cold, o.Hot.Mdot, o.Cold.Mdot)
}
