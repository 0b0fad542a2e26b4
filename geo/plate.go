// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo describes plate heat exchanger geometries
package geo

import "math"

// Plate holds the geometry of one corrugated exchanger plate
type Plate struct {
	Length           float64 // plate length [m]
	Width            float64 // plate width [m]
	Thickness        float64 // plate thickness [m]
	ChannelHeight    float64 // channel gap between plates [m]
	CorrugationAngle float64 // corrugation (chevron) angle [rad]
	AreaEnhancement  float64 // area enlargement factor due to corrugation [-]
}

// NewPlate returns a plate with the given main dimensions [m] and default
// corrugation (60° chevron, 1.2 area enhancement)
func NewPlate(length, width, thickness, channelHeight float64) *Plate {
	return &Plate{
		Length:           length,
		Width:            width,
		Thickness:        thickness,
		ChannelHeight:    channelHeight,
		CorrugationAngle: 60.0 * math.Pi / 180.0,
		AreaEnhancement:  1.2,
	}
}

// Area returns the projected plate area [m²]
func (o Plate) Area() float64 {
	return o.Length * o.Width
}

// EffectiveArea returns the effective heat transfer area [m²]
func (o Plate) EffectiveArea() float64 {
	return o.Area() * o.AreaEnhancement
}

// FlowArea returns the flow cross-section of one channel [m²]
func (o Plate) FlowArea() float64 {
	return o.Width * o.ChannelHeight
}

// HydraulicDiameter returns Dh [m]; 2b for parallel plates
func (o Plate) HydraulicDiameter() float64 {
	return 2.0 * o.ChannelHeight
}

// WettedPerimeter returns the wetted perimeter of one channel [m]
func (o Plate) WettedPerimeter() float64 {
	return 2.0 * (o.Width + o.ChannelHeight)
}

// FrictionFactor returns the Darcy friction factor of the corrugated
// (herringbone) passage as a function of the Reynolds number
func (o Plate) FrictionFactor(Re float64) float64 {
	if Re < 10 {
		return 64.0 / Re
	}
	if Re < 1000 {
		return 0.7 + 25.0/Re + 0.024*math.Sqrt(Re/100.0)
	}
	return 0.0791 * math.Pow(Re, -0.25)
}
