// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

// Channel holds the geometry of a rectangular duct
type Channel struct {
	Height float64 // channel height [m]
	Width  float64 // channel width [m]
	Length float64 // channel length [m]
}

// CrossArea returns the cross-sectional area [m²]
func (o Channel) CrossArea() float64 {
	return o.Height * o.Width
}

// WettedPerimeter returns the wetted perimeter [m]
func (o Channel) WettedPerimeter() float64 {
	return 2.0 * (o.Height + o.Width)
}

// HydraulicDiameter returns Dh = 4A/P [m]
func (o Channel) HydraulicDiameter() float64 {
	return 4.0 * o.CrossArea() / o.WettedPerimeter()
}

// AspectRatio returns width over height [-]
func (o Channel) AspectRatio() float64 {
	return o.Width / o.Height
}
