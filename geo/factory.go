// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import "github.com/cpmech/gosl/chk"

// standardSizes holds the preset plate dimensions
// {length, width, thickness, channel height} [m]
var standardSizes = map[string][]float64{
	"small":  {0.3, 0.1, 0.0005, 0.003},
	"medium": {0.6, 0.2, 0.0005, 0.004},
	"large":  {1.2, 0.4, 0.0006, 0.005},
}

// StandardPlate returns a preset plate geometry; size is one of "small",
// "medium" or "large"
func StandardPlate(size string) (*Plate, error) {
	d, ok := standardSizes[size]
	if !ok {
		return nil, chk.Err("unknown standard plate size %q; options are \"small\", \"medium\", and \"large\"", size)
	}
	return NewPlate(d[0], d[1], d[2], d[3]), nil
}

// StandardSizes returns the names of the available presets
func StandardSizes() []string {
	return []string{"small", "medium", "large"}
}
