// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package air

import (
	"strings"

	"github.com/cpmech/gosl/io"
)

// Props holds a complete property set computed by an external engine
type Props struct {
	Rh  float64 // relative humidity [%]
	Tdp float64 // dew point [°C]
	Twb float64 // wet-bulb temperature [°C]
	H   float64 // enthalpy [kJ/kg dry air]
	Rho float64 // density [kg/m³]
}

// Engine defines an alternative property back end. Properties returns
// ok=false when the engine cannot resolve the given state, in which case
// the built-in correlations are used instead.
type Engine interface {
	Name() string                              // name of engine
	Properties(T, p, w float64) (*Props, bool) // full property set at (T [°C], p [Pa], w [kg/kg])
}

// NewEngine resolves an engine selector. "ashrae" (and "") return nil,
// meaning the built-in correlations. Unknown names and registered-but-
// unavailable engines produce a warning and fall back to the built-in set;
// never an error.
func NewEngine(name string) Engine {
	key := strings.ToLower(name)
	if key == "" || key == "ashrae" {
		return nil
	}
	allocator, ok := allocators[key]
	if !ok {
		io.Pfred("air: engine %q is unknown; using built-in ASHRAE correlations\n", name)
		return nil
	}
	eng := allocator()
	if eng == nil {
		io.Pfred("air: engine %q is not available; using built-in ASHRAE correlations\n", name)
		return nil
	}
	return eng
}

// Register adds an engine to the factory; e.g. a CoolProp-backed
// implementation. The allocator may return nil to report unavailability.
func Register(name string, allocator func() Engine) {
	allocators[strings.ToLower(name)] = allocator
}

// allocators holds all available engines. "coolprop" is known but has no
// Go back end here; selecting it falls back with a warning.
var allocators = map[string]func() Engine{
	"coolprop": func() Engine { return nil },
}
