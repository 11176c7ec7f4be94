/*
Copyright © 2026 the FlowTube authors.
This file is part of FlowTube.

FlowTube is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

FlowTube is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with FlowTube.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package units holds physical constants and the unit conversions used
// throughout FlowTube. Geometric lengths are in centimeters, pressures in
// pascals, and temperatures in kelvin unless a function says otherwise.
package units

import (
	"fmt"
	"math"
	"strings"
)

// physical constants
const (
	StandardTemperature = 273.15       // [K]
	StandardPressure    = 101325.      // [Pa]
	GasConstant         = 8.3145       // [kg m2 s-2 K-1 mol-1]
	Boltzmann           = 1.380649e-23 // [kg m2 s-2 K-1]
	Avogadro            = 6.0221408e23 // [mol-1]
)

// pressureConv lists conversion factors to pascals for the supported
// pressure units. Keys are matched case-insensitively.
var pressureConv = map[string]float64{
	"torr": 133.322,
	"bar":  1.e5,
	"mbar": 100.,
	"hpa":  100.,
	"pa":   1.,
}

// TInKelvin converts a temperature in degrees Celsius to kelvin.
func TInKelvin(c float64) float64 {
	return c + StandardTemperature
}

// PInPascals converts pressure p in the given units to pascals.
// Supported units are Torr, bar, mbar, hPa, and Pa (case-insensitive).
func PInPascals(p float64, units string) (float64, error) {
	cf, ok := pressureConv[strings.ToLower(units)]
	if !ok {
		return 0, fmt.Errorf("unsupported pressure units %q; supported units: Torr, bar, mbar, hPa, Pa", units)
	}
	return p * cf, nil
}

// SCCMToVolumetric converts a mass flow rate in standard cubic centimeters
// per minute to a volumetric flow rate [cm3 s-1] at pressure P [Pa] and
// temperature T [K], assuming ideal-gas behavior.
func SCCMToVolumetric(sccm, P, T float64) float64 {
	return sccm / 60. * (StandardPressure / P) * (T / StandardTemperature)
}

// CrossSectionalArea returns the cross-sectional area of a circle with
// diameter d.
func CrossSectionalArea(d float64) float64 {
	return math.Pi * d * d / 4.
}
