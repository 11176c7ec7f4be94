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

// Package laminar contains formulas describing laminar flow through
// cylindrical tubes and ducts. Inputs are in SI units except where a
// function says otherwise.
package laminar

import (
	"fmt"
	"math"
)

const g = 9.81 // gravitational acceleration [m s-2]

// Reynolds calculates the Reynolds number of flow with density rho
// [kg m-3] and dynamic viscosity mu [kg m-1 s-1] moving at velocity v
// [m s-1] through a tube with diameter d [m].
func Reynolds(rho, v, d, mu float64) float64 {
	if mu <= 0 {
		panic(fmt.Sprintf("viscosity must be positive, got %g", mu))
	}
	return rho * v * d / mu
}

// Conductance calculates the viscous-flow conductance [m3 s-1] of a
// cylindrical tube with diameter d [m] and length L [m] at mean pressure
// pAvg [Pa] for a gas with dynamic viscosity mu [kg m-1 s-1], from the
// Hagen-Poiseuille relation: C = pi d^4 pAvg / (128 mu L).
func Conductance(d, L, pAvg, mu float64) float64 {
	if d <= 0 || L <= 0 {
		panic(fmt.Sprintf("tube dimensions must be positive, got d=%g, L=%g", d, L))
	}
	return math.Pi * math.Pow(d, 4) * pAvg / (128. * mu * L)
}

// PressureDrop calculates the Hagen-Poiseuille pressure drop [Pa] for
// volumetric flow Q [m3 s-1] through a cylindrical tube with diameter d
// [m] and length L [m] for a gas with dynamic viscosity mu [kg m-1 s-1].
func PressureDrop(Q, d, L, mu float64) float64 {
	if d <= 0 || L <= 0 {
		panic(fmt.Sprintf("tube dimensions must be positive, got d=%g, L=%g", d, L))
	}
	return 128. * mu * L * Q / (math.Pi * math.Pow(d, 4))
}

// EntranceLength estimates the laminar hydrodynamic entrance length
// Le = 0.05 Re d, in the units of d.
func EntranceLength(Re, d float64) float64 {
	return 0.05 * Re * d
}

// MixingTime estimates the characteristic time [s] for radial diffusive
// mixing across a tube with diameter d [cm] for a gas with diffusion
// coefficient D [cm2 s-1]: t = (d/2)^2 / (4 D).
func MixingTime(d, D float64) float64 {
	if D <= 0 {
		panic(fmt.Sprintf("diffusion coefficient must be positive, got %g", D))
	}
	r := d / 2.
	return r * r / (4. * D)
}

// Schmidt calculates the dimensionless Schmidt number mu/(rho D) where
// mu is dynamic viscosity [kg m-1 s-1], rho is density [kg m-3], and D
// is the diffusion coefficient [m2 s-1].
func Schmidt(mu, rho, D float64) float64 {
	return mu / (rho * D)
}

// SherwoodEff calculates the length-averaged effective Sherwood number
// for laminar flow through a cylindrical tube with uptake at the wall,
// following Knopf, Poeschl, and Shiraiwa (2015) eq. 14:
// N_Shw = 3.66 + 0.2672/(zstar + 0.10079 zstar^(1/3)), where
// zstar = (L/d)/(Re Sc) is the dimensionless axial distance at the tube
// exit. In the fully developed limit (large zstar) this approaches 3.66.
func SherwoodEff(L, d, Re, Sc float64) float64 {
	if d <= 0 || L <= 0 {
		panic(fmt.Sprintf("tube dimensions must be positive, got d=%g, L=%g", d, L))
	}
	pe := Re * Sc
	if pe <= 0 {
		return 3.66
	}
	zstar := (L / d) / pe
	return 3.66 + 0.2672/(zstar+0.10079*math.Cbrt(zstar))
}

// HydraulicDiameter calculates the hydraulic diameter 4A/P of a duct
// with cross-sectional area A and wetted perimeter P, in consistent
// units.
func HydraulicDiameter(area, perimeter float64) float64 {
	if perimeter <= 0 {
		panic(fmt.Sprintf("perimeter must be positive, got %g", perimeter))
	}
	return 4. * area / perimeter
}

// Grashof calculates the Grashof number for natural convection driven by
// a temperature difference deltaT [K] across a tube with diameter d [m]
// filled with gas at temperature T [K] with kinematic viscosity nu
// [m2 s-1], using the ideal-gas thermal expansion coefficient 1/T.
func Grashof(d, T, deltaT, nu float64) float64 {
	if nu <= 0 {
		panic(fmt.Sprintf("kinematic viscosity must be positive, got %g", nu))
	}
	return g * deltaT / T * math.Pow(d, 3) / (nu * nu)
}
