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

// Package gasprops calculates thermophysical properties of the pure gases
// and binary gas pairs used in flow reactor experiments, using
// Chapman-Enskog kinetic theory with the Lennard-Jones parameters
// tabulated in Poling, Prausnitz, and O'Connell, The Properties of Gases
// and Liquids, 5th ed. (2001), Appendix B.
package gasprops

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/atmoskinetics/flowtube/internal/units"
)

// gasData holds the molar mass [g mol-1] and Lennard-Jones collision
// diameter sigma [angstrom] and well depth epsilon/k [K] for one gas.
type gasData struct {
	M     float64
	sigma float64
	epsK  float64
}

// Lennard-Jones parameters from Poling et al. (2001) Appendix B;
// air parameters from Hirschfelder, Curtiss, and Bird (1954).
var gases = map[string]gasData{
	"ar":  {39.948, 3.542, 93.3},
	"he":  {4.0026, 2.551, 10.22},
	"air": {28.97, 3.711, 78.6},
	"br2": {159.808, 4.296, 507.9},
	"cl2": {70.906, 4.217, 316.0},
	"hbr": {80.912, 3.353, 449.0},
	"hcl": {36.461, 3.339, 344.7},
	"hi":  {127.912, 4.211, 288.7},
	"h2o": {18.015, 2.641, 809.1},
	"i2":  {253.809, 5.160, 474.2},
	"no":  {30.006, 3.492, 116.7},
	"n2":  {28.014, 3.798, 71.4},
	"o2":  {31.998, 3.467, 106.7},
}

// carriers lists the gases that can serve as the carrier flow.
var carriers = map[string]bool{"ar": true, "he": true, "n2": true, "o2": true}

func lookup(gas string) (gasData, error) {
	d, ok := gases[strings.ToLower(gas)]
	if !ok {
		return gasData{}, fmt.Errorf("unsupported gas %q; supported gases: %s",
			gas, strings.Join(Gases(), ", "))
	}
	return d, nil
}

// Gases returns the names of all supported gases in alphabetical order.
func Gases() []string {
	names := make([]string, 0, len(gases))
	for g := range gases {
		names = append(names, g)
	}
	sort.Strings(names)
	return names
}

// CheckCarrier returns an error if gas is not a supported carrier gas
// (Ar, He, N2, or O2).
func CheckCarrier(gas string) error {
	if !carriers[strings.ToLower(gas)] {
		return fmt.Errorf("unsupported carrier gas %q; supported carrier gases: Ar, He, N2, O2", gas)
	}
	return nil
}

// MolarMass returns the molar mass of gas [g mol-1].
func MolarMass(gas string) (float64, error) {
	d, err := lookup(gas)
	if err != nil {
		return 0, err
	}
	return d.M, nil
}

// MeanMolecularSpeed calculates the mean thermal speed of gas molecules
// [cm s-1] at temperature T [K] from the Maxwell-Boltzmann distribution,
// c = sqrt(8RT/(pi M)).
func MeanMolecularSpeed(gas string, T float64) (float64, error) {
	d, err := lookup(gas)
	if err != nil {
		return 0, err
	}
	if T <= 0 {
		return 0, fmt.Errorf("temperature must be positive, got %g K", T)
	}
	return 100. * math.Sqrt(8.*units.GasConstant*T/(math.Pi*d.M*1.e-3)), nil
}

// DynamicViscosity calculates the dynamic viscosity of gas
// [kg m-1 s-1] at temperature T [K] using Chapman-Enskog theory
// (Poling et al. eq. 9-3.9): mu = 26.69 sqrt(MT)/(sigma^2 Omega_v)
// in micropoise.
func DynamicViscosity(gas string, T float64) (float64, error) {
	d, err := lookup(gas)
	if err != nil {
		return 0, err
	}
	if T <= 0 {
		return 0, fmt.Errorf("temperature must be positive, got %g K", T)
	}
	muP := 26.69 * math.Sqrt(d.M*T) / (d.sigma * d.sigma * OmegaV(T/d.epsK))
	return muP * 1.e-7, nil
}

// Density calculates the ideal-gas mass density of gas [kg m-3] at
// temperature T [K] and pressure P [Pa].
func Density(gas string, T, P float64) (float64, error) {
	d, err := lookup(gas)
	if err != nil {
		return 0, err
	}
	if T <= 0 {
		return 0, fmt.Errorf("temperature must be positive, got %g K", T)
	}
	return P * d.M * 1.e-3 / (units.GasConstant * T), nil
}

// BinaryDiffusivity calculates the binary diffusion coefficient
// [cm2 s-1] of gasA in gasB at temperature T [K] and pressure P [Pa]
// using Chapman-Enskog theory (Poling et al. eq. 11-3.2):
// D = 0.00266 T^1.5 / (P sqrt(M_AB) sigma_AB^2 Omega_D) with P in bar.
// The combining rules are sigma_AB = (sigma_A+sigma_B)/2 and
// eps_AB = sqrt(eps_A eps_B).
func BinaryDiffusivity(gasA, gasB string, T, P float64) (float64, error) {
	a, err := lookup(gasA)
	if err != nil {
		return 0, err
	}
	b, err := lookup(gasB)
	if err != nil {
		return 0, err
	}
	if T <= 0 {
		return 0, fmt.Errorf("temperature must be positive, got %g K", T)
	}
	if P <= 0 {
		return 0, fmt.Errorf("pressure must be positive, got %g Pa", P)
	}
	mAB := 2. / (1./a.M + 1./b.M)
	sigmaAB := (a.sigma + b.sigma) / 2.
	epsAB := math.Sqrt(a.epsK * b.epsK)
	pBar := P * 1.e-5
	return 0.00266 * math.Pow(T, 1.5) /
		(pBar * math.Sqrt(mAB) * sigmaAB * sigmaAB * OmegaD(T/epsAB)), nil
}

// OmegaD is the collision integral for diffusion as a function of the
// reduced temperature Tstar = kT/eps, from the correlation of Neufeld,
// Janzen, and Aziz (1972).
func OmegaD(Tstar float64) float64 {
	if Tstar <= 0 {
		panic(fmt.Sprintf("reduced temperature must be positive, got %g", Tstar))
	}
	return 1.06036/math.Pow(Tstar, 0.15610) +
		0.19300/math.Exp(0.47635*Tstar) +
		1.03587/math.Exp(1.52996*Tstar) +
		1.76474/math.Exp(3.89411*Tstar)
}

// OmegaV is the collision integral for viscosity as a function of the
// reduced temperature Tstar = kT/eps, from the correlation of Neufeld,
// Janzen, and Aziz (1972).
func OmegaV(Tstar float64) float64 {
	if Tstar <= 0 {
		panic(fmt.Sprintf("reduced temperature must be positive, got %g", Tstar))
	}
	return 1.16145/math.Pow(Tstar, 0.14874) +
		0.52487/math.Exp(0.77320*Tstar) +
		2.16178/math.Exp(2.43787*Tstar)
}
