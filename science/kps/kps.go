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

// Package kps implements the Knopf-Poeschl-Shiraiwa method for
// quantifying radial diffusion limitations on gas uptake in laminar
// flow reactors.
//
// Equation numbers refer to Knopf, D.A., Poeschl, U., Shiraiwa, M.,
// 2015. Radial Diffusion and Penetration of Gas Molecules and Aerosol
// Particles through Laminar Flow Reactors, Denuders, and Sampling
// Tubes. Anal. Chem. 87, 3746-3754.
// https://doi.org/10.1021/ac5042395
package kps

import "math"

// MeanFreePath calculates the effective mean free path [cm] of a trace
// gas with diffusion coefficient D [cm2 s-1] and mean molecular speed
// c [cm s-1]: lambda = 3D/c.
func MeanFreePath(D, c float64) float64 {
	return 3. * D / c
}

// KnudsenNumber calculates the Knudsen number for a gas with mean free
// path lambda [cm] in a tube with diameter d [cm]: Kn = 2 lambda / d.
func KnudsenNumber(lambda, d float64) float64 {
	return 2. * lambda / d
}

// DiffusionLimitedRateConstant calculates the diffusion-limited
// first-order wall loss rate constant [s-1] for a gas with diffusion
// coefficient D [cm2 s-1] in a cylinder with diameter d [cm], given the
// effective Sherwood number NShw (eq. 10): k = 4 NShw D / d^2.
func DiffusionLimitedRateConstant(NShw, D, d float64) float64 {
	return 4. * NShw * D / (d * d)
}

// DiffusionLimitedUptake calculates the maximum effective uptake
// coefficient allowed by gas-phase diffusion (eq. 19 solved for gamma)
// for a cylinder with diameter d [cm], mean molecular speed c [cm s-1],
// and diffusion-limited rate constant kDiff [s-1].
func DiffusionLimitedUptake(d, c, kDiff float64) float64 {
	return d / c * kDiff
}

// CorrectionFactor calculates the factor relating the effective
// (observable) uptake coefficient to the true uptake coefficient gamma
// (eq. 20): C = 1/(1 + gamma 3/(2 NShw Kn)).
func CorrectionFactor(NShw, Kn, gamma float64) float64 {
	return 1. / (1. + gamma*3./(2.*NShw*Kn))
}

// EffectiveUptake reduces the true uptake coefficient gamma to the
// effective uptake coefficient observed under diffusion limitation.
func EffectiveUptake(gamma, NShw, Kn float64) float64 {
	return gamma * CorrectionFactor(NShw, Kn, gamma)
}

// TrueUptake inverts eq. 20, recovering the true uptake coefficient
// from an observed effective uptake coefficient. It returns +Inf when
// the observed uptake is at or beyond the diffusion limit.
func TrueUptake(gammaEff, NShw, Kn float64) float64 {
	den := 1. - gammaEff*3./(2.*NShw*Kn)
	if den <= 0 {
		return math.Inf(1)
	}
	return gammaEff / den
}

// ObservedLossRate calculates the first-order loss rate constant [s-1]
// corresponding to an effective uptake coefficient gammaEff on the wall
// of a cylinder with diameter d [cm] for a gas with mean molecular
// speed c [cm s-1] (eq. 19): k = gammaEff c / d.
func ObservedLossRate(gammaEff, c, d float64) float64 {
	return gammaEff * c / d
}

// LossRateSurface calculates the first-order loss rate constant [s-1]
// for uptake on a surface with surface-to-volume ratio sv [cm-1] in the
// flow volume: k = gammaEff c sv / 4. For a cylinder, sv = 4/d and this
// reduces to ObservedLossRate.
func LossRateSurface(gammaEff, c, sv float64) float64 {
	return gammaEff * c * sv / 4.
}

// Penetration calculates the fraction of reactant lost to the wall of a
// cylinder with diameter d [cm] after residence time t [s] for a true
// uptake coefficient gamma (eq. 21).
func Penetration(gamma, NShw, Kn, c, d, t float64) float64 {
	return 1. - math.Exp(-EffectiveUptake(gamma, NShw, Kn)*c/d*t)
}

// UptakeFromRate converts a measured first-order loss rate constant k
// [s-1] in a cylinder with diameter d [cm] to an effective uptake
// coefficient: gammaEff = k d / c.
func UptakeFromRate(k, d, c float64) float64 {
	return k * d / c
}
