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

package flowtube

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/GaryBoone/GoStats/stats"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/atmoskinetics/flowtube/science/kps"
)

// ReactantUptake combines a hypothetical true uptake coefficient gamma
// with the diffusion-limited transport quantities cached by Initialize.
// It returns the diffusion correction factor relating the effective
// (observable) uptake coefficient to gamma, and the fraction of
// reactant lost to the coated surface over the residence time in the
// reaction section.
func (r *Reactor) ReactantUptake(gamma float64) (correction, lossFraction float64, err error) {
	s := r.state
	if s == nil || !s.diffusionDone {
		return 0, 0, fmt.Errorf("flowtube: must call Initialize before ReactantUptake")
	}
	if gamma <= 0 || gamma > 1 {
		return 0, 0, fmt.Errorf("flowtube: uptake coefficient must be in (0, 1], got %g", gamma)
	}

	d := r.sec.sectionDiameter()
	correction = kps.CorrectionFactor(s.sherwood, s.knudsen, gamma)
	s.gammaEff = gamma * correction
	k := kps.LossRateSurface(s.gammaEff, s.molecularSpeed, r.sec.surfaceToVolume())
	lossFraction = 1. - math.Exp(-k*s.residenceTime)

	kDiff := kps.DiffusionLimitedRateConstant(s.sherwood, s.diffusivity, d)
	gammaDiff := kps.DiffusionLimitedUptake(d, s.molecularSpeed, kDiff)

	s.correction = correction
	s.lossFraction = lossFraction
	s.uptakeDone = true

	log.WithFields(log.Fields{
		"gamma":         gamma,
		"correction":    correction,
		"gamma_eff":     s.gammaEff,
		"gamma_diff":    gammaDiff,
		"loss_fraction": lossFraction,
	}).Debug("uptake calculated")
	if s.cond.Display {
		r.reportUptake(os.Stdout, gamma, gammaDiff, k)
	}
	return correction, lossFraction, nil
}

// Fit holds the result of fitting observed reactant loss to first-order
// kinetics, along with the uptake coefficients derived from the fitted
// rate constant.
type Fit struct {
	// Slope, Intercept, R2, SlopeStdErr, and PValue describe the linear
	// regression of ln(concentration) against exposure time. Slope is
	// the negative first-order rate constant [s-1].
	Slope       float64
	Intercept   float64
	R2          float64
	SlopeStdErr float64
	PValue      float64
	// GammaEff is the effective (observed) uptake coefficient.
	GammaEff float64
	// Gamma is the diffusion-corrected true uptake coefficient. It is
	// +Inf when the observed loss is at the diffusion limit.
	Gamma float64
}

// CalculateGamma fits observed reactant concentrations against exposure
// to a first-order kinetic model and converts the fitted loss rate to a
// diffusion-corrected uptake coefficient. Exposure may be given in time
// ("s", "sec", "second", "seconds") or as injector travel distance
// ("cm", "centimeter", "centimeters"), which is divided by the flow
// velocity in the reaction section. ReactantUptake must have been
// called first.
func (r *Reactor) CalculateGamma(concentrations, exposure []float64, exposureUnits string) (Fit, error) {
	s := r.state
	if s == nil || !s.uptakeDone {
		return Fit{}, fmt.Errorf("flowtube: must call ReactantUptake before CalculateGamma")
	}
	if len(concentrations) != len(exposure) {
		return Fit{}, fmt.Errorf("flowtube: concentrations (%d) and exposure (%d) must have the same length",
			len(concentrations), len(exposure))
	}
	if len(concentrations) < 3 {
		return Fit{}, fmt.Errorf("flowtube: at least 3 observations are required, got %d", len(concentrations))
	}

	timeFactor := 1.
	switch strings.ToLower(exposureUnits) {
	case "s", "sec", "second", "seconds":
	case "cm", "centimeter", "centimeters":
		timeFactor = 1. / s.flowVelocity
	default:
		return Fit{}, fmt.Errorf("flowtube: unsupported exposure units %q; supported units: s, sec, second, seconds, cm, centimeter, centimeters",
			exposureUnits)
	}

	t := make([]float64, len(exposure))
	logC := make([]float64, len(concentrations))
	for i, c := range concentrations {
		if c <= 0 {
			return Fit{}, fmt.Errorf("flowtube: concentrations must be positive, got %g at index %d", c, i)
		}
		if exposure[i] < 0 {
			return Fit{}, fmt.Errorf("flowtube: exposure must be non-negative, got %g at index %d", exposure[i], i)
		}
		t[i] = exposure[i] * timeFactor
		logC[i] = math.Log(c)
	}

	slope, intercept, r2, n, slopeErr, _ := stats.LinearRegression(t, logC)
	if slope >= 0 {
		return Fit{}, fmt.Errorf("flowtube: observed concentrations do not decay with exposure (slope %g s-1)", slope)
	}
	k := -slope

	gammaEff := 4. * k / (s.molecularSpeed * r.sec.surfaceToVolume())
	gamma := kps.TrueUptake(gammaEff, s.sherwood, s.knudsen)
	if math.IsInf(gamma, 1) {
		log.WithFields(log.Fields{
			"gamma_eff": gammaEff,
			"k":         k,
		}).Warn("observed loss is at the diffusion limit; true uptake coefficient is unbounded")
	}

	fit := Fit{
		Slope:       slope,
		Intercept:   intercept,
		R2:          r2,
		SlopeStdErr: slopeErr,
		PValue:      slopePValue(slope, slopeErr, float64(n)),
		GammaEff:    gammaEff,
		Gamma:       gamma,
	}
	return fit, nil
}

// slopePValue calculates the two-sided p-value for the null hypothesis
// that the regression slope is zero, using a t-test with n-2 degrees of
// freedom.
func slopePValue(slope, stderr, n float64) float64 {
	if stderr <= 0 || n <= 2 {
		return math.NaN()
	}
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: n - 2}
	return 2. * dist.CDF(-math.Abs(slope/stderr))
}
