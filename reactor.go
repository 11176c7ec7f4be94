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
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/atmoskinetics/flowtube/internal/units"
	"github.com/atmoskinetics/flowtube/science/gasprops"
	"github.com/atmoskinetics/flowtube/science/kps"
	"github.com/atmoskinetics/flowtube/science/laminar"
)

// section describes the coated reaction section of a reactor. For a
// coated-wall reactor this is the insert bore (or the whole tube when
// no insert is present); for a boat reactor it is the open duct above
// the boat.
type section interface {
	// sectionDiameter returns the characteristic (hydraulic) diameter
	// of the reaction section [cm].
	sectionDiameter() float64
	// sectionArea returns the open flow area of the reaction
	// section [cm2].
	sectionArea() float64
	// sectionLength returns the coated length [cm].
	sectionLength() float64
	// surfaceToVolume returns the coated surface area per unit of flow
	// volume in the reaction section [cm-1].
	surfaceToVolume() float64
}

// Conditions holds the experimental conditions supplied to Initialize.
type Conditions struct {
	// ReactantFlow is the flow rate of the reactant gas [sccm].
	ReactantFlow float64 `toml:"reactant_flow"`
	// ReactantCarrierFlow is the flow rate of the carrier gas premixed
	// with the reactant through the injector [sccm].
	ReactantCarrierFlow float64 `toml:"reactant_carrier_flow"`
	// CarrierFlow is the main carrier gas flow rate [sccm].
	CarrierFlow float64 `toml:"carrier_flow"`
	// Pressure is the reactor pressure in PressureUnits.
	Pressure float64 `toml:"pressure"`
	// PressureUnits is one of Torr, bar, mbar, hPa, or Pa.
	PressureUnits string `toml:"pressure_units"`
	// Temperature is the reactor temperature [degrees C].
	Temperature float64 `toml:"temperature"`
	// ReactantDiffusivity optionally specifies a measured diffusion
	// coefficient of the reactant in the carrier gas [cm2 s-1]. When
	// zero, the coefficient is calculated from Chapman-Enskog theory.
	ReactantDiffusivity float64 `toml:"reactant_diffusivity"`
	// RadialDeltaT and AxialDeltaT are the temperature inhomogeneities
	// across and along the reactor [K], used for buoyancy diagnostics.
	RadialDeltaT float64 `toml:"radial_delta_t"`
	AxialDeltaT  float64 `toml:"axial_delta_t"`
	// Display controls whether Initialize and ReactantUptake print a
	// summary table to standard output.
	Display bool `toml:"display"`
}

// state holds the derived quantities cached on a reactor by Initialize.
type state struct {
	cond        Conditions
	pressure    float64 // [Pa]
	temperature float64 // [K]

	// Flows
	reactantFlow        float64 // [cm3 s-1] at reactor conditions
	reactantCarrierFlow float64 // [cm3 s-1]
	carrierFlow         float64 // [cm3 s-1]
	totalFlow           float64 // [cm3 s-1]
	reactantConc        float64 // [molec cm-3]
	injectorVelocity    float64 // [cm s-1]
	annulusVelocity     float64 // [cm s-1]
	flowVelocity        float64 // [cm s-1] in the reaction section
	residenceTime       float64 // [s] in the reaction section
	flowsDone           bool

	// Carrier gas
	carrierDensity   float64 // [kg m-3]
	carrierViscosity float64 // [kg m-1 s-1]
	reynolds         float64
	entranceLength   float64 // [cm]
	pressureDrop     float64 // [Pa] over the full tube
	conductance      float64 // [m3 s-1]
	carrierDone      bool

	// Reactant transport
	diffusivity    float64 // [cm2 s-1]
	molecularSpeed float64 // [cm s-1]
	meanFreePath   float64 // [cm]
	knudsen        float64
	mixingTime     float64 // [s]
	schmidt        float64
	sherwood       float64
	diffusionDone  bool

	// Uptake
	correction   float64
	gammaEff     float64
	lossFraction float64
	uptakeDone   bool
}

// Reactor holds the geometry and gas identities common to all reactor
// types. It is embedded in CoatedWallReactor and BoatReactor and is not
// used on its own.
type Reactor struct {
	// TubeID is the flow tube inner diameter [cm].
	TubeID float64
	// TubeLength is the flow tube length [cm].
	TubeLength float64
	// InjectorID and InjectorOD are the inner and outer diameters of
	// the movable injector [cm].
	InjectorID float64
	InjectorOD float64
	// ReactantGas and CarrierGas are gas names; see package gasprops
	// for the supported sets.
	ReactantGas string
	CarrierGas  string
	// ReactantMixingRatio is the mole fraction of reactant in the
	// reactant flow [mol/mol].
	ReactantMixingRatio float64

	sec   section
	state *state
}

// validate checks the geometry and gas identities shared by all
// reactor types.
func (r *Reactor) validate() error {
	if r.TubeID <= 0 || r.TubeLength <= 0 {
		return fmt.Errorf("flowtube: tube dimensions must be positive, got ID=%g cm, length=%g cm",
			r.TubeID, r.TubeLength)
	}
	if r.InjectorID <= 0 || r.InjectorOD <= 0 {
		return fmt.Errorf("flowtube: injector dimensions must be positive, got ID=%g cm, OD=%g cm",
			r.InjectorID, r.InjectorOD)
	}
	if r.InjectorOD <= r.InjectorID {
		return fmt.Errorf("flowtube: injector OD (%g cm) must be larger than injector ID (%g cm)",
			r.InjectorOD, r.InjectorID)
	}
	if r.InjectorOD >= r.TubeID {
		return fmt.Errorf("flowtube: injector OD (%g cm) must be smaller than the tube ID (%g cm)",
			r.InjectorOD, r.TubeID)
	}
	if _, err := gasprops.MolarMass(r.ReactantGas); err != nil {
		return fmt.Errorf("flowtube: reactant gas: %w", err)
	}
	if err := gasprops.CheckCarrier(r.CarrierGas); err != nil {
		return fmt.Errorf("flowtube: %w", err)
	}
	if r.ReactantMixingRatio <= 0 || r.ReactantMixingRatio > 1 {
		return fmt.Errorf("flowtube: reactant mixing ratio must be in (0, 1], got %g",
			r.ReactantMixingRatio)
	}
	return nil
}

// Initialize validates the experimental conditions and computes the
// derived flow and transport quantities, caching them on the reactor.
// It runs Flows, CarrierFlow, and ReactantDiffusion in order, logs
// warnings for conditions that violate the assumptions of the
// calculation method, and prints a summary table when c.Display is set.
func (r *Reactor) Initialize(c Conditions) error {
	if c.ReactantFlow < 0 || c.ReactantCarrierFlow < 0 || c.CarrierFlow < 0 {
		return fmt.Errorf("flowtube: flow rates must be non-negative, got reactant=%g, reactant carrier=%g, carrier=%g sccm",
			c.ReactantFlow, c.ReactantCarrierFlow, c.CarrierFlow)
	}
	if c.ReactantFlow+c.ReactantCarrierFlow+c.CarrierFlow <= 0 {
		return fmt.Errorf("flowtube: total flow rate must be positive")
	}
	if c.Pressure <= 0 {
		return fmt.Errorf("flowtube: pressure must be positive, got %g %s", c.Pressure, c.PressureUnits)
	}
	p, err := units.PInPascals(c.Pressure, c.PressureUnits)
	if err != nil {
		return fmt.Errorf("flowtube: %w", err)
	}
	t := units.TInKelvin(c.Temperature)
	if t <= 0 {
		return fmt.Errorf("flowtube: temperature must be above absolute zero, got %g degrees C", c.Temperature)
	}
	if c.ReactantDiffusivity < 0 {
		return fmt.Errorf("flowtube: reactant diffusivity must be non-negative, got %g cm2/s", c.ReactantDiffusivity)
	}
	if c.RadialDeltaT < 0 || c.AxialDeltaT < 0 {
		return fmt.Errorf("flowtube: temperature differences must be non-negative")
	}

	r.state = &state{cond: c, pressure: p, temperature: t}
	if err := r.Flows(); err != nil {
		return err
	}
	if err := r.CarrierFlow(); err != nil {
		return err
	}
	if err := r.ReactantDiffusion(); err != nil {
		return err
	}
	r.checkRegime()
	if c.Display {
		r.Report(os.Stdout)
	}
	return nil
}

// Flows computes the volumetric flow rates at reactor conditions, the
// reactant number concentration, and the flow velocities and residence
// time in the reaction section. It is called by Initialize.
func (r *Reactor) Flows() error {
	s := r.state
	if s == nil {
		return fmt.Errorf("flowtube: must call Initialize before Flows")
	}
	c := s.cond
	s.reactantFlow = units.SCCMToVolumetric(c.ReactantFlow, s.pressure, s.temperature)
	s.reactantCarrierFlow = units.SCCMToVolumetric(c.ReactantCarrierFlow, s.pressure, s.temperature)
	s.carrierFlow = units.SCCMToVolumetric(c.CarrierFlow, s.pressure, s.temperature)
	s.totalFlow = s.reactantFlow + s.reactantCarrierFlow + s.carrierFlow

	// Number concentration of reactant after dilution into the total
	// flow [molec cm-3].
	dilution := c.ReactantFlow / (c.ReactantFlow + c.ReactantCarrierFlow + c.CarrierFlow)
	s.reactantConc = r.ReactantMixingRatio * dilution *
		s.pressure / (units.Boltzmann * s.temperature) * 1.e-6

	s.injectorVelocity = (s.reactantFlow + s.reactantCarrierFlow) /
		units.CrossSectionalArea(r.InjectorID)
	s.annulusVelocity = s.carrierFlow /
		(units.CrossSectionalArea(r.TubeID) - units.CrossSectionalArea(r.InjectorOD))
	s.flowVelocity = s.totalFlow / r.sec.sectionArea()
	s.residenceTime = r.sec.sectionLength() / s.flowVelocity
	s.flowsDone = true
	return nil
}

// CarrierFlow computes the carrier gas density and viscosity and the
// derived hydrodynamic quantities: Reynolds number, entrance length,
// pressure drop, and conductance. It is called by Initialize after
// Flows.
func (r *Reactor) CarrierFlow() error {
	s := r.state
	if s == nil || !s.flowsDone {
		return fmt.Errorf("flowtube: must call Flows before CarrierFlow")
	}
	var err error
	s.carrierDensity, err = gasprops.Density(r.CarrierGas, s.temperature, s.pressure)
	if err != nil {
		return fmt.Errorf("flowtube: %w", err)
	}
	s.carrierViscosity, err = gasprops.DynamicViscosity(r.CarrierGas, s.temperature)
	if err != nil {
		return fmt.Errorf("flowtube: %w", err)
	}

	d := r.sec.sectionDiameter()
	s.reynolds = laminar.Reynolds(s.carrierDensity, s.flowVelocity/100., d/100., s.carrierViscosity)
	s.entranceLength = laminar.EntranceLength(s.reynolds, d)
	s.pressureDrop = laminar.PressureDrop(s.totalFlow*1.e-6, r.TubeID/100., r.TubeLength/100., s.carrierViscosity)
	s.conductance = laminar.Conductance(r.TubeID/100., r.TubeLength/100.,
		s.pressure-s.pressureDrop/2., s.carrierViscosity)
	s.carrierDone = true
	return nil
}

// ReactantDiffusion computes the reactant transport quantities:
// diffusion coefficient, mean molecular speed, mean free path, Knudsen
// number, radial mixing time, and the effective Sherwood number of the
// reaction section. It is called by Initialize after CarrierFlow.
func (r *Reactor) ReactantDiffusion() error {
	s := r.state
	if s == nil || !s.carrierDone {
		return fmt.Errorf("flowtube: must call CarrierFlow before ReactantDiffusion")
	}
	var err error
	if s.cond.ReactantDiffusivity > 0 {
		s.diffusivity = s.cond.ReactantDiffusivity
	} else {
		s.diffusivity, err = gasprops.BinaryDiffusivity(r.ReactantGas, r.CarrierGas, s.temperature, s.pressure)
		if err != nil {
			return fmt.Errorf("flowtube: %w", err)
		}
	}
	s.molecularSpeed, err = gasprops.MeanMolecularSpeed(r.ReactantGas, s.temperature)
	if err != nil {
		return fmt.Errorf("flowtube: %w", err)
	}

	d := r.sec.sectionDiameter()
	s.meanFreePath = kps.MeanFreePath(s.diffusivity, s.molecularSpeed)
	s.knudsen = kps.KnudsenNumber(s.meanFreePath, d)
	s.mixingTime = laminar.MixingTime(d, s.diffusivity)
	s.schmidt = laminar.Schmidt(s.carrierViscosity, s.carrierDensity, s.diffusivity*1.e-4)
	s.sherwood = laminar.SherwoodEff(r.sec.sectionLength(), d, s.reynolds, s.schmidt)
	s.diffusionDone = true
	return nil
}

// checkRegime logs warnings for conditions outside the laminar,
// well-mixed continuum regime assumed by the calculation method.
func (r *Reactor) checkRegime() {
	s := r.state
	if s.reynolds > 2000 {
		log.WithField("Re", s.reynolds).Warn("flow may be turbulent; uptake correction assumes laminar flow")
	}
	if s.entranceLength > 0.1*r.sec.sectionLength() {
		log.WithFields(log.Fields{
			"entrance_length_cm": s.entranceLength,
			"section_length_cm":  r.sec.sectionLength(),
		}).Warn("laminar profile still developing over a significant fraction of the coated section")
	}
	if s.mixingTime > 0.1*s.residenceTime {
		log.WithFields(log.Fields{
			"mixing_time_s":    s.mixingTime,
			"residence_time_s": s.residenceTime,
		}).Warn("radial mixing is slow compared to the residence time")
	}
	if s.knudsen >= 0.01 {
		log.WithField("Kn", s.knudsen).Warn("outside the continuum regime; the diffusion correction may not apply")
	}

	nu := s.carrierViscosity / s.carrierDensity
	d := r.sec.sectionDiameter() / 100.
	if s.cond.RadialDeltaT > 0 {
		gr := laminar.Grashof(d, s.temperature, s.cond.RadialDeltaT, nu)
		if gr/(s.reynolds*s.reynolds) > 0.3 {
			log.WithField("Gr/Re2", gr/(s.reynolds*s.reynolds)).Warn(
				"radial temperature gradient may drive buoyant secondary flow")
		}
	}
	if s.cond.AxialDeltaT > 0 {
		gr := laminar.Grashof(d, s.temperature, s.cond.AxialDeltaT, nu)
		if gr/s.reynolds > 100 {
			log.WithField("Gr/Re", gr/s.reynolds).Warn(
				"axial temperature gradient may drive buoyant convection")
		}
	}
}
