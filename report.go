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
	"io"
	"text/tabwriter"

	"github.com/ctessum/unit"
)

// Report writes a table of the derived quantities cached by Initialize
// to w. It does nothing if the reactor has not been initialized.
func (r *Reactor) Report(w io.Writer) {
	s := r.state
	if s == nil || !s.diffusionDone {
		return
	}
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	row := func(name string, value float64, format, units string) {
		fmt.Fprintf(tw, "%s\t"+format+"\t%s\n", name, value, units)
	}
	fmt.Fprintln(tw, "Quantity\tValue\tUnits")
	row("Pressure", s.pressure, "%.4g", "Pa")
	row("Temperature", s.temperature, "%.2f", "K")
	row("Total flow", s.totalFlow, "%.4g", "cm3/s")
	row("Reactant concentration", s.reactantConc, "%.4g", "molec/cm3")
	row("Injector velocity", s.injectorVelocity, "%.4g", "cm/s")
	row("Annulus velocity", s.annulusVelocity, "%.4g", "cm/s")
	row("Flow velocity", s.flowVelocity, "%.4g", "cm/s")
	row("Residence time", s.residenceTime, "%.4g", "s")
	row("Carrier density", s.carrierDensity, "%.4g", "kg/m3")
	row("Carrier viscosity", s.carrierViscosity, "%.4g", "kg/m/s")
	row("Reynolds number", s.reynolds, "%.4g", "")
	row("Entrance length", s.entranceLength, "%.4g", "cm")
	row("Pressure drop", s.pressureDrop, "%.4g", "Pa")
	row("Conductance", s.conductance, "%.4g", "m3/s")
	row("Diffusion coefficient", s.diffusivity, "%.4g", "cm2/s")
	row("Mean molecular speed", s.molecularSpeed, "%.4g", "cm/s")
	row("Mean free path", s.meanFreePath, "%.4g", "cm")
	row("Knudsen number", s.knudsen, "%.4g", "")
	row("Mixing time", s.mixingTime, "%.4g", "s")
	row("Sherwood number", s.sherwood, "%.4g", "")
	tw.Flush()
}

// reportUptake writes the uptake results table.
func (r *Reactor) reportUptake(w io.Writer, gamma, gammaDiff, k float64) {
	s := r.state
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Quantity\tValue\tUnits")
	fmt.Fprintf(tw, "Hypothetical gamma\t%.4g\t\n", gamma)
	fmt.Fprintf(tw, "Correction factor\t%.4g\t\n", s.correction)
	fmt.Fprintf(tw, "Effective gamma\t%.4g\t\n", s.gammaEff)
	fmt.Fprintf(tw, "Diffusion-limited gamma\t%.4g\t\n", gammaDiff)
	fmt.Fprintf(tw, "Loss rate constant\t%.4g\t1/s\n", k)
	fmt.Fprintf(tw, "Reactant loss\t%.2f\t%%\n", s.lossFraction*100.)
	tw.Flush()
}

// Quantities returns the derived quantities cached by Initialize as
// dimensioned SI values for programmatic consumers. It returns nil if
// the reactor has not been initialized.
func (r *Reactor) Quantities() map[string]*unit.Unit {
	s := r.state
	if s == nil || !s.diffusionDone {
		return nil
	}
	viscosity := unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -1, unit.TimeDim: -1}
	diffusivity := unit.Dimensions{unit.LengthDim: 2, unit.TimeDim: -1}
	perMeter3 := unit.Dimensions{unit.LengthDim: -3}
	return map[string]*unit.Unit{
		"pressure":               unit.New(s.pressure, unit.Pascal),
		"temperature":            unit.New(s.temperature, unit.Kelvin),
		"total_flow":             unit.New(s.totalFlow*1.e-6, unit.Meter3PerSecond),
		"reactant_concentration": unit.New(s.reactantConc*1.e6, perMeter3),
		"flow_velocity":          unit.New(s.flowVelocity/100., unit.MeterPerSecond),
		"residence_time":         unit.New(s.residenceTime, unit.Second),
		"carrier_density":        unit.New(s.carrierDensity, unit.KilogramPerMeter3),
		"carrier_viscosity":      unit.New(s.carrierViscosity, viscosity),
		"reynolds_number":        unit.New(s.reynolds, unit.Dimless),
		"entrance_length":        unit.New(s.entranceLength/100., unit.Meter),
		"pressure_drop":          unit.New(s.pressureDrop, unit.Pascal),
		"conductance":            unit.New(s.conductance, unit.Meter3PerSecond),
		"diffusion_coefficient":  unit.New(s.diffusivity*1.e-4, diffusivity),
		"mean_molecular_speed":   unit.New(s.molecularSpeed/100., unit.MeterPerSecond),
		"mean_free_path":         unit.New(s.meanFreePath/100., unit.Meter),
		"knudsen_number":         unit.New(s.knudsen, unit.Dimless),
		"mixing_time":            unit.New(s.mixingTime, unit.Second),
		"sherwood_number":        unit.New(s.sherwood, unit.Dimless),
	}
}
