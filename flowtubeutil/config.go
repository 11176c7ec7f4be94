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

package flowtubeutil

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/atmoskinetics/flowtube"
)

// Tube is the calculation surface shared by the reactor types.
type Tube interface {
	Initialize(flowtube.Conditions) error
	ReactantUptake(gamma float64) (correction, lossFraction float64, err error)
	CalculateGamma(concentrations, exposure []float64, exposureUnits string) (flowtube.Fit, error)
	Report(w io.Writer)
}

// ReactorConfig is the union of the geometry fields of the two reactor
// types. Which fields apply depends on the reactor type.
type ReactorConfig struct {
	TubeID              float64 `toml:"tube_id"`
	TubeLength          float64 `toml:"tube_length"`
	InjectorID          float64 `toml:"injector_id"`
	InjectorOD          float64 `toml:"injector_od"`
	ReactantGas         string  `toml:"reactant_gas"`
	CarrierGas          string  `toml:"carrier_gas"`
	ReactantMixingRatio float64 `toml:"reactant_mixing_ratio"`

	// Coated-wall reactor.
	InsertID     float64 `toml:"insert_id"`
	InsertLength float64 `toml:"insert_length"`

	// Boat reactor.
	BoatWidth         float64 `toml:"boat_width"`
	BoatHeight        float64 `toml:"boat_height"`
	BoatLength        float64 `toml:"boat_length"`
	BoatWallThickness float64 `toml:"boat_wall_thickness"`
}

// Config describes a reactor and the experimental conditions to apply
// to it, as read from a TOML configuration file.
type Config struct {
	// Type selects the reactor type: "coated_wall" or "boat".
	Type       string              `toml:"type"`
	Reactor    ReactorConfig       `toml:"reactor"`
	Conditions flowtube.Conditions `toml:"conditions"`
}

// LoadConfig reads a TOML configuration file describing a reactor and
// its experimental conditions.
func LoadConfig(path string) (*Config, error) {
	cfg := new(Config)
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("flowtube: problem reading configuration file %s: %v", path, err)
	}
	return cfg, nil
}

// Build constructs the reactor entity described by the configuration.
func (c *Config) Build() (Tube, error) {
	switch c.Type {
	case "coated_wall", "":
		return flowtube.NewCoatedWallReactor(flowtube.CoatedWallConfig{
			TubeID:              c.Reactor.TubeID,
			TubeLength:          c.Reactor.TubeLength,
			InjectorID:          c.Reactor.InjectorID,
			InjectorOD:          c.Reactor.InjectorOD,
			ReactantGas:         c.Reactor.ReactantGas,
			CarrierGas:          c.Reactor.CarrierGas,
			ReactantMixingRatio: c.Reactor.ReactantMixingRatio,
			InsertID:            c.Reactor.InsertID,
			InsertLength:        c.Reactor.InsertLength,
		})
	case "boat":
		return flowtube.NewBoatReactor(flowtube.BoatConfig{
			TubeID:              c.Reactor.TubeID,
			TubeLength:          c.Reactor.TubeLength,
			InjectorID:          c.Reactor.InjectorID,
			InjectorOD:          c.Reactor.InjectorOD,
			ReactantGas:         c.Reactor.ReactantGas,
			CarrierGas:          c.Reactor.CarrierGas,
			ReactantMixingRatio: c.Reactor.ReactantMixingRatio,
			BoatWidth:           c.Reactor.BoatWidth,
			BoatHeight:          c.Reactor.BoatHeight,
			BoatLength:          c.Reactor.BoatLength,
			BoatWallThickness:   c.Reactor.BoatWallThickness,
		})
	default:
		return nil, fmt.Errorf("flowtube: unknown reactor type %q; supported types: coated_wall, boat", c.Type)
	}
}
