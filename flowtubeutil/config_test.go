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
	"os"
	"path/filepath"
	"testing"
)

const testConfig = `
type = "coated_wall"

[reactor]
tube_id = 2.6
tube_length = 50.0
injector_id = 1.0
injector_od = 1.2
reactant_gas = "HCl"
carrier_gas = "N2"
reactant_mixing_ratio = 1e-6
insert_id = 1.5
insert_length = 20.0

[conditions]
reactant_flow = 10.0
reactant_carrier_flow = 100.0
carrier_flow = 1000.0
pressure = 50.0
pressure_units = "Torr"
temperature = 25.0
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reactor.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, testConfig))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Type != "coated_wall" {
		t.Errorf("type = %q, want coated_wall", cfg.Type)
	}
	if cfg.Reactor.TubeID != 2.6 {
		t.Errorf("tube ID = %g, want 2.6", cfg.Reactor.TubeID)
	}
	if cfg.Conditions.PressureUnits != "Torr" {
		t.Errorf("pressure units = %q, want Torr", cfg.Conditions.PressureUnits)
	}

	tube, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	if err := tube.Initialize(cfg.Conditions); err != nil {
		t.Fatal(err)
	}
	correction, loss, err := tube.ReactantUptake(0.01)
	if err != nil {
		t.Fatal(err)
	}
	if !(correction > 0 && correction < 1 && loss > 0 && loss < 1) {
		t.Errorf("correction = %g, loss = %g", correction, loss)
	}
}

func TestBuildBoat(t *testing.T) {
	cfg := &Config{
		Type: "boat",
		Reactor: ReactorConfig{
			TubeID:              2.6,
			TubeLength:          100,
			InjectorID:          1.0,
			InjectorOD:          1.2,
			ReactantGas:         "HCl",
			CarrierGas:          "N2",
			ReactantMixingRatio: 1.e-6,
			BoatWidth:           2.0,
			BoatHeight:          0.963,
			BoatLength:          53.8,
			BoatWallThickness:   0.11,
		},
	}
	if _, err := cfg.Build(); err != nil {
		t.Fatal(err)
	}
}

func TestBuildUnknownType(t *testing.T) {
	cfg := &Config{Type: "rotating_drum"}
	if _, err := cfg.Build(); err == nil {
		t.Error("expected error for unknown reactor type")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing configuration file")
	}
}
