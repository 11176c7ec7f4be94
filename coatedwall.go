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

	"github.com/atmoskinetics/flowtube/internal/units"
)

// CoatedWallConfig describes the geometry of a coated-wall reactor.
// All lengths are in centimeters. If InsertID and InsertLength are
// zero, the entire flow tube is treated as the coated wall; otherwise
// the insert is the coated wall.
type CoatedWallConfig struct {
	TubeID              float64 `toml:"tube_id"`
	TubeLength          float64 `toml:"tube_length"`
	InjectorID          float64 `toml:"injector_id"`
	InjectorOD          float64 `toml:"injector_od"`
	ReactantGas         string  `toml:"reactant_gas"`
	CarrierGas          string  `toml:"carrier_gas"`
	ReactantMixingRatio float64 `toml:"reactant_mixing_ratio"`
	InsertID            float64 `toml:"insert_id"`
	InsertLength        float64 `toml:"insert_length"`
}

// CoatedWallReactor is a cylindrical laminar flow reactor with a
// reactive coating on the tube wall or on an optional tubular insert.
type CoatedWallReactor struct {
	Reactor
	// InsertID and InsertLength are the inner diameter and length of
	// the optional coated insert [cm]; both zero means the whole tube
	// is coated.
	InsertID     float64
	InsertLength float64
}

// NewCoatedWallReactor validates the geometry in c and returns a
// coated-wall reactor entity.
func NewCoatedWallReactor(c CoatedWallConfig) (*CoatedWallReactor, error) {
	r := &CoatedWallReactor{
		Reactor: Reactor{
			TubeID:              c.TubeID,
			TubeLength:          c.TubeLength,
			InjectorID:          c.InjectorID,
			InjectorOD:          c.InjectorOD,
			ReactantGas:         c.ReactantGas,
			CarrierGas:          c.CarrierGas,
			ReactantMixingRatio: c.ReactantMixingRatio,
		},
		InsertID:     c.InsertID,
		InsertLength: c.InsertLength,
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	if c.InsertID < 0 || c.InsertLength < 0 {
		return nil, fmt.Errorf("flowtube: insert dimensions must be non-negative, got ID=%g cm, length=%g cm",
			c.InsertID, c.InsertLength)
	}
	if (c.InsertID > 0) != (c.InsertLength > 0) {
		return nil, fmt.Errorf("flowtube: insert ID and insert length must be specified together, got ID=%g cm, length=%g cm",
			c.InsertID, c.InsertLength)
	}
	if c.InsertID > 0 {
		if c.InsertID >= c.TubeID {
			return nil, fmt.Errorf("flowtube: insert ID (%g cm) must be smaller than the tube ID (%g cm)",
				c.InsertID, c.TubeID)
		}
		if c.InsertLength > c.TubeLength {
			return nil, fmt.Errorf("flowtube: insert length (%g cm) must not exceed the tube length (%g cm)",
				c.InsertLength, c.TubeLength)
		}
	}
	r.sec = r
	return r, nil
}

func (r *CoatedWallReactor) sectionDiameter() float64 {
	if r.InsertID > 0 {
		return r.InsertID
	}
	return r.TubeID
}

func (r *CoatedWallReactor) sectionArea() float64 {
	return units.CrossSectionalArea(r.sectionDiameter())
}

func (r *CoatedWallReactor) sectionLength() float64 {
	if r.InsertLength > 0 {
		return r.InsertLength
	}
	return r.TubeLength
}

// surfaceToVolume returns 4/d, the surface-to-volume ratio of a
// cylinder [cm-1].
func (r *CoatedWallReactor) surfaceToVolume() float64 {
	return 4. / r.sectionDiameter()
}
