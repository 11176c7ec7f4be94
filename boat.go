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

	"github.com/atmoskinetics/flowtube/internal/units"
	"github.com/atmoskinetics/flowtube/science/laminar"
)

// BoatConfig describes the geometry of a boat reactor: a flow tube
// containing a rectangular sample boat whose interior floor carries the
// reactive coating. All lengths are in centimeters.
type BoatConfig struct {
	TubeID              float64 `toml:"tube_id"`
	TubeLength          float64 `toml:"tube_length"`
	InjectorID          float64 `toml:"injector_id"`
	InjectorOD          float64 `toml:"injector_od"`
	ReactantGas         string  `toml:"reactant_gas"`
	CarrierGas          string  `toml:"carrier_gas"`
	ReactantMixingRatio float64 `toml:"reactant_mixing_ratio"`
	BoatWidth           float64 `toml:"boat_width"`
	BoatHeight          float64 `toml:"boat_height"`
	BoatLength          float64 `toml:"boat_length"`
	BoatWallThickness   float64 `toml:"boat_wall_thickness"`
}

// BoatReactor is a cylindrical laminar flow reactor containing a
// rectangular sample boat. The reaction section is the duct between the
// boat and the tube wall, characterized by its hydraulic diameter.
type BoatReactor struct {
	Reactor
	// BoatWidth, BoatHeight, and BoatLength are the outer dimensions
	// of the boat [cm]; BoatWallThickness is the wall thickness [cm].
	BoatWidth         float64
	BoatHeight        float64
	BoatLength        float64
	BoatWallThickness float64
}

// NewBoatReactor validates the geometry in c and returns a boat
// reactor entity.
func NewBoatReactor(c BoatConfig) (*BoatReactor, error) {
	r := &BoatReactor{
		Reactor: Reactor{
			TubeID:              c.TubeID,
			TubeLength:          c.TubeLength,
			InjectorID:          c.InjectorID,
			InjectorOD:          c.InjectorOD,
			ReactantGas:         c.ReactantGas,
			CarrierGas:          c.CarrierGas,
			ReactantMixingRatio: c.ReactantMixingRatio,
		},
		BoatWidth:         c.BoatWidth,
		BoatHeight:        c.BoatHeight,
		BoatLength:        c.BoatLength,
		BoatWallThickness: c.BoatWallThickness,
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	if c.BoatWidth <= 0 || c.BoatHeight <= 0 || c.BoatLength <= 0 || c.BoatWallThickness <= 0 {
		return nil, fmt.Errorf("flowtube: boat dimensions must be positive, got width=%g, height=%g, length=%g, wall=%g cm",
			c.BoatWidth, c.BoatHeight, c.BoatLength, c.BoatWallThickness)
	}
	// The boat rectangle must fit inside the tube bore.
	if math.Hypot(c.BoatWidth, c.BoatHeight) >= c.TubeID {
		return nil, fmt.Errorf("flowtube: boat width (%g cm) or height (%g cm) larger than the flow tube bore (ID %g cm)",
			c.BoatWidth, c.BoatHeight, c.TubeID)
	}
	if 2.*c.BoatWallThickness >= c.BoatWidth {
		return nil, fmt.Errorf("flowtube: boat wall thickness (%g cm) leaves no interior for a boat width of %g cm",
			c.BoatWallThickness, c.BoatWidth)
	}
	if c.BoatLength > c.TubeLength {
		return nil, fmt.Errorf("flowtube: boat length (%g cm) must not exceed the tube length (%g cm)",
			c.BoatLength, c.TubeLength)
	}
	r.sec = r
	return r, nil
}

// openArea returns the flow area above the boat [cm2]: the tube bore
// minus the boat cross-section.
func (r *BoatReactor) openArea() float64 {
	return units.CrossSectionalArea(r.TubeID) - r.BoatWidth*r.BoatHeight
}

// wettedPerimeter approximates the wetted perimeter of the duct above
// the boat [cm]: the tube circumference plus the exposed boat edges,
// the two side walls and the top width.
func (r *BoatReactor) wettedPerimeter() float64 {
	return math.Pi*r.TubeID + 2.*r.BoatHeight + r.BoatWidth
}

func (r *BoatReactor) sectionDiameter() float64 {
	return laminar.HydraulicDiameter(r.openArea(), r.wettedPerimeter())
}

func (r *BoatReactor) sectionArea() float64 {
	return r.openArea()
}

func (r *BoatReactor) sectionLength() float64 {
	return r.BoatLength
}

// surfaceToVolume returns the coated area per unit of flow volume
// [cm-1]. The coated surface is the boat interior floor.
func (r *BoatReactor) surfaceToVolume() float64 {
	coatedWidth := r.BoatWidth - 2.*r.BoatWallThickness
	return coatedWidth / r.openArea()
}
