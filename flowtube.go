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

// Package flowtube calculates transport, diffusion, and uptake
// quantities for laminar flow reactor experiments in atmospheric
// chemistry, following the method of Knopf, Poeschl, and Shiraiwa
// (2015) for quantifying radial diffusion limitations.
//
// A reactor entity (CoatedWallReactor or BoatReactor) holds the static
// geometry and gas identities of an experiment. Initialize supplies the
// experimental conditions and computes the derived flow and transport
// quantities, ReactantUptake applies the diffusion correction to a
// hypothetical uptake coefficient, and CalculateGamma extracts a
// diffusion-corrected uptake coefficient from observed reactant loss.
package flowtube

// Version is the FlowTube release version.
const Version = "0.3.0"
