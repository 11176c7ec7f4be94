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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadObservations reads uptake observations from a CSV file with two
// columns: exposure and concentration. A header row is skipped if the
// first field does not parse as a number.
func ReadObservations(path string) (exposure, concentrations []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("flowtube: problem opening data file: %v", err)
	}
	defer f.Close()
	return readObservations(f, path)
}

func readObservations(f io.Reader, path string) (exposure, concentrations []float64, err error) {
	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("flowtube: problem reading data file %s: %v", path, err)
	}
	for i, row := range rows {
		x, errX := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if errX != nil || errY != nil {
			if i == 0 { // header row
				continue
			}
			return nil, nil, fmt.Errorf("flowtube: problem parsing data file %s row %d: %q", path, i+1, row)
		}
		exposure = append(exposure, x)
		concentrations = append(concentrations, y)
	}
	if len(exposure) == 0 {
		return nil, nil, fmt.Errorf("flowtube: data file %s contains no observations", path)
	}
	return exposure, concentrations, nil
}
