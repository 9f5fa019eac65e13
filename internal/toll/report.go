package toll

import (
	"fmt"
	"io"
)

// WriteVehicleLine writes one vehicle report line:
// "<plate> <type> <D>,<d> <type> <D>,<d>".
func WriteVehicleLine(w io.Writer, vehicle Vehicle, totals []TypeTotal) {
	fmt.Fprintf(w, "%s", vehicle)
	for _, t := range totals {
		fmt.Fprintf(w, " %c %s", t.Type, t.Traveled)
	}
	fmt.Fprintln(w)
}

// WriteRoadLine writes one road report line: "<type><num> <D>,<d>".
func WriteRoadLine(w io.Writer, road Road, traveled Distance) {
	fmt.Fprintf(w, "%s %s\n", road, traveled)
}

// WriteSnapshot writes the dump-all report, vehicle lines first.
func WriteSnapshot(w io.Writer, vehicles []VehicleTotals, roads []RoadTotal) {
	for _, v := range vehicles {
		WriteVehicleLine(w, v.Vehicle, v.Totals)
	}
	for _, r := range roads {
		WriteRoadLine(w, r.Road, r.Traveled)
	}
}
