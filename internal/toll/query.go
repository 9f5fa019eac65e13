package toll

import "sort"

// TypeTotal is one road-type bucket of a vehicle's accumulated distance.
type TypeTotal struct {
	Type     RoadType
	Traveled Distance
}

// VehicleTotals is one vehicle's row in the dump-all report.
type VehicleTotals struct {
	Vehicle Vehicle
	Totals  []TypeTotal
}

// RoadTotal is one road's row in the dump-all report.
type RoadTotal struct {
	Road     Road
	Traveled Distance
}

// VehicleReport returns the vehicle's per-road-type totals, type letters
// ascending, or false when the vehicle has no completed segments.
func (l *Ledger) VehicleReport(vehicle Vehicle) ([]TypeTotal, bool) {
	byType, ok := l.typeTotals[vehicle]
	if !ok {
		return nil, false
	}
	return sortedTypeTotals(byType), true
}

// RoadReport returns the road's accumulated distance, or false when no
// segment was ever completed on it.
func (l *Ledger) RoadReport(road Road) (Distance, bool) {
	d, ok := l.roadTotals[road]
	return d, ok
}

// Snapshot returns every vehicle and every road with totals, in report
// order: vehicles by plate ascending, roads by number then type letter.
// Map iteration order never leaks into output; the sorts here are the only
// ordering.
func (l *Ledger) Snapshot() ([]VehicleTotals, []RoadTotal) {
	vehicles := make([]VehicleTotals, 0, len(l.typeTotals))
	for v, byType := range l.typeTotals {
		vehicles = append(vehicles, VehicleTotals{Vehicle: v, Totals: sortedTypeTotals(byType)})
	}
	sort.Slice(vehicles, func(i, j int) bool { return vehicles[i].Vehicle < vehicles[j].Vehicle })

	roads := make([]RoadTotal, 0, len(l.roadTotals))
	for r, d := range l.roadTotals {
		roads = append(roads, RoadTotal{Road: r, Traveled: d})
	}
	sort.Slice(roads, func(i, j int) bool { return roads[i].Road.Less(roads[j].Road) })

	return vehicles, roads
}

func sortedTypeTotals(byType map[RoadType]Distance) []TypeTotal {
	totals := make([]TypeTotal, 0, len(byType))
	for t, d := range byType {
		totals = append(totals, TypeTotal{Type: t, Traveled: d})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Type < totals[j].Type })
	return totals
}
