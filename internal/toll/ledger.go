package toll

// LineRef ties a ledger event back to the input line that produced it. It is
// carried through the ledger untouched and surfaces again only in
// diagnostics.
type LineRef struct {
	Number int
	Text   string
}

// pendingEntry is a vehicle's open crossing awaiting its closing counterpart
// on the same road. At most one exists per vehicle.
type pendingEntry struct {
	road     Road
	distance Distance
	origin   LineRef
}

// SegmentFunc observes completed segments. It fires once per matched
// entry/exit pair with the absolute traveled distance, after the totals have
// been updated. It never fires for opening crossings or conflicts.
type SegmentFunc func(vehicle Vehicle, road Road, traveled Distance)

// Ledger accumulates traveled distance from paired crossings. It keeps two
// totals tables (per vehicle-and-road-type, per individual road) and the set
// of open crossings. Totals only ever grow, and only by completed segments.
//
// A Ledger is built once per run and owned by a single processing loop; it is
// not safe for concurrent use.
type Ledger struct {
	typeTotals map[Vehicle]map[RoadType]Distance
	roadTotals map[Road]Distance
	pending    map[Vehicle]pendingEntry
	onSegment  SegmentFunc
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		typeTotals: make(map[Vehicle]map[RoadType]Distance),
		roadTotals: make(map[Road]Distance),
		pending:    make(map[Vehicle]pendingEntry),
	}
}

// OnSegment registers an observer for completed segments. Pass nil to
// unregister. The observer must not mutate the ledger.
func (l *Ledger) OnSegment(fn SegmentFunc) {
	l.onSegment = fn
}

// RecordCrossing records one validated crossing.
//
// A vehicle with no open crossing gets one. A vehicle whose open crossing is
// on the same road closes a segment: the absolute marker difference is added
// to both totals tables and the open crossing is cleared. A vehicle whose
// open crossing is on a different road is a conflict: the new crossing
// replaces the open one, and the superseded crossing's origin line is
// returned so the caller can report it.
func (l *Ledger) RecordCrossing(vehicle Vehicle, road Road, distance Distance, line LineRef) (LineRef, bool) {
	p, open := l.pending[vehicle]
	if open && p.road == road {
		traveled := distance - p.distance
		if traveled < 0 {
			traveled = -traveled
		}
		l.roadTotals[road] += traveled
		byType := l.typeTotals[vehicle]
		if byType == nil {
			byType = make(map[RoadType]Distance)
			l.typeTotals[vehicle] = byType
		}
		byType[road.Type] += traveled
		delete(l.pending, vehicle)
		if l.onSegment != nil {
			l.onSegment(vehicle, road, traveled)
		}
		return LineRef{}, false
	}
	l.pending[vehicle] = pendingEntry{road: road, distance: distance, origin: line}
	if open {
		return p.origin, true
	}
	return LineRef{}, false
}

// PendingCount reports how many vehicles have an open crossing. Open
// crossings left at end of input are discarded, not finalized and not
// reported.
func (l *Ledger) PendingCount() int {
	return len(l.pending)
}
