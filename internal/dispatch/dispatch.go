// Package dispatch classifies input lines and drives the toll ledger.
//
// Each line is tried against the grammars in a fixed order: empty line
// (ignored), query command, crossing record. A line matching none of them,
// or a command whose argument resolves to neither a road nor a plate, gets a
// diagnostic on the error writer and processing continues. Only a stream
// read failure ends the run.
package dispatch

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/banshee-data/toll.report/internal/toll"
)

var commandPattern = regexp.MustCompile(`^\s*\?\s*(\S*)\s*$`)

// Dispatcher feeds one input stream into a ledger. Reports go to Out,
// per-line diagnostics to ErrOut. Not safe for concurrent use; the ledger is
// exclusively owned by the processing loop.
type Dispatcher struct {
	Ledger *toll.Ledger
	Out    io.Writer
	ErrOut io.Writer

	lineNo int
}

// New returns a dispatcher over the given ledger and writers.
func New(ledger *toll.Ledger, out, errOut io.Writer) *Dispatcher {
	return &Dispatcher{Ledger: ledger, Out: out, ErrOut: errOut}
}

// Run processes lines from r until end of stream. Line numbers continue
// across calls.
func (d *Dispatcher) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		d.lineNo++
		d.ProcessLine(toll.LineRef{Number: d.lineNo, Text: sc.Text()})
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// ProcessLine handles one already-numbered line.
func (d *Dispatcher) ProcessLine(line toll.LineRef) {
	if line.Text == "" {
		return
	}
	if d.handleCommand(line) || d.handleCrossing(line) {
		return
	}
	d.reportError(line)
}

// handleCommand answers query lines. An argument is matched independently
// against the road and plate patterns; each matching section is emitted,
// vehicle section first. An argument matching neither pattern leaves the
// line unclaimed so it falls through to the malformed diagnostic.
func (d *Dispatcher) handleCommand(line toll.LineRef) bool {
	m := commandPattern.FindStringSubmatch(line.Text)
	if m == nil {
		return false
	}
	arg := m[1]
	if arg == "" {
		vehicles, roads := d.Ledger.Snapshot()
		toll.WriteSnapshot(d.Out, vehicles, roads)
		return true
	}
	road, roadOK := toll.ParseRoad(arg)
	plate, plateOK := toll.ParsePlate(arg)
	if !roadOK && !plateOK {
		return false
	}
	if plateOK {
		if totals, ok := d.Ledger.VehicleReport(plate); ok {
			toll.WriteVehicleLine(d.Out, plate, totals)
		}
	}
	if roadOK {
		if traveled, ok := d.Ledger.RoadReport(road); ok {
			toll.WriteRoadLine(d.Out, road, traveled)
		}
	}
	return true
}

// handleCrossing records crossing lines: exactly three tokens, all valid. A
// conflicting crossing reports the superseded entry's origin line, not the
// current one.
func (d *Dispatcher) handleCrossing(line toll.LineRef) bool {
	fields := strings.Fields(line.Text)
	if len(fields) != 3 {
		return false
	}
	plate, plateOK := toll.ParsePlate(fields[0])
	road, roadOK := toll.ParseRoad(fields[1])
	marker, markerOK := toll.ParseMarker(fields[2])
	if !plateOK || !roadOK || !markerOK {
		return false
	}
	if origin, conflict := d.Ledger.RecordCrossing(plate, road, marker, line); conflict {
		d.reportError(origin)
	}
	return true
}

func (d *Dispatcher) reportError(line toll.LineRef) {
	fmt.Fprintf(d.ErrOut, "Error in line %d: %s\n", line.Number, line.Text)
}
