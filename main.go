// Command toll.report is a toll-accounting ledger. It reads crossing records
// ("<plate> <road> <marker>") one line at a time, pairs consecutive crossings
// of the same vehicle on the same road into traveled segments, and keeps
// totals per vehicle-and-road-type and per road. Query lines ("?" with an
// optional road or plate argument) report the totals on stdout. Malformed and
// conflicting lines produce "Error in line <n>: <text>" on stderr and never
// abort the run.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/banshee-data/toll.report/internal/dispatch"
	"github.com/banshee-data/toll.report/internal/toll"
)

var input = flag.String("input", "", "read crossing records from a file instead of stdin")

func main() {
	flag.Parse()

	var in io.Reader = os.Stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatalf("failed to open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	if err := run(in, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("failed to process input: %v", err)
	}
}

// run owns the ledger for the whole stream: one ledger, one pass, discarded
// at end of input.
func run(in io.Reader, out, errOut io.Writer) error {
	ledger := toll.NewLedger()
	return dispatch.New(ledger, out, errOut).Run(in)
}
