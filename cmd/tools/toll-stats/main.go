// Command toll-stats consumes a crossing log and summarizes the lengths of
// completed segments, optionally rendering a histogram.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/toll.report/internal/dispatch"
	"github.com/banshee-data/toll.report/internal/toll"
)

func main() {
	input := flag.String("input", "-", "crossing log path, - for stdin")
	plotPath := flag.String("plot", "", "write a histogram PNG to this path")
	bins := flag.Int("bins", 20, "histogram bin count")
	flag.Parse()

	var in io.Reader = os.Stdin
	if *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatalf("failed to open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	// collect segment lengths (in units) as the ledger completes them
	var segments []float64
	ledger := toll.NewLedger()
	ledger.OnSegment(func(_ toll.Vehicle, _ toll.Road, traveled toll.Distance) {
		segments = append(segments, float64(traveled)/10.0)
	})
	if err := dispatch.New(ledger, io.Discard, os.Stderr).Run(in); err != nil {
		log.Fatalf("failed to process input: %v", err)
	}
	if len(segments) == 0 {
		log.Fatal("no completed segments in input")
	}

	sort.Float64s(segments)
	fmt.Printf("segments: %d\n", len(segments))
	fmt.Printf("open:     %d\n", ledger.PendingCount())
	fmt.Printf("mean:     %.1f\n", stat.Mean(segments, nil))
	fmt.Printf("stddev:   %.1f\n", stat.StdDev(segments, nil))
	fmt.Printf("median:   %.1f\n", stat.Quantile(0.5, stat.Empirical, segments, nil))
	fmt.Printf("p95:      %.1f\n", stat.Quantile(0.95, stat.Empirical, segments, nil))
	fmt.Printf("max:      %.1f\n", segments[len(segments)-1])

	if *plotPath != "" {
		if err := renderHistogram(*plotPath, segments, *bins); err != nil {
			log.Fatalf("failed to render histogram: %v", err)
		}
		log.Printf("✓ Created: %s", *plotPath)
	}
}

func renderHistogram(path string, segments []float64, bins int) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Segment lengths (run stats-%s)", uuid.New().String()[:8])
	p.X.Label.Text = "distance (units)"
	p.Y.Label.Text = "segments"

	values := make(plotter.Values, len(segments))
	copy(values, segments)
	h, err := plotter.NewHist(values, bins)
	if err != nil {
		return fmt.Errorf("failed to build histogram: %w", err)
	}
	p.Add(h)

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
