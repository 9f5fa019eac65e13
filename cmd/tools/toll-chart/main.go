// Command toll-chart consumes a crossing log and renders the per-road totals
// as an HTML bar chart.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"

	"github.com/banshee-data/toll.report/internal/dispatch"
	"github.com/banshee-data/toll.report/internal/toll"
)

func main() {
	input := flag.String("input", "-", "crossing log path, - for stdin")
	output := flag.String("o", "toll-chart.html", "output HTML path")
	title := flag.String("title", "Per-road toll totals", "chart title")
	quiet := flag.Bool("quiet", false, "suppress per-line diagnostics")
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

	errOut := io.Writer(os.Stderr)
	if *quiet {
		errOut = io.Discard
	}

	ledger := toll.NewLedger()
	if err := dispatch.New(ledger, io.Discard, errOut).Run(in); err != nil {
		log.Fatalf("failed to process input: %v", err)
	}

	_, roads := ledger.Snapshot()
	if len(roads) == 0 {
		log.Fatal("no completed segments in input")
	}

	runID := fmt.Sprintf("chart-%s", uuid.New().String()[:8])

	names := make([]string, 0, len(roads))
	values := make([]opts.BarData, 0, len(roads))
	for _, rt := range roads {
		names = append(names, rt.Road.String())
		values = append(values, opts.BarData{Value: float64(rt.Traveled) / 10.0})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: *title, Subtitle: "run " + runID}),
		charts.WithYAxisOpts(opts.YAxis{Name: "distance (units)"}),
	)
	bar.SetXAxis(names).AddSeries("traveled", values)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("failed to create output: %v", err)
	}
	defer f.Close()
	if err := bar.Render(f); err != nil {
		log.Fatalf("failed to render chart: %v", err)
	}
	log.Printf("✓ Created: %s (%d roads, %s)", *output, len(roads), runID)
}
