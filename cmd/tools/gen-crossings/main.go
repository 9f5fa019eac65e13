// Command gen-crossings generates synthetic crossing logs for testing the
// ledger and its tools.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/banshee-data/toll.report/internal/toll"
)

func main() {
	output := flag.String("o", "-", "output path, - for stdout")
	trips := flag.Int("n", 100, "number of trips")
	fleet := flag.Int("vehicles", 20, "fleet size")
	roadCount := flag.Int("roads", 8, "number of distinct roads")
	seed := flag.Int64("seed", 1, "random seed")
	conflicts := flag.Float64("conflicts", 0, "fraction of trips that switch roads before exiting")
	queries := flag.Float64("queries", 0.05, "fraction of trips followed by a dump query")
	flag.Parse()

	out := os.Stdout
	if *output != "-" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("failed to create output: %v", err)
		}
		defer f.Close()
		out = f
	}

	rng := rand.New(rand.NewSource(*seed))
	plates := make([]toll.Vehicle, *fleet)
	for i := range plates {
		plates[i] = toll.Vehicle(fmt.Sprintf("WX%05d", rng.Intn(100000)))
	}
	roads := make([]toll.Road, *roadCount)
	for i := range roads {
		t := toll.Motorway
		if rng.Intn(2) == 1 {
			t = toll.Expressway
		}
		roads[i] = toll.Road{Type: t, Number: 1 + rng.Intn(999)}
	}

	w := bufio.NewWriter(out)
	defer w.Flush()

	lines := 0
	emit := func(format string, args ...any) {
		fmt.Fprintf(w, format+"\n", args...)
		lines++
	}

	for i := 0; i < *trips; i++ {
		plate := plates[rng.Intn(len(plates))]
		road := roads[rng.Intn(len(roads))]
		entry := toll.Distance(rng.Intn(5000))
		exit := entry + toll.Distance(1+rng.Intn(3000))
		emit("%s %s %s", plate, road, entry)
		if next := roads[rng.Intn(len(roads))]; rng.Float64() < *conflicts && next != road {
			// switch roads mid-trip so the entry above is reported as conflicting
			road = next
			emit("%s %s %s", plate, road, entry)
		}
		emit("%s %s %s", plate, road, exit)
		if rng.Float64() < *queries {
			emit("?")
		}
	}

	if *output != "-" {
		log.Printf("✓ Created: %s (%d lines)", *output, lines)
	}
}
