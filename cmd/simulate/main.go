// Command simulate runs the epidemic simulation headlessly from the
// command line: flags build a Config, NullRenderer discards every draw
// call, and the final population tally is printed once the event queue
// drains.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"outbreak/internal/sim"
)

func main() {
	seed := flag.Int64("seed", 0, "PRNG seed")
	hz := flag.Int("hz", 48, "redraw events per simulated time unit")
	popSz := flag.Int("pop", 500, "population size")
	velocitySigma := flag.Float64("velocity-sigma", 15, "per-axis velocity standard deviation")
	timeLimit := flag.Float64("time-limit", 2000, "event horizon / simulated time limit")
	probInfection := flag.Float64("prob-infection", 1.0/3.0, "probability of transmission per qualifying collision")
	probDying := flag.Float64("prob-dying", 0.15, "probability an infection ends in death")
	timeInfectious := flag.Float64("time-infectious", 12, "mean infectious duration")
	flag.Parse()

	cfg := sim.Config{
		Seed:           *seed,
		Hz:             *hz,
		PopulationSz:   *popSz,
		VelocitySigma:  *velocitySigma,
		TimeLimit:      *timeLimit,
		ProbInfection:  *probInfection,
		ProbDying:      *probDying,
		TimeInfectious: *timeInfectious,
	}

	simulator, err := sim.NewSimulator(cfg, sim.NullRenderer{}, nil)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	summary, err := simulator.Simulate(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("events dispatched: %d\n", summary.EventsDispatched)
	fmt.Printf("alive=%d infected=%d non-infected=%d recovered=%d dead=%d\n",
		summary.Final.Alive, summary.Final.Infected, summary.Final.NonInfected,
		summary.Final.Recovered, summary.Final.Dead)
}
