package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"outbreak/internal/sim"
)

func main() {
	addr := flag.String("addr", ":8080", "server listen address")
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := newControlHub(cancel)

	simulator, err := sim.NewSimulator(cfg, sim.NullRenderer{}, hubSink{hub: hub})
	if err != nil {
		log.Fatalf("failed to construct simulator: %v", err)
	}

	go func() {
		summary, err := simulator.Simulate(ctx)
		if err != nil {
			log.Printf("simulation failed: %v", err)
			return
		}
		log.Printf("simulation finished: dispatched=%d stoppedEarly=%v final=%+v",
			summary.EventsDispatched, summary.StoppedEarly, summary.Final)
	}()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	http.Handle("/ws/control", hub.handler())
	http.Handle("/", http.FileServer(http.Dir("web")))

	log.Printf("serving control plane on http://localhost%v", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
