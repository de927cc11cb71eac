package main

import (
	"outbreak/internal/sim"
	"outbreak/internal/wire"
)

// hubSink adapts a *controlHub to sim.TelemetrySink. Publish writes the
// snapshot to every connected client before returning; snapshots are not
// queued or dropped, so a slow client slows the simulation goroutine.
type hubSink struct {
	hub *controlHub
}

func (s hubSink) Publish(snap sim.Snapshot) {
	s.hub.broadcastSnapshot(toWireSnapshot(snap))
}

func toWireSnapshot(snap sim.Snapshot) wire.Snapshot {
	individuals := make([]wire.IndividualView, len(snap.Population))
	for i, p := range snap.Population {
		individuals[i] = wire.IndividualView{
			X:      float32(p.X),
			Y:      float32(p.Y),
			Health: toWireHealth(p.Health),
		}
	}
	return wire.Snapshot{
		Time:        snap.Time,
		Infected:    snap.Infected,
		NonInfected: snap.NonInfected,
		Recovered:   snap.Recovered,
		Dead:        snap.Dead,
		Individuals: individuals,
	}
}

func toWireHealth(h sim.Health) wire.HealthCode {
	switch h {
	case sim.Susceptible:
		return wire.HealthSusceptible
	case sim.Infected:
		return wire.HealthInfected
	case sim.Recovered:
		return wire.HealthRecovered
	case sim.Dead:
		return wire.HealthDead
	default:
		return wire.HealthSusceptible
	}
}
