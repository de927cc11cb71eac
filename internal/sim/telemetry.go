package sim

// PopulationView is an immutable, minimal per-individual snapshot: just
// enough to paint a dot. It is what crosses from the simulation goroutine
// to any observer goroutine, never a pointer into the live population.
type PopulationView struct {
	X, Y   float64
	Health Health
}

// Snapshot is the observability side-channel payload published on every
// Redraw when a TelemetrySink is configured. Publishing a Snapshot never
// feeds back into simulation state, so seed determinism is unaffected by
// whether or how fast a consumer drains it.
type Snapshot struct {
	Time        float64
	Population  []PopulationView
	Infected    float64
	NonInfected float64
	Recovered   float64
	Dead        float64
}

// TelemetrySink receives a Snapshot on every Redraw. Publish is called
// synchronously from the simulation goroutine, so however long it takes is
// added to that Redraw's dispatch.
type TelemetrySink interface {
	Publish(Snapshot)
}

func snapshotFrom(individuals []Individual, t float64, s Stats) Snapshot {
	views := make([]PopulationView, len(individuals))
	for i := range individuals {
		views[i] = PopulationView{X: individuals[i].X, Y: individuals[i].Y, Health: individuals[i].Health}
	}
	return Snapshot{
		Time:        t,
		Population:  views,
		Infected:    s.PercentInfected(),
		NonInfected: s.PercentNonInfected(),
		Recovered:   s.PercentRecovered(),
		Dead:        s.PercentDead(),
	}
}
