package sim

// Stats is a point-in-time tally of the population's health composition.
//
// NonInfected is the count of individuals that can still become infected
// (Susceptible). Some prior art in this domain calls the same quantity
// "exposed", the two names are synonymous here, and NonInfected is the one
// surfaced to callers.
type Stats struct {
	Alive       int
	Dead        int
	Infected    int
	NonInfected int
	Recovered   int
}

// ComputeStats does one O(N) pass over the population.
func ComputeStats(individuals []Individual) Stats {
	var s Stats
	for i := range individuals {
		switch individuals[i].Health {
		case Susceptible:
			s.NonInfected++
			s.Alive++
		case Infected:
			s.Infected++
			s.Alive++
		case Recovered:
			s.Recovered++
			s.Alive++
		case Dead:
			s.Dead++
		}
	}
	return s
}

// PercentInfected returns the infected share of the population, or 0 when
// the population is empty.
func (s Stats) PercentInfected() float64 {
	return percent(s.Infected, s.Alive+s.Dead)
}

// PercentNonInfected returns the susceptible share of the population.
func (s Stats) PercentNonInfected() float64 {
	return percent(s.NonInfected, s.Alive+s.Dead)
}

// PercentRecovered returns the recovered share of the population.
func (s Stats) PercentRecovered() float64 {
	return percent(s.Recovered, s.Alive+s.Dead)
}

// PercentDead returns the dead share of the population.
func (s Stats) PercentDead() float64 {
	return percent(s.Dead, s.Alive+s.Dead)
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}
