package sim

import (
	"context"
	"log"
	"math"
	"time"

	"outbreak/internal/arena"
	"outbreak/internal/rng"
)

// Summary is the final report handed back from Simulate.
type Summary struct {
	Final            Stats
	EventsDispatched int
	StoppedEarly     bool
}

// Simulator owns every piece of mutable simulation state: the population,
// the event queue, the RNG, and the simulated clock. Only the goroutine
// that calls Simulate ever touches them.
type Simulator struct {
	cfg         Config
	rng         *rng.Source
	individuals []Individual
	queue       *EventQueue
	time        float64
	history     *History
	renderer    Renderer
	telemetry   TelemetrySink

	// sleep is swapped out by tests to avoid real wall-clock delay; it
	// defaults to time.Sleep scaled by the playback modifier.
	sleep func(time.Duration)
}

// NewSimulator validates cfg and constructs a Simulator. renderer and sink
// may be nil; a nil renderer is replaced by NullRenderer{}, and a nil sink
// means no Snapshot is published.
func NewSimulator(cfg Config, renderer Renderer, sink TelemetrySink) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if renderer == nil {
		renderer = NullRenderer{}
	}

	s := &Simulator{
		cfg:       cfg,
		renderer:  renderer,
		telemetry: sink,
		history:   NewHistory(cfg.TimeLimit),
		queue:     NewEventQueue(cfg.TimeLimit),
	}
	s.sleep = func(d time.Duration) { time.Sleep(scaleSleep(d)) }
	return s, nil
}

// History returns the time-series buffer accumulated so far.
func (s *Simulator) History() *History { return s.history }

// Individuals exposes a read-only view of the population, primarily for
// tests; callers must not mutate the returned slice's elements in a way
// that violates single-goroutine ownership.
func (s *Simulator) Individuals() []Individual { return s.individuals }

// Simulate runs the full initialization and dispatch loop described by the
// engine, returning once the queue drains below the time horizon or ctx is
// canceled. Cancellation is cooperative: checked at the top of every loop
// iteration, never mid-dispatch.
func (s *Simulator) Simulate(ctx context.Context) (Summary, error) {
	if err := s.initialize(); err != nil {
		return Summary{}, err
	}

	var dispatched int
	var stoppedEarly bool

	for s.queue.NonEmpty() {
		if ctx.Err() != nil {
			stoppedEarly = true
			break
		}

		ev, ok := s.queue.Dequeue()
		if !ok {
			break
		}
		if !s.isValid(ev) {
			continue
		}

		dt := ev.Time - s.time
		for i := range s.individuals {
			s.individuals[i].Move(dt)
		}
		s.time = ev.Time

		s.dispatch(ev)
		dispatched++
	}

	return Summary{
		Final:            ComputeStats(s.individuals),
		EventsDispatched: dispatched,
		StoppedEarly:     stoppedEarly,
	}, nil
}

func (s *Simulator) initialize() error {
	s.time = 0
	s.queue.Clear()
	s.rng = rng.New(s.cfg.Seed)

	individuals, err := s.placePopulation()
	if err != nil {
		return err
	}
	s.individuals = individuals

	if len(s.individuals) > 0 {
		patientZero := s.rng.UniformInt(len(s.individuals))
		s.individuals[patientZero].Infect()
		s.scheduleEndInfection(patientZero)
	}

	for i := range s.individuals {
		s.predictCollisions(i)
	}

	// The first Redraw always fires at t=0, regardless of Hz; only the
	// periodic rescheduling after it depends on Hz being positive.
	s.queue.Enqueue(Event{Kind: RedrawEvent, Time: 0})
	return nil
}

func (s *Simulator) placePopulation() ([]Individual, error) {
	n := s.cfg.PopulationSz
	individuals := make([]Individual, 0, n)

	for len(individuals) < n {
		placed := false
		for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
			candidate := NewRandomIndividual(s.rng, s.cfg)
			overlaps := false
			for i := range individuals {
				if candidate.CollidesWith(&individuals[i]) {
					overlaps = true
					break
				}
			}
			if !overlaps {
				individuals = append(individuals, candidate)
				placed = true
				break
			}
		}
		if !placed {
			return nil, &InitError{PopulationSz: n, Attempts: maxPlacementAttempts}
		}
	}
	return individuals, nil
}

func (s *Simulator) scheduleEndInfection(i int) {
	dt := s.rng.Normal(s.cfg.TimeInfectious, 1)
	s.queue.Enqueue(Event{Kind: EndInfectionEvent, Time: s.time + dt, A: i})
}

// scheduleNextRedraw enqueues the following Redraw at time+period. Hz=0
// means period is effectively infinite: no further Redraw is ever
// scheduled, matching the "silent" boundary behavior for Hz=0.
func (s *Simulator) scheduleNextRedraw() {
	if s.cfg.Hz <= 0 {
		return
	}
	period := 1.0 / float64(s.cfg.Hz)
	s.queue.Enqueue(Event{Kind: RedrawEvent, Time: s.time + period})
}

// predictCollisions enqueues every future collision (particle-particle and
// particle-wall) for individual i. Dead individuals produce no events. The
// i==j self-pair is skipped explicitly rather than relying on TimeToHit's
// own pointer-equality guard.
func (s *Simulator) predictCollisions(i int) {
	ind := &s.individuals[i]
	if ind.IsDead() {
		return
	}

	for j := range s.individuals {
		if j == i {
			continue
		}
		other := &s.individuals[j]
		t := ind.TimeToHit(other)
		if math.IsInf(t, 1) {
			continue
		}
		s.queue.Enqueue(Event{
			Kind: CollisionEvent,
			Time: s.time + t,
			A:    i, B: j,
			EpochA: ind.Collisions, EpochB: other.Collisions,
		})
	}

	if t := ind.TimeToHitVerticalWall(); !math.IsInf(t, 1) {
		s.queue.Enqueue(Event{Kind: VerticalWallCollisionEvent, Time: s.time + t, A: i, EpochA: ind.Collisions})
	}
	if t := ind.TimeToHitHorizontalWall(); !math.IsInf(t, 1) {
		s.queue.Enqueue(Event{Kind: HorizontalWallCollisionEvent, Time: s.time + t, A: i, EpochA: ind.Collisions})
	}
}

// isValid checks, after dequeue, whether ev still describes live state:
// the referenced individual(s) must be alive and their Collisions counters
// must match the epoch snapshotted when ev was created.
func (s *Simulator) isValid(ev Event) bool {
	switch ev.Kind {
	case RedrawEvent:
		return true
	case EndInfectionEvent:
		return !s.individuals[ev.A].IsDead()
	case HorizontalWallCollisionEvent, VerticalWallCollisionEvent:
		ind := &s.individuals[ev.A]
		return !ind.IsDead() && ind.Collisions == ev.EpochA
	case CollisionEvent:
		a := &s.individuals[ev.A]
		b := &s.individuals[ev.B]
		return !a.IsDead() && !b.IsDead() && a.Collisions == ev.EpochA && b.Collisions == ev.EpochB
	default:
		return false
	}
}

func (s *Simulator) dispatch(ev Event) {
	switch ev.Kind {
	case RedrawEvent:
		s.handleRedraw()
	case CollisionEvent:
		s.handleCollision(ev.A, ev.B)
	case HorizontalWallCollisionEvent:
		s.individuals[ev.A].BounceOffHorizontalWall()
		s.predictCollisions(ev.A)
	case VerticalWallCollisionEvent:
		s.individuals[ev.A].BounceOffVerticalWall()
		s.predictCollisions(ev.A)
	case EndInfectionEvent:
		die := s.rng.Bernoulli(s.cfg.ProbDying)
		s.individuals[ev.A].EndInfection(die)
	}
}

func (s *Simulator) handleCollision(i, j int) {
	a := &s.individuals[i]
	b := &s.individuals[j]

	if a.IsInfected() && b.CanGetInfected() && s.rng.Bernoulli(s.cfg.ProbInfection) {
		b.Infect()
		s.scheduleEndInfection(j)
	} else if b.IsInfected() && a.CanGetInfected() && s.rng.Bernoulli(s.cfg.ProbInfection) {
		a.Infect()
		s.scheduleEndInfection(i)
	}

	a.BounceOff(b)
	s.predictCollisions(i)
	s.predictCollisions(j)
}

func (s *Simulator) handleRedraw() {
	start := time.Now()

	stats := ComputeStats(s.individuals)
	s.history.Record(s.time, stats)

	if s.telemetry != nil {
		s.telemetry.Publish(snapshotFrom(s.individuals, s.time, stats))
	}

	if err := s.renderer.DrawWith(func(gc GraphicsContext) { s.paint(gc, stats) }); err != nil {
		log.Printf("sim: redraw failed, continuing: %v", (&RenderError{Err: err}).Error())
	}

	elapsed := time.Since(start)
	budget := 10*time.Millisecond - elapsed
	if budget < time.Millisecond {
		budget = time.Millisecond
	}
	s.sleep(budget)

	s.scheduleNextRedraw()
}

// paint draws the history chart, every individual colored by health, the
// arena border, and the statistics text. It is the default GraphicsContext
// procedure handed to Renderer.DrawWith; concrete renderers (or tests) may
// inspect/record the same calls instead of actually painting pixels.
func (s *Simulator) paint(gc GraphicsContext, stats Stats) {
	gc.SetStroke(1)
	gc.SetColor(borderColor)
	gc.DrawRect(-arena.HalfWidth, -arena.HalfHeight, 2*arena.HalfWidth, 2*arena.HalfHeight)

	for i := range s.individuals {
		ind := &s.individuals[i]
		gc.SetColor(ColorFor(ind.Health))
		gc.FillRect(ind.X-ind.R, ind.Y-ind.R, 2*ind.R, 2*ind.R)
	}

	paintHistory(gc, s.history)

	gc.SetFont("monospace", 12)
	gc.SetColor(borderColor)
	gc.DrawString(statsLine(s.time, stats), -arena.HalfWidth+4, -arena.HalfHeight+14)
}
