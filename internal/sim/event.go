package sim

// Kind tags the variant of an Event.
type Kind uint8

const (
	RedrawEvent Kind = iota
	CollisionEvent
	HorizontalWallCollisionEvent
	VerticalWallCollisionEvent
	EndInfectionEvent
)

// Event is a sum of the five variants described by the simulation: Redraw
// carries no particle reference, Collision references a pair, the two wall
// events and EndInfection reference one individual. A and B hold stable
// population indices, never pointers, so the queue never aliases a live
// Individual; EpochA/EpochB snapshot Individual.Collisions at creation time
// for the staleness check performed after dequeue.
//
// seq breaks time ties deterministically, keeping identical-time events
// ordered by insertion rather than by heap-internal happenstance.
type Event struct {
	Kind Kind
	Time float64

	A, B           int
	EpochA, EpochB uint64
	seq            uint64
}
