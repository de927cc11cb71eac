package sim

import (
	"math"
	"testing"

	"outbreak/internal/arena"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestCollidesWith(t *testing.T) {
	a := Individual{X: 0, Y: 0, R: 8}
	b := Individual{X: 10, Y: 0, R: 8}
	if !a.CollidesWith(&b) {
		t.Fatal("expected overlap at distance 10 with combined radius 16")
	}
	b.X = 20
	if a.CollidesWith(&b) {
		t.Fatal("expected no overlap at distance 20 with combined radius 16")
	}
}

func TestMoveIgnoresDead(t *testing.T) {
	ind := Individual{X: 1, Y: 1, VX: 5, VY: 5, Health: Dead}
	ind.Move(1)
	if ind.X != 1 || ind.Y != 1 {
		t.Fatalf("dead individual moved: (%v, %v)", ind.X, ind.Y)
	}

	ind.Health = Susceptible
	ind.Move(1)
	if ind.X != 6 || ind.Y != 6 {
		t.Fatalf("expected (6, 6), got (%v, %v)", ind.X, ind.Y)
	}
}

func TestTimeToHitHeadOnApproach(t *testing.T) {
	a := &Individual{X: -20, Y: 0, VX: 1, VY: 0, R: 8, M: 1}
	b := &Individual{X: 20, Y: 0, VX: -1, VY: 0, R: 8, M: 1}

	tt := a.TimeToHit(b)
	if math.IsInf(tt, 1) {
		t.Fatal("expected a finite collision time")
	}

	a.Move(tt)
	b.Move(tt)
	dist := math.Hypot(b.X-a.X, b.Y-a.Y)
	if !approxEqual(dist, a.R+b.R, 1e-9) {
		t.Fatalf("individuals not touching at predicted time: dist=%v sigma=%v", dist, a.R+b.R)
	}
}

func TestTimeToHitSelfIsInfinite(t *testing.T) {
	a := &Individual{X: 0, Y: 0, VX: 1, VY: 1, R: 8, M: 1}
	if !math.IsInf(a.TimeToHit(a), 1) {
		t.Fatal("expected +Inf for self-collision")
	}
}

func TestTimeToHitDivergingIsInfinite(t *testing.T) {
	a := &Individual{X: -20, Y: 0, VX: -1, VY: 0, R: 8, M: 1}
	b := &Individual{X: 20, Y: 0, VX: 1, VY: 0, R: 8, M: 1}
	if !math.IsInf(a.TimeToHit(b), 1) {
		t.Fatal("expected +Inf when particles move apart")
	}
}

func TestTimeToHitDeadIsInfinite(t *testing.T) {
	a := &Individual{X: -20, Y: 0, VX: 1, VY: 0, R: 8, M: 1, Health: Dead}
	b := &Individual{X: 20, Y: 0, VX: -1, VY: 0, R: 8, M: 1}
	if !math.IsInf(a.TimeToHit(b), 1) {
		t.Fatal("expected +Inf when one side is dead")
	}
}

func TestTimeToHitWalls(t *testing.T) {
	ind := &Individual{X: 0, Y: 0, VX: 10, VY: -5, R: arena.Radius}

	tv := ind.TimeToHitVerticalWall()
	wantV := (arena.Right() - ind.R) / ind.VX
	if !approxEqual(tv, wantV, 1e-9) {
		t.Fatalf("vertical wall time = %v, want %v", tv, wantV)
	}

	th := ind.TimeToHitHorizontalWall()
	wantH := (arena.Top() + ind.R) / ind.VY
	if !approxEqual(th, wantH, 1e-9) {
		t.Fatalf("horizontal wall time = %v, want %v", th, wantH)
	}
}

func TestTimeToHitWallZeroVelocityIsInfinite(t *testing.T) {
	ind := &Individual{X: 0, Y: 0, VX: 0, VY: 0, R: arena.Radius}
	if !math.IsInf(ind.TimeToHitVerticalWall(), 1) {
		t.Fatal("expected +Inf vertical wall time with VX=0")
	}
	if !math.IsInf(ind.TimeToHitHorizontalWall(), 1) {
		t.Fatal("expected +Inf horizontal wall time with VY=0")
	}
}

func TestBounceOffConservesMomentumAndEnergy(t *testing.T) {
	a := &Individual{X: 0, Y: 0, VX: 3, VY: 1, R: 8, M: 1}
	b := &Individual{X: 16, Y: 0, VX: -2, VY: -1, R: 8, M: 1}

	pxBefore := a.M*a.VX + b.M*b.VX
	pyBefore := a.M*a.VY + b.M*b.VY
	eBefore := 0.5*a.M*(a.VX*a.VX+a.VY*a.VY) + 0.5*b.M*(b.VX*b.VX+b.VY*b.VY)

	a.BounceOff(b)

	pxAfter := a.M*a.VX + b.M*b.VX
	pyAfter := a.M*a.VY + b.M*b.VY
	eAfter := 0.5*a.M*(a.VX*a.VX+a.VY*a.VY) + 0.5*b.M*(b.VX*b.VX+b.VY*b.VY)

	const tol = 1e-9
	if !approxEqual(pxBefore, pxAfter, tol) || !approxEqual(pyBefore, pyAfter, tol) {
		t.Fatalf("momentum not conserved: before=(%v,%v) after=(%v,%v)", pxBefore, pyBefore, pxAfter, pyAfter)
	}
	if !approxEqual(eBefore, eAfter, tol) {
		t.Fatalf("energy not conserved: before=%v after=%v", eBefore, eAfter)
	}
	if a.Collisions != 1 || b.Collisions != 1 {
		t.Fatalf("expected both collision counters incremented, got %d and %d", a.Collisions, b.Collisions)
	}
}

func TestBounceOffHeadOnEqualMassReversesVelocity(t *testing.T) {
	a := &Individual{X: 0, Y: 0, VX: 5, VY: 0, R: 8, M: 1}
	b := &Individual{X: 16, Y: 0, VX: -5, VY: 0, R: 8, M: 1}

	a.BounceOff(b)

	const tol = 1e-9
	if !approxEqual(a.VX, -5, tol) || !approxEqual(b.VX, 5, tol) {
		t.Fatalf("expected velocities reversed, got a.VX=%v b.VX=%v", a.VX, b.VX)
	}
}

func TestBounceOffWalls(t *testing.T) {
	ind := &Individual{VX: 3, VY: -4}
	ind.BounceOffVerticalWall()
	if ind.VX != -3 || ind.Collisions != 1 {
		t.Fatalf("unexpected state after vertical bounce: VX=%v collisions=%d", ind.VX, ind.Collisions)
	}
	ind.BounceOffHorizontalWall()
	if ind.VY != 4 || ind.Collisions != 2 {
		t.Fatalf("unexpected state after horizontal bounce: VY=%v collisions=%d", ind.VY, ind.Collisions)
	}
}

func TestHealthStateMachine(t *testing.T) {
	ind := &Individual{Health: Susceptible}

	ind.EndInfection(true) // no-op: not infected yet
	if ind.Health != Susceptible {
		t.Fatalf("EndInfection on Susceptible should be a no-op, got %v", ind.Health)
	}

	ind.Infect()
	if ind.Health != Infected || !ind.IsInfected() {
		t.Fatalf("expected Infected, got %v", ind.Health)
	}

	ind.Infect() // no-op: already infected
	if ind.Health != Infected {
		t.Fatalf("re-Infect should be a no-op, got %v", ind.Health)
	}

	ind.EndInfection(false)
	if ind.Health != Recovered {
		t.Fatalf("expected Recovered, got %v", ind.Health)
	}

	ind.Infect() // terminal: recovered cannot be re-infected
	if ind.Health != Recovered {
		t.Fatalf("Recovered should not transition on Infect, got %v", ind.Health)
	}
}

func TestDeathZeroesVelocity(t *testing.T) {
	ind := &Individual{Health: Infected, VX: 7, VY: -3}
	ind.EndInfection(true)
	if !ind.IsDead() {
		t.Fatal("expected Dead")
	}
	if ind.VX != 0 || ind.VY != 0 {
		t.Fatalf("expected zero velocity after death, got (%v, %v)", ind.VX, ind.VY)
	}
}
