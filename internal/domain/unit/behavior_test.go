package unit

import (
	"testing"

	"unitsim/internal/domain/geom"
)

func newAutoUnit(t *testing.T, rng RandomSource) *Unit {
	t.Helper()
	u, err := New(Config{
		Position:     geom.Vec3{X: 10, Y: 10, Z: 10},
		Name:         "Lucifer",
		Weight:       50,
		Strength:     50,
		Agility:      50,
		Toughness:    50,
		AutoBehavior: true,
		Random:       rng,
		Idle:         RandomIdleBehavior{},
	})
	if err != nil {
		t.Fatalf("new unit: %v", err)
	}
	return u
}

func TestIdleBehavior_PicksWork(t *testing.T) {
	u := newAutoUnit(t, &scriptedRandom{ints: []int{1}})

	if err := u.Advance(0.2); err != nil {
		t.Fatalf("advance: %v", err)
	}

	if u.Activity() != ActivityWorking {
		t.Fatalf("expected idle behavior to start work, got %s", u.Activity())
	}
}

func TestIdleBehavior_PicksRest(t *testing.T) {
	u := newAutoUnit(t, &scriptedRandom{ints: []int{2}})

	if err := u.Advance(0.2); err != nil {
		t.Fatalf("advance: %v", err)
	}

	if u.Activity() != ActivityResting {
		t.Fatalf("expected idle behavior to start resting, got %s", u.Activity())
	}
}

func TestIdleBehavior_PicksRandomMove(t *testing.T) {
	u := newAutoUnit(t, &scriptedRandom{ints: []int{0, 20, 21, 22}})

	if err := u.Advance(0.2); err != nil {
		t.Fatalf("advance: %v", err)
	}

	if u.Activity() != ActivityWalking {
		t.Fatalf("expected idle behavior to start walking, got %s", u.Activity())
	}
	if x, y, z := u.EndGoal().Cell(); x != 20 || y != 21 || z != 22 {
		t.Fatalf("unexpected random goal cell: %d,%d,%d", x, y, z)
	}
}

func TestIdleBehavior_DisabledByDefault(t *testing.T) {
	u := newTestUnit(t, "Lucifer", 10, 10, 10)

	advanceSeconds(t, u, 2)

	if u.Activity() != ActivityIdle {
		t.Fatalf("expected unit without idle policy to stay idle, got %s", u.Activity())
	}
}

func TestIdleBehavior_NotInvokedWithActiveGoal(t *testing.T) {
	u := newAutoUnit(t, &scriptedRandom{ints: []int{2}})
	if err := u.MoveTo(11, 10, 10); err != nil {
		t.Fatalf("move to: %v", err)
	}

	for i := 0; i < 50 && u.HasEndGoal(); i++ {
		if err := u.Advance(0.2); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	if u.Activity() == ActivityResting {
		t.Fatalf("idle behavior must not preempt an active navigation goal")
	}
}
