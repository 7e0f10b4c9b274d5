package unit

import (
	"math"
	"testing"

	"unitsim/internal/domain/geom"
)

func newCombatPair(t *testing.T, victimRng RandomSource) (*Unit, *Unit) {
	t.Helper()
	attacker := newTestUnit(t, "Magdalena", 10, 10, 10)
	victim, err := New(Config{
		Position:  geom.Vec3{X: 11, Y: 9, Z: 10},
		Name:      "Lucas",
		Weight:    50,
		Strength:  50,
		Agility:   50,
		Toughness: 50,
		Random:    victimRng,
	})
	if err != nil {
		t.Fatalf("new victim: %v", err)
	}
	return attacker, victim
}

func TestAttack_AdjacentVictim(t *testing.T) {
	attacker, victim := newCombatPair(t, &scriptedRandom{floats: []float64{0.9, 0.0}})

	attacker.Attack(victim)

	if attacker.Activity() != ActivityAttacking {
		t.Fatalf("expected attacker attacking, got %s", attacker.Activity())
	}
	if attacker.LockRemaining() != AttackLockSeconds {
		t.Fatalf("expected attack lock %f, got %f", AttackLockSeconds, attacker.LockRemaining())
	}
}

func TestAttack_BlockedWhileLocked(t *testing.T) {
	s := newTestUnit(t, "Mattheus", 10, 10, 10).Snapshot()
	s.LockRemaining = 10
	attacker := restoreTestUnit(t, s, RestoreConfig{})
	victim := newTestUnit(t, "Judas", 11, 9, 10)

	attacker.Attack(victim)

	if attacker.Activity() == ActivityAttacking {
		t.Fatalf("locked attacker must not attack")
	}
}

func TestAttack_VictimOutOfRange(t *testing.T) {
	attacker := newTestUnit(t, "Magdalena", 10, 10, 10)
	victim := newTestUnit(t, "Lucas", 14, 10, 10)

	attacker.Attack(victim)

	if attacker.Activity() == ActivityAttacking {
		t.Fatalf("out-of-range attack must leave attacker unchanged")
	}
	if victim.Health() != 50 {
		t.Fatalf("out-of-range attack must not damage victim")
	}
}

func TestAttack_CombatantsFaceEachOther(t *testing.T) {
	attacker, victim := newCombatPair(t, &scriptedRandom{floats: []float64{0.9, 0.0}})

	attacker.Attack(victim)

	// Victim sits at (+1,-1) of the attacker.
	want := math.Atan2(-1, 1)
	if math.Abs(attacker.Orientation()-want) > 1e-9 {
		t.Fatalf("attacker not facing victim: %f", attacker.Orientation())
	}
	if math.Abs(victim.Orientation()-math.Atan2(1, -1)) > 1e-9 {
		t.Fatalf("victim not facing attacker: %f", victim.Orientation())
	}
}

func TestDefend_DodgeAvoidsDamageAndRelocates(t *testing.T) {
	// First roll below dodge chance 0.2, dodge target index 3.
	attacker, victim := newCombatPair(t, &scriptedRandom{floats: []float64{0.1}, ints: []int{3}})
	before := victim.Position()

	attacker.Attack(victim)

	if victim.Health() != 50 {
		t.Fatalf("dodge must avoid damage, health %f", victim.Health())
	}
	moved := victim.Position().Sub(before)
	if moved.IsAlmostZero() {
		t.Fatalf("dodge must relocate the victim")
	}
	if moved.Z != 0 {
		t.Fatalf("dodge must stay in the horizontal plane, moved %+v", moved)
	}
	if math.Abs(moved.X) > 1 || math.Abs(moved.Y) > 1 {
		t.Fatalf("dodge must move at most one cell per axis, moved %+v", moved)
	}
	if victim.Activity() != ActivityIdle || victim.LockRemaining() != -1 {
		t.Fatalf("defending must reset the victim to idle and clear the lock")
	}
}

func TestDefend_BlockAvoidsDamageInPlace(t *testing.T) {
	// Dodge roll fails (0.9 >= 0.2), block roll succeeds (0.1 < 0.25).
	attacker, victim := newCombatPair(t, &scriptedRandom{floats: []float64{0.9, 0.1}})
	before := victim.Position()

	attacker.Attack(victim)

	if victim.Health() != 50 {
		t.Fatalf("block must avoid damage, health %f", victim.Health())
	}
	if !victim.Position().AlmostEqual(before) {
		t.Fatalf("block must not reposition the victim")
	}
}

func TestDefend_TakesDamageWhenBothRollsFail(t *testing.T) {
	attacker, victim := newCombatPair(t, &scriptedRandom{floats: []float64{0.9, 0.9}})

	attacker.Attack(victim)

	// attacker strength 50 -> 5 damage
	if victim.Health() != 45 {
		t.Fatalf("expected health 45 after hit, got %f", victim.Health())
	}
	if victim.Activity() != ActivityIdle || victim.LockRemaining() != -1 {
		t.Fatalf("defending must reset the victim to idle and clear the lock")
	}
}

func TestDefend_InterruptsVictimActivity(t *testing.T) {
	attacker, _ := newCombatPair(t, nil)
	s := newTestUnit(t, "Lucas", 11, 9, 10).Snapshot()
	s.Activity = ActivityWorking
	s.BusyRemaining = 7
	victim := restoreTestUnit(t, s, RestoreConfig{Random: &scriptedRandom{floats: []float64{0.9, 0.1}}})

	attacker.Attack(victim)

	if victim.Activity() != ActivityIdle {
		t.Fatalf("defending must end the victim's activity, got %s", victim.Activity())
	}
}

func TestDefend_FatalHitIncapacitates(t *testing.T) {
	s := newTestUnit(t, "Lucas", 11, 9, 10).Snapshot()
	s.Health = 3
	victim := restoreTestUnit(t, s, RestoreConfig{Random: &scriptedRandom{floats: []float64{0.9, 0.9}}})
	attacker := newTestUnit(t, "Magdalena", 10, 10, 10)

	attacker.Attack(victim)

	if !victim.Incapacitated() {
		t.Fatalf("expected victim incapacitated")
	}
	if victim.Health() != 0 {
		t.Fatalf("expected health pinned at 0, got %f", victim.Health())
	}

	// Every later command is a silent no-op.
	if err := victim.MoveToAdjacent(1, 0, 0); err != nil {
		t.Fatalf("incapacitated command must no-op, got %v", err)
	}
	victim.StartWork()
	if victim.Activity() != ActivityIdle {
		t.Fatalf("incapacitated unit must stay idle, got %s", victim.Activity())
	}
	if err := victim.Advance(0.2); err != nil {
		t.Fatalf("advance on incapacitated unit: %v", err)
	}
	if victim.MustRest() {
		t.Fatalf("incapacitated unit must not accrue forced rest")
	}
}

func TestAttack_IncapacitatedVictimIgnored(t *testing.T) {
	s := newTestUnit(t, "Lucas", 11, 9, 10).Snapshot()
	s.Incapacitated = true
	s.Health = 0
	victim := restoreTestUnit(t, s, RestoreConfig{})
	attacker := newTestUnit(t, "Magdalena", 10, 10, 10)

	attacker.Attack(victim)

	if attacker.Activity() == ActivityAttacking {
		t.Fatalf("attacking an incapacitated victim must no-op")
	}
}

func TestAttack_LockExpiresBackToIdle(t *testing.T) {
	attacker, victim := newCombatPair(t, &scriptedRandom{floats: []float64{0.9, 0.1}})
	attacker.Attack(victim)

	advanceSeconds(t, attacker, 1.2)

	if attacker.Activity() != ActivityIdle {
		t.Fatalf("expected attacker idle after lock expiry, got %s", attacker.Activity())
	}
}
