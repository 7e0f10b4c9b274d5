package unit

import (
	"testing"

	"unitsim/internal/domain/geom"
)

// scriptedRandom replays predetermined values so combat and idle rolls
// are fully deterministic in tests.
type scriptedRandom struct {
	ints   []int
	floats []float64
}

func (r *scriptedRandom) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func newTestUnit(t *testing.T, name string, x, y, z float64) *Unit {
	t.Helper()
	u, err := New(Config{
		Position:  geom.Vec3{X: x, Y: y, Z: z},
		Name:      name,
		Weight:    50,
		Strength:  50,
		Agility:   50,
		Toughness: 50,
		Random:    NewRandomSource(1),
	})
	if err != nil {
		t.Fatalf("new unit: %v", err)
	}
	return u
}

// restoreTestUnit rebuilds a unit from a mutated snapshot, which is how
// tests put a unit into an arbitrary mid-simulation state.
func restoreTestUnit(t *testing.T, s Snapshot, cfg RestoreConfig) *Unit {
	t.Helper()
	u, err := Restore(s, cfg)
	if err != nil {
		t.Fatalf("restore unit: %v", err)
	}
	return u
}

func advanceSeconds(t *testing.T, u *Unit, seconds float64) {
	t.Helper()
	ticks := int(seconds / 0.2)
	for i := 0; i < ticks; i++ {
		if err := u.Advance(0.2); err != nil {
			t.Fatalf("advance tick %d: %v", i, err)
		}
	}
}
