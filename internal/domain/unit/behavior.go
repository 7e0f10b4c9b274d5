package unit

// IdleBehavior decides what an idle unit with no goal does on its own.
// It only runs when the unit was constructed with auto behavior enabled
// and a non-nil policy.
type IdleBehavior interface {
	Act(u *Unit)
}

// RandomIdleBehavior picks, with equal probability, walking to a random
// cell, working, or resting.
type RandomIdleBehavior struct {
	// Extent bounds the random cell coordinates. Zero means the default
	// world extent.
	Extent int
}

func (b RandomIdleBehavior) Act(u *Unit) {
	extent := b.Extent
	if extent <= 0 {
		extent = 50
	}
	switch u.rng.IntN(3) {
	case 0:
		x := u.rng.IntN(extent)
		y := u.rng.IntN(extent)
		z := u.rng.IntN(extent)
		_ = u.MoveTo(x, y, z)
	case 1:
		u.StartWork()
	default:
		u.StartRest()
	}
}
