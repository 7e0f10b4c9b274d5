package unit

import (
	"math"

	"unitsim/internal/domain/geom"
)

// MoveTo sets the far navigation goal to the given cell and issues the
// first adjacent step toward it. A locked or incapacitated unit ignores
// the command silently.
func (u *Unit) MoveTo(cellX, cellY, cellZ int) error {
	if u.incapacitated || u.locked() {
		return nil
	}
	goal := geom.Vec3{X: float64(cellX), Y: float64(cellY), Z: float64(cellZ)}
	if !u.bounds.Contains(goal) {
		return ErrInvalidPosition
	}
	u.endGoal = goal
	u.hasEndGoal = true
	u.stepTowardEndGoal()
	return nil
}

// MoveToAdjacent starts walking to the center of the cell offset by
// (dx,dy,dz) from the current cell. Walking may interrupt working but
// nothing else; a locked unit ignores the command silently. Malformed
// offsets and out-of-world targets fail loudly.
func (u *Unit) MoveToAdjacent(dx, dy, dz int) error {
	if u.incapacitated || u.locked() {
		return nil
	}
	if u.activity != ActivityIdle && u.activity != ActivityWorking {
		return nil
	}
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 || dz < -1 || dz > 1 {
		return ErrInvalidOffset
	}

	offset := geom.Vec3{X: float64(dx), Y: float64(dy), Z: float64(dz)}
	goal := u.position.Floor().Add(geom.Vec3{X: 0.5, Y: 0.5, Z: 0.5}).Add(offset)
	if !u.bounds.Contains(goal) {
		return ErrInvalidPosition
	}

	direction := goal.Sub(u.position)
	if direction.IsAlmostZero() {
		// Degenerate zero-length move; leave all state untouched.
		return nil
	}

	u.start = u.position
	u.currentGoal = goal
	u.velocity = direction.Normalize()

	switch dz {
	case 1:
		u.currentSpeed = ClimbSpeedFactor * u.baseSpeed
	case -1:
		u.currentSpeed = DescendSpeedFactor * u.baseSpeed
	default:
		u.currentSpeed = u.baseSpeed
	}

	u.activity = ActivityWalking
	u.orientation = math.Atan2(u.velocity.Y, u.velocity.X)
	return nil
}

// step integrates one tick of walking motion. On reaching the current
// goal the position snaps to it exactly, avoiding overshoot drift.
func (u *Unit) step(dt float64) {
	factor := 1.0
	if u.IsSprinting() {
		factor = SprintSpeedFactor
		u.stamina -= SprintStaminaDrainPerSecond * dt
		if u.stamina < 0 {
			u.stamina = 0
		}
	}

	next := u.position.Add(u.velocity.Scale(dt * u.currentSpeed * factor))
	if u.bounds.Contains(next) {
		u.position = next
	}

	target := u.currentGoal.Sub(u.start).Length()
	traveled := u.position.Sub(u.start).Length()
	if traveled < target {
		return
	}

	u.position = u.currentGoal
	u.activity = ActivityIdle
	if !u.hasEndGoal {
		return
	}
	if u.currentGoal.SameCell(u.endGoal) {
		u.hasEndGoal = false
		u.sprinting = false
		return
	}
	u.stepTowardEndGoal()
}

// stepTowardEndGoal computes the signed unit step from the current cell
// to the end goal's cell and issues it best-effort: a step that turns out
// invalid is simply skipped this tick.
func (u *Unit) stepTowardEndGoal() {
	cx, cy, cz := u.position.Cell()
	gx, gy, gz := u.endGoal.Cell()
	_ = u.MoveToAdjacent(sign(gx-cx), sign(gy-cy), sign(gz-cz))
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
