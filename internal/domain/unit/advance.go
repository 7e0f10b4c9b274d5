package unit

// Advance moves the simulation forward by dt seconds. The step must lie
// in (0, MaxTickSeconds] to cap integration error; anything else fails
// without mutating state. An incapacitated unit validates dt and does
// nothing else.
//
// Effects run in a fixed order: fatigue accrual, forced rest, then the
// per-activity tick.
func (u *Unit) Advance(dt float64) error {
	if dt <= 0 || dt > MaxTickSeconds {
		return ErrInvalidDelta
	}
	if u.incapacitated {
		return nil
	}

	u.fatigue += dt
	if u.fatigue >= FatigueRestThreshold {
		u.mustRest = true
	}
	if u.mustRest {
		u.forceRest()
		return nil
	}

	switch u.activity {
	case ActivityWalking:
		u.step(dt)
	case ActivityWorking:
		u.workTick(dt)
	case ActivityResting:
		u.restTick(dt)
	case ActivityAttacking:
		u.lockRemaining -= dt
		if u.lockRemaining <= 0 {
			u.activity = ActivityIdle
		}
	case ActivityIdle:
		if u.hasEndGoal {
			u.stepTowardEndGoal()
		} else if u.autoBehavior && u.idle != nil {
			u.idle.Act(u)
		}
	}
	return nil
}
