package unit

// StartWork begins a work bout of 500/strength seconds. Valid only from
// Idle or Working; re-issuing while working restarts the busy timer. A
// locked unit ignores the command silently.
func (u *Unit) StartWork() {
	if u.incapacitated || u.locked() {
		return
	}
	if u.activity != ActivityIdle && u.activity != ActivityWorking {
		return
	}
	u.activity = ActivityWorking
	u.busyRemaining = WorkDurationNumerator / float64(u.strength)
}

func (u *Unit) workTick(dt float64) {
	u.busyRemaining -= dt
	if u.busyRemaining <= 0 {
		u.activity = ActivityIdle
	}
}

// StartRest begins resting, interrupting whatever activity is in
// progress. A locked unit ignores the command silently; a forced rest
// (fatigue threshold) bypasses the lock via forceRest instead.
func (u *Unit) StartRest() {
	if u.incapacitated || u.locked() {
		return
	}
	u.beginRest()
}

// forceRest is the mandatory-rest interrupt. Unlike StartRest it ignores
// the activity lock.
func (u *Unit) forceRest() {
	if u.incapacitated {
		return
	}
	u.beginRest()
}

func (u *Unit) beginRest() {
	u.activity = ActivityResting
	u.lockRemaining = RestLockNumerator / float64(u.toughness)
	u.mustRest = false
	u.fatigue = 0
}

// restTick runs one tick of recovery. Health always recovers fully before
// stamina starts; once both are full the unit leaves Resting as soon as
// the minimum rest lock has elapsed.
func (u *Unit) restTick(dt float64) {
	u.lockRemaining -= dt

	if u.health < float64(u.maxHealth) {
		u.health += float64(u.toughness) / HealthRecoveryDivisor * dt
		if u.health > float64(u.maxHealth) {
			u.health = float64(u.maxHealth)
		}
		return
	}
	if u.stamina < float64(u.maxStamina) {
		u.stamina += float64(u.toughness) / StaminaRecoveryDivisor * dt
		if u.stamina > float64(u.maxStamina) {
			u.stamina = float64(u.maxStamina)
		}
		return
	}
	if u.lockRemaining < 0 {
		u.activity = ActivityIdle
	}
}

// StartSprint begins sprinting. Calling it while not walking or with no
// stamina is a programming error, not recoverable input: callers validate
// first.
func (u *Unit) StartSprint() {
	if u.activity != ActivityWalking {
		panic("unit: StartSprint called while not walking")
	}
	if u.stamina <= 0 {
		panic("unit: StartSprint called with no stamina")
	}
	u.sprinting = true
}

// StopSprint stops sprinting. Calling it while not sprinting is a
// programming error.
func (u *Unit) StopSprint() {
	if !u.IsSprinting() {
		panic("unit: StopSprint called while not sprinting")
	}
	u.sprinting = false
}
