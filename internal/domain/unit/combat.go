package unit

import (
	"math"

	"unitsim/internal/domain/geom"
)

// Attack makes the unit attack the victim. The attack only lands when the
// victim is within adjacency (per-axis Chebyshev distance < 2); a locked
// attacker or an out-of-range victim leaves both units untouched. Combat
// resolves synchronously: the victim's defense runs before Attack returns.
func (u *Unit) Attack(victim *Unit) {
	if u.incapacitated || victim == nil || victim.incapacitated {
		return
	}
	if u.locked() {
		return
	}
	if !u.adjacentTo(victim) {
		return
	}

	toVictim := victim.position.Sub(u.position)
	u.orientation = math.Atan2(toVictim.Y, toVictim.X)
	victim.orientation = math.Atan2(-toVictim.Y, -toVictim.X)

	u.activity = ActivityAttacking
	u.lockRemaining = AttackLockSeconds
	victim.defend(u)
}

func (u *Unit) adjacentTo(other *Unit) bool {
	d := other.position.Sub(u.position)
	return math.Abs(d.X) < AdjacencyDistance &&
		math.Abs(d.Y) < AdjacencyDistance &&
		math.Abs(d.Z) < AdjacencyDistance
}

// defend resolves an incoming attack: dodge, block, or take damage, in
// that order. Whatever the outcome, defending ends any prior activity and
// clears the lock.
func (u *Unit) defend(attacker *Unit) {
	pDodge := DodgeChanceFactor * float64(u.agility) / float64(attacker.agility)
	if u.rng.Float64() < pDodge {
		u.dodge()
	} else {
		pBlock := BlockChanceFactor * float64(u.strength+u.agility) /
			float64(attacker.strength+attacker.agility)
		if u.rng.Float64() >= pBlock {
			damage := attacker.strength / DamageDivisor
			u.health -= float64(damage)
			if u.health <= 0 {
				u.incapacitate()
				return
			}
		}
	}
	u.activity = ActivityIdle
	u.lockRemaining = -1
}

// dodge relocates the unit to a random valid adjacent cell in its
// horizontal plane. With no valid candidate the unit stays put.
func (u *Unit) dodge() {
	candidates := make([]geom.Vec3, 0, 8)
	for xd := -1; xd <= 1; xd++ {
		for yd := -1; yd <= 1; yd++ {
			if xd == 0 && yd == 0 {
				continue
			}
			target := u.position.Add(geom.Vec3{X: float64(xd), Y: float64(yd)})
			if u.bounds.Contains(target) {
				candidates = append(candidates, target)
			}
		}
	}
	if len(candidates) == 0 {
		return
	}
	u.position = candidates[u.rng.IntN(len(candidates))]
}
