package unit

// Attribute bounds. Construction clamps into the narrow init range; later
// attribute changes clamp into the wide runtime range.
const (
	InitAttributeMin = 25
	InitAttributeMax = 100

	AttributeMin = 1
	AttributeMax = 200
)

const (
	// MaxTickSeconds caps the per-tick integration error of Advance.
	MaxTickSeconds = 0.2

	// FatigueRestThreshold is the number of simulated seconds a unit can go
	// without resting before a rest is forced.
	FatigueRestThreshold = 180.0

	// AttackLockSeconds is the fixed attack animation lockout. It is a
	// constant, not scaled by any attribute.
	AttackLockSeconds = 1.0

	// SprintStaminaDrainPerSecond is the stamina cost of sprinting.
	SprintStaminaDrainPerSecond = 0.1

	// SprintSpeedFactor doubles movement speed while sprinting.
	SprintSpeedFactor = 2.0

	// ClimbSpeedFactor and DescendSpeedFactor scale base speed when the
	// current step goes one level up or down.
	ClimbSpeedFactor   = 0.5
	DescendSpeedFactor = 1.2

	// WorkDurationNumerator: a work bout lasts WorkDurationNumerator/strength
	// seconds.
	WorkDurationNumerator = 500.0

	// RestLockNumerator: the minimum rest lock lasts RestLockNumerator/toughness
	// seconds.
	RestLockNumerator = 40.0

	// HealthRecoveryDivisor and StaminaRecoveryDivisor set recovery rates
	// while resting: toughness/divisor points per second.
	HealthRecoveryDivisor  = 40.0
	StaminaRecoveryDivisor = 20.0

	// DodgeChanceFactor and BlockChanceFactor scale the combat outcome
	// probabilities in defend.
	DodgeChanceFactor = 0.2
	BlockChanceFactor = 0.25

	// DamageDivisor: an unblocked hit deals attackerStrength/DamageDivisor
	// health (integer division).
	DamageDivisor = 10

	// AdjacencyDistance is the exclusive per-axis Chebyshev bound within
	// which two units count as adjacent for combat.
	AdjacencyDistance = 2.0
)
