package unit

import (
	"unitsim/internal/domain/geom"
	"unitsim/internal/domain/world"
)

// Snapshot is the complete serializable state of a Unit. It round-trips
// through Restore, which is how persisted units are rehydrated and how
// tests put a unit into an arbitrary mid-simulation state.
type Snapshot struct {
	Name string `json:"name"`

	Strength  int `json:"strength"`
	Agility   int `json:"agility"`
	Toughness int `json:"toughness"`
	Weight    int `json:"weight"`

	MaxHealth  int     `json:"max_health"`
	MaxStamina int     `json:"max_stamina"`
	Health     float64 `json:"health"`
	Stamina    float64 `json:"stamina"`

	Position     geom.Vec3 `json:"position"`
	Orientation  float64   `json:"orientation"`
	BaseSpeed    float64   `json:"base_speed"`
	Velocity     geom.Vec3 `json:"velocity"`
	CurrentSpeed float64   `json:"current_speed"`
	Sprinting    bool      `json:"sprinting"`

	Start       geom.Vec3 `json:"start"`
	CurrentGoal geom.Vec3 `json:"current_goal"`
	EndGoal     geom.Vec3 `json:"end_goal"`
	HasEndGoal  bool      `json:"has_end_goal"`

	Activity      Activity `json:"activity"`
	LockRemaining float64  `json:"lock_remaining"`
	BusyRemaining float64  `json:"busy_remaining"`

	Fatigue  float64 `json:"fatigue"`
	MustRest bool    `json:"must_rest"`

	AutoBehavior  bool `json:"auto_behavior"`
	Incapacitated bool `json:"incapacitated"`
}

// Snapshot captures the unit's full state.
func (u *Unit) Snapshot() Snapshot {
	return Snapshot{
		Name:          u.name,
		Strength:      u.strength,
		Agility:       u.agility,
		Toughness:     u.toughness,
		Weight:        u.weight,
		MaxHealth:     u.maxHealth,
		MaxStamina:    u.maxStamina,
		Health:        u.health,
		Stamina:       u.stamina,
		Position:      u.position,
		Orientation:   u.orientation,
		BaseSpeed:     u.baseSpeed,
		Velocity:      u.velocity,
		CurrentSpeed:  u.currentSpeed,
		Sprinting:     u.sprinting,
		Start:         u.start,
		CurrentGoal:   u.currentGoal,
		EndGoal:       u.endGoal,
		HasEndGoal:    u.hasEndGoal,
		Activity:      u.activity,
		LockRemaining: u.lockRemaining,
		BusyRemaining: u.busyRemaining,
		Fatigue:       u.fatigue,
		MustRest:      u.mustRest,
		AutoBehavior:  u.autoBehavior,
		Incapacitated: u.incapacitated,
	}
}

// RestoreConfig carries the collaborators a rehydrated unit needs; they
// are not part of the snapshot.
type RestoreConfig struct {
	Boundary Boundary
	Random   RandomSource
	Idle     IdleBehavior
}

// Restore rebuilds a Unit from a snapshot. Name and position are
// re-validated; numeric state is trusted except health and stamina, which
// are clamped back into their invariant ranges.
func Restore(s Snapshot, cfg RestoreConfig) (*Unit, error) {
	bounds := cfg.Boundary
	if bounds == nil {
		bounds = world.DefaultBounds()
	}
	if !IsValidName(s.Name) {
		return nil, ErrInvalidName
	}
	if !bounds.Contains(s.Position) {
		return nil, ErrInvalidPosition
	}
	rng := cfg.Random
	if rng == nil {
		rng = NewRandomSource(0)
	}

	u := &Unit{
		name:          s.Name,
		strength:      s.Strength,
		agility:       s.Agility,
		toughness:     s.Toughness,
		weight:        s.Weight,
		maxHealth:     s.MaxHealth,
		maxStamina:    s.MaxStamina,
		health:        s.Health,
		stamina:       s.Stamina,
		position:      s.Position,
		orientation:   s.Orientation,
		baseSpeed:     s.BaseSpeed,
		velocity:      s.Velocity,
		currentSpeed:  s.CurrentSpeed,
		sprinting:     s.Sprinting,
		start:         s.Start,
		currentGoal:   s.CurrentGoal,
		endGoal:       s.EndGoal,
		hasEndGoal:    s.HasEndGoal,
		activity:      s.Activity,
		lockRemaining: s.LockRemaining,
		busyRemaining: s.BusyRemaining,
		fatigue:       s.Fatigue,
		mustRest:      s.MustRest,
		autoBehavior:  s.AutoBehavior,
		incapacitated: s.Incapacitated,
		bounds:        bounds,
		rng:           rng,
		idle:          cfg.Idle,
	}
	u.clampAttributes(AttributeMin, AttributeMax)
	if u.health > float64(u.maxHealth) {
		u.health = float64(u.maxHealth)
	}
	if u.health < 0 {
		u.health = 0
	}
	if u.stamina > float64(u.maxStamina) {
		u.stamina = float64(u.maxStamina)
	}
	if u.stamina < 0 {
		u.stamina = 0
	}
	if u.activity == "" {
		u.activity = ActivityIdle
	}
	return u, nil
}
