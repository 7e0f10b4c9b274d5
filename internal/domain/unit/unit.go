package unit

import (
	"math"
	"strings"
	"time"

	"unitsim/internal/domain/geom"
	"unitsim/internal/domain/world"
)

// Activity is the discrete activity a unit is engaged in. Exactly one
// activity holds at any instant.
type Activity string

const (
	ActivityIdle      Activity = "idle"
	ActivityWalking   Activity = "walking"
	ActivityAttacking Activity = "attacking"
	ActivityDefending Activity = "defending"
	ActivityDancing   Activity = "dancing"
	ActivityWorking   Activity = "working"
	ActivityResting   Activity = "resting"
)

// Boundary decides whether a position lies inside the world.
type Boundary interface {
	Contains(v geom.Vec3) bool
}

const validNameChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ'\" "

// Unit is a single autonomous agent in the grid world. It owns continuous
// physical state (position, velocity, orientation) and discrete activity
// state, advanced by fixed-step ticks. All operations run synchronously
// on the caller's goroutine; a Unit is not safe for concurrent use.
type Unit struct {
	name string

	strength  int
	agility   int
	toughness int
	weight    int

	maxHealth  int
	maxStamina int
	health     float64
	stamina    float64

	position     geom.Vec3
	orientation  float64
	baseSpeed    float64
	velocity     geom.Vec3
	currentSpeed float64
	sprinting    bool

	start       geom.Vec3
	currentGoal geom.Vec3
	endGoal     geom.Vec3
	hasEndGoal  bool

	activity Activity
	// lockRemaining is the time during which the current activity cannot be
	// voluntarily preempted. Forced rest bypasses it explicitly.
	lockRemaining float64
	// busyRemaining is the remaining work duration, independent of the lock.
	busyRemaining float64

	fatigue  float64
	mustRest bool

	autoBehavior  bool
	incapacitated bool

	bounds Boundary
	rng    RandomSource
	idle   IdleBehavior
}

// Config carries the construction parameters for a Unit. Position is in
// cell coordinates; the unit spawns at the center of that cell.
type Config struct {
	Position     geom.Vec3
	Name         string
	Weight       int
	Strength     int
	Agility      int
	Toughness    int
	AutoBehavior bool

	// Boundary defaults to the standard [0,50)³ cube when nil.
	Boundary Boundary
	// Random defaults to a time-seeded math/rand source when nil.
	Random RandomSource
	// Idle is the optional autonomous idle policy. Nil disables it.
	Idle IdleBehavior
}

// New builds a fully initialized Unit. Attributes are clamped into the
// init range [25,100] with weight raised to at least (strength+agility)/2
// before the derived capacities are computed.
func New(cfg Config) (*Unit, error) {
	u := &Unit{
		strength:     cfg.Strength,
		agility:      cfg.Agility,
		toughness:    cfg.Toughness,
		weight:       cfg.Weight,
		autoBehavior: cfg.AutoBehavior,
		bounds:       cfg.Boundary,
		rng:          cfg.Random,
		idle:         cfg.Idle,
	}
	if u.bounds == nil {
		u.bounds = world.DefaultBounds()
	}
	if u.rng == nil {
		u.rng = NewRandomSource(time.Now().UnixNano())
	}
	u.clampAttributes(InitAttributeMin, InitAttributeMax)

	capacity := int(math.Ceil(200.0 * float64(u.weight) / 100.0 * float64(u.toughness) / 100.0))
	u.maxHealth = capacity
	u.maxStamina = capacity
	u.health = float64(capacity)
	u.stamina = float64(capacity)

	u.baseSpeed = 1.5 * float64(u.strength+u.agility) / (2.0 * float64(u.weight))

	center := cfg.Position.Add(geom.Vec3{X: 0.5, Y: 0.5, Z: 0.5})
	if !u.bounds.Contains(center) {
		return nil, ErrInvalidPosition
	}
	u.position = center

	if !IsValidName(cfg.Name) {
		return nil, ErrInvalidName
	}
	u.name = cfg.Name

	u.orientation = math.Pi / 2
	u.activity = ActivityIdle
	u.lockRemaining = -1
	return u, nil
}

// clampAttributes clamps strength, agility, weight and toughness into
// [min, max] and raises weight to at least (strength+agility)/2.
func (u *Unit) clampAttributes(min, max int) {
	u.strength = clampInt(u.strength, min, max)
	u.agility = clampInt(u.agility, min, max)
	u.toughness = clampInt(u.toughness, min, max)

	if floor := (u.strength + u.agility) / 2; u.weight < floor {
		u.weight = floor
	}
	u.weight = clampInt(u.weight, min, max)
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// IsValidName reports whether the name is at least two characters long,
// starts with an uppercase A-Z letter, and contains only letters, spaces
// and quote characters.
func IsValidName(name string) bool {
	if len(name) < 2 {
		return false
	}
	if name[0] < 'A' || name[0] > 'Z' {
		return false
	}
	for _, r := range name {
		if !strings.ContainsRune(validNameChars, r) {
			return false
		}
	}
	return true
}

// Rename changes the unit's name, validating it against the naming rules.
func (u *Unit) Rename(name string) error {
	if !IsValidName(name) {
		return ErrInvalidName
	}
	u.name = name
	return nil
}

// SetStrength clamps the new value into the runtime range and re-raises
// weight to keep the weight invariant.
func (u *Unit) SetStrength(v int) {
	u.strength = clampInt(v, AttributeMin, AttributeMax)
	u.enforceWeightFloor()
}

func (u *Unit) SetAgility(v int) {
	u.agility = clampInt(v, AttributeMin, AttributeMax)
	u.enforceWeightFloor()
}

func (u *Unit) SetToughness(v int) {
	u.toughness = clampInt(v, AttributeMin, AttributeMax)
}

func (u *Unit) SetWeight(v int) {
	u.weight = clampInt(v, AttributeMin, AttributeMax)
	u.enforceWeightFloor()
}

func (u *Unit) enforceWeightFloor() {
	if floor := (u.strength + u.agility) / 2; u.weight < floor {
		u.weight = clampInt(floor, AttributeMin, AttributeMax)
	}
}

func (u *Unit) Name() string          { return u.name }
func (u *Unit) Strength() int         { return u.strength }
func (u *Unit) Agility() int          { return u.agility }
func (u *Unit) Toughness() int        { return u.toughness }
func (u *Unit) Weight() int           { return u.weight }
func (u *Unit) MaxHealth() int        { return u.maxHealth }
func (u *Unit) MaxStamina() int       { return u.maxStamina }
func (u *Unit) Health() float64       { return u.health }
func (u *Unit) Stamina() float64      { return u.stamina }
func (u *Unit) Position() geom.Vec3   { return u.position }
func (u *Unit) Orientation() float64  { return u.orientation }
func (u *Unit) BaseSpeed() float64    { return u.baseSpeed }
func (u *Unit) CurrentSpeed() float64 { return u.currentSpeed }
func (u *Unit) Velocity() geom.Vec3   { return u.velocity }
func (u *Unit) Activity() Activity    { return u.activity }
func (u *Unit) Fatigue() float64      { return u.fatigue }
func (u *Unit) MustRest() bool        { return u.mustRest }
func (u *Unit) HasEndGoal() bool      { return u.hasEndGoal }
func (u *Unit) EndGoal() geom.Vec3    { return u.endGoal }
func (u *Unit) CurrentGoal() geom.Vec3 { return u.currentGoal }
func (u *Unit) Incapacitated() bool   { return u.incapacitated }

// LockRemaining is the time left during which the current activity cannot
// be voluntarily preempted. Negative means unlocked.
func (u *Unit) LockRemaining() float64 { return u.lockRemaining }

// BusyRemaining is the remaining work duration.
func (u *Unit) BusyRemaining() float64 { return u.busyRemaining }

// IsSprinting reports whether the unit is sprinting. Sprinting is only
// logically true while walking.
func (u *Unit) IsSprinting() bool {
	return u.sprinting && u.activity == ActivityWalking
}

func (u *Unit) AutoBehaviorEnabled() bool { return u.autoBehavior }

func (u *Unit) SetAutoBehaviorEnabled(enabled bool) { u.autoBehavior = enabled }

// locked reports whether a voluntary command is currently gated out.
func (u *Unit) locked() bool {
	return u.lockRemaining > 0
}

// incapacitate puts the unit in its terminal condition: health pinned at
// zero, all activity stopped, every later command a no-op.
func (u *Unit) incapacitate() {
	u.health = 0
	u.activity = ActivityIdle
	u.lockRemaining = -1
	u.busyRemaining = 0
	u.sprinting = false
	u.hasEndGoal = false
	u.mustRest = false
	u.incapacitated = true
}
