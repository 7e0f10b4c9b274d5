package geom

import "math"

// Epsilon used by AlmostEqual. Motion integration snaps to the goal cell
// before drift can accumulate past this, so a loose tolerance is enough.
const epsilon = 1e-6

// Vec3 is an immutable 3D vector. Every method returns a new value, so a
// Vec3 can be handed out freely without aliasing concerns.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector pointing in the same direction.
// The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < epsilon {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// AlmostEqual reports whether both vectors match per component within a
// fixed tolerance.
func (v Vec3) AlmostEqual(o Vec3) bool {
	return math.Abs(v.X-o.X) < epsilon &&
		math.Abs(v.Y-o.Y) < epsilon &&
		math.Abs(v.Z-o.Z) < epsilon
}

// IsAlmostZero reports whether the vector is within tolerance of zero.
func (v Vec3) IsAlmostZero() bool {
	return v.AlmostEqual(Vec3{})
}

// Floor returns the vector with each component floored, i.e. the origin
// corner of the grid cell containing v.
func (v Vec3) Floor() Vec3 {
	return Vec3{X: math.Floor(v.X), Y: math.Floor(v.Y), Z: math.Floor(v.Z)}
}

// Cell returns the integer grid cell containing v.
func (v Vec3) Cell() (int, int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y)), int(math.Floor(v.Z))
}

// SameCell reports whether both vectors fall inside the same grid cell.
func (v Vec3) SameCell(o Vec3) bool {
	return math.Floor(v.X) == math.Floor(o.X) &&
		math.Floor(v.Y) == math.Floor(o.Y) &&
		math.Floor(v.Z) == math.Floor(o.Z)
}
