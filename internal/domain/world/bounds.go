package world

import "unitsim/internal/domain/geom"

// DefaultExtent is the edge length of the default world cube.
const DefaultExtent = 50.0

// Bounds is an axis-aligned cube anchored at the origin. A position is
// inside the world when every coordinate lies in [0, Extent).
type Bounds struct {
	Extent float64
}

func DefaultBounds() Bounds {
	return Bounds{Extent: DefaultExtent}
}

func NewBounds(extent float64) Bounds {
	if extent <= 0 {
		extent = DefaultExtent
	}
	return Bounds{Extent: extent}
}

func (b Bounds) Contains(v geom.Vec3) bool {
	if v.X < 0 || v.X >= b.Extent {
		return false
	}
	if v.Y < 0 || v.Y >= b.Extent {
		return false
	}
	if v.Z < 0 || v.Z >= b.Extent {
		return false
	}
	return true
}
