package unit

import "errors"

var (
	// ErrInvalidPosition reports a position outside the world bounds.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidName reports a name that fails the naming rules.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidDelta reports an Advance step outside (0, MaxTickSeconds].
	ErrInvalidDelta = errors.New("invalid delta time")

	// ErrInvalidOffset reports an adjacent-move offset outside [-1, 1].
	ErrInvalidOffset = errors.New("adjacent offset out of range")
)
