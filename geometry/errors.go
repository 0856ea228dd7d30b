package geometry

import "errors"

var (
	// ErrInvalidCount indicates an LED count that is not a positive integer.
	ErrInvalidCount = errors.New("geometry: led count must be positive")
	// ErrInvalidRadius indicates a radius ≤ 0, or inner ≥ outer for a ring.
	ErrInvalidRadius = errors.New("geometry: radius must be positive")
	// ErrDegenerateArc indicates an arc spanning zero degrees with more than one LED.
	ErrDegenerateArc = errors.New("geometry: arc spans zero degrees")
	// ErrRingCount indicates a multi-ring layout outside the 1..5 ring range.
	ErrRingCount = errors.New("geometry: ring count must be between 1 and 5")
	// ErrInvalidSpacing indicates a non-positive spacing parameter.
	ErrInvalidSpacing = errors.New("geometry: spacing must be positive")
	// ErrNoPositions indicates a custom layout with an empty position list.
	ErrNoPositions = errors.New("geometry: custom layout needs at least one position")
	// ErrInvalidDims indicates non-positive rectangular dimensions.
	ErrInvalidDims = errors.New("geometry: width and height must be positive")
)
