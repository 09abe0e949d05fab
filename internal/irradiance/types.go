package irradiance

import "errors"

// Real is the numeric type used throughout the solver.
type Real = float64

// Geometry2D is a planar rectangle given by its side lengths in meters.
type Geometry2D struct {
	Length Real `json:"length"`
	Height Real `json:"height"`
}

// PlacementOffset is the source rectangle's center in the receiver's
// coordinate frame, in meters. The source is always center-anchored.
type PlacementOffset struct {
	X Real `json:"x"`
	Y Real `json:"y"`
}

// Precondition violations reported by Params.Validate / Compute.
var (
	ErrInvalidGeometry = errors.New("geometry dimensions must be positive and finite")
	ErrInvalidGrid     = errors.New("grid accuracy must be at least 2")
	ErrInvalidDistance = errors.New("standoff distance must be positive and finite")
	ErrInvalidPower    = errors.New("source power must be non-negative and finite")
)
