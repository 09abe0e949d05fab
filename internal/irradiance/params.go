package irradiance

import "fmt"

// Params is one immutable computation request. Zero values for the
// calibration knobs select the named defaults from const.go.
type Params struct {
	Receiver  Geometry2D
	Source    Geometry2D
	Placement PlacementOffset

	Power    Real // total emitted power, W
	Standoff Real // perpendicular plane separation, m

	Accuracy int // receiver grid is Accuracy×Accuracy, >= 2

	// SourceSamples is the per-axis source sampling count.
	// 0 selects the adaptive rule clamp(Accuracy/10, 2, 10);
	// 1 samples the source center only (point-source limit).
	SourceSamples int

	NearFieldCorrection bool

	// 0 selects the default for each of these.
	CalibrationDivisor Real
	NearFieldCoeff     Real
	NearFieldThreshold Real
}

// withDefaults fills zero-valued calibration knobs, like loadConfig does for
// file-level settings.
func (p Params) withDefaults() Params {
	if p.CalibrationDivisor == 0 {
		p.CalibrationDivisor = CalibrationDivisor
	}
	if p.NearFieldCoeff == 0 {
		p.NearFieldCoeff = NearFieldCoeff
	}
	if p.NearFieldThreshold == 0 {
		p.NearFieldThreshold = NearFieldThreshold
	}
	return p
}

// Validate reports the first violated precondition.
func (p Params) Validate() error {
	if !(p.Receiver.Length > 0) || !(p.Receiver.Height > 0) || !isFinite(p.Receiver.Length) || !isFinite(p.Receiver.Height) {
		return fmt.Errorf("%w: receiver %gx%g", ErrInvalidGeometry, p.Receiver.Length, p.Receiver.Height)
	}
	if !(p.Source.Length > 0) || !(p.Source.Height > 0) || !isFinite(p.Source.Length) || !isFinite(p.Source.Height) {
		return fmt.Errorf("%w: source %gx%g", ErrInvalidGeometry, p.Source.Length, p.Source.Height)
	}
	if !isFinite(p.Placement.X) || !isFinite(p.Placement.Y) {
		return fmt.Errorf("%w: placement (%g, %g)", ErrInvalidGeometry, p.Placement.X, p.Placement.Y)
	}
	if p.Accuracy < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidGrid, p.Accuracy)
	}
	if p.SourceSamples < 0 {
		return fmt.Errorf("%w: source samples %d", ErrInvalidGrid, p.SourceSamples)
	}
	if !(p.Standoff > 0) || !isFinite(p.Standoff) {
		return fmt.Errorf("%w: got %g", ErrInvalidDistance, p.Standoff)
	}
	if p.Power < 0 || !isFinite(p.Power) {
		return fmt.Errorf("%w: got %g", ErrInvalidPower, p.Power)
	}
	if !(p.CalibrationDivisor > 0) && p.CalibrationDivisor != 0 {
		return fmt.Errorf("calibration divisor must be positive, got %g", p.CalibrationDivisor)
	}
	if p.NearFieldCoeff < 0 || !isFinite(p.NearFieldCoeff) {
		return fmt.Errorf("near-field coefficient must be non-negative, got %g", p.NearFieldCoeff)
	}
	if p.NearFieldThreshold < 0 || !isFinite(p.NearFieldThreshold) {
		return fmt.Errorf("near-field threshold must be non-negative, got %g", p.NearFieldThreshold)
	}
	return nil
}

// sourceSamplesPerAxis resolves the sampling density, applying the adaptive
// rule when no explicit count was requested.
func (p Params) sourceSamplesPerAxis() int {
	if p.SourceSamples > 0 {
		return p.SourceSamples
	}
	n := p.Accuracy / 10
	if n < MinSourceSamples {
		n = MinSourceSamples
	}
	if n > MaxSourceSamples {
		n = MaxSourceSamples
	}
	return n
}
