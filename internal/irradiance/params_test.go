package irradiance

import (
	"errors"
	"math"
	"testing"
)

func validParams() Params {
	return Params{
		Receiver:  Geometry2D{Length: 100, Height: 100},
		Source:    Geometry2D{Length: 1, Height: 1},
		Placement: PlacementOffset{X: 50, Y: 50},
		Power:     500,
		Standoff:  500,
		Accuracy:  30,
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := validParams().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateGeometry(t *testing.T) {
	p := validParams()
	p.Receiver.Length = 0
	if err := p.Validate(); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
	p = validParams()
	p.Source.Height = -1
	if err := p.Validate(); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
	p = validParams()
	p.Placement.X = math.NaN()
	if err := p.Validate(); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestValidateGrid(t *testing.T) {
	p := validParams()
	p.Accuracy = 1
	if err := p.Validate(); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("expected ErrInvalidGrid, got %v", err)
	}
	p = validParams()
	p.SourceSamples = -3
	if err := p.Validate(); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("expected ErrInvalidGrid, got %v", err)
	}
}

func TestValidateDistance(t *testing.T) {
	p := validParams()
	p.Standoff = 0
	if err := p.Validate(); !errors.Is(err, ErrInvalidDistance) {
		t.Fatalf("expected ErrInvalidDistance, got %v", err)
	}
	p.Standoff = math.Inf(1)
	if err := p.Validate(); !errors.Is(err, ErrInvalidDistance) {
		t.Fatalf("expected ErrInvalidDistance, got %v", err)
	}
}

func TestValidatePower(t *testing.T) {
	p := validParams()
	p.Power = -1
	if err := p.Validate(); !errors.Is(err, ErrInvalidPower) {
		t.Fatalf("expected ErrInvalidPower, got %v", err)
	}
	p.Power = 0 // degenerate but legal
	if err := p.Validate(); err != nil {
		t.Fatalf("zero power must validate: %v", err)
	}
}

func TestAdaptiveSourceSamples(t *testing.T) {
	cases := []struct{ accuracy, want int }{
		{5, 2}, {20, 2}, {30, 3}, {80, 8}, {100, 10}, {500, 10},
	}
	for _, c := range cases {
		p := Params{Accuracy: c.accuracy}
		if got := p.sourceSamplesPerAxis(); got != c.want {
			t.Fatalf("accuracy %d: samples=%d, want %d", c.accuracy, got, c.want)
		}
	}
	p := Params{Accuracy: 100, SourceSamples: 7}
	if got := p.sourceSamplesPerAxis(); got != 7 {
		t.Fatalf("explicit count overridden: %d", got)
	}
}

func TestValidateNearFieldKnobs(t *testing.T) {
	p := validParams()
	p.NearFieldCoeff = -60
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for negative near-field coefficient")
	}
	p = validParams()
	p.NearFieldCoeff = math.NaN()
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for NaN near-field coefficient")
	}
	p = validParams()
	p.NearFieldThreshold = -1
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for negative near-field threshold")
	}
	p = validParams()
	p.NearFieldThreshold = math.Inf(1)
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for infinite near-field threshold")
	}
}

func TestValidateCalibrationDivisor(t *testing.T) {
	p := validParams()
	p.CalibrationDivisor = -0.005
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for negative divisor")
	}
}

func TestWithDefaults(t *testing.T) {
	p := Params{}.withDefaults()
	if p.CalibrationDivisor != CalibrationDivisor || p.NearFieldCoeff != NearFieldCoeff || p.NearFieldThreshold != NearFieldThreshold {
		t.Fatalf("defaults not filled: %+v", p)
	}
	p = Params{CalibrationDivisor: 1}.withDefaults()
	if p.CalibrationDivisor != 1 {
		t.Fatalf("explicit divisor overridden: %g", p.CalibrationDivisor)
	}
}
