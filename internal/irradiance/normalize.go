package irradiance

import (
	"fmt"
	"math"
)

// NormMode selects how field values map onto the color scale.
type NormMode string

const (
	NormLinear   NormMode = "linear"
	NormLog      NormMode = "log"
	NormPower    NormMode = "power"
	NormTwoSlope NormMode = "twoslope"
)

// DisplayNorm maps irradiance values into [0,1] for rendering. It consumes
// the field's cached min/max, never the field itself.
//
// In twoslope mode the value 1.0 (reference irradiance) is pinned to the
// center of a diverging scale; when the data does not straddle 1.0 the range
// is widened symmetrically around it so the neutral point stays centered.
type DisplayNorm struct {
	Mode                NormMode
	VMin, VCenter, VMax Real
	Gamma               Real // power mode only
}

// NewDisplayNorm builds the normalization for a field's [min, max] range.
func NewDisplayNorm(mode NormMode, min, max, gamma Real) (DisplayNorm, error) {
	d := DisplayNorm{Mode: mode, VMin: min, VMax: max, Gamma: gamma}
	switch mode {
	case NormLinear:
	case NormLog:
		if d.VMin < LogFloor {
			d.VMin = LogFloor
		}
		if d.VMax < d.VMin {
			d.VMax = d.VMin
		}
	case NormPower:
		if d.Gamma <= 0 {
			d.Gamma = Gamma
		}
	case NormTwoSlope:
		d.VCenter = 1.0
		switch {
		case d.VMax < d.VCenter:
			// all values below the reference: widen to the right
			d.VMax = 2 - d.VMin
		case d.VMin > d.VCenter:
			// all values above the reference: widen to the left
			d.VMin = 2 - d.VMax
		}
	default:
		return DisplayNorm{}, fmt.Errorf("unknown normalization mode %q", mode)
	}
	return d, nil
}

// Map converts an irradiance value to [0,1]. Values outside [VMin, VMax]
// clamp to the ends; a degenerate range maps everything to 0.
func (d DisplayNorm) Map(v Real) Real {
	switch d.Mode {
	case NormLog:
		if v < d.VMin {
			v = d.VMin
		}
		span := math.Log(d.VMax) - math.Log(d.VMin)
		if span <= 0 {
			return 0
		}
		return clamp01((math.Log(v) - math.Log(d.VMin)) / span)
	case NormPower:
		return math.Pow(d.linear(v), d.Gamma)
	case NormTwoSlope:
		if v <= d.VCenter {
			span := d.VCenter - d.VMin
			if span <= 0 {
				return 0.5
			}
			return clamp01(0.5 * (v - d.VMin) / span)
		}
		span := d.VMax - d.VCenter
		if span <= 0 {
			return 0.5
		}
		return clamp01(0.5 + 0.5*(v-d.VCenter)/span)
	default:
		return d.linear(v)
	}
}

func (d DisplayNorm) linear(v Real) Real {
	span := d.VMax - d.VMin
	if span <= 0 {
		return 0
	}
	return clamp01((v - d.VMin) / span)
}

func clamp01(t Real) Real {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
