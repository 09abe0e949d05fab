package irradiance

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// accumulate adds the irradiance contribution of source samples [lo, hi) to
// every receiver cell in dst. dst is row-major with dst[j*n+i] holding the
// cell at (x[i], y[j]); source sample k maps to (xs[k/len(ys)], ys[k%len(ys)]).
//
// Per pair: r² = dx² + dy² + L², cosα = L/√r², E = I·cos²α/r², which reduces
// to I·L²/r⁴ and needs no square root in the hot loop.
func accumulate(dst []Real, xr, yr, xs, ys []Real, lo, hi int, standoff, intensity Real) {
	n := len(xr)
	ny := len(ys)
	l2 := standoff * standoff
	il2 := intensity * l2
	for k := lo; k < hi; k++ {
		sx := xs[k/ny]
		sy := ys[k%ny]
		for j, y := range yr {
			dy := y - sy
			dy2 := dy*dy + l2
			row := dst[j*n : (j+1)*n]
			for i, x := range xr {
				dx := x - sx
				r2 := dx*dx + dy2
				inv := 1 / r2
				row[i] += il2 * inv * inv
			}
		}
	}
}

// Compute produces the irradiance field for one parameter set. It is a pure
// function of p: no state survives between invocations.
func Compute(p Params) (*Field, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p = p.withDefaults()

	n := p.Accuracy
	xr := receiverGrid(p.Receiver.Length, n)
	yr := receiverGrid(p.Receiver.Height, n)

	s := p.sourceSamplesPerAxis()
	xs := sourceGrid(p.Source.Length, p.Placement.X, s)
	ys := sourceGrid(p.Source.Height, p.Placement.Y, s)

	// Total power spread uniformly over the source samples; per-point
	// radiant intensity for a Lambertian emitter.
	m := len(xs) * len(ys)
	intensity := p.Power / (Real(m) * math.Pi)

	field := newField(n)
	raw := field.data.RawMatrix().Data
	runAccumulation(raw, xr, yr, xs, ys, p.Standoff, intensity)

	// Near-field correction and display calibration fold into one scale.
	scale := 1.0 / p.CalibrationDivisor
	maxDim := p.Source.Length
	if p.Source.Height > maxDim {
		maxDim = p.Source.Height
	}
	if p.NearFieldCorrection && p.Standoff < p.NearFieldThreshold*maxDim {
		scale *= 1 + p.NearFieldCoeff*maxDim/p.Standoff
	}
	if scale != 1 {
		floats.Scale(scale, raw)
	}

	field.finalize()
	DebugLog("Computed field: n=%d, sourceSamples=%d, min=%.6g, max=%.6g", n, m, field.min, field.max)
	return field, nil
}
