package irradiance

import (
	"fmt"
	"strings"
)

func trimPNGExt(s string) string { return strings.TrimSuffix(s, ".png") }

// sweepSetter resolves a sweep parameter name to a Params mutator.
func sweepSetter(param string) (func(*Params, Real), error) {
	switch param {
	case "power":
		return func(p *Params, v Real) { p.Power = v }, nil
	case "standoff":
		return func(p *Params, v Real) { p.Standoff = v }, nil
	case "x":
		return func(p *Params, v Real) { p.Placement.X = v }, nil
	case "y":
		return func(p *Params, v Real) { p.Placement.Y = v }, nil
	case "sourceLength":
		return func(p *Params, v Real) { p.Source.Length = v }, nil
	case "sourceHeight":
		return func(p *Params, v Real) { p.Source.Height = v }, nil
	case "receiverLength":
		return func(p *Params, v Real) { p.Receiver.Length = v }, nil
	case "receiverHeight":
		return func(p *Params, v Real) { p.Receiver.Height = v }, nil
	case "accuracy":
		return func(p *Params, v Real) { p.Accuracy = int(v) }, nil
	default:
		return nil, fmt.Errorf("unknown sweep parameter %q", param)
	}
}

// sweepValue returns the parameter value for step i of an inclusive range.
func sweepValue(sw SweepCfg, i int) Real {
	if sw.Steps == 1 {
		return sw.From
	}
	return sw.From + Real(i)*(sw.To-sw.From)/Real(sw.Steps-1)
}

// RunSweep computes one field per sweep step and writes a zero-padded PNG
// frame sequence, printing per-step stats.
func RunSweep(base Params, sw SweepCfg, mode NormMode, gamma Real) error {
	set, err := sweepSetter(sw.Param)
	if err != nil {
		return err
	}
	for i := 0; i < sw.Steps; i++ {
		v := sweepValue(sw, i)
		p := base
		set(&p, v)
		field, err := Compute(p)
		if err != nil {
			return fmt.Errorf("step %d (%s=%g): %w", i, sw.Param, v, err)
		}
		norm, err := NewDisplayNorm(mode, field.Min(), field.Max(), gamma)
		if err != nil {
			return err
		}
		path := framePath(sw.Prefix, i, sw.Steps)
		if err := SaveFieldPNG(field, path, norm); err != nil {
			return err
		}
		fmt.Printf("[SWEEP] %s=%g | min=%.3e max=%.3e | %s\n", sw.Param, v, field.Min(), field.Max(), path)
	}
	return nil
}
