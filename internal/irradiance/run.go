package irradiance

import (
	"fmt"
	"time"
)

func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	params := cfg.Params()

	if cfg.Sweep != nil {
		return RunSweep(params, *cfg.Sweep, cfg.Norm, cfg.Gamma)
	}

	start := time.Now()
	field, err := Compute(params)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	if Debug {
		fmt.Printf("[DEBUG] computed %dx%d field in %s\n", field.N(), field.N(), elapsed)
	}

	n := field.N()
	jMax, iMax := field.ArgMax()
	// grid index -> receiver coordinate, meters
	maxX := Real(iMax) * cfg.Receiver.Length / Real(n-1)
	maxY := Real(jMax) * cfg.Receiver.Height / Real(n-1)

	fmt.Printf("Irradiance %.3e..%.3e | peak at (%.1f, %.1f) m | %dx%d cells | %s\n",
		field.Min(), field.Max(), maxX, maxY, n, n, elapsed)
	if field.Min() > 0 {
		fmt.Printf("Max/min ratio: %.1f\n", field.Max()/field.Min())
	}

	norm, err := NewDisplayNorm(cfg.Norm, field.Min(), field.Max(), cfg.Gamma)
	if err != nil {
		return err
	}
	if err := SaveFieldPNG(field, cfg.PNGOut, norm); err != nil {
		return err
	}
	DebugLog("Saved field PNG: %s", cfg.PNGOut)
	return nil
}
