package irradiance

import (
	"encoding/json"
	"fmt"
	"os"
)

// SweepCfg varies exactly one parameter across an inclusive range; one field
// and one PNG frame are produced per step.
type SweepCfg struct {
	Param  string `json:"param"`
	From   Real   `json:"from"`
	To     Real   `json:"to"`
	Steps  int    `json:"steps"`
	Prefix string `json:"prefix,omitempty"` // frame name prefix, defaults from pngOut
}

type Config struct {
	Receiver  Geometry2D      `json:"receiver"`
	Source    Geometry2D      `json:"source"`
	Placement PlacementOffset `json:"placement"`

	Power    Real `json:"power,omitempty"`
	Standoff Real `json:"standoff,omitempty"`
	Accuracy int  `json:"accuracy,omitempty"`

	SourceSamples int `json:"sourceSamples,omitempty"` // 0 = adaptive

	// Zero-value means the correction is applied; set true to skip it.
	SkipNearFieldCorrection bool `json:"skipNearFieldCorrection,omitempty"`

	CalibrationDivisor Real `json:"calibrationDivisor,omitempty"`
	NearFieldCoeff     Real `json:"nearFieldCoeff,omitempty"`
	NearFieldThreshold Real `json:"nearFieldThreshold,omitempty"`

	Norm   NormMode  `json:"norm,omitempty"` // linear, log, power, twoslope
	Gamma  Real      `json:"gamma,omitempty"`
	PNGOut string    `json:"pngOut,omitempty"`
	Sweep  *SweepCfg `json:"sweep,omitempty"`
}

// Params builds the immutable computation request from the file settings.
func (c *Config) Params() Params {
	return Params{
		Receiver:            c.Receiver,
		Source:              c.Source,
		Placement:           c.Placement,
		Power:               c.Power,
		Standoff:            c.Standoff,
		Accuracy:            c.Accuracy,
		SourceSamples:       c.SourceSamples,
		NearFieldCorrection: !c.SkipNearFieldCorrection,
		CalibrationDivisor:  c.CalibrationDivisor,
		NearFieldCoeff:      c.NearFieldCoeff,
		NearFieldThreshold:  c.NearFieldThreshold,
	}
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	// Defaults / validation
	if cfg.Receiver.Length <= 0 {
		cfg.Receiver.Length = ReceiverLength
	}
	if cfg.Receiver.Height <= 0 {
		cfg.Receiver.Height = ReceiverHeight
	}
	if cfg.Source.Length <= 0 {
		cfg.Source.Length = SourceLength
	}
	if cfg.Source.Height <= 0 {
		cfg.Source.Height = SourceHeight
	}
	// Zero means "unset" in this file format: a literal (0,0) placement or
	// 0 W source cannot be expressed from a config and snaps to the defaults.
	if cfg.Placement.X == 0 && cfg.Placement.Y == 0 {
		cfg.Placement = PlacementOffset{X: PlacementX, Y: PlacementY}
	}
	if cfg.Power <= 0 {
		cfg.Power = Power
	}
	if cfg.Standoff <= 0 {
		cfg.Standoff = Standoff
	}
	if cfg.Accuracy <= 0 {
		cfg.Accuracy = Accuracy
	}
	if cfg.Norm == "" {
		cfg.Norm = NormTwoSlope
	}
	if cfg.Gamma <= 0 {
		cfg.Gamma = Gamma
	}
	if cfg.PNGOut == "" {
		cfg.PNGOut = PNGOut
	}
	if cfg.Sweep != nil {
		if cfg.Sweep.Steps <= 0 {
			return nil, fmt.Errorf("sweep needs a positive step count")
		}
		if _, err := sweepSetter(cfg.Sweep.Param); err != nil {
			return nil, err
		}
		if cfg.Sweep.Prefix == "" {
			cfg.Sweep.Prefix = trimPNGExt(cfg.PNGOut)
		}
	}
	DebugLog("Loaded config from %s: receiver=%gx%g, source=%gx%g at (%g, %g), P=%gW, L=%gm, accuracy=%d",
		path, cfg.Receiver.Length, cfg.Receiver.Height, cfg.Source.Length, cfg.Source.Height,
		cfg.Placement.X, cfg.Placement.Y, cfg.Power, cfg.Standoff, cfg.Accuracy)
	return &cfg, nil
}
