package irradiance

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestSweepValueInclusiveRange(t *testing.T) {
	sw := SweepCfg{From: 100, To: 500, Steps: 5}
	if v := sweepValue(sw, 0); v != 100 {
		t.Fatalf("first step wrong: %g", v)
	}
	if v := sweepValue(sw, 4); v != 500 {
		t.Fatalf("last step wrong: %g", v)
	}
	if v := sweepValue(sw, 2); math.Abs(v-300) > 1e-12 {
		t.Fatalf("middle step wrong: %g", v)
	}
	if v := sweepValue(SweepCfg{From: 7, To: 9, Steps: 1}, 0); v != 7 {
		t.Fatalf("single step wrong: %g", v)
	}
}

func TestSweepSetter(t *testing.T) {
	set, err := sweepSetter("accuracy")
	if err != nil {
		t.Fatal(err)
	}
	p := validParams()
	set(&p, 42)
	if p.Accuracy != 42 {
		t.Fatalf("accuracy setter wrong: %d", p.Accuracy)
	}
	if _, err := sweepSetter("wavelength"); err == nil {
		t.Fatal("expected error for unknown parameter")
	}
}

func TestRunSweepWritesFrames(t *testing.T) {
	base := validParams()
	base.Accuracy = 5
	prefix := filepath.Join(t.TempDir(), "frame")
	sw := SweepCfg{Param: "standoff", From: 200, To: 400, Steps: 3, Prefix: prefix}
	if err := RunSweep(base, sw, NormLinear, 0); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := os.Stat(framePath(prefix, i, 3)); err != nil {
			t.Fatalf("frame %d not written: %v", i, err)
		}
	}
}

func TestRunSweepPropagatesComputeError(t *testing.T) {
	base := validParams()
	sw := SweepCfg{Param: "standoff", From: 0, To: 0, Steps: 1, Prefix: filepath.Join(t.TempDir(), "f")}
	if err := RunSweep(base, sw, NormLinear, 0); err == nil {
		t.Fatal("expected error for zero standoff step")
	}
}
