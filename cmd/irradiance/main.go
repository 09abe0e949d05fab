package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/REAlEASTBBOY/radiation-exposure/internal/irradiance"
)

func main() {
	irradiance.Debug = os.Getenv("DEBUG") != ""
	irradiance.ForceSequential = os.Getenv("SEQUENTIAL") != ""
	irradiance.Progress = os.Getenv("PROGRESS") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := "configs/config.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := irradiance.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
