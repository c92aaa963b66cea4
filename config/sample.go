package config

import (
	"encoding/json"
	"errors"
	"os"
)

// Sample returns the job written by CreateSample: the A/B worked example
// plus an identity and a seeded random matrix.
func Sample() Config {
	seed := uint64(42)
	lower, upper := 0.0, 10.0
	return Config{
		LogLevel: LogLevelInfo,
		Element:  ElementFloat64,
		Seed:     &seed,
		Width:    7,
		Matrices: map[string][][]float64{
			"A": {{1, 2}, {3, 4}},
			"B": {{5, 6}, {7, 8}},
		},
		Steps: []Step{
			{Op: StepSum, A: "A", B: "B", Out: "S"},
			{Op: StepDisplay, A: "S"},
			{Op: StepMul, A: "A", B: "B", Out: "P"},
			{Op: StepDisplay, A: "P"},
			{Op: StepHadamard, A: "A", B: "B", Out: "H"},
			{Op: StepDisplay, A: "H"},
			{Op: StepScale, A: "A", Scalar: 2, Out: "D"},
			{Op: StepDisplay, A: "D"},
			{Op: StepCreate, Kind: "identity", Rows: 2, Cols: 2, Out: "I"},
			{Op: StepMul, A: "A", B: "I", Out: "AI"},
			{Op: StepDisplay, A: "AI"},
			{Op: StepCreate, Kind: "random", Rows: 3, Cols: 3, Lower: &lower, Upper: &upper, Out: "R"},
			{Op: StepDisplay, A: "R"},
		},
	}
}

// CreateSample creates a sample job file.
func CreateSample(path string) error {
	raw, err := json.MarshalIndent(Sample(), "", "    ")
	if err != nil {
		return errors.Join(errors.New("could not marshal sample config"), err)
	}
	err = os.WriteFile(path, raw, 0600)
	if err != nil {
		return errors.Join(errors.New("could not write sample config file"), err)
	}
	return nil
}
