// Package config parses and validates the JSON job files run by cmd/algebra.
package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/algebra/matrix"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid job")

// ParseConfig parses the raw JSON configuration and validates it.
func ParseConfig(raw []byte) (config Config, err error) {
	err = json.Unmarshal(raw, &config)
	if err != nil {
		return config, fmt.Errorf("unmarshal config: %w", err)
	}
	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Config is a job: named input matrices and the steps applied to them.
type Config struct {
	LogLevel LogLevel               `json:"log_level"`
	Element  Element                `json:"element"`
	Seed     *uint64                `json:"seed,omitempty"`
	Width    int                    `json:"width,omitempty"`
	Matrices map[string][][]float64 `json:"matrices,omitempty"`
	Steps    []Step                 `json:"steps"`
}

// Step is one operation of a job. Which fields are used depends on Op.
type Step struct {
	Op     StepOp   `json:"op"`
	A      string   `json:"a,omitempty"`
	B      string   `json:"b,omitempty"`
	Out    string   `json:"out,omitempty"`
	Kind   string   `json:"kind,omitempty"`
	Rows   int      `json:"rows,omitempty"`
	Cols   int      `json:"cols,omitempty"`
	Lower  *float64 `json:"lower,omitempty"`
	Upper  *float64 `json:"upper,omitempty"`
	Scalar float64  `json:"scalar,omitempty"`
}

// FieldWidth returns the display width, falling back to matrix.DefaultFieldWidth.
func (c Config) FieldWidth() int {
	if c.Width == 0 {
		return matrix.DefaultFieldWidth
	}
	return c.Width
}

// Validate checks the job structure: known element and step kinds, operands
// that refer to a matrix defined earlier, and numbers the element type can
// hold (whole and in range for integer jobs).
// Shape compatibility is left to the matrix package at run time.
func (c Config) Validate() error {
	if !c.Element.valid() {
		return invalidf("element %q", c.Element)
	}
	if c.Width < 0 {
		return invalidf("width %d", c.Width)
	}

	defined := make(map[string]bool, len(c.Matrices)+len(c.Steps))
	for name, rows := range c.Matrices {
		if name == "" {
			return invalidf("matrix with empty name")
		}
		for _, row := range rows {
			for _, v := range row {
				if !c.Element.Holds(v) {
					return invalidf("matrix %q: %v does not fit element %s", name, v, c.Element)
				}
			}
		}
		defined[name] = true
	}

	for i, s := range c.Steps {
		if err := s.validate(defined, c.Element); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, s.Op, err)
		}
		if s.Out != "" {
			defined[s.Out] = true
		}
	}

	return nil
}

func (s Step) validate(defined map[string]bool, elem Element) error {
	need := func(field, name string) error {
		if name == "" {
			return invalidf("missing operand %q", field)
		}
		if !defined[name] {
			return invalidf("unknown matrix %q", name)
		}
		return nil
	}

	switch s.Op {
	case StepCreate:
		if s.Out == "" {
			return invalidf("missing out")
		}
		kind, err := matrix.ParseKind(s.Kind)
		if err != nil {
			return invalidf("kind %q", s.Kind)
		}
		if kind == matrix.KindRandom {
			for _, b := range []*float64{s.Lower, s.Upper} {
				if b != nil && !elem.Holds(*b) {
					return invalidf("bound %v does not fit element %s", *b, elem)
				}
			}
		}
		return nil
	case StepSum, StepSub, StepMul, StepHadamard:
		if err := need("a", s.A); err != nil {
			return err
		}
		if err := need("b", s.B); err != nil {
			return err
		}
	case StepScale:
		if err := need("a", s.A); err != nil {
			return err
		}
		if !elem.Holds(s.Scalar) {
			return invalidf("scalar %v does not fit element %s", s.Scalar, elem)
		}
	case StepTranspose:
		if err := need("a", s.A); err != nil {
			return err
		}
	case StepDisplay:
		return need("a", s.A)
	default:
		return invalidf("op %q", s.Op)
	}

	if s.Out == "" {
		return invalidf("missing out")
	}
	return nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}
