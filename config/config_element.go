package config

import "math"

// Element names the numeric type every matrix of a job is stored as.
type Element string

const (
	ElementFloat64 Element = "float64"
	ElementFloat32 Element = "float32"
	ElementInt64   Element = "int64"
	ElementInt     Element = "int"
)

func (e Element) String() string {
	return string(e)
}

// Integral reports whether values of e must be whole numbers.
func (e Element) Integral() bool {
	return e == ElementInt64 || e == ElementInt
}

// Holds reports whether v converts to e without loss of meaning: a finite
// value within float32 range for float32, a whole number within the integer
// range for int64 and int. NaN is never held; float64 holds everything else.
func (e Element) Holds(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	switch e {
	case ElementFloat64:
		return true
	case ElementFloat32:
		return math.Abs(v) <= math.MaxFloat32
	case ElementInt64:
		return v == math.Trunc(v) && v >= math.MinInt64 && v < -math.MinInt64
	case ElementInt:
		return v == math.Trunc(v) && v >= math.MinInt && v < -float64(math.MinInt)
	default:
		return false
	}
}

func (e Element) valid() bool {
	switch e {
	case ElementFloat64, ElementFloat32, ElementInt64, ElementInt:
		return true
	default:
		return false
	}
}

// StepOp names the operation of a Step.
type StepOp string

const (
	StepCreate    StepOp = "create"
	StepSum       StepOp = "sum"
	StepSub       StepOp = "sub"
	StepMul       StepOp = "mul"
	StepHadamard  StepOp = "hadamard"
	StepScale     StepOp = "scale"
	StepTranspose StepOp = "transpose"
	StepDisplay   StepOp = "display"
)
