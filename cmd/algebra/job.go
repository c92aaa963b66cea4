package main

import (
	"fmt"
	"io"
	"maps"
	"math/rand/v2"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/algebra/config"
	"github.com/katalvlaran/algebra/matrix"
)

// seedStream pairs with the job seed when seeding the shared PCG source.
const seedStream = 0x243f6a8885a308d3

// Run executes cfg, writing every display step to out.
// The job is assumed valid (config.ParseConfig validates it), so every value
// converts to the element type exactly.
func Run(cfg config.Config, out io.Writer, logger *zap.Logger) error {
	switch cfg.Element {
	case config.ElementFloat64:
		return runJob[float64](cfg, out, logger)
	case config.ElementFloat32:
		return runJob[float32](cfg, out, logger)
	case config.ElementInt64:
		return runJob[int64](cfg, out, logger)
	case config.ElementInt:
		return runJob[int](cfg, out, logger)
	default:
		return fmt.Errorf("element %q: %w", cfg.Element, config.ErrInvalidConfig)
	}
}

// job holds the named matrices of a running job.
type job[T matrix.Number] struct {
	cfg    config.Config
	out    io.Writer
	logger *zap.Logger
	src    rand.Source // nil ⇒ unseeded Random steps
	env    map[string]*matrix.Dense[T]
}

func runJob[T matrix.Number](cfg config.Config, out io.Writer, logger *zap.Logger) error {
	start := time.Now()
	j := &job[T]{
		cfg:    cfg,
		out:    out,
		logger: logger,
		env:    make(map[string]*matrix.Dense[T], len(cfg.Matrices)+len(cfg.Steps)),
	}
	if cfg.Seed != nil {
		// One source for the whole job: successive Random steps differ but
		// the job as a whole is reproducible.
		j.src = rand.NewPCG(*cfg.Seed, seedStream)
	}

	// Sorted names so the first reported input error is stable.
	for _, name := range slices.Sorted(maps.Keys(cfg.Matrices)) {
		m, err := matrix.FromRows(convertRows[T](cfg.Matrices[name]))
		if err != nil {
			return fmt.Errorf("matrix %q: %w", name, err)
		}
		j.env[name] = m
	}

	for i, s := range cfg.Steps {
		if err := j.step(i, s); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, s.Op, err)
		}
	}

	logger.Info("job finished",
		zap.Stringer("element", cfg.Element),
		zap.Int("steps", len(cfg.Steps)),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

func (j *job[T]) step(i int, s config.Step) error {
	var (
		res *matrix.Dense[T]
		err error
	)
	switch s.Op {
	case config.StepCreate:
		res, err = j.create(s)
	case config.StepSum:
		res, err = matrix.SumSub[T](j.env[s.A], j.env[s.B], matrix.OpSum)
	case config.StepSub:
		res, err = matrix.SumSub[T](j.env[s.A], j.env[s.B], matrix.OpSub)
	case config.StepMul:
		res, err = matrix.Mul[T](j.env[s.A], j.env[s.B])
	case config.StepHadamard:
		res, err = matrix.Hadamard[T](j.env[s.A], j.env[s.B])
	case config.StepScale:
		res, err = matrix.Scale[T](j.env[s.A], T(s.Scalar))
	case config.StepTranspose:
		res, err = matrix.Transpose[T](j.env[s.A])
	case config.StepDisplay:
		j.logger.Debug("display", zap.Int("step", i), zap.String("a", s.A))
		return matrix.FprintWidth[T](j.out, j.env[s.A], j.cfg.FieldWidth())
	default:
		return fmt.Errorf("op %q: %w", s.Op, config.ErrInvalidConfig)
	}
	if err != nil {
		return err
	}

	j.env[s.Out] = res
	rows, cols := res.Shape()
	j.logger.Debug("step done",
		zap.Int("step", i),
		zap.String("op", string(s.Op)),
		zap.String("out", s.Out),
		zap.Int("rows", rows),
		zap.Int("cols", cols))
	return nil
}

func (j *job[T]) create(s config.Step) (*matrix.Dense[T], error) {
	kind, err := matrix.ParseKind(s.Kind)
	if err != nil {
		return nil, err
	}
	opts := []matrix.Option[T]{matrix.WithKind[T](kind)}
	if s.Lower != nil {
		opts = append(opts, matrix.WithLowerBound(T(*s.Lower)))
	}
	if s.Upper != nil {
		opts = append(opts, matrix.WithUpperBound(T(*s.Upper)))
	}
	if j.src != nil {
		opts = append(opts, matrix.WithSource[T](j.src))
	}
	return matrix.New(s.Rows, s.Cols, opts...)
}

// convertRows copies float64 job values into element type T.
func convertRows[T matrix.Number](rows [][]float64) [][]T {
	out := make([][]T, len(rows))
	for i, row := range rows {
		out[i] = make([]T, len(row))
		for k, v := range row {
			out[i][k] = T(v)
		}
	}
	return out
}
