// Package calibrate finds which calibration equations can be made true by
// inserting operators between their operands, and sums their targets.
//
// Operators are always evaluated left to right. The search is exhaustive:
// every operator sequence for an equation is tried until one reaches the
// target. Work is spread both across equations and across the candidate
// sequences of a single equation, drawing from one bounded pool of workers.
package calibrate

import (
	"context"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
	"tailscale.com/util/deephash"
)

// Solver sums the targets of the equations its alphabet can satisfy.
type Solver struct {
	alphabet Alphabet
	workers  int
	logger   *slog.Logger
	checker  *Checker
}

// Option configures a Solver.
type Option func(*Solver)

// WithWorkers bounds the number of goroutines searching at once, across
// equations and within one equation combined. n <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *Solver) { s.workers = n }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) { s.logger = l }
}

// NewSolver returns a Solver for the alphabet. The Solver keeps a sequence
// cache for its lifetime, so reuse it across calls within a run.
func NewSolver(a Alphabet, opts ...Option) *Solver {
	s := &Solver{alphabet: a}
	for _, o := range opts {
		o(s)
	}
	if s.workers <= 0 {
		s.workers = runtime.GOMAXPROCS(0)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.checker = NewChecker(a, s.workers)
	return s
}

// Checker returns the Checker the Solver evaluates equations with.
func (s *Solver) Checker() *Checker { return s.checker }

// Result is the outcome of solving a list of equations.
type Result struct {
	// Sum is the sum of the targets of all valid equations.
	Sum uint64
	// Valid holds one witness per valid equation, in input order.
	Valid []Calculation
	// Checked is the number of equations examined.
	Checked int
}

// Solve checks every equation and sums the targets of those that can be
// satisfied. It returns ctx.Err() if ctx is done before all equations have
// been checked.
func (s *Solver) Solve(ctx context.Context, eqs []Equation) (Result, error) {
	if s.logger.Enabled(ctx, slog.LevelDebug) {
		s.logger.Debug("solving",
			"equations", len(eqs),
			"alphabet", s.alphabet,
			"workers", s.workers,
			"input", deephash.Hash(&eqs))
	}

	type verdict struct {
		calc Calculation
		ok   bool
	}
	verdicts, err := Parallel(ctx, s.workers, eqs, func(ctx context.Context, eq Equation) verdict {
		calc, ok := s.checker.Check(ctx, eq)
		return verdict{calc, ok}
	})
	if err != nil {
		return Result{}, err
	}
	res := Fold(verdicts, func(r Result, v verdict) Result {
		if v.ok {
			r.Valid = append(r.Valid, v.calc)
		}
		return r
	}, Result{Checked: len(eqs)})
	targets := make([]uint64, len(res.Valid))
	for i, c := range res.Valid {
		targets[i] = c.Equation.Target
	}
	res.Sum = Sum(targets...)

	s.logger.Debug("solved",
		"valid", len(res.Valid),
		"sum", res.Sum,
		"evaluated", s.checker.Evaluated(),
		"lengths", s.checker.Cache().Lengths())
	return res, nil
}

// Sum returns the sum of the targets of all equations that can be satisfied.
// Unlike Solve it keeps no witnesses.
func (s *Solver) Sum(ctx context.Context, eqs []Equation) (uint64, error) {
	return ParallelMapFold(ctx, s.workers, eqs,
		func(ctx context.Context, eq Equation) uint64 {
			if _, ok := s.checker.Check(ctx, eq); ok {
				return eq.Target
			}
			return 0
		},
		func(sum, v uint64) uint64 { return sum + v },
		0,
	)
}

// Parallel calls f on every element of in using at most n goroutines and
// returns the results in input order. It returns ctx.Err() if ctx is done
// before every element has been processed.
func Parallel[I, O any](ctx context.Context, n int, in []I, f func(context.Context, I) O) ([]O, error) {
	out := make([]O, len(in))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(n, 1))
	for i, v := range in {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			out[i] = f(gctx, v)
			return nil
		})
	}
	g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Fold reduces in to a single value, starting from defVal.
func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

// ParallelMapFold maps in with f on at most n goroutines, then folds the
// results with f2.
func ParallelMapFold[A, B, C any](ctx context.Context, n int, in []A, f func(context.Context, A) B, f2 func(C, B) C, defVal C) (C, error) {
	mapped, err := Parallel(ctx, n, in, f)
	if err != nil {
		return defVal, err
	}
	return Fold(mapped, f2, defVal), nil
}
