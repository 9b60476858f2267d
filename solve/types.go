// Package solve defines the Solver handle, functional options, result
// and statistics types for N-Queens searches.
package solve

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/nqueens/board"
)

var (
	// ErrInvalidSize is returned by New when the requested board size
	// is not a positive integer.
	ErrInvalidSize = errors.New("solve: board size must be positive")
)

// Option configures optional behavior of a search.
// Use with SolveFirst, SolveAll, or SolveFirstIterative.
type Option func(*Options)

// Options holds configurable parameters for a single search run.
// The zero configuration runs unobserved and uncancelled.
type Options struct {
	// Ctx allows cancellation or deadlines; defaults to context.Background().
	// Cancellation is observed once per row descent, so solution order is
	// unchanged for runs that complete.
	Ctx context.Context

	// OnSolution, if non-nil, is invoked for each complete solution as it
	// is found (before the search continues). Returning an error aborts
	// the search with that error. Only SolveAll emits more than once.
	OnSolution func(board.Solution) error
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No per-solution hook
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnSolution: nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnSolution returns an Option that installs fn as a per-solution
// hook. The hook sees each solution in emission order; an error from
// the hook aborts the search.
func WithOnSolution(fn func(board.Solution) error) Option {
	return func(o *Options) {
		o.OnSolution = fn
	}
}

// Stats accumulates the instrumentation of one search run. It is
// written once when the run terminates and read-only afterwards.
type Stats struct {
	// Solutions is the number of complete placements found:
	// 0 or 1 for first-solution modes, the full count for SolveAll.
	Solutions int

	// Backtracks counts undone placements (recursive modes) or rows
	// that admitted no placement (iterative mode). Zero only for
	// trivial searches such as N=1.
	Backtracks int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// ElapsedSeconds returns the elapsed wall time in seconds, the unit
// reporting layers conventionally print.
func (s Stats) ElapsedSeconds() float64 {
	return s.Elapsed.Seconds()
}

// Result captures the outcome of a search run.
type Result struct {
	// Solutions holds the emitted solutions in search order: at most one
	// for the first-solution modes, every solution for SolveAll. Empty
	// when no solution exists for this N.
	Solutions []board.Solution

	// Stats is the instrumentation of this run (also retained on the
	// Solver handle; see Solver.Statistics).
	Stats Stats
}

// First returns the first solution and true, or nil and false when the
// search found none.
func (r *Result) First() (board.Solution, bool) {
	if len(r.Solutions) == 0 {
		return nil, false
	}

	return r.Solutions[0], true
}
