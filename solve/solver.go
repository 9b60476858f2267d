package solve

import (
	"fmt"
	"time"

	"github.com/katalvlaran/nqueens/board"
)

// Solver is a handle bound to a single board size. It is cheap to
// construct and reusable: each Solve* call runs an independent search
// with fresh state and overwrites the handle's statistics.
//
// A Solver is not safe for concurrent use; run concurrent searches on
// separate handles.
type Solver struct {
	n     int
	stats Stats
}

// New constructs a Solver for an n×n board.
// Returns ErrInvalidSize when n ≤ 0. No upper bound is enforced:
// exhaustive cost beyond roughly N=15–16 is the caller's concern.
func New(n int) (*Solver, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}

	return &Solver{n: n}, nil
}

// Size returns the board size the handle was built for.
func (s *Solver) Size() int { return s.n }

// Statistics returns the instrumentation of the most recent completed
// run on this handle. Before any run it is the zero Stats.
func (s *Solver) Statistics() Stats { return s.stats }

// Reset clears the handle's statistics, as if no search had run.
func (s *Solver) Reset() { s.stats = Stats{} }

// walker owns the mutable state of one search run: the conflict sets,
// the row→column assignment built so far, collected solutions, and the
// backtrack counter. One walker per run; never shared.
type walker struct {
	n          int
	opts       Options
	state      *board.ConstraintState
	assignment []int // assignment[row] = column, for rows placed so far
	solutions  []board.Solution
	backtracks int
}

// newWalker prepares fresh search state for one run.
func newWalker(n int, opts []Option) *walker {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &walker{
		n:          n,
		opts:       o,
		state:      board.NewConstraintState(n),
		assignment: make([]int, 0, n),
	}
}

// cancelled reports the context error once the context is done.
func (w *walker) cancelled() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}

// hook invokes the OnSolution callback for sol, wrapping any error with
// the ordinal of the solution that triggered it. Callers must check
// opts.OnSolution for nil first.
func (w *walker) hook(sol board.Solution) error {
	if err := w.opts.OnSolution(sol); err != nil {
		return fmt.Errorf("solve: OnSolution hook for solution %d: %w", len(w.solutions), err)
	}

	return nil
}

// snapshot copies the complete assignment into an immutable Solution.
// Must only be called when all N rows are placed.
func (w *walker) snapshot() board.Solution {
	sol := make(board.Solution, w.n)
	for row, col := range w.assignment {
		sol[row] = board.Cell{Row: row, Col: col}
	}

	return sol
}

// finish finalizes a run: packages solutions and stats, and mirrors the
// stats onto the handle so Statistics() serves them after the run.
func (s *Solver) finish(w *walker, start time.Time) *Result {
	st := Stats{
		Solutions:  len(w.solutions),
		Backtracks: w.backtracks,
		Elapsed:    time.Since(start),
	}
	s.stats = st

	return &Result{Solutions: w.solutions, Stats: st}
}
