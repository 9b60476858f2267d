package solve

import "time"

// SolveAll enumerates every solution for this N. The traversal is the
// same depth-first descent as SolveFirst, but reaching row N records
// the placement and returns control to the loop instead of stopping,
// so every leaf of the search tree is visited. There is no pruning
// beyond the conflict check and no symmetry deduplication — distinct
// row→column assignments are already pairwise distinct.
//
// Emission order and the backtrack count are deterministic functions
// of N. Every placement is eventually undone on the way back up, so
// the backtrack counter equals the total number of placements made.
//
// Returns a non-nil error only on cancellation or a failing hook.
// Complexity: exponential; practical up to roughly N=15–16.
func (s *Solver) SolveAll(opts ...Option) (*Result, error) {
	w := newWalker(s.n, opts)
	start := time.Now()

	if err := w.enumerate(0); err != nil {
		return nil, err
	}

	return s.finish(w, start), nil
}

// enumerate visits every extension of the current assignment from row
// downward, recording each complete placement.
func (w *walker) enumerate(row int) error {
	// 1. Cancellation check, once per row descent
	if err := w.cancelled(); err != nil {
		return err
	}

	// 2. Base case: record the complete placement and keep searching
	if row == w.n {
		sol := w.snapshot()
		w.solutions = append(w.solutions, sol)
		if w.opts.OnSolution != nil {
			if err := w.hook(sol); err != nil {
				return err
			}
		}

		return nil
	}

	// 3. Try each column of this row in ascending order
	var err error
	for col := 0; col < w.n; col++ {
		if !w.state.Safe(row, col) {
			continue
		}

		w.state.Place(row, col)
		w.assignment = append(w.assignment, col)

		if err = w.enumerate(row + 1); err != nil {
			return err
		}

		// Undo unconditionally: exhaustive search revisits every branch
		w.assignment = w.assignment[:row]
		w.state.Remove(row, col)
		w.backtracks++
	}

	return nil
}
