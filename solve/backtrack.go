package solve

import "time"

// SolveFirst runs recursive depth-first backtracking and stops at the
// first complete placement. The result holds exactly one solution, or
// none when no solution exists for this N (true only for N=2 and N=3).
//
// Determinism: rows descend 0..N−1, columns are tried in ascending
// order, so the emitted solution is a pure function of N.
//
// Returns a non-nil error only on cancellation or a failing hook; an
// unsolvable board is a normal, empty result.
// Complexity: exponential worst case, O(N) memory.
func (s *Solver) SolveFirst(opts ...Option) (*Result, error) {
	w := newWalker(s.n, opts)
	start := time.Now()

	found, err := w.descend(0)
	if err != nil {
		return nil, err
	}
	if found {
		sol := w.snapshot()
		w.solutions = append(w.solutions, sol)
		if w.opts.OnSolution != nil {
			if hookErr := w.hook(sol); hookErr != nil {
				return nil, hookErr
			}
		}
	}

	return s.finish(w, start), nil
}

// descend attempts to complete rows row..N−1 on top of the current
// assignment. It returns true as soon as row N is reached; false when
// every column of this row fails. Each undone placement increments the
// backtrack counter before the next column is tried.
func (w *walker) descend(row int) (bool, error) {
	// 1. Cancellation check, once per row descent
	if err := w.cancelled(); err != nil {
		return false, err
	}

	// 2. Base case: all rows placed
	if row == w.n {
		return true, nil
	}

	// 3. Try each column of this row in ascending order
	var (
		ok  bool
		err error
	)
	for col := 0; col < w.n; col++ {
		if !w.state.Safe(row, col) {
			continue
		}

		// Place and recurse
		w.state.Place(row, col)
		w.assignment = append(w.assignment, col)

		if ok, err = w.descend(row + 1); err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}

		// Undo and count the backtrack
		w.assignment = w.assignment[:row]
		w.state.Remove(row, col)
		w.backtracks++
	}

	// 4. Every column failed: report dead end to the caller
	return false, nil
}
