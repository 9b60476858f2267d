package solve

import "time"

// frame is one unit of pending work on the explicit stack: attempt
// placements in row starting at column col.
type frame struct {
	row int
	col int
}

// SolveFirstIterative finds the first solution without recursion,
// using an explicit stack of (row, startColumn) frames. Popping a
// frame first unwinds any placements at or below its row, then tries
// columns from startColumn upward; on success it pushes a resume frame
// for the current row (next column) and a fresh frame for the next
// row. Placing a queen in the last row completes the search.
//
// Because both forms share the ascending-column tie-break, the emitted
// solution is identical to SolveFirst's for every N. The backtrack
// counter here increments once per popped frame that admits no
// placement.
//
// Returns a non-nil error only on cancellation or a failing hook.
// Complexity: exponential worst case, O(N) stack memory.
func (s *Solver) SolveFirstIterative(opts ...Option) (*Result, error) {
	w := newWalker(s.n, opts)
	start := time.Now()

	found, err := w.iterate()
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

// iterate drives the explicit-stack search to the first solution.
func (w *walker) iterate() (bool, error) {
	// Stack depth never exceeds 2N: one resume and one descend frame per row.
	stack := make([]frame, 0, 2*w.n)
	stack = append(stack, frame{row: 0, col: 0})

	var f frame
	var row int
	for len(stack) > 0 {
		// 1. Cancellation check, once per popped frame
		if err := w.cancelled(); err != nil {
			return false, err
		}

		// 2. Pop the next frame
		f = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// 3. Unwind placements left over from deeper rows
		for len(w.assignment) > f.row {
			row = len(w.assignment) - 1
			w.state.Remove(row, w.assignment[row])
			w.assignment = w.assignment[:row]
		}

		// 4. Try columns of this row from the frame's start column
		placed := false
		for col := f.col; col < w.n; col++ {
			if !w.state.Safe(f.row, col) {
				continue
			}

			w.state.Place(f.row, col)
			w.assignment = append(w.assignment, col)
			placed = true

			if f.row == w.n-1 {
				// All rows placed
				return true, nil
			}

			stack = append(stack, frame{row: f.row, col: col + 1}) // resume on backtrack
			stack = append(stack, frame{row: f.row + 1, col: 0})   // descend

			break
		}

		// 5. Dead-end row: count one backtrack operation
		if !placed {
			w.backtracks++
		}
	}

	return false, nil
}
