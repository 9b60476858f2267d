// Package board defines cells, solutions, and conflict-tracking state
// for N-Queens searches.
package board

// Cell is a single square on an N×N board, addressed by zero-based
// row and column.
type Cell struct {
	Row int
	Col int
}

// Solution is a complete non-attacking placement: exactly one cell per
// row, ordered by ascending row as produced by the search. Solutions
// are immutable once emitted; use Clone before mutating.
type Solution []Cell

// Cols returns the column occupied in each row, indexed by row.
// Complexity: O(N).
func (s Solution) Cols() []int {
	cols := make([]int, len(s))
	for i, c := range s {
		cols[i] = c.Col
	}

	return cols
}

// Clone returns an independent copy of s.
// Complexity: O(N).
func (s Solution) Clone() Solution {
	out := make(Solution, len(s))
	copy(out, s)

	return out
}

// Equal reports whether s and other hold the same cells in the same order.
// Complexity: O(N).
func (s Solution) Equal(other Solution) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}
