package solve

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/nqueens/board"
)

// knownCounts is static reference data: the number of distinct
// N-Queens solutions for each board size with a published total.
// Sizes 2 and 3 are the only positive sizes with no solution.
var knownCounts = map[int]int{
	1: 1, 2: 0, 3: 0, 4: 2, 5: 10, 6: 4, 7: 40, 8: 92,
	9: 352, 10: 724, 11: 2680, 12: 14200, 13: 73712, 14: 365596,
}

// KnownSolutionCount returns the published solution total for an n×n
// board and true, or 0 and false when n is outside the table.
func KnownSolutionCount(n int) (int, bool) {
	count, ok := knownCounts[n]

	return count, ok
}

// SymmetryAnalysis summarizes a batch of solutions: how many were
// given, and how many distinct canonical forms they collapse to.
type SymmetryAnalysis struct {
	// Total is the number of solutions analyzed.
	Total int

	// Unique is the number of distinct canonical forms. The canonical
	// form is the row-sorted cell tuple; rotations and reflections are
	// NOT folded, so for engine-produced batches Unique always equals
	// Total. Fundamental-solution counting (e.g. 12 for N=8) would
	// require applying the eight board symmetries before keying.
	Unique int
}

// AnalyzeSymmetry canonicalizes each solution and counts the distinct
// forms. Complexity: O(S·N log N) time, O(S·N) memory for S solutions.
func AnalyzeSymmetry(solutions []board.Solution) SymmetryAnalysis {
	seen := make(map[string]struct{}, len(solutions))
	for _, sol := range solutions {
		seen[canonicalKey(sol)] = struct{}{}
	}

	return SymmetryAnalysis{Total: len(solutions), Unique: len(seen)}
}

// canonicalKey renders sol as its row-sorted cell tuple.
func canonicalKey(sol board.Solution) string {
	cells := sol.Clone()
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}

		return cells[i].Col < cells[j].Col
	})

	var b strings.Builder
	for _, c := range cells {
		b.WriteString(strconv.Itoa(c.Row))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Col))
		b.WriteByte(';')
	}

	return b.String()
}
