package board

// Validate reports whether candidate is a correct N-Queens solution for
// an n×n board. It rebuilds the column and diagonal conflict sets from
// scratch, independent of any live search state.
//
// A candidate is valid iff it holds exactly n cells, every coordinate
// lies in [0,n), and no two cells share a row, column, or diagonal.
// Cells may arrive in any order.
//
// Validate is total: malformed input yields false, never an error or a
// panic. Complexity: O(N) time, O(N) memory.
func Validate(n int, candidate Solution) bool {
	if n <= 0 || len(candidate) != n {
		return false
	}

	rows := make([]bool, n)
	cols := make([]bool, n)
	diag1 := make([]bool, 2*n-1)
	diag2 := make([]bool, 2*n-1)

	for _, c := range candidate {
		if c.Row < 0 || c.Row >= n || c.Col < 0 || c.Col >= n {
			return false
		}
		if rows[c.Row] || cols[c.Col] || diag1[c.Row-c.Col+n-1] || diag2[c.Row+c.Col] {
			return false
		}
		rows[c.Row] = true
		cols[c.Col] = true
		diag1[c.Row-c.Col+n-1] = true
		diag2[c.Row+c.Col] = true
	}

	return true
}
