package board

// ConstraintState tracks which columns and which diagonals of both
// families are blocked by queens already placed during a search.
// It answers conflict queries in O(1) and must never be shared between
// concurrent searches: each search owns exactly one instance.
//
// Rows need no tracking: searches descend rows in strictly increasing
// order and assign at most one queen per row.
type ConstraintState struct {
	n     int    // board size; immutable
	cols  []bool // cols[c]        — column c occupied
	diag1 []bool // diag1[r-c+n-1] — “\” diagonal occupied
	diag2 []bool // diag2[r+c]     — “/” diagonal occupied
}

// NewConstraintState returns an empty ConstraintState for an n×n board.
// Panics are avoided: n ≤ 0 yields a state on which no cell is ever safe.
// Complexity: O(N) time and memory.
func NewConstraintState(n int) *ConstraintState {
	if n <= 0 {
		return &ConstraintState{}
	}

	return &ConstraintState{
		n:     n,
		cols:  make([]bool, n),
		diag1: make([]bool, 2*n-1),
		diag2: make([]bool, 2*n-1),
	}
}

// Size returns the board size the state was built for.
func (cs *ConstraintState) Size() int { return cs.n }

// Safe reports whether a queen at (row, col) conflicts with no placed
// queen: its column and both diagonals must be unoccupied.
// Coordinates outside [0,N) are never safe.
// Complexity: O(1).
func (cs *ConstraintState) Safe(row, col int) bool {
	if row < 0 || row >= cs.n || col < 0 || col >= cs.n {
		return false
	}

	return !cs.cols[col] && !cs.diag1[row-col+cs.n-1] && !cs.diag2[row+col]
}

// Place marks the column and diagonals of (row, col) occupied.
// Callers must check Safe first; placing an unsafe cell corrupts the
// mirror between the state and the live assignment.
// Complexity: O(1).
func (cs *ConstraintState) Place(row, col int) {
	cs.cols[col] = true
	cs.diag1[row-col+cs.n-1] = true
	cs.diag2[row+col] = true
}

// Remove clears the column and diagonals of (row, col), undoing Place.
// Complexity: O(1).
func (cs *ConstraintState) Remove(row, col int) {
	cs.cols[col] = false
	cs.diag1[row-col+cs.n-1] = false
	cs.diag2[row+col] = false
}

// Reset clears every occupied mark, returning the state to empty.
// Complexity: O(N).
func (cs *ConstraintState) Reset() {
	clearBools(cs.cols)
	clearBools(cs.diag1)
	clearBools(cs.diag2)
}

func clearBools(b []bool) {
	for i := range b {
		b[i] = false
	}
}
