// Package board defines the domain primitives of the N-Queens engine:
// cells, solutions, the O(1) conflict-tracking ConstraintState, and the
// pure Validate function.
//
// What:
//
//   - Cell: a (Row, Col) coordinate on an N×N board.
//   - Solution: an ordered sequence of exactly N cells, one per row,
//     with all columns and both diagonal families pairwise distinct.
//   - ConstraintState: tracks occupied columns and diagonals of a live
//     search; answers Safe(row, col) in O(1).
//   - Validate: total, side-effect-free check of an arbitrary candidate
//     placement, independent of any live search.
//
// Why:
//
//   - Searches need constant-time conflict detection to stay tractable
//     under exponential branching.
//   - Callers need to sanity-check engine output and externally supplied
//     placements without constructing a solver.
//
// Diagonal identifiers:
//
//	Two cells share a “\” diagonal iff they share row−col, and a “/”
//	diagonal iff they share row+col. ConstraintState stores row−col
//	shifted by N−1 so both families index into non-negative ranges.
//
// Complexity:
//
//   - Safe / Place / Remove: O(1) time.
//   - Validate:              O(N) time, O(N) memory.
//   - NewConstraintState:    O(N) time and memory.
//
// Validate never returns an error: malformed candidates (wrong length,
// out-of-range coordinates, duplicates) are simply invalid.
package board
