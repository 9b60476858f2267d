// Package solve implements the N-Queens search engine: recursive
// backtracking for the first solution, exhaustive enumeration of all
// solutions, and an explicit-stack iterative equivalent, all with
// backtrack and wall-clock instrumentation.
//
// What:
//
//   - Solver: a handle bound to one board size N; construct with New.
//   - SolveFirst: recursive depth-first search, ascending-column order,
//     stops at the first complete placement.
//   - SolveAll: the same traversal without early exit; collects every
//     complete placement in deterministic search order.
//   - SolveFirstIterative: explicit (row, startColumn) frame stack;
//     returns the identical first solution to SolveFirst.
//   - Statistics: solutions found, backtrack operations, elapsed time
//     of the most recent run on the handle.
//   - KnownSolutionCount: static reference table of solution totals.
//   - AnalyzeSymmetry: groups solutions by canonical cell tuple.
//
// Why:
//
//   - First-solution search answers feasibility almost instantly for
//     any practical N.
//   - Exhaustive enumeration feeds counting, benchmarking and display
//     layers downstream.
//   - The iterative form suits constrained call stacks and makes
//     cancellation points explicit.
//
// Determinism:
//
//	Rows descend 0..N−1 and columns are tried in ascending order, so
//	solution order — and the first solution in particular — is a pure
//	function of N. SolveFirst and SolveFirstIterative always agree.
//
// Complexity:
//
//   - SolveFirst / SolveFirstIterative: exponential worst case (only
//     N=2 and N=3 exhaust the tree); near-linear in practice.
//   - SolveAll: exponential; explosive beyond roughly N=15–16.
//   - Memory: O(N) search state plus O(N·S) for S collected solutions.
//
// Options:
//
//   - WithContext(ctx)     cancellation, checked once per row descent.
//   - WithOnSolution(fn)   per-solution hook; error aborts the search.
//
// Errors:
//
//   - ErrInvalidSize       New called with n ≤ 0.
//   - context.Canceled     search canceled via context.
//   - hook errors          propagated from OnSolution.
//
// "No solution exists" is not an error: SolveFirst returns an empty
// Result for N=2 and N=3.
package solve
