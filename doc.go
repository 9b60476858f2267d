// Package nqueens is a compact engine for the classic N-Queens problem:
// place N queens on an N×N board so that no two share a row, column,
// or diagonal.
//
// 🚀 What is nqueens?
//
//	A small, deterministic, dependency-light library that brings together:
//		• Board primitives: cells, solutions, O(1) conflict sets
//		• First-solution search: recursive backtracking
//		• Exhaustive enumeration: every solution, deterministic order
//		• Iterative search: explicit-stack equivalent of the recursive form
//		• Validation: pure, total checking of arbitrary placements
//		• Instrumentation: solution, backtrack and wall-clock statistics
//
// ✨ Why choose nqueens?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – ascending-column tie-break, reproducible output order
//   - Pure Go – no cgo, no hidden deps
//   - Cancellable – context.Context honored once per row descent
//
// Under the hood, everything is organized under two subpackages:
//
//	board/ — Cell, Solution, ConstraintState and the Validate function
//	solve/ — Solver handle, SolveFirst / SolveAll / SolveFirstIterative,
//	         statistics, known solution counts and symmetry analysis
//
// Quick ASCII example (one of the two 4-Queens solutions):
//
//	. Q . .
//	. . . Q
//	Q . . .
//	. . Q .
//
// Recursion depth is bounded by N, so stack usage is O(N); every practical
// board size is safe on default goroutine stacks. Exhaustive enumeration
// grows explosively beyond roughly N=15–16 — cap or warn in callers.
//
//	go get github.com/katalvlaran/nqueens
package nqueens
