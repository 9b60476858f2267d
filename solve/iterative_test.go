package solve_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nqueens/board"
	"github.com/katalvlaran/nqueens/solve"
)

func TestSolveFirstIterative_MatchesRecursive(t *testing.T) {
	for n := 1; n <= 12; n++ {
		s, err := solve.New(n)
		require.NoError(t, err)

		rec, err := s.SolveFirst()
		require.NoError(t, err, "n=%d", n)
		iter, err := s.SolveFirstIterative()
		require.NoError(t, err, "n=%d", n)

		recSol, recOK := rec.First()
		iterSol, iterOK := iter.First()
		require.Equal(t, recOK, iterOK, "n=%d: both forms must agree on existence", n)
		if recOK {
			assert.True(t, recSol.Equal(iterSol),
				"n=%d: iterative and recursive first solutions must be identical", n)
		}
	}
}

func TestSolveFirstIterative_TrivialBoard(t *testing.T) {
	s, err := solve.New(1)
	require.NoError(t, err)

	res, err := s.SolveFirstIterative()
	require.NoError(t, err)

	sol, ok := res.First()
	require.True(t, ok)
	assert.Equal(t, board.Solution{{Row: 0, Col: 0}}, sol)
	assert.Equal(t, 0, res.Stats.Backtracks)
}

func TestSolveFirstIterative_NoSolution(t *testing.T) {
	for _, n := range []int{2, 3} {
		s, err := solve.New(n)
		require.NoError(t, err)

		res, err := s.SolveFirstIterative()
		require.NoError(t, err)
		assert.Empty(t, res.Solutions, "n=%d", n)
		assert.Greater(t, res.Stats.Backtracks, 0,
			"n=%d: dead-end rows must be counted", n)
	}
}

func TestSolveFirstIterative_SolutionValidates(t *testing.T) {
	for _, n := range []int{4, 6, 8, 10} {
		s, err := solve.New(n)
		require.NoError(t, err)

		res, err := s.SolveFirstIterative()
		require.NoError(t, err)

		sol, ok := res.First()
		require.True(t, ok, "n=%d", n)
		assert.True(t, board.Validate(n, sol), "n=%d", n)
	}
}

func TestSolveFirstIterative_Cancellation(t *testing.T) {
	s, err := solve.New(12)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := s.SolveFirstIterative(solve.WithContext(ctx))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveFirstIterative_StatisticsOnHandle(t *testing.T) {
	s, err := solve.New(8)
	require.NoError(t, err)

	res, err := s.SolveFirstIterative()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Statistics().Solutions)
	assert.Equal(t, res.Stats, s.Statistics())
	assert.GreaterOrEqual(t, s.Statistics().Backtracks, 0)
}
