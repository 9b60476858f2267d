package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/nqueens/board"
)

func TestConstraintState_EmptyBoardAllSafe(t *testing.T) {
	cs := board.NewConstraintState(4)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			assert.True(t, cs.Safe(row, col), "empty board must allow (%d,%d)", row, col)
		}
	}
}

func TestConstraintState_PlaceBlocksColumnAndDiagonals(t *testing.T) {
	cs := board.NewConstraintState(4)
	cs.Place(0, 0)

	// Same column
	assert.False(t, cs.Safe(1, 0))
	assert.False(t, cs.Safe(3, 0))
	// “\” diagonal: row−col == 0
	assert.False(t, cs.Safe(1, 1))
	assert.False(t, cs.Safe(2, 2))
	// Same row is not tracked: searches never revisit a placed row,
	// so only the column mark applies here.
	assert.False(t, cs.Safe(0, 0))
	// Unrelated cells stay safe
	assert.True(t, cs.Safe(1, 2))
	assert.True(t, cs.Safe(2, 1))
}

func TestConstraintState_RemoveUndoesPlace(t *testing.T) {
	cs := board.NewConstraintState(5)
	cs.Place(2, 3)
	assert.False(t, cs.Safe(4, 3))
	cs.Remove(2, 3)

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			assert.True(t, cs.Safe(row, col), "(%d,%d) must be safe after undo", row, col)
		}
	}
}

func TestConstraintState_AntiDiagonal(t *testing.T) {
	cs := board.NewConstraintState(4)
	cs.Place(0, 3)

	// “/” diagonal: row+col == 3
	assert.False(t, cs.Safe(1, 2))
	assert.False(t, cs.Safe(2, 1))
	assert.False(t, cs.Safe(3, 0))
	assert.True(t, cs.Safe(1, 0))
}

func TestConstraintState_OutOfRangeNeverSafe(t *testing.T) {
	cs := board.NewConstraintState(3)
	assert.False(t, cs.Safe(-1, 0))
	assert.False(t, cs.Safe(0, -1))
	assert.False(t, cs.Safe(3, 0))
	assert.False(t, cs.Safe(0, 3))
}

func TestConstraintState_ZeroSize(t *testing.T) {
	cs := board.NewConstraintState(0)
	assert.Equal(t, 0, cs.Size())
	assert.False(t, cs.Safe(0, 0), "no cell is safe on a zero-size board")
}

func TestConstraintState_Reset(t *testing.T) {
	cs := board.NewConstraintState(4)
	cs.Place(0, 1)
	cs.Place(1, 3)
	cs.Reset()

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			assert.True(t, cs.Safe(row, col))
		}
	}
}

func TestConstraintState_MirrorsAssignment(t *testing.T) {
	// Walk a known 4-Queens solution down and back up; after every undo
	// the state must exactly mirror the remaining placements.
	cs := board.NewConstraintState(4)
	sol := board.Solution{{Row: 0, Col: 1}, {Row: 1, Col: 3}, {Row: 2, Col: 0}, {Row: 3, Col: 2}}

	for _, c := range sol {
		assert.True(t, cs.Safe(c.Row, c.Col))
		cs.Place(c.Row, c.Col)
	}
	for i := len(sol) - 1; i >= 0; i-- {
		cs.Remove(sol[i].Row, sol[i].Col)
		assert.True(t, cs.Safe(sol[i].Row, sol[i].Col), "undone cell must be safe again")
	}
}
