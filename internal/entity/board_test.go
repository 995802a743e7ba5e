package entity

import (
	"math"
	"slices"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("Creates an empty board of the requested size", func(t *testing.T) {
		// When: a 3x3 board is created
		board, err := NewBoard(3)

		// Then: every cell is empty
		require.NoError(t, err)
		assert.Equal(t, 3, board.Size())
		for row := range 3 {
			for col := range 3 {
				cell, err := board.Get(row, col)
				require.NoError(t, err)
				assert.Equal(t, CellEmpty, cell)
			}
		}
	})

	t.Run("Rejects sizes below one", func(t *testing.T) {
		for _, size := range []int{0, -1, -10} {
			// When: creating a board with a non-positive size
			board, err := NewBoard(size)

			// Then: ErrInvalidConfiguration is returned
			require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
			assert.Nil(t, board)
		}
	})

	t.Run("Rejects sizes above the maximum without allocating", func(t *testing.T) {
		for _, size := range []int{MaxBoardSize + 1, 100000, 3037000500, math.MaxInt} {
			var (
				board *Board
				err   error
			)

			// When: creating a board whose cell count is huge or overflows
			assert.NotPanics(t, func() { board, err = NewBoard(size) }, "size %d", size)

			// Then: the size is reported as an invalid configuration
			require.ErrorIs(t, err, apperror.ErrInvalidConfiguration, "size %d", size)
			assert.Nil(t, board)
		}
	})

	t.Run("Accepts the maximum size", func(t *testing.T) {
		board, err := NewBoard(MaxBoardSize)

		require.NoError(t, err)
		assert.Equal(t, MaxBoardSize, board.Size())
	})
}

func TestBoard_SetGet(t *testing.T) {
	t.Run("Get returns what Set wrote", func(t *testing.T) {
		// Given: a 4x4 board
		board, err := NewBoard(4)
		require.NoError(t, err)

		// When: marks are written
		require.NoError(t, board.Set(0, 3, PlayerX))
		require.NoError(t, board.Set(2, 1, PlayerO))

		// Then: reading them back returns the written values
		cell, err := board.Get(0, 3)
		require.NoError(t, err)
		assert.Equal(t, CellX, cell)

		cell, err = board.Get(2, 1)
		require.NoError(t, err)
		assert.Equal(t, CellO, cell)
	})

	t.Run("Set does not check occupancy", func(t *testing.T) {
		// Given: a cell taken by X
		board, err := NewBoard(3)
		require.NoError(t, err)
		require.NoError(t, board.Set(1, 1, PlayerX))

		// When: O overwrites it
		err = board.Set(1, 1, PlayerO)

		// Then: the write succeeds
		require.NoError(t, err)
		cell, _ := board.Get(1, 1)
		assert.Equal(t, CellO, cell)
	})

	t.Run("Out of range coordinates fail with ErrOutOfBounds", func(t *testing.T) {
		board, err := NewBoard(3)
		require.NoError(t, err)

		for _, m := range []Move{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}, {-2, 7}} {
			_, err := board.Get(m.Row, m.Col)
			require.ErrorIs(t, err, apperror.ErrOutOfBounds, "get %v", m)

			err = board.Set(m.Row, m.Col, PlayerX)
			require.ErrorIs(t, err, apperror.ErrOutOfBounds, "set %v", m)
		}

		assert.Len(t, slices.Collect(board.EmptyCells()), 9)
	})
}

func TestBoard_IsFull(t *testing.T) {
	// Given: a 2x2 board
	board, err := NewBoard(2)
	require.NoError(t, err)

	// Then: it is full only after the last cell is written
	moves := []Move{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for i, m := range moves {
		assert.False(t, board.IsFull())
		require.NoError(t, board.Set(m.Row, m.Col, []Player{PlayerX, PlayerO}[i%2]))
	}

	assert.True(t, board.IsFull())
}

func TestBoard_EmptyCells(t *testing.T) {
	t.Run("Yields every empty cell and is recomputed each call", func(t *testing.T) {
		// Given: a 3x3 board with two marks
		board, err := NewBoard(3)
		require.NoError(t, err)
		require.NoError(t, board.Set(0, 0, PlayerX))
		require.NoError(t, board.Set(2, 2, PlayerO))

		// When: collecting the empty cells
		empty := slices.Collect(board.EmptyCells())

		// Then: the marked cells are absent
		assert.Len(t, empty, 7)
		assert.NotContains(t, empty, Move{0, 0})
		assert.NotContains(t, empty, Move{2, 2})

		// When: another cell is taken
		require.NoError(t, board.Set(1, 1, PlayerX))

		// Then: a fresh call reflects it
		assert.Len(t, slices.Collect(board.EmptyCells()), 6)
	})

	t.Run("Stops early when the consumer stops", func(t *testing.T) {
		board, err := NewBoard(5)
		require.NoError(t, err)

		count := 0
		for range board.EmptyCells() {
			count++
			if count == 3 {
				break
			}
		}

		assert.Equal(t, 3, count)
	})

	t.Run("Yields nothing on a full board", func(t *testing.T) {
		board, err := NewBoard(1)
		require.NoError(t, err)
		require.NoError(t, board.Set(0, 0, PlayerO))

		assert.Empty(t, slices.Collect(board.EmptyCells()))
	})
}

func TestBoard_Row(t *testing.T) {
	board, err := NewBoard(3)
	require.NoError(t, err)
	require.NoError(t, board.Set(1, 2, PlayerO))

	row, err := board.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []Cell{CellEmpty, CellEmpty, CellO}, row)

	// the copy is detached from the board
	row[0] = CellX
	cell, _ := board.Get(1, 0)
	assert.Equal(t, CellEmpty, cell)

	_, err = board.Row(3)
	require.ErrorIs(t, err, apperror.ErrOutOfBounds)
}
