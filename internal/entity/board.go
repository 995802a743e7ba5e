package entity

import (
	"fmt"
	"iter"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// MaxBoardSize is the largest side length a board may have.
const MaxBoardSize = 1024

type Cell uint8

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

func (that Cell) String() string {
	switch that {
	case CellX:
		return string(PlayerX)
	case CellO:
		return string(PlayerO)
	default:
		return " "
	}
}

// Board is a square grid of cells stored row by row.
type Board struct {
	size  int
	cells []Cell
}

func NewBoard(size int) (*Board, error) {
	if size < 1 || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: size %d is outside [1, %d]", apperror.ErrInvalidConfiguration, size, MaxBoardSize)
	}

	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) Get(row, col int) (Cell, error) {
	index, err := that.index(row, col)
	if err != nil {
		return CellEmpty, err
	}

	return that.cells[index], nil
}

// Set writes the player's mark. Occupancy is not checked here.
func (that *Board) Set(row, col int, player Player) error {
	index, err := that.index(row, col)
	if err != nil {
		return err
	}

	that.cells[index] = player.Cell()

	return nil
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == CellEmpty {
			return false
		}
	}

	return true
}

// EmptyCells yields the coordinates of every empty cell, in row-major order.
func (that *Board) EmptyCells() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for i, cell := range that.cells {
			if cell != CellEmpty {
				continue
			}

			if !yield(Move{Row: i / that.size, Col: i % that.size}) {
				return
			}
		}
	}
}

// Row returns a copy of the cells in the given row.
func (that *Board) Row(row int) ([]Cell, error) {
	if row < 0 || row >= that.size {
		return nil, fmt.Errorf("%w: row %d", apperror.ErrOutOfBounds, row)
	}

	out := make([]Cell, that.size)
	copy(out, that.cells[row*that.size:(row+1)*that.size])

	return out, nil
}

func (that *Board) index(row, col int) (int, error) {
	if row < 0 || row >= that.size || col < 0 || col >= that.size {
		return 0, fmt.Errorf("%w: (%d, %d) on %dx%d board", apperror.ErrOutOfBounds, row, col, that.size, that.size)
	}

	return row*that.size + col, nil
}
