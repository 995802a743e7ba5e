package tictactoe

import "github.com/rocketscienceinc/tictactoe-cli/internal/entity"

// HasWon reports whether the player fills any row, column or main/anti diagonal.
func HasWon(board *entity.Board, player entity.Player) bool {
	size := board.Size()
	mark := player.Cell()
	if mark == entity.CellEmpty {
		return false
	}

	owns := func(row, col int) bool {
		cell, err := board.Get(row, col)
		return err == nil && cell == mark
	}

	line := func(at func(i int) (int, int)) bool {
		for i := range size {
			if !owns(at(i)) {
				return false
			}
		}
		return true
	}

	for fixed := range size {
		if line(func(i int) (int, int) { return fixed, i }) {
			return true
		}

		if line(func(i int) (int, int) { return i, fixed }) {
			return true
		}
	}

	if line(func(i int) (int, int) { return i, i }) {
		return true
	}

	return line(func(i int) (int, int) { return i, size - 1 - i })
}
