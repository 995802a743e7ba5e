package apperror

import "errors"

var (
	ErrOutOfBounds          = errors.New("coordinates are out of bounds")
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrCellOccupied         = errors.New("cell is already occupied")
	ErrNoAvailableMoves     = errors.New("no available moves")
	ErrInvalidInput         = errors.New("invalid input")
	ErrScoresNotFound       = errors.New("scores not found")
)
