package entity

import (
	"errors"
	"fmt"
)

var ErrNegativeScore = errors.New("score must not be negative")

// Scores is the win count of each player, kept across sessions.
type Scores struct {
	X int `json:"X"`
	O int `json:"O"`
}

func (that *Scores) Get(player Player) int {
	switch player {
	case PlayerX:
		return that.X
	case PlayerO:
		return that.O
	default:
		return 0
	}
}

// RecordWin increments the count of the given player. Anything but X or O is ignored.
func (that *Scores) RecordWin(player Player) {
	switch player {
	case PlayerX:
		that.X++
	case PlayerO:
		that.O++
	}
}

func (that *Scores) Validate() error {
	if that.X < 0 {
		return fmt.Errorf("%w: player X has %d", ErrNegativeScore, that.X)
	}

	if that.O < 0 {
		return fmt.Errorf("%w: player O has %d", ErrNegativeScore, that.O)
	}

	return nil
}
