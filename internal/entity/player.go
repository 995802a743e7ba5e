package entity

type Player string

const (
	PlayerX   Player = "X"
	PlayerO   Player = "O"
	PlayerTie Player = "-"
)

// Other returns the opponent of the player.
func (that Player) Other() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Cell returns the board cell a move by the player leaves behind.
func (that Player) Cell() Cell {
	switch that {
	case PlayerX:
		return CellX
	case PlayerO:
		return CellO
	default:
		return CellEmpty
	}
}

func (that Player) String() string {
	return string(that)
}

// Outcome is the result of a finished game: a winner, or PlayerTie for a draw.
type Outcome struct {
	Winner Player `json:"winner"`
}

func NewWin(player Player) Outcome {
	return Outcome{Winner: player}
}

func NewDraw() Outcome {
	return Outcome{Winner: PlayerTie}
}

func (that Outcome) IsDraw() bool {
	return that.Winner == PlayerTie
}
