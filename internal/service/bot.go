package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// BotService picks a uniformly random empty cell.
type BotService struct {
	logger *slog.Logger
	rng    *rand.Rand
}

// NewBotService - rng may be nil, in which case the global source is used.
func NewBotService(logger *slog.Logger, rng *rand.Rand) *BotService {
	return &BotService{
		logger: logger.With("component", "bot"),
		rng:    rng,
	}
}

func (that *BotService) NextMove(_ context.Context, board *entity.Board) (entity.Move, error) {
	availableCells := slices.Collect(board.EmptyCells())

	if len(availableCells) == 0 {
		return entity.Move{}, fmt.Errorf("bot asked to move on a full board: %w", apperror.ErrNoAvailableMoves)
	}

	chosenCell := availableCells[that.intN(len(availableCells))]
	that.logger.Debug("bot chose cell", "move", chosenCell, "candidates", len(availableCells))

	return chosenCell, nil
}

func (that *BotService) intN(n int) int {
	if that.rng == nil {
		return rand.IntN(n) //nolint: gosec // it's ok
	}

	return that.rng.IntN(n)
}
