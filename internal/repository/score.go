package repository

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// ScoreRepository stores the single score record. Load returns
// apperror.ErrScoresNotFound when no record has been saved yet.
type ScoreRepository interface {
	Load(ctx context.Context) (*entity.Scores, error)
	Save(ctx context.Context, scores *entity.Scores) error
}
