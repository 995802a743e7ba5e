package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type scoreRepo interface {
	Load(ctx context.Context) (*entity.Scores, error)
	Save(ctx context.Context, scores *entity.Scores) error
}

// ScoreService is the in-memory score ledger backed by a repository.
type ScoreService struct {
	logger    *slog.Logger
	scoreRepo scoreRepo

	scores entity.Scores
}

func NewScoreService(logger *slog.Logger, scoreRepo scoreRepo) *ScoreService {
	return &ScoreService{
		logger:    logger.With("component", "scores"),
		scoreRepo: scoreRepo,
	}
}

// Load replaces the ledger with the stored scores. A missing or unreadable
// record leaves a zeroed ledger instead of failing.
func (that *ScoreService) Load(ctx context.Context) entity.Scores {
	that.scores = entity.Scores{}

	stored, err := that.scoreRepo.Load(ctx)
	switch {
	case errors.Is(err, apperror.ErrScoresNotFound):
		that.logger.Info("no stored scores, starting from zero")
	case err != nil:
		that.logger.Warn("failed to load scores, starting from zero", "error", err)
	default:
		if err = stored.Validate(); err != nil {
			that.logger.Warn("stored scores are corrupt, starting from zero", "error", err)
			break
		}

		that.scores = *stored
	}

	return that.scores
}

// RecordWin - a draw must not be recorded.
func (that *ScoreService) RecordWin(player entity.Player) {
	that.scores.RecordWin(player)
}

func (that *ScoreService) Scores() entity.Scores {
	return that.scores
}

func (that *ScoreService) Save(ctx context.Context) error {
	scores := that.scores

	if err := that.scoreRepo.Save(ctx, &scores); err != nil {
		that.logger.Error("failed to save scores", "error", err)
		return fmt.Errorf("failed to save scores: %w", err)
	}

	return nil
}
