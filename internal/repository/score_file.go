package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type fileScores struct {
	path string
}

// NewFileScoreRepository keeps the scores as a JSON object in a single file.
func NewFileScoreRepository(path string) ScoreRepository {
	return &fileScores{
		path: path,
	}
}

func (that *fileScores) Load(_ context.Context) (*entity.Scores, error) {
	data, err := os.ReadFile(that.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, apperror.ErrScoresNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read scores file: %w", err)
	}

	var scores entity.Scores
	if err = json.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scores: %w", err)
	}

	return &scores, nil
}

// Save writes to a temporary file and renames it over the old record.
func (that *fileScores) Save(_ context.Context, scores *entity.Scores) error {
	data, err := json.MarshalIndent(scores, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}

	dir := filepath.Dir(that.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create scores directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(that.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary scores file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write scores: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close scores file: %w", err)
	}

	if err = os.Rename(tmp.Name(), that.path); err != nil {
		return fmt.Errorf("failed to replace scores file: %w", err)
	}

	return nil
}
