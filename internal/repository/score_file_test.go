package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileScoreRepository_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing file returns ErrScoresNotFound", func(t *testing.T) {
		// Given: a path where nothing has been saved
		repo := NewFileScoreRepository(filepath.Join(t.TempDir(), "scores.json"))

		// When: loading
		scores, err := repo.Load(ctx)

		// Then: the not-found sentinel is returned
		require.ErrorIs(t, err, apperror.ErrScoresNotFound)
		assert.Nil(t, scores)
	})

	t.Run("Corrupt file returns an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := NewFileScoreRepository(path).Load(ctx)

		require.Error(t, err)
		assert.NotErrorIs(t, err, apperror.ErrScoresNotFound)
	})

	t.Run("Reads the record written by earlier versions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"X": 3, "O": 1}`), 0o644))

		scores, err := NewFileScoreRepository(path).Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, &entity.Scores{X: 3, O: 1}, scores)
	})
}

func TestFileScoreRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Round trips any counts", func(t *testing.T) {
		repo := NewFileScoreRepository(filepath.Join(t.TempDir(), "scores.json"))

		for _, want := range []entity.Scores{{}, {X: 1}, {O: 7}, {X: 1234, O: 987}} {
			// When: saving then loading
			require.NoError(t, repo.Save(ctx, &want))
			got, err := repo.Load(ctx)

			// Then: the exact counts come back
			require.NoError(t, err)
			assert.Equal(t, want, *got)
		}
	})

	t.Run("Writes a human readable record keyed by player", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores.json")

		require.NoError(t, NewFileScoreRepository(path).Save(ctx, &entity.Scores{X: 2, O: 5}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"X": 2, "O": 5}`, string(data))
	})

	t.Run("Creates missing directories and leaves no temporary files", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "dir")
		repo := NewFileScoreRepository(filepath.Join(dir, "scores.json"))

		require.NoError(t, repo.Save(ctx, &entity.Scores{X: 1}))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "scores.json", entries[0].Name())
	})

	t.Run("Fails when the target cannot be written", func(t *testing.T) {
		// Given: a regular file where the parent directory should be
		parent := filepath.Join(t.TempDir(), "blocked")
		require.NoError(t, os.WriteFile(parent, []byte("file"), 0o644))

		// When: saving below it
		err := NewFileScoreRepository(filepath.Join(parent, "scores.json")).Save(ctx, &entity.Scores{})

		// Then: the error is returned
		require.Error(t, err)
	})
}
