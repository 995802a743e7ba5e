package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type sqliteScores struct {
	db *sql.DB
}

// NewSQLiteScoreRepository expects the scores table created by storage.SQLiteStorage.Init.
func NewSQLiteScoreRepository(db *sql.DB) ScoreRepository {
	return &sqliteScores{
		db: db,
	}
}

func (that *sqliteScores) Load(ctx context.Context) (*entity.Scores, error) {
	rows, err := that.db.QueryContext(ctx, `SELECT player, wins FROM scores`)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	var (
		scores entity.Scores
		found  bool
	)

	for rows.Next() {
		var (
			player string
			wins   int
		)

		if err = rows.Scan(&player, &wins); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}

		switch entity.Player(player) {
		case entity.PlayerX:
			scores.X = wins
		case entity.PlayerO:
			scores.O = wins
		default:
			continue
		}

		found = true
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scores: %w", err)
	}

	if !found {
		return nil, apperror.ErrScoresNotFound
	}

	return &scores, nil
}

func (that *sqliteScores) Save(ctx context.Context, scores *entity.Scores) error {
	tx, err := that.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint: errcheck // no-op after commit

	const query = `INSERT INTO scores (player, wins) VALUES (?, ?)
		ON CONFLICT (player) DO UPDATE SET wins = excluded.wins`

	for _, player := range []entity.Player{entity.PlayerX, entity.PlayerO} {
		if _, err = tx.ExecContext(ctx, query, player.String(), scores.Get(player)); err != nil {
			return fmt.Errorf("failed to save score of player %s: %w", player, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit scores: %w", err)
	}

	return nil
}
