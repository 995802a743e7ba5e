package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type redisScores struct {
	client *redis.Client
	key    string
}

// NewRedisScoreRepository keeps the scores in a hash with one field per player.
func NewRedisScoreRepository(client *redis.Client, key string) ScoreRepository {
	return &redisScores{
		client: client,
		key:    key,
	}
}

func (that *redisScores) Load(ctx context.Context) (*entity.Scores, error) {
	fields, err := that.client.HGetAll(ctx, that.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	if len(fields) == 0 {
		return nil, apperror.ErrScoresNotFound
	}

	var scores entity.Scores
	if scores.X, err = parseCount(fields, entity.PlayerX); err != nil {
		return nil, err
	}

	if scores.O, err = parseCount(fields, entity.PlayerO); err != nil {
		return nil, err
	}

	return &scores, nil
}

func (that *redisScores) Save(ctx context.Context, scores *entity.Scores) error {
	err := that.client.HSet(ctx, that.key,
		entity.PlayerX.String(), scores.X,
		entity.PlayerO.String(), scores.O,
	).Err()
	if err != nil {
		return fmt.Errorf("failed to set scores: %w", err)
	}

	return nil
}

func parseCount(fields map[string]string, player entity.Player) (int, error) {
	raw, ok := fields[player.String()]
	if !ok {
		return 0, nil
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse score of player %s: %w", player, err)
	}

	return count, nil
}
