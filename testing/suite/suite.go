package suite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage"
)

const (
	containerTTL = 120 * time.Second
	maxWait      = 60 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "7-alpine"
	keyPrefix  = "test"
)

type Suite struct {
	*testing.T

	Redis *storage.RedisStorage
}

// New starts a throwaway Redis container and connects to it the way the
// application does. The test is skipped when Docker is unavailable.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWait)
	t.Cleanup(cancel)

	pool := dockerPool(t)
	addr := startRedis(t, pool)

	var redisStorage *storage.RedisStorage
	err := pool.Retry(func() error {
		var connErr error
		redisStorage, connErr = storage.NewRedisStorage(ctx, addr)

		return connErr
	})
	if err != nil {
		t.Fatalf("redis at %s never became ready: %v", addr, err)
	}

	t.Cleanup(func() {
		if closeErr := redisStorage.Close(); closeErr != nil {
			t.Logf("could not close redis client: %v", closeErr)
		}
	})

	return ctx, &Suite{
		T:     t,
		Redis: redisStorage,
	}
}

// Key returns a key no other test uses, so tests can share one container.
func (that *Suite) Key(name string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, name, uuid.NewString())
}

func dockerPool(t *testing.T) *dockertest.Pool {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker is not reachable: %v", err)
	}

	pool.MaxWait = maxWait

	return pool
}

// startRedis - runs the container and returns its host address. The container
// is purged on cleanup and killed by docker after containerTTL regardless.
func startRedis(t *testing.T, pool *dockertest.Pool) string {
	t.Helper()

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis container: %v", err)
	}

	_ = resource.Expire(uint(containerTTL.Seconds()))

	t.Cleanup(func() {
		if purgeErr := pool.Purge(resource); purgeErr != nil {
			t.Logf("could not purge redis container: %v", purgeErr)
		}
	})

	return resource.GetHostPort(redisPort)
}
