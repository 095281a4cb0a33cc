package suite

import (
	"context"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/repository/storage"
)

const (
	expireDuration  = 120
	maxWaitDuration = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "7-alpine"

	postgresPort     = "5432/tcp"
	postgresImage    = "postgres"
	postgresTag      = "16-alpine"
	postgresUser     = "rooms"
	postgresPassword = "rooms"
	postgresDB       = "rooms"
)

// Suite is a Room Store backend running in a throwaway container.
type Suite struct {
	*testing.T

	Storage  *redis.Client
	Postgres *storage.PostgresStorage
}

// New starts a Redis container and returns a flushed client bound to it.
// The test is skipped in -short mode or when no docker daemon is reachable.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, hostPort, retry := startContainer(t, &dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, redisPort)

	var redisClient *redis.Client
	retry("redis", func() error {
		redisClient = redis.NewClient(&redis.Options{
			Addr: hostPort,
		})
		return redisClient.Ping(ctx).Err()
	})

	if err := redisClient.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush database: %v", err)
	}

	t.Cleanup(func() {
		_ = redisClient.Close()
	})

	return ctx, &Suite{
		T:       t,
		Storage: redisClient,
	}
}

// NewPostgres starts a PostgreSQL container with the rooms table in place.
// Skipped under the same conditions as New.
func NewPostgres(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, hostPort, retry := startContainer(t, &dockertest.RunOptions{
		Repository: postgresImage,
		Tag:        postgresTag,
		Env: []string{
			"POSTGRES_USER=" + postgresUser,
			"POSTGRES_PASSWORD=" + postgresPassword,
			"POSTGRES_DB=" + postgresDB,
		},
	}, postgresPort)

	dsn := (&url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(postgresUser, postgresPassword),
		Host:     hostPort,
		Path:     postgresDB,
		RawQuery: "sslmode=disable",
	}).String()

	var postgresStorage *storage.PostgresStorage
	retry("postgres", func() error {
		var err error
		postgresStorage, err = storage.NewPostgresStorage(ctx, dsn, 4)
		return err
	})

	if err := postgresStorage.Init(ctx); err != nil {
		t.Fatalf("could not create rooms table: %v", err)
	}

	t.Cleanup(func() {
		_ = postgresStorage.Close()
	})

	return ctx, &Suite{
		T:        t,
		Postgres: postgresStorage,
	}
}

// startContainer runs the image and returns the host address of port. The
// returned retry waits with backoff until connect succeeds and fails the test
// otherwise. The container is purged when the test ends.
func startContainer(t *testing.T, opts *dockertest.RunOptions, port string) (context.Context, string, func(name string, connect func() error)) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(cancel)

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("could not connect to docker: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	resource, err := pool.RunWithOptions(opts, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start %s:%s: %v", opts.Repository, opts.Tag, err)
	}

	// never returns error
	_ = resource.Expire(expireDuration)

	t.Cleanup(func() {
		if purgeErr := pool.Purge(resource); purgeErr != nil {
			t.Errorf("could not purge %s: %v", opts.Repository, purgeErr)
		}
	})

	pool.MaxWait = maxWaitDuration

	retry := func(name string, connect func() error) {
		t.Helper()

		if retryErr := pool.Retry(connect); retryErr != nil {
			t.Fatalf("could not connect to %s: %v", name, fmt.Errorf("after %s: %w", maxWaitDuration, retryErr))
		}
	}

	return ctx, resource.GetHostPort(port), retry
}
