package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/repository"
	"github.com/rocketscienceinc/tictactoe-rooms/testing/suite"
)

func TestRedisRoomRepository(t *testing.T) {
	runRoomRepositoryContract(t, func(t *testing.T) (context.Context, repository.RoomRepository) {
		ctx, st := suite.New(t)
		return ctx, repository.NewRedisRoomRepository(st.Storage, 0)
	})
}

func TestRedisRoomRepository_TTL(t *testing.T) {
	t.Run("Writes set the expiry", func(t *testing.T) {
		ctx, st := suite.New(t)
		repo := repository.NewRedisRoomRepository(st.Storage, time.Hour)

		// Given: a room created with a ttl
		_, err := repo.Create(ctx, newRoom(t, "ROOM0001", 0))
		require.NoError(t, err)

		// Then: the key expires
		ttl, err := st.Storage.TTL(ctx, "room:ROOM0001").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("Expired rooms are dropped from the list", func(t *testing.T) {
		ctx, st := suite.New(t)
		repo := repository.NewRedisRoomRepository(st.Storage, time.Hour)

		// Given: two rooms, one of which has expired
		_, err := repo.Create(ctx, newRoom(t, "ROOM0001", 0))
		require.NoError(t, err)
		_, err = repo.Create(ctx, newRoom(t, "ROOM0002", time.Minute))
		require.NoError(t, err)
		require.NoError(t, st.Storage.Del(ctx, "room:ROOM0001").Err())

		// When: rooms are listed
		rooms, err := repo.List(ctx)

		// Then: only the live room is returned and the index is cleaned up
		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, "ROOM0002", rooms[0].ID)

		ids, err := st.Storage.SMembers(ctx, "rooms").Result()
		require.NoError(t, err)
		assert.Equal(t, []string{"ROOM0002"}, ids)
	})
}

func TestRedisRoomRepository_Delete(t *testing.T) {
	t.Run("Key and index entry go together", func(t *testing.T) {
		ctx, st := suite.New(t)
		repo := repository.NewRedisRoomRepository(st.Storage, 0)

		// Given: a stored room
		_, err := repo.Create(ctx, newRoom(t, "ROOM0001", 0))
		require.NoError(t, err)

		// When: it is deleted
		deleted, err := repo.Delete(ctx, "ROOM0001")

		// Then: both the value and the index entry are gone
		require.NoError(t, err)
		assert.Equal(t, "ROOM0001", deleted.ID)

		exists, err := st.Storage.Exists(ctx, "room:ROOM0001").Result()
		require.NoError(t, err)
		assert.Zero(t, exists)

		ids, err := st.Storage.SMembers(ctx, "rooms").Result()
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("Missing room", func(t *testing.T) {
		ctx, st := suite.New(t)
		repo := repository.NewRedisRoomRepository(st.Storage, 0)

		_, err := repo.Delete(ctx, "MISSING1")

		require.ErrorIs(t, err, apperror.ErrRoomNotFound)
	})

	t.Run("Connection failure is a transport error", func(t *testing.T) {
		ctx, st := suite.New(t)
		client := redis.NewClient(&redis.Options{Addr: st.Storage.Options().Addr})
		require.NoError(t, client.Close())
		repo := repository.NewRedisRoomRepository(client, 0)

		_, err := repo.Delete(ctx, "ROOM0001")

		require.ErrorIs(t, err, apperror.ErrTransport)
		assert.NotErrorIs(t, err, apperror.ErrRoomNotFound)
	})
}
