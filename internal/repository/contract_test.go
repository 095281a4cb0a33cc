package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/repository"
)

var createdAt = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newRoom(t *testing.T, id string, offset time.Duration, players ...string) *entity.Room {
	t.Helper()

	room := entity.NewRoom(id, createdAt.Add(offset))
	for _, player := range players {
		require.NoError(t, room.AddPlayer(player, "name-"+player))
	}

	return room
}

// runRoomRepositoryContract checks the Room Store contract every backend has
// to honor. newRepo must return an empty store.
func runRoomRepositoryContract(t *testing.T, newRepo func(t *testing.T) (context.Context, repository.RoomRepository)) {
	t.Run("Create_and_Get", func(t *testing.T) {
		ctx, repo := newRepo(t)

		// Given: a room with one player
		room := newRoom(t, "ROOM0001", 0, "a")

		// When: it is created and read back
		created, err := repo.Create(ctx, room)
		require.NoError(t, err)
		stored, err := repo.Get(ctx, room.ID)

		// Then: both match the original
		require.NoError(t, err)
		assert.Equal(t, room, created)
		assert.Equal(t, room, stored)
	})

	t.Run("Create_Duplicate", func(t *testing.T) {
		ctx, repo := newRepo(t)

		// Given: an existing room
		_, err := repo.Create(ctx, newRoom(t, "ROOM0001", 0))
		require.NoError(t, err)

		// When: a room with the same id is created
		_, err = repo.Create(ctx, newRoom(t, "ROOM0001", time.Minute, "a"))

		// Then: ErrRoomExists is returned and the first room survives
		require.ErrorIs(t, err, apperror.ErrRoomExists)
		stored, err := repo.Get(ctx, "ROOM0001")
		require.NoError(t, err)
		assert.Empty(t, stored.Players)
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		ctx, repo := newRepo(t)

		// When: a missing room is read
		room, err := repo.Get(ctx, "MISSING1")

		// Then: ErrRoomNotFound is returned
		require.ErrorIs(t, err, apperror.ErrRoomNotFound)
		assert.Nil(t, room)
	})

	t.Run("Replace", func(t *testing.T) {
		ctx, repo := newRepo(t)

		// Given: an existing room
		_, err := repo.Create(ctx, newRoom(t, "ROOM0001", 0, "a"))
		require.NoError(t, err)

		// When: it is replaced by a full room carrying a different id
		update := newRoom(t, "OTHER001", 0, "a", "b")
		update.Board[4] = entity.PlayerX
		update.CurrentTurn = entity.PlayerO
		replaced, err := repo.Replace(ctx, "ROOM0001", update)
		require.NoError(t, err)

		// Then: the whole record is overwritten under the path id
		stored, err := repo.Get(ctx, "ROOM0001")
		require.NoError(t, err)
		assert.Equal(t, "ROOM0001", replaced.ID)
		assert.Equal(t, replaced, stored)
		assert.Len(t, stored.Players, 2)
		assert.Equal(t, entity.PlayerX, stored.Board[4])
		assert.Equal(t, entity.PlayerO, stored.CurrentTurn)

		_, err = repo.Get(ctx, "OTHER001")
		assert.ErrorIs(t, err, apperror.ErrRoomNotFound)
	})

	t.Run("Replace_NotFound", func(t *testing.T) {
		ctx, repo := newRepo(t)

		// When: a missing room is replaced
		_, err := repo.Replace(ctx, "MISSING1", newRoom(t, "MISSING1", 0))

		// Then: ErrRoomNotFound is returned and nothing is created
		require.ErrorIs(t, err, apperror.ErrRoomNotFound)
		_, err = repo.Get(ctx, "MISSING1")
		assert.ErrorIs(t, err, apperror.ErrRoomNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		ctx, repo := newRepo(t)

		// Given: an existing room
		room := newRoom(t, "ROOM0001", 0, "a")
		_, err := repo.Create(ctx, room)
		require.NoError(t, err)

		// When: it is deleted
		deleted, err := repo.Delete(ctx, room.ID)

		// Then: the removed room is returned and is gone from the store
		require.NoError(t, err)
		assert.Equal(t, room, deleted)

		_, err = repo.Get(ctx, room.ID)
		require.ErrorIs(t, err, apperror.ErrRoomNotFound)

		rooms, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, rooms)
	})

	t.Run("Delete_NotFound", func(t *testing.T) {
		ctx, repo := newRepo(t)

		_, err := repo.Delete(ctx, "MISSING1")

		require.ErrorIs(t, err, apperror.ErrRoomNotFound)
	})

	t.Run("List", func(t *testing.T) {
		ctx, repo := newRepo(t)

		// Given: rooms created out of order
		newer := newRoom(t, "ROOM0002", time.Minute)
		older := newRoom(t, "ROOM0001", 0, "a")
		_, err := repo.Create(ctx, newer)
		require.NoError(t, err)
		_, err = repo.Create(ctx, older)
		require.NoError(t, err)

		// When: rooms are listed
		rooms, err := repo.List(ctx)

		// Then: they come back oldest first
		require.NoError(t, err)
		assert.Equal(t, []*entity.Room{older, newer}, rooms)
	})

	t.Run("List_Empty", func(t *testing.T) {
		ctx, repo := newRepo(t)

		rooms, err := repo.List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, rooms)
		assert.Empty(t, rooms)
	})

	t.Run("Returned_Rooms_Are_Copies", func(t *testing.T) {
		ctx, repo := newRepo(t)

		// Given: a stored room
		_, err := repo.Create(ctx, newRoom(t, "ROOM0001", 0, "a"))
		require.NoError(t, err)

		// When: the caller mutates its copy without writing it back
		local, err := repo.Get(ctx, "ROOM0001")
		require.NoError(t, err)
		local.Players[0].Name = "changed"
		local.Board[0] = entity.PlayerO

		// Then: the stored room is unchanged
		stored, err := repo.Get(ctx, "ROOM0001")
		require.NoError(t, err)
		assert.Equal(t, "name-a", stored.Players[0].Name)
		assert.Equal(t, entity.EmptyCell, stored.Board[0])
	})
}
