package rest

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/repository"
)

func storedRoom(t *testing.T, store repository.RoomRepository, id string, players ...string) *entity.Room {
	t.Helper()

	room := entity.NewRoom(id, createdAt)
	for _, player := range players {
		require.NoError(t, room.AddPlayer(player, "name-"+player))
	}

	_, err := store.Create(context.Background(), room)
	require.NoError(t, err)

	return room
}

func TestStoreHandlers_Create(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		// Given: an empty store
		store := repository.NewMemoryRoomRepository()
		router := newTestRouter(t, store)

		// When: a room is posted
		rec := doRequest(t, router, http.MethodPost, "/rooms", entity.NewRoom("ROOM0001", createdAt))

		// Then: it is stored and echoed back with 201
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "ROOM0001", decode[entity.Room](t, rec).ID)

		_, err := store.Get(context.Background(), "ROOM0001")
		assert.NoError(t, err)
	})

	t.Run("Missing createdAt is filled in", func(t *testing.T) {
		router := newTestRouter(t, repository.NewMemoryRoomRepository())

		rec := doRequest(t, router, http.MethodPost, "/rooms", `{"id":"ROOM0001","currentTurn":"X"}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		room := decode[entity.Room](t, rec)
		assert.False(t, room.CreatedAt.IsZero())
		assert.NotNil(t, room.Players)
	})

	t.Run("Duplicate id", func(t *testing.T) {
		store := repository.NewMemoryRoomRepository()
		storedRoom(t, store, "ROOM0001")
		router := newTestRouter(t, store)

		rec := doRequest(t, router, http.MethodPost, "/rooms", entity.NewRoom("ROOM0001", createdAt))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "room already exists", decode[errorResponse](t, rec).Error)
	})

	t.Run("Malformed body", func(t *testing.T) {
		router := newTestRouter(t, repository.NewMemoryRoomRepository())

		rec := doRequest(t, router, http.MethodPost, "/rooms", `{"id":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Invalid room", func(t *testing.T) {
		router := newTestRouter(t, repository.NewMemoryRoomRepository())

		rec := doRequest(t, router, http.MethodPost, "/rooms", `{"id":"ROOM0001","currentTurn":"Z"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Board with the wrong number of cells", func(t *testing.T) {
		boards := map[string]string{
			"eleven cells": `["X", null, null, null, null, null, null, null, null, "O", "O"]`,
			"one cell":     `["X"]`,
		}

		for name, board := range boards {
			t.Run(name, func(t *testing.T) {
				// Given: an empty store
				store := repository.NewMemoryRoomRepository()
				router := newTestRouter(t, store)

				// When: a room with a malformed board is posted
				rec := doRequest(t, router, http.MethodPost, "/rooms", `{"id":"ROOM0001","currentTurn":"X","board":`+board+`}`)

				// Then: it is rejected and nothing is stored
				assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
				assert.Contains(t, decode[errorResponse](t, rec).Error, "invalid room")

				_, err := store.Get(context.Background(), "ROOM0001")
				assert.ErrorIs(t, err, apperror.ErrRoomNotFound)
			})
		}
	})

	t.Run("Backend failure", func(t *testing.T) {
		router := newTestRouter(t, brokenStore{})

		rec := doRequest(t, router, http.MethodPost, "/rooms", entity.NewRoom("ROOM0001", createdAt))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestStoreHandlers_Get(t *testing.T) {
	store := repository.NewMemoryRoomRepository()
	room := storedRoom(t, store, "ROOM0001", "a")
	router := newTestRouter(t, store)

	t.Run("Found", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/rooms/ROOM0001", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, *room, decode[entity.Room](t, rec))
	})

	t.Run("Not found", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/rooms/MISSING1", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "room not found", decode[errorResponse](t, rec).Error)
	})

	t.Run("Empty cells are null", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/rooms/ROOM0001", nil)

		assert.Contains(t, rec.Body.String(), `"board":[null,null,null,null,null,null,null,null,null]`)
		assert.Contains(t, rec.Body.String(), `"winner":null`)
	})
}

func TestStoreHandlers_Replace(t *testing.T) {
	t.Run("Overwrites under the path id", func(t *testing.T) {
		// Given: a stored room
		store := repository.NewMemoryRoomRepository()
		storedRoom(t, store, "ROOM0001")
		router := newTestRouter(t, store)

		// When: a body with a different id is put
		update := entity.NewRoom("OTHER001", createdAt)
		update.Board[4] = entity.PlayerX
		rec := doRequest(t, router, http.MethodPut, "/rooms/ROOM0001", update)

		// Then: the path id wins
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		stored, err := store.Get(context.Background(), "ROOM0001")
		require.NoError(t, err)
		assert.Equal(t, "ROOM0001", stored.ID)
		assert.Equal(t, entity.PlayerX, stored.Board[4])

		_, err = store.Get(context.Background(), "OTHER001")
		assert.Error(t, err)
	})

	t.Run("Short board keeps the stored room", func(t *testing.T) {
		// Given: a stored room with a mark
		store := repository.NewMemoryRoomRepository()
		room := storedRoom(t, store, "ROOM0001", "a", "b")
		require.NoError(t, room.MakeTurn("a", 4))
		_, err := store.Replace(context.Background(), "ROOM0001", room)
		require.NoError(t, err)
		router := newTestRouter(t, store)

		// When: a one-cell board is put
		rec := doRequest(t, router, http.MethodPut, "/rooms/ROOM0001", `{"id":"ROOM0001","currentTurn":"O","board":["X"]}`)

		// Then: it is rejected and the stored board is unchanged
		assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

		stored, err := store.Get(context.Background(), "ROOM0001")
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, stored.Board[4])
		assert.Len(t, stored.Players, 2)
	})

	t.Run("Not found", func(t *testing.T) {
		router := newTestRouter(t, repository.NewMemoryRoomRepository())

		rec := doRequest(t, router, http.MethodPut, "/rooms/MISSING1", entity.NewRoom("MISSING1", createdAt))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStoreHandlers_DeleteAndList(t *testing.T) {
	// Given: two stored rooms
	store := repository.NewMemoryRoomRepository()
	storedRoom(t, store, "ROOM0001")
	storedRoom(t, store, "ROOM0002")
	router := newTestRouter(t, store)

	// When: one is deleted
	rec := doRequest(t, router, http.MethodDelete, "/rooms/ROOM0001", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ROOM0001", decode[entity.Room](t, rec).ID)

	// Then: only the other one is listed
	rec = doRequest(t, router, http.MethodGet, "/rooms", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rooms := decode[[]entity.Room](t, rec)
	require.Len(t, rooms, 1)
	assert.Equal(t, "ROOM0002", rooms[0].ID)

	// And: deleting again is a 404
	rec = doRequest(t, router, http.MethodDelete, "/rooms/ROOM0001", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStoreHandlers_ListEmpty(t *testing.T) {
	router := newTestRouter(t, repository.NewMemoryRoomRepository())

	rec := doRequest(t, router, http.MethodGet, "/rooms", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
