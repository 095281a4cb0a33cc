package repository

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

type memoryRoom struct {
	mu    sync.RWMutex
	rooms map[string]*entity.Room
}

// NewMemoryRoomRepository keeps rooms in process memory. Rooms are copied on
// the way in and out so callers never share state with the store.
func NewMemoryRoomRepository() RoomRepository {
	return &memoryRoom{
		rooms: make(map[string]*entity.Room),
	}
}

func (that *memoryRoom) List(_ context.Context) ([]*entity.Room, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	rooms := make([]*entity.Room, 0, len(that.rooms))
	for _, room := range that.rooms {
		rooms = append(rooms, room.Clone())
	}

	sortRooms(rooms)

	return rooms, nil
}

func (that *memoryRoom) Get(_ context.Context, id string) (*entity.Room, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	room, ok := that.rooms[id]
	if !ok {
		return nil, apperror.ErrRoomNotFound
	}

	return room.Clone(), nil
}

func (that *memoryRoom) Create(_ context.Context, room *entity.Room) (*entity.Room, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.rooms[room.ID]; ok {
		return nil, apperror.ErrRoomExists
	}

	that.rooms[room.ID] = room.Clone()

	return room.Clone(), nil
}

func (that *memoryRoom) Replace(_ context.Context, id string, room *entity.Room) (*entity.Room, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.rooms[id]; !ok {
		return nil, apperror.ErrRoomNotFound
	}

	stored := room.Clone()
	stored.ID = id
	that.rooms[id] = stored

	return stored.Clone(), nil
}

func (that *memoryRoom) Delete(_ context.Context, id string) (*entity.Room, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	room, ok := that.rooms[id]
	if !ok {
		return nil, apperror.ErrRoomNotFound
	}

	delete(that.rooms, id)

	return room, nil
}

// sortRooms orders rooms oldest first.
func sortRooms(rooms []*entity.Room) {
	slices.SortFunc(rooms, func(a, b *entity.Room) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), strings.Compare(a.ID, b.ID))
	})
}
