package repository

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

// RoomRepository is the Room Store. Writes overwrite the full record and
// there is no concurrency control beyond last-write-wins.
//
// Missing rooms are reported as apperror.ErrRoomNotFound, duplicate creates
// as apperror.ErrRoomExists, and backend failures wrap apperror.ErrTransport.
type RoomRepository interface {
	List(ctx context.Context) ([]*entity.Room, error)
	Get(ctx context.Context, id string) (*entity.Room, error)
	Create(ctx context.Context, room *entity.Room) (*entity.Room, error)
	Replace(ctx context.Context, id string, room *entity.Room) (*entity.Room, error)
	Delete(ctx context.Context, id string) (*entity.Room, error)
}
