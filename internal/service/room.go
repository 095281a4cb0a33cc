package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/pkg"
)

const createAttempts = 5

type RoomService interface {
	CreateRoom(ctx context.Context) (string, error)
	JoinRoom(ctx context.Context, roomID, playerID, name string) (*entity.View, error)
	GetRoomView(ctx context.Context, roomID string) (*entity.View, error)
	PlayerSymbol(ctx context.Context, roomID, playerID string) (entity.Symbol, error)
	ListRooms(ctx context.Context) ([]*entity.View, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type roomService struct {
	logger *slog.Logger
	store  roomStore

	newCode func() (string, error)
	now     func() time.Time
}

func NewRoomService(logger *slog.Logger, store roomStore, storeTimeout time.Duration) RoomService {
	return &roomService{
		logger: logger.With("component", "room-service"),
		store:  newBoundedStore(store, storeTimeout),

		newCode: pkg.GenerateRoomCode,
		now:     time.Now,
	}
}

// CreateRoom writes an empty room under a fresh code. The code is returned
// even if the write fails: the outcome of a failed write is unknown, so the
// caller gets the chance to look the room up before giving up on it.
func (that *roomService) CreateRoom(ctx context.Context) (string, error) {
	log := that.logger.With("method", "CreateRoom")

	var roomID string
	for attempt := 1; attempt <= createAttempts; attempt++ {
		code, err := that.newCode()
		if err != nil {
			return "", fmt.Errorf("failed to generate room code: %w", err)
		}
		roomID = code

		_, err = that.store.Create(ctx, entity.NewRoom(roomID, that.now()))
		if err == nil {
			log.Info("room created", "room_id", roomID)
			return roomID, nil
		}

		if errors.Is(err, apperror.ErrRoomExists) {
			log.Debug("room code collision", "room_id", roomID, "attempt", attempt)
			continue
		}

		log.Error("failed to store new room", "room_id", roomID, "error", err)
		return roomID, fmt.Errorf("failed to create room %s: %w", roomID, err)
	}

	return roomID, fmt.Errorf("failed to create room after %d attempts: %w", createAttempts, apperror.ErrRoomExists)
}

// JoinRoom seats the player in the first free slot. Joining a room the
// player is already in changes nothing.
func (that *roomService) JoinRoom(ctx context.Context, roomID, playerID, name string) (*entity.View, error) {
	log := that.logger.With("method", "JoinRoom")

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, apperror.ErrInvalidPlayer
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = pkg.GeneratePlayerName()
	}

	room, err := that.getRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if room.HasPlayer(playerID) {
		return room.View(), nil
	}

	if err = room.AddPlayer(playerID, name); err != nil {
		return nil, fmt.Errorf("failed to join room %s: %w", room.ID, err)
	}

	if _, err = that.store.Replace(ctx, room.ID, room); err != nil {
		log.Error("failed to save joined player", "room_id", room.ID, "player_id", playerID, "error", err)
		return nil, fmt.Errorf("failed to save room %s: %w", room.ID, err)
	}

	log.Info("player joined", "room_id", room.ID, "player_id", playerID, "players", len(room.Players))

	return room.View(), nil
}

func (that *roomService) GetRoomView(ctx context.Context, roomID string) (*entity.View, error) {
	room, err := that.getRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	return room.View(), nil
}

// PlayerSymbol reports the mark the player holds in the room. Clients use it
// to confirm that a join actually landed.
func (that *roomService) PlayerSymbol(ctx context.Context, roomID, playerID string) (entity.Symbol, error) {
	room, err := that.getRoom(ctx, roomID)
	if err != nil {
		return entity.EmptyCell, err
	}

	player, ok := room.Player(playerID)
	if !ok {
		return entity.EmptyCell, apperror.ErrPlayerNotInRoom
	}

	return player.Symbol, nil
}

func (that *roomService) ListRooms(ctx context.Context) ([]*entity.View, error) {
	rooms, err := that.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	views := make([]*entity.View, 0, len(rooms))
	for _, room := range rooms {
		views = append(views, room.View())
	}

	return views, nil
}

// DeleteRoom removes the room. A room that is already gone is not an error.
func (that *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	roomID = pkg.NormalizeRoomID(roomID)

	if _, err := that.store.Delete(ctx, roomID); err != nil {
		if errors.Is(err, apperror.ErrRoomNotFound) {
			return nil
		}

		that.logger.Error("failed to delete room", "method", "DeleteRoom", "room_id", roomID, "error", err)
		return fmt.Errorf("failed to delete room %s: %w", roomID, err)
	}

	that.logger.Info("room deleted", "room_id", roomID)

	return nil
}

func (that *roomService) getRoom(ctx context.Context, roomID string) (*entity.Room, error) {
	roomID = pkg.NormalizeRoomID(roomID)
	if roomID == "" {
		return nil, apperror.ErrRoomNotFound
	}

	room, err := that.store.Get(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room %s: %w", roomID, err)
	}

	return room, nil
}
