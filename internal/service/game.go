package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/pkg"
)

type GameService interface {
	MakeMove(ctx context.Context, roomID, playerID string, cell int) (*entity.View, error)
	ResetGame(ctx context.Context, roomID string) (*entity.View, error)
}

type gameService struct {
	logger *slog.Logger
	store  roomStore
}

func NewGameService(logger *slog.Logger, store roomStore, storeTimeout time.Duration) GameService {
	return &gameService{
		logger: logger.With("component", "game-service"),
		store:  newBoundedStore(store, storeTimeout),
	}
}

// MakeMove applies the player's move to a freshly fetched copy of the room
// and writes it back. A rejected move never reaches the store.
func (that *gameService) MakeMove(ctx context.Context, roomID, playerID string, cell int) (*entity.View, error) {
	log := that.logger.With("method", "MakeMove")

	room, err := that.getRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if err = room.MakeTurn(playerID, cell); err != nil {
		log.Debug("move rejected", "room_id", room.ID, "player_id", playerID, "cell", cell, "error", err)
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	if _, err = that.store.Replace(ctx, room.ID, room); err != nil {
		log.Error("failed to save move", "room_id", room.ID, "player_id", playerID, "cell", cell, "error", err)
		return nil, fmt.Errorf("failed to save room %s: %w", room.ID, err)
	}

	if room.IsFinished() {
		log.Info("game finished", "room_id", room.ID, "winner", room.Winner)
	}

	return room.View(), nil
}

// ResetGame clears the board for a rematch. Players keep their seats and marks.
func (that *gameService) ResetGame(ctx context.Context, roomID string) (*entity.View, error) {
	room, err := that.getRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	room.Reset()

	if _, err = that.store.Replace(ctx, room.ID, room); err != nil {
		that.logger.Error("failed to save reset", "method", "ResetGame", "room_id", room.ID, "error", err)
		return nil, fmt.Errorf("failed to save room %s: %w", room.ID, err)
	}

	that.logger.Info("game reset", "room_id", room.ID)

	return room.View(), nil
}

func (that *gameService) getRoom(ctx context.Context, roomID string) (*entity.Room, error) {
	roomID = pkg.NormalizeRoomID(roomID)

	room, err := that.store.Get(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room %s: %w", roomID, err)
	}

	return room, nil
}
