package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/pkg"
)

var ErrNotJoined = errors.New("session has not joined a room")

type roomService interface {
	CreateRoom(ctx context.Context) (string, error)
	JoinRoom(ctx context.Context, roomID, playerID, name string) (*entity.View, error)
	GetRoomView(ctx context.Context, roomID string) (*entity.View, error)
	PlayerSymbol(ctx context.Context, roomID, playerID string) (entity.Symbol, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type gameService interface {
	MakeMove(ctx context.Context, roomID, playerID string, cell int) (*entity.View, error)
	ResetGame(ctx context.Context, roomID string) (*entity.View, error)
}

type Options struct {
	// JoinRetries is how many extra join attempts are made when the join
	// does not show up in the store.
	JoinRetries int
	// JoinVerifyDelay is the pause before a join is checked, and between
	// creating a room and joining it.
	JoinVerifyDelay time.Duration
}

// Session is one player's view of the game. The store is shared with the
// opponent and has no locking, so every write the session makes is checked
// with a follow-up read.
type Session struct {
	logger *slog.Logger
	rooms  roomService
	games  gameService
	opts   Options

	playerID string
	name     string

	roomID string
	symbol entity.Symbol
}

func NewSession(logger *slog.Logger, rooms roomService, games gameService, playerID, name string, opts Options) *Session {
	if playerID == "" {
		playerID = pkg.GeneratePlayerID()
	}

	if name == "" {
		name = pkg.GeneratePlayerName()
	}

	return &Session{
		logger: logger.With("component", "session", "player_id", playerID),
		rooms:  rooms,
		games:  games,
		opts:   opts,

		playerID: playerID,
		name:     name,
	}
}

func (that *Session) PlayerID() string {
	return that.playerID
}

func (that *Session) Name() string {
	return that.name
}

func (that *Session) RoomID() string {
	return that.roomID
}

func (that *Session) Symbol() entity.Symbol {
	return that.symbol
}

// IsMyTurn reports whether the view waits for this session's move.
func (that *Session) IsMyTurn(view *entity.View) bool {
	return that.symbol != entity.EmptyCell && view.IsFull && !view.IsFinished() && view.CurrentTurn == that.symbol
}

// CreateAndJoin creates a room and takes the first seat in it.
func (that *Session) CreateAndJoin(ctx context.Context) (*entity.View, error) {
	roomID, err := that.rooms.CreateRoom(ctx)
	if err != nil {
		if roomID == "" {
			return nil, fmt.Errorf("failed to create room: %w", err)
		}

		// the write may still have landed
		if _, viewErr := that.rooms.GetRoomView(ctx, roomID); viewErr != nil {
			return nil, fmt.Errorf("failed to create room %s: %w", roomID, err)
		}

		that.logger.Warn("room create reported an error but the room exists", "room_id", roomID, "error", err)
	}

	if err = sleep(ctx, that.opts.JoinVerifyDelay); err != nil {
		return nil, err
	}

	return that.Join(ctx, roomID)
}

// Join seats the player and confirms the seat with a separate read. Two
// joins racing on the same room can overwrite each other, so a join that
// does not show up is retried.
func (that *Session) Join(ctx context.Context, roomID string) (*entity.View, error) {
	log := that.logger.With("method", "Join")
	roomID = pkg.NormalizeRoomID(roomID)

	var lastErr error
	for attempt := 0; attempt <= that.opts.JoinRetries; attempt++ {
		if _, err := that.rooms.JoinRoom(ctx, roomID, that.playerID, that.name); err != nil {
			if !errors.Is(err, apperror.ErrTransport) {
				return nil, fmt.Errorf("failed to join room %s: %w", roomID, err)
			}
			log.Warn("join outcome unknown", "room_id", roomID, "attempt", attempt, "error", err)
		}

		if err := sleep(ctx, that.opts.JoinVerifyDelay); err != nil {
			return nil, err
		}

		symbol, err := that.rooms.PlayerSymbol(ctx, roomID, that.playerID)
		if err == nil {
			that.roomID = roomID
			that.symbol = symbol
			log.Info("joined room", "room_id", roomID, "symbol", symbol)

			return that.Refresh(ctx)
		}

		if !errors.Is(err, apperror.ErrPlayerNotInRoom) && !errors.Is(err, apperror.ErrTransport) {
			return nil, fmt.Errorf("failed to verify join of room %s: %w", roomID, err)
		}

		log.Warn("join not confirmed, retrying", "room_id", roomID, "attempt", attempt, "error", err)
		lastErr = err
	}

	return nil, fmt.Errorf("failed to join room %s after %d attempts: %w", roomID, that.opts.JoinRetries+1, lastErr)
}

// Resume restores a seat taken earlier with the same player id. It only
// reads: a caller without a seat gets ErrPlayerNotInRoom and the room is
// left as it was.
func (that *Session) Resume(ctx context.Context, roomID string) (*entity.View, error) {
	roomID = pkg.NormalizeRoomID(roomID)

	symbol, err := that.rooms.PlayerSymbol(ctx, roomID, that.playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resume room %s: %w", roomID, err)
	}

	that.roomID = roomID
	that.symbol = symbol

	return that.Refresh(ctx)
}

// Refresh fetches the current view of the joined room.
func (that *Session) Refresh(ctx context.Context) (*entity.View, error) {
	if that.roomID == "" {
		return nil, ErrNotJoined
	}

	view, err := that.rooms.GetRoomView(ctx, that.roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh room %s: %w", that.roomID, err)
	}

	return view, nil
}

// Move places the session's mark. When the write fails in transit the room
// is read back: the move counts as made only if the cell was free before the
// call and now holds the mark.
func (that *Session) Move(ctx context.Context, cell int) (*entity.View, error) {
	if that.roomID == "" {
		return nil, ErrNotJoined
	}

	cellWasFree := false
	if before, err := that.Refresh(ctx); err == nil && cell >= 0 && cell < entity.BoardSize {
		cellWasFree = before.Board[cell] == entity.EmptyCell
	}

	view, err := that.games.MakeMove(ctx, that.roomID, that.playerID, cell)
	if err == nil {
		return view, nil
	}

	if !errors.Is(err, apperror.ErrTransport) || !cellWasFree {
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	current, refreshErr := that.Refresh(ctx)
	if refreshErr == nil && current.Board[cell] == that.symbol {
		that.logger.Warn("move reported an error but landed", "room_id", that.roomID, "cell", cell, "error", err)
		return current, nil
	}

	return nil, fmt.Errorf("failed to make move: %w", err)
}

func (that *Session) Reset(ctx context.Context) (*entity.View, error) {
	if that.roomID == "" {
		return nil, ErrNotJoined
	}

	view, err := that.games.ResetGame(ctx, that.roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to reset game: %w", err)
	}

	return view, nil
}

// Close deletes the room and forgets it.
func (that *Session) Close(ctx context.Context) error {
	if that.roomID == "" {
		return nil
	}

	if err := that.rooms.DeleteRoom(ctx, that.roomID); err != nil {
		return fmt.Errorf("failed to delete room %s: %w", that.roomID, err)
	}

	that.roomID = ""
	that.symbol = entity.EmptyCell

	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
