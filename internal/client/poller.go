package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

const DefaultPollInterval = 500 * time.Millisecond

type viewReader interface {
	GetRoomView(ctx context.Context, roomID string) (*entity.View, error)
}

// StopCondition ends polling when it returns true for a snapshot.
type StopCondition func(view *entity.View) bool

func UntilFull(view *entity.View) bool {
	return view.IsFull
}

func UntilFinished(view *entity.View) bool {
	return view.IsFinished()
}

// UntilTurnOf stops once it is the given mark's turn or the game is over.
func UntilTurnOf(symbol entity.Symbol) StopCondition {
	return func(view *entity.View) bool {
		return view.IsFinished() || (view.IsFull && view.CurrentTurn == symbol)
	}
}

// Poller re-reads a room on a fixed interval. There is no push channel:
// this is how a client learns about the opponent's moves.
type Poller struct {
	logger   *slog.Logger
	rooms    viewReader
	interval time.Duration
}

func NewPoller(logger *slog.Logger, rooms viewReader, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &Poller{
		logger:   logger.With("component", "poller"),
		rooms:    rooms,
		interval: interval,
	}
}

// Poll reads the room right away and then every interval, passing each
// snapshot to onUpdate. It returns the snapshot that satisfied stop, the
// context error on cancellation, or ErrRoomNotFound once the room is gone.
// Transport failures are logged and the next tick tries again.
func (that *Poller) Poll(ctx context.Context, roomID string, stop StopCondition, onUpdate func(view *entity.View)) (*entity.View, error) {
	ticker := time.NewTicker(that.interval)
	defer ticker.Stop()

	for {
		view, err := that.rooms.GetRoomView(ctx, roomID)
		switch {
		case err == nil:
			if onUpdate != nil {
				onUpdate(view)
			}
			if stop != nil && stop(view) {
				return view, nil
			}
		case errors.Is(err, apperror.ErrNotFound):
			return nil, fmt.Errorf("failed to poll room %s: %w", roomID, err)
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			that.logger.Warn("poll failed", "room_id", roomID, "error", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
