package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

const DefaultStoreTimeout = 2 * time.Second

type roomStore interface {
	List(ctx context.Context) ([]*entity.Room, error)
	Get(ctx context.Context, id string) (*entity.Room, error)
	Create(ctx context.Context, room *entity.Room) (*entity.Room, error)
	Replace(ctx context.Context, id string, room *entity.Room) (*entity.Room, error)
	Delete(ctx context.Context, id string) (*entity.Room, error)
}

// boundedStore puts a deadline on every store call so a stalled backend
// surfaces as ErrTransport instead of blocking the caller.
type boundedStore struct {
	store   roomStore
	timeout time.Duration
}

func newBoundedStore(store roomStore, timeout time.Duration) *boundedStore {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}

	return &boundedStore{
		store:   store,
		timeout: timeout,
	}
}

func (that *boundedStore) List(ctx context.Context) ([]*entity.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, that.timeout)
	defer cancel()

	rooms, err := that.store.List(ctx)
	return rooms, classify(err)
}

func (that *boundedStore) Get(ctx context.Context, id string) (*entity.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, that.timeout)
	defer cancel()

	room, err := that.store.Get(ctx, id)
	return room, classify(err)
}

func (that *boundedStore) Create(ctx context.Context, room *entity.Room) (*entity.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, that.timeout)
	defer cancel()

	created, err := that.store.Create(ctx, room)
	return created, classify(err)
}

func (that *boundedStore) Replace(ctx context.Context, id string, room *entity.Room) (*entity.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, that.timeout)
	defer cancel()

	replaced, err := that.store.Replace(ctx, id, room)
	return replaced, classify(err)
}

func (that *boundedStore) Delete(ctx context.Context, id string) (*entity.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, that.timeout)
	defer cancel()

	deleted, err := that.store.Delete(ctx, id)
	return deleted, classify(err)
}

// classify tags deadline and cancellation errors as transport failures.
// Errors that already belong to a category are returned as is.
func classify(err error) error {
	if err == nil {
		return nil
	}

	for _, kind := range []error{apperror.ErrNotFound, apperror.ErrConflict, apperror.ErrInvalidInput, apperror.ErrTransport} {
		if errors.Is(err, kind) {
			return err
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", apperror.ErrTransport, err)
	}

	return err
}
