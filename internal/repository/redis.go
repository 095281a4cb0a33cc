package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

const (
	roomKeyPrefix = "room:"
	roomIndexKey  = "rooms"
)

type redisRoom struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRoomRepository stores every room as JSON under room:<id> and keeps
// the set of ids under "rooms" for listing. A zero ttl keeps rooms forever;
// otherwise every write refreshes the expiry.
func NewRedisRoomRepository(client *redis.Client, ttl time.Duration) RoomRepository {
	return &redisRoom{
		client: client,
		ttl:    ttl,
	}
}

func roomKey(id string) string {
	return roomKeyPrefix + id
}

func (that *redisRoom) List(ctx context.Context) ([]*entity.Room, error) {
	ids, err := that.client.SMembers(ctx, roomIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list room ids: %w: %w", apperror.ErrTransport, err)
	}

	rooms := make([]*entity.Room, 0, len(ids))
	if len(ids) == 0 {
		return rooms, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, roomKey(id))
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %w: %w", apperror.ErrTransport, err)
	}

	var expired []any
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			expired = append(expired, ids[i])
			continue
		}

		var room entity.Room
		if err = json.Unmarshal([]byte(raw), &room); err != nil {
			return nil, fmt.Errorf("failed to unmarshal room %s: %w", ids[i], err)
		}
		rooms = append(rooms, &room)
	}

	// rooms that expired through the ttl still sit in the index
	if len(expired) > 0 {
		_ = that.client.SRem(ctx, roomIndexKey, expired...).Err()
	}

	sortRooms(rooms)

	return rooms, nil
}

func (that *redisRoom) Get(ctx context.Context, id string) (*entity.Room, error) {
	response, err := that.client.Get(ctx, roomKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrRoomNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get room by id: %w: %w", apperror.ErrTransport, err)
	}

	var room entity.Room
	if err = json.Unmarshal(response, &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}

func (that *redisRoom) Create(ctx context.Context, room *entity.Room) (*entity.Room, error) {
	roomJSON, err := json.Marshal(room)
	if err != nil {
		return nil, fmt.Errorf("could not marshal room: %w", err)
	}

	var created *redis.BoolCmd
	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		created = pipe.SetNX(ctx, roomKey(room.ID), roomJSON, that.ttl)
		pipe.SAdd(ctx, roomIndexKey, room.ID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create room: %w: %w", apperror.ErrTransport, err)
	}

	if !created.Val() {
		return nil, apperror.ErrRoomExists
	}

	return room.Clone(), nil
}

func (that *redisRoom) Replace(ctx context.Context, id string, room *entity.Room) (*entity.Room, error) {
	stored := room.Clone()
	stored.ID = id

	roomJSON, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("could not marshal room: %w", err)
	}

	replaced, err := that.client.SetXX(ctx, roomKey(id), roomJSON, that.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to replace room: %w: %w", apperror.ErrTransport, err)
	}

	if !replaced {
		return nil, apperror.ErrRoomNotFound
	}

	return stored, nil
}

func (that *redisRoom) Delete(ctx context.Context, id string) (*entity.Room, error) {
	var deleted *redis.StringCmd
	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.GetDel(ctx, roomKey(id))
		pipe.SRem(ctx, roomIndexKey, id)
		return nil
	})

	// a missing key surfaces as redis.Nil from the pipeline too
	if deleted != nil && errors.Is(deleted.Err(), redis.Nil) {
		return nil, apperror.ErrRoomNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to delete room by id: %w: %w", apperror.ErrTransport, err)
	}

	response, err := deleted.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to read deleted room: %w", err)
	}

	var room entity.Room
	if err = json.Unmarshal(response, &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}
