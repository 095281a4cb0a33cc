package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

type postgresRoom struct {
	conn *sql.DB
}

// NewPostgresRoomRepository keeps each room as a JSONB document in the rooms
// table created by storage.PostgresStorage.Init.
func NewPostgresRoomRepository(conn *sql.DB) RoomRepository {
	return &postgresRoom{
		conn: conn,
	}
}

func (that *postgresRoom) List(ctx context.Context) ([]*entity.Room, error) {
	query := `SELECT payload FROM rooms ORDER BY created_at, id`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't list rooms: %w: %w", apperror.ErrTransport, err)
	}
	defer rows.Close()

	rooms := make([]*entity.Room, 0)
	for rows.Next() {
		var payload []byte
		if err = rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("can't scan room: %w", err)
		}

		room, err := decodeRoom(payload)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't list rooms: %w: %w", apperror.ErrTransport, err)
	}

	return rooms, nil
}

func (that *postgresRoom) Get(ctx context.Context, id string) (*entity.Room, error) {
	query := `SELECT payload FROM rooms WHERE id = $1`

	var payload []byte

	err := that.conn.QueryRowContext(ctx, query, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find room: %w: %w", apperror.ErrTransport, err)
	}

	return decodeRoom(payload)
}

func (that *postgresRoom) Create(ctx context.Context, room *entity.Room) (*entity.Room, error) {
	// lib/pq sends []byte as bytea, so the document goes out as text
	query := `INSERT INTO rooms (id, payload, created_at) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`

	payload, err := json.Marshal(room)
	if err != nil {
		return nil, fmt.Errorf("could not marshal room: %w", err)
	}

	result, err := that.conn.ExecContext(ctx, query, room.ID, string(payload), room.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("can't save room: %w: %w", apperror.ErrTransport, err)
	}

	if err = expectOneRow(result, apperror.ErrRoomExists); err != nil {
		return nil, err
	}

	return room.Clone(), nil
}

func (that *postgresRoom) Replace(ctx context.Context, id string, room *entity.Room) (*entity.Room, error) {
	query := `UPDATE rooms SET payload = $2 WHERE id = $1`

	stored := room.Clone()
	stored.ID = id

	payload, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("could not marshal room: %w", err)
	}

	result, err := that.conn.ExecContext(ctx, query, id, string(payload))
	if err != nil {
		return nil, fmt.Errorf("can't update room: %w: %w", apperror.ErrTransport, err)
	}

	if err = expectOneRow(result, apperror.ErrRoomNotFound); err != nil {
		return nil, err
	}

	return stored, nil
}

func (that *postgresRoom) Delete(ctx context.Context, id string) (*entity.Room, error) {
	query := `DELETE FROM rooms WHERE id = $1 RETURNING payload`

	var payload []byte

	err := that.conn.QueryRowContext(ctx, query, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't delete room: %w: %w", apperror.ErrTransport, err)
	}

	return decodeRoom(payload)
}

func expectOneRow(result sql.Result, errNone error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't read affected rows: %w: %w", apperror.ErrTransport, err)
	}

	if affected == 0 {
		return errNone
	}

	return nil
}

func decodeRoom(payload []byte) (*entity.Room, error) {
	var room entity.Room
	if err := json.Unmarshal(payload, &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}
