package storage

import (
	"context"
	"database/sql"
	"fmt"

	// register the "postgres" driver with database/sql.
	_ "github.com/lib/pq"
)

type PostgresStorage struct {
	Connection *sql.DB
}

func NewPostgresStorage(ctx context.Context, dsn string, maxConns int) (*PostgresStorage, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if maxConns > 0 {
		conn.SetMaxOpenConns(maxConns)
		conn.SetMaxIdleConns(maxConns)
	}

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &PostgresStorage{Connection: conn}, nil
}

func (that *PostgresStorage) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS rooms (
		id         TEXT PRIMARY KEY,
		payload    JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`

	if _, err := that.Connection.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *PostgresStorage) Close() error {
	return that.Connection.Close()
}
