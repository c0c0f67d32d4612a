package slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createSlotsTable = `CREATE TABLE IF NOT EXISTS kv_slots (
	key        text        PRIMARY KEY,
	value      jsonb       NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
)`

// PostgresSlot stores each blob as one row of the kv_slots table.
type PostgresSlot struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to dsn and makes sure the kv_slots table exists.
// Close the returned slot to release the pool.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresSlot, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := pool.Exec(ctx, createSlotsTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating kv_slots table: %w", err)
	}

	return &PostgresSlot{pool: pool}, nil
}

func (s *PostgresSlot) Read(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT value::text FROM kv_slots WHERE key = $1`, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *PostgresSlot) Write(ctx context.Context, key string, data []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO kv_slots (key, value, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, string(data))
	return err
}

func (s *PostgresSlot) Remove(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM kv_slots WHERE key = $1`, key)
	return err
}

// Close releases the connection pool.
func (s *PostgresSlot) Close() {
	s.pool.Close()
}
