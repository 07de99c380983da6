package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// DefaultKVTable is the table used when NewKVStore is given an empty name.
const DefaultKVTable = "kv_entries"

// KVStore is a domain.KVStore implemented with a two-column Postgres table.
type KVStore struct {
	DB    *sql.DB
	table string
}

// Open connects to Postgres with the lib/pq driver and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// NewKVStore returns a KVStore over db using the given table name.
func NewKVStore(db *sql.DB, table string) *KVStore {
	if strings.TrimSpace(table) == "" {
		table = DefaultKVTable
	}
	return &KVStore{DB: db, table: pq.QuoteIdentifier(table)}
}

// EnsureSchema creates the backing table when it does not exist.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+s.table+` (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	if err != nil {
		return fmt.Errorf("create kv table: %w", err)
	}
	return nil
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.DB.QueryRowContext(ctx, `SELECT value FROM `+s.table+` WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *KVStore) Put(ctx context.Context, key, value string) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO `+s.table+` (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	return err
}

// List orders keys byte-wise so every store backend enumerates in the same order.
func (s *KVStore) List(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT key FROM `+s.table+` WHERE starts_with(key, $1) ORDER BY key COLLATE "C"`, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}
