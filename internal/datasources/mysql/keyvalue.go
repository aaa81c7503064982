package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/newspulse/internal/datasources"
)

const keyValuesTable = "key_values"

var _ datasources.KeyValueStore = (*KeyValueStore)(nil)

type KeyValueStore struct {
	db *sql.DB
}

func NewKeyValueStore(db *sql.DB) *KeyValueStore {
	return &KeyValueStore{db: db}
}

func (s *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	sb := sqlbuilder.MySQL.NewSelectBuilder()
	sb.Select("value")
	sb.From(keyValuesTable)
	sb.Where(sb.Equal("name", key))

	query, args := sb.Build()

	var value string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying key [%s]: %w", key, err)
	}

	return value, true, nil
}

func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	ib := sqlbuilder.MySQL.NewInsertBuilder()
	ib.InsertInto(keyValuesTable)
	ib.Cols("name", "value", "date_updated")
	ib.Values(key, value, time.Now().UTC())
	ib.SQL("ON DUPLICATE KEY UPDATE value = VALUES(value), date_updated = VALUES(date_updated)")

	query, args := ib.Build()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting key [%s]: %w", key, err)
	}

	return nil
}
