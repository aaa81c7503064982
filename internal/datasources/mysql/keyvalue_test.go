package mysql

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}

	db, err := Connect(context.Background(), os.Getenv("MYSQL_URI"))
	if err != nil {
		t.Fatal(err)
	}

	require.NoError(t, Migrate(context.Background(), db))

	_, err = db.ExecContext(context.Background(),
		"INSERT INTO key_values (name, value, date_updated) VALUES (?, ?, NOW())",
		"bookmarks", `["6a429bf5788aa30893172643f892fb74"]`)
	require.NoError(t, err)

	return db
}

func teardownTestDB(t *testing.T, db *sql.DB) {
	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}

	_, err := db.ExecContext(context.Background(), "DELETE FROM key_values")
	require.NoError(t, err)

	err = db.Close()
	require.NoError(t, err)
}

func TestKeyValueStore_Get(t *testing.T) {
	cases := []struct {
		name      string
		key       string
		wantValue string
		wantFound bool
	}{
		{
			name:      "existing_key",
			key:       "bookmarks",
			wantValue: `["6a429bf5788aa30893172643f892fb74"]`,
			wantFound: true,
		},
		{
			name:      "missing_key",
			key:       "does-not-exist",
			wantFound: false,
		},
	}

	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sut := NewKeyValueStore(db)

			value, found, err := sut.Get(t.Context(), c.key)
			require.NoError(t, err)
			assert.Equal(t, c.wantFound, found)
			assert.Equal(t, c.wantValue, value)
		})
	}
}

func TestKeyValueStore_Set(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	sut := NewKeyValueStore(db)
	ctx := t.Context()

	require.NoError(t, sut.Set(ctx, "bookmarks", `["a","b"]`))
	require.NoError(t, sut.Set(ctx, "fresh", `[]`))

	value, found, err := sut.Get(ctx, "bookmarks")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `["a","b"]`, value)

	value, found, err = sut.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, value)
}
