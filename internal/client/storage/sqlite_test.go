package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return NewSQLiteStore(db)
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "token", []byte("abc")))

	v, err := s.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), v)
}

func TestGet_NotExists_ReturnsNilNil(t *testing.T) {
	s := setupStore(t)

	v, err := s.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("old")))
	require.NoError(t, s.Set(ctx, "k", []byte("new")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestSetMany_WritesAllPairs(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetMany(ctx, map[string][]byte{
		"token": []byte("t"),
		"user":  []byte(`{"name":"A"}`),
	}))

	v, err := s.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("t"), v)

	v, err = s.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"name":"A"}`), v)
}

func TestClear_RemovesEverything_AndIsIdempotent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "token", []byte("t")))
	require.NoError(t, s.Set(ctx, "user", []byte("u")))

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	for _, k := range []string{"token", "user"} {
		v, err := s.Get(ctx, k)
		require.NoError(t, err)
		assert.Nil(t, v)
	}
}

func TestOpen_AppliesMigrations(t *testing.T) {
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Set(context.Background(), "token", []byte("t")))
	v, err := s.Get(context.Background(), "token")
	require.NoError(t, err)
	require.Equal(t, []byte("t"), v)
}
