package sqlite

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestMigrate_AppliesEveryStatement(t *testing.T) {
	db := openMemoryDB(t)

	require.NoError(t, Migrate(db))

	rows, err := db.Query(`SELECT version FROM darwin_migrations ORDER BY version`)
	require.NoError(t, err)
	defer rows.Close()

	var versions []float64
	for rows.Next() {
		var v float64
		require.NoError(t, rows.Scan(&v))
		versions = append(versions, v)
	}
	require.NoError(t, rows.Err())

	// 000001 holds the table and its index, 000002 a single table
	assert.Equal(t, []float64{1.0, 1.00001, 2.0}, versions)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openMemoryDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db), "second run should be a no-op")

	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('reminders', 'user_timezones')`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	err = db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = 'idx_reminders_user'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
