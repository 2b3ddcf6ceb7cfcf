package database

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CreatesFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "test.db")

	db, err := New(Config{Path: path, Name: "test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.Equal(t, "test", db.Name())
	assert.NotNil(t, db.Conn())
}

func TestNew_InMemoryURI(t *testing.T) {
	db, err := New(Config{
		Path: "file:dbtest_mem?mode=memory&cache=shared",
		Name: "mem",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE t (id INTEGER PRIMARY KEY)`)
	assert.NoError(t, err)
}

func TestApplySchema_Idempotent(t *testing.T) {
	db, err := New(Config{
		Path: "file:dbtest_schema?mode=memory&cache=shared",
		Name: "schema",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	schema := `CREATE TABLE IF NOT EXISTS t (id INTEGER PRIMARY KEY, v TEXT);`
	require.NoError(t, db.ApplySchema(schema))
	require.NoError(t, db.ApplySchema(schema))
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	db, err := New(Config{
		Path: "file:dbtest_tx?mode=memory&cache=shared",
		Name: "tx",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.ApplySchema(`CREATE TABLE IF NOT EXISTS t (id INTEGER PRIMARY KEY);`))

	err = WithTransaction(db.Conn(), func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO t (id) VALUES (1)`); err != nil {
			return err
		}
		return fmt.Errorf("boom")
	})
	require.Error(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM t`).Scan(&n))
	assert.Zero(t, n, "failed transaction must leave no rows")
}

func TestWithTransaction_Commits(t *testing.T) {
	db, err := New(Config{
		Path: "file:dbtest_tx2?mode=memory&cache=shared",
		Name: "tx2",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.ApplySchema(`CREATE TABLE IF NOT EXISTS t (id INTEGER PRIMARY KEY);`))

	require.NoError(t, WithTransaction(db.Conn(), func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO t (id) VALUES (1)`)
		return err
	}))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM t`).Scan(&n))
	assert.Equal(t, 1, n)
}
