package testutil

import (
	"context"
	"database/sql"
	"resultsdb/internal/db"
	"testing"

	_ "modernc.org/sqlite"
)

// OpenInMemoryDB opens a fresh sqlite database with the results schema.
func OpenInMemoryDB(t testing.TB) *sql.DB {
	sqlite, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// every connection to :memory: is its own database
	sqlite.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlite.Close()
	})

	err = db.Setup(context.Background(), sqlite)
	if err != nil {
		t.Fatal(err)
	}
	return sqlite
}
