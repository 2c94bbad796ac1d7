package sqlite

import "testing"

// NewTestDB opens an in-memory database with the schema applied. The
// connection is closed when the test finishes.
func NewTestDB(t testing.TB) *DB {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
