package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/buildcorp/buildpro/internal/store"
)

// CollectionStore implements store.Store over a single SQLite document
// table, one row per record.
type CollectionStore struct {
	db *DB
}

// NewCollectionStore creates a new CollectionStore
func NewCollectionStore(db *DB) *CollectionStore {
	return &CollectionStore{db: db}
}

// GetAll returns every record in the collection, newest insertion first.
func (s *CollectionStore) GetAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	query := `
		SELECT data
		FROM records
		WHERE collection = ?
		ORDER BY rowid DESC
	`

	rows, err := s.db.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, json.RawMessage(data))
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}

	return records, nil
}

// Add inserts a new record, rejecting an existing identity.
func (s *CollectionStore) Add(ctx context.Context, collection, id string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	query := `INSERT INTO records (collection, id, data) VALUES (?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, collection, id, string(data)); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s/%s: %w", collection, id, store.ErrDuplicateID)
		}
		return fmt.Errorf("failed to add record: %w", err)
	}

	return nil
}

// Update reads the stored record, shallow-merges fields over it, and writes
// the result back, all inside one transaction. Nested values in fields
// replace the stored value wholesale.
func (s *CollectionStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var data []byte
	err = tx.QueryRowContext(ctx,
		`SELECT data FROM records WHERE collection = ? AND id = ?`,
		collection, id).Scan(&data)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%s/%s: %w", collection, id, store.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to read record: %w", err)
	}

	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to decode stored record: %w", err)
	}
	for key, value := range fields {
		record[key] = value
	}

	merged, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode merged record: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE records SET data = ? WHERE collection = ? AND id = ?`,
		string(merged), collection, id); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Delete removes a record; deleting an absent identity is a no-op.
func (s *CollectionStore) Delete(ctx context.Context, collection, id string) error {
	query := `DELETE FROM records WHERE collection = ? AND id = ?`
	if _, err := s.db.ExecContext(ctx, query, collection, id); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

// Count reports the number of records in the collection.
func (s *CollectionStore) Count(ctx context.Context, collection string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM records WHERE collection = ?`,
		collection).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count collection %s: %w", collection, err)
	}
	return count, nil
}
