package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection names for the six entity collections.
const (
	Projects  = "projects"
	Tasks     = "tasks"
	Team      = "team"
	Documents = "documents"
	Clients   = "clients"
	Inventory = "inventory"
)

// Collections lists every collection in seeding order.
func Collections() []string {
	return []string{Projects, Tasks, Team, Documents, Clients, Inventory}
}

// Store is a collection-keyed document store. Records are JSON documents
// addressed by a string identity unique within their collection. There are
// no cross-collection transactions.
type Store interface {
	// GetAll returns every record in the collection, newest insertion
	// first. Consumers must not assume any stronger ordering.
	GetAll(ctx context.Context, collection string) ([]json.RawMessage, error)

	// Add inserts a new record. It returns ErrDuplicateID when the
	// identity already exists in the collection.
	Add(ctx context.Context, collection, id string, record any) error

	// Update shallow-merges fields over the stored record in a single
	// transaction. Nested values are replaced wholesale. It returns
	// ErrNotFound when the identity does not exist.
	Update(ctx context.Context, collection, id string, fields map[string]any) error

	// Delete removes a record. Deleting an absent identity is a no-op.
	Delete(ctx context.Context, collection, id string) error

	// Count reports the number of records in the collection.
	Count(ctx context.Context, collection string) (int, error)
}

// DecodeAll unmarshals a raw result set into typed records.
func DecodeAll[T any](raws []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}
