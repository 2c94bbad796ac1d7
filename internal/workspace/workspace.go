// Package workspace is the in-memory working set over the persistence
// store. Reads are served from memory with role-based visibility applied on
// every call; writes mutate memory first and are persisted by a single
// background writer, so a storage failure never rolls back what the caller
// already sees.
package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/buildcorp/buildpro/internal/auth"
	"github.com/buildcorp/buildpro/internal/domain"
	"github.com/buildcorp/buildpro/internal/store"
)

// writeOp is one persistence action queued behind the in-memory mutation
// that produced it. A nil apply with a non-nil done is a flush marker.
type writeOp struct {
	collection string
	apply      func(ctx context.Context) error
	done       chan struct{}
}

// Workspace holds every collection in memory and keeps the store in sync.
type Workspace struct {
	store  store.Store
	auth   auth.Authorizer
	logger *slog.Logger

	mu        sync.RWMutex
	projects  []domain.Project
	tasks     []domain.Task
	team      []domain.TeamMember
	documents []domain.ProjectDocument
	clients   []domain.Client
	inventory []domain.InventoryItem
	loading   bool
	syncErrs  map[string]error

	writes chan writeOp
	closed chan struct{}
}

// New creates a workspace bound to a store and an authorizer. Call Load
// before serving reads, and Close when done.
func New(st store.Store, authorizer auth.Authorizer, logger *slog.Logger) *Workspace {
	w := &Workspace{
		store:    st,
		auth:     authorizer,
		logger:   logger,
		loading:  true,
		syncErrs: make(map[string]error),
		writes:   make(chan writeOp, 64),
		closed:   make(chan struct{}),
	}
	go w.runWriter()
	return w
}

// runWriter drains the write queue one op at a time. Persistence failures
// are recorded per collection and logged, never surfaced to the mutation
// that queued them.
func (w *Workspace) runWriter() {
	defer close(w.closed)
	for op := range w.writes {
		if op.apply == nil {
			close(op.done)
			continue
		}
		err := op.apply(context.Background())

		w.mu.Lock()
		if err != nil {
			w.syncErrs[op.collection] = err
		} else {
			delete(w.syncErrs, op.collection)
		}
		w.mu.Unlock()

		if err != nil {
			w.logger.Error("persistence write failed",
				"collection", op.collection,
				"error", err)
		}
	}
}

func (w *Workspace) enqueue(collection string, apply func(ctx context.Context) error) {
	w.writes <- writeOp{collection: collection, apply: apply}
}

// Flush blocks until every write queued before the call has been applied.
// Intended for tests and shutdown.
func (w *Workspace) Flush() {
	done := make(chan struct{})
	w.writes <- writeOp{done: done}
	<-done
}

// Close drains pending writes and stops the background writer.
func (w *Workspace) Close() {
	close(w.writes)
	<-w.closed
}

// Load reads all six collections from the store and replaces the in-memory
// working set. The swap is all-or-nothing: if any collection fails to load,
// memory is left untouched. The loading flag clears either way.
func (w *Workspace) Load(ctx context.Context) error {
	defer func() {
		w.mu.Lock()
		w.loading = false
		w.mu.Unlock()
	}()

	var (
		projects  []domain.Project
		tasks     []domain.Task
		team      []domain.TeamMember
		documents []domain.ProjectDocument
		clients   []domain.Client
		inventory []domain.InventoryItem
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { projects, err = loadCollection[domain.Project](ctx, w.store, store.Projects); return })
	g.Go(func() (err error) { tasks, err = loadCollection[domain.Task](ctx, w.store, store.Tasks); return })
	g.Go(func() (err error) { team, err = loadCollection[domain.TeamMember](ctx, w.store, store.Team); return })
	g.Go(func() (err error) {
		documents, err = loadCollection[domain.ProjectDocument](ctx, w.store, store.Documents)
		return
	})
	g.Go(func() (err error) { clients, err = loadCollection[domain.Client](ctx, w.store, store.Clients); return })
	g.Go(func() (err error) {
		inventory, err = loadCollection[domain.InventoryItem](ctx, w.store, store.Inventory)
		return
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("loading workspace: %w", err)
	}

	w.mu.Lock()
	w.projects = projects
	w.tasks = tasks
	w.team = team
	w.documents = documents
	w.clients = clients
	w.inventory = inventory
	w.mu.Unlock()

	w.logger.Info("workspace loaded",
		"projects", len(projects),
		"tasks", len(tasks),
		"team", len(team),
		"documents", len(documents),
		"clients", len(clients),
		"inventory", len(inventory))

	return nil
}

func loadCollection[T any](ctx context.Context, st store.Store, collection string) ([]T, error) {
	raws, err := st.GetAll(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("collection %s: %w", collection, err)
	}
	records, err := store.DecodeAll[T](raws)
	if err != nil {
		return nil, fmt.Errorf("collection %s: %w", collection, err)
	}
	return records, nil
}

// Loading reports whether the initial Load has not finished yet.
func (w *Workspace) Loading() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.loading
}

// SyncFailed reports whether the most recent persistence write for the
// collection failed, meaning memory and store may have drifted.
func (w *Workspace) SyncFailed(collection string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.syncErrs[collection] != nil
}

// LastSyncError returns the failure recorded for the collection, or nil.
func (w *Workspace) LastSyncError(collection string) error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.syncErrs[collection]
}
