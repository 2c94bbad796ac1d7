package workspace

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/buildcorp/buildpro/internal/domain"
	"github.com/buildcorp/buildpro/internal/store"
)

// Mutations validate first, then apply to memory under the write lock, then
// queue the persistence write. Callers see the new state immediately; a
// store failure surfaces through SyncFailed, not through the return value.

// AddProject creates a project. An empty ID gets a generated one. When the
// actor does not already see all projects, the new project is granted to
// them so their next read includes it.
func (w *Workspace) AddProject(project domain.Project) (domain.Project, error) {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if err := domain.Validate(project); err != nil {
		return domain.Project{}, err
	}

	w.mu.Lock()
	w.projects = append([]domain.Project{project}, w.projects...)
	w.mu.Unlock()

	if !w.auth.Identity().CanSeeAllProjects() {
		w.auth.GrantProject(project.ID)
	}

	w.enqueue(store.Projects, func(ctx context.Context) error {
		return w.store.Add(ctx, store.Projects, project.ID, project)
	})
	return project, nil
}

// UpdateProject applies a partial update to a visible project.
func (w *Workspace) UpdateProject(projectID string, patch ProjectPatch) error {
	id := w.auth.Identity()

	w.mu.Lock()
	idx := slices.IndexFunc(w.projects, func(p domain.Project) bool { return p.ID == projectID })
	if idx < 0 || !id.CanSee(projectID) {
		w.mu.Unlock()
		return fmt.Errorf("project %s: %w", projectID, store.ErrNotFound)
	}
	patch.apply(&w.projects[idx])
	w.mu.Unlock()

	fields := patch.fields()
	if len(fields) == 0 {
		return nil
	}
	w.enqueue(store.Projects, func(ctx context.Context) error {
		return w.store.Update(ctx, store.Projects, projectID, fields)
	})
	return nil
}

// DeleteProject removes a visible project. Tasks, documents and team
// assignments that reference it are left in place as dangling soft
// references.
func (w *Workspace) DeleteProject(projectID string) error {
	id := w.auth.Identity()

	w.mu.Lock()
	idx := slices.IndexFunc(w.projects, func(p domain.Project) bool { return p.ID == projectID })
	if idx < 0 || !id.CanSee(projectID) {
		w.mu.Unlock()
		return fmt.Errorf("project %s: %w", projectID, store.ErrNotFound)
	}
	w.projects = slices.Delete(slices.Clone(w.projects), idx, idx+1)
	w.mu.Unlock()

	w.enqueue(store.Projects, func(ctx context.Context) error {
		return w.store.Delete(ctx, store.Projects, projectID)
	})
	return nil
}

// AddZone appends a zone to a visible project's site plan. The whole zone
// list is persisted as one field so the stored document stays a faithful
// snapshot of memory.
func (w *Workspace) AddZone(projectID string, zone domain.Zone) (domain.Zone, error) {
	if zone.ID == "" {
		zone.ID = uuid.NewString()
	}
	if err := domain.Validate(zone); err != nil {
		return domain.Zone{}, err
	}
	id := w.auth.Identity()

	w.mu.Lock()
	idx := slices.IndexFunc(w.projects, func(p domain.Project) bool { return p.ID == projectID })
	if idx < 0 || !id.CanSee(projectID) {
		w.mu.Unlock()
		return domain.Zone{}, fmt.Errorf("project %s: %w", projectID, store.ErrNotFound)
	}
	w.projects[idx].Zones = append(w.projects[idx].Zones, zone)
	zones := slices.Clone(w.projects[idx].Zones)
	w.mu.Unlock()

	w.enqueue(store.Projects, func(ctx context.Context) error {
		return w.store.Update(ctx, store.Projects, projectID, map[string]any{"zones": zones})
	})
	return zone, nil
}

// AddTask creates a task and bumps the owning project's task counter in
// memory. The counter is display-grade and is not written back to the
// project document on this path.
func (w *Workspace) AddTask(task domain.Task) (domain.Task, error) {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if err := domain.Validate(task); err != nil {
		return domain.Task{}, err
	}

	w.mu.Lock()
	w.tasks = append([]domain.Task{task}, w.tasks...)
	if idx := slices.IndexFunc(w.projects, func(p domain.Project) bool { return p.ID == task.ProjectID }); idx >= 0 {
		w.projects[idx].Tasks.Total++
	}
	w.mu.Unlock()

	w.enqueue(store.Tasks, func(ctx context.Context) error {
		return w.store.Add(ctx, store.Tasks, task.ID, task)
	})
	return task, nil
}

// UpdateTask applies a partial update to a task whose project is visible.
func (w *Workspace) UpdateTask(taskID string, patch TaskPatch) error {
	id := w.auth.Identity()

	w.mu.Lock()
	idx := slices.IndexFunc(w.tasks, func(t domain.Task) bool { return t.ID == taskID })
	if idx < 0 || !id.CanSee(w.tasks[idx].ProjectID) {
		w.mu.Unlock()
		return fmt.Errorf("task %s: %w", taskID, store.ErrNotFound)
	}
	patch.apply(&w.tasks[idx])
	w.mu.Unlock()

	fields := patch.fields()
	if len(fields) == 0 {
		return nil
	}
	w.enqueue(store.Tasks, func(ctx context.Context) error {
		return w.store.Update(ctx, store.Tasks, taskID, fields)
	})
	return nil
}

// AddTeamMember adds a person to the roster.
func (w *Workspace) AddTeamMember(member domain.TeamMember) (domain.TeamMember, error) {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	if member.ProjectID != "" && member.ProjectName == "" {
		if project, ok := w.findProject(member.ProjectID); ok {
			member.ProjectName = project.Name
		}
	}
	if err := domain.Validate(member); err != nil {
		return domain.TeamMember{}, err
	}

	w.mu.Lock()
	w.team = append([]domain.TeamMember{member}, w.team...)
	w.mu.Unlock()

	w.enqueue(store.Team, func(ctx context.Context) error {
		return w.store.Add(ctx, store.Team, member.ID, member)
	})
	return member, nil
}

// AddDocument registers a document against a project. ProjectName is filled
// from the in-memory project when the caller leaves it empty.
func (w *Workspace) AddDocument(doc domain.ProjectDocument) (domain.ProjectDocument, error) {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.ProjectName == "" {
		if project, ok := w.findProject(doc.ProjectID); ok {
			doc.ProjectName = project.Name
		}
	}
	if err := domain.Validate(doc); err != nil {
		return domain.ProjectDocument{}, err
	}

	w.mu.Lock()
	w.documents = append([]domain.ProjectDocument{doc}, w.documents...)
	w.mu.Unlock()

	w.enqueue(store.Documents, func(ctx context.Context) error {
		return w.store.Add(ctx, store.Documents, doc.ID, doc)
	})
	return doc, nil
}

// AddClient adds a client to the company-wide book.
func (w *Workspace) AddClient(client domain.Client) (domain.Client, error) {
	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	if err := domain.Validate(client); err != nil {
		return domain.Client{}, err
	}

	w.mu.Lock()
	w.clients = append([]domain.Client{client}, w.clients...)
	w.mu.Unlock()

	w.enqueue(store.Clients, func(ctx context.Context) error {
		return w.store.Add(ctx, store.Clients, client.ID, client)
	})
	return client, nil
}

// AddInventoryItem adds a stock item. Status is always derived from the
// stock level and threshold; a caller-supplied status is discarded.
func (w *Workspace) AddInventoryItem(item domain.InventoryItem) (domain.InventoryItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.Status = domain.StockStatusFor(item.Stock, item.Threshold)
	if err := domain.Validate(item); err != nil {
		return domain.InventoryItem{}, err
	}

	w.mu.Lock()
	w.inventory = append([]domain.InventoryItem{item}, w.inventory...)
	w.mu.Unlock()

	w.enqueue(store.Inventory, func(ctx context.Context) error {
		return w.store.Add(ctx, store.Inventory, item.ID, item)
	})
	return item, nil
}

// UpdateInventoryItem applies a partial update to a stock item, re-deriving
// the status when levels change without an explicit status in the patch.
func (w *Workspace) UpdateInventoryItem(itemID string, patch InventoryPatch) error {
	w.mu.Lock()
	idx := slices.IndexFunc(w.inventory, func(i domain.InventoryItem) bool { return i.ID == itemID })
	if idx < 0 {
		w.mu.Unlock()
		return fmt.Errorf("inventory item %s: %w", itemID, store.ErrNotFound)
	}
	patch.apply(&w.inventory[idx])
	derived := w.inventory[idx].Status
	w.mu.Unlock()

	fields := patch.fields(derived)
	if len(fields) == 0 {
		return nil
	}
	w.enqueue(store.Inventory, func(ctx context.Context) error {
		return w.store.Update(ctx, store.Inventory, itemID, fields)
	})
	return nil
}

func (w *Workspace) findProject(projectID string) (domain.Project, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, p := range w.projects {
		if p.ID == projectID {
			return p, true
		}
	}
	return domain.Project{}, false
}
