package workspace

import (
	"slices"

	"github.com/buildcorp/buildpro/internal/auth"
	"github.com/buildcorp/buildpro/internal/domain"
)

// Read accessors copy out of the working set under the read lock and apply
// the caller's visibility on every call, so a project grant made mid-session
// shows up on the next read with no cache invalidation step.

// Projects returns the projects visible to the current identity, newest
// first.
func (w *Workspace) Projects() []domain.Project {
	id := w.auth.Identity()
	w.mu.RLock()
	defer w.mu.RUnlock()

	if id.CanSeeAllProjects() {
		return slices.Clone(w.projects)
	}
	out := make([]domain.Project, 0, len(w.projects))
	for _, p := range w.projects {
		if id.CanSee(p.ID) {
			out = append(out, p)
		}
	}
	return out
}

// GetProject returns a visible project by ID. A project hidden from the
// current identity reads as absent.
func (w *Workspace) GetProject(projectID string) (domain.Project, bool) {
	id := w.auth.Identity()
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, p := range w.projects {
		if p.ID == projectID && id.CanSee(p.ID) {
			return p, true
		}
	}
	return domain.Project{}, false
}

// Tasks returns the tasks whose project is visible to the current identity.
func (w *Workspace) Tasks() []domain.Task {
	id := w.auth.Identity()
	w.mu.RLock()
	defer w.mu.RUnlock()

	if id.CanSeeAllProjects() {
		return slices.Clone(w.tasks)
	}
	out := make([]domain.Task, 0, len(w.tasks))
	for _, t := range w.tasks {
		if id.CanSee(t.ProjectID) {
			out = append(out, t)
		}
	}
	return out
}

// TeamMembers returns the roster filtered by project assignment. Members
// without an assignment only appear for identities that see all projects.
func (w *Workspace) TeamMembers() []domain.TeamMember {
	id := w.auth.Identity()
	w.mu.RLock()
	defer w.mu.RUnlock()

	if id.CanSeeAllProjects() {
		return slices.Clone(w.team)
	}
	out := make([]domain.TeamMember, 0, len(w.team))
	for _, m := range w.team {
		if m.ProjectID != "" && id.CanSee(m.ProjectID) {
			out = append(out, m)
		}
	}
	return out
}

// Documents returns the documents whose project is visible to the current
// identity.
func (w *Workspace) Documents() []domain.ProjectDocument {
	id := w.auth.Identity()
	w.mu.RLock()
	defer w.mu.RUnlock()

	if id.CanSeeAllProjects() {
		return slices.Clone(w.documents)
	}
	out := make([]domain.ProjectDocument, 0, len(w.documents))
	for _, d := range w.documents {
		if id.CanSee(d.ProjectID) {
			out = append(out, d)
		}
	}
	return out
}

// Clients returns every client. The client book is company-wide and is not
// subject to project filtering.
func (w *Workspace) Clients() []domain.Client {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.clients)
}

// Inventory returns every stock item. Inventory is shared across sites and
// is not subject to project filtering.
func (w *Workspace) Inventory() []domain.InventoryItem {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.inventory)
}

// Identity exposes the current caller identity for consumers that report on
// access, such as the status surface.
func (w *Workspace) Identity() auth.Identity {
	return w.auth.Identity()
}
