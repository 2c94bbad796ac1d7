// Package auth carries the caller identity and the role-based project
// visibility rules applied by the workspace.
package auth

import (
	"slices"
	"sync"
)

// Role is the access level of the authenticated user.
type Role string

const (
	RoleSuperAdmin   Role = "super_admin"
	RoleCompanyAdmin Role = "company_admin"
	RoleSupervisor   Role = "supervisor"
	RoleOperative    Role = "operative"
)

// AllProjects is the project grant that makes every project visible
// regardless of role.
const AllProjects = "ALL"

// Identity describes who is using the workspace and which projects they may
// see. ProjectIDs is a snapshot; use Authorizer.GrantProject to extend it.
type Identity struct {
	Name       string
	Role       Role
	ProjectIDs []string
}

// CanSee reports whether the identity may read the given project.
func (id Identity) CanSee(projectID string) bool {
	if id.Role == RoleSuperAdmin {
		return true
	}
	if slices.Contains(id.ProjectIDs, AllProjects) {
		return true
	}
	return slices.Contains(id.ProjectIDs, projectID)
}

// CanSeeAllProjects reports whether the identity bypasses project filtering
// entirely.
func (id Identity) CanSeeAllProjects() bool {
	return id.Role == RoleSuperAdmin || slices.Contains(id.ProjectIDs, AllProjects)
}

// Authorizer resolves the current identity and records project grants made
// during the session.
type Authorizer interface {
	// Identity returns a snapshot of the current identity. Mutating the
	// returned value does not affect the session.
	Identity() Identity

	// GrantProject adds a project to the identity's visible set. Granting
	// an already-visible project is a no-op.
	GrantProject(projectID string)
}

// Session is an in-process Authorizer. It is safe for concurrent use.
type Session struct {
	mu       sync.RWMutex
	identity Identity
}

// NewSession creates a session for the given identity.
func NewSession(identity Identity) *Session {
	identity.ProjectIDs = slices.Clone(identity.ProjectIDs)
	return &Session{identity: identity}
}

func (s *Session) Identity() Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id := s.identity
	id.ProjectIDs = slices.Clone(id.ProjectIDs)
	return id
}

func (s *Session) GrantProject(projectID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Contains(s.identity.ProjectIDs, projectID) {
		return
	}
	s.identity.ProjectIDs = append(s.identity.ProjectIDs, projectID)
}
