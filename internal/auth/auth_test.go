package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityCanSee(t *testing.T) {
	tests := []struct {
		name      string
		identity  Identity
		projectID string
		want      bool
	}{
		{
			name:      "super admin sees everything",
			identity:  Identity{Role: RoleSuperAdmin},
			projectID: "p1",
			want:      true,
		},
		{
			name:      "ALL grant sees everything",
			identity:  Identity{Role: RoleCompanyAdmin, ProjectIDs: []string{AllProjects}},
			projectID: "p2",
			want:      true,
		},
		{
			name:      "granted project visible",
			identity:  Identity{Role: RoleSupervisor, ProjectIDs: []string{"p1", "p3"}},
			projectID: "p3",
			want:      true,
		},
		{
			name:      "ungranted project hidden",
			identity:  Identity{Role: RoleSupervisor, ProjectIDs: []string{"p1"}},
			projectID: "p2",
			want:      false,
		},
		{
			name:      "operative with no grants sees nothing",
			identity:  Identity{Role: RoleOperative},
			projectID: "p1",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.identity.CanSee(tt.projectID))
		})
	}
}

func TestSessionGrantProject(t *testing.T) {
	session := NewSession(Identity{Name: "Mike", Role: RoleSupervisor, ProjectIDs: []string{"p1"}})

	assert.False(t, session.Identity().CanSee("p9"))

	session.GrantProject("p9")
	assert.True(t, session.Identity().CanSee("p9"))

	// Granting twice must not duplicate the entry.
	session.GrantProject("p9")
	assert.Equal(t, []string{"p1", "p9"}, session.Identity().ProjectIDs)
}

func TestSessionIdentityIsSnapshot(t *testing.T) {
	session := NewSession(Identity{Role: RoleSupervisor, ProjectIDs: []string{"p1"}})

	id := session.Identity()
	id.ProjectIDs[0] = "mutated"

	assert.Equal(t, []string{"p1"}, session.Identity().ProjectIDs)
}
