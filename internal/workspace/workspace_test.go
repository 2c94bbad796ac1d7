package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/buildcorp/buildpro/internal/auth"
	"github.com/buildcorp/buildpro/internal/domain"
	"github.com/buildcorp/buildpro/internal/seed"
	"github.com/buildcorp/buildpro/internal/sqlite"
	"github.com/buildcorp/buildpro/internal/store"
	"github.com/buildcorp/buildpro/internal/store/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func superAdmin() *auth.Session {
	return auth.NewSession(auth.Identity{Name: "John Anderson", Role: auth.RoleSuperAdmin})
}

func supervisor(projectIDs ...string) *auth.Session {
	return auth.NewSession(auth.Identity{Name: "Mike Thompson", Role: auth.RoleSupervisor, ProjectIDs: projectIDs})
}

// newSeededStore returns a store preloaded with the demo dataset.
func newSeededStore(t *testing.T) store.Store {
	t.Helper()
	st := sqlite.NewCollectionStore(sqlite.NewTestDB(t))
	require.NoError(t, seed.Apply(context.Background(), st))
	return st
}

func newWorkspace(t *testing.T, st store.Store, session auth.Authorizer) *Workspace {
	t.Helper()
	w := New(st, session, testLogger())
	t.Cleanup(w.Close)
	return w
}

func loadWorkspace(t *testing.T, st store.Store, session auth.Authorizer) *Workspace {
	t.Helper()
	w := newWorkspace(t, st, session)
	require.NoError(t, w.Load(context.Background()))
	return w
}

func TestLoadSeededWorkspace(t *testing.T) {
	w := loadWorkspace(t, newSeededStore(t), superAdmin())

	assert.False(t, w.Loading())
	assert.Len(t, w.Projects(), 4)
	assert.Len(t, w.Tasks(), 10)
	assert.Len(t, w.TeamMembers(), 7)
	assert.Len(t, w.Documents(), 7)
	assert.Len(t, w.Clients(), 4)
	assert.Len(t, w.Inventory(), 5)
}

func TestLoadFailureLeavesMemoryUntouched(t *testing.T) {
	st := new(mocks.Store)
	st.On("GetAll", mock.Anything, store.Projects).Return([]json.RawMessage(nil), errors.New("disk gone")).Maybe()
	st.On("GetAll", mock.Anything, mock.Anything).Return([]json.RawMessage(nil), errors.New("disk gone")).Maybe()

	w := newWorkspace(t, st, superAdmin())
	err := w.Load(context.Background())

	require.Error(t, err)
	assert.False(t, w.Loading(), "loading flag must clear even on failure")
	assert.Empty(t, w.Projects())
}

func TestVisibilityFiltering(t *testing.T) {
	w := loadWorkspace(t, newSeededStore(t), supervisor("p1"))

	projects := w.Projects()
	require.Len(t, projects, 1)
	assert.Equal(t, "p1", projects[0].ID)

	for _, task := range w.Tasks() {
		assert.Equal(t, "p1", task.ProjectID)
	}
	assert.Len(t, w.Tasks(), 4)

	for _, member := range w.TeamMembers() {
		assert.Equal(t, "p1", member.ProjectID)
	}
	assert.Len(t, w.TeamMembers(), 3)

	for _, doc := range w.Documents() {
		assert.Equal(t, "p1", doc.ProjectID)
	}
	assert.Len(t, w.Documents(), 4)

	// Clients and inventory are company-wide, never filtered.
	assert.Len(t, w.Clients(), 4)
	assert.Len(t, w.Inventory(), 5)
}

func TestGrantWidensNextRead(t *testing.T) {
	session := supervisor("p1")
	w := loadWorkspace(t, newSeededStore(t), session)

	_, ok := w.GetProject("p2")
	assert.False(t, ok)

	session.GrantProject("p2")

	_, ok = w.GetProject("p2")
	assert.True(t, ok)
	assert.Len(t, w.Projects(), 2)
}

func TestAddProjectGrantsToActor(t *testing.T) {
	session := supervisor("p1")
	w := loadWorkspace(t, newSeededStore(t), session)

	created, err := w.AddProject(domain.Project{
		Name:   "Warehouse Retrofit",
		Type:   domain.TypeIndustrial,
		Status: domain.StatusPlanning,
		Health: domain.HealthGood,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, ok := w.GetProject(created.ID)
	require.True(t, ok, "creator must see their own project immediately")
	assert.Equal(t, "Warehouse Retrofit", got.Name)
	assert.Contains(t, session.Identity().ProjectIDs, created.ID)
}

func TestAddProjectSuperAdminNoGrant(t *testing.T) {
	session := superAdmin()
	w := loadWorkspace(t, newSeededStore(t), session)

	created, err := w.AddProject(domain.Project{
		Name:   "Hospital Wing Extension",
		Type:   domain.TypeHealthcare,
		Status: domain.StatusPlanning,
		Health: domain.HealthGood,
	})
	require.NoError(t, err)
	assert.NotContains(t, session.Identity().ProjectIDs, created.ID)
}

func TestAddProjectPersistsNewestFirst(t *testing.T) {
	st := newSeededStore(t)
	w := loadWorkspace(t, st, superAdmin())

	created, err := w.AddProject(domain.Project{
		Name:   "Marina Boardwalk",
		Type:   domain.TypeCommercial,
		Status: domain.StatusActive,
		Health: domain.HealthGood,
	})
	require.NoError(t, err)
	w.Flush()
	assert.False(t, w.SyncFailed(store.Projects))

	reloaded := loadWorkspace(t, st, superAdmin())
	projects := reloaded.Projects()
	require.Len(t, projects, 5)
	assert.Equal(t, created.ID, projects[0].ID, "latest insertion loads first")
}

func TestAddProjectRejectsInvalid(t *testing.T) {
	w := loadWorkspace(t, newSeededStore(t), superAdmin())

	_, err := w.AddProject(domain.Project{Name: "No Status"})
	require.Error(t, err)
	assert.Len(t, w.Projects(), 4, "invalid project must not enter memory")
}

func TestDuplicateAddFlagsSyncFailure(t *testing.T) {
	w := loadWorkspace(t, newSeededStore(t), superAdmin())

	_, err := w.AddProject(domain.Project{
		ID:     "p1",
		Name:   "Shadow of City Centre",
		Type:   domain.TypeCommercial,
		Status: domain.StatusActive,
		Health: domain.HealthGood,
	})
	require.NoError(t, err, "the in-memory add is optimistic")
	w.Flush()

	assert.True(t, w.SyncFailed(store.Projects))
	assert.ErrorIs(t, w.LastSyncError(store.Projects), store.ErrDuplicateID)
}

func TestSyncFailureClearsOnNextSuccess(t *testing.T) {
	w := loadWorkspace(t, newSeededStore(t), superAdmin())

	_, err := w.AddProject(domain.Project{
		ID: "p1", Name: "Duplicate", Type: domain.TypeCommercial,
		Status: domain.StatusActive, Health: domain.HealthGood,
	})
	require.NoError(t, err)
	w.Flush()
	require.True(t, w.SyncFailed(store.Projects))

	_, err = w.AddProject(domain.Project{
		Name: "Fresh Start", Type: domain.TypeCommercial,
		Status: domain.StatusActive, Health: domain.HealthGood,
	})
	require.NoError(t, err)
	w.Flush()
	assert.False(t, w.SyncFailed(store.Projects))
}

func TestUpdateProjectOptimistic(t *testing.T) {
	st := newSeededStore(t)
	w := loadWorkspace(t, st, superAdmin())

	progress := 80
	health := domain.HealthAtRisk
	require.NoError(t, w.UpdateProject("p1", ProjectPatch{Progress: &progress, Health: &health}))

	got, ok := w.GetProject("p1")
	require.True(t, ok)
	assert.Equal(t, 80, got.Progress)
	assert.Equal(t, domain.HealthAtRisk, got.Health)
	assert.Equal(t, "City Centre Plaza Development", got.Name, "untouched fields survive")

	w.Flush()
	reloaded := loadWorkspace(t, st, superAdmin())
	got, ok = reloaded.GetProject("p1")
	require.True(t, ok)
	assert.Equal(t, 80, got.Progress)
	assert.Equal(t, 145, got.Tasks.Total, "nested struct untouched by shallow merge")
}

func TestUpdateInvisibleProjectNotFound(t *testing.T) {
	w := loadWorkspace(t, newSeededStore(t), supervisor("p1"))

	progress := 50
	err := w.UpdateProject("p2", ProjectPatch{Progress: &progress})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateFailureFlagsSyncButKeepsMemory(t *testing.T) {
	st := new(mocks.Store)
	for _, coll := range store.Collections() {
		st.On("GetAll", mock.Anything, coll).Return([]json.RawMessage(nil), nil)
	}
	st.On("Add", mock.Anything, store.Projects, mock.Anything, mock.Anything).Return(nil)
	st.On("Update", mock.Anything, store.Projects, mock.Anything, mock.Anything).Return(errors.New("disk full"))

	w := newWorkspace(t, st, superAdmin())
	require.NoError(t, w.Load(context.Background()))

	created, err := w.AddProject(domain.Project{
		Name: "Optimist Tower", Type: domain.TypeCommercial,
		Status: domain.StatusActive, Health: domain.HealthGood,
	})
	require.NoError(t, err)

	progress := 10
	require.NoError(t, w.UpdateProject(created.ID, ProjectPatch{Progress: &progress}))
	w.Flush()

	assert.True(t, w.SyncFailed(store.Projects))
	got, ok := w.GetProject(created.ID)
	require.True(t, ok)
	assert.Equal(t, 10, got.Progress, "memory keeps the optimistic value")
}

func TestDeleteProject(t *testing.T) {
	st := newSeededStore(t)
	w := loadWorkspace(t, st, superAdmin())

	require.NoError(t, w.DeleteProject("p4"))
	_, ok := w.GetProject("p4")
	assert.False(t, ok)

	w.Flush()
	reloaded := loadWorkspace(t, st, superAdmin())
	assert.Len(t, reloaded.Projects(), 3)

	assert.ErrorIs(t, w.DeleteProject("p4"), store.ErrNotFound)
}

func TestAddZonePersistsWholeList(t *testing.T) {
	st := newSeededStore(t)
	w := loadWorkspace(t, st, superAdmin())

	zone, err := w.AddZone("p1", domain.Zone{
		Label: "Crane Radius", Type: domain.ZoneDanger,
		Top: 10, Left: 20, Width: 30, Height: 30,
		Protocol: "Hard hats mandatory",
	})
	require.NoError(t, err)
	require.NotEmpty(t, zone.ID)

	_, err = w.AddZone("p1", domain.Zone{Label: "Storage", Type: domain.ZoneInfo})
	require.NoError(t, err)
	w.Flush()

	reloaded := loadWorkspace(t, st, superAdmin())
	got, ok := reloaded.GetProject("p1")
	require.True(t, ok)
	require.Len(t, got.Zones, 2)
	assert.Equal(t, "Crane Radius", got.Zones[0].Label)
	assert.Equal(t, "Storage", got.Zones[1].Label)
}

func TestAddTaskBumpsCounterInMemoryOnly(t *testing.T) {
	st := newSeededStore(t)
	w := loadWorkspace(t, st, superAdmin())

	before, _ := w.GetProject("p1")
	task, err := w.AddTask(domain.Task{
		Title: "Pour level 3 slab", ProjectID: "p1",
		Status: domain.TaskToDo, Priority: domain.PriorityHigh,
		AssigneeName: "David C.", AssigneeType: domain.AssigneeUser,
		DueDate: "2025-12-01",
	})
	require.NoError(t, err)

	after, _ := w.GetProject("p1")
	assert.Equal(t, before.Tasks.Total+1, after.Tasks.Total)
	assert.Equal(t, task.ID, w.Tasks()[0].ID, "new task prepends")

	w.Flush()
	reloaded := loadWorkspace(t, st, superAdmin())
	stored, _ := reloaded.GetProject("p1")
	assert.Equal(t, before.Tasks.Total, stored.Tasks.Total, "counter bump is not persisted")
	assert.Len(t, reloaded.Tasks(), 11)
}

func TestUpdateTaskRespectsVisibility(t *testing.T) {
	w := loadWorkspace(t, newSeededStore(t), supervisor("p1"))

	status := domain.TaskDone
	require.NoError(t, w.UpdateTask("t1", TaskPatch{Status: &status}))
	for _, task := range w.Tasks() {
		if task.ID == "t1" {
			assert.Equal(t, domain.TaskDone, task.Status)
		}
	}

	// t5 belongs to p3, outside the grant set.
	err := w.UpdateTask("t5", TaskPatch{Status: &status})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAddDocumentDenormalizesProjectName(t *testing.T) {
	w := loadWorkspace(t, newSeededStore(t), superAdmin())

	doc, err := w.AddDocument(domain.ProjectDocument{
		Name: "Crane Lift Plan", Type: domain.DocPDF,
		ProjectID: "p1", Size: "3.0 MB", Date: "2025-11-10",
		Status: domain.DocDraft,
	})
	require.NoError(t, err)
	assert.Equal(t, "City Centre Plaza Development", doc.ProjectName)
}

func TestAddTeamMemberAndClient(t *testing.T) {
	st := newSeededStore(t)
	w := loadWorkspace(t, st, superAdmin())

	member, err := w.AddTeamMember(domain.TeamMember{
		Name: "Priya Patel", Initials: "PP", Role: "Operative",
		Status: domain.MemberOnSite, ProjectID: "p1",
	})
	require.NoError(t, err)
	assert.Equal(t, "City Centre Plaza Development", member.ProjectName)

	_, err = w.AddClient(domain.Client{
		Name: "Harbour Authority", ContactPerson: "Len Hughes",
		Status: domain.ClientLead, Tier: domain.TierGovernment,
	})
	require.NoError(t, err)
	w.Flush()

	reloaded := loadWorkspace(t, st, superAdmin())
	assert.Len(t, reloaded.TeamMembers(), 8)
	assert.Len(t, reloaded.Clients(), 5)
}

func TestInventoryStatusDerivedOnAdd(t *testing.T) {
	w := loadWorkspace(t, newSeededStore(t), superAdmin())

	item, err := w.AddInventoryItem(domain.InventoryItem{
		ID: "INV-006", Name: "Scaffold Clamps", Category: "Equipment",
		Stock: 5, Unit: "Units", Threshold: 50,
		Status: domain.StockIn, // lies; must be overridden
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StockLow, item.Status)
}

func TestInventoryStatusRederivedOnUpdate(t *testing.T) {
	st := newSeededStore(t)
	w := loadWorkspace(t, st, superAdmin())

	stock := 0
	require.NoError(t, w.UpdateInventoryItem("INV-001", InventoryPatch{Stock: &stock}))
	for _, item := range w.Inventory() {
		if item.ID == "INV-001" {
			assert.Equal(t, domain.StockOut, item.Status)
		}
	}

	w.Flush()
	reloaded := loadWorkspace(t, st, superAdmin())
	for _, item := range reloaded.Inventory() {
		if item.ID == "INV-001" {
			assert.Equal(t, domain.StockOut, item.Status)
		}
	}
}

func TestInventoryExplicitStatusWins(t *testing.T) {
	w := loadWorkspace(t, newSeededStore(t), superAdmin())

	stock := 0
	status := domain.StockIn
	require.NoError(t, w.UpdateInventoryItem("INV-002", InventoryPatch{Stock: &stock, Status: &status}))

	for _, item := range w.Inventory() {
		if item.ID == "INV-002" {
			assert.Equal(t, domain.StockIn, item.Status)
		}
	}
}
