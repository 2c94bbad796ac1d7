package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/buildcorp/buildpro/internal/auth"
	"github.com/buildcorp/buildpro/internal/domain"
	"github.com/buildcorp/buildpro/internal/store"
	"github.com/buildcorp/buildpro/internal/workspace"
)

// WorkspaceService defines the workspace operations needed by MCP.
type WorkspaceService interface {
	Projects() []domain.Project
	GetProject(projectID string) (domain.Project, bool)
	Tasks() []domain.Task
	TeamMembers() []domain.TeamMember
	Documents() []domain.ProjectDocument
	Clients() []domain.Client
	Inventory() []domain.InventoryItem
	Identity() auth.Identity
	Loading() bool
	SyncFailed(collection string) bool

	AddProject(project domain.Project) (domain.Project, error)
	UpdateProject(projectID string, patch workspace.ProjectPatch) error
	DeleteProject(projectID string) error
	AddZone(projectID string, zone domain.Zone) (domain.Zone, error)
	AddTask(task domain.Task) (domain.Task, error)
	UpdateTask(taskID string, patch workspace.TaskPatch) error
	AddTeamMember(member domain.TeamMember) (domain.TeamMember, error)
	AddDocument(doc domain.ProjectDocument) (domain.ProjectDocument, error)
	AddClient(client domain.Client) (domain.Client, error)
	AddInventoryItem(item domain.InventoryItem) (domain.InventoryItem, error)
	UpdateInventoryItem(itemID string, patch workspace.InventoryPatch) error
}

// Handler dispatches MCP tool calls onto the workspace.
type Handler struct {
	workspace WorkspaceService
}

// NewHandler creates a new MCP handler.
func NewHandler(ws WorkspaceService) *Handler {
	return &Handler{workspace: ws}
}

// Handle dispatches a tool call by name.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case "list_projects":
		return h.workspace.Projects(), nil
	case "get_project":
		var req GetProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		project, ok := h.workspace.GetProject(req.ID)
		if !ok {
			return nil, mapError(fmt.Errorf("project %s: %w", req.ID, store.ErrNotFound))
		}
		return project, nil
	case "create_project":
		var req CreateProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		project, err := h.workspace.AddProject(domain.Project{
			ID:          req.ID,
			Name:        req.Name,
			Code:        req.Code,
			Description: req.Description,
			Location:    req.Location,
			Type:        domain.ProjectType(req.Type),
			Status:      domain.ProjectStatus(req.Status),
			Health:      domain.ProjectHealth(req.Health),
			Progress:    req.Progress,
			Budget:      req.Budget,
			Spent:       req.Spent,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Manager:     req.Manager,
			Image:       req.Image,
			TeamSize:    req.TeamSize,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return project, nil
	case "update_project":
		var req UpdateProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		err := h.workspace.UpdateProject(req.ID, workspace.ProjectPatch{
			Name:        req.Name,
			Code:        req.Code,
			Description: req.Description,
			Location:    req.Location,
			Type:        req.Type,
			Status:      req.Status,
			Health:      req.Health,
			Progress:    req.Progress,
			Budget:      req.Budget,
			Spent:       req.Spent,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Manager:     req.Manager,
			Image:       req.Image,
			TeamSize:    req.TeamSize,
			AIAnalysis:  req.AIAnalysis,
		})
		if err != nil {
			return nil, mapError(err)
		}
		project, _ := h.workspace.GetProject(req.ID)
		return project, nil
	case "delete_project":
		var req DeleteProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.workspace.DeleteProject(req.ID); err != nil {
			return nil, mapError(err)
		}
		return DeletedResponse{ID: req.ID, Deleted: true}, nil
	case "add_zone":
		var req AddZoneParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		zone, err := h.workspace.AddZone(req.ProjectID, domain.Zone{
			Label:    req.Label,
			Type:     domain.ZoneType(req.Type),
			Top:      req.Top,
			Left:     req.Left,
			Width:    req.Width,
			Height:   req.Height,
			Protocol: req.Protocol,
			Trigger:  req.Trigger,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return zone, nil
	case "list_tasks":
		return h.workspace.Tasks(), nil
	case "create_task":
		var req CreateTaskParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		task, err := h.workspace.AddTask(domain.Task{
			ID:           req.ID,
			Title:        req.Title,
			ProjectID:    req.ProjectID,
			Status:       domain.TaskStatus(req.Status),
			Priority:     domain.TaskPriority(req.Priority),
			AssigneeID:   req.AssigneeID,
			AssigneeName: req.AssigneeName,
			AssigneeType: domain.AssigneeType(req.AssigneeType),
			DueDate:      req.DueDate,
			Description:  req.Description,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return task, nil
	case "update_task":
		var req UpdateTaskParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		err := h.workspace.UpdateTask(req.ID, workspace.TaskPatch{
			Title:        req.Title,
			ProjectID:    req.ProjectID,
			Status:       req.Status,
			Priority:     req.Priority,
			AssigneeID:   req.AssigneeID,
			AssigneeName: req.AssigneeName,
			AssigneeType: req.AssigneeType,
			DueDate:      req.DueDate,
			Description:  req.Description,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return UpdatedResponse{ID: req.ID, Updated: true}, nil
	case "list_team_members":
		return h.workspace.TeamMembers(), nil
	case "add_team_member":
		var req AddTeamMemberParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		member, err := h.workspace.AddTeamMember(domain.TeamMember{
			ID:          req.ID,
			Name:        req.Name,
			Initials:    req.Initials,
			Role:        req.Role,
			Status:      domain.MemberStatus(req.Status),
			ProjectID:   req.ProjectID,
			ProjectName: req.ProjectName,
			Phone:       req.Phone,
			Email:       req.Email,
			Location:    req.Location,
			Bio:         req.Bio,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return member, nil
	case "list_documents":
		return h.workspace.Documents(), nil
	case "add_document":
		var req AddDocumentParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		doc, err := h.workspace.AddDocument(domain.ProjectDocument{
			ID:        req.ID,
			Name:      req.Name,
			Type:      domain.DocumentType(req.Type),
			ProjectID: req.ProjectID,
			Size:      req.Size,
			Date:      req.Date,
			Status:    domain.DocumentStatus(req.Status),
			URL:       req.URL,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return doc, nil
	case "list_clients":
		return h.workspace.Clients(), nil
	case "add_client":
		var req AddClientParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		client, err := h.workspace.AddClient(domain.Client{
			ID:            req.ID,
			Name:          req.Name,
			ContactPerson: req.ContactPerson,
			Role:          req.Role,
			Email:         req.Email,
			Phone:         req.Phone,
			Status:        domain.ClientStatus(req.Status),
			Tier:          domain.ClientTier(req.Tier),
		})
		if err != nil {
			return nil, mapError(err)
		}
		return client, nil
	case "list_inventory":
		return h.workspace.Inventory(), nil
	case "add_inventory_item":
		var req AddInventoryItemParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		item, err := h.workspace.AddInventoryItem(domain.InventoryItem{
			ID:            req.ID,
			Name:          req.Name,
			Category:      req.Category,
			Stock:         req.Stock,
			Unit:          req.Unit,
			Threshold:     req.Threshold,
			Location:      req.Location,
			LastOrderDate: req.LastOrderDate,
			CostPerUnit:   req.CostPerUnit,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return item, nil
	case "update_inventory_item":
		var req UpdateInventoryItemParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		err := h.workspace.UpdateInventoryItem(req.ID, workspace.InventoryPatch{
			Name:          req.Name,
			Category:      req.Category,
			Stock:         req.Stock,
			Unit:          req.Unit,
			Threshold:     req.Threshold,
			Location:      req.Location,
			Status:        req.Status,
			LastOrderDate: req.LastOrderDate,
			CostPerUnit:   req.CostPerUnit,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return UpdatedResponse{ID: req.ID, Updated: true}, nil
	case "workspace_status":
		identity := h.workspace.Identity()
		status := WorkspaceStatusResponse{
			User:    identity.Name,
			Role:    string(identity.Role),
			Loading: h.workspace.Loading(),
			Counts: map[string]int{
				store.Projects:  len(h.workspace.Projects()),
				store.Tasks:     len(h.workspace.Tasks()),
				store.Team:      len(h.workspace.TeamMembers()),
				store.Documents: len(h.workspace.Documents()),
				store.Clients:   len(h.workspace.Clients()),
				store.Inventory: len(h.workspace.Inventory()),
			},
		}
		for _, coll := range store.Collections() {
			if h.workspace.SyncFailed(coll) {
				status.SyncFailures = append(status.SyncFailures, coll)
			}
		}
		return status, nil
	default:
		return nil, fmt.Errorf("unknown method: %s", method)
	}
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	return json.Unmarshal(params, out)
}
