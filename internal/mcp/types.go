package mcp

import (
	"github.com/buildcorp/buildpro/internal/domain"
)

type GetProjectParams struct {
	ID string `json:"id"`
}

type CreateProjectParams struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Code        string  `json:"code,omitempty"`
	Description string  `json:"description,omitempty"`
	Location    string  `json:"location,omitempty"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	Health      string  `json:"health"`
	Progress    int     `json:"progress,omitempty"`
	Budget      float64 `json:"budget,omitempty"`
	Spent       float64 `json:"spent,omitempty"`
	StartDate   string  `json:"startDate,omitempty"`
	EndDate     string  `json:"endDate,omitempty"`
	Manager     string  `json:"manager,omitempty"`
	Image       string  `json:"image,omitempty"`
	TeamSize    int     `json:"teamSize,omitempty"`
}

type UpdateProjectParams struct {
	ID          string                `json:"id"`
	Name        *string               `json:"name,omitempty"`
	Code        *string               `json:"code,omitempty"`
	Description *string               `json:"description,omitempty"`
	Location    *string               `json:"location,omitempty"`
	Type        *domain.ProjectType   `json:"type,omitempty"`
	Status      *domain.ProjectStatus `json:"status,omitempty"`
	Health      *domain.ProjectHealth `json:"health,omitempty"`
	Progress    *int                  `json:"progress,omitempty"`
	Budget      *float64              `json:"budget,omitempty"`
	Spent       *float64              `json:"spent,omitempty"`
	StartDate   *string               `json:"startDate,omitempty"`
	EndDate     *string               `json:"endDate,omitempty"`
	Manager     *string               `json:"manager,omitempty"`
	Image       *string               `json:"image,omitempty"`
	TeamSize    *int                  `json:"teamSize,omitempty"`
	AIAnalysis  *string               `json:"aiAnalysis,omitempty"`
}

type DeleteProjectParams struct {
	ID string `json:"id"`
}

type AddZoneParams struct {
	ProjectID string  `json:"projectId"`
	Label     string  `json:"label"`
	Type      string  `json:"type"`
	Top       float64 `json:"top,omitempty"`
	Left      float64 `json:"left,omitempty"`
	Width     float64 `json:"width,omitempty"`
	Height    float64 `json:"height,omitempty"`
	Protocol  string  `json:"protocol,omitempty"`
	Trigger   string  `json:"trigger,omitempty"`
}

type CreateTaskParams struct {
	ID           string `json:"id,omitempty"`
	Title        string `json:"title"`
	ProjectID    string `json:"projectId"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	AssigneeID   string `json:"assigneeId,omitempty"`
	AssigneeName string `json:"assigneeName,omitempty"`
	AssigneeType string `json:"assigneeType"`
	DueDate      string `json:"dueDate,omitempty"`
	Description  string `json:"description,omitempty"`
}

type UpdateTaskParams struct {
	ID           string               `json:"id"`
	Title        *string              `json:"title,omitempty"`
	ProjectID    *string              `json:"projectId,omitempty"`
	Status       *domain.TaskStatus   `json:"status,omitempty"`
	Priority     *domain.TaskPriority `json:"priority,omitempty"`
	AssigneeID   *string              `json:"assigneeId,omitempty"`
	AssigneeName *string              `json:"assigneeName,omitempty"`
	AssigneeType *domain.AssigneeType `json:"assigneeType,omitempty"`
	DueDate      *string              `json:"dueDate,omitempty"`
	Description  *string              `json:"description,omitempty"`
}

type AddTeamMemberParams struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Initials    string `json:"initials,omitempty"`
	Role        string `json:"role,omitempty"`
	Status      string `json:"status"`
	ProjectID   string `json:"projectId,omitempty"`
	ProjectName string `json:"projectName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Location    string `json:"location,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

type AddDocumentParams struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	ProjectID string `json:"projectId"`
	Size      string `json:"size,omitempty"`
	Date      string `json:"date,omitempty"`
	Status    string `json:"status"`
	URL       string `json:"url,omitempty"`
}

type AddClientParams struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Role          string `json:"role,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Status        string `json:"status"`
	Tier          string `json:"tier"`
}

type AddInventoryItemParams struct {
	ID            string  `json:"id,omitempty"`
	Name          string  `json:"name"`
	Category      string  `json:"category,omitempty"`
	Stock         int     `json:"stock"`
	Unit          string  `json:"unit,omitempty"`
	Threshold     int     `json:"threshold"`
	Location      string  `json:"location,omitempty"`
	LastOrderDate string  `json:"lastOrderDate,omitempty"`
	CostPerUnit   float64 `json:"costPerUnit,omitempty"`
}

type UpdateInventoryItemParams struct {
	ID            string              `json:"id"`
	Name          *string             `json:"name,omitempty"`
	Category      *string             `json:"category,omitempty"`
	Stock         *int                `json:"stock,omitempty"`
	Unit          *string             `json:"unit,omitempty"`
	Threshold     *int                `json:"threshold,omitempty"`
	Location      *string             `json:"location,omitempty"`
	Status        *domain.StockStatus `json:"status,omitempty"`
	LastOrderDate *string             `json:"lastOrderDate,omitempty"`
	CostPerUnit   *float64            `json:"costPerUnit,omitempty"`
}

// DeletedResponse acknowledges a delete.
type DeletedResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// UpdatedResponse acknowledges a partial update.
type UpdatedResponse struct {
	ID      string `json:"id"`
	Updated bool   `json:"updated"`
}

// WorkspaceStatusResponse reports who is connected, what they can see and
// whether any collection has drifted from storage.
type WorkspaceStatusResponse struct {
	User         string         `json:"user"`
	Role         string         `json:"role"`
	Loading      bool           `json:"loading"`
	Counts       map[string]int `json:"counts"`
	SyncFailures []string       `json:"syncFailures,omitempty"`
}
