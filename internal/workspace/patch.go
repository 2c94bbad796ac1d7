package workspace

import "github.com/buildcorp/buildpro/internal/domain"

// Patch types carry partial updates. A nil field is left alone; a set field
// is applied to the in-memory record and shallow-merged into the stored
// document under its JSON name.

// ProjectPatch is a partial update to a project.
type ProjectPatch struct {
	Name        *string
	Code        *string
	Description *string
	Location    *string
	Type        *domain.ProjectType
	Status      *domain.ProjectStatus
	Health      *domain.ProjectHealth
	Progress    *int
	Budget      *float64
	Spent       *float64
	StartDate   *string
	EndDate     *string
	Manager     *string
	Image       *string
	TeamSize    *int
	Tasks       *domain.TaskStats
	AIAnalysis  *string
}

func (p ProjectPatch) apply(project *domain.Project) {
	setIf(&project.Name, p.Name)
	setIf(&project.Code, p.Code)
	setIf(&project.Description, p.Description)
	setIf(&project.Location, p.Location)
	setIf(&project.Type, p.Type)
	setIf(&project.Status, p.Status)
	setIf(&project.Health, p.Health)
	setIf(&project.Progress, p.Progress)
	setIf(&project.Budget, p.Budget)
	setIf(&project.Spent, p.Spent)
	setIf(&project.StartDate, p.StartDate)
	setIf(&project.EndDate, p.EndDate)
	setIf(&project.Manager, p.Manager)
	setIf(&project.Image, p.Image)
	setIf(&project.TeamSize, p.TeamSize)
	setIf(&project.Tasks, p.Tasks)
	setIf(&project.AIAnalysis, p.AIAnalysis)
}

func (p ProjectPatch) fields() map[string]any {
	fields := map[string]any{}
	putIf(fields, "name", p.Name)
	putIf(fields, "code", p.Code)
	putIf(fields, "description", p.Description)
	putIf(fields, "location", p.Location)
	putIf(fields, "type", p.Type)
	putIf(fields, "status", p.Status)
	putIf(fields, "health", p.Health)
	putIf(fields, "progress", p.Progress)
	putIf(fields, "budget", p.Budget)
	putIf(fields, "spent", p.Spent)
	putIf(fields, "startDate", p.StartDate)
	putIf(fields, "endDate", p.EndDate)
	putIf(fields, "manager", p.Manager)
	putIf(fields, "image", p.Image)
	putIf(fields, "teamSize", p.TeamSize)
	putIf(fields, "tasks", p.Tasks)
	putIf(fields, "aiAnalysis", p.AIAnalysis)
	return fields
}

// TaskPatch is a partial update to a task.
type TaskPatch struct {
	Title        *string
	ProjectID    *string
	Status       *domain.TaskStatus
	Priority     *domain.TaskPriority
	AssigneeID   *string
	AssigneeName *string
	AssigneeType *domain.AssigneeType
	DueDate      *string
	Description  *string
}

func (p TaskPatch) apply(task *domain.Task) {
	setIf(&task.Title, p.Title)
	setIf(&task.ProjectID, p.ProjectID)
	setIf(&task.Status, p.Status)
	setIf(&task.Priority, p.Priority)
	setIf(&task.AssigneeID, p.AssigneeID)
	setIf(&task.AssigneeName, p.AssigneeName)
	setIf(&task.AssigneeType, p.AssigneeType)
	setIf(&task.DueDate, p.DueDate)
	setIf(&task.Description, p.Description)
}

func (p TaskPatch) fields() map[string]any {
	fields := map[string]any{}
	putIf(fields, "title", p.Title)
	putIf(fields, "projectId", p.ProjectID)
	putIf(fields, "status", p.Status)
	putIf(fields, "priority", p.Priority)
	putIf(fields, "assigneeId", p.AssigneeID)
	putIf(fields, "assigneeName", p.AssigneeName)
	putIf(fields, "assigneeType", p.AssigneeType)
	putIf(fields, "dueDate", p.DueDate)
	putIf(fields, "description", p.Description)
	return fields
}

// InventoryPatch is a partial update to a stock item. When Stock or
// Threshold changes and Status is not set explicitly, the status is
// re-derived from the resulting levels.
type InventoryPatch struct {
	Name          *string
	Category      *string
	Stock         *int
	Unit          *string
	Threshold     *int
	Location      *string
	Status        *domain.StockStatus
	LastOrderDate *string
	CostPerUnit   *float64
}

func (p InventoryPatch) apply(item *domain.InventoryItem) {
	setIf(&item.Name, p.Name)
	setIf(&item.Category, p.Category)
	setIf(&item.Stock, p.Stock)
	setIf(&item.Unit, p.Unit)
	setIf(&item.Threshold, p.Threshold)
	setIf(&item.Location, p.Location)
	setIf(&item.Status, p.Status)
	setIf(&item.LastOrderDate, p.LastOrderDate)
	setIf(&item.CostPerUnit, p.CostPerUnit)
	if p.Status == nil && (p.Stock != nil || p.Threshold != nil) {
		item.Status = domain.StockStatusFor(item.Stock, item.Threshold)
	}
}

func (p InventoryPatch) fields(derived domain.StockStatus) map[string]any {
	fields := map[string]any{}
	putIf(fields, "name", p.Name)
	putIf(fields, "category", p.Category)
	putIf(fields, "stock", p.Stock)
	putIf(fields, "unit", p.Unit)
	putIf(fields, "threshold", p.Threshold)
	putIf(fields, "location", p.Location)
	putIf(fields, "lastOrderDate", p.LastOrderDate)
	putIf(fields, "costPerUnit", p.CostPerUnit)
	if p.Status != nil {
		fields["status"] = *p.Status
	} else if p.Stock != nil || p.Threshold != nil {
		fields["status"] = derived
	}
	return fields
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func putIf[T any](fields map[string]any, key string, value *T) {
	if value != nil {
		fields[key] = *value
	}
}
