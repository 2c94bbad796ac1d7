package domain

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskToDo       TaskStatus = "To Do"
	TaskInProgress TaskStatus = "In Progress"
	TaskDone       TaskStatus = "Done"
	TaskBlocked    TaskStatus = "Blocked"
)

// TaskPriority orders tasks for display.
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "High"
	PriorityMedium TaskPriority = "Medium"
	PriorityLow    TaskPriority = "Low"
)

// AssigneeType discriminates whether AssigneeName denotes a specific person
// or a role/group label such as "All Operatives".
type AssigneeType string

const (
	AssigneeUser AssigneeType = "user"
	AssigneeRole AssigneeType = "role"
)

// Task is a unit of work tied to a project. ProjectID is a soft reference;
// it is not checked against the project collection.
type Task struct {
	ID           string       `json:"id"`
	Title        string       `json:"title" validate:"required"`
	ProjectID    string       `json:"projectId" validate:"required"`
	Status       TaskStatus   `json:"status" validate:"required,oneof='To Do' 'In Progress' Done Blocked"`
	Priority     TaskPriority `json:"priority" validate:"required,oneof=High Medium Low"`
	AssigneeID   string       `json:"assigneeId,omitempty"`
	AssigneeName string       `json:"assigneeName,omitempty"`
	AssigneeType AssigneeType `json:"assigneeType" validate:"required,oneof=user role"`
	DueDate      string       `json:"dueDate"`
	Description  string       `json:"description,omitempty"`
}
