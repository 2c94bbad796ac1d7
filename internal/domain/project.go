package domain

// ProjectType classifies the kind of construction work.
type ProjectType string

const (
	TypeCommercial     ProjectType = "Commercial"
	TypeResidential    ProjectType = "Residential"
	TypeInfrastructure ProjectType = "Infrastructure"
	TypeIndustrial     ProjectType = "Industrial"
	TypeHealthcare     ProjectType = "Healthcare"
)

// ProjectStatus is the delivery state of a project.
type ProjectStatus string

const (
	StatusActive    ProjectStatus = "Active"
	StatusPlanning  ProjectStatus = "Planning"
	StatusDelayed   ProjectStatus = "Delayed"
	StatusCompleted ProjectStatus = "Completed"
	StatusOnHold    ProjectStatus = "On Hold"
)

// ProjectHealth is a coarse risk indicator.
type ProjectHealth string

const (
	HealthGood     ProjectHealth = "Good"
	HealthAtRisk   ProjectHealth = "At Risk"
	HealthCritical ProjectHealth = "Critical"
)

// ZoneType tags a site zone for display.
type ZoneType string

const (
	ZoneDanger  ZoneType = "danger"
	ZoneWarning ZoneType = "warning"
	ZoneSuccess ZoneType = "success"
	ZoneInfo    ZoneType = "info"
)

// Zone is a labeled rectangular region on a project site plan.
type Zone struct {
	ID       string   `json:"id"`
	Label    string   `json:"label" validate:"required"`
	Type     ZoneType `json:"type" validate:"required,oneof=danger warning success info"`
	Top      float64  `json:"top"`
	Left     float64  `json:"left"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Protocol string   `json:"protocol,omitempty"`
	Trigger  string   `json:"trigger,omitempty"`
}

// TaskStats is the denormalized task counter embedded in a project.
// Total is incremented on task creation only; it is a display-grade counter
// and is never recomputed from the task collection.
type TaskStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
}

// WeatherSnapshot is a display-only weather stamp for the project location.
type WeatherSnapshot struct {
	City      string `json:"city"`
	Temp      string `json:"temp"`
	Condition string `json:"condition"`
}

// Project is a construction project.
type Project struct {
	ID          string           `json:"id"`
	Name        string           `json:"name" validate:"required"`
	Code        string           `json:"code"`
	Description string           `json:"description"`
	Location    string           `json:"location"`
	Type        ProjectType      `json:"type" validate:"required,oneof=Commercial Residential Infrastructure Industrial Healthcare"`
	Status      ProjectStatus    `json:"status" validate:"required,oneof=Active Planning Delayed Completed 'On Hold'"`
	Health      ProjectHealth    `json:"health" validate:"required,oneof=Good 'At Risk' Critical"`
	Progress    int              `json:"progress" validate:"gte=0,lte=100"`
	Budget      float64          `json:"budget"`
	Spent       float64          `json:"spent"`
	StartDate   string           `json:"startDate"`
	EndDate     string           `json:"endDate"`
	Manager     string           `json:"manager"`
	Image       string           `json:"image"`
	TeamSize    int              `json:"teamSize"`
	Tasks       TaskStats        `json:"tasks"`
	Weather     *WeatherSnapshot `json:"weatherLocation,omitempty"`
	AIAnalysis  string           `json:"aiAnalysis,omitempty"`
	Zones       []Zone           `json:"zones,omitempty"`
}
