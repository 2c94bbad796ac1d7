package domain

// MemberStatus is a team member's current whereabouts.
type MemberStatus string

const (
	MemberOnSite  MemberStatus = "On Site"
	MemberOffSite MemberStatus = "Off Site"
	MemberOnBreak MemberStatus = "On Break"
	MemberOnLeave MemberStatus = "Leave"
)

// CertificationStatus is stored as written; it is not derived from the
// certificate dates. Whoever writes a certification keeps it consistent.
type CertificationStatus string

const (
	CertValid    CertificationStatus = "Valid"
	CertExpiring CertificationStatus = "Expiring"
	CertExpired  CertificationStatus = "Expired"
)

// Certification is a professional credential held by a team member.
type Certification struct {
	Name       string              `json:"name" validate:"required"`
	Issuer     string              `json:"issuer"`
	IssueDate  string              `json:"issueDate"`
	ExpiryDate string              `json:"expiryDate"`
	Status     CertificationStatus `json:"status" validate:"required,oneof=Valid Expiring Expired"`
	DocURL     string              `json:"docUrl,omitempty"`
}

// TeamMember is a person on the workforce roster. ProjectID/ProjectName is
// the denormalized current assignment; members without one are only visible
// to administrators.
type TeamMember struct {
	ID                string          `json:"id"`
	Name              string          `json:"name" validate:"required"`
	Initials          string          `json:"initials"`
	Role              string          `json:"role"`
	Status            MemberStatus    `json:"status" validate:"required,oneof='On Site' 'Off Site' 'On Break' Leave"`
	ProjectID         string          `json:"projectId,omitempty"`
	ProjectName       string          `json:"projectName,omitempty"`
	Phone             string          `json:"phone"`
	Email             string          `json:"email"`
	Color             string          `json:"color"`
	Bio               string          `json:"bio,omitempty"`
	Location          string          `json:"location,omitempty"`
	JoinDate          string          `json:"joinDate,omitempty"`
	Skills            []string        `json:"skills,omitempty"`
	Certifications    []Certification `json:"certifications,omitempty" validate:"dive"`
	PerformanceRating int             `json:"performanceRating,omitempty" validate:"gte=0,lte=100"`
	CompletedProjects int             `json:"completedProjects,omitempty"`
	HourlyRate        float64         `json:"hourlyRate,omitempty"`
}
