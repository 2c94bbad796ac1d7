package domain

// DocumentType is the file format category of a project document.
type DocumentType string

const (
	DocPDF         DocumentType = "PDF"
	DocSpreadsheet DocumentType = "Spreadsheet"
	DocDocument    DocumentType = "Document"
	DocImage       DocumentType = "Image"
	DocCAD         DocumentType = "CAD"
	DocOther       DocumentType = "Other"
)

// DocumentStatus is the review state of a document.
type DocumentStatus string

const (
	DocApproved DocumentStatus = "Approved"
	DocPending  DocumentStatus = "Pending"
	DocDraft    DocumentStatus = "Draft"
)

// ProjectDocument is a file attached to a project. ProjectName is a
// denormalized copy taken at write time.
type ProjectDocument struct {
	ID          string         `json:"id"`
	Name        string         `json:"name" validate:"required"`
	Type        DocumentType   `json:"type" validate:"required,oneof=PDF Spreadsheet Document Image CAD Other"`
	ProjectID   string         `json:"projectId" validate:"required"`
	ProjectName string         `json:"projectName,omitempty"`
	Size        string         `json:"size"`
	Date        string         `json:"date"`
	Status      DocumentStatus `json:"status" validate:"required,oneof=Approved Pending Draft"`
	URL         string         `json:"url,omitempty"`
}
