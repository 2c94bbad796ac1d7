package domain

// ClientStatus is the relationship state with a client.
type ClientStatus string

const (
	ClientActive   ClientStatus = "Active"
	ClientLead     ClientStatus = "Lead"
	ClientInactive ClientStatus = "Inactive"
)

// ClientTier is the commercial tier of a client account.
type ClientTier string

const (
	TierPlatinum   ClientTier = "Platinum"
	TierGold       ClientTier = "Gold"
	TierSilver     ClientTier = "Silver"
	TierGovernment ClientTier = "Government"
)

// Client is a customer account. ActiveProjects and TotalValue are
// free-standing display fields, not derived from the project collection.
type Client struct {
	ID             string       `json:"id"`
	Name           string       `json:"name" validate:"required"`
	ContactPerson  string       `json:"contactPerson"`
	Role           string       `json:"role"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Status         ClientStatus `json:"status" validate:"required,oneof=Active Lead Inactive"`
	Tier           ClientTier   `json:"tier" validate:"required,oneof=Platinum Gold Silver Government"`
	ActiveProjects int          `json:"activeProjects"`
	TotalValue     string       `json:"totalValue"`
}
