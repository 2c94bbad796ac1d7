package domain

// StockStatus is the availability state of an inventory item.
type StockStatus string

const (
	StockIn  StockStatus = "In Stock"
	StockLow StockStatus = "Low Stock"
	StockOut StockStatus = "Out of Stock"
)

// StockStatusFor derives the status for a stock level against its reorder
// threshold. Item creation always applies it, overriding any caller-supplied
// status; updates apply it whenever stock or threshold changes unless the
// patch sets the status explicitly.
func StockStatusFor(stock, threshold int) StockStatus {
	switch {
	case stock == 0:
		return StockOut
	case stock <= threshold:
		return StockLow
	default:
		return StockIn
	}
}

// InventoryItem is a stocked material or piece of equipment. ID is a
// human-readable SKU such as "INV-001" rather than a surrogate key.
type InventoryItem struct {
	ID            string      `json:"id"`
	Name          string      `json:"name" validate:"required"`
	Category      string      `json:"category"`
	Stock         int         `json:"stock" validate:"gte=0"`
	Unit          string      `json:"unit"`
	Threshold     int         `json:"threshold" validate:"gte=0"`
	Location      string      `json:"location"`
	Status        StockStatus `json:"status"`
	LastOrderDate string      `json:"lastOrderDate,omitempty"`
	CostPerUnit   float64     `json:"costPerUnit,omitempty"`
}
