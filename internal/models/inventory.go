package models

import "time"

// Inventory item stock states. Status is always derived from the
// quantity, never set directly.
const (
	StockIn  = "in_stock"
	StockLow = "low_stock"
	StockOut = "out_of_stock"
)

// InventoryItem is a stock record on the Inventory screen.
type InventoryItem struct {
	ID          uint   `gorm:"primaryKey"`
	SKU         string `gorm:"size:32;index;not null"`
	Name        string `gorm:"size:128;not null"`
	Location    string `gorm:"size:64"`
	Quantity    int    `gorm:"not null"`
	Status      string `gorm:"size:16;index"`
	LastUpdated string `gorm:"size:10"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StockStatus derives the stock state for a quantity: zero or below is
// out of stock, anything under 20 units is low.
func StockStatus(qty int) string {
	if qty <= 0 {
		return StockOut
	}
	if qty < 20 {
		return StockLow
	}
	return StockIn
}
