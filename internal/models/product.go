package models

import "time"

// Product is a catalog item. TISI is the Thai Industrial Standards
// Institute certification number.
type Product struct {
	ID          uint   `gorm:"primaryKey"`
	SKU         string `gorm:"size:32;uniqueIndex;not null"`
	Name        string `gorm:"size:128;not null"`
	Model       string `gorm:"size:64"`
	Category    string `gorm:"size:64;index"`
	ImageURL    string `gorm:"size:255"`
	TISI        string `gorm:"size:32"`
	LastUpdated string `gorm:"size:10"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
