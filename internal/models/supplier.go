package models

import "time"

// Supplier represents a goods supplier record on the Suppliers screen.
type Supplier struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:128;not null"`
	Branch      string `gorm:"size:64"`
	Contact     string `gorm:"size:64"`
	Email       string `gorm:"size:128"`
	Phone       string `gorm:"size:32"`
	Status      string `gorm:"size:16;index"` // active / inactive
	LastUpdated string `gorm:"size:10"`       // YYYY-MM-DD
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
