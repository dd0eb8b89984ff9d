package models

import "time"

// Customer represents a customer contact record.
type Customer struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:128;not null"`
	Email       string `gorm:"size:128"`
	Phone       string `gorm:"size:32"`
	Company     string `gorm:"size:128"`
	Address     string `gorm:"size:255"`
	Status      string `gorm:"size:16;index"` // active / inactive
	LastContact string `gorm:"size:10"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
