package models

import "time"

// Sale is a plain sales row (no installment linkage).
type Sale struct {
	ID        string  `gorm:"primaryKey;size:32"` // S-<unix-ms>
	Date      string  `gorm:"size:10;index;not null"`
	Customer  string  `gorm:"size:128;not null"`
	Product   string  `gorm:"size:128;not null"`
	Quantity  int     `gorm:"not null"`
	Total     float64 `gorm:"not null"`
	CreatedAt time.Time
}
