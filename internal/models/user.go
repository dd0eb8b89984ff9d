package models

import "time"

// User is an access-management account. Rows double as login accounts
// and as the records shown on the Access screen.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:64;uniqueIndex;not null"`
	Email        string `gorm:"size:128"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:32"`       // Administrator / Manager / Operator
	Status       string `gorm:"size:16;index"` // active / inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time

	FailedLoginAttempts int        `gorm:"default:0"`
	LockedUntil         *time.Time `gorm:"index"`
	LastLoginAt         *time.Time
	LastLoginIP         string `gorm:"size:64"`
}
