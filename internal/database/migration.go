package database

import (
	"fmt"

	"backoffice/internal/kvstore"
	"backoffice/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Supplier{},
		&models.Product{},
		&models.Customer{},
		&models.InventoryItem{},
		&models.Sale{},
		&models.InstallmentPlan{},
		&models.AuditLog{},
		&kvstore.Entry{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
