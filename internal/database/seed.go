package database

import (
	"fmt"

	"backoffice/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed inserts the built-in demo records the console ships with. Each
// table is only seeded when empty, so restarts never duplicate rows.
func Seed(db *gorm.DB, seedPassword string, bcryptCost int) error {
	if seedPassword == "" {
		seedPassword = "ChangeMe123"
	}
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	var count int64

	if db.Model(&models.User{}).Count(&count); count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcryptCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		users := []models.User{
			{Username: "admin", Email: "admin@company.com", Role: "Administrator", Status: "active", PasswordHash: string(hash)},
			{Username: "manager1", Email: "manager1@company.com", Role: "Manager", Status: "active", PasswordHash: string(hash)},
			{Username: "operator1", Email: "operator1@company.com", Role: "Operator", Status: "inactive", PasswordHash: string(hash)},
		}
		if err := db.Create(&users).Error; err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}

	if db.Model(&models.Supplier{}).Count(&count); count == 0 {
		suppliers := []models.Supplier{
			{Name: "ABC Manufacturing Co.", Branch: "Branch A", Contact: "John Smith", Email: "john@abc.com", Phone: "+1-555-0123", Status: "active", LastUpdated: "2024-01-15"},
			{Name: "XYZ Electronics Ltd.", Branch: "Branch B", Contact: "Sarah Johnson", Email: "sarah@xyz.com", Phone: "+1-555-0456", Status: "active", LastUpdated: "2024-01-14"},
			{Name: "Tech Solutions Inc.", Branch: "Branch C", Contact: "Mike Brown", Email: "mike@tech.com", Phone: "+1-555-0789", Status: "inactive", LastUpdated: "2024-01-13"},
		}
		if err := db.Create(&suppliers).Error; err != nil {
			return fmt.Errorf("seed suppliers: %w", err)
		}
	}

	if db.Model(&models.Product{}).Count(&count); count == 0 {
		products := []models.Product{
			{SKU: "SKU-001", Name: "Electronic Component A", Model: "EC-A-2024", Category: "Electronics", ImageURL: "https://example.com/image1.jpg", TISI: "TISI-001", LastUpdated: "2024-01-15"},
			{SKU: "SKU-002", Name: "Mechanical Part B", Model: "MP-B-2024", Category: "Mechanical", ImageURL: "https://example.com/image2.jpg", TISI: "TISI-002", LastUpdated: "2024-01-14"},
			{SKU: "SKU-003", Name: "Chemical Material C", Model: "CM-C-2024", Category: "Chemical", ImageURL: "https://example.com/image3.jpg", TISI: "TISI-003", LastUpdated: "2024-01-13"},
		}
		if err := db.Create(&products).Error; err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
	}

	if db.Model(&models.Customer{}).Count(&count); count == 0 {
		customers := []models.Customer{
			{Name: "John Smith", Email: "john.smith@acme.com", Phone: "+1-555-0123", Company: "Acme Corporation", Address: "123 Business St, City, State 12345", Status: "active", LastContact: "2025-01-15"},
			{Name: "Jane Doe", Email: "jane.doe@techcorp.com", Phone: "+1-555-0456", Company: "Tech Corp", Address: "456 Tech Ave, City, State 12345", Status: "active", LastContact: "2025-01-14"},
		}
		if err := db.Create(&customers).Error; err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
	}

	if db.Model(&models.InventoryItem{}).Count(&count); count == 0 {
		items := []models.InventoryItem{
			{SKU: "SKU-001", Name: "Electronic Component A", Location: "Warehouse A", Quantity: 120, Status: models.StockStatus(120), LastUpdated: "2025-01-10"},
		}
		if err := db.Create(&items).Error; err != nil {
			return fmt.Errorf("seed inventory: %w", err)
		}
	}

	if db.Model(&models.Sale{}).Count(&count); count == 0 {
		sales := []models.Sale{
			{ID: "S-1001", Date: "2025-01-15", Customer: "Acme Co.", Product: "Electronic Component A", Quantity: 10, Total: 2500},
		}
		if err := db.Create(&sales).Error; err != nil {
			return fmt.Errorf("seed sales: %w", err)
		}
	}

	if db.Model(&models.InstallmentPlan{}).Count(&count); count == 0 {
		plans := []models.InstallmentPlan{
			{
				ID: "I-1001", Side: models.SideSales,
				Counterparty: "Acme Co.", Item: "Electronic Component A",
				Principal: 5000, PaidAmount: 1500, RemainingAmount: 3500,
				PeriodCount: 5, PaidPeriods: 1, PeriodAmount: 1000,
				StartDate: "2025-01-15", EndDate: "2025-05-15",
				Status: models.PlanActive, NextPaymentDate: "2025-02-15",
			},
			{
				ID: "PI-1001", Side: models.SidePurchase,
				Counterparty: "Electro Parts Co.", Item: "Capacitor Pack",
				Principal: 8000, PaidAmount: 2000, RemainingAmount: 6000,
				PeriodCount: 8, PaidPeriods: 2, PeriodAmount: 1000,
				StartDate: "2025-01-01", EndDate: "2025-08-01",
				Status: models.PlanActive, NextPaymentDate: "2025-03-01",
			},
		}
		if err := db.Create(&plans).Error; err != nil {
			return fmt.Errorf("seed installment plans: %w", err)
		}
	}

	return nil
}
