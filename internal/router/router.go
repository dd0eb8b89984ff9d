package router

import (
	"backoffice/internal/config"
	"backoffice/internal/handler"
	"backoffice/internal/kvstore"
	"backoffice/internal/logger"
	"backoffice/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires the JSON API. The console is API-only; there is no
// template or static-file serving here.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(logger.WithComponent("http")), gin.Recovery())

	kv := kvstore.New(db)

	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret

	// no auth required
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.JWT.ExpireHours)
	api.POST("/auth/login", authHandler.Login)

	languageHandler := handler.NewLanguageHandler(kv)
	api.GET("/language", languageHandler.Get)
	api.GET("/translations/:lang", languageHandler.Translations)

	// everything below requires a valid session
	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(jwtSecret, db),
		middleware.AuditMiddleware(db),
	)

	protected.POST("/auth/logout", authHandler.Logout)
	protected.PUT("/language", languageHandler.Set)

	userHandler := handler.NewUserHandler(db, cfg.Security.BcryptCost)
	protected.GET("/me", userHandler.Me)
	protected.POST("/me/password", userHandler.ChangePassword)
	protected.GET("/users", userHandler.List)
	protected.POST("/users", userHandler.Create)
	protected.PUT("/users/:id", userHandler.Update)
	protected.DELETE("/users/:id", userHandler.Delete)

	dashboardHandler := handler.NewDashboardHandler(db)
	protected.GET("/dashboard", dashboardHandler.Summary)

	salesInstallments := handler.NewSalesInstallmentHandler(db)
	protected.GET("/installments/sales", salesInstallments.List)
	protected.POST("/installments/sales", salesInstallments.Create)
	protected.PUT("/installments/sales/:id", salesInstallments.Update)
	protected.POST("/installments/sales/:id/payments", salesInstallments.RecordPayment)
	protected.DELETE("/installments/sales/:id", salesInstallments.Delete)

	purchaseInstallments := handler.NewPurchaseInstallmentHandler(db)
	protected.GET("/installments/purchase", purchaseInstallments.List)
	protected.POST("/installments/purchase", purchaseInstallments.Create)
	protected.PUT("/installments/purchase/:id", purchaseInstallments.Update)
	protected.POST("/installments/purchase/:id/payments", purchaseInstallments.RecordPayment)
	protected.DELETE("/installments/purchase/:id", purchaseInstallments.Delete)

	supplierHandler := handler.NewSupplierHandler(db)
	protected.GET("/suppliers", supplierHandler.List)
	protected.POST("/suppliers", supplierHandler.Create)
	protected.PUT("/suppliers/:id", supplierHandler.Update)
	protected.DELETE("/suppliers/:id", supplierHandler.Delete)

	productHandler := handler.NewProductHandler(db)
	protected.GET("/products", productHandler.List)
	protected.POST("/products", productHandler.Create)
	protected.PUT("/products/:id", productHandler.Update)
	protected.DELETE("/products/:id", productHandler.Delete)

	customerHandler := handler.NewCustomerHandler(db)
	protected.GET("/customers", customerHandler.List)
	protected.POST("/customers", customerHandler.Create)
	protected.PUT("/customers/:id", customerHandler.Update)
	protected.DELETE("/customers/:id", customerHandler.Delete)

	inventoryHandler := handler.NewInventoryHandler(db)
	protected.GET("/inventory", inventoryHandler.List)
	protected.POST("/inventory", inventoryHandler.Create)
	protected.PUT("/inventory/:id/quantity", inventoryHandler.UpdateQuantity)

	saleHandler := handler.NewSaleHandler(db)
	protected.GET("/sales", saleHandler.List)
	protected.POST("/sales", saleHandler.Create)

	purchaseHandler := handler.NewPurchaseHandler(kv)
	protected.GET("/purchases", purchaseHandler.List)
	protected.POST("/purchases", purchaseHandler.Create)

	exportHandler := handler.NewExportHandler(db, kv)
	protected.GET("/export/installments.xlsx", exportHandler.ExportInstallmentsXLSX)
	protected.GET("/export/purchases.csv", exportHandler.ExportPurchasesCSV)

	return r
}
