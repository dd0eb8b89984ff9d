package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backoffice/internal/kvstore"
	"backoffice/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Supplier{},
		&models.Product{},
		&models.Customer{},
		&models.InventoryItem{},
		&models.Sale{},
		&models.InstallmentPlan{},
		&kvstore.Entry{},
	))
	return db
}

func installmentRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	sales := NewSalesInstallmentHandler(db)
	r.GET("/installments/sales", sales.List)
	r.POST("/installments/sales", sales.Create)
	r.PUT("/installments/sales/:id", sales.Update)
	r.POST("/installments/sales/:id/payments", sales.RecordPayment)
	r.DELETE("/installments/sales/:id", sales.Delete)

	purchase := NewPurchaseInstallmentHandler(db)
	r.GET("/installments/purchase", purchase.List)
	r.POST("/installments/purchase", purchase.Create)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodePlan(t *testing.T, w *httptest.ResponseRecorder) models.InstallmentPlan {
	t.Helper()
	var envelope struct {
		Code int `json:"code"`
		Data struct {
			Plan models.InstallmentPlan `json:"plan"`
			Paid *bool                  `json:"paid"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, 0, envelope.Code)
	return envelope.Data.Plan
}

func TestCreateInstallmentPlan(t *testing.T) {
	db := setupTestDB(t)
	r := installmentRouter(db)

	w := doJSON(t, r, "POST", "/installments/sales", gin.H{
		"counterparty": "Acme Co.",
		"item":         "Industrial Printer",
		"principal":    5000.0,
		"period_count": 5,
		"start_date":   "2025-01-15",
	})
	require.Equal(t, http.StatusOK, w.Code)

	plan := decodePlan(t, w)
	assert.True(t, len(plan.ID) > 2 && plan.ID[:2] == "I-")
	assert.Equal(t, 1000.0, plan.PeriodAmount)
	assert.Equal(t, 5000.0, plan.RemainingAmount)
	assert.Equal(t, 0.0, plan.PaidAmount)
	assert.Equal(t, 0, plan.PaidPeriods)
	assert.Equal(t, "2025-05-15", plan.EndDate)
	assert.Equal(t, "2025-02-15", plan.NextPaymentDate)
	assert.Equal(t, models.PlanActive, plan.Status)

	// the purchase book gets its own prefix
	w = doJSON(t, r, "POST", "/installments/purchase", gin.H{
		"counterparty": "Electro Parts Co.",
		"item":         "Capacitors",
		"principal":    8000.0,
		"period_count": 8,
		"start_date":   "2025-02-01",
	})
	require.Equal(t, http.StatusOK, w.Code)
	plan = decodePlan(t, w)
	assert.Equal(t, "PI-", plan.ID[:3])
}

func TestCreateInstallmentPlan_Invalid(t *testing.T) {
	db := setupTestDB(t)
	r := installmentRouter(db)

	// missing counterparty fails binding
	w := doJSON(t, r, "POST", "/installments/sales", gin.H{
		"item":         "Printer",
		"principal":    1000.0,
		"period_count": 4,
		"start_date":   "2025-01-15",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// malformed date passes binding but fails the engine
	w = doJSON(t, r, "POST", "/installments/sales", gin.H{
		"counterparty": "Acme Co.",
		"item":         "Printer",
		"principal":    1000.0,
		"period_count": 4,
		"start_date":   "15/01/2025",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordPayment_ToCompletion(t *testing.T) {
	db := setupTestDB(t)
	r := installmentRouter(db)

	w := doJSON(t, r, "POST", "/installments/sales", gin.H{
		"counterparty": "Acme Co.",
		"item":         "Printer",
		"principal":    5000.0,
		"period_count": 5,
		"start_date":   "2025-01-15",
	})
	require.Equal(t, http.StatusOK, w.Code)
	plan := decodePlan(t, w)

	payURL := fmt.Sprintf("/installments/sales/%s/payments", plan.ID)

	for i := 1; i <= 5; i++ {
		w = doJSON(t, r, "POST", payURL, nil)
		require.Equal(t, http.StatusOK, w.Code)
		plan = decodePlan(t, w)
		assert.Equal(t, i, plan.PaidPeriods)
	}

	assert.Equal(t, models.PlanCompleted, plan.Status)
	assert.Equal(t, 0.0, plan.RemainingAmount)
	assert.Equal(t, 5000.0, plan.PaidAmount)
	assert.Equal(t, "", plan.NextPaymentDate)

	// paying a completed plan changes nothing
	w = doJSON(t, r, "POST", payURL, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Plan models.InstallmentPlan `json:"plan"`
			Paid bool                   `json:"paid"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Data.Paid)
	assert.Equal(t, 5, envelope.Data.Plan.PaidPeriods)
	assert.Equal(t, 5000.0, envelope.Data.Plan.PaidAmount)
}

func TestRecordPayment_AdvancesNextDate(t *testing.T) {
	db := setupTestDB(t)
	r := installmentRouter(db)

	w := doJSON(t, r, "POST", "/installments/sales", gin.H{
		"counterparty": "Acme Co.",
		"item":         "Printer",
		"principal":    3000.0,
		"period_count": 3,
		"start_date":   "2025-01-15",
	})
	require.Equal(t, http.StatusOK, w.Code)
	plan := decodePlan(t, w)
	assert.Equal(t, "2025-02-15", plan.NextPaymentDate)

	w = doJSON(t, r, "POST", fmt.Sprintf("/installments/sales/%s/payments", plan.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	plan = decodePlan(t, w)
	assert.Equal(t, "2025-03-15", plan.NextPaymentDate)
}

func TestRecordPayment_NotFound(t *testing.T) {
	db := setupTestDB(t)
	r := installmentRouter(db)

	w := doJSON(t, r, "POST", "/installments/sales/I-999/payments", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdatePlan_RecomputesDerivedFields(t *testing.T) {
	db := setupTestDB(t)
	r := installmentRouter(db)

	w := doJSON(t, r, "POST", "/installments/sales", gin.H{
		"counterparty": "Acme Co.",
		"item":         "Printer",
		"principal":    5000.0,
		"period_count": 5,
		"start_date":   "2025-01-15",
	})
	require.Equal(t, http.StatusOK, w.Code)
	plan := decodePlan(t, w)

	// two payments, then cut the principal under what is already paid
	payURL := fmt.Sprintf("/installments/sales/%s/payments", plan.ID)
	doJSON(t, r, "POST", payURL, nil)
	doJSON(t, r, "POST", payURL, nil)

	w = doJSON(t, r, "PUT", "/installments/sales/"+plan.ID, gin.H{
		"counterparty": "Acme Co.",
		"item":         "Printer",
		"principal":    1500.0,
		"period_count": 5,
		"start_date":   "2025-01-15",
	})
	require.Equal(t, http.StatusOK, w.Code)
	plan = decodePlan(t, w)

	assert.Equal(t, models.PlanCompleted, plan.Status)
	assert.Equal(t, "", plan.NextPaymentDate)
	assert.Equal(t, 300.0, plan.PeriodAmount)
	assert.InDelta(t, -500.0, plan.RemainingAmount, 1e-9)
}

func TestUpdatePlan_NotFound(t *testing.T) {
	db := setupTestDB(t)
	r := installmentRouter(db)

	w := doJSON(t, r, "PUT", "/installments/sales/I-999", gin.H{
		"counterparty": "Acme Co.",
		"item":         "Printer",
		"principal":    1000.0,
		"period_count": 4,
		"start_date":   "2025-01-15",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePlan_LeavesOthersIntact(t *testing.T) {
	db := setupTestDB(t)
	r := installmentRouter(db)

	var ids []string
	for i := 0; i < 3; i++ {
		// plan IDs are millisecond-stamped; keep them distinct
		time.Sleep(2 * time.Millisecond)
		w := doJSON(t, r, "POST", "/installments/sales", gin.H{
			"counterparty": fmt.Sprintf("Customer %d", i),
			"item":         "Printer",
			"principal":    1000.0,
			"period_count": 4,
			"start_date":   "2025-01-15",
		})
		require.Equal(t, http.StatusOK, w.Code)
		ids = append(ids, decodePlan(t, w).ID)
	}

	w := doJSON(t, r, "DELETE", "/installments/sales/"+ids[1], nil)
	require.Equal(t, http.StatusOK, w.Code)

	var remaining []models.InstallmentPlan
	require.NoError(t, db.Order("id ASC").Find(&remaining).Error)
	require.Len(t, remaining, 2)
	for _, p := range remaining {
		assert.NotEqual(t, ids[1], p.ID)
	}

	// deleting again is a no-op, not an error
	w = doJSON(t, r, "DELETE", "/installments/sales/"+ids[1], nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListPlans_StatusFilterAndSideIsolation(t *testing.T) {
	db := setupTestDB(t)
	r := installmentRouter(db)

	w := doJSON(t, r, "POST", "/installments/sales", gin.H{
		"counterparty": "Acme Co.",
		"item":         "Printer",
		"principal":    1000.0,
		"period_count": 1,
		"start_date":   "2025-01-15",
	})
	require.Equal(t, http.StatusOK, w.Code)
	plan := decodePlan(t, w)

	doJSON(t, r, "POST", "/installments/purchase", gin.H{
		"counterparty": "Electro Parts Co.",
		"item":         "Capacitors",
		"principal":    2000.0,
		"period_count": 2,
		"start_date":   "2025-01-15",
	})

	// complete the sales plan
	doJSON(t, r, "POST", fmt.Sprintf("/installments/sales/%s/payments", plan.ID), nil)

	var list struct {
		Data struct {
			Items []models.InstallmentPlan `json:"items"`
			Total int64                    `json:"total"`
		} `json:"data"`
	}

	w = doJSON(t, r, "GET", "/installments/sales?status=completed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data.Items, 1)
	assert.Equal(t, plan.ID, list.Data.Items[0].ID)

	// the purchase book does not see sales plans
	w = doJSON(t, r, "GET", "/installments/purchase", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data.Items, 1)
	assert.Equal(t, "PI-", list.Data.Items[0].ID[:3])
}
