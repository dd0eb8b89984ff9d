package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"backoffice/internal/kvstore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func purchaseRouter(db *gorm.DB) (*gin.Engine, *kvstore.Store) {
	gin.SetMode(gin.TestMode)
	kv := kvstore.New(db)
	h := NewPurchaseHandler(kv)
	r := gin.New()
	r.GET("/purchases", h.List)
	r.POST("/purchases", h.Create)
	return r, kv
}

func decodePurchases(t *testing.T, body []byte) []PurchaseRecord {
	t.Helper()
	var envelope struct {
		Data struct {
			Items []PurchaseRecord `json:"items"`
			Total int              `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope.Data.Items
}

func TestListPurchases_SeedFallback(t *testing.T) {
	db := setupTestDB(t)
	r, _ := purchaseRouter(db)

	// nothing stored yet: the built-in seed rows come back
	w := doJSON(t, r, "GET", "/purchases", nil)
	require.Equal(t, http.StatusOK, w.Code)

	items := decodePurchases(t, w.Body.Bytes())
	require.Len(t, items, 3)
	assert.Equal(t, "P-1001", items[0].ID)
	assert.Equal(t, "Electro Parts Co.", items[0].Supplier)
}

func TestListPurchases_MalformedBlobFallsBack(t *testing.T) {
	db := setupTestDB(t)
	r, kv := purchaseRouter(db)

	require.NoError(t, kv.Set(PurchasesKey, "{not json"))

	w := doJSON(t, r, "GET", "/purchases", nil)
	require.Equal(t, http.StatusOK, w.Code)

	items := decodePurchases(t, w.Body.Bytes())
	require.Len(t, items, 3)
	assert.Equal(t, "P-1001", items[0].ID)
}

func TestCreatePurchase_PersistsWholeList(t *testing.T) {
	db := setupTestDB(t)
	r, kv := purchaseRouter(db)

	w := doJSON(t, r, "POST", "/purchases", gin.H{
		"date":        "2025-02-01",
		"supplier":    "MetalWorks Ltd.",
		"product":     "Steel Plates",
		"quantity":    10,
		"totalAmount": 4500.0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// the new row is prepended and the full list (seed included) is
	// written back as one blob
	var stored []PurchaseRecord
	ok, err := kv.GetJSON(PurchasesKey, &stored)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, stored, 4)
	assert.Equal(t, "MetalWorks Ltd.", stored[0].Supplier)
	assert.Equal(t, 4500.0, stored[0].TotalAmount)
	assert.Equal(t, "P-", stored[0].ID[:2])
	assert.Equal(t, "P-1001", stored[1].ID)

	// and the list endpoint reads it back
	w = doJSON(t, r, "GET", "/purchases", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decodePurchases(t, w.Body.Bytes())
	require.Len(t, items, 4)
}

func TestCreatePurchase_Invalid(t *testing.T) {
	db := setupTestDB(t)
	r, _ := purchaseRouter(db)

	w := doJSON(t, r, "POST", "/purchases", gin.H{
		"date":        "01-02-2025",
		"supplier":    "MetalWorks Ltd.",
		"product":     "Steel Plates",
		"quantity":    10,
		"totalAmount": 4500.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
