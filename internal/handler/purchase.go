package handler

import (
	"fmt"
	"net/http"
	"time"

	"backoffice/internal/kvstore"
	"backoffice/internal/util"

	"github.com/gin-gonic/gin"
)

// PurchasesKey is the kvstore key holding the purchase collection.
const PurchasesKey = "purchases"

// PurchaseRecord is a plain purchase row. The JSON field names are the
// stored blob format; the whole collection is written as one JSON
// array under PurchasesKey.
type PurchaseRecord struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Supplier    string  `json:"supplier"`
	Product     string  `json:"product"`
	Quantity    int     `json:"quantity"`
	TotalAmount float64 `json:"totalAmount"`
}

// PurchaseHandler serves the Purchase screen. Unlike the other
// entities it persists through the key-value blob store: the list is
// read whole, modified, and written back whole, and a missing or
// malformed blob falls back to the built-in seed rows.
type PurchaseHandler struct {
	KV *kvstore.Store
}

func NewPurchaseHandler(kv *kvstore.Store) *PurchaseHandler {
	return &PurchaseHandler{KV: kv}
}

func defaultPurchases() []PurchaseRecord {
	return []PurchaseRecord{
		{ID: "P-1001", Date: "2025-01-10", Supplier: "Electro Parts Co.", Product: "Capacitor Pack", Quantity: 200, TotalAmount: 8000},
		{ID: "P-1002", Date: "2025-01-12", Supplier: "MetalWorks Ltd.", Product: "Aluminum Housing", Quantity: 50, TotalAmount: 12500},
		{ID: "P-1003", Date: "2025-01-15", Supplier: "ChemTech Supplies", Product: "Solder Flux (1L)", Quantity: 20, TotalAmount: 3000},
	}
}

func (h *PurchaseHandler) load() ([]PurchaseRecord, error) {
	var purchases []PurchaseRecord
	ok, err := h.KV.GetJSON(PurchasesKey, &purchases)
	if err != nil {
		return nil, err
	}
	if !ok {
		return defaultPurchases(), nil
	}
	return purchases, nil
}

// List returns all purchase rows, newest first.
func (h *PurchaseHandler) List(c *gin.Context) {
	purchases, err := h.load()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	util.Success(c, util.Response{
		"items": purchases,
		"total": len(purchases),
	})
}

type createPurchaseReq struct {
	Date        string  `json:"date" binding:"required"`
	Supplier    string  `json:"supplier" binding:"required,max=128"`
	Product     string  `json:"product" binding:"required,max=128"`
	Quantity    int     `json:"quantity"`
	TotalAmount float64 `json:"totalAmount"`
}

// Create prepends a purchase row and rewrites the stored blob.
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req createPurchaseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if err := util.ValidateDate(req.Date); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "date must be YYYY-MM-DD")
		return
	}
	if err := util.ValidateAmount(req.TotalAmount); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid total amount")
		return
	}
	if req.Quantity < 0 {
		req.Quantity = 0
	}

	purchases, err := h.load()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	record := PurchaseRecord{
		ID:          fmt.Sprintf("P-%d", time.Now().UnixMilli()),
		Date:        req.Date,
		Supplier:    req.Supplier,
		Product:     req.Product,
		Quantity:    req.Quantity,
		TotalAmount: req.TotalAmount,
	}
	purchases = append([]PurchaseRecord{record}, purchases...)

	if err := h.KV.SetJSON(PurchasesKey, purchases); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"purchase": record,
	})
}
