package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"backoffice/internal/models"
	"backoffice/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InventoryHandler serves the Inventory screen. Stock status is always
// derived from the quantity on write, never accepted from the client.
type InventoryHandler struct {
	DB *gorm.DB
}

func NewInventoryHandler(db *gorm.DB) *InventoryHandler {
	return &InventoryHandler{DB: db}
}

type inventoryReq struct {
	SKU      string `json:"sku" binding:"required,max=32"`
	Name     string `json:"name" binding:"required,max=128"`
	Location string `json:"location" binding:"max=64"`
	Quantity int    `json:"quantity"`
}

type inventoryResp struct {
	ID          uint   `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
	LastUpdated string `json:"last_updated"`
}

func toInventoryResp(it *models.InventoryItem) inventoryResp {
	return inventoryResp{
		ID:          it.ID,
		SKU:         it.SKU,
		Name:        it.Name,
		Location:    it.Location,
		Quantity:    it.Quantity,
		Status:      it.Status,
		LastUpdated: it.LastUpdated,
	}
}

func (h *InventoryHandler) List(c *gin.Context) {
	base := h.DB.Model(&models.InventoryItem{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("sku LIKE ? OR name LIKE ? OR location LIKE ?", like, like, like)
	}

	var items []models.InventoryItem
	if err := base.Order("id ASC").Find(&items).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	resp := make([]inventoryResp, 0, len(items))
	for i := range items {
		resp = append(resp, toInventoryResp(&items[i]))
	}

	util.Success(c, util.Response{
		"items": resp,
		"total": len(resp),
	})
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req inventoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if req.Quantity < 0 {
		req.Quantity = 0
	}

	item := models.InventoryItem{
		SKU:         strings.TrimSpace(req.SKU),
		Name:        strings.TrimSpace(req.Name),
		Location:    req.Location,
		Quantity:    req.Quantity,
		Status:      models.StockStatus(req.Quantity),
		LastUpdated: time.Now().Format("2006-01-02"),
	}

	if err := h.DB.Create(&item).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"item": toInventoryResp(&item),
	})
}

type adjustQuantityReq struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity sets the stock level of an item and re-derives its
// status.
func (h *InventoryHandler) UpdateQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	var req adjustQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if req.Quantity < 0 {
		req.Quantity = 0
	}

	var item models.InventoryItem
	if err := h.DB.First(&item, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "item not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	item.Quantity = req.Quantity
	item.Status = models.StockStatus(req.Quantity)
	item.LastUpdated = time.Now().Format("2006-01-02")

	if err := h.DB.Save(&item).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"item": toInventoryResp(&item),
	})
}
