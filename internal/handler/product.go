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

// ProductHandler serves the Products screen.
type ProductHandler struct {
	DB *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{DB: db}
}

type productReq struct {
	SKU      string `json:"sku" binding:"required,max=32"`
	Name     string `json:"name" binding:"required,max=128"`
	Model    string `json:"model" binding:"max=64"`
	Category string `json:"category" binding:"max=64"`
	ImageURL string `json:"image_url" binding:"max=255"`
	TISI     string `json:"tisi" binding:"max=32"`
}

type productResp struct {
	ID          uint   `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Model       string `json:"model"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	TISI        string `json:"tisi"`
	LastUpdated string `json:"last_updated"`
}

func toProductResp(p *models.Product) productResp {
	return productResp{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Model:       p.Model,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		TISI:        p.TISI,
		LastUpdated: p.LastUpdated,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if size <= 0 || size > 100 {
		size = 20
	}

	base := h.DB.Model(&models.Product{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("sku LIKE ? OR name LIKE ? OR category LIKE ?", like, like, like)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	var products []models.Product
	if err := base.Session(&gorm.Session{}).
		Order("id ASC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&products).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	items := make([]productResp, 0, len(products))
	for i := range products {
		items = append(items, toProductResp(&products[i]))
	}

	util.Success(c, util.Response{
		"items": items,
		"total": total,
		"page":  page,
		"size":  size,
	})
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	// SKUs are unique across the catalog
	var count int64
	if err := h.DB.Model(&models.Product{}).Where("sku = ?", req.SKU).Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "sku already exists")
		return
	}

	product := models.Product{
		SKU:         strings.TrimSpace(req.SKU),
		Name:        strings.TrimSpace(req.Name),
		Model:       req.Model,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		TISI:        req.TISI,
		LastUpdated: time.Now().Format("2006-01-02"),
	}

	if err := h.DB.Create(&product).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"product": toProductResp(&product),
	})
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "product not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	product.SKU = strings.TrimSpace(req.SKU)
	product.Name = strings.TrimSpace(req.Name)
	product.Model = req.Model
	product.Category = req.Category
	product.ImageURL = req.ImageURL
	product.TISI = req.TISI
	product.LastUpdated = time.Now().Format("2006-01-02")

	if err := h.DB.Save(&product).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"product": toProductResp(&product),
	})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	if err := h.DB.Delete(&models.Product{}, id).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete failed")
		return
	}

	util.Success(c, util.Response{
		"message": "deleted",
	})
}
