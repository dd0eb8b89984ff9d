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

// SupplierHandler serves the Suppliers screen.
type SupplierHandler struct {
	DB *gorm.DB
}

func NewSupplierHandler(db *gorm.DB) *SupplierHandler {
	return &SupplierHandler{DB: db}
}

type supplierReq struct {
	Name    string `json:"name" binding:"required,max=128"`
	Branch  string `json:"branch" binding:"max=64"`
	Contact string `json:"contact" binding:"max=64"`
	Email   string `json:"email" binding:"max=128"`
	Phone   string `json:"phone" binding:"max=32"`
	Status  string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type supplierResp struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Branch      string `json:"branch"`
	Contact     string `json:"contact"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Status      string `json:"status"`
	LastUpdated string `json:"last_updated"`
}

func toSupplierResp(s *models.Supplier) supplierResp {
	return supplierResp{
		ID:          s.ID,
		Name:        s.Name,
		Branch:      s.Branch,
		Contact:     s.Contact,
		Email:       s.Email,
		Phone:       s.Phone,
		Status:      s.Status,
		LastUpdated: s.LastUpdated,
	}
}

// List returns suppliers with search over name/contact/email and
// page/page_size pagination.
func (h *SupplierHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if size <= 0 || size > 100 {
		size = 20
	}

	base := h.DB.Model(&models.Supplier{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("name LIKE ? OR contact LIKE ? OR email LIKE ?", like, like, like)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	var suppliers []models.Supplier
	if err := base.Session(&gorm.Session{}).
		Order("id ASC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&suppliers).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	items := make([]supplierResp, 0, len(suppliers))
	for i := range suppliers {
		items = append(items, toSupplierResp(&suppliers[i]))
	}

	util.Success(c, util.Response{
		"items": items,
		"total": total,
		"page":  page,
		"size":  size,
	})
}

func (h *SupplierHandler) Create(c *gin.Context) {
	var req supplierReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if req.Status == "" {
		req.Status = "active"
	}

	supplier := models.Supplier{
		Name:        strings.TrimSpace(req.Name),
		Branch:      req.Branch,
		Contact:     req.Contact,
		Email:       req.Email,
		Phone:       req.Phone,
		Status:      req.Status,
		LastUpdated: time.Now().Format("2006-01-02"),
	}

	if err := h.DB.Create(&supplier).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"supplier": toSupplierResp(&supplier),
	})
}

func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	var req supplierReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	var supplier models.Supplier
	if err := h.DB.First(&supplier, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "supplier not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	supplier.Name = strings.TrimSpace(req.Name)
	supplier.Branch = req.Branch
	supplier.Contact = req.Contact
	supplier.Email = req.Email
	supplier.Phone = req.Phone
	if req.Status != "" {
		supplier.Status = req.Status
	}
	supplier.LastUpdated = time.Now().Format("2006-01-02")

	if err := h.DB.Save(&supplier).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"supplier": toSupplierResp(&supplier),
	})
}

func (h *SupplierHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	if err := h.DB.Delete(&models.Supplier{}, id).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete failed")
		return
	}

	util.Success(c, util.Response{
		"message": "deleted",
	})
}
