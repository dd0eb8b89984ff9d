package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"backoffice/internal/models"
	"backoffice/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SaleHandler serves the plain sales book. Installment-backed sales
// live under the installment endpoints; rows here are one-off sales.
type SaleHandler struct {
	DB *gorm.DB
}

func NewSaleHandler(db *gorm.DB) *SaleHandler {
	return &SaleHandler{DB: db}
}

type saleReq struct {
	Date     string  `json:"date" binding:"required"`
	Customer string  `json:"customer" binding:"required,max=128"`
	Product  string  `json:"product" binding:"required,max=128"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Total    float64 `json:"total"`
}

type saleResp struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Customer string  `json:"customer"`
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

func toSaleResp(s *models.Sale) saleResp {
	return saleResp{
		ID:       s.ID,
		Date:     s.Date,
		Customer: s.Customer,
		Product:  s.Product,
		Quantity: s.Quantity,
		Total:    s.Total,
	}
}

func (h *SaleHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	base := h.DB.Model(&models.Sale{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("customer LIKE ? OR product LIKE ?", like, like)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	var sales []models.Sale
	if err := base.Session(&gorm.Session{}).
		Order("date DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&sales).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	resp := make([]saleResp, 0, len(sales))
	for i := range sales {
		resp = append(resp, toSaleResp(&sales[i]))
	}

	util.Success(c, util.Response{
		"sales":     resp,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *SaleHandler) Create(c *gin.Context) {
	var req saleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if err := util.ValidateDate(req.Date); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	if err := util.ValidateAmount(req.Total); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	sale := models.Sale{
		ID:       fmt.Sprintf("S-%d", time.Now().UnixMilli()),
		Date:     req.Date,
		Customer: strings.TrimSpace(req.Customer),
		Product:  strings.TrimSpace(req.Product),
		Quantity: req.Quantity,
		Total:    req.Total,
	}

	if err := h.DB.Create(&sale).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"sale": toSaleResp(&sale),
	})
}
