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

// CustomerHandler serves the Customers screen.
type CustomerHandler struct {
	DB *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{DB: db}
}

type customerReq struct {
	Name    string `json:"name" binding:"required,max=128"`
	Email   string `json:"email" binding:"max=128"`
	Phone   string `json:"phone" binding:"max=32"`
	Company string `json:"company" binding:"max=128"`
	Address string `json:"address" binding:"max=255"`
	Status  string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type customerResp struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	Address     string `json:"address"`
	Status      string `json:"status"`
	LastContact string `json:"last_contact"`
}

func toCustomerResp(cu *models.Customer) customerResp {
	return customerResp{
		ID:          cu.ID,
		Name:        cu.Name,
		Email:       cu.Email,
		Phone:       cu.Phone,
		Company:     cu.Company,
		Address:     cu.Address,
		Status:      cu.Status,
		LastContact: cu.LastContact,
	}
}

func (h *CustomerHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if size <= 0 || size > 100 {
		size = 20
	}

	base := h.DB.Model(&models.Customer{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("name LIKE ? OR email LIKE ? OR company LIKE ?", like, like, like)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	var customers []models.Customer
	if err := base.Session(&gorm.Session{}).
		Order("id ASC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&customers).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	items := make([]customerResp, 0, len(customers))
	for i := range customers {
		items = append(items, toCustomerResp(&customers[i]))
	}

	util.Success(c, util.Response{
		"items": items,
		"total": total,
		"page":  page,
		"size":  size,
	})
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req customerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if req.Status == "" {
		req.Status = "active"
	}

	customer := models.Customer{
		Name:        strings.TrimSpace(req.Name),
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Address:     req.Address,
		Status:      req.Status,
		LastContact: time.Now().Format("2006-01-02"),
	}

	if err := h.DB.Create(&customer).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"customer": toCustomerResp(&customer),
	})
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	var req customerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	var customer models.Customer
	if err := h.DB.First(&customer, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "customer not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	customer.Name = strings.TrimSpace(req.Name)
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.Company = req.Company
	customer.Address = req.Address
	if req.Status != "" {
		customer.Status = req.Status
	}
	customer.LastContact = time.Now().Format("2006-01-02")

	if err := h.DB.Save(&customer).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"customer": toCustomerResp(&customer),
	})
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	if err := h.DB.Delete(&models.Customer{}, id).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete failed")
		return
	}

	util.Success(c, util.Response{
		"message": "deleted",
	})
}
