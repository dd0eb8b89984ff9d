package handler

import (
	"net/http"
	"strconv"

	"backoffice/internal/ledger"
	"backoffice/internal/models"
	"backoffice/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InstallmentHandler serves one installment book. The sales and
// purchase screens are the same handler bound to different sides; only
// the counterparty role and ID prefix differ.
type InstallmentHandler struct {
	DB   *gorm.DB
	Side models.InstallmentSide
}

func NewSalesInstallmentHandler(db *gorm.DB) *InstallmentHandler {
	return &InstallmentHandler{DB: db, Side: models.SideSales}
}

func NewPurchaseInstallmentHandler(db *gorm.DB) *InstallmentHandler {
	return &InstallmentHandler{DB: db, Side: models.SidePurchase}
}

type planReq struct {
	Counterparty string  `json:"counterparty" binding:"required,max=128"`
	Item         string  `json:"item" binding:"required,max=128"`
	Principal    float64 `json:"principal"`
	PeriodCount  int     `json:"period_count"`
	StartDate    string  `json:"start_date" binding:"required"`
}

func (r planReq) input() ledger.Input {
	return ledger.Input{
		Counterparty: r.Counterparty,
		Item:         r.Item,
		Principal:    r.Principal,
		PeriodCount:  r.PeriodCount,
		StartDate:    r.StartDate,
	}
}

// List returns the side's plans newest first, with optional status
// filter and page/page_size pagination.
func (h *InstallmentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if size <= 0 || size > 100 {
		size = 10
	}

	base := h.DB.Model(&models.InstallmentPlan{}).Where("side = ?", h.Side)
	if status := c.Query("status"); status == models.PlanActive || status == models.PlanCompleted {
		base = base.Where("status = ?", status)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	var plans []models.InstallmentPlan
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&plans).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	util.Success(c, util.Response{
		"items": plans,
		"total": total,
		"page":  page,
		"size":  size,
	})
}

// Create opens a new plan. Callers are expected to pre-validate (the
// UI disables Save on bad input), so validation failures come back as
// plain 400s.
func (h *InstallmentHandler) Create(c *gin.Context) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	plan, err := ledger.NewPlan(h.Side, req.input())
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	if err := h.DB.Create(&plan).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"plan": plan,
	})
}

// Update edits an existing plan's terms. Payment progress carries
// over; derived fields are recomputed by the engine.
func (h *InstallmentHandler) Update(c *gin.Context) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	var plan models.InstallmentPlan
	if err := h.DB.Where("id = ? AND side = ?", c.Param("id"), h.Side).First(&plan).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "plan not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	updated, err := ledger.ApplyEdit(plan, req.input())
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	if err := h.DB.Save(&updated).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"plan": updated,
	})
}

// RecordPayment advances a plan by one period. A completed plan is a
// no-op: the unchanged plan comes back with paid == false.
func (h *InstallmentHandler) RecordPayment(c *gin.Context) {
	var plan models.InstallmentPlan
	if err := h.DB.Where("id = ? AND side = ?", c.Param("id"), h.Side).First(&plan).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "plan not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	updated, paid := ledger.RecordPayment(plan)
	if paid {
		if err := h.DB.Save(&updated).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
			return
		}
	}

	util.Success(c, util.Response{
		"plan": updated,
		"paid": paid,
	})
}

// Delete removes a plan unconditionally. Deleting a missing ID
// succeeds; the operation is idempotent.
func (h *InstallmentHandler) Delete(c *gin.Context) {
	if err := h.DB.
		Where("id = ? AND side = ?", c.Param("id"), h.Side).
		Delete(&models.InstallmentPlan{}).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete failed")
		return
	}

	util.Success(c, util.Response{
		"message": "deleted",
	})
}
