package handler

import (
	"net/http"

	"backoffice/internal/models"
	"backoffice/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DashboardHandler aggregates the landing-page numbers.
type DashboardHandler struct {
	DB *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{DB: db}
}

type activityResp struct {
	Action    string `json:"action"`
	IP        string `json:"ip"`
	CreatedAt string `json:"created_at"`
}

// Summary returns per-screen record counts, outstanding installment
// totals for both books, and the most recent audit activity.
func (h *DashboardHandler) Summary(c *gin.Context) {
	counts := map[string]int64{}
	for name, model := range map[string]interface{}{
		"suppliers": &models.Supplier{},
		"products":  &models.Product{},
		"customers": &models.Customer{},
		"inventory": &models.InventoryItem{},
		"sales":     &models.Sale{},
		"users":     &models.User{},
	} {
		var n int64
		if err := h.DB.Model(model).Count(&n).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
			return
		}
		counts[name] = n
	}

	installments := map[string]util.Response{}
	for _, side := range []models.InstallmentSide{models.SideSales, models.SidePurchase} {
		var active int64
		if err := h.DB.Model(&models.InstallmentPlan{}).
			Where("side = ? AND status = ?", side, models.PlanActive).
			Count(&active).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
			return
		}

		var totals struct {
			Principal float64
			Remaining float64
		}
		if err := h.DB.Model(&models.InstallmentPlan{}).
			Where("side = ?", side).
			Select("COALESCE(SUM(principal), 0) AS principal, COALESCE(SUM(remaining_amount), 0) AS remaining").
			Scan(&totals).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
			return
		}

		installments[string(side)] = util.Response{
			"active_plans": active,
			"principal":    totals.Principal,
			"outstanding":  totals.Remaining,
		}
	}

	var logs []models.AuditLog
	if err := h.DB.Order("id DESC").Limit(10).Find(&logs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}
	activity := make([]activityResp, 0, len(logs))
	for i := range logs {
		activity = append(activity, activityResp{
			Action:    logs[i].Action,
			IP:        logs[i].IP,
			CreatedAt: logs[i].CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	util.Success(c, util.Response{
		"counts":       counts,
		"installments": installments,
		"activity":     activity,
	})
}
