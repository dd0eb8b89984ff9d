package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"backoffice/internal/kvstore"
	"backoffice/internal/models"
	"backoffice/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler produces spreadsheet downloads of the installment
// books and the purchase list.
type ExportHandler struct {
	DB *gorm.DB
	KV *kvstore.Store
}

func NewExportHandler(db *gorm.DB, kv *kvstore.Store) *ExportHandler {
	return &ExportHandler{DB: db, KV: kv}
}

var planSheetNames = map[models.InstallmentSide]string{
	models.SideSales:    "Sales Installments",
	models.SidePurchase: "Purchase Installments",
}

// ExportInstallmentsXLSX writes the installment books into one
// workbook, one sheet per book. ?side=sales or ?side=purchase limits
// the export to a single book.
func (h *ExportHandler) ExportInstallmentsXLSX(c *gin.Context) {
	sides := []models.InstallmentSide{models.SideSales, models.SidePurchase}
	switch c.Query("side") {
	case string(models.SideSales):
		sides = sides[:1]
	case string(models.SidePurchase):
		sides = sides[1:]
	}

	f := excelize.NewFile()

	headers := []string{
		"ID", "Counterparty", "Item", "Principal", "Paid", "Remaining",
		"Periods", "Paid Periods", "Per Period", "Start", "End", "Status", "Next Payment",
	}

	for i, side := range sides {
		sheetName := planSheetNames[side]
		index, err := f.NewSheet(sheetName)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create sheet")
			return
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}

		for i, head := range headers {
			cell := fmt.Sprintf("%c1", 'A'+i)
			f.SetCellValue(sheetName, cell, head)
		}

		var plans []models.InstallmentPlan
		if err := h.DB.Where("side = ?", side).
			Order("created_at DESC, id DESC").
			Find(&plans).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
			return
		}

		for idx, p := range plans {
			row := idx + 2
			values := []interface{}{
				p.ID, p.Counterparty, p.Item, p.Principal, p.PaidAmount,
				p.RemainingAmount, p.PeriodCount, p.PaidPeriods, p.PeriodAmount,
				p.StartDate, p.EndDate, p.Status, p.NextPaymentDate,
			}
			for i, v := range values {
				cell := fmt.Sprintf("%c%d", 'A'+i, row)
				f.SetCellValue(sheetName, cell, v)
			}
		}

		f.SetColWidth(sheetName, "A", "A", 16)
		f.SetColWidth(sheetName, "B", "C", 24)
		f.SetColWidth(sheetName, "D", "I", 12)
		f.SetColWidth(sheetName, "J", "M", 14)
	}

	// drop the default sheet created by NewFile
	f.DeleteSheet("Sheet1")

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"installments_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}

// ExportPurchasesCSV writes the purchase list as CSV.
func (h *ExportHandler) ExportPurchasesCSV(c *gin.Context) {
	var purchases []PurchaseRecord
	ok, err := h.KV.GetJSON(PurchasesKey, &purchases)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}
	if !ok {
		purchases = defaultPurchases()
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"purchases_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// UTF-8 BOM so Excel recognizes Thai text
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer.Write([]string{"ID", "Date", "Supplier", "Product", "Quantity", "Total Amount"})

	for _, p := range purchases {
		writer.Write([]string{
			p.ID,
			p.Date,
			p.Supplier,
			p.Product,
			strconv.Itoa(p.Quantity),
			strconv.FormatFloat(p.TotalAmount, 'f', 2, 64),
		})
	}
}
