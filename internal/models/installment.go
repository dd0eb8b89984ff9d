package models

import "time"

// InstallmentSide tells which book a plan belongs to. The two books
// share one schema and one engine; only the counterparty role and the
// ID prefix differ.
type InstallmentSide string

const (
	SideSales    InstallmentSide = "sales"    // counterparty is a customer
	SidePurchase InstallmentSide = "purchase" // counterparty is a supplier
)

// IDPrefix returns the record ID prefix used for new plans on this side.
func (s InstallmentSide) IDPrefix() string {
	if s == SidePurchase {
		return "PI"
	}
	return "I"
}

// Plan statuses. A plan is completed once its remaining amount reaches
// zero; there is no other terminal state.
const (
	PlanActive    = "active"
	PlanCompleted = "completed"
)

// InstallmentPlan is one financed transaction paid off in monthly
// periods. PeriodAmount is fixed at creation (or edit) as
// Principal / PeriodCount; RemainingAmount is always
// Principal - PaidAmount. Dates are YYYY-MM-DD strings and
// NextPaymentDate is empty once the plan completes.
type InstallmentPlan struct {
	ID              string          `gorm:"primaryKey;size:32" json:"id"`
	Side            InstallmentSide `gorm:"size:16;index;not null" json:"-"`
	Counterparty    string          `gorm:"size:128;not null" json:"counterparty"`
	Item            string          `gorm:"size:128;not null" json:"item"`
	Principal       float64         `gorm:"not null" json:"principal"`
	PaidAmount      float64         `gorm:"not null" json:"paid_amount"`
	RemainingAmount float64         `gorm:"not null" json:"remaining_amount"`
	PeriodCount     int             `gorm:"not null" json:"period_count"`
	PaidPeriods     int             `gorm:"not null" json:"paid_periods"`
	PeriodAmount    float64         `gorm:"not null" json:"period_amount"`
	StartDate       string          `gorm:"size:10;not null" json:"start_date"`
	EndDate         string          `gorm:"size:10" json:"end_date"`
	Status          string          `gorm:"size:16;index" json:"status"`
	NextPaymentDate string          `gorm:"size:10" json:"next_payment_date"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
