// Package ledger implements the installment plan engine shared by the
// sales and purchase installment books. All functions are pure: they
// take plan values and return updated values, and the caller is
// responsible for writing results back to storage.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"backoffice/internal/models"
)

// DateLayout is the calendar date format used throughout the plan
// schedule fields.
const DateLayout = "2006-01-02"

var (
	ErrCounterpartyRequired = errors.New("counterparty is required")
	ErrItemRequired         = errors.New("item is required")
	ErrInvalidStartDate     = errors.New("start date must be a valid YYYY-MM-DD date")
)

// Input carries the user-editable plan fields for Create and Edit.
type Input struct {
	Counterparty string
	Item         string
	Principal    float64
	PeriodCount  int
	StartDate    string
}

// Validate checks the fields callers must pre-validate before invoking
// the engine: non-empty counterparty and item, parseable start date.
// Out-of-range numbers are not errors; they get coerced (negative
// principal to 0, period count below 1 to 1).
func (in Input) Validate() error {
	if in.Counterparty == "" {
		return ErrCounterpartyRequired
	}
	if in.Item == "" {
		return ErrItemRequired
	}
	if _, err := time.Parse(DateLayout, in.StartDate); err != nil {
		return ErrInvalidStartDate
	}
	return nil
}

func (in Input) normalized() Input {
	if in.PeriodCount < 1 {
		in.PeriodCount = 1
	}
	if in.Principal < 0 {
		in.Principal = 0
	}
	return in
}

// NewPlan creates a plan for the given side. The period amount is the
// raw float division Principal / PeriodCount; fractional results are
// kept as-is. The schedule runs PeriodCount calendar months starting at
// StartDate, with the first payment due one month in.
func NewPlan(side models.InstallmentSide, in Input) (models.InstallmentPlan, error) {
	if err := in.Validate(); err != nil {
		return models.InstallmentPlan{}, err
	}
	in = in.normalized()

	return models.InstallmentPlan{
		ID:              NewID(side),
		Side:            side,
		Counterparty:    in.Counterparty,
		Item:            in.Item,
		Principal:       in.Principal,
		PaidAmount:      0,
		RemainingAmount: in.Principal,
		PeriodCount:     in.PeriodCount,
		PaidPeriods:     0,
		PeriodAmount:    in.Principal / float64(in.PeriodCount),
		StartDate:       in.StartDate,
		EndDate:         AddMonths(in.StartDate, in.PeriodCount-1),
		Status:          models.PlanActive,
		NextPaymentDate: AddMonths(in.StartDate, 1),
	}, nil
}

// ApplyEdit rewrites the editable fields of an existing plan and
// recomputes the derived ones. Payment progress (PaidAmount,
// PaidPeriods) carries over unchanged; RemainingAmount and Status are
// re-derived from the new principal. When an edit reopens a completed
// plan, the next payment falls on the period after the last paid one;
// an edit that completes the plan clears it. Otherwise the next
// payment date is left where it was.
func ApplyEdit(plan models.InstallmentPlan, in Input) (models.InstallmentPlan, error) {
	if err := in.Validate(); err != nil {
		return plan, err
	}
	in = in.normalized()

	wasCompleted := plan.Status == models.PlanCompleted

	plan.Counterparty = in.Counterparty
	plan.Item = in.Item
	plan.Principal = in.Principal
	plan.PeriodCount = in.PeriodCount
	plan.PeriodAmount = in.Principal / float64(in.PeriodCount)
	plan.StartDate = in.StartDate
	plan.EndDate = AddMonths(in.StartDate, in.PeriodCount-1)
	plan.RemainingAmount = in.Principal - plan.PaidAmount

	if plan.RemainingAmount <= 0 {
		plan.Status = models.PlanCompleted
		plan.NextPaymentDate = ""
	} else {
		plan.Status = models.PlanActive
		if wasCompleted {
			plan.NextPaymentDate = AddMonths(in.StartDate, plan.PaidPeriods+1)
		}
	}
	return plan, nil
}

// RecordPayment advances a plan by exactly one period: one period
// amount is added to the paid total and the next payment date moves a
// month forward, or is cleared when the payment settles the plan.
// A completed plan is returned unchanged with ok == false.
func RecordPayment(plan models.InstallmentPlan) (updated models.InstallmentPlan, ok bool) {
	if plan.Status == models.PlanCompleted {
		return plan, false
	}

	plan.PaidAmount += plan.PeriodAmount
	plan.PaidPeriods++
	plan.RemainingAmount = plan.Principal - plan.PaidAmount

	if plan.RemainingAmount <= 0 {
		plan.Status = models.PlanCompleted
		plan.NextPaymentDate = ""
	} else {
		plan.Status = models.PlanActive
		plan.NextPaymentDate = AddMonths(plan.NextPaymentDate, 1)
	}
	return plan, true
}

// AddMonths adds n calendar months to a YYYY-MM-DD date. Day-of-month
// overflow normalizes forward (Jan 31 + 1 month lands in early March),
// matching how the schedule dates behaved historically. Returns "" for
// an unparseable input.
func AddMonths(date string, n int) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, n, 0).Format(DateLayout)
}

// NewID builds a plan ID from the side prefix and the current unix
// millisecond clock, e.g. "I-1736899200000". Uniqueness is
// clock-based; collisions are not defended against.
func NewID(side models.InstallmentSide) string {
	return fmt.Sprintf("%s-%d", side.IDPrefix(), time.Now().UnixMilli())
}
