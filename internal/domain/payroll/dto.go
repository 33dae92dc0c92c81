package payroll

import (
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculateLOPRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	DaysInMonth int             `json:"days_in_month"`
	LOP         decimal.Decimal `json:"lop"`
	LeaveDays   decimal.Decimal `json:"leave_days"`
	WorkingDays int             `json:"working_days"`
}

func (r *CalculateLOPRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount.IsNegative() {
		errs.Add("amount", "must be non-negative")
	}
	if r.DaysInMonth < 0 || r.DaysInMonth > 31 {
		errs.Add("days_in_month", "must be between 0 and 31")
	}
	if r.LOP.IsNegative() {
		errs.Add("lop", "must be non-negative")
	}
	if r.LeaveDays.IsNegative() {
		errs.Add("leave_days", "must be non-negative")
	}
	if r.WorkingDays < 0 || r.WorkingDays > 31 {
		errs.Add("working_days", "must be between 0 and 31")
	}

	return errs.Err()
}

type CalculateLOPResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	Result    decimal.Decimal `json:"result"`
	Formatted string          `json:"formatted"`
}

type PayslipTemplateResponse struct {
	MonthYear     string `json:"month_year"`
	FinancialYear string `json:"financial_year"`
	Template      string `json:"template"`
	IsFallback    bool   `json:"is_fallback"`
}

type PayslipStatusResponse struct {
	CanGenerate   bool      `json:"can_generate"`
	Cutoff        time.Time `json:"cutoff"`
	LOPGenerated  bool      `json:"lop_generated"`
	PendingLOP    bool      `json:"pending_lop"`
	FinancialYear string    `json:"financial_year"`
}

type LOPReportResult struct {
	RunID        string `json:"run_id,omitempty"`
	Skipped      bool   `json:"skipped"`
	Reason       string `json:"reason,omitempty"`
	PendingCount int    `json:"pending_count"`
	MonthYear    string `json:"month_year,omitempty"`
}
