package report

import (
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/validator"
)

const (
	FormatJSON = "json"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"

	MonthLayout = validator.MonthLayout
)

var exportFormats = []string{FormatXLSX, FormatPDF}

// ========================================
// MONTH CALENDAR REPORT
// ========================================

type MonthCalendarRequest struct {
	Month           string `json:"month"`
	Format          string `json:"format"`
	SaturdayWorking bool   `json:"saturday_working"`
}

func (r *MonthCalendarRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs.Add("month", "month is required")
	} else if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs.Add("month", ErrInvalidMonth.Error())
	}

	if r.Format != "" && r.Format != FormatJSON && !validator.IsInSlice(r.Format, exportFormats) {
		errs.Add("format", "format must be one of json, xlsx, pdf")
	}

	return errs.Err()
}

// MonthStart returns the first day of the requested month.
func (r *MonthCalendarRequest) MonthStart() (time.Time, error) {
	d, ok := validator.IsValidMonth(r.Month)
	if !ok {
		return time.Time{}, ErrInvalidMonth
	}
	return d.Time(), nil
}

type MonthCalendarReport struct {
	Month         string `json:"month"`
	Label         string `json:"label"`
	FinancialYear string `json:"financial_year"`
	WeekendPolicy string `json:"weekend_policy"`
	GeneratedAt   string `json:"generated_at"`

	Summary MonthCalendarSummary `json:"summary"`
	Days    []MonthCalendarDay   `json:"days"`
}

type MonthCalendarSummary struct {
	TotalDays   int `json:"total_days"`
	WorkingDays int `json:"working_days"`
	WeekendDays int `json:"weekend_days"`
	Holidays    int `json:"holidays"`
}

type MonthCalendarDay struct {
	Date         string `json:"date"`
	Weekday      string `json:"weekday"`
	IsWeekend    bool   `json:"is_weekend"`
	IsHoliday    bool   `json:"is_holiday"`
	HolidayName  string `json:"holiday_name,omitempty"`
	IsWorkingDay bool   `json:"is_working_day"`
}

// Kind is the single-word classification shown in exports.
func (d MonthCalendarDay) Kind() string {
	switch {
	case d.IsHoliday:
		return "Holiday"
	case d.IsWeekend:
		return "Weekend"
	default:
		return "Working"
	}
}

type ExportFile struct {
	FileName    string
	ContentType string
	Data        []byte
}
