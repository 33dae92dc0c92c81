package payroll

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
)

// CalculateForLOP returns
//
//	round(amount - amount/daysInMonth * (lop + lop*leaveDays/workingDays))
//
// rounded half away from zero. Zero divisors are rejected with
// ErrPreconditionViolation.
func CalculateForLOP(amount decimal.Decimal, daysInMonth int, lop, leaveDays decimal.Decimal, workingDays int) (decimal.Decimal, error) {
	if daysInMonth == 0 {
		return decimal.Zero, fmt.Errorf("%w: number of days in month is zero", payroll.ErrPreconditionViolation)
	}
	if workingDays == 0 {
		return decimal.Zero, fmt.Errorf("%w: number of working days is zero", payroll.ErrPreconditionViolation)
	}

	perDay := amount.Div(decimal.NewFromInt(int64(daysInMonth)))
	leaveRatio := leaveDays.Div(decimal.NewFromInt(int64(workingDays)))
	lopDays := lop.Add(lop.Mul(leaveRatio))

	return amount.Sub(perDay.Mul(lopDays)).Round(0), nil
}

// PayslipCutoff is noon on the 26th of now's month, in now's location.
func PayslipCutoff(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), payroll.PayslipCutoffDay, payroll.PayslipCutoffHour, 0, 0, 0, now.Location())
}

// CanGeneratePayslip reports whether now is at or after the month's cutoff.
func CanGeneratePayslip(now time.Time) bool {
	return !now.Before(PayslipCutoff(now))
}

// LOPReportDate is the scheduler_watch date key for now's month. It is always
// the 26th, whatever day the check runs on.
func LOPReportDate(now time.Time) calendar.Date {
	return calendar.NewDate(now.Year(), now.Month(), payroll.PayslipCutoffDay)
}

// PayslipFinancialYear resolves the financial year of a "month-year" value
// such as "04-2024" or "Apr-2024". A missing month means April and a missing
// year means 2023.
func PayslipFinancialYear(monthYear string) (calendar.FinancialYear, error) {
	parts := strings.Split(strings.ReplaceAll(strings.TrimSpace(monthYear), "/", "-"), "-")

	month := payroll.DefaultPayslipMonth
	if m := strings.TrimSpace(parts[0]); m != "" {
		parsed, err := calendar.ParseMonth(m)
		if err != nil {
			return calendar.FinancialYear{}, fmt.Errorf("%w: %q: %v", payroll.ErrInvalidMonthYear, monthYear, err)
		}
		month = parsed
	}

	year := payroll.DefaultPayslipYear
	if len(parts) > 1 {
		if y := strings.TrimSpace(parts[1]); y != "" {
			parsed, err := strconv.Atoi(y)
			if err != nil || parsed < 1 {
				return calendar.FinancialYear{}, fmt.Errorf("%w: %q: bad year", payroll.ErrInvalidMonthYear, monthYear)
			}
			year = parsed
		}
	}

	return calendar.FinancialYearOf(year, month), nil
}
