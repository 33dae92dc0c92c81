package calendar

import (
	"fmt"
	"time"
)

// FinancialYear is an April-to-March accounting period.
type FinancialYear struct {
	Start Date // April 1 of the start year
	End   Date // March 31 of the following year
}

// FinancialYearStarting returns the financial year that begins in April of startYear.
func FinancialYearStarting(startYear int) FinancialYear {
	return FinancialYear{
		Start: NewDate(startYear, time.April, 1),
		End:   NewDate(startYear+1, time.March, 31),
	}
}

// FinancialYearOf returns the financial year containing the given month:
// January to March belong to the year that started the previous April.
func FinancialYearOf(year int, month time.Month) FinancialYear {
	if month < time.April {
		return FinancialYearStarting(year - 1)
	}
	return FinancialYearStarting(year)
}

func FinancialYearAt(d Date) FinancialYear {
	return FinancialYearOf(d.Year(), d.Month())
}

func (fy FinancialYear) StartYear() int { return fy.Start.Year() }
func (fy FinancialYear) EndYear() int   { return fy.End.Year() }

func (fy FinancialYear) Contains(d Date) bool {
	return !d.Before(fy.Start) && !d.After(fy.End)
}

// Format renders both boundaries with a Go time layout.
func (fy FinancialYear) Format(layout string) (start, end string) {
	return fy.Start.Format(layout), fy.End.Format(layout)
}

// Label joins the start and end years with slug, e.g. "2024-2025".
func (fy FinancialYear) Label(slug string) string {
	return fmt.Sprintf("%d%s%d", fy.StartYear(), slug, fy.EndYear())
}

// DisplayLabel is the human form used on payslip headers.
func (fy FinancialYear) DisplayLabel() string {
	return fmt.Sprintf("1 April %d - 31 march %d", fy.StartYear(), fy.EndYear())
}

// RemainingFinancialYearMonths counts whole months left until March 31 of
// the financial year containing today.
func RemainingFinancialYearMonths(today Date) int {
	end := FinancialYearAt(today).End
	months := (end.Year()-today.Year())*12 + int(end.Month()) - int(today.Month())
	if end.Day() < today.Day() {
		months--
	}
	return months
}

// FinancialYearLabel formats the financial year of monthYear ("03-2023",
// "Mar-2023", "3/2023") as "{start}{slug}{end}". Empty or unparseable input
// falls back to the clock's current month; a parse failure is logged, never
// returned.
func FinancialYearLabel(monthYear, slug string, clock Clock) string {
	now := clock.Now()
	if monthYear != "" {
		if t, ok := ParseDateTimeLenient("01-"+monthYear, now.Location()); ok {
			now = t
		}
	}
	return FinancialYearAt(DateOf(now)).Label(slug)
}

// StrictFinancialYearLabel is FinancialYearLabel without the fallback.
func StrictFinancialYearLabel(monthYear, slug string, clock Clock) (string, error) {
	now := clock.Now()
	if monthYear != "" {
		t, err := ParseDateTimeIn("01-"+monthYear, now.Location())
		if err != nil {
			return "", err
		}
		now = t
	}
	return FinancialYearAt(DateOf(now)).Label(slug), nil
}

// FinancialYearMailLabel is the "2024_to_2025" form used in mail subjects.
func FinancialYearMailLabel(monthYear string, clock Clock) string {
	return FinancialYearLabel(monthYear, "_to_", clock)
}
