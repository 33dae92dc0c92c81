package attendance

import (
	"fmt"
	"math"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
)

// FirstWorkingDay returns the first Monday-to-Friday day of month that is not
// in holidays. Saturdays are never candidates here, whatever the weekend
// policy. When every weekday is a holiday the first weekday is returned.
func FirstWorkingDay(month calendar.Date, holidays holiday.DateSet) calendar.Date {
	var first calendar.Date
	for _, d := range calendar.Days(month.StartOfMonth(), month.EndOfMonth()) {
		if !d.IsWeekday() {
			continue
		}
		if first.IsZero() {
			first = d
		}
		if !holidays.Contains(d) {
			return d
		}
	}
	return first
}

// HolidayWindow is the range searched by PreviousWorkingDay: one month
// (without day overflow) before yesterday, through yesterday.
func HolidayWindow(today calendar.Date) (start, end calendar.Date) {
	end = today.AddDays(-1)
	return end.AddMonthsNoOverflow(-1), end
}

// PreviousWorkingDay steps back from yesterday while the day is a holiday or
// a weekend under policy. The walk never leaves HolidayWindow; exhausting it
// yields ErrNoWorkingDayFound.
func PreviousWorkingDay(today calendar.Date, holidays holiday.DateSet, policy calendar.WeekendPolicy) (calendar.Date, error) {
	start, end := HolidayWindow(today)
	for d := end; !d.Before(start); d = d.AddDays(-1) {
		if !holidays.Contains(d) && !policy.IsWeekend(d) {
			return d, nil
		}
	}
	return calendar.Date{}, fmt.Errorf("%w: searched %s to %s", attendance.ErrNoWorkingDayFound, start, end)
}

// IsOfficeWorkingDay is false before trackingStart, on a declared holiday and
// on Sunday. Saturday is a working day.
func IsOfficeWorkingDay(today, trackingStart calendar.Date, isHoliday bool) bool {
	if today.Before(trackingStart) {
		return false
	}
	return !isHoliday && today.Weekday() != time.Sunday
}

// ValidateHours rejects non-finite values and values whose magnitude exceeds
// attendance.MaxHoursValue.
func ValidateHours(fractionalHours float64) error {
	if math.IsNaN(fractionalHours) || math.IsInf(fractionalHours, 0) || math.Abs(fractionalHours) > attendance.MaxHoursValue {
		return fmt.Errorf("%w: %v", attendance.ErrInvalidHours, fractionalHours)
	}
	return nil
}

// ActualHoursMinutes renders fractional hours as "{h} hrs {m} mins". Negative
// input counts as zero and input above attendance.MaxHoursValue is clamped to
// it. Minutes that round up to 60 carry into the hour, so 1.999 is
// "2 hrs 0 mins".
func ActualHoursMinutes(fractionalHours float64) string {
	if fractionalHours < 0 || math.IsNaN(fractionalHours) {
		fractionalHours = 0
	}
	fractionalHours = math.Min(fractionalHours, attendance.MaxHoursValue)
	hours := math.Floor(fractionalHours)
	minutes := math.Round((fractionalHours - hours) * 60)
	if minutes >= 60 {
		hours++
		minutes -= 60
	}
	return fmt.Sprintf("%d hrs %d mins", int64(hours), int64(minutes))
}

// CheckOutTime is the expected daily work hours for a branch.
func CheckOutTime(branchID *string, ukBranchID string) float64 {
	if branchID != nil && ukBranchID != "" && *branchID == ukBranchID {
		return attendance.UKCheckOutHours
	}
	return attendance.DefaultCheckOutHours
}
