package attendance

import (
	"context"

	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
)

// AttendanceService defines working-day rules for attendance
type AttendanceService interface {
	// CurrentMonthFirstWorkingDay returns the first Monday-to-Friday day of the month that is not a holiday
	CurrentMonthFirstWorkingDay(ctx context.Context) (calendar.Date, error)

	// UserPreviousWorkingDay walks back from yesterday past holidays and the user's weekends
	UserPreviousWorkingDay(ctx context.Context, userID string) (calendar.Date, error)

	// IsOfficeWorkingDay reports whether the office is open today
	IsOfficeWorkingDay(ctx context.Context) (OfficeWorkingDayResponse, error)

	// ActualHoursMinutes renders fractional hours as "7 hrs 30 mins".
	// Non-finite or out-of-range input returns ErrInvalidHours.
	ActualHoursMinutes(ctx context.Context, hours float64) (HoursResponse, error)

	// UserCheckOutTime returns the expected daily work hours for the user's branch
	UserCheckOutTime(ctx context.Context, userID string) (CheckOutTimeResponse, error)
}
