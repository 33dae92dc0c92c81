package attendance

import (
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
)

// WorkProfile is the slice of a user record the attendance rules need.
type WorkProfile struct {
	UserID     string
	EmployeeID *string
	BranchID   *string
	Weekends   calendar.WeekendPolicy
}

// OfficePolicy holds the deployment-wide attendance settings.
type OfficePolicy struct {
	// CheckInStartDate is the first day attendance is tracked.
	CheckInStartDate calendar.Date
	// UKBranchID identifies the branch on the shorter working day.
	UKBranchID string
}

const (
	DefaultCheckOutHours = 8.0
	UKCheckOutHours      = 7.5

	// MaxHoursValue bounds the hours accepted for display.
	MaxHoursValue = 1_000_000.0
)
