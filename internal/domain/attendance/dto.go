package attendance

import (
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
)

type WorkingDayResponse struct {
	Date    calendar.Date `json:"date"`
	Weekday string        `json:"weekday"`
}

func NewWorkingDayResponse(d calendar.Date) WorkingDayResponse {
	return WorkingDayResponse{Date: d, Weekday: d.Weekday().String()}
}

type OfficeWorkingDayResponse struct {
	Date         calendar.Date `json:"date"`
	IsWorkingDay bool          `json:"is_working_day"`
	IsHoliday    bool          `json:"is_holiday"`
}

type HoursResponse struct {
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

type CheckOutTimeResponse struct {
	UserID   string  `json:"user_id"`
	BranchID *string `json:"branch_id"`
	Hours    float64 `json:"hours"`
}
