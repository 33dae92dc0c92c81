package attendance

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/metrics"
)

type AttendanceServiceImpl struct {
	clock       calendar.Clock
	policy      attendance.OfficePolicy
	holidayRepo holiday.HolidayRepository
	profileRepo attendance.WorkProfileRepository
}

func NewAttendanceService(
	clock calendar.Clock,
	policy attendance.OfficePolicy,
	holidayRepo holiday.HolidayRepository,
	profileRepo attendance.WorkProfileRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		clock:       clock,
		policy:      policy,
		holidayRepo: holidayRepo,
		profileRepo: profileRepo,
	}
}

// CurrentMonthFirstWorkingDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CurrentMonthFirstWorkingDay(ctx context.Context) (calendar.Date, error) {
	today := calendar.Today(a.clock)
	holidays, err := a.holidayRepo.GetBetween(ctx, today.StartOfMonth(), today.EndOfMonth())
	if err != nil {
		return calendar.Date{}, fmt.Errorf("failed to load holidays for %s: %w", today.Format("2006-01"), err)
	}
	return FirstWorkingDay(today, holiday.NewDateSet(holidays)), nil
}

// UserPreviousWorkingDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UserPreviousWorkingDay(ctx context.Context, userID string) (calendar.Date, error) {
	profile, err := a.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return calendar.Date{}, err
	}

	today := calendar.Today(a.clock)
	start, end := HolidayWindow(today)
	holidays, err := a.holidayRepo.GetBetween(ctx, start, end)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("failed to load holidays between %s and %s: %w", start, end, err)
	}

	day, err := PreviousWorkingDay(today, holiday.NewDateSet(holidays), profile.Weekends)
	metrics.IncCalculation("previous_working_day", err)
	return day, err
}

// IsOfficeWorkingDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) IsOfficeWorkingDay(ctx context.Context) (attendance.OfficeWorkingDayResponse, error) {
	today := calendar.Today(a.clock)
	resp := attendance.OfficeWorkingDayResponse{Date: today}
	if today.Before(a.policy.CheckInStartDate) {
		return resp, nil
	}

	isHoliday, err := a.holidayRepo.ExistsOn(ctx, today)
	if err != nil {
		return resp, fmt.Errorf("failed to check holiday on %s: %w", today, err)
	}
	resp.IsHoliday = isHoliday
	resp.IsWorkingDay = IsOfficeWorkingDay(today, a.policy.CheckInStartDate, isHoliday)
	return resp, nil
}

// ActualHoursMinutes implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ActualHoursMinutes(ctx context.Context, hours float64) (attendance.HoursResponse, error) {
	if err := ValidateHours(hours); err != nil {
		return attendance.HoursResponse{}, err
	}
	return attendance.HoursResponse{Value: hours, Display: ActualHoursMinutes(hours)}, nil
}

// UserCheckOutTime implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UserCheckOutTime(ctx context.Context, userID string) (attendance.CheckOutTimeResponse, error) {
	profile, err := a.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return attendance.CheckOutTimeResponse{}, err
	}
	return attendance.CheckOutTimeResponse{
		UserID:   profile.UserID,
		BranchID: profile.BranchID,
		Hours:    CheckOutTime(profile.BranchID, a.policy.UKBranchID),
	}, nil
}
