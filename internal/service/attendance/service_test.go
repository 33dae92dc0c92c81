package attendance

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func holidaysOn(dates ...calendar.Date) *fakeHolidayRepo {
	repo := &fakeHolidayRepo{}
	for _, d := range dates {
		repo.holidays = append(repo.holidays, holiday.Holiday{ID: d.String(), Date: d, Name: "Holiday"})
	}
	return repo
}

func (f *fakeHolidayRepo) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	for _, h := range f.holidays {
		if h.ID == id {
			return h, nil
		}
	}
	return holiday.Holiday{}, holiday.ErrHolidayNotFound
}

func (f *fakeHolidayRepo) GetByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if h.Date.Year() == year {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) GetBetween(ctx context.Context, start, end calendar.Date) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if !h.Date.Before(start) && !h.Date.After(end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) ExistsOn(ctx context.Context, date calendar.Date) (bool, error) {
	for _, h := range f.holidays {
		if h.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHolidayRepo) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	f.holidays = append(f.holidays, h)
	return h, nil
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, id string) error {
	return errors.New("not supported")
}

type fakeProfileRepo map[string]attendance.WorkProfile

func (f fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (attendance.WorkProfile, error) {
	p, ok := f[userID]
	if !ok {
		return attendance.WorkProfile{}, attendance.ErrWorkProfileNotFound
	}
	return p, nil
}

func d(y int, m time.Month, day int) calendar.Date { return calendar.NewDate(y, m, day) }

func clockOn(day calendar.Date) calendar.FixedClock {
	return calendar.FixedClock{T: day.In(time.UTC).Add(10 * time.Hour)}
}

func strPtr(s string) *string { return &s }

func TestFirstWorkingDay(t *testing.T) {
	jan := d(2024, time.January, 17)

	assert.Equal(t, "2024-01-01", FirstWorkingDay(jan, holiday.DateSet{}).String())
	assert.Equal(t, "2024-01-02", FirstWorkingDay(jan, holiday.NewDateSet(holidaysOn(d(2024, 1, 1)).holidays)).String())
	// June 2024 opens on a weekend.
	assert.Equal(t, "2024-06-03", FirstWorkingDay(d(2024, time.June, 10), holiday.DateSet{}).String())
}

func TestFirstWorkingDay_AllWeekdaysHolidays(t *testing.T) {
	all := holidaysOn(calendar.Days(d(2024, 1, 1), d(2024, 1, 31))...)

	got := FirstWorkingDay(d(2024, 1, 10), holiday.NewDateSet(all.holidays))
	assert.Equal(t, "2024-01-01", got.String())
}

func TestPreviousWorkingDay(t *testing.T) {
	monday := d(2024, time.January, 15)

	got, err := PreviousWorkingDay(monday, holiday.DateSet{}, calendar.SaturdayAndSunday)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-12", got.String())

	got, err = PreviousWorkingDay(monday, holiday.DateSet{}, calendar.SundayOnly)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-13", got.String())

	got, err = PreviousWorkingDay(monday, holiday.NewDateSet(holidaysOn(d(2024, 1, 12)).holidays), calendar.SaturdayAndSunday)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-11", got.String())
}

func TestPreviousWorkingDay_Bounded(t *testing.T) {
	today := d(2024, time.March, 31)
	start, end := HolidayWindow(today)
	assert.Equal(t, "2024-02-29", start.String())
	assert.Equal(t, "2024-03-30", end.String())

	holidays := holidaysOn(calendar.Days(start, end)...)
	_, err := PreviousWorkingDay(today, holiday.NewDateSet(holidays.holidays), calendar.SaturdayAndSunday)
	assert.ErrorIs(t, err, attendance.ErrNoWorkingDayFound)

	everyDay := calendar.NewWeekendPolicy(time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday)
	_, err = PreviousWorkingDay(today, holiday.DateSet{}, everyDay)
	assert.ErrorIs(t, err, attendance.ErrNoWorkingDayFound)
}

func TestIsOfficeWorkingDay(t *testing.T) {
	start := d(2024, time.January, 1)

	assert.False(t, IsOfficeWorkingDay(d(2023, time.December, 29), start, false))
	assert.True(t, IsOfficeWorkingDay(d(2024, time.January, 5), start, false))
	assert.True(t, IsOfficeWorkingDay(d(2024, time.January, 6), start, false), "saturday")
	assert.False(t, IsOfficeWorkingDay(d(2024, time.January, 7), start, false), "sunday")
	assert.False(t, IsOfficeWorkingDay(d(2024, time.January, 26), start, true), "holiday")
}

func TestActualHoursMinutes(t *testing.T) {
	tests := map[float64]string{
		7.5:   "7 hrs 30 mins",
		-3:    "0 hrs 0 mins",
		0:     "0 hrs 0 mins",
		2.25:  "2 hrs 15 mins",
		1.999: "2 hrs 0 mins",
		8:     "8 hrs 0 mins",
	}
	for in, want := range tests {
		assert.Equal(t, want, ActualHoursMinutes(in), "input %v", in)
	}
}

func TestCheckOutTime(t *testing.T) {
	assert.Equal(t, 7.5, CheckOutTime(strPtr("uk"), "uk"))
	assert.Equal(t, 8.0, CheckOutTime(strPtr("in"), "uk"))
	assert.Equal(t, 8.0, CheckOutTime(nil, "uk"))
	assert.Equal(t, 8.0, CheckOutTime(strPtr(""), ""))
}

func newTestService(today calendar.Date, holidays *fakeHolidayRepo) attendance.AttendanceService {
	profiles := fakeProfileRepo{
		"u-uk": {UserID: "u-uk", BranchID: strPtr("branch-uk"), Weekends: calendar.SaturdayAndSunday},
		"u-in": {UserID: "u-in", BranchID: strPtr("branch-in"), Weekends: calendar.SundayOnly},
	}
	policy := attendance.OfficePolicy{CheckInStartDate: d(2024, time.January, 1), UKBranchID: "branch-uk"}
	return NewAttendanceService(clockOn(today), policy, holidays, profiles)
}

func TestAttendanceService_PreviousWorkingDay(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(d(2024, time.January, 15), holidaysOn(d(2024, 1, 12)))

	got, err := svc.UserPreviousWorkingDay(ctx, "u-uk")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-11", got.String())

	got, err = svc.UserPreviousWorkingDay(ctx, "u-in")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-13", got.String())

	_, err = svc.UserPreviousWorkingDay(ctx, "missing")
	assert.ErrorIs(t, err, attendance.ErrWorkProfileNotFound)
}

func TestAttendanceService_OfficeWorkingDay(t *testing.T) {
	ctx := context.Background()

	resp, err := newTestService(d(2024, time.January, 26), holidaysOn(d(2024, 1, 26))).IsOfficeWorkingDay(ctx)
	require.NoError(t, err)
	assert.False(t, resp.IsWorkingDay)
	assert.True(t, resp.IsHoliday)

	resp, err = newTestService(d(2024, time.January, 27), holidaysOn()).IsOfficeWorkingDay(ctx)
	require.NoError(t, err)
	assert.True(t, resp.IsWorkingDay)

	resp, err = newTestService(d(2023, time.June, 1), holidaysOn()).IsOfficeWorkingDay(ctx)
	require.NoError(t, err)
	assert.False(t, resp.IsWorkingDay)
}

func TestAttendanceService_FirstWorkingDayAndCheckOut(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(d(2024, time.January, 20), holidaysOn(d(2024, 1, 1), d(2024, 1, 2)))

	first, err := svc.CurrentMonthFirstWorkingDay(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-03", first.String())

	out, err := svc.UserCheckOutTime(ctx, "u-uk")
	require.NoError(t, err)
	assert.Equal(t, 7.5, out.Hours)

	out, err = svc.UserCheckOutTime(ctx, "u-in")
	require.NoError(t, err)
	assert.Equal(t, 8.0, out.Hours)

	hours, err := svc.ActualHoursMinutes(ctx, 1.75)
	require.NoError(t, err)
	assert.Equal(t, "1 hrs 45 mins", hours.Display)
}

func TestAttendanceService_ActualHoursMinutesRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(d(2024, time.January, 15), holidaysOn())

	for _, in := range []float64{math.Inf(1), math.Inf(-1), math.NaN(), 1e30, -1e30} {
		_, err := svc.ActualHoursMinutes(ctx, in)
		assert.ErrorIs(t, err, attendance.ErrInvalidHours, "input %v", in)
	}

	_, err := svc.ActualHoursMinutes(ctx, attendance.MaxHoursValue)
	assert.NoError(t, err)
}

func TestActualHoursMinutes_ClampsLargeInput(t *testing.T) {
	assert.Equal(t, "1000000 hrs 0 mins", ActualHoursMinutes(1e30))
	assert.Equal(t, "1000000 hrs 0 mins", ActualHoursMinutes(math.Inf(1)))
	assert.Equal(t, "0 hrs 0 mins", ActualHoursMinutes(math.NaN()))
}
