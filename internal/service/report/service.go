package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/metrics"
)

type ReportServiceImpl struct {
	clock       calendar.Clock
	holidayRepo holiday.HolidayRepository
}

func NewReportService(clock calendar.Clock, holidayRepo holiday.HolidayRepository) report.ReportService {
	return &ReportServiceImpl{
		clock:       clock,
		holidayRepo: holidayRepo,
	}
}

// GenerateMonthCalendar lists every day of the month with its weekend and holiday flags
func (s *ReportServiceImpl) GenerateMonthCalendar(ctx context.Context, req report.MonthCalendarRequest) (report.MonthCalendarReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthCalendarReport{}, err
	}

	monthStart, err := req.MonthStart()
	if err != nil {
		return report.MonthCalendarReport{}, err
	}
	month := calendar.DateOf(monthStart)

	holidays, err := s.holidayRepo.GetBetween(ctx, month.StartOfMonth(), month.EndOfMonth())
	if err != nil {
		return report.MonthCalendarReport{}, fmt.Errorf("failed to get holidays: %w", err)
	}

	result := BuildMonthCalendar(month, calendar.WeekendPolicyFor(req.SaturdayWorking), holidays)
	result.GeneratedAt = s.clock.Now().Format(time.RFC3339)
	return result, nil
}

// ExportMonthCalendar renders the month calendar in the requested file format
func (s *ReportServiceImpl) ExportMonthCalendar(ctx context.Context, req report.MonthCalendarRequest) (report.ExportFile, error) {
	start := time.Now()

	if req.Format != report.FormatXLSX && req.Format != report.FormatPDF {
		metrics.ObserveExport(req.Format, metrics.ResultError, time.Since(start))
		return report.ExportFile{}, fmt.Errorf("%w: %q", report.ErrUnsupportedFormat, req.Format)
	}

	cal, err := s.GenerateMonthCalendar(ctx, req)
	if err != nil {
		metrics.ObserveExport(req.Format, metrics.ResultError, time.Since(start))
		return report.ExportFile{}, err
	}

	file := report.ExportFile{FileName: fmt.Sprintf("working-calendar-%s.%s", cal.Month, req.Format)}
	switch req.Format {
	case report.FormatXLSX:
		file.ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		file.Data, err = MonthCalendarXLSX(cal)
	case report.FormatPDF:
		file.ContentType = "application/pdf"
		file.Data, err = MonthCalendarPDF(cal)
	}
	if err != nil {
		metrics.ObserveExport(req.Format, metrics.ResultError, time.Since(start))
		return report.ExportFile{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	metrics.ObserveExport(req.Format, metrics.ResultSuccess, time.Since(start))
	slog.Info("Exported month calendar", "month", cal.Month, "format", req.Format, "bytes", len(file.Data))
	return file, nil
}

// BuildMonthCalendar classifies each day of month's calendar month.
func BuildMonthCalendar(month calendar.Date, policy calendar.WeekendPolicy, holidays []holiday.Holiday) report.MonthCalendarReport {
	names := make(map[string]string, len(holidays))
	for _, h := range holidays {
		names[h.Date.String()] = h.Name
	}

	first := month.StartOfMonth()
	result := report.MonthCalendarReport{
		Month:         first.Format(report.MonthLayout),
		Label:         first.Format("January 2006"),
		FinancialYear: calendar.FinancialYearAt(first).Label("-"),
		WeekendPolicy: policy.String(),
	}

	for _, d := range calendar.Days(first, month.EndOfMonth()) {
		name, isHoliday := names[d.String()]
		day := report.MonthCalendarDay{
			Date:        d.String(),
			Weekday:     d.Weekday().String(),
			IsWeekend:   policy.IsWeekend(d),
			IsHoliday:   isHoliday,
			HolidayName: name,
		}
		day.IsWorkingDay = !day.IsWeekend && !day.IsHoliday

		result.Summary.TotalDays++
		if day.IsWorkingDay {
			result.Summary.WorkingDays++
		}
		if day.IsWeekend {
			result.Summary.WeekendDays++
		}
		if day.IsHoliday {
			result.Summary.Holidays++
		}
		result.Days = append(result.Days, day)
	}

	return result
}
