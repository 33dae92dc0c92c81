package report

import "context"

// ReportService builds month working calendars and their file exports.
type ReportService interface {
	GenerateMonthCalendar(ctx context.Context, req MonthCalendarRequest) (MonthCalendarReport, error)

	// ExportMonthCalendar renders the month calendar as an xlsx or pdf file.
	ExportMonthCalendar(ctx context.Context, req MonthCalendarRequest) (ExportFile, error)
}
