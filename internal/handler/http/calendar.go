package http

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-calendar-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/validator"
)

type CalendarHandler interface {
	FinancialYear(w http.ResponseWriter, r *http.Request)
	FinancialYearLabel(w http.ResponseWriter, r *http.Request)
	WorkingDays(w http.ResponseWriter, r *http.Request)
	WeekendDays(w http.ResponseWriter, r *http.Request)
	WeekendDates(w http.ResponseWriter, r *http.Request)
	Saturdays(w http.ResponseWriter, r *http.Request)
	DayNames(w http.ResponseWriter, r *http.Request)
	MonthCalendar(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type FinancialYearResponse struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	Label           string `json:"label"`
	DisplayLabel    string `json:"display_label"`
	RemainingMonths int    `json:"remaining_months"`
}

type DayCountResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Count int    `json:"count"`
}

type calendarHandlerImpl struct {
	clock         calendar.Clock
	reportService report.ReportService
}

func NewCalendarHandler(clock calendar.Clock, reportService report.ReportService) CalendarHandler {
	return &calendarHandlerImpl{clock: clock, reportService: reportService}
}

// maxRangeDays bounds the span walked by the date range endpoints.
const maxRangeDays = 366

// rangeParams reads start and end, defaulting to the current month.
func (h *calendarHandlerImpl) rangeParams(q *queryParams) (calendar.Date, calendar.Date) {
	today := calendar.Today(h.clock)
	start, end := q.date("start", today.StartOfMonth()), q.date("end", today.EndOfMonth())
	if calendar.DaysBetween(start, end) > maxRangeDays {
		q.errs.Add("end", fmt.Sprintf("range must not exceed %d days", maxRangeDays))
	}
	return start, end
}

func (h *calendarHandlerImpl) FinancialYear(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	now := h.clock.Now()

	year := q.integer("year", now.Year())
	if !validator.IsValidYear(year) {
		q.errs.Add("year", "year must be between 1900 and 9999")
	}
	month := now.Month()
	if v := q.get("month"); v != "" {
		m, err := calendar.ParseMonth(v)
		if err != nil {
			q.errs.Add("month", "must be a month number or name")
		}
		month = m
	}
	if err := q.err(); err != nil {
		response.HandleError(w, err)
		return
	}

	layout := q.get("format")
	if layout == "" {
		layout = calendar.DateLayout
	}

	fy := calendar.FinancialYearOf(year, month)
	start, end := fy.Format(layout)
	metrics.IncCalculation("financial_year", nil)

	response.Success(w, FinancialYearResponse{
		Start:           start,
		End:             end,
		Label:           fy.Label("-"),
		DisplayLabel:    fy.DisplayLabel(),
		RemainingMonths: calendar.RemainingFinancialYearMonths(calendar.DateOf(now)),
	})
}

func (h *calendarHandlerImpl) FinancialYearLabel(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		slug = "-"
	}

	label := calendar.FinancialYearLabel(q.get("month_year"), slug, h.clock)
	metrics.IncCalculation("financial_year_label", nil)

	response.Success(w, map[string]string{"label": label})
}

func (h *calendarHandlerImpl) WorkingDays(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	today := q.date("date", calendar.Today(h.clock))
	saturdayWorking := q.boolean("saturday_working")
	if err := q.err(); err != nil {
		response.HandleError(w, err)
		return
	}

	count := calendar.NumberOfWorkingDays(today, saturdayWorking)
	metrics.IncCalculation("working_days", nil)

	response.Success(w, DayCountResponse{
		Start: today.StartOfMonth().String(),
		End:   today.EndOfMonth().String(),
		Count: count,
	})
}

func (h *calendarHandlerImpl) WeekendDays(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	start, end := h.rangeParams(q)
	saturdayWorking := q.boolean("saturday_working")
	if err := q.err(); err != nil {
		response.HandleError(w, err)
		return
	}

	count := calendar.NumberOfWeekEndDays(start, end, saturdayWorking)
	metrics.IncCalculation("weekend_days", nil)

	response.Success(w, DayCountResponse{Start: start.String(), End: end.String(), Count: count})
}

func (h *calendarHandlerImpl) WeekendDates(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	start, end := h.rangeParams(q)
	saturdayWorking := q.boolean("saturday_working")
	if err := q.err(); err != nil {
		response.HandleError(w, err)
		return
	}

	dates := calendar.WeekendDates(start, end, saturdayWorking)
	if dates == nil {
		dates = []string{}
	}
	metrics.IncCalculation("weekend_dates", nil)

	response.Success(w, map[string]interface{}{
		"start": start.String(),
		"end":   end.String(),
		"dates": dates,
	})
}

func (h *calendarHandlerImpl) Saturdays(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	start, end := h.rangeParams(q)
	if err := q.err(); err != nil {
		response.HandleError(w, err)
		return
	}

	count := calendar.NumberOfSaturdays(start, end)
	metrics.IncCalculation("saturdays", nil)

	response.Success(w, DayCountResponse{Start: start.String(), End: end.String(), Count: count})
}

func (h *calendarHandlerImpl) DayNames(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	start, end := h.rangeParams(q)
	if err := q.err(); err != nil {
		response.HandleError(w, err)
		return
	}

	metrics.IncCalculation("day_names", nil)
	response.Success(w, calendar.DayNamesAndDates(start, end))
}

func (h *calendarHandlerImpl) monthRequest(r *http.Request) (report.MonthCalendarRequest, error) {
	q := newQueryParams(r)
	req := report.MonthCalendarRequest{
		Month:           q.get("month"),
		Format:          q.get("format"),
		SaturdayWorking: q.boolean("saturday_working"),
	}
	if req.Month == "" {
		req.Month = h.clock.Now().Format(report.MonthLayout)
	}
	return req, q.err()
}

func (h *calendarHandlerImpl) MonthCalendar(w http.ResponseWriter, r *http.Request) {
	req, err := h.monthRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GenerateMonthCalendar(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *calendarHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req, err := h.monthRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if req.Format == "" {
		req.Format = report.FormatXLSX
	}

	file, err := h.reportService.ExportMonthCalendar(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file.FileName, file.ContentType, file.Data)
}
