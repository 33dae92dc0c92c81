package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/storage"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-calendar-go/internal/service/file"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrUserIDMissing):
		Unauthorized(w, err.Error())

	// Calendar errors
	case errors.Is(err, calendar.ErrUnparseableInput),
		errors.Is(err, calendar.ErrInvalidMonth),
		errors.Is(err, calendar.ErrInvalidWeekday):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPreconditionViolation):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrInvalidMonthYear):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrSchedulerRunNotFound):
		NotFound(w, "Scheduler run not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNoWorkingDayFound):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrWorkProfileNotFound):
		NotFound(w, "Work profile not found")
	case errors.Is(err, attendance.ErrInvalidHours):
		BadRequest(w, err.Error(), nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already exists on this date")
	case errors.Is(err, holiday.ErrInvalidYear):
		BadRequest(w, err.Error(), nil)

	// Report domain errors
	case errors.Is(err, report.ErrInvalidMonth), errors.Is(err, report.ErrUnsupportedFormat):
		BadRequest(w, err.Error(), nil)

	// File errors
	case errors.Is(err, file.ErrInvalidFileType), errors.Is(err, file.ErrFileNameEmpty), errors.Is(err, storage.ErrInvalidPath):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
