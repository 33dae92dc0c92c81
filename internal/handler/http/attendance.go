package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-calendar-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/jwt"
)

type AttendanceHandler interface {
	FirstWorkingDay(w http.ResponseWriter, r *http.Request)
	OfficeWorkingDay(w http.ResponseWriter, r *http.Request)
	Hours(w http.ResponseWriter, r *http.Request)

	// Authenticated
	PreviousWorkingDay(w http.ResponseWriter, r *http.Request)
	CheckOutTime(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) FirstWorkingDay(w http.ResponseWriter, r *http.Request) {
	day, err := h.attendanceService.CurrentMonthFirstWorkingDay(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.NewWorkingDayResponse(day))
}

func (h *attendanceHandlerImpl) OfficeWorkingDay(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.IsOfficeWorkingDay(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) Hours(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	value := q.float("value")
	if err := q.err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ActualHoursMinutes(r.Context(), value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) PreviousWorkingDay(w http.ResponseWriter, r *http.Request) {
	userID, err := jwt.UserIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	day, err := h.attendanceService.UserPreviousWorkingDay(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.NewWorkingDayResponse(day))
}

func (h *attendanceHandlerImpl) CheckOutTime(w http.ResponseWriter, r *http.Request) {
	userID, err := jwt.UserIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.UserCheckOutTime(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
