package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-calendar-go/internal/handler/http/response"
)

type PayrollHandler interface {
	CalculateLOP(w http.ResponseWriter, r *http.Request)
	PayslipStatus(w http.ResponseWriter, r *http.Request)
	PayslipTemplate(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) CalculateLOP(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculateLOPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.CalculateForLOP(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) PayslipStatus(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.PayslipStatus(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) PayslipTemplate(w http.ResponseWriter, r *http.Request) {
	monthYear := r.URL.Query().Get("month_year")

	result, err := h.payrollService.PayslipTemplate(r.Context(), monthYear)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
