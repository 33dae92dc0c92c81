package payroll

import "context"

// PayrollService defines payroll period and LOP operations.
type PayrollService interface {
	// CalculateForLOP applies the loss-of-pay formula to a monthly amount.
	CalculateForLOP(ctx context.Context, req CalculateLOPRequest) (CalculateLOPResponse, error)

	// CanGeneratePayslip reports whether the current month's payslip window is open.
	CanGeneratePayslip(ctx context.Context) bool

	IsLOPGeneratedForCurrentMonth(ctx context.Context) (bool, error)
	IsPendingLOP(ctx context.Context) (bool, error)

	// PayslipTemplate resolves the template for a "month-year" value with fallback.
	PayslipTemplate(ctx context.Context, monthYear string) (PayslipTemplateResponse, error)

	PayslipStatus(ctx context.Context) (PayslipStatusResponse, error)

	// GenerateLOPReport runs the monthly LOP report job at most once per month.
	GenerateLOPReport(ctx context.Context) (LOPReportResult, error)
}
