package payroll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/format"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/metrics"
	"github.com/oklog/ulid/v2"
)

type PayrollServiceImpl struct {
	clock         calendar.Clock
	schedulerRepo payroll.SchedulerWatchRepository
	lopRepo       payroll.LOPRepository
	templates     payroll.TemplateStore
}

func NewPayrollService(
	clock calendar.Clock,
	schedulerRepo payroll.SchedulerWatchRepository,
	lopRepo payroll.LOPRepository,
	templates payroll.TemplateStore,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		clock:         clock,
		schedulerRepo: schedulerRepo,
		lopRepo:       lopRepo,
		templates:     templates,
	}
}

func (s *PayrollServiceImpl) CalculateForLOP(ctx context.Context, req payroll.CalculateLOPRequest) (payroll.CalculateLOPResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.CalculateLOPResponse{}, err
	}

	result, err := CalculateForLOP(req.Amount, req.DaysInMonth, req.LOP, req.LeaveDays, req.WorkingDays)
	metrics.IncCalculation("calculate_for_lop", err)
	if err != nil {
		return payroll.CalculateLOPResponse{}, err
	}
	metrics.ObserveLOPAmount(result.InexactFloat64())

	return payroll.CalculateLOPResponse{
		Amount:    req.Amount,
		Result:    result,
		Formatted: format.Currency(result, false),
	}, nil
}

func (s *PayrollServiceImpl) CanGeneratePayslip(ctx context.Context) bool {
	return CanGeneratePayslip(s.clock.Now())
}

func (s *PayrollServiceImpl) IsLOPGeneratedForCurrentMonth(ctx context.Context) (bool, error) {
	date := LOPReportDate(s.clock.Now())
	exists, err := s.schedulerRepo.Exists(ctx, date.Time(), payroll.CommandLOPGenerateReport, payroll.SchedulerStatusSuccess)
	if err != nil {
		return false, fmt.Errorf("failed to check scheduler log for %s: %w", date, err)
	}
	return exists, nil
}

func (s *PayrollServiceImpl) IsPendingLOP(ctx context.Context) (bool, error) {
	pending, err := s.lopRepo.ExistsPending(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check pending LOP: %w", err)
	}
	return pending, nil
}

func (s *PayrollServiceImpl) PayslipTemplate(ctx context.Context, monthYear string) (payroll.PayslipTemplateResponse, error) {
	fy, err := PayslipFinancialYear(monthYear)
	if err != nil {
		return payroll.PayslipTemplateResponse{}, err
	}

	label := fy.Label("_")
	name := payroll.PayslipTemplatePrefix + label
	exists, err := s.templates.TemplateExists(ctx, name)
	if err != nil {
		return payroll.PayslipTemplateResponse{}, fmt.Errorf("failed to check payslip template %s: %w", name, err)
	}

	resp := payroll.PayslipTemplateResponse{
		MonthYear:     monthYear,
		FinancialYear: label,
		Template:      name,
	}
	if !exists {
		resp.Template = payroll.DefaultPayslipTemplate
		resp.IsFallback = true
	}
	return resp, nil
}

func (s *PayrollServiceImpl) PayslipStatus(ctx context.Context) (payroll.PayslipStatusResponse, error) {
	now := s.clock.Now()

	generated, err := s.IsLOPGeneratedForCurrentMonth(ctx)
	if err != nil {
		return payroll.PayslipStatusResponse{}, err
	}
	pending, err := s.IsPendingLOP(ctx)
	if err != nil {
		return payroll.PayslipStatusResponse{}, err
	}

	return payroll.PayslipStatusResponse{
		CanGenerate:   CanGeneratePayslip(now),
		Cutoff:        PayslipCutoff(now),
		LOPGenerated:  generated,
		PendingLOP:    pending,
		FinancialYear: calendar.FinancialYearAt(calendar.DateOf(now)).Label("-"),
	}, nil
}

func (s *PayrollServiceImpl) GenerateLOPReport(ctx context.Context) (payroll.LOPReportResult, error) {
	now := s.clock.Now()
	if !CanGeneratePayslip(now) {
		return payroll.LOPReportResult{Skipped: true, Reason: "before payslip cutoff"}, nil
	}

	generated, err := s.IsLOPGeneratedForCurrentMonth(ctx)
	if err != nil {
		return payroll.LOPReportResult{}, err
	}
	if generated {
		return payroll.LOPReportResult{Skipped: true, Reason: "already generated for this month"}, nil
	}

	run, err := s.schedulerRepo.Start(ctx, payroll.SchedulerRun{
		ID:        ulid.Make().String(),
		Date:      LOPReportDate(now).Time(),
		Command:   payroll.CommandLOPGenerateReport,
		Status:    payroll.SchedulerStatusRunning,
		StartedAt: now,
	})
	if err != nil {
		return payroll.LOPReportResult{}, fmt.Errorf("failed to record scheduler run: %w", err)
	}

	count, err := s.lopRepo.CountPending(ctx, int(now.Month()), now.Year())
	if err != nil {
		if finishErr := s.schedulerRepo.Finish(ctx, run.ID, payroll.SchedulerStatusFailed, err.Error(), s.clock.Now()); finishErr != nil {
			slog.Error("Failed to mark scheduler run as failed", "run_id", run.ID, "error", finishErr)
		}
		return payroll.LOPReportResult{RunID: run.ID}, fmt.Errorf("failed to count pending LOP: %w", err)
	}

	monthYear := fmt.Sprintf("%02d-%d", int(now.Month()), now.Year())
	message := fmt.Sprintf("%d pending LOP entries for %s", count, monthYear)
	if err := s.schedulerRepo.Finish(ctx, run.ID, payroll.SchedulerStatusSuccess, message, s.clock.Now()); err != nil {
		return payroll.LOPReportResult{RunID: run.ID}, fmt.Errorf("failed to finish scheduler run: %w", err)
	}

	slog.Info("Generated LOP report", "run_id", run.ID, "pending_count", count)
	return payroll.LOPReportResult{RunID: run.ID, PendingCount: count, MonthYear: monthYear}, nil
}
