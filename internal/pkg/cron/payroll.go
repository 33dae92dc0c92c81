package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/email"
)

// PayrollJobs contains payroll-related cron jobs
type PayrollJobs struct {
	clock          calendar.Clock
	payrollService payroll.PayrollService
	mailer         email.EmailService
	recipients     []string
}

// NewPayrollJobs creates payroll cron jobs. mailer may be nil.
func NewPayrollJobs(clock calendar.Clock, payrollService payroll.PayrollService, mailer email.EmailService, recipients []string) *PayrollJobs {
	return &PayrollJobs{
		clock:          clock,
		payrollService: payrollService,
		mailer:         mailer,
		recipients:     recipients,
	}
}

// RegisterJobs registers all payroll-related cron jobs. A non-positive
// interval means hourly.
func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	// Runs at most once per month; the scheduler log makes later ticks no-ops
	scheduler.AddJob(
		payroll.CommandLOPGenerateReport,
		interval,
		j.GenerateLOPReport,
	)
}

// GenerateLOPReport records the monthly LOP report once the payslip cutoff has
// passed and mails the summary to HR.
func (j *PayrollJobs) GenerateLOPReport(ctx context.Context) error {
	res, err := j.payrollService.GenerateLOPReport(ctx)
	if err != nil {
		return err
	}
	if res.Skipped {
		return fmt.Errorf("%w: %s", ErrSkipped, res.Reason)
	}

	slog.Info("Cron: LOP report generated", "run_id", res.RunID, "pending_count", res.PendingCount)

	if j.mailer == nil {
		return nil
	}
	// The run is already recorded, so a mail failure must not fail the job.
	if err := j.mailer.SendLOPReport(j.recipients, email.LOPReport{
		MonthYear:     res.MonthYear,
		FinancialYear: calendar.FinancialYearMailLabel(res.MonthYear, j.clock),
		PendingCount:  res.PendingCount,
		RunID:         res.RunID,
		GeneratedAt:   j.clock.Now(),
	}); err != nil {
		slog.Error("Cron: failed to mail LOP report", "run_id", res.RunID, "error", err)
	}
	return nil
}
