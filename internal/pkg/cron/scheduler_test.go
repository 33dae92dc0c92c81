package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()

	var calls int32
	s.AddJob("ok", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	s.AddJob("skip", time.Hour, func(ctx context.Context) error {
		return ErrSkipped
	})
	boom := errors.New("boom")
	s.AddJob("fail", time.Hour, func(ctx context.Context) error {
		return boom
	})

	assert.Equal(t, []string{"ok", "skip", "fail"}, s.Jobs())
	assert.ErrorIs(t, s.RunOnce(context.Background()), boom)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler()

	ran := make(chan struct{}, 1)
	s.AddJob("tick", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()
}

type stubPayrollService struct {
	payroll.PayrollService
	result payroll.LOPReportResult
	err    error
}

func (s stubPayrollService) GenerateLOPReport(ctx context.Context) (payroll.LOPReportResult, error) {
	return s.result, s.err
}

type recordingMailer struct {
	to      []string
	reports []email.LOPReport
	err     error
}

func (m *recordingMailer) SendLOPReport(to []string, report email.LOPReport) error {
	m.to = to
	m.reports = append(m.reports, report)
	return m.err
}

func TestPayrollJobs_GenerateLOPReport(t *testing.T) {
	ctx := context.Background()
	clock := calendar.FixedClock{T: time.Date(2026, time.October, 27, 8, 0, 0, 0, time.UTC)}

	jobs := NewPayrollJobs(clock, stubPayrollService{result: payroll.LOPReportResult{Skipped: true, Reason: "before payslip cutoff"}}, nil, nil)
	assert.ErrorIs(t, jobs.GenerateLOPReport(ctx), ErrSkipped)

	jobs = NewPayrollJobs(clock, stubPayrollService{result: payroll.LOPReportResult{RunID: "01J", PendingCount: 2}}, nil, nil)
	require.NoError(t, jobs.GenerateLOPReport(ctx))

	s := NewScheduler()
	jobs.RegisterJobs(s, 0)
	assert.Equal(t, []string{payroll.CommandLOPGenerateReport}, s.Jobs())
	require.NoError(t, s.RunOnce(ctx))
}

func TestPayrollJobs_MailsReport(t *testing.T) {
	ctx := context.Background()
	clock := calendar.FixedClock{T: time.Date(2026, time.October, 27, 8, 0, 0, 0, time.UTC)}
	result := payroll.LOPReportResult{RunID: "01J", PendingCount: 2, MonthYear: "10-2026"}

	mailer := &recordingMailer{}
	jobs := NewPayrollJobs(clock, stubPayrollService{result: result}, mailer, []string{"hr@example.com"})
	require.NoError(t, jobs.GenerateLOPReport(ctx))

	require.Len(t, mailer.reports, 1)
	assert.Equal(t, []string{"hr@example.com"}, mailer.to)
	assert.Equal(t, "2026_to_2027", mailer.reports[0].FinancialYear)
	assert.Equal(t, 2, mailer.reports[0].PendingCount)

	mailer.err = errors.New("smtp down")
	assert.NoError(t, jobs.GenerateLOPReport(ctx), "mail failures do not fail the job")

	skipped := NewPayrollJobs(clock, stubPayrollService{result: payroll.LOPReportResult{Skipped: true}}, mailer, nil)
	assert.ErrorIs(t, skipped.GenerateLOPReport(ctx), ErrSkipped)
	assert.Len(t, mailer.reports, 2)
}
