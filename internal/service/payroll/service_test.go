package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSchedulerRepo struct {
	runs map[string]payroll.SchedulerRun
}

func newFakeSchedulerRepo() *fakeSchedulerRepo {
	return &fakeSchedulerRepo{runs: make(map[string]payroll.SchedulerRun)}
}

func (f *fakeSchedulerRepo) Exists(ctx context.Context, date time.Time, command string, status payroll.SchedulerStatus) (bool, error) {
	for _, run := range f.runs {
		if run.Date.Equal(date) && run.Command == command && run.Status == status {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSchedulerRepo) Start(ctx context.Context, run payroll.SchedulerRun) (payroll.SchedulerRun, error) {
	f.runs[run.ID] = run
	return run, nil
}

func (f *fakeSchedulerRepo) Finish(ctx context.Context, id string, status payroll.SchedulerStatus, message string, finishedAt time.Time) error {
	run, ok := f.runs[id]
	if !ok {
		return payroll.ErrSchedulerRunNotFound
	}
	run.Status = status
	run.Message = &message
	run.FinishedAt = &finishedAt
	f.runs[id] = run
	return nil
}

type fakeLOPRepo struct {
	pending int
	err     error
}

func (f *fakeLOPRepo) ExistsPending(ctx context.Context) (bool, error) {
	return f.pending > 0, f.err
}

func (f *fakeLOPRepo) CountPending(ctx context.Context, month, year int) (int, error) {
	return f.pending, f.err
}

type fakeTemplates map[string]bool

func (f fakeTemplates) TemplateExists(ctx context.Context, name string) (bool, error) {
	return f[name], nil
}

func at(y int, m time.Month, d, h, min, s int) calendar.FixedClock {
	return calendar.FixedClock{T: time.Date(y, m, d, h, min, s, 0, time.UTC)}
}

func TestCalculateForLOP(t *testing.T) {
	got, err := CalculateForLOP(decimal.NewFromInt(30000), 30, decimal.NewFromInt(2), decimal.NewFromInt(1), 25)
	require.NoError(t, err)
	// 30000 - 1000 * (2 + 2*0.04) = 27920
	assert.Equal(t, "27920", got.String())

	again, err := CalculateForLOP(decimal.NewFromInt(30000), 30, decimal.NewFromInt(2), decimal.NewFromInt(1), 25)
	require.NoError(t, err)
	assert.True(t, got.Equal(again))

	// 10000 - 10000/31 = 9677.419...
	got, err = CalculateForLOP(decimal.NewFromInt(10000), 31, decimal.NewFromInt(1), decimal.Zero, 22)
	require.NoError(t, err)
	assert.Equal(t, "9677", got.String())

	// 101 - 50.5 = 50.5, halves round away from zero.
	got, err = CalculateForLOP(decimal.NewFromInt(101), 2, decimal.NewFromInt(1), decimal.Zero, 1)
	require.NoError(t, err)
	assert.Equal(t, "51", got.String())
}

func TestCalculateForLOP_ZeroDivisor(t *testing.T) {
	_, err := CalculateForLOP(decimal.NewFromInt(30000), 0, decimal.NewFromInt(2), decimal.NewFromInt(1), 25)
	assert.ErrorIs(t, err, payroll.ErrPreconditionViolation)

	_, err = CalculateForLOP(decimal.NewFromInt(30000), 30, decimal.NewFromInt(2), decimal.NewFromInt(1), 0)
	assert.ErrorIs(t, err, payroll.ErrPreconditionViolation)
}

func TestPayslipCutoff(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, time.October, 3, 8, 0, 0, 0, loc)

	assert.Equal(t, time.Date(2026, time.October, 26, 12, 0, 0, 0, loc), PayslipCutoff(now))

	assert.False(t, CanGeneratePayslip(time.Date(2026, time.October, 26, 11, 59, 59, 0, loc)))
	assert.True(t, CanGeneratePayslip(time.Date(2026, time.October, 26, 12, 0, 0, 0, loc)))
	assert.True(t, CanGeneratePayslip(time.Date(2026, time.October, 31, 0, 0, 0, 0, loc)))
	assert.False(t, CanGeneratePayslip(time.Date(2026, time.November, 1, 0, 0, 0, 0, loc)))
}

func TestLOPReportDate(t *testing.T) {
	assert.Equal(t, "2026-10-26", LOPReportDate(time.Date(2026, time.October, 2, 0, 0, 0, 0, time.UTC)).String())
	assert.Equal(t, "2026-02-26", LOPReportDate(time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)).String())
}

func TestPayslipFinancialYear(t *testing.T) {
	tests := []struct {
		monthYear string
		want      string
	}{
		{"03-2024", "2023_2024"},
		{"04-2024", "2024_2025"},
		{"Apr-2025", "2025_2026"},
		{"01/2025", "2024_2025"},
		{"05", "2023_2024"},
		{"", "2023_2024"},
		{"-2025", "2025_2026"},
	}
	for _, tt := range tests {
		fy, err := PayslipFinancialYear(tt.monthYear)
		require.NoError(t, err, tt.monthYear)
		assert.Equal(t, tt.want, fy.Label("_"), tt.monthYear)
	}

	_, err := PayslipFinancialYear("13-2024")
	assert.ErrorIs(t, err, payroll.ErrInvalidMonthYear)
	_, err = PayslipFinancialYear("04-twenty")
	assert.ErrorIs(t, err, payroll.ErrInvalidMonthYear)
}

func TestPayslipTemplate_Fallback(t *testing.T) {
	ctx := context.Background()
	templates := fakeTemplates{"common/payslip/2024_2025": true}
	svc := NewPayrollService(at(2026, time.October, 16, 9, 0, 0), newFakeSchedulerRepo(), &fakeLOPRepo{}, templates)

	resp, err := svc.PayslipTemplate(ctx, "06-2024")
	require.NoError(t, err)
	assert.Equal(t, "common/payslip/2024_2025", resp.Template)
	assert.False(t, resp.IsFallback)

	resp, err = svc.PayslipTemplate(ctx, "06-2025")
	require.NoError(t, err)
	assert.Equal(t, payroll.DefaultPayslipTemplate, resp.Template)
	assert.Equal(t, "2025_2026", resp.FinancialYear)
	assert.True(t, resp.IsFallback)

	_, err = svc.PayslipTemplate(ctx, "xx-2025")
	assert.ErrorIs(t, err, payroll.ErrInvalidMonthYear)
}

func TestCalculateForLOP_Service(t *testing.T) {
	svc := NewPayrollService(at(2026, time.October, 16, 9, 0, 0), newFakeSchedulerRepo(), &fakeLOPRepo{}, fakeTemplates{})

	resp, err := svc.CalculateForLOP(context.Background(), payroll.CalculateLOPRequest{
		Amount:      decimal.NewFromInt(30000),
		DaysInMonth: 30,
		LOP:         decimal.NewFromInt(2),
		LeaveDays:   decimal.NewFromInt(1),
		WorkingDays: 25,
	})
	require.NoError(t, err)
	assert.Equal(t, "27920", resp.Result.String())
	assert.Equal(t, "27,920", resp.Formatted)

	_, err = svc.CalculateForLOP(context.Background(), payroll.CalculateLOPRequest{Amount: decimal.NewFromInt(-1), DaysInMonth: 30, WorkingDays: 25})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, payroll.ErrPreconditionViolation)
}

func TestGenerateLOPReport_BeforeCutoff(t *testing.T) {
	repo := newFakeSchedulerRepo()
	svc := NewPayrollService(at(2026, time.October, 26, 11, 59, 0), repo, &fakeLOPRepo{pending: 3}, fakeTemplates{})

	res, err := svc.GenerateLOPReport(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Empty(t, repo.runs)
}

func TestGenerateLOPReport_OncePerMonth(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSchedulerRepo()
	svc := NewPayrollService(at(2026, time.October, 27, 8, 0, 0), repo, &fakeLOPRepo{pending: 3}, fakeTemplates{})

	generated, err := svc.IsLOPGeneratedForCurrentMonth(ctx)
	require.NoError(t, err)
	assert.False(t, generated)

	res, err := svc.GenerateLOPReport(ctx)
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, 3, res.PendingCount)
	assert.Equal(t, "10-2026", res.MonthYear)
	require.Contains(t, repo.runs, res.RunID)

	run := repo.runs[res.RunID]
	assert.Equal(t, payroll.SchedulerStatusSuccess, run.Status)
	assert.Equal(t, "2026-10-26", calendar.DateOf(run.Date).String())
	assert.Equal(t, "3 pending LOP entries for 10-2026", *run.Message)

	generated, err = svc.IsLOPGeneratedForCurrentMonth(ctx)
	require.NoError(t, err)
	assert.True(t, generated)

	res, err = svc.GenerateLOPReport(ctx)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Len(t, repo.runs, 1)
}

func TestGenerateLOPReport_RecordsFailure(t *testing.T) {
	repo := newFakeSchedulerRepo()
	svc := NewPayrollService(at(2026, time.October, 27, 8, 0, 0), repo, &fakeLOPRepo{err: errors.New("db down")}, fakeTemplates{})

	res, err := svc.GenerateLOPReport(context.Background())
	require.Error(t, err)
	assert.Equal(t, payroll.SchedulerStatusFailed, repo.runs[res.RunID].Status)
}

func TestPayslipStatus(t *testing.T) {
	svc := NewPayrollService(at(2026, time.March, 27, 8, 0, 0), newFakeSchedulerRepo(), &fakeLOPRepo{pending: 1}, fakeTemplates{})

	status, err := svc.PayslipStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, status.CanGenerate)
	assert.False(t, status.LOPGenerated)
	assert.True(t, status.PendingLOP)
	assert.Equal(t, "2025-2026", status.FinancialYear)
	assert.Equal(t, time.Date(2026, time.March, 26, 12, 0, 0, 0, time.UTC), status.Cutoff)
}
