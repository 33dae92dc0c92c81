package payroll

import (
	"context"
	"time"
)

// SchedulerWatchRepository reads and writes the scheduler_watch run log.
type SchedulerWatchRepository interface {
	// Exists reports whether a run for command on date finished with status.
	Exists(ctx context.Context, date time.Time, command string, status SchedulerStatus) (bool, error)
	Start(ctx context.Context, run SchedulerRun) (SchedulerRun, error)
	Finish(ctx context.Context, id string, status SchedulerStatus, message string, finishedAt time.Time) error
}

// LOPRepository defines read access to loss-of-pay entries.
type LOPRepository interface {
	ExistsPending(ctx context.Context) (bool, error)
	CountPending(ctx context.Context, month, year int) (int, error)
}

// TemplateStore answers whether a payslip template resource exists.
type TemplateStore interface {
	TemplateExists(ctx context.Context, name string) (bool, error)
}
