package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/database"
)

type schedulerWatchRepository struct {
	db *database.DB
}

func NewSchedulerWatchRepository(db *database.DB) payroll.SchedulerWatchRepository {
	return &schedulerWatchRepository{db: db}
}

func (r *schedulerWatchRepository) Exists(ctx context.Context, date time.Time, command string, status payroll.SchedulerStatus) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM scheduler_watch
			WHERE date = $1 AND command = $2 AND status = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, date, command, string(status)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check scheduler run: %w", err)
	}
	return exists, nil
}

func (r *schedulerWatchRepository) Start(ctx context.Context, run payroll.SchedulerRun) (payroll.SchedulerRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO scheduler_watch (id, date, command, status, message, started_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := q.Exec(ctx, query, run.ID, run.Date, run.Command, string(run.Status), run.Message, run.StartedAt)
	if err != nil {
		return payroll.SchedulerRun{}, fmt.Errorf("failed to insert scheduler run: %w", err)
	}
	return run, nil
}

func (r *schedulerWatchRepository) Finish(ctx context.Context, id string, status payroll.SchedulerStatus, message string, finishedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE scheduler_watch
		SET status = $2, message = $3, finished_at = $4
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, string(status), message, finishedAt)
	if err != nil {
		return fmt.Errorf("failed to update scheduler run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrSchedulerRunNotFound
	}
	return nil
}
