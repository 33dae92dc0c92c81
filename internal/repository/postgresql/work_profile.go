package postgresql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workProfileRepository struct {
	db *database.DB
}

func NewWorkProfileRepository(db *database.DB) attendance.WorkProfileRepository {
	return &workProfileRepository{db: db}
}

func (r *workProfileRepository) GetByUserID(ctx context.Context, userID string) (attendance.WorkProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, branch_id, COALESCE(weekends, '{}')
		FROM users
		WHERE id = $1
	`

	var p attendance.WorkProfile
	var weekends []string
	err := q.QueryRow(ctx, query, userID).Scan(&p.UserID, &p.EmployeeID, &p.BranchID, &weekends)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.WorkProfile{}, attendance.ErrWorkProfileNotFound
		}
		return attendance.WorkProfile{}, fmt.Errorf("failed to get work profile: %w", err)
	}

	p.Weekends = calendar.SaturdayAndSunday
	if len(weekends) > 0 {
		policy, err := calendar.ParseWeekendPolicy(weekends)
		if err != nil {
			slog.Warn("Invalid weekends for user, using default", "user_id", userID, "weekends", weekends, "error", err)
		} else {
			p.Weekends = policy
		}
	}

	return p, nil
}
