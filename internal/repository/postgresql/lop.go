package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/database"
)

type lopRepository struct {
	db *database.DB
}

func NewLOPRepository(db *database.DB) payroll.LOPRepository {
	return &lopRepository{db: db}
}

func (r *lopRepository) ExistsPending(ctx context.Context) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM lops WHERE status = $1)`
	if err := q.QueryRow(ctx, query, string(payroll.LOPStatusPending)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check pending LOP: %w", err)
	}
	return exists, nil
}

func (r *lopRepository) CountPending(ctx context.Context, month, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	query := `SELECT COUNT(*) FROM lops WHERE status = $1 AND month = $2 AND year = $3`
	if err := q.QueryRow(ctx, query, string(payroll.LOPStatusPending), month, year).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending LOP: %w", err)
	}
	return count, nil
}
