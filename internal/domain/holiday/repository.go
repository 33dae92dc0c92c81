package holiday

import (
	"context"

	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
)

type HolidayRepository interface {
	GetByID(ctx context.Context, id string) (Holiday, error)
	GetByYear(ctx context.Context, year int) ([]Holiday, error)
	// GetBetween returns holidays with start <= date <= end, ordered by date.
	GetBetween(ctx context.Context, start, end calendar.Date) ([]Holiday, error)
	ExistsOn(ctx context.Context, date calendar.Date) (bool, error)
	Create(ctx context.Context, h Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error
}
