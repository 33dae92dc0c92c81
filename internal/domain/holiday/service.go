package holiday

import (
	"context"
	"io"
)

// HolidayService manages the declared holiday calendar.
type HolidayService interface {
	List(ctx context.Context, year int) (ListHolidayResponse, error)
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error

	// Import reads a YAML holiday file and creates every entry not already declared.
	Import(ctx context.Context, r io.Reader) (ImportResult, error)
}
