package holiday

import (
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date       string `json:"date" yaml:"date"`
	Name       string `json:"name" yaml:"name"`
	IsOptional bool   `json:"is_optional" yaml:"optional"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs.Add("date", "date is required")
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	}
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	} else if len(r.Name) > 100 {
		errs.Add("name", "name must be at most 100 characters")
	}

	return errs.Err()
}

type HolidayResponse struct {
	ID         string        `json:"id"`
	Date       calendar.Date `json:"date"`
	Weekday    string        `json:"weekday"`
	Name       string        `json:"name"`
	IsOptional bool          `json:"is_optional"`
}

type ListHolidayResponse struct {
	Year     int               `json:"year"`
	Total    int               `json:"total"`
	Holidays []HolidayResponse `json:"holidays"`
}

// ImportFile is the YAML layout accepted by Import.
type ImportFile struct {
	Holidays []CreateHolidayRequest `yaml:"holidays"`
}

type ImportResult struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}
