package holiday

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/validator"
	"gopkg.in/yaml.v3"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

func (s *HolidayServiceImpl) List(ctx context.Context, year int) (holiday.ListHolidayResponse, error) {
	if year < 1 || year > 9999 {
		return holiday.ListHolidayResponse{}, fmt.Errorf("%w: %d", holiday.ErrInvalidYear, year)
	}

	holidays, err := s.holidayRepo.GetByYear(ctx, year)
	if err != nil {
		return holiday.ListHolidayResponse{}, fmt.Errorf("failed to list holidays for %d: %w", year, err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, mapToResponse(h))
	}
	return holiday.ListHolidayResponse{Year: year, Total: len(responses), Holidays: responses}, nil
}

func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}
	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	exists, err := s.holidayRepo.ExistsOn(ctx, date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to check holiday on %s: %w", date, err)
	}
	if exists {
		return holiday.HolidayResponse{}, fmt.Errorf("%w: %s", holiday.ErrHolidayExists, date)
	}

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Date:       date,
		Name:       strings.TrimSpace(req.Name),
		IsOptional: req.IsOptional,
	})
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return mapToResponse(created), nil
}

func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.holidayRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.holidayRepo.Delete(ctx, id)
}

func (s *HolidayServiceImpl) Import(ctx context.Context, r io.Reader) (holiday.ImportResult, error) {
	var file holiday.ImportFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return holiday.ImportResult{}, nil
		}
		return holiday.ImportResult{}, fmt.Errorf("failed to decode holiday file: %w", err)
	}

	var result holiday.ImportResult
	for i, req := range file.Holidays {
		_, err := s.Create(ctx, req)
		switch {
		case err == nil:
			result.Created++
		case errors.Is(err, holiday.ErrHolidayExists):
			result.Skipped++
		case isInputError(err):
			result.Errors = append(result.Errors, fmt.Sprintf("entry %d: %v", i+1, err))
		default:
			return result, err
		}
	}

	slog.Info("Imported holidays", "created", result.Created, "skipped", result.Skipped, "invalid", len(result.Errors))
	return result, nil
}

func isInputError(err error) bool {
	var validationErrs validator.ValidationErrors
	return errors.As(err, &validationErrs) || errors.Is(err, calendar.ErrUnparseableInput)
}

func mapToResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:         h.ID,
		Date:       h.Date,
		Weekday:    h.Date.Weekday().String(),
		Name:       h.Name,
		IsOptional: h.IsOptional,
	}
}
