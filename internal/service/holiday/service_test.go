package holiday

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryHolidayRepo struct {
	byID map[string]holiday.Holiday
	seq  int
}

func newMemoryHolidayRepo() *memoryHolidayRepo {
	return &memoryHolidayRepo{byID: make(map[string]holiday.Holiday)}
}

func (m *memoryHolidayRepo) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	h, ok := m.byID[id]
	if !ok {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	return h, nil
}

func (m *memoryHolidayRepo) GetByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	return m.GetBetween(ctx, calendar.NewDate(year, time.January, 1), calendar.NewDate(year, time.December, 31))
}

func (m *memoryHolidayRepo) GetBetween(ctx context.Context, start, end calendar.Date) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range m.byID {
		if !h.Date.Before(start) && !h.Date.After(end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memoryHolidayRepo) ExistsOn(ctx context.Context, date calendar.Date) (bool, error) {
	for _, h := range m.byID {
		if h.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryHolidayRepo) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	m.seq++
	h.ID = strings.Repeat("h", m.seq)
	m.byID[h.ID] = h
	return h, nil
}

func (m *memoryHolidayRepo) Delete(ctx context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

func TestHolidayService_CreateListDelete(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryHolidayRepo()
	svc := NewHolidayService(repo)

	created, err := svc.Create(ctx, holiday.CreateHolidayRequest{Date: "2024-01-26", Name: " Republic Day "})
	require.NoError(t, err)
	assert.Equal(t, "Republic Day", created.Name)
	assert.Equal(t, "Friday", created.Weekday)

	_, err = svc.Create(ctx, holiday.CreateHolidayRequest{Date: "2024-01-26", Name: "Duplicate"})
	assert.ErrorIs(t, err, holiday.ErrHolidayExists)

	_, err = svc.Create(ctx, holiday.CreateHolidayRequest{Date: "26-01-2024", Name: "Bad"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "date")

	list, err := svc.List(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	list, err = svc.List(ctx, 2025)
	require.NoError(t, err)
	assert.Empty(t, list.Holidays)
	assert.NotNil(t, list.Holidays)

	_, err = svc.List(ctx, 0)
	assert.ErrorIs(t, err, holiday.ErrInvalidYear)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), holiday.ErrHolidayNotFound)
}

func TestHolidayService_Import(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryHolidayRepo()
	svc := NewHolidayService(repo)

	_, err := svc.Create(ctx, holiday.CreateHolidayRequest{Date: "2024-08-15", Name: "Independence Day"})
	require.NoError(t, err)

	file := `
holidays:
  - date: 2024-01-26
    name: Republic Day
  - date: 2024-08-15
    name: Independence Day
  - date: 2024-11-01
    name: Diwali
    optional: true
  - date: not-a-date
    name: Broken
`
	result, err := svc.Import(ctx, strings.NewReader(file))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "entry 4")

	optional, err := repo.ExistsOn(ctx, calendar.NewDate(2024, time.November, 1))
	require.NoError(t, err)
	assert.True(t, optional)

	_, err = svc.Import(ctx, strings.NewReader("holidays: [unclosed"))
	assert.Error(t, err)

	result, err = svc.Import(ctx, strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, result.Created)
}
