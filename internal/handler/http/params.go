package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/validator"
)

// queryParams collects query parsing failures as validation errors.
type queryParams struct {
	r    *http.Request
	errs validator.ValidationErrors
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{r: r}
}

func (q *queryParams) get(key string) string {
	return strings.TrimSpace(q.r.URL.Query().Get(key))
}

func (q *queryParams) date(key string, def calendar.Date) calendar.Date {
	v := q.get(key)
	if v == "" {
		return def
	}
	d, err := calendar.ParseDate(v)
	if err != nil {
		q.errs.Add(key, "must be a date in YYYY-MM-DD format")
		return def
	}
	return d
}

func (q *queryParams) boolean(key string) bool {
	v := q.get(key)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.errs.Add(key, "must be true or false")
	}
	return b
}

func (q *queryParams) integer(key string, def int) int {
	v := q.get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.errs.Add(key, "must be an integer")
		return def
	}
	return n
}

func (q *queryParams) float(key string) float64 {
	v := q.get(key)
	if v == "" {
		q.errs.Add(key, key+" is required")
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		q.errs.Add(key, "must be a number")
	}
	return f
}

// err returns the collected errors, or nil.
func (q *queryParams) err() error {
	return q.errs.Err()
}
