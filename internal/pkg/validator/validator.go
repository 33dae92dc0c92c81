package validator

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
	"github.com/google/uuid"
)

// MonthLayout is the wire format for a calendar month.
const MonthLayout = "2006-01"

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v))
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Add records a failed field check.
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, ValidationError{Field: field, Message: message})
}

// Err returns nil when no check failed, so callers can return it directly.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidUUID accepts the canonical dashed form of any UUID version.
func IsValidUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// IsValidDate parses a YYYY-MM-DD calendar day.
func IsValidDate(s string) (calendar.Date, bool) {
	d, err := calendar.ParseDate(s)
	return d, err == nil
}

// IsValidMonth parses a YYYY-MM month and returns its first day.
func IsValidMonth(s string) (calendar.Date, bool) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return calendar.Date{}, false
	}
	return calendar.DateOf(t), true
}

// Year validation for list and export filters
func IsValidYear(year int) bool {
	return year >= 1900 && year <= 9999
}

func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
