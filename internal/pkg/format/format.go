package format

import (
	"math"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
)

// DateLayoutHuman is the default display layout for Date.
const DateLayoutHuman = "02 Jan, 2006"

// Placeholder is rendered for missing values.
const Placeholder = "-"

// Currency renders amount with Indian digit grouping ("12,34,567.00").
// Without decimals the amount is printed as-is, fraction included.
func Currency(amount decimal.Decimal, withDecimals bool) string {
	s := amount.String()
	if withDecimals {
		s = amount.StringFixed(2)
	}
	return groupDigits(s, 2)
}

// Percentage returns value/total*100 with precision decimals and thousands
// separators. A zero total yields "0.00".
func Percentage(value, total decimal.Decimal, precision int32) string {
	if total.IsZero() {
		return "0.00"
	}
	return groupDigits(value.Div(total).Mul(decimal.NewFromInt(100)).StringFixed(precision), 3)
}

// groupDigits inserts commas into the integer part of a decimal string. The
// last three digits form one group; earlier digits are grouped by rest.
func groupDigits(s string, rest int) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	if len(intPart) > 3 {
		head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		groups := []string{tail}
		for len(head) > rest {
			groups = append([]string{head[len(head)-rest:]}, groups...)
			head = head[:len(head)-rest]
		}
		intPart = strings.Join(append([]string{head}, groups...), ",")
	}

	if hasFrac {
		return sign + intPart + "." + frac
	}
	return sign + intPart
}

// Acronym takes the first letter of every word, drops '-', '_' and '.', and
// upper-cases the result. A count of zero or less keeps every letter.
func Acronym(sentence string, count int) string {
	var b strings.Builder
	for _, word := range strings.Fields(sentence) {
		r := []rune(word)[0]
		if r == '-' || r == '_' || r == '.' {
			continue
		}
		b.WriteRune(r)
	}
	acronym := []rune(strings.ToUpper(b.String()))
	if count > 0 && count < len(acronym) {
		acronym = acronym[:count]
	}
	return string(acronym)
}

// MathRound rounds number to the nearest multiple of to, halves away from
// zero. The timesheet screens use to = 12.
func MathRound(number float64, to int) float64 {
	if to == 0 {
		return number
	}
	return math.Round(number/float64(to)) * float64(to)
}

// CriticalLevel buckets a target-achievement percentage. Non-negative values
// are "NA"; below that the level rises with the shortfall.
func CriticalLevel(achievedPercentage float64) string {
	switch {
	case math.IsNaN(achievedPercentage):
		return Placeholder
	case achievedPercentage >= 0:
		return "NA"
	case achievedPercentage >= -5:
		return "Low"
	case achievedPercentage >= -10:
		return "Moderate"
	case achievedPercentage >= -20:
		return "High"
	default:
		return "Severe"
	}
}

// Date reformats a date-like string with layout, or returns the placeholder
// when value is empty or cannot be parsed.
func Date(value, layout string) string {
	if strings.TrimSpace(value) == "" {
		return Placeholder
	}
	t, ok := calendar.ParseDateTimeLenient(value, time.UTC)
	if !ok {
		return Placeholder
	}
	if layout == "" {
		layout = DateLayoutHuman
	}
	return t.Format(layout)
}

// TrimSpaces removes every ASCII space.
func TrimSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
