package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name         string
		amount       decimal.Decimal
		withDecimals bool
		want         string
	}{
		{"lakhs", decimal.NewFromInt(1234567), true, "12,34,567.00"},
		{"crores", decimal.NewFromInt(123456789), true, "12,34,56,789.00"},
		{"thousands", decimal.NewFromInt(1234), true, "1,234.00"},
		{"hundreds", decimal.NewFromInt(100), true, "100.00"},
		{"negative", decimal.RequireFromString("-1234.5"), true, "-1,234.50"},
		{"no decimals", decimal.NewFromInt(1234567), false, "12,34,567"},
		{"zero", decimal.Zero, true, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.amount, tt.withDecimals))
		})
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, "33.33", Percentage(decimal.NewFromInt(1), decimal.NewFromInt(3), 2))
	assert.Equal(t, "50.0", Percentage(decimal.NewFromInt(5), decimal.NewFromInt(10), 1))
	assert.Equal(t, "0.00", Percentage(decimal.NewFromInt(5), decimal.Zero, 2))
	assert.Equal(t, "1,000.00", Percentage(decimal.NewFromInt(10), decimal.NewFromInt(1), 2))
}

func TestAcronym(t *testing.T) {
	assert.Equal(t, "HRS", Acronym("Human Resource-management system", 0))
	assert.Equal(t, "HR", Acronym("human   resource system", 2))
	assert.Equal(t, "PM", Acronym("project - manager", 0))
	assert.Equal(t, "", Acronym("   ", 0))
}

func TestMathRound(t *testing.T) {
	assert.Equal(t, 12.0, MathRound(17, 12))
	assert.Equal(t, 24.0, MathRound(18, 12))
	assert.Equal(t, 0.0, MathRound(5, 12))
	assert.Equal(t, 5.0, MathRound(5, 0))
}

func TestCriticalLevel(t *testing.T) {
	tests := map[float64]string{
		10:    "NA",
		0:     "NA",
		-3:    "Low",
		-5:    "Low",
		-7.5:  "Moderate",
		-10:   "Moderate",
		-15:   "High",
		-20:   "High",
		-20.1: "Severe",
	}
	for in, want := range tests {
		assert.Equal(t, want, CriticalLevel(in), "input %v", in)
	}
}

func TestDate(t *testing.T) {
	assert.Equal(t, "-", Date("", ""))
	assert.Equal(t, "-", Date("not a date", ""))
	assert.Equal(t, "15 Jan, 2024", Date("2024-01-15", ""))
	assert.Equal(t, "2024/01/15", Date("15-01-2024", "2006/01/02"))
}

func TestTrimSpaces(t *testing.T) {
	assert.Equal(t, "abc", TrimSpaces(" a b c "))
}

func TestTimesheetDisplay(t *testing.T) {
	assert.Equal(t, "2:30", TimesheetHourDisplay("2.50", "-"))
	assert.Equal(t, "-", TimesheetHourDisplay("4.00", "-"))

	assert.Equal(t, "2:45", TimesheetHeaderHourDisplay("2.75"))
	assert.Equal(t, "1:30", TimesheetHeaderHourDisplay("1.5"))
	assert.Equal(t, "3:00", TimesheetHeaderHourDisplay("3"))
	assert.Equal(t, "1:00", TimesheetHeaderHourDisplay("1.3"))

	slots := TimesheetApproveTiming()
	assert.Len(t, slots, 12)
	assert.Equal(t, "3.00", slots[0].Key)
}
