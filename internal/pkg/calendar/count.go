package calendar

import "time"

// countFiltered counts the days d with start < d <= end for which keep is
// true. The start day itself is never counted. Reversed bounds are swapped.
func countFiltered(start, end Date, keep func(Date) bool) int {
	if end.Before(start) {
		start, end = end, start
	}
	n := 0
	for d := start.AddDays(1); !d.After(end); d = d.AddDays(1) {
		if keep(d) {
			n++
		}
	}
	return n
}

// WorkingDays counts non-weekend days between start and end under policy.
// Holidays are not considered.
func WorkingDays(start, end Date, policy WeekendPolicy) int {
	return countFiltered(start, end, func(d Date) bool { return !policy.IsWeekend(d) })
}

// WeekendDays counts weekend days between start and end under policy.
func WeekendDays(start, end Date, policy WeekendPolicy) int {
	return countFiltered(start, end, policy.IsWeekend)
}

// NumberOfWorkingDays counts the non-weekend days of today's month, from the
// first to the last day with the first day excluded. Declared holidays still
// count as working days here.
func NumberOfWorkingDays(today Date, isSaturdayWorking bool) int {
	return WorkingDays(today.StartOfMonth(), today.EndOfMonth(), WeekendPolicyFor(isSaturdayWorking))
}

func NumberOfWeekEndDays(start, end Date, isSaturdayWorking bool) int {
	return WeekendDays(start, end, WeekendPolicyFor(isSaturdayWorking))
}

func NumberOfSaturdays(start, end Date) int {
	return WeekendDays(start, end, SaturdayOnly)
}

// WeekendDates walks start..end inclusive and returns the two-digit
// day-of-month of every Saturday and Sunday, or of every Sunday when
// Saturday is a working day.
func WeekendDates(start, end Date, isSaturdayWorking bool) []string {
	threshold := 6
	if isSaturdayWorking {
		threshold = 7
	}
	dates := []string{}
	for _, d := range Days(start, end) {
		if d.ISOWeekday() >= threshold {
			dates = append(dates, d.Format("02"))
		}
	}
	return dates
}

// DayNamesAndDates maps day-of-month to weekday name for start..end
// inclusive. Keys are day numbers only, so across a month boundary a later
// day overwrites an earlier one with the same number.
func DayNamesAndDates(start, end Date) map[int]string {
	days := make(map[int]string)
	for _, d := range Days(start, end) {
		days[d.Day()] = d.Weekday().String()
	}
	return days
}

// IsJoinedInMonth reports whether the joining date falls in today's month.
func IsJoinedInMonth(joined, today Date) bool {
	return joined.Year() == today.Year() && joined.Month() == today.Month()
}

// DaysWorkedAfterJoining counts the days of today's month from the joining
// day through month end, inclusive of the joining day. A joining date in
// another month yields the full month length.
func DaysWorkedAfterJoining(joined, today Date) int {
	if !IsJoinedInMonth(joined, today) {
		return today.DaysInMonth()
	}
	return today.DaysInMonth() - joined.Day() + 1
}

// MonthOf returns the first day of the given month.
func MonthOf(year int, month time.Month) Date {
	return NewDate(year, month, 1)
}
