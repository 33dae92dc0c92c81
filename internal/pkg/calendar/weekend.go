package calendar

import (
	"fmt"
	"strings"
	"time"
)

// WeekendPolicy is the set of weekdays treated as non-working. It is a plain
// value and is always passed explicitly; there is no process-wide default.
type WeekendPolicy uint8

var (
	SundayOnly        = NewWeekendPolicy(time.Sunday)
	SaturdayOnly      = NewWeekendPolicy(time.Saturday)
	SaturdayAndSunday = NewWeekendPolicy(time.Saturday, time.Sunday)
)

func NewWeekendPolicy(days ...time.Weekday) WeekendPolicy {
	var p WeekendPolicy
	for _, d := range days {
		p |= 1 << uint(d)
	}
	return p
}

// WeekendPolicyFor maps the "is Saturday a working day" flag to a policy:
// {Sunday} when Saturday is worked, {Saturday, Sunday} otherwise.
func WeekendPolicyFor(isSaturdayWorking bool) WeekendPolicy {
	if isSaturdayWorking {
		return SundayOnly
	}
	return SaturdayAndSunday
}

// ParseWeekendPolicy reads weekday names such as "saturday" or "Sun".
func ParseWeekendPolicy(names []string) (WeekendPolicy, error) {
	var days []time.Weekday
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		wd, ok := weekdayNames[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
		}
		days = append(days, wd)
	}
	return NewWeekendPolicy(days...), nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

func (p WeekendPolicy) Contains(wd time.Weekday) bool {
	return p&(1<<uint(wd)) != 0
}

func (p WeekendPolicy) IsWeekend(d Date) bool {
	return p.Contains(d.Weekday())
}

// Days lists the policy's weekdays from Sunday to Saturday.
func (p WeekendPolicy) Days() []time.Weekday {
	var days []time.Weekday
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if p.Contains(wd) {
			days = append(days, wd)
		}
	}
	return days
}

func (p WeekendPolicy) String() string {
	days := p.Days()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = strings.ToLower(d.String())
	}
	return strings.Join(names, ",")
}
