package format

import "strings"

// TimesheetSlot is one selectable duration on the timesheet approval screen.
type TimesheetSlot struct {
	ID    int    `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

var timesheetApproveTiming = []TimesheetSlot{
	{1, "3.00", "3:00"}, {2, "2.75", "2:45"}, {3, "2.50", "2:30"}, {4, "2.25", "2:15"},
	{5, "2.00", "2:00"}, {6, "1.75", "1:45"}, {7, "1.50", "1:30"}, {8, "1.25", "1:15"},
	{9, "1.00", "1:00"}, {10, "0.75", "0:45"}, {11, "0.50", "0:30"}, {12, "0.25", "0:15"},
}

// TimesheetApproveTiming returns the approval slots, longest first.
func TimesheetApproveTiming() []TimesheetSlot {
	slots := make([]TimesheetSlot, len(timesheetApproveTiming))
	copy(slots, timesheetApproveTiming)
	return slots
}

// TimesheetHourDisplay maps a slot key such as "1.75" to "1:45", or returns
// def for unknown keys.
func TimesheetHourDisplay(hour, def string) string {
	for _, slot := range timesheetApproveTiming {
		if slot.Key == hour {
			return slot.Value
		}
	}
	return def
}

var headerMinutes = map[string]string{
	"0":  "00",
	"00": "00",
	"25": "15",
	"5":  "30",
	"50": "30",
	"75": "45",
}

// TimesheetHeaderHourDisplay turns a quarter-hour duration ("2.75") into
// "2:45". Fractions other than quarters render as ":00".
func TimesheetHeaderHourDisplay(duration string) string {
	hours, minutes, ok := strings.Cut(duration, ".")
	if !ok {
		minutes = "00"
	}
	display, ok := headerMinutes[minutes]
	if !ok {
		display = "00"
	}
	return hours + ":" + display
}
