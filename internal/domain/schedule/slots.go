package schedule

import (
	"strconv"
	"time"
)

// Interval is a half-open time range [Start, End). Back-to-back intervals
// sharing a bound do not overlap.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps is the canonical half-open intersection test.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// DayAvailability lists the bookable slot labels for one calendar date.
type DayAvailability struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

const slotDuration = time.Hour

// BuildDayAvailability returns the hourly slots for a date that overlap none
// of the given appointments. The date anchors slots at UTC midnight; each slot
// is exactly one hour wide regardless of service durations. A closed or
// missing hours entry yields an empty Times list.
func BuildDayAvailability(date time.Time, hours HoursRange, open bool, booked []Interval) DayAvailability {
	day := DayAvailability{
		Date:  date.UTC().Format("2006-01-02"),
		Times: []string{},
	}
	if !open {
		return day
	}

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	for _, label := range hours.HourlySlots() {
		hour, err := strconv.Atoi(label[:2])
		if err != nil {
			continue
		}
		slot := Interval{
			Start: midnight.Add(time.Duration(hour) * slotDuration),
		}
		slot.End = slot.Start.Add(slotDuration)

		if !overlapsAny(slot, booked) {
			day.Times = append(day.Times, label)
		}
	}

	return day
}

func overlapsAny(slot Interval, booked []Interval) bool {
	for _, b := range booked {
		if slot.Overlaps(b) {
			return true
		}
	}
	return false
}
