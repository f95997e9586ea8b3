package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMalformedTime  = errors.New("malformed time of day")
	ErrMalformedRange = errors.New("malformed hours range")
)

// TimeOfDay is a parsed 12-hour clock time normalized to 24-hour fields.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses strings like "9:00 AM" or "12:30 pm". Anything that
// does not carry an AM/PM marker or valid hour/minute digits is rejected with
// ErrMalformedTime rather than producing garbage hours downstream.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	hm := strings.SplitN(fields[0], ":", 2)
	if len(hm) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	switch strings.ToUpper(fields[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// HoursRange is one day's opening window, e.g. "9:00 AM - 8:00 PM".
type HoursRange struct {
	Open  TimeOfDay
	Close TimeOfDay
}

// ParseHoursRange parses "<open> - <close>". The literal "closed"
// (case-insensitive) and the empty string are valid inputs meaning no window;
// they return ok=false with no error.
func ParseHoursRange(s string) (HoursRange, bool, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.EqualFold(trimmed, "closed") {
		return HoursRange{}, false, nil
	}

	parts := strings.SplitN(trimmed, "-", 2)
	if len(parts) != 2 {
		return HoursRange{}, false, fmt.Errorf("%w: %q", ErrMalformedRange, s)
	}

	open, err := ParseTimeOfDay(parts[0])
	if err != nil {
		return HoursRange{}, false, err
	}
	close, err := ParseTimeOfDay(parts[1])
	if err != nil {
		return HoursRange{}, false, err
	}

	return HoursRange{Open: open, Close: close}, true, nil
}

// HourlySlots emits one "HH:00" label for every whole hour in the half-open
// window [Open.Hour, Close.Hour). Minutes on the bounds are parsed but do not
// shift slot starts. Overnight ranges (close <= open) yield no slots; that is
// a documented limitation, not an error.
func (r HoursRange) HourlySlots() []string {
	if r.Close.Hour <= r.Open.Hour {
		return nil
	}

	slots := make([]string, 0, r.Close.Hour-r.Open.Hour)
	for h := r.Open.Hour; h < r.Close.Hour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}

// WeeklyHours maps lowercase full English weekday names ("monday"...) to raw
// hours strings as stored on the salon record.
type WeeklyHours map[string]string

// RangeFor resolves the hours window for a weekday. Missing keys and
// unparseable values are both treated as closed; a salon with one bad day in
// its config must not take the whole availability request down with it.
func (w WeeklyHours) RangeFor(weekday string) (HoursRange, bool) {
	raw, exists := w[strings.ToLower(weekday)]
	if !exists {
		return HoursRange{}, false
	}
	r, open, err := ParseHoursRange(raw)
	if err != nil || !open {
		return HoursRange{}, false
	}
	return r, true
}
