//go:build unit

package schedule_test

import (
	"testing"

	"salon-booking-api/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Run("valid times", func(t *testing.T) {
		cases := []struct {
			name   string
			input  string
			hour   int
			minute int
		}{
			{name: "morning", input: "9:00 AM", hour: 9, minute: 0},
			{name: "with minutes", input: "9:30 AM", hour: 9, minute: 30},
			{name: "noon", input: "12:00 PM", hour: 12, minute: 0},
			{name: "midnight", input: "12:00 AM", hour: 0, minute: 0},
			{name: "afternoon", input: "5:00 PM", hour: 17, minute: 0},
			{name: "late evening", input: "11:59 PM", hour: 23, minute: 59},
			{name: "lowercase marker", input: "8:00 pm", hour: 20, minute: 0},
			{name: "surrounding whitespace", input: "  10:15 AM  ", hour: 10, minute: 15},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				tod, err := schedule.ParseTimeOfDay(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.hour, tod.Hour)
				assert.Equal(t, tc.minute, tod.Minute)
			})
		}
	})

	t.Run("malformed times", func(t *testing.T) {
		cases := []struct {
			name  string
			input string
		}{
			{name: "empty string", input: ""},
			{name: "missing marker", input: "9:00"},
			{name: "missing minutes", input: "9 AM"},
			{name: "non-numeric hour", input: "abc:00 AM"},
			{name: "non-numeric minute", input: "9:xx AM"},
			{name: "hour zero", input: "0:00 AM"},
			{name: "hour above twelve", input: "13:00 PM"},
			{name: "minute above fifty-nine", input: "9:60 AM"},
			{name: "bad marker", input: "9:00 XM"},
			{name: "extra tokens", input: "9:00 AM extra"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := schedule.ParseTimeOfDay(tc.input)
				assert.ErrorIs(t, err, schedule.ErrMalformedTime)
			})
		}
	})
}

func TestParseHoursRange(t *testing.T) {
	t.Run("standard range", func(t *testing.T) {
		r, open, err := schedule.ParseHoursRange("9:00 AM - 5:00 PM")
		require.NoError(t, err)
		require.True(t, open)
		assert.Equal(t, 9, r.Open.Hour)
		assert.Equal(t, 17, r.Close.Hour)
	})

	t.Run("closed markers", func(t *testing.T) {
		for _, input := range []string{"closed", "Closed", "CLOSED", "", "   "} {
			_, open, err := schedule.ParseHoursRange(input)
			require.NoError(t, err, "input %q", input)
			assert.False(t, open, "input %q", input)
		}
	})

	t.Run("malformed ranges", func(t *testing.T) {
		cases := []string{
			"9:00 AM",
			"9:00 AM to 5:00 PM",
			"garbage - 5:00 PM",
			"9:00 AM - garbage",
		}
		for _, input := range cases {
			_, _, err := schedule.ParseHoursRange(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestHourlySlots(t *testing.T) {
	t.Run("nine to five yields eight slots", func(t *testing.T) {
		r, open, err := schedule.ParseHoursRange("9:00 AM - 5:00 PM")
		require.NoError(t, err)
		require.True(t, open)

		slots := r.HourlySlots()
		assert.Equal(t, []string{
			"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00",
		}, slots)
		assert.NotContains(t, slots, "17:00")
	})

	t.Run("minutes on bounds do not shift slot starts", func(t *testing.T) {
		r, open, err := schedule.ParseHoursRange("9:30 AM - 12:30 PM")
		require.NoError(t, err)
		require.True(t, open)
		assert.Equal(t, []string{"09:00", "10:00", "11:00"}, r.HourlySlots())
	})

	t.Run("overnight range yields no slots", func(t *testing.T) {
		r, open, err := schedule.ParseHoursRange("8:00 PM - 2:00 AM")
		require.NoError(t, err)
		require.True(t, open)
		assert.Empty(t, r.HourlySlots())
	})

	t.Run("zero-width range yields no slots", func(t *testing.T) {
		r, open, err := schedule.ParseHoursRange("9:00 AM - 9:00 AM")
		require.NoError(t, err)
		require.True(t, open)
		assert.Empty(t, r.HourlySlots())
	})
}

func TestWeeklyHoursRangeFor(t *testing.T) {
	hours := schedule.WeeklyHours{
		"monday":    "9:00 AM - 5:00 PM",
		"tuesday":   "closed",
		"wednesday": "not a range",
	}

	t.Run("open day", func(t *testing.T) {
		r, open := hours.RangeFor("monday")
		require.True(t, open)
		assert.Equal(t, 9, r.Open.Hour)
	})

	t.Run("weekday lookup is case-insensitive", func(t *testing.T) {
		_, open := hours.RangeFor("Monday")
		assert.True(t, open)
	})

	t.Run("explicitly closed day", func(t *testing.T) {
		_, open := hours.RangeFor("tuesday")
		assert.False(t, open)
	})

	t.Run("unparseable entry treated as closed", func(t *testing.T) {
		_, open := hours.RangeFor("wednesday")
		assert.False(t, open)
	})

	t.Run("missing day treated as closed", func(t *testing.T) {
		_, open := hours.RangeFor("sunday")
		assert.False(t, open)
	})
}
