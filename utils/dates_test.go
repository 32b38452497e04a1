package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendarDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected CalendarDate
		wantErr  bool
	}{
		{name: "Valid date", input: "2025-07-13", expected: CalendarDate{Year: 2025, Month: 7, Day: 13}},
		{name: "Leap day in leap year", input: "2000-02-29", expected: CalendarDate{Year: 2000, Month: 2, Day: 29}},
		{name: "First of year", input: "1990-01-01", expected: CalendarDate{Year: 1990, Month: 1, Day: 1}},
		{name: "Last of year", input: "1999-12-31", expected: CalendarDate{Year: 1999, Month: 12, Day: 31}},
		{name: "Month 13", input: "2025-13-01", wantErr: true},
		{name: "Month 0", input: "2025-00-10", wantErr: true},
		{name: "Day 32", input: "2025-01-32", wantErr: true},
		{name: "Day 0", input: "2025-01-00", wantErr: true},
		{name: "Feb 30", input: "2025-02-30", wantErr: true},
		{name: "Leap day in non-leap year", input: "2025-02-29", wantErr: true},
		{name: "April 31", input: "2025-04-31", wantErr: true},
		{name: "Too short", input: "2025-7-3", wantErr: true},
		{name: "Wrong separators", input: "2025/07/13", wantErr: true},
		{name: "Garbage", input: "not-a-date", wantErr: true},
		{name: "Signed component", input: "2025-+7-13", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
		{name: "Trailing junk rejected by length", input: "2025-07-13T00:00:00Z", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCalendarDate(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDateFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSameDay(t *testing.T) {
	base := CalendarDate{Year: 2025, Month: 7, Day: 13}

	assert.True(t, base.SameDay(CalendarDate{Year: 2025, Month: 7, Day: 13}))
	assert.False(t, base.SameDay(CalendarDate{Year: 2024, Month: 7, Day: 13}), "different year")
	assert.False(t, base.SameDay(CalendarDate{Year: 2025, Month: 6, Day: 13}), "different month")
	assert.False(t, base.SameDay(CalendarDate{Year: 2025, Month: 7, Day: 12}), "different day")
}

func TestShiftDays(t *testing.T) {
	tests := []struct {
		name     string
		start    CalendarDate
		n        int
		expected CalendarDate
	}{
		{name: "Forward within month", start: CalendarDate{Year: 2025, Month: 3, Day: 10}, n: 5, expected: CalendarDate{Year: 2025, Month: 3, Day: 15}},
		{name: "Backward within month", start: CalendarDate{Year: 2025, Month: 3, Day: 10}, n: -3, expected: CalendarDate{Year: 2025, Month: 3, Day: 7}},
		{name: "Zero is identity", start: CalendarDate{Year: 2025, Month: 3, Day: 10}, n: 0, expected: CalendarDate{Year: 2025, Month: 3, Day: 10}},
		{name: "Backward over month boundary", start: CalendarDate{Year: 2025, Month: 3, Day: 2}, n: -3, expected: CalendarDate{Year: 2025, Month: 2, Day: 27}},
		{name: "Backward over year boundary", start: CalendarDate{Year: 2025, Month: 1, Day: 1}, n: -1, expected: CalendarDate{Year: 2024, Month: 12, Day: 31}},
		{name: "Forward over year boundary", start: CalendarDate{Year: 2025, Month: 12, Day: 30}, n: 3, expected: CalendarDate{Year: 2026, Month: 1, Day: 2}},
		{name: "Backward across leap day", start: CalendarDate{Year: 2024, Month: 3, Day: 1}, n: -1, expected: CalendarDate{Year: 2024, Month: 2, Day: 29}},
		{name: "Backward across Feb in non-leap year", start: CalendarDate{Year: 2025, Month: 3, Day: 1}, n: -1, expected: CalendarDate{Year: 2025, Month: 2, Day: 28}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.start.ShiftDays(tt.n))
		})
	}
}

func TestCalendarDateString(t *testing.T) {
	assert.Equal(t, "2025-07-13", CalendarDate{Year: 2025, Month: 7, Day: 13}.String())
	assert.Equal(t, "0090-01-02", CalendarDate{Year: 90, Month: 1, Day: 2}.String(), "components are zero-padded")
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2000), "divisible by 400")
	assert.True(t, IsLeapYear(2024))
	assert.False(t, IsLeapYear(1900), "century, not divisible by 400")
	assert.False(t, IsLeapYear(2025))
}
