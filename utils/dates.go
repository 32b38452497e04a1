// utils/dates.go
package utils

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateFormat is returned for anchor dates that are not a
// well-formed YYYY-MM-DD calendar date.
var ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

// CalendarDate is a plain year/month/day value. It carries no time-of-day
// and no location, so comparing two of them can never shift a date across
// a UTC boundary the way instant-based comparison does.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// ParseCalendarDate parses a YYYY-MM-DD string into its components
// directly, without constructing an instant.
func ParseCalendarDate(s string) (CalendarDate, error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return CalendarDate{}, ErrInvalidDateFormat
	}
	year, ok1 := atoi(s[0:4])
	month, ok2 := atoi(s[5:7])
	day, ok3 := atoi(s[8:10])
	if !ok1 || !ok2 || !ok3 {
		return CalendarDate{}, ErrInvalidDateFormat
	}
	if year < 1 || month < 1 || month > 12 || day < 1 || day > daysInMonth(year, month) {
		return CalendarDate{}, ErrInvalidDateFormat
	}
	return CalendarDate{Year: year, Month: month, Day: day}, nil
}

// Today returns the current local calendar date.
func Today() CalendarDate {
	year, month, day := time.Now().Date()
	return CalendarDate{Year: year, Month: int(month), Day: day}
}

// SameDay reports whether both dates have equal year, month and day.
func (d CalendarDate) SameDay(other CalendarDate) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// ShiftDays returns the date n days after d (n may be negative), rolling
// over month and year boundaries. The pivot is a fixed noon-UTC instant so
// no local zone or DST rule can influence the result.
func (d CalendarDate) ShiftDays(n int) CalendarDate {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 12, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	year, month, day := t.Date()
	return CalendarDate{Year: year, Month: int(month), Day: day}
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// atoi accepts only unsigned decimal digits, unlike strconv.Atoi which
// would let "+1" or " 1" slip through after a length check.
func atoi(s string) (int, bool) {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
