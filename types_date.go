package budgeters

import (
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// promptDateFormat is the M/D/YYYY format accepted during interactive entry.
const promptDateFormat = "1/2/2006"

// TimestampFormat is the persisted form of a date: a millisecond-precision
// RFC3339 timestamp at midnight UTC.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Timestamp formats the date in its persisted RFC3339 millisecond form.
func (d Date) Timestamp() string { return d.time().Format(TimestampFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// ParseDate parses a Date from a string. It is lenient and accepts the
// ISO form (including "2025-7-1"), the interactive M/D/YYYY form, and the
// persisted RFC3339 millisecond form.
func ParseDate(str string) (Date, error) {
	for _, format := range []string{readDateFormat, promptDateFormat, TimestampFormat, time.RFC3339} {
		if on, err := time.Parse(format, str); err == nil {
			return NewDate(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q want format %q or %q", str, DateFormat, promptDateFormat)
}

// ParseTimestamp parses the persisted RFC3339 millisecond form only. This is
// the strict parser used when decoding data files.
func ParseTimestamp(str string) (Date, error) {
	on, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid timestamp %q in data file, want format %q: %w", str, TimestampFormat, err)
	}
	return NewDate(on.UTC().Date()), nil
}

// MustParse is like ParseDate but panics on error.
func MustParse(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}
