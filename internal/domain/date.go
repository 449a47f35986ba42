package domain

import (
	"fmt"
	"time"
)

// DateLayout is the storage and flag format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the normalized date for y-m-d (e.g. Jan 32 becomes Feb 1).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// Format formats the date with a time layout.
func (d Date) Format(layout string) string {
	return d.Time().Format(layout)
}

func (d Date) String() string {
	return d.Format(DateLayout)
}
