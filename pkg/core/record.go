// Date and DatedCount are the central entities of the domain.
package core

import (
	"fmt"
	"time"
)

// DateLayout is the textual form used in the data file and on the CLI.
const DateLayout = "2006-01-02"

// Date is a calendar day. It has no time-of-day component and is safe
// to use as a map key: two Dates are equal iff they name the same
// calendar day.
type Date struct {
	t time.Time
}

// NewDate builds a Date from its calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar day in the instant's location.
func DateOf(t time.Time) Date {
	return NewDate(t.Date())
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String renders the date as "YYYY-MM-DD".
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// Weekday returns the day of the week with Monday = 0 and Sunday = 6.
func (d Date) Weekday() int {
	return (int(d.t.Weekday()) + 6) % 7
}

// AddDays returns the date n calendar days after d (before, if negative).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Before reports whether d falls before o.
func (d Date) Before(o Date) bool {
	return d.t.Before(o.t)
}

// After reports whether d falls after o.
func (d Date) After(o Date) bool {
	return d.t.After(o.t)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Time exposes the underlying instant (midnight UTC).
func (d Date) Time() time.Time {
	return d.t
}

// DatedCount pairs a calendar day with an article count.
type DatedCount struct {
	Date  Date
	Count int
}
