package models

import "time"

// Date is a calendar date without a time of day or zone
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from its parts
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t in t's own location.
// The zone offset is kept as written, not converted to UTC.
func DateOf(t time.Time) Date {
	return NewDate(t.Date())
}

// Format renders the date with a time.Format layout
func (d Date) Format(layout string) string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(layout)
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}
