// Package parser decodes access log lines and the dates used to filter them
package parser

import (
	"errors"
	"fmt"
	"time"

	"log-analyzer/internal/config"
	"log-analyzer/internal/models"
)

// ErrInvalidDateFormat is returned when a filter date does not match YYYY-DD-MM.
// Its message is shown to the user as is.
var ErrInvalidDateFormat = errors.New(config.InvalidDateMessage)

// ErrInvalidTimestamp is returned when a log timestamp is not ISO-8601
var ErrInvalidTimestamp = errors.New("invalid ISO-8601 timestamp")

// timestampLayouts are the ISO-8601 forms accepted for @timestamp, tried in order.
// Fractional seconds are optional in every layout that has seconds.
var timestampLayouts = buildTimestampLayouts()

// buildTimestampLayouts combines the extended and basic date forms with
// every time precision and zone style.
func buildTimestampLayouts() []string {
	forms := []struct {
		date  string
		seps  []string
		times []string
	}{
		{date: "2006-01-02", seps: []string{"T", " "}, times: []string{"15:04:05.999999999", "15:04", "15"}},
		{date: "20060102", seps: []string{"T"}, times: []string{"150405.999999999", "1504", "15"}},
	}
	zones := []string{"Z07:00", "Z0700", "Z07", ""}

	var layouts []string
	for _, f := range forms {
		for _, sep := range f.seps {
			for _, clock := range f.times {
				for _, zone := range zones {
					layouts = append(layouts, f.date+sep+clock+zone)
				}
			}
		}
		layouts = append(layouts, f.date)
	}
	return layouts
}

// ParseFilterDate parses a user supplied date in YYYY-DD-MM form
// (day before month, e.g. 2025-22-06 is 22 June 2025)
func ParseFilterDate(value string) (models.Date, error) {
	t, err := time.Parse(config.FilterDateLayout, value)
	if err != nil {
		return models.Date{}, ErrInvalidDateFormat
	}
	return models.DateOf(t), nil
}

// ParseTimestamp parses an ISO-8601 timestamp as written in a log record
func ParseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidTimestamp)
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}

// TimestampDate returns the calendar date of an ISO-8601 timestamp.
// The time of day and the zone offset are dropped, not converted.
func TimestampDate(value string) (models.Date, error) {
	t, err := ParseTimestamp(value)
	if err != nil {
		return models.Date{}, err
	}
	return models.DateOf(t), nil
}
