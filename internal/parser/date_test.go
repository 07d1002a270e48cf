package parser

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log-analyzer/internal/models"
)

// TestParseFilterDate tests the day-before-month filter date format
func TestParseFilterDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected models.Date
		wantErr  bool
	}{
		{name: "day before month", input: "2025-22-06", expected: models.NewDate(2025, time.June, 22)},
		{name: "first of january", input: "2024-01-01", expected: models.NewDate(2024, time.January, 1)},
		{name: "leap day", input: "2024-29-02", expected: models.NewDate(2024, time.February, 29)},
		{name: "not a date", input: "invalid-date", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "ISO order rejected", input: "2025-06-22", wantErr: true},
		{name: "day out of range", input: "2025-31-02", wantErr: true},
		{name: "non leap year", input: "2025-29-02", wantErr: true},
		{name: "single digit day", input: "2025-1-06", wantErr: true},
		{name: "dots instead of hyphens", input: "2025.22.06", wantErr: true},
		{name: "trailing time", input: "2025-22-06T10:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFilterDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidDateFormat))
				assert.Equal(t, "Invalid date format. Use YYYY-DD-MM", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestTimestampDate tests extracting the calendar date from ISO-8601 timestamps
func TestTimestampDate(t *testing.T) {
	june22 := models.NewDate(2025, time.June, 22)

	tests := []struct {
		name     string
		input    string
		expected models.Date
		wantErr  bool
	}{
		{name: "offset", input: "2025-06-22T12:00:00+00:00", expected: june22},
		{name: "zulu", input: "2025-06-22T12:00:00Z", expected: june22},
		{name: "fractional seconds", input: "2025-06-22T12:00:00.123456+00:00", expected: june22},
		{name: "no zone", input: "2025-06-22T12:00:00", expected: june22},
		{name: "space separator", input: "2025-06-22 12:00:00", expected: june22},
		{name: "date only", input: "2025-06-22", expected: june22},
		{name: "minutes only", input: "2025-06-22T12:00", expected: june22},
		{name: "offset is not converted to UTC", input: "2025-06-22T01:00:00+03:00", expected: june22},
		{name: "late evening with negative offset", input: "2025-06-22T23:30:00-05:00", expected: june22},
		{name: "offset without colon", input: "2025-06-22T12:00:00+0000", expected: june22},
		{name: "hour only offset", input: "2025-06-22T12:00:00+03", expected: june22},
		{name: "comma fraction", input: "2025-06-22T12:00:00,5Z", expected: june22},
		{name: "hour precision", input: "2025-06-22T12", expected: june22},
		{name: "hour precision with offset", input: "2025-06-22T12+02:00", expected: june22},
		{name: "space separator with minutes", input: "2025-06-22 12:00", expected: june22},
		{name: "space separator with offset without colon", input: "2025-06-22 12:00:00-0500", expected: june22},
		{name: "space separator hour only offset", input: "2025-06-22 12:00:00+03", expected: june22},
		{name: "basic date", input: "20250622", expected: june22},
		{name: "basic date and time", input: "20250622T120000", expected: june22},
		{name: "basic with offset", input: "20250622T120000+0300", expected: june22},
		{name: "empty", input: "", wantErr: true},
		{name: "leading space", input: " 2025-06-22", wantErr: true},
		{name: "trailing space", input: "2025-06-22T12:00:00Z ", wantErr: true},
		{name: "garbage", input: "yesterday", wantErr: true},
		{name: "filter format is not a timestamp", input: "2025-22-06", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimestampDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidTimestamp))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
