package parser

import (
	"encoding/json"
	"errors"
	"fmt"

	"log-analyzer/internal/models"
)

// ErrNotAnObject is returned for a JSON null line
var ErrNotAnObject = errors.New("malformed log line: not a JSON object")

// ParseRecord decodes one log line into a LogRecord.
// The line must be a JSON object. Known fields with an unexpected JSON type
// are left at their zero value instead of failing the whole line.
func ParseRecord(line []byte) (models.LogRecord, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(line, &fields); err != nil {
		return models.LogRecord{}, fmt.Errorf("malformed log line: %w", err)
	}
	if fields == nil {
		return models.LogRecord{}, ErrNotAnObject
	}

	return models.LogRecord{
		Timestamp:    stringField(fields, "@timestamp"),
		URL:          stringField(fields, "url"),
		ResponseTime: numberField(fields, "response_time"),
	}, nil
}

// stringField returns fields[key] if it holds a JSON string
func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return value
}

// numberField returns fields[key] if it holds a JSON number
func numberField(fields map[string]json.RawMessage, key string) float64 {
	raw, ok := fields[key]
	if !ok {
		return 0
	}

	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0
	}
	return value
}
