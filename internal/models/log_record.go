// Package models defines the data structures used throughout the application
package models

import "strings"

// LogRecord represents a single decoded line of an access log
// Fields that are absent or have the wrong JSON type keep their zero value
type LogRecord struct {
	Timestamp    string  `json:"@timestamp"`    // ISO-8601 timestamp as written in the log
	URL          string  `json:"url"`           // Request URL, possibly with a query string
	ResponseTime float64 `json:"response_time"` // Response time in seconds
}

// Endpoint returns the URL with any query string removed
func (r LogRecord) Endpoint() string {
	endpoint, _, _ := strings.Cut(r.URL, "?")
	return endpoint
}

// Valid reports whether the record can be counted: it needs a URL and a
// positive response time
func (r LogRecord) Valid() bool {
	return r.URL != "" && r.ResponseTime > 0
}
