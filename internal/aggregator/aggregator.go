// Package aggregator reads access log files and accumulates per-endpoint statistics
package aggregator

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"log-analyzer/internal/config"
	"log-analyzer/internal/models"
	"log-analyzer/internal/parser"
)

// FileSummary counts what happened to the lines of one file.
// Dropped lines are never reported individually; these counters are the only trace.
type FileSummary struct {
	Path      string
	Opened    bool
	Lines     int // lines read
	Accepted  int // lines added to the result set
	Malformed int // lines that were not a JSON object
	Filtered  int // lines outside the filter date or without a usable @timestamp
	Rejected  int // lines without url or with response_time <= 0
}

// Dropped returns the number of lines that did not reach the result set
func (s FileSummary) Dropped() int {
	return s.Malformed + s.Filtered + s.Rejected
}

// String returns a one-line human-readable summary
func (s FileSummary) String() string {
	if !s.Opened {
		return fmt.Sprintf("%s: not opened", s.Path)
	}
	return fmt.Sprintf("%s: %d lines, %d accepted, %d dropped (%d malformed, %d filtered by date, %d rejected)",
		s.Path, s.Lines, s.Accepted, s.Dropped(), s.Malformed, s.Filtered, s.Rejected)
}

// ProcessLogFile aggregates every valid record of filePath into results.
// A file that cannot be opened is reported on out and skipped, so callers
// can keep processing the remaining files of a run.
// filterDate may be nil to count records from every date.
func ProcessLogFile(out io.Writer, filePath string, results models.ResultSet, filterDate *models.Date) FileSummary {
	file, err := openLogFile(filePath)
	if err != nil {
		fmt.Fprintf(out, config.FileNotFoundMessage+"\n", filePath)
		return FileSummary{Path: filePath}
	}
	defer file.Close()

	summary, err := ProcessReader(file, results, filterDate)
	summary.Path = filePath
	if err != nil {
		fmt.Fprintf(out, config.FileReadErrorFormat+"\n", filePath, err)
	}

	return summary
}

// openLogFile opens filePath for reading. Directories are refused.
func openLogFile(filePath string) (*os.File, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat log file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// ProcessReader aggregates newline-delimited JSON records read from r into results.
// Records aggregated before a read error stay in results.
func ProcessReader(r io.Reader, results models.ResultSet, filterDate *models.Date) (FileSummary, error) {
	summary := FileSummary{Opened: true}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), config.MaxLineSize)

	for scanner.Scan() {
		summary.Lines++

		record, err := parser.ParseRecord(scanner.Bytes())
		if err != nil {
			summary.Malformed++
			continue
		}

		if filterDate != nil && !onDate(record, *filterDate) {
			summary.Filtered++
			continue
		}

		if !record.Valid() {
			summary.Rejected++
			continue
		}

		results.Add(record.Endpoint(), record.ResponseTime)
		summary.Accepted++
	}

	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("failed to read log lines: %w", err)
	}

	return summary, nil
}

// onDate reports whether the record was logged on date.
// Records without a parseable @timestamp never match.
func onDate(record models.LogRecord, date models.Date) bool {
	recordDate, err := parser.TimestampDate(record.Timestamp)
	if err != nil {
		return false
	}
	return recordDate == date
}
