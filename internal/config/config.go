// Package config provides shared configuration constants and settings
// for the endpoint log analyzer
package config

const (
	// AppName is the name of the root command
	AppName = "log-analyzer"

	// ReportAverage selects the average response time report
	ReportAverage = "average"

	// DefaultReportType is used when no --report flag is provided
	DefaultReportType = ReportAverage

	// FileFlagDescription is the help text description for the file flag
	FileFlagDescription = "Log files to analyze (repeatable or comma-separated)"

	// ReportFlagDescription is the help text description for the report flag
	ReportFlagDescription = "Report type (supported: average)"

	// DateFlagDescription is the help text description for the date filter flag
	DateFlagDescription = "Only count records logged on this date, format YYYY-DD-MM"

	// VerboseFlagDescription is the help text description for the verbose flag
	VerboseFlagDescription = "Print per-file line counters to stderr"

	// Date layouts. The filter date puts the day before the month.
	FilterDateLayout  = "2006-02-01"
	FilterDateHint    = "YYYY-DD-MM"
	DisplayDateLayout = "02.01.2006"

	// MaxLineSize caps a single log line read by the aggregator
	MaxLineSize = 10 * 1024 * 1024
)

// Report table labels
const (
	EndpointColumnLabel = "Эндпоинт"
	RequestsColumnLabel = "Кол-во запросов"
	AverageColumnLabel  = "Среднее время"
	SecondsUnitLabel    = "сек"
)

// User-facing messages
const (
	InvalidDateMessage  = "Invalid date format. Use " + FilterDateHint
	FileNotFoundMessage = "⚠️ File %s not found, skipping"
	FileReadErrorFormat = "⚠️ Error reading file %s: %v"
	NoDataMessage       = "No data to display. Check filters or files."
	AverageReportTitle  = "Average response time report:"
	DateSuffixFormat    = " (for %s)"
)
