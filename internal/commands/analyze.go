// Package commands implements the CLI commands for the endpoint log analyzer
package commands

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"log-analyzer/internal/aggregator"
	"log-analyzer/internal/config"
	"log-analyzer/internal/models"
	"log-analyzer/internal/parser"
	"log-analyzer/internal/report"
)

// Options holds the parsed command line flags
type Options struct {
	Files   []string `validate:"required,min=1,dive,required"`
	Report  string   `validate:"required,oneof=average"`
	Date    string
	Verbose bool
}

// Validate checks the options before any file is read
func (o *Options) Validate() error {
	v := validator.New()
	return v.Struct(o)
}

// NewRootCommand creates the root command that reads log files and prints a report
// Usage: log-analyzer --file access.log [--file other.log] [--report average] [--date 2025-22-06]
func NewRootCommand() *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Report average response time per endpoint from JSON access logs",
		Long: `Log Analyzer reads newline-delimited JSON access logs and reports the
average response time of every endpoint.

Each line should be a JSON object with these fields:
- @timestamp: ISO-8601 time of the request
- url: requested URL, the query string is ignored
- response_time: response time in seconds (must be positive)

Lines that are not valid JSON or lack a url or a positive response_time are skipped.
Statistics from all files are combined into a single report.

Use --date to only count requests from one day. The date is written
day before month: 2025-22-06 is 22 June 2025.

Example:
  log-analyzer --file access.log
  log-analyzer --file access.log --file access.log.1 --report average
  log-analyzer --file access.log,access.log.1 --date 2025-22-06`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Allow "--file a.log b.log": extra arguments are log files too
			opts.Files = append(opts.Files, args...)
			return runAnalyzeCommand(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	// Define command flags
	cmd.Flags().StringSliceVarP(&opts.Files, "file", "f", nil, config.FileFlagDescription)
	cmd.Flags().StringVarP(&opts.Report, "report", "r", config.DefaultReportType, config.ReportFlagDescription)
	cmd.Flags().StringVarP(&opts.Date, "date", "d", "", config.DateFlagDescription)
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, config.VerboseFlagDescription)
	cmd.MarkFlagRequired("file")

	return cmd
}

// runAnalyzeCommand aggregates every file and prints the selected report.
// Invalid dates and empty results are reported on out and are not errors.
func runAnalyzeCommand(out, errOut io.Writer, opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	// Parse the date filter before touching any file
	var filterDate *models.Date
	if opts.Date != "" {
		date, err := parser.ParseFilterDate(opts.Date)
		if err != nil {
			fmt.Fprintln(out, err)
			return nil
		}
		filterDate = &date
	}

	results := models.NewResultSet()
	for _, filePath := range opts.Files {
		summary := aggregator.ProcessLogFile(out, filePath, results, filterDate)
		if opts.Verbose {
			fmt.Fprintln(errOut, summary)
		}
	}

	switch opts.Report {
	case config.ReportAverage:
		printAverageReport(out, results, filterDate)
	}

	return nil
}

// printAverageReport prints the report title and table, or a notice when nothing was aggregated
func printAverageReport(out io.Writer, results models.ResultSet, filterDate *models.Date) {
	if len(results) == 0 {
		fmt.Fprintln(out, config.NoDataMessage)
		return
	}

	fmt.Fprint(out, config.AverageReportTitle)
	if filterDate != nil {
		fmt.Fprintf(out, config.DateSuffixFormat, filterDate.Format(config.DisplayDateLayout))
	}
	fmt.Fprintln(out)

	fmt.Fprint(out, report.GenerateAverageReport(results))
}
