// Package report renders aggregated endpoint statistics as text tables
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"log-analyzer/internal/config"
	"log-analyzer/internal/models"
)

// AverageHeaders are the column labels of the average response time report
var AverageHeaders = []string{
	config.EndpointColumnLabel,
	config.RequestsColumnLabel,
	config.AverageColumnLabel,
}

// GenerateAverageReport renders one row per endpoint, sorted by endpoint,
// with the request count and the mean response time.
// An empty result set renders the header only.
func GenerateAverageReport(results models.ResultSet) string {
	var buf strings.Builder

	table := newGridTable(&buf, AverageHeaders)
	for _, endpoint := range results.Endpoints() {
		stats := results[endpoint]
		table.Append([]string{
			endpoint,
			strconv.Itoa(stats.Requests),
			FormatSeconds(stats.Average()),
		})
	}
	table.Render()

	return buf.String()
}

// FormatSeconds formats a duration in seconds with three decimals and the unit label
func FormatSeconds(seconds float64) string {
	return fmt.Sprintf("%.3f %s", seconds, config.SecondsUnitLabel)
}

// newGridTable returns a bordered table with a rule under the header and after every row
func newGridTable(buf *strings.Builder, headers []string) *tablewriter.Table {
	t := tablewriter.NewWriter(buf)
	t.SetHeader(headers)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetRowLine(true)
	return t
}
