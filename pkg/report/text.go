// Package report renders a calculation report for people and machines.
package report

import (
	"fmt"
	"io"
	"strconv"

	"sdcalc/pkg/calc"
	"sdcalc/pkg/utils"

	"github.com/fatih/color"
	"github.com/minio/pkg/console"
	"github.com/olekukonko/tablewriter"
)

func init() {
	console.SetColor("Title", color.New(color.FgCyan, color.Bold))
	console.SetColor("Value", color.New(color.FgGreen, color.Bold))
	console.SetColor("Warn", color.New(color.FgYellow))
}

const enduranceAdvice = "Use a high endurance microSD card for dashcams or continuous video recording. " +
	"Prefer cards labeled High Endurance, Surveillance or Video and check the manufacturer's endurance/TBW rating: " +
	"it should meet or exceed the recommended TBW above."

// StreamHeader column names of the per-stream table, shared with the CSV export.
var StreamHeader = []string{
	"stream", "file_size_MB", "file_length_min", "MB_per_min", "MB_per_hour",
	"MB_per_sec", "Mbps", "recording_hours_per_day", "MB_per_day", "avg_MB_per_hour",
}

// StreamRow formats one stream result in StreamHeader order.
func StreamRow(r calc.StreamResult) []string {
	return []string{
		r.Stream.Name,
		utils.FormatFloat(r.Stream.FileSizeMB, 1),
		strconv.FormatFloat(r.Stream.FileLengthMin, 'f', -1, 64),
		utils.FormatFloat(r.MBPerMin, 1),
		utils.FormatFloat(r.MBPerHour, 1),
		utils.FormatFloat(r.MBPerSec, 3),
		utils.FormatFloat(r.Mbps, 3),
		utils.FormatFloat(r.Stream.HoursPerDay, 1),
		utils.FormatFloat(r.MBPerDay, 1),
		utils.FormatFloat(r.AvgMBPerHour, 1),
	}
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	return table
}

// WriteStreams writes the per-stream breakdown table.
func WriteStreams(w io.Writer, results []calc.StreamResult) {
	table := newTable(w, StreamHeader)
	for _, r := range results {
		table.Append(StreamRow(r))
	}
	table.Render()
}

// WriteRetentionTable writes the card size to retention hours table.
func WriteRetentionTable(w io.Writer, rows []calc.CardRetention) {
	table := newTable(w, []string{"card_GB", "hours_of_retention"})
	for _, row := range rows {
		table.Append([]string{strconv.Itoa(row.CardGB), FormatRetention(row.Retention)})
	}
	table.Render()
}

// FormatRetention renders hours with one decimal, or "unbounded".
func FormatRetention(r calc.Retention) string {
	h, ok := r.Hours()
	if !ok {
		return r.String()
	}
	return utils.FormatFloat(h, 1)
}

func title(w io.Writer, s string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, console.Colorize("Title", s))
}

func value(s string) string {
	return console.Colorize("Value", s)
}

// WriteText writes the whole report as tables and lines of text.
func WriteText(w io.Writer, rep *calc.Report) {
	title(w, "Per-stream breakdown")
	WriteStreams(w, rep.Streams)

	agg := rep.Aggregate
	title(w, "Totals")
	fmt.Fprintf(w, "MB / day:  %s MB\n", value(utils.FormatFloat(agg.TotalMBPerDay, 0)))
	fmt.Fprintf(w, "GB / day:  %s GB\n", value(utils.FormatFloat(agg.GBPerDay, 2)))
	fmt.Fprintf(w, "TB / year: %s TB\n", value(utils.FormatFloat(agg.TBPerYear, 4)))

	end := rep.Endurance
	title(w, "TBW / endurance")
	fmt.Fprintf(w, "Estimated writes over %v years: %s TB\n",
		end.LifetimeYears, value(utils.FormatFloat(end.TBWRequiredOverLife, 3)))
	fmt.Fprintf(w, "Recommended TBW with %v%% margin: %s TB\n",
		end.SafetyMarginPct, value(utils.FormatFloat(end.TBWWithMargin, 3)))

	rec := rep.Recommendation
	title(w, "Card capacity for loop/retention")
	fmt.Fprintf(w, "Data needed to keep %d hours: %s GB (%s)\n",
		rec.RetentionHours, value(utils.FormatFloat(rec.GBNeeded, 2)), utils.IBytes(rec.MBNeeded))
	fmt.Fprintf(w, "Suggested minimum card size (rounded): %s GB\n", value(strconv.Itoa(rec.CardGB)))
	if rec.Saturated {
		fmt.Fprintln(w, console.Colorize("Warn",
			fmt.Sprintf("Needed capacity exceeds the largest modeled card; %d GB holds less than %d hours.",
				rec.CardGB, rec.RetentionHours)))
	}

	title(w, "Retention per card size")
	WriteRetentionTable(w, rep.RetentionTable)

	fmt.Fprintln(w)
	fmt.Fprintln(w, console.Colorize("Warn", enduranceAdvice))
}
