package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"sdcalc/pkg/calc"
	"sdcalc/pkg/utils"

	"github.com/klauspost/compress/zstd"
)

// ExportExt is appended to export file names missing it.
const ExportExt = ".csv.zst"

// ExportPath returns name with ExportExt appended when missing.
func ExportPath(name string) string {
	if strings.HasSuffix(name, ExportExt) {
		return name
	}
	return name + ExportExt
}

// WriteCSV writes the command line as a comment, the stream rows and a
// totals row.
func WriteCSV(w io.Writer, rep *calc.Report, cmdLine string) error {
	cw := csv.NewWriter(w)
	if cmdLine != "" {
		if _, err := fmt.Fprintf(w, "# %s\n", cmdLine); err != nil {
			return err
		}
	}
	if err := cw.Write(StreamHeader); err != nil {
		return err
	}
	for _, r := range rep.Streams {
		if err := cw.Write(StreamRow(r)); err != nil {
			return err
		}
	}
	agg := rep.Aggregate
	total := make([]string, len(StreamHeader))
	total[0] = "total"
	total[len(total)-2] = utils.FormatFloat(agg.TotalMBPerDay, 1)
	total[len(total)-1] = utils.FormatFloat(agg.AvgMBPerHourAll, 1)
	if err := cw.Write(total); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// Export writes the CSV report compressed with zstd to path and returns the
// final file name.
func Export(path string, rep *calc.Report, cmdLine string) (string, error) {
	path = ExportPath(path)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export: %w", err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return "", fmt.Errorf("compress export: %w", err)
	}
	if err := WriteCSV(enc, rep, cmdLine); err != nil {
		enc.Close()
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("compress export: %w", err)
	}
	return path, f.Close()
}
