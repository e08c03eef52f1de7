package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/dirscope/dirscope/internal/scan"
)

// WriteCSV renders every directory record as CSV. Sizes stay exact
// byte integers; rounding is reserved for the text writer.
func WriteCSV(w io.Writer, rep *scan.Report) error {
	cw := csv.NewWriter(w)

	header := []string{
		"rank", "path", "size_bytes", "percentage",
		"file_count", "dominant_category", "error",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for i, rec := range rep.Records {
		row := []string{
			strconv.Itoa(i + 1),
			rec.Path,
			strconv.FormatInt(rec.Bytes, 10),
			strconv.FormatFloat(rec.Percent, 'f', 4, 64),
			strconv.Itoa(rec.FileCount),
			string(rec.Dominant()),
			rec.ErrMessage,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}
