// Package report renders a finalized scan report as text, CSV, or
// JSON, and writes the no-access error log. Writers treat the report
// as read-only.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/dirscope/dirscope/internal/scan"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2

	// minDisplayPercent is the smallest percentage rendered exactly;
	// anything below is clamped to a "< 0.01%" marker. The raw value
	// stays in the report model.
	minDisplayPercent = 0.01
)

// FormatPercent renders a raw percentage for human display, clamping
// values below 0.01% to a marker instead of rounding them to zero.
func FormatPercent(percent float64) string {
	if percent > 0 && percent < minDisplayPercent {
		return fmt.Sprintf("<%.2f%%", minDisplayPercent)
	}

	return fmt.Sprintf("%.2f%%", percent)
}

// WriteText renders the report in human-readable form, showing the
// topN largest directories and the content-type breakdown.
func WriteText(w io.Writer, rep *scan.Report, topN int) error {
	tw := tabwriter.NewWriter(w, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(tw, "Scan summary:\t")
	fmt.Fprintf(tw, "  Target path:\t%s\n", rep.Root)
	fmt.Fprintf(tw, "  Directories:\t%d\n", rep.Stats.Directories)
	fmt.Fprintf(tw, "  Files:\t%d\n", rep.Stats.Files)
	fmt.Fprintf(tw, "  Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(rep.Stats.Bytes)), rep.Stats.Bytes) //nolint:gosec // Bytes is non-negative
	fmt.Fprintf(tw, "  Elapsed:\t%v\n", rep.Stats.Elapsed)

	if rep.Partial {
		fmt.Fprintln(tw, "  Note:\tscan was cancelled; results are partial")
	}

	if rep.Stats.Inaccessible > 0 {
		fmt.Fprintf(tw, "  Access errors:\t%d directories\n", rep.Stats.Inaccessible)
		fmt.Fprintf(tw, "  Success rate:\t%.1f%%\n", 100*rep.Stats.SuccessRate())
	}

	top := rep.Top(topN)

	fmt.Fprintf(tw, "\nTop %d directories (by direct file size):\t\n", len(top))

	for i, rec := range top {
		fmt.Fprintf(tw, "  %3d) %s\t%s\t(%s)\t%d files\n",
			i+1, rec.Path,
			humanize.IBytes(uint64(rec.Bytes)), //nolint:gosec // Bytes is non-negative
			FormatPercent(rec.Percent), rec.FileCount)
	}

	if len(rep.Categories) > 0 {
		fmt.Fprintln(tw, "\nContent type breakdown:\t")

		for _, cat := range rep.Categories {
			fmt.Fprintf(tw, "  %s:\t%s\t(%s)\t%d files\n",
				cat.Category.DisplayName(),
				humanize.IBytes(uint64(cat.Bytes)), //nolint:gosec // Bytes is non-negative
				FormatPercent(cat.Percent), cat.FileCount)
		}
	}

	return tw.Flush()
}
