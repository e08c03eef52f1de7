package scan

import "github.com/dirscope/dirscope/internal/classify"

// CategorySummary is one content category's share of the whole scan.
type CategorySummary struct {
	// Category is the content category.
	Category classify.Category `json:"category"`
	// Bytes is the total size classified into this category.
	Bytes int64 `json:"size_bytes"`
	// FileCount is the number of files in this category.
	FileCount int64 `json:"file_count"`
	// Percent is the raw share of total bytes.
	Percent float64 `json:"percent"`
}

// Report is the finalized, immutable snapshot handed to output
// formatters. Formatters must not mutate it.
type Report struct {
	// Root is the absolute scan root.
	Root string `json:"root"`
	// Records holds every visited directory, sorted by byte total
	// descending with ties broken by path.
	Records []DirectoryRecord `json:"directories"`
	// Filtered is the min-size display view over Records, with
	// errored directories excluded. Global statistics are unaffected
	// by this filter.
	Filtered []DirectoryRecord `json:"-"`
	// Categories is the content breakdown, sorted by bytes descending.
	Categories []CategorySummary `json:"content_analysis"`
	// Stats holds the global accumulators.
	Stats Statistics `json:"summary"`
	// Inaccessible lists every directory that failed to list,
	// sorted by path.
	Inaccessible []AccessError `json:"inaccessible,omitempty"`
	// Partial is set when the scan was cancelled before completing.
	Partial bool `json:"partial"`
}

// Top returns the n largest directories from the filtered view.
func (r *Report) Top(n int) []DirectoryRecord {
	if n <= 0 || n > len(r.Filtered) {
		n = len(r.Filtered)
	}

	return r.Filtered[:n]
}
