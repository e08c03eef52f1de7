package scan

import (
	"time"

	"github.com/dirscope/dirscope/internal/classify"
)

// FileRecord describes one direct file during a single directory probe.
// It never outlives the probe: only its classified size contributes to
// the owning DirectoryRecord.
type FileRecord struct {
	// Path is the absolute file path.
	Path string
	// Size is the file size in bytes.
	Size int64
	// Ext is the lower-cased extension, with leading dot.
	Ext string
	// Category is the resolved content category.
	Category classify.Category
}

// DirectoryRecord aggregates one directory's direct files. It counts
// only files immediately inside the directory, never subdirectory
// contents. Records are immutable once folded into the aggregator.
type DirectoryRecord struct {
	// Path is the absolute directory path.
	Path string `json:"path"`
	// FileCount is the number of direct files counted.
	FileCount int `json:"file_count"`
	// Bytes is the total size of direct files.
	Bytes int64 `json:"size_bytes"`
	// Categories breaks Bytes down by content category.
	Categories map[classify.Category]int64 `json:"categories,omitempty"`
	// Percent is this record's share of the scan's total bytes,
	// filled in during finalization. Raw value; display clamping is
	// a formatting concern.
	Percent float64 `json:"percent"`
	// ErrMessage is set when the directory could not be listed.
	ErrMessage string `json:"error,omitempty"`
}

// HasError reports whether the directory failed to list.
func (r DirectoryRecord) HasError() bool { return r.ErrMessage != "" }

// Dominant returns the category holding the largest share of the
// record's bytes, or Other for an empty record. Ties break by category
// name for determinism.
func (r DirectoryRecord) Dominant() classify.Category {
	dominant := classify.Other

	var best int64
	for category, bytes := range r.Categories {
		if bytes > best || (bytes == best && best > 0 && category < dominant) {
			dominant = category
			best = bytes
		}
	}

	return dominant
}

// Statistics is the global accumulator over the whole scan. Totals
// always reflect the unfiltered tree; the min-size view filter never
// touches them.
type Statistics struct {
	// Directories is the number of directories visited, including
	// inaccessible ones.
	Directories int64 `json:"total_directories"`
	// Files is the total number of files counted.
	Files int64 `json:"total_files"`
	// Bytes is the total size of all counted files.
	Bytes int64 `json:"total_bytes"`
	// CategoryBytes breaks Bytes down by content category.
	CategoryBytes map[classify.Category]int64 `json:"category_bytes"`
	// CategoryFiles breaks Files down by content category.
	CategoryFiles map[classify.Category]int64 `json:"category_files"`
	// Inaccessible is the number of directories that failed to list.
	Inaccessible int64 `json:"inaccessible"`
	// Elapsed is the wall-clock scan duration.
	Elapsed time.Duration `json:"elapsed"`
}

// SuccessRate returns the fraction of visited directories that were
// listed successfully, in [0, 1].
func (s Statistics) SuccessRate() float64 {
	if s.Directories == 0 {
		return 0
	}

	return float64(s.Directories-s.Inaccessible) / float64(s.Directories)
}
