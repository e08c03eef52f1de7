package scan

import (
	"sort"
	"sync"
	"time"

	"github.com/dirscope/dirscope/internal/classify"
)

// aggregator is the single point of shared mutable state. Workers call
// fold and foldError concurrently; everything else (probing,
// classification) happens outside the lock.
type aggregator struct {
	mu           sync.Mutex
	records      []DirectoryRecord
	inaccessible []AccessError
	dirs         int64
	files        int64
	bytes        int64
	catBytes     map[classify.Category]int64
	catFiles     map[classify.Category]int64
}

func newAggregator() *aggregator {
	return &aggregator{
		catBytes: make(map[classify.Category]int64),
		catFiles: make(map[classify.Category]int64),
	}
}

// fold accumulates one completed directory record and its per-category
// file counts into the totals.
func (a *aggregator) fold(rec DirectoryRecord, catFiles map[classify.Category]int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.records = append(a.records, rec)
	a.dirs++
	a.files += int64(rec.FileCount)
	a.bytes += rec.Bytes

	for category, bytes := range rec.Categories {
		a.catBytes[category] += bytes
	}

	for category, count := range catFiles {
		a.catFiles[category] += count
	}
}

// foldError records an inaccessible directory as a zero-byte record so
// it is never silently dropped.
func (a *aggregator) foldError(accessErr *AccessError) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.records = append(a.records, DirectoryRecord{
		Path:       accessErr.Path,
		ErrMessage: accessErr.Error(),
	})
	a.inaccessible = append(a.inaccessible, *accessErr)
	a.dirs++
}

// snapshot returns the running counters for progress reporting.
func (a *aggregator) snapshot() (dirs, files, bytes int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.dirs, a.files, a.bytes
}

// finalize computes the immutable report: records sorted by byte total
// descending (ties by path for determinism), raw percentages of total
// bytes, category summaries sorted the same way, and the min-size view.
// Percentages are zero when the scan counted zero bytes.
func (a *aggregator) finalize(root string, minSize int64, elapsed time.Duration, partial bool) *Report {
	a.mu.Lock()
	defer a.mu.Unlock()

	records := make([]DirectoryRecord, len(a.records))
	copy(records, a.records)

	sort.Slice(records, func(i, j int) bool {
		if records[i].Bytes != records[j].Bytes {
			return records[i].Bytes > records[j].Bytes
		}

		return records[i].Path < records[j].Path
	})

	for i := range records {
		records[i].Percent = percentOf(records[i].Bytes, a.bytes)
	}

	filtered := make([]DirectoryRecord, 0, len(records))
	for _, rec := range records {
		if rec.HasError() || rec.Bytes < minSize {
			continue
		}

		filtered = append(filtered, rec)
	}

	categories := make([]CategorySummary, 0, len(a.catBytes))
	for category, bytes := range a.catBytes {
		categories = append(categories, CategorySummary{
			Category:  category,
			Bytes:     bytes,
			FileCount: a.catFiles[category],
			Percent:   percentOf(bytes, a.bytes),
		})
	}

	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Bytes != categories[j].Bytes {
			return categories[i].Bytes > categories[j].Bytes
		}

		return categories[i].Category < categories[j].Category
	})

	inaccessible := make([]AccessError, len(a.inaccessible))
	copy(inaccessible, a.inaccessible)

	sort.Slice(inaccessible, func(i, j int) bool {
		return inaccessible[i].Path < inaccessible[j].Path
	})

	stats := Statistics{
		Directories:   a.dirs,
		Files:         a.files,
		Bytes:         a.bytes,
		CategoryBytes: copyCategoryMap(a.catBytes),
		CategoryFiles: copyCategoryMap(a.catFiles),
		Inaccessible:  int64(len(a.inaccessible)),
		Elapsed:       elapsed,
	}

	return &Report{
		Root:         root,
		Records:      records,
		Filtered:     filtered,
		Categories:   categories,
		Stats:        stats,
		Inaccessible: inaccessible,
		Partial:      partial,
	}
}

func percentOf(part, total int64) float64 {
	if total <= 0 {
		return 0
	}

	return 100 * float64(part) / float64(total)
}

func copyCategoryMap(m map[classify.Category]int64) map[classify.Category]int64 {
	out := make(map[classify.Category]int64, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
