package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dirscope/dirscope/internal/classify"
)

// DefaultWorkers is the worker-pool size used when Options.Workers is
// unset. Unbounded concurrency is disallowed: wide trees would exhaust
// file descriptors.
const DefaultWorkers = 4

// ErrorSink receives every inaccessible directory as it is recorded.
// Called outside the aggregator lock; may be nil.
type ErrorSink func(path string, err *AccessError)

// ProgressFunc receives periodic (directories, files, bytes) snapshots
// while a scan is running.
type ProgressFunc func(dirs, files, bytes int64)

// Options configures a scan.
type Options struct {
	// Root is the directory to scan. Defaults to ".".
	Root string
	// IncludeHidden includes dot-prefixed files and directories.
	IncludeHidden bool
	// FollowSymlinks resolves symbolic links to files and
	// directories. Cycles are broken by the coordinator's visited
	// set of resolved paths.
	FollowSymlinks bool
	// MinSize is the minimum directory byte total for the filtered
	// report view. It never affects global statistics.
	MinSize int64
	// Extensions restricts counting to the given extensions
	// (case-insensitive, with or without leading dot). Empty means
	// all files.
	Extensions []string
	// Overrides maps extensions to categories, taking precedence
	// over the built-in table.
	Overrides map[string]classify.Category
	// Workers bounds the concurrent strategy's pool size.
	Workers int
	// Sequential selects the single-threaded strategy.
	Sequential bool
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// ErrorSink receives inaccessible directories as they are found.
	ErrorSink ErrorSink
}

// validate checks the root and applies defaults, returning the
// absolute root path. A missing or non-directory root is fatal.
func (o *Options) validate() (string, error) {
	if o.Root == "" {
		o.Root = "."
	}

	root, err := filepath.Abs(filepath.Clean(o.Root))
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", &InvalidRootError{Path: root, Err: err}
	}

	if !info.IsDir() {
		return "", &InvalidRootError{Path: root}
	}

	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}

	return root, nil
}

// extensionSet normalizes the allow-filter into a lookup set.
// A nil result means no filtering.
func (o *Options) extensionSet() map[string]struct{} {
	if len(o.Extensions) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(o.Extensions))
	for _, ext := range o.Extensions {
		set[classify.NormalizeExtension(ext)] = struct{}{}
	}

	return set
}
