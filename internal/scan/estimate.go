package scan

import (
	"context"
	"io/fs"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// EstimateDirectories counts the directories under root with a fast
// parallel walk, for sizing progress output before a scan. Access
// errors are skipped: the estimate covers the reachable tree only.
func EstimateDirectories(ctx context.Context, root string) (int64, error) {
	var count int64

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	err := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // Unreachable entries don't count
		}

		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if d.IsDir() {
			atomic.AddInt64(&count, 1)
		}

		return nil
	})
	if err != nil {
		return atomic.LoadInt64(&count), err
	}

	return atomic.LoadInt64(&count), nil
}
