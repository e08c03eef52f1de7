package scan

import (
	"context"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// startProgressReporter invokes hook with aggregator snapshots on each
// tick until ctx is done.
func startProgressReporter(ctx context.Context, agg *aggregator, hook ProgressFunc, interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(agg.snapshot())
			case <-ctx.Done():
				return
			}
		}
	}()
}
