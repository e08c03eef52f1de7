package scan

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/dirscope/dirscope/internal/classify"
)

// State is the coordinator's lifecycle state.
type State int32

// Coordinator states.
const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateCancelled
	StateFatal
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	case StateFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Coordinator drives traversal of a directory tree. It owns the work
// queue, the visited set, and the choice between the sequential and
// concurrent strategies; both produce identical observable output for
// the same input tree.
type Coordinator struct {
	opt        Options
	classifier *classify.Classifier
	extensions map[string]struct{}
	agg        *aggregator
	state      atomic.Int32

	visitedMu sync.Mutex
	visited   map[string]struct{}
}

// NewCoordinator creates a coordinator for the given options.
func NewCoordinator(opt Options) *Coordinator {
	c := &Coordinator{
		opt:        opt,
		classifier: classify.New(opt.Overrides),
		extensions: opt.extensionSet(),
		agg:        newAggregator(),
		visited:    make(map[string]struct{}),
	}
	c.state.Store(int32(StateIdle))

	return c
}

// State returns the coordinator's current lifecycle state.
func (c *Coordinator) State() State {
	return State(c.state.Load())
}

// Run scans the tree rooted at the options' root path and returns the
// finalized report. An invalid root is fatal and returns before any
// traversal. Cancellation via ctx is cooperative: in-flight probes
// complete, no new directories are dequeued, and the returned report is
// consistent and marked partial.
func (c *Coordinator) Run(ctx context.Context, progress ProgressFunc) (*Report, error) {
	root, err := c.opt.validate()
	if err != nil {
		c.state.Store(int32(StateFatal))

		return nil, err
	}

	c.state.Store(int32(StateRunning))
	log.Debugf("scanning %s (workers=%d sequential=%v)", root, c.opt.Workers, c.opt.Sequential)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, c.agg, progress, c.opt.ProgressInterval)

	start := time.Now()
	c.markVisited(root)

	if c.opt.Sequential {
		c.runSequential(ctx, root)
	} else {
		c.runConcurrent(ctx, root)
	}

	partial := ctx.Err() != nil
	if partial {
		c.state.Store(int32(StateCancelled))
	} else {
		c.state.Store(int32(StateCompleted))
	}

	report := c.agg.finalize(root, c.opt.MinSize, time.Since(start), partial)
	log.Debugf("scan %s: %d directories, %d files, %d bytes, %d inaccessible",
		c.State(), report.Stats.Directories, report.Stats.Files,
		report.Stats.Bytes, report.Stats.Inaccessible)

	return report, nil
}

// runSequential walks the tree with an explicit FIFO queue. The queue
// replaces call-stack recursion so deep trees cannot overflow the stack
// and cancellation is checked between units of work.
func (c *Coordinator) runSequential(ctx context.Context, root string) {
	queue := []string{root}

	for len(queue) > 0 {
		if ctx.Err() != nil {
			return
		}

		dir := queue[0]
		queue = queue[1:]

		queue = append(queue, c.processDir(dir)...)
	}
}

// runConcurrent probes directories with a bounded worker pool sharing
// one work queue. Probing and classification are worker-local; the
// aggregator fold is the only synchronized section.
func (c *Coordinator) runConcurrent(ctx context.Context, root string) {
	queue := newWorkQueue()
	queue.push(root)

	// Unblock poppers when the caller cancels mid-scan.
	go func() {
		<-ctx.Done()
		queue.close()
	}()

	group := new(errgroup.Group)

	for i := 0; i < c.opt.Workers; i++ {
		group.Go(func() error {
			for {
				dir, ok := queue.pop()
				if !ok {
					return nil
				}

				queue.push(c.processDir(dir)...)
				queue.done()
			}
		})
	}

	_ = group.Wait() // workers never return errors
}

// processDir probes one directory, classifies its direct files, folds
// the resulting record, and returns the subdirectories to enqueue.
// Hidden-entry policy and the extension allow-filter are applied here,
// keeping the probe a pure filesystem reader.
func (c *Coordinator) processDir(dir string) []string {
	result, accessErr := probe(dir, c.opt.FollowSymlinks)
	if accessErr != nil {
		log.Debugf("cannot access %s: %v", dir, accessErr.Err)
		c.agg.foldError(accessErr)

		if c.opt.ErrorSink != nil {
			c.opt.ErrorSink(accessErr.Path, accessErr)
		}

		return nil
	}

	rec := DirectoryRecord{
		Path:       dir,
		Categories: make(map[classify.Category]int64),
	}
	catFiles := make(map[classify.Category]int64)

	for _, file := range result.files {
		if !c.opt.IncludeHidden && isHidden(file.Path) {
			continue
		}

		if c.extensions != nil {
			if _, ok := c.extensions[file.Ext]; !ok {
				continue
			}
		}

		category := c.classifier.Classify(file.Ext)
		rec.FileCount++
		rec.Bytes += file.Size
		rec.Categories[category] += file.Size
		catFiles[category]++
	}

	c.agg.fold(rec, catFiles)

	subdirs := make([]string, 0, len(result.subdirs))

	for _, sub := range result.subdirs {
		if !c.opt.IncludeHidden && isHidden(sub) {
			continue
		}

		if !c.markVisited(sub) {
			log.Debugf("skipping already-visited directory %s", sub)

			continue
		}

		subdirs = append(subdirs, sub)
	}

	return subdirs
}

// markVisited records the directory's resolved real path and reports
// whether it was new. This breaks symlink cycles and prevents double
// counting through bind mounts.
func (c *Coordinator) markVisited(dir string) bool {
	real, err := filepath.EvalSymlinks(dir)
	if err != nil {
		real = dir
	}

	c.visitedMu.Lock()
	defer c.visitedMu.Unlock()

	if _, ok := c.visited[real]; ok {
		return false
	}

	c.visited[real] = struct{}{}

	return true
}

// isHidden reports whether the path's base name is dot-prefixed.
func isHidden(path string) bool {
	name := filepath.Base(path)

	return strings.HasPrefix(name, ".") && name != "." && name != string(filepath.Separator)
}
