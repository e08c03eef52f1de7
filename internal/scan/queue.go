package scan

import "sync"

// workQueue is the shared directory queue for the concurrent strategy.
// pending counts directories that are queued or still being probed;
// when it reaches zero the queue drains and all poppers return.
type workQueue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	items   []string
	pending int
	closed  bool
}

func newWorkQueue() *workQueue {
	q := &workQueue{}
	q.cond = sync.NewCond(&q.mu)

	return q
}

// push enqueues directories and accounts for them as pending work.
func (q *workQueue) push(paths ...string) {
	if len(paths) == 0 {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	q.items = append(q.items, paths...)
	q.pending += len(paths)
	q.cond.Broadcast()
}

// pop blocks until a directory is available, all work has drained, or
// the queue is closed. ok is false when no more work will arrive.
func (q *workQueue) pop() (path string, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && q.pending > 0 && !q.closed {
		q.cond.Wait()
	}

	if q.closed || len(q.items) == 0 {
		return "", false
	}

	path = q.items[0]
	q.items = q.items[1:]

	return path, true
}

// done marks one popped directory as fully probed and folded.
func (q *workQueue) done() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pending--
	if q.pending == 0 {
		q.cond.Broadcast()
	}
}

// close wakes all poppers; no new directories are dequeued afterwards.
// In-flight probes are allowed to complete.
func (q *workQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.cond.Broadcast()
}
