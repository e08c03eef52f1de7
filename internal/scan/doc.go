// Package scan implements the scan-classify-aggregate engine.
//
// A Coordinator drives traversal of a directory tree over an explicit
// work queue, probing one directory at a time, classifying its direct
// files by extension, and folding per-directory records into a single
// synchronized aggregator. Finalization produces an immutable Report
// with sorted, percentage-annotated records.
//
// Individual probes carry no deadline: a hung filesystem call is
// surfaced only through caller-level cancellation.
package scan
