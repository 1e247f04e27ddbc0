package executor

import "time"

const (
	// DropReasonShutdown marks entries still queued when the worker exited.
	DropReasonShutdown = "shutdown"
	// DropReasonClosed marks entries scheduled after Close began.
	DropReasonClosed = "closed"
)

// Metrics receives executor events. Implementations must be safe for
// concurrent use: producers and the worker call it from different goroutines.
// RecordQueueDepth is called with the queue lock held so depth updates land in
// queue order; it must not block or call back into the executor.
type Metrics interface {
	RecordTaskDuration(executor string, duration time.Duration)
	RecordTaskPanic(executor string)
	RecordQueueDepth(executor string, depth int)
	RecordTaskDropped(executor string, reason string, count int)
}

type nopMetrics struct{}

func (nopMetrics) RecordTaskDuration(string, time.Duration) {}
func (nopMetrics) RecordTaskPanic(string)                   {}
func (nopMetrics) RecordQueueDepth(string, int)             {}
func (nopMetrics) RecordTaskDropped(string, string, int)    {}
