package executor

import (
	"github.com/goriiin/async-executor/v1/domain"
	"github.com/goriiin/async-executor/v1/logger"
)

// ScheduleTask appends entry to the queue and returns without waiting for it
// to run. Entries scheduled once Close has begun are dropped.
func (e *Executor) ScheduleTask(entry domain.Entry) {
	if entry == nil {
		return
	}

	e.mu.Lock()

	if e.atomicLoadState() != Running {
		e.mu.Unlock()

		e.log.Warn("schedule rejected",
			logger.F("executor", e.name),
			logger.F("err", ErrExecutorClosed))
		e.metrics.RecordTaskDropped(e.name, DropReasonClosed, 1)

		return
	}

	e.queue = append(e.queue, entry)
	e.metrics.RecordQueueDepth(e.name, len(e.queue))

	e.mu.Unlock()

	// one pending wake-up is enough: the worker rechecks the queue before it waits again
	select {
	case e.wake <- struct{}{}:
	default:
	}
}

// Schedule queues a result-bearing task on e; callback receives the result.
func Schedule[R any](e *Executor, task domain.Task[R], callback domain.Callback[R]) {
	e.ScheduleTask(domain.NewEntry(task, callback))
}

// ScheduleVoid queues a task that produces no value; callback runs after it.
func ScheduleVoid(e *Executor, task domain.VoidTask, callback domain.VoidCallback) {
	e.ScheduleTask(domain.NewVoidEntry(task, callback))
}
