package executor

import (
	"time"

	"github.com/goriiin/async-executor/v1/domain"
	"github.com/goriiin/async-executor/v1/logger"
)

// execute runs outside the queue lock. A panic in the task or the callback is
// logged and swallowed so the worker keeps serving the queue.
func (e *Executor) execute(entry domain.Entry) {
	started := time.Now()

	defer func() {
		if r := recover(); r != nil {
			e.log.Error("entry panicked",
				logger.F("executor", e.name),
				logger.F("err", ErrTaskPanic),
				logger.F("panic", r))
			e.metrics.RecordTaskPanic(e.name)
		}

		e.metrics.RecordTaskDuration(e.name, time.Since(started))
	}()

	entry.Run()
}
