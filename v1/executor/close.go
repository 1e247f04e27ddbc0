package executor

import "github.com/goriiin/async-executor/v1/logger"

// Close stops the worker and waits for it to exit. An entry that is already
// running finishes, callback included; entries still queued are dropped.
// Close is idempotent and every caller returns only after the worker is gone.
// It must not be called from inside a task or callback of the same executor.
func (e *Executor) Close() {
	e.mu.Lock()

	if e.atomicLoadState() != Running {
		e.mu.Unlock()
		e.wg.Wait()

		return
	}

	e.atomicStoreState(Stopping)
	e.cancel()

	e.mu.Unlock()

	e.log.Debug("executor closing", logger.F("executor", e.name))

	e.wg.Wait()

	e.atomicStoreState(Stopped)

	e.log.Debug("executor closed", logger.F("executor", e.name))
}
