package executor

import "github.com/goriiin/async-executor/v1/logger"

func (e *Executor) workerLoop() {
	defer e.wg.Done()

	for {
		e.mu.Lock()

		for len(e.queue) == 0 && e.atomicLoadState() == Running {
			e.mu.Unlock()

			select {
			case <-e.wake:
			case <-e.ctx.Done():
			}

			e.mu.Lock()
		}

		// ending wins over a non-empty queue
		if e.atomicLoadState() != Running {
			dropped := len(e.queue)
			e.queue = nil
			if dropped > 0 {
				e.metrics.RecordQueueDepth(e.name, 0)
			}
			e.mu.Unlock()

			if dropped > 0 {
				e.log.Warn("pending entries dropped on close",
					logger.F("executor", e.name),
					logger.F("dropped", dropped))
				e.metrics.RecordTaskDropped(e.name, DropReasonShutdown, dropped)
			}

			return
		}

		entry := e.queue[0]
		e.queue[0] = nil
		e.queue = e.queue[1:]
		e.metrics.RecordQueueDepth(e.name, len(e.queue))

		e.mu.Unlock()

		e.execute(entry)
	}
}
