package executor

import "github.com/goriiin/async-executor/v1/logger"

func (e *Executor) start() {
	e.wg.Add(1)
	go e.workerLoop()

	e.log.Debug("executor started", logger.F("executor", e.name))
}
