package executor

import "sync/atomic"

func (e *Executor) atomicLoadState() State {
	return State(atomic.LoadInt32((*int32)(&e.state)))
}
