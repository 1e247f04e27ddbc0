package executor

import "sync/atomic"

func (e *Executor) atomicStoreState(state State) {
	atomic.StoreInt32((*int32)(&e.state), int32(state))
}
