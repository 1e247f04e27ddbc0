package domain

// Entry is a queued (task, callback) pair. Run executes the task and then
// hands its outcome to the callback.
type Entry interface {
	Run()
}

type Task[R any] func() R

type Callback[R any] func(R)

type VoidTask func()

type VoidCallback func()

type valueEntry[R any] struct {
	task     Task[R]
	callback Callback[R]
}

// NewEntry pairs a result-bearing task with a callback that receives the result.
// A nil callback discards the result.
func NewEntry[R any](task Task[R], callback Callback[R]) Entry {
	if callback == nil {
		callback = Discard[R]()
	}

	return &valueEntry[R]{task: task, callback: callback}
}

func (e *valueEntry[R]) Run() {
	e.callback(e.task())
}

type voidEntry struct {
	task     VoidTask
	callback VoidCallback
}

// NewVoidEntry pairs a task that produces no value with a callback that takes
// no arguments. A nil callback is a no-op.
func NewVoidEntry(task VoidTask, callback VoidCallback) Entry {
	if callback == nil {
		callback = Nop()
	}

	return &voidEntry{task: task, callback: callback}
}

func (e *voidEntry) Run() {
	e.task()
	e.callback()
}

func Discard[R any]() Callback[R] {
	return func(R) {}
}

func Nop() VoidCallback {
	return func() {}
}
