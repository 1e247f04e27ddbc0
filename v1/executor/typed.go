package executor

import "github.com/goriiin/async-executor/v1/domain"

// Typed is an executor whose tasks all produce R.
type Typed[R any] struct {
	*Executor
}

func NewTyped[R any](opts ...Option) *Typed[R] {
	return &Typed[R]{Executor: New(opts...)}
}

func (t *Typed[R]) ScheduleTask(task domain.Task[R], callback domain.Callback[R]) {
	t.Executor.ScheduleTask(domain.NewEntry(task, callback))
}

// Simple is an executor for tasks and callbacks that take and return nothing.
type Simple struct {
	*Executor
}

func NewSimple(opts ...Option) *Simple {
	return &Simple{Executor: New(opts...)}
}

func (s *Simple) ScheduleTask(task domain.VoidTask, callback domain.VoidCallback) {
	s.Executor.ScheduleTask(domain.NewVoidEntry(task, callback))
}
