package executor

// Scoped runs fn against a fresh executor and closes it on return, including
// when fn panics. The panic is re-raised once the worker has exited.
func Scoped(fn func(e *Executor), opts ...Option) {
	e := New(opts...)
	defer e.Close()

	fn(e)
}
