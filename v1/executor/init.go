package executor

import (
	"context"
	"errors"
	"sync"

	"github.com/goriiin/async-executor/v1/domain"
	"github.com/goriiin/async-executor/v1/logger"
)

var (
	ErrExecutorClosed = errors.New("executor is closed or closing")
	ErrTaskPanic      = errors.New("executor task panic")
)

type State int32

const (
	Running State = iota
	Stopping
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopping:
		return "stopping"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Executor runs scheduled entries one at a time, in FIFO order, on a single
// goroutine it owns from New until Close.
type Executor struct {
	name    string
	log     logger.Logger
	metrics Metrics

	queue []domain.Entry
	wake  chan struct{}

	wg sync.WaitGroup
	mu sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc
	state  State
}

// New starts the worker right away; it idles until the first entry arrives.
func New(opts ...Option) *Executor {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, cancel := context.WithCancel(context.Background())
	e := &Executor{
		name:    cfg.name,
		log:     cfg.log,
		metrics: cfg.metrics,
		wake:    make(chan struct{}, 1),
		ctx:     ctx,
		cancel:  cancel,
		state:   Running,
	}

	e.start()

	return e
}

func (e *Executor) Name() string {
	return e.name
}

func (e *Executor) State() State {
	return e.atomicLoadState()
}

// Pending reports entries that are queued and not yet picked up by the worker.
func (e *Executor) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.queue)
}
