package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/goriiin/async-executor/v1/executor"
	prom "github.com/prometheus/client_golang/prometheus"
)

const (
	defaultNamespace = "async_executor"
	unnamedLabel     = "unnamed"
)

type Options struct {
	// DurationBuckets defaults to prometheus.DefBuckets.
	DurationBuckets []float64
}

// Exporter turns executor events into Prometheus series labelled by executor name.
type Exporter struct {
	duration *prom.HistogramVec
	panics   *prom.CounterVec
	dropped  *prom.CounterVec
	depth    *prom.GaugeVec
}

var _ executor.Metrics = (*Exporter)(nil)

// NewExporter registers its series on reg, or on the default registerer when
// reg is nil. A second exporter with the same namespace shares the series of
// the first instead of failing.
func NewExporter(namespace string, reg prom.Registerer, opts Options) (*Exporter, error) {
	if namespace == "" {
		namespace = defaultNamespace
	}
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	if len(opts.DurationBuckets) == 0 {
		opts.DurationBuckets = prom.DefBuckets
	}

	byExecutor := []string{"executor"}

	x := &Exporter{
		duration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "task_duration_seconds",
			Help:      "Wall time of one queue entry on the worker, callback included.",
			Buckets:   opts.DurationBuckets,
		}, byExecutor),
		panics: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "task_panic_total",
			Help:      "Entries whose task or callback panicked and was recovered by the worker.",
		}, byExecutor),
		dropped: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "task_dropped_total",
			Help:      "Entries discarded without running, by reason (shutdown or closed).",
		}, []string{"executor", "reason"}),
		depth: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_depth",
			Help:      "Entries waiting for the worker.",
		}, byExecutor),
	}

	var err error
	if x.duration, err = share(reg, x.duration); err != nil {
		return nil, err
	}
	if x.panics, err = share(reg, x.panics); err != nil {
		return nil, err
	}
	if x.dropped, err = share(reg, x.dropped); err != nil {
		return nil, err
	}
	if x.depth, err = share(reg, x.depth); err != nil {
		return nil, err
	}

	return x, nil
}

func (x *Exporter) RecordTaskDuration(name string, d time.Duration) {
	if x != nil {
		x.duration.WithLabelValues(executorLabel(name)).Observe(d.Seconds())
	}
}

func (x *Exporter) RecordTaskPanic(name string) {
	if x != nil {
		x.panics.WithLabelValues(executorLabel(name)).Inc()
	}
}

func (x *Exporter) RecordQueueDepth(name string, depth int) {
	if x != nil {
		x.depth.WithLabelValues(executorLabel(name)).Set(float64(depth))
	}
}

// RecordTaskDropped ignores non-positive counts; counters only go up.
func (x *Exporter) RecordTaskDropped(name string, reason string, count int) {
	if x == nil || count <= 0 {
		return
	}
	if reason == "" {
		reason = "unspecified"
	}
	x.dropped.WithLabelValues(executorLabel(name), reason).Add(float64(count))
}

func executorLabel(name string) string {
	if name == "" {
		return unnamedLabel
	}
	return name
}

// share registers c, or hands back the collector already registered under
// the same descriptor.
func share[C prom.Collector](reg prom.Registerer, c C) (C, error) {
	err := reg.Register(c)

	var dup prom.AlreadyRegisteredError
	if err == nil || !errors.As(err, &dup) {
		return c, err
	}

	existing, ok := dup.ExistingCollector.(C)
	if !ok {
		return c, fmt.Errorf("metrics: %T already registered as %T", c, dup.ExistingCollector)
	}

	return existing, nil
}
