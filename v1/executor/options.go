package executor

import "github.com/goriiin/async-executor/v1/logger"

type config struct {
	name    string
	log     logger.Logger
	metrics Metrics
}

type Option func(*config)

// WithName sets the executor name used in log fields and metric labels.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

func WithLogger(l logger.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

func WithMetrics(m Metrics) Option {
	return func(c *config) {
		if m != nil {
			c.metrics = m
		}
	}
}

func defaultConfig() config {
	return config{
		name:    "executor",
		log:     logger.Nop{},
		metrics: nopMetrics{},
	}
}
