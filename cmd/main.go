package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goriiin/async-executor/v1/config"
	"github.com/goriiin/async-executor/v1/executor"
	"github.com/goriiin/async-executor/v1/logger"
	"github.com/goriiin/async-executor/v1/metrics"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
)

const defaultPath = "./v1/config/config.yml"

func main() {
	app := &cli.App{
		Name:  "async-executor",
		Usage: "run a single-worker executor against a stream of demo tasks",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   defaultPath,
				Usage:   "path to the YAML config",
			},
			&cli.IntFlag{
				Name:  "tasks",
				Value: 1000,
				Usage: "number of demo tasks to schedule",
			},
			&cli.DurationFlag{
				Name:  "interval",
				Value: 500 * time.Millisecond,
				Usage: "delay between scheduled tasks",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("async-executor: %v", err)
	}
}

func run(c *cli.Context) error {
	if err := validateFlags(c.Int("tasks"), c.Duration("interval")); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	path := c.String("config")

	loader := config.NewLoader()
	conf, err := loader.Load(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("config file not found err: %v, path: %s", err, path), 1)
	}

	level, err := logger.ParseLevel(conf.Logger.Level)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	lg := logger.New(log.Default(), level)

	loader.Watch(func(conf config.Config) {
		level, err := logger.ParseLevel(conf.Logger.Level)
		if err != nil {
			lg.Warn("config reload ignored", logger.F("err", err))

			return
		}

		lg.SetLevel(level)
		lg.Info("config reloaded", logger.F("level", level))
	}, func(err error) {
		lg.Warn("config reload failed", logger.F("err", err))
	})

	reg := prom.NewRegistry()
	exporter, err := metrics.NewExporter(conf.Metrics.Namespace, reg, metrics.Options{})
	if err != nil {
		return cli.Exit(fmt.Sprintf("metrics exporter: %v", err), 1)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: conf.Metrics.Addr, Handler: mux}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("metrics server stopped", logger.F("err", err))
		}
	}()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}()

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	executor.Scoped(func(e *executor.Executor) {
		produce(ctx, e, lg, c.Int("tasks"), c.Duration("interval"))

		lg.Info("press ctrl+c for exit")
		<-ctx.Done()
	},
		executor.WithName(conf.Executor.Name),
		executor.WithLogger(lg),
		executor.WithMetrics(exporter),
	)

	lg.Info("shutting down success")

	return nil
}

func validateFlags(tasks int, interval time.Duration) error {
	if interval <= 0 {
		return errors.New("interval must be positive")
	}
	if tasks < 0 {
		return errors.New("tasks must not be negative")
	}

	return nil
}

func produce(ctx context.Context, e *executor.Executor, lg logger.Logger, n int, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		id := i
		if id%2 == 0 {
			executor.Schedule(e, func() string {
				return fmt.Sprintf("test: %d", id*id)
			}, func(res string) {
				lg.Info("task done", logger.F("id", id), logger.F("result", res))
			})

			continue
		}

		executor.ScheduleVoid(e, func() {
			time.Sleep(interval / 4)
		}, func() {
			lg.Info("void task done", logger.F("id", id))
		})
	}
}
