package config

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type ExecutorConfig struct {
	Name string `mapstructure:"name"`
}

type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

type MetricsConfig struct {
	Namespace string `mapstructure:"namespace"`
	Addr      string `mapstructure:"addr"`
}

type Config struct {
	Executor ExecutorConfig `mapstructure:"executor"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// Loader owns one viper instance so tests and multiple binaries don't share
// the global one.
type Loader struct {
	v *viper.Viper

	mu   sync.RWMutex
	conf Config
}

func NewLoader() *Loader {
	v := viper.New()
	v.SetDefault("executor.name", "executor")
	v.SetDefault("logger.level", "info")
	v.SetDefault("metrics.namespace", "async_executor")
	v.SetDefault("metrics.addr", ":2112")

	return &Loader{v: v}
}

func (l *Loader) Load(confPath string) (Config, error) {
	l.v.SetConfigFile(confPath)
	l.v.SetConfigType("yml")

	if err := l.v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("viper read in config: %w", err)
	}

	return l.reload()
}

// Watch calls onChanged with the re-read config after every write to the file.
// Errors from a broken edit are passed to onError and the previous config is kept.
func (l *Loader) Watch(onChanged func(c Config), onError func(err error)) {
	l.v.OnConfigChange(func(e fsnotify.Event) {
		c, err := l.reload()
		if err != nil {
			if onError != nil {
				onError(err)
			}

			return
		}

		if onChanged != nil {
			onChanged(c)
		}
	})

	l.v.WatchConfig()
}

func (l *Loader) Current() Config {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.conf
}

func (l *Loader) reload() (Config, error) {
	var c Config
	if err := l.v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("viper unmarshal: %w", err)
	}

	l.mu.Lock()
	l.conf = c
	l.mu.Unlock()

	return c, nil
}
