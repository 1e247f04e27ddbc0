package logger

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"
)

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

type Field struct {
	Key   string
	Value any
}

func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int32(l))
	}
}

func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Default writes "[ LEVEL ] msg {k: v}" lines through a *log.Logger,
// skipping anything below the current level.
type Default struct {
	out   *log.Logger
	level atomic.Int32
}

func New(out *log.Logger, level Level) *Default {
	if out == nil {
		out = log.Default()
	}

	l := &Default{out: out}
	l.level.Store(int32(level))

	return l
}

// SetLevel is safe to call while other goroutines are logging.
func (l *Default) SetLevel(level Level) {
	l.level.Store(int32(level))
}

func (l *Default) Level() Level {
	return Level(l.level.Load())
}

func (l *Default) Debug(msg string, fields ...Field) { l.log(LevelDebug, msg, fields) }
func (l *Default) Info(msg string, fields ...Field)  { l.log(LevelInfo, msg, fields) }
func (l *Default) Warn(msg string, fields ...Field)  { l.log(LevelWarn, msg, fields) }
func (l *Default) Error(msg string, fields ...Field) { l.log(LevelError, msg, fields) }

func (l *Default) log(level Level, msg string, fields []Field) {
	if level < l.Level() {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[ %s ] %s", level, msg)

	if len(fields) > 0 {
		b.WriteString(" {")
		for i, f := range fields {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %v", f.Key, f.Value)
		}
		b.WriteString("}")
	}

	l.out.Println(b.String())
}

type Nop struct{}

func (Nop) Debug(string, ...Field) {}
func (Nop) Info(string, ...Field)  {}
func (Nop) Warn(string, ...Field)  {}
func (Nop) Error(string, ...Field) {}
