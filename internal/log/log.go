// Package log is a small leveled logger over the standard library logger.
package log

import (
	"io"
	"log"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
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
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel resolves a level name, ignoring case. ok is false for
// unknown names.
func ParseLevel(s string) (level Level, ok bool) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return LevelDebug, true
	case "INFO":
		return LevelInfo, true
	case "WARN", "WARNING":
		return LevelWarn, true
	case "ERROR":
		return LevelError, true
	case "NONE":
		return LevelNone, true
	default:
		return LevelInfo, false
	}
}

type Logger struct {
	logger *log.Logger
	level  Level
	tag    string
}

func New(out io.Writer, level Level) *Logger {
	return &Logger{
		logger: log.New(out, "", log.LstdFlags),
		level:  level,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, LevelNone)
}

// With returns a logger sharing l's output and level whose messages are
// prefixed with [tag].
func (l *Logger) With(tag string) *Logger {
	return &Logger{
		logger: l.logger,
		level:  l.level,
		tag:    "[" + tag + "] ",
	}
}

func (l *Logger) printf(level Level, format string, v ...any) {
	if l == nil || l.level > level {
		return
	}
	l.logger.Printf(level.String()+": "+l.tag+format, v...)
}

func (l *Logger) Debugf(format string, v ...any) { l.printf(LevelDebug, format, v...) }
func (l *Logger) Infof(format string, v ...any)  { l.printf(LevelInfo, format, v...) }
func (l *Logger) Warnf(format string, v ...any)  { l.printf(LevelWarn, format, v...) }
func (l *Logger) Errorf(format string, v ...any) { l.printf(LevelError, format, v...) }

func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) Level() Level {
	return l.level
}
