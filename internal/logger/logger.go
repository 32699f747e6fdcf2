package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

func parseLevel(s string) level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return levelDebug
	case "warn", "warning":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

type implLogger struct {
	logger *log.Logger
	min    level
}

// New creates a Logger writing to stderr at the given minimum level.
// Unknown level strings default to info. Stderr keeps log lines out of
// the rendered results on stdout.
func New(minLevel string) Logger {
	return NewWithWriter(minLevel, os.Stderr)
}

// NewWithWriter creates a Logger writing to w, for tests.
func NewWithWriter(minLevel string, w io.Writer) Logger {
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		min:    parseLevel(minLevel),
	}
}

func (l *implLogger) write(lvl level, tag, msg string, args []interface{}) {
	if lvl < l.min {
		return
	}
	l.logger.Printf(tag+" "+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write(levelDebug, "[DEBUG]", msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write(levelInfo, "[INFO]", msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write(levelWarn, "[WARN]", msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write(levelError, "[ERROR]", msg, args)
}
