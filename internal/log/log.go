// Package log provides the application-wide zap logger.
package log

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	logger *zap.SugaredLogger
)

// Init replaces the package logger. Debug selects zap's development config.
func Init(debug bool) error {
	var base *zap.Logger
	var err error

	if debug {
		base, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		base, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}

	mu.Lock()
	old := logger
	logger = base.Sugar()
	mu.Unlock()

	if old != nil {
		_ = old.Sync()
	}
	return nil
}

// SetLogger installs an existing logger, mainly for tests
func SetLogger(l *zap.Logger) {
	mu.Lock()
	logger = l.WithOptions(zap.AddCallerSkip(1)).Sugar()
	mu.Unlock()
}

func get() *zap.SugaredLogger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		// Quiet fallback until Init runs
		logger = zap.NewNop().Sugar()
	}
	return logger
}

// Sync flushes any buffered log entries
func Sync() {
	_ = get().Sync()
}

func Debugw(msg string, keysAndValues ...interface{}) {
	get().Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	get().Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	get().Warnw(msg, keysAndValues...)
}
