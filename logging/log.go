// Package logging wraps a process-wide zap logger.
package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	mu    sync.RWMutex
	sugar *zap.SugaredLogger
)

// Init builds the package logger. Debug mode uses zap's development config.
func Init(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}

	SetLogger(zapLogger)
	return nil
}

// SetLogger replaces the package logger, e.g. with zap.NewNop() in tests.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	sugar = l.Sugar()
}

func get() *zap.SugaredLogger {
	mu.RLock()
	s := sugar
	mu.RUnlock()
	if s != nil {
		return s
	}

	l, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}
	mu.Lock()
	defer mu.Unlock()
	if sugar == nil {
		sugar = l.Sugar()
	}
	return sugar
}

// Sync flushes any buffered log entries.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	if sugar != nil {
		_ = sugar.Sync()
	}
}

func Debugf(template string, args ...interface{}) {
	get().Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	get().Infof(template, args...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	get().Infow(msg, keysAndValues...)
}

func Warnf(template string, args ...interface{}) {
	get().Warnf(template, args...)
}

func Errorf(template string, args ...interface{}) {
	get().Errorf(template, args...)
}

// Fatalf logs and exits the process.
func Fatalf(template string, args ...interface{}) {
	get().Fatalf(template, args...)
}
