// FILE: internal/binding/logger.go
package binding

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the binding package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the binding package's logger.
// This must be called before any catalog is installed.
func SetLogger(l *zap.Logger) {
	logger = l
}
