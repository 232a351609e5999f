// Package logging provides config-driven categorized logging for the wish
// gallery on top of zap. Each category is a named child of one root logger;
// disabled categories get a no-op logger.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wishgallery/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup, configuration
	CategoryGift    Category = "gift"    // Gift generation calls and fallbacks
	CategorySession Category = "session" // Lifecycle transitions
	CategoryAudio   Category = "audio"   // Ambient track playback
	CategoryUI      Category = "ui"      // Interactive gallery
)

var (
	mu      sync.RWMutex
	root    = zap.NewNop()
	cfg     config.LoggingConfig
	loggers = make(map[Category]*zap.SugaredLogger)
)

// Initialize builds the root logger from cfg. When cfg.File is set, output
// goes to that file (created with its directory); otherwise to stderr.
func Initialize(c config.LoggingConfig) error {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(c.ZapLevel())
	zc.Sampling = nil
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if c.Format == "" || c.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	out := "stderr"
	if c.File != "" {
		if err := os.MkdirAll(filepath.Dir(c.File), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		out = c.File
	}
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{out}

	l, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	Replace(l, c)
	return nil
}

// Replace swaps the root logger and category settings. Tests use it with
// zaptest/observer cores.
func Replace(l *zap.Logger, c config.LoggingConfig) {
	mu.Lock()
	defer mu.Unlock()
	root = l
	cfg = c
	loggers = make(map[Category]*zap.SugaredLogger)
}

// Disable routes every category to a no-op logger.
func Disable() {
	Replace(zap.NewNop(), config.LoggingConfig{})
}

// Root returns the root zap logger.
func Root() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return cfg.IsCategoryEnabled(string(category))
}

// Get returns (or creates) the logger for the given category.
func Get(category Category) *zap.SugaredLogger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[category]; ok {
		return l
	}

	var l *zap.SugaredLogger
	if cfg.IsCategoryEnabled(string(category)) {
		l = root.Named(string(category)).Sugar()
	} else {
		l = zap.NewNop().Sugar()
	}
	loggers[category] = l
	return l
}

// Sync flushes buffered entries. Errors from syncing stderr are expected on
// some platforms and ignored.
func Sync() {
	_ = Root().Sync()
}

// Boot logs to the boot category
func Boot(msg string, keysAndValues ...interface{}) {
	Get(CategoryBoot).Infow(msg, keysAndValues...)
}
