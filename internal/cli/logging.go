package cli

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tupyy/scan2pdf/internal/config"
)

// newLogger builds the global logger from the tool settings. --debug
// forces the level to debug regardless of SCAN2PDF_LOG_LEVEL.
func newLogger(settings *config.Settings, debug bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(settings.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", settings.LogLevel, err)
	}
	if debug {
		level = zapcore.DebugLevel
	}

	var cfg zap.Config
	switch settings.LogFormat {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q (console or json)", settings.LogFormat)
	}

	cfg.Level = zap.NewAtomicLevelAt(level)
	// keep stdout free for device lists and configuration dumps
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
