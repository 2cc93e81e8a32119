package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/natefinch/lumberjack"

	"github.com/osse101/InventoryManager_Go/internal/config"
	"github.com/osse101/InventoryManager_Go/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// The file side is a size-rotated lumberjack writer under cfg.LogDir.
// Returns the rotating writer (caller must close) and any error encountered.
func SetupLogger(cfg *config.Config) (io.WriteCloser, error) {
	return setupLogger(cfg, os.Stdout)
}

func setupLogger(cfg *config.Config, stdout io.Writer) (io.WriteCloser, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir, LogFileName),
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     LogMaxAgeDays,
		Compress:   true,
	}

	mw := io.MultiWriter(stdout, rotator)

	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, logger.DefaultServiceName, cfg.Version, cfg.Environment, false)
	logger.InitLoggerWithWriter(logCfg, mw)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel())
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_path", cfg.DBPath,
		"reader_pool_size", cfg.ReaderPoolSize,
		"port", cfg.Port)

	for _, w := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}

	return rotator, nil
}
