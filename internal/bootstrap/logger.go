package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/SwapMeet_Go/internal/config"
	"github.com/osse101/SwapMeet_Go/internal/logger"
)

// SetupLogger installs the process logger. Output always goes to stdout; when
// cfg.LogDir is set it also goes to a timestamped session file there, and old
// session files beyond the retention limit are removed.
// The returned file is nil when no LogDir is configured; otherwise the caller closes it.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	loggerConfig := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, addSource)

	var (
		out     io.Writer = os.Stdout
		logFile *os.File
	)
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}
		cleanupLogs(cfg.LogDir, LogFileRetentionLimit)

		name := fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat))
		f, err := os.OpenFile(filepath.Join(cfg.LogDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(os.Stdout, f)
	}

	logger.InitLoggerWithWriter(loggerConfig, out)

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel(), "file", logFile != nil)
	slog.Info(LogMsgStartingSwapMeet,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"storage", cfg.Storage)
	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"cache_size", cfg.CacheSize,
		"cache_ttl", cfg.CacheTTL,
		"seed_file", cfg.SeedFile)

	return logFile, nil
}

// cleanupLogs deletes the oldest session logs so that keep-1 remain, leaving room
// for the file about to be created
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	// Session names embed a sortable timestamp
	sort.Strings(logFiles)

	for len(logFiles) >= keep {
		if err := os.Remove(filepath.Join(logDir, logFiles[0])); err != nil {
			fmt.Fprintf(os.Stderr, LogMsgFailedDeleteOldLog, logFiles[0], err)
		}
		logFiles = logFiles[1:]
	}
}
