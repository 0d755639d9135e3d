package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger configures the global logger based on verbosity level
// It sets up dual output to both console and a log file
func SetupLogger(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    false,
	}

	var writers []io.Writer
	writers = append(writers, consoleWriter)

	logFile := getLogFilePath()
	logFileHandle, err := setupLogFile(logFile)
	if err == nil {
		writers = append(writers, logFileHandle)
	}

	multi := io.MultiWriter(writers...)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()

	// If we couldn't create the log file, log the error now with the new logger
	if err != nil {
		log.Warn().Err(err).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}

	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// getLogFilePath returns the path to the log file under the XDG state dir
func getLogFilePath() string {
	return filepath.Join(xdg.StateHome, "fdl", "fdl.log")
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}
