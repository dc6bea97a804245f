package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const logFilePermission = 0644

var (
	// InfoLogger logs informational messages
	InfoLogger = zerolog.Nop()
	// ErrorLogger logs error messages
	ErrorLogger = zerolog.Nop()
	// DebugLogger logs debug messages
	DebugLogger = zerolog.Nop()
)

// InitLogger opens the day's info, error and debug files under dir and
// points the package loggers at them. Info lines are mirrored to stdout.
func InitLogger(dir, level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02")
	open := func(kind string) (*os.File, error) {
		f, err := os.OpenFile(
			filepath.Join(dir, fmt.Sprintf("%s-%s.log", kind, timestamp)),
			os.O_APPEND|os.O_CREATE|os.O_WRONLY,
			logFilePermission,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s log file: %w", kind, err)
		}
		return f, nil
	}

	infoFile, err := open("info")
	if err != nil {
		return err
	}
	errorFile, err := open("error")
	if err != nil {
		return err
	}
	debugFile, err := open("debug")
	if err != nil {
		return err
	}

	InfoLogger = newLogger(io.MultiWriter(zerolog.SyncWriter(infoFile), os.Stdout), lvl)
	ErrorLogger = newLogger(zerolog.SyncWriter(errorFile), lvl)
	DebugLogger = newLogger(zerolog.SyncWriter(debugFile), lvl)

	return nil
}

// SetLogOutput sends every logger to w; nil silences them again.
func SetLogOutput(w io.Writer) {
	if w == nil {
		InfoLogger, ErrorLogger, DebugLogger = zerolog.Nop(), zerolog.Nop(), zerolog.Nop()
		return
	}
	l := newLogger(w, zerolog.DebugLevel)
	InfoLogger, ErrorLogger, DebugLogger = l, l, l
}

func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("app", AppName).Logger()
}

// LogInfo logs an informational message
func LogInfo(format string, v ...interface{}) {
	InfoLogger.Info().Msgf(format, v...)
}

// LogError logs an error message
func LogError(format string, v ...interface{}) {
	ErrorLogger.Error().Msgf(format, v...)
}

// LogDebug logs a debug message
func LogDebug(format string, v ...interface{}) {
	DebugLogger.Debug().Msgf(format, v...)
}

// LogRequest logs HTTP request details
func LogRequest(requestID, method, path, ip string, status int, duration time.Duration) {
	InfoLogger.Info().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Str("ip", ip).
		Int("status", status).
		Dur("duration", duration).
		Msg("request")
}

// LogFailure records a failed operation along with the error that caused it
func LogFailure(operation, requestID string, err error) {
	ErrorLogger.Error().
		Err(err).
		Str("operation", operation).
		Str("request_id", requestID).
		Bool("data_access", IsDataAccessError(err)).
		Msg("operation failed")
}

// GormLogWriter feeds gorm's logger (slow queries, driver errors) into the error log.
type GormLogWriter struct{}

func (GormLogWriter) Printf(format string, v ...interface{}) {
	ErrorLogger.Warn().Str("source", "gorm").Msgf(format, v...)
}

// LogErrorWithStack logs an error with stack trace
func LogErrorWithStack(err error, stack []byte) {
	ErrorLogger.Error().Err(err).Bytes("stack", stack).Msg("panic recovered")
}
