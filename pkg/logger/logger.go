package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/killallgit/beekit/pkg/config"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger provides a unified logging interface
type Logger struct {
	level  LogLevel
	logger *log.Logger
	file   *os.File
}

var defaultLogger *Logger

// Init initializes the default logger from the global config
func Init() error {
	if defaultLogger != nil {
		return nil
	}

	settings := config.Get()
	logger, err := New(ParseLevel(settings.Logging.Level), settings.Logging.LogFile, settings.Logging.Persist)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	defaultLogger = logger
	return nil
}

// New creates a Logger writing to logFile. Relative paths resolve against the
// settings directory; persist appends instead of truncating.
func New(level LogLevel, logFile string, persist bool) (*Logger, error) {
	logPath := logFile
	if !filepath.IsAbs(logPath) {
		logPath = config.BuildSettingsPath(filepath.Base(logPath))
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if persist {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}

	file, err := os.OpenFile(logPath, flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &Logger{
		level:  level,
		logger: log.New(file, "", log.LstdFlags),
		file:   file,
	}, nil
}

// NewWithWriter creates a Logger writing to w
func NewWithWriter(level LogLevel, w io.Writer) *Logger {
	return &Logger{
		level:  level,
		logger: log.New(w, "", log.LstdFlags),
	}
}

// Close closes the log file
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// ParseLevel converts a string level to LogLevel, defaulting to info
func ParseLevel(levelStr string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.logger.Printf("[%s] %s", level.String(), fmt.Sprintf(format, args...))
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

// Package-level convenience functions using the default logger

// SetDefault replaces the default logger
func SetDefault(l *Logger) {
	defaultLogger = l
}

// Debug logs a debug message using the default logger
func Debug(format string, args ...interface{}) {
	if defaultLogger == nil {
		return
	}
	defaultLogger.Debug(format, args...)
}

// Info logs an info message using the default logger
func Info(format string, args ...interface{}) {
	if defaultLogger == nil {
		return
	}
	defaultLogger.Info(format, args...)
}

// Warn logs a warning message using the default logger
func Warn(format string, args ...interface{}) {
	if defaultLogger == nil {
		return
	}
	defaultLogger.Warn(format, args...)
}

// Error logs an error message using the default logger
func Error(format string, args ...interface{}) {
	if defaultLogger == nil {
		return
	}
	defaultLogger.Error(format, args...)
}

// SetOutput sets the output writer for the logger (useful for testing)
func SetOutput(w io.Writer) {
	if defaultLogger != nil && defaultLogger.logger != nil {
		defaultLogger.logger.SetOutput(w)
	}
}

// Close closes the default logger
func Close() error {
	if defaultLogger == nil {
		return nil
	}
	err := defaultLogger.Close()
	defaultLogger = nil
	return err
}
