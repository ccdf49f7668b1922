// Package logging provides structured logging for the cds-beard system using
// zerolog. It offers human-readable console output during development and
// structured JSON output for batch runs on the server side.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Int("subproblems", 12).Msg("Divided matching problem")
//
//	ctx := logging.WithLogger(context.Background(), log)
//	logging.FromContext(ctx).Debug().Msg("Using logger from context")
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// defaultLogger is the global logger instance.
	defaultLogger zerolog.Logger

	// Nop logger for discarding output.
	Nop = zerolog.Nop()
)

func init() {
	defaultLogger = createDefaultLogger()
}

// createDefaultLogger creates a logger with default settings.
func createDefaultLogger() zerolog.Logger {
	var writer io.Writer = os.Stderr

	// Use console writer for human-readable output in terminals
	if isatty() && os.Getenv("LOG_FORMAT") != "json" {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}

	level := getLogLevel()
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger // Also update zerolog's global logger
}

// New creates a new logger with the given writer.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(zerolog.GlobalLevel()).
		With().
		Timestamp().
		Logger()
}

// NewConsole creates a new console logger for human-readable output.
func NewConsole() zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}

	return New(writer)
}

// NewJSON creates a new JSON logger for structured output.
func NewJSON(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return New(w)
}

// Config holds logger configuration options.
type Config struct {
	// Level is the minimum log level to output
	Level string

	// Format is the output format (json, console, auto)
	Format string

	// NoColor disables color output in console mode
	NoColor bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Level:   "info",
		Format:  "auto",
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

// Configure replaces the default logger according to the configuration.
func Configure(cfg *Config) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level := ParseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	var writer io.Writer = os.Stderr
	format := cfg.Format
	if format == "" || format == "auto" {
		if isatty() {
			format = "console"
		} else {
			format = "json"
		}
	}
	if format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.NoColor,
		}
	}

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	SetDefault(logger)
}

// ParseLevel converts a level string to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Debug starts a new debug level log event.
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info starts a new info level log event.
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn starts a new warning level log event.
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error starts a new error level log event.
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

// Err creates a new error log event with the given error.
func Err(err error) *zerolog.Event {
	return defaultLogger.Err(err)
}

// isatty checks if stderr is a terminal.
func isatty() bool {
	if fileInfo, _ := os.Stderr.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// getLogLevel returns the log level from environment or defaults.
func getLogLevel() zerolog.Level {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		if os.Getenv("DEBUG") != "" {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}
	return ParseLevel(levelStr)
}
