package logger

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// LevelEnv is the environment variable holding the log level.
const LevelEnv = "ALIASPROXY_LOG_LEVEL"

// Logger is a wrapper around charmbracelet/log.Logger
type Logger struct {
	*log.Logger
}

var (
	instance *Logger
	once     sync.Once
)

// GetLogger returns the singleton logger instance
func GetLogger() *Logger {
	once.Do(func() {
		instance = &Logger{
			Logger: log.NewWithOptions(os.Stderr, log.Options{
				Level:           log.InfoLevel,
				ReportTimestamp: true,
				TimeFormat:      "15:04:05",
			}),
		}
	})
	return instance
}

// ParseLevel maps a level name to a log level. Unknown values map to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// SetLogLevel sets the log level from a string
func (l *Logger) SetLogLevel(level string) {
	logLevel := ParseLevel(level)
	l.SetLevel(logLevel)
	log.SetLevel(logLevel) // Set the global logger level too
	l.Debug("Log level set", "level", level)
}

// ConfigureFromEnv configures the logger from environment variables
func (l *Logger) ConfigureFromEnv() {
	if logLevelEnv := os.Getenv(LevelEnv); logLevelEnv != "" {
		l.SetLogLevel(logLevelEnv)
	} else if os.Getenv("ENV") == "dev" {
		// Fall back to ENV=dev behavior if the level is not set
		l.SetLevel(log.DebugLevel)
		log.SetLevel(log.DebugLevel)
		l.Debug("Debug logging enabled from ENV=dev")
	}
}

// WithRun returns ctx carrying a child of the singleton logger tagged with a
// short run identifier, so every line of one invocation can be correlated.
func WithRun(ctx context.Context) context.Context {
	runID := uuid.NewString()[:8]
	return log.WithContext(ctx, GetLogger().With("run", runID))
}
