// Package yalogger is the structured logging facade used across GoYaTgMock.
//
// Callers depend on the Logger interface only; the concrete backend is chosen by
// Config.BaseLoggerType (logrus is the only one today).
//
// Example usage:
//
//	log := yalogger.NewBaseLogger(&yalogger.Config{Level: yalogger.InfoLevel}).NewLogger()
//	log.WithField(yalogger.KeyMethod, "sendMessage").Debug("recorded call")
package yalogger

import (
	"io"

	"github.com/google/uuid"
)

// Config defines how the base logger is built.
//
// Output defaults to stderr when nil.
type Config struct {
	BaseLoggerType   BaseLoggerType
	Level            Level
	FullTimestamp    bool
	DisableTimestamp bool
	TimestampFormat  string
	Output           io.Writer
}

// BaseLogger produces Logger instances that share one configured backend.
type BaseLogger interface {
	NewLogger() Logger
}

// Logger is a leveled logger with immutable context fields: every With* call
// returns a new Logger and leaves the receiver untouched.
type Logger interface {
	// Info logs a message at the Info level.
	//
	// Example usage:
	//
	//	log.Info("mock bot ready")
	Info(msg string)
	Infof(format string, args ...any)

	// Debug logs a message at the Debug level.
	Debug(msg string)
	Debugf(format string, args ...any)

	Trace(msg string)
	Tracef(format string, args ...any)

	// Warn logs a message at the Warn level.
	//
	// Example usage:
	//
	//	log.Warnf("env %s not set, using %v", key, fallback)
	Warn(msg string)
	Warnf(format string, args ...any)

	Error(msg string)
	Errorf(format string, args ...any)

	// WithField returns a logger with one extra context field.
	//
	// Example usage:
	//
	//	log.WithField(yalogger.KeyChatID, chatID).Info("chat created")
	WithField(key string, value any) Logger

	// WithFields returns a logger with several extra context fields.
	WithFields(fields map[string]any) Logger

	// WithRequestUUID returns a logger tagged with the given request id.
	WithRequestUUID(id uuid.UUID) Logger

	// WithRandomRequestID returns a logger tagged with a fresh random request id.
	WithRandomRequestID() Logger

	// GetField returns a context field value, or nil if it is not set.
	GetField(key string) any

	// GetFields returns a copy of the context fields.
	GetFields() map[string]any
}

// NewDefault returns an Info level logrus-backed logger.
func NewDefault() Logger {
	return NewBaseLogger(&Config{Level: InfoLevel}).NewLogger()
}

// OrDefault returns log, or a default logger when log is nil.
func OrDefault(log Logger) Logger {
	if log == nil {
		return NewDefault()
	}

	return log
}
