// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type: structured, contextual logging
//              written through a zap core, with integration of the mUML
//              error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-06-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-06-14 v0.2.0: zap backend, shared atomic level

package log

import (
	"errors"
	"io"
	"os"
	"sort"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	mumlerr "github.com/msto63/mUML/foundation/core/error"
)

// Fields holds structured key/value context for a log entry
type Fields map[string]interface{}

// Logger represents a structured logger with contextual information
type Logger struct {
	zl    *zap.Logger
	level *zap.AtomicLevel
	floor *atomic.Int32
	name  string
}

// Config represents logger configuration
type Config struct {
	Level        Level
	Format       Format
	Output       io.Writer
	Name         string
	EnableCaller bool
}

// New creates a logger writing JSON at info level to stderr
func New() *Logger {
	return NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	var encoder zapcore.Encoder
	if config.Format == FormatText {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.TimeKey = "timestamp"
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	atom := zap.NewAtomicLevelAt(config.Level.zapLevel())
	floor := new(atomic.Int32)
	floor.Store(int32(config.Level))
	core := zapcore.NewCore(encoder, zapcore.AddSync(output), atom)

	var opts []zap.Option
	if config.EnableCaller {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(2))
	}

	zl := zap.New(core, opts...)
	if config.Name != "" {
		zl = zl.Named(config.Name)
	}

	return &Logger{zl: zl, level: &atom, floor: floor, name: config.Name}
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	atom := zap.NewAtomicLevelAt(zapcore.FatalLevel)
	floor := new(atomic.Int32)
	floor.Store(int32(LevelFatal))
	return &Logger{zl: zap.NewNop(), level: &atom, floor: floor}
}

// WithName returns a logger with a name segment appended
func (l *Logger) WithName(name string) *Logger {
	clone := *l
	clone.zl = l.zl.Named(name)
	if clone.name != "" {
		clone.name += "." + name
	} else {
		clone.name = name
	}
	return &clone
}

// WithField returns a logger that adds a field to all entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := *l
	clone.zl = l.zl.With(zap.Any(key, value))
	return &clone
}

// WithFields returns a logger that adds fields to all entries
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := *l
	clone.zl = l.zl.With(toZap(fields)...)
	return &clone
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	if l.GetLevel() > LevelTrace {
		return
	}
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// ErrorWithErr logs an error together with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a warning together with an error object
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// LogError logs an error with its code and operation. The log level follows
// the error severity: user mistakes are logged at debug.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var e *mumlerr.Error
	if !errors.As(err, &e) {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     e.Code().String(),
		"error_severity": e.Severity().String(),
	}
	if op := e.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range e.Details() {
		fields["error_"+k] = v
	}

	switch e.Severity() {
	case mumlerr.SeverityLow:
		l.log(LevelDebug, e.Error(), nil, fields)
	case mumlerr.SeverityMedium:
		l.log(LevelWarn, e.Error(), nil, fields)
	default:
		l.log(LevelError, e.Error(), nil, fields)
	}
}

// StartTimer creates and starts a new performance timer
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level >= l.GetLevel()
}

// GetLevel returns the current minimum level
func (l *Logger) GetLevel() Level {
	return Level(l.floor.Load())
}

// SetLevel changes the level of this logger and every logger derived from
// the same configuration.
func (l *Logger) SetLevel(level Level) {
	l.floor.Store(int32(level))
	l.level.SetLevel(level.zapLevel())
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.zl.Sync()
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if level < l.GetLevel() {
		return
	}
	zf := make([]zap.Field, 0, 4)
	for _, set := range fields {
		zf = append(zf, toZap(set)...)
	}
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	if level == LevelTrace {
		zf = append(zf, zap.Bool("trace", true))
	}

	switch level {
	case LevelTrace, LevelDebug:
		l.zl.Debug(message, zf...)
	case LevelInfo:
		l.zl.Info(message, zf...)
	case LevelWarn:
		l.zl.Warn(message, zf...)
	case LevelError:
		l.zl.Error(message, zf...)
	case LevelFatal:
		l.zl.Fatal(message, zf...)
	}
}

// toZap converts fields in key order so output is stable
func toZap(fields Fields) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		out = append(out, zap.Any(k, fields[k]))
	}
	return out
}

var defaultLogger = NewWithConfig(Config{Level: LevelWarn, Format: FormatText})

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}
