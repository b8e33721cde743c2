// Package log provides structured logging for mUML.
//
// Package: log
// Title: mUML Structured Logging
// Description: A small structured logging API (Logger, Fields, Level, Timer)
//              backed by zap. Loggers are immutable: With* methods return a
//              derived logger that shares the output and the level.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-06-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-06-14 v0.2.0: Formatting and output delegated to zap encoders
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText})
//	logger = logger.WithField("session", id)
//	logger.Debug("command committed", log.Fields{"command": "class add a"})
package log
