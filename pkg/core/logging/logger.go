// ============================================================================
// mUML - UML class diagram shell
// ============================================================================
//
// Package:     logging
// Description: Builds Foundation loggers from application configuration
// Author:      msto63
// Created:     2025-06-14
// License:     MIT
// ============================================================================

package logging

import (
	"io"

	mumllog "github.com/msto63/mUML/foundation/core/log"
)

// Options describes a logger to build
type Options struct {
	// Name of the root logger
	Name string

	// Level (trace, debug, info, warn, error, fatal)
	Level string

	// Format is "json" or "text"/"console"
	Format string

	// Output defaults to stderr
	Output io.Writer

	// Verbose forces debug level regardless of Level
	Verbose bool
}

// DefaultOptions returns the options used when no configuration applies
func DefaultOptions(name string) Options {
	return Options{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// effectiveLevel resolves the level, with Verbose taking precedence
func (o Options) effectiveLevel() mumllog.Level {
	if o.Verbose {
		return mumllog.LevelDebug
	}
	level, err := mumllog.ParseLevel(o.Level)
	if err != nil {
		return mumllog.LevelWarn
	}
	return level
}
