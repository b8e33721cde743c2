// ============================================================================
// mUML - UML class diagram shell
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating and reconfiguring loggers
// Author:      msto63
// Created:     2025-06-14
// License:     MIT
// ============================================================================

package logging

import (
	"github.com/msto63/mUML/pkg/core/config"

	mumllog "github.com/msto63/mUML/foundation/core/log"
)

// NewLogger creates a Foundation logger from options
func NewLogger(opts Options) *mumllog.Logger {
	format, err := mumllog.ParseFormat(opts.Format)
	if err != nil {
		format = mumllog.FormatText
	}

	return mumllog.NewWithConfig(mumllog.Config{
		Level:        opts.effectiveLevel(),
		Format:       format,
		Output:       opts.Output,
		Name:         opts.Name,
		EnableCaller: opts.Verbose,
	})
}

// FromConfig creates the application logger from the [general] section
func FromConfig(cfg *config.Config, verbose bool) *mumllog.Logger {
	return NewLogger(Options{
		Name:    cfg.General.Name,
		Level:   cfg.General.LogLevel,
		Format:  cfg.General.LogFormat,
		Verbose: verbose,
	})
}

// Reconfigure applies the level of a reloaded configuration to logger.
// A verbose logger stays at debug.
func Reconfigure(logger *mumllog.Logger, cfg *config.Config, verbose bool) {
	opts := Options{Level: cfg.General.LogLevel, Verbose: verbose}
	level := opts.effectiveLevel()
	if logger.GetLevel() == level {
		return
	}
	logger.SetLevel(level)
	logger.Debug("Log level changed", mumllog.Fields{"level": level.String()})
}

// Watch registers logger reconfiguration on w
func Watch(w *config.Watcher, logger *mumllog.Logger, verbose bool) {
	w.OnChange(func(cfg *config.Config) {
		Reconfigure(logger, cfg, verbose)
	})
}
