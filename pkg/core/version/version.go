// ============================================================================
// mUML - UML class diagram shell
// ============================================================================
//
// Package:     version
// Description: Central version information for the muml binary
// Author:      msto63
// Created:     2025-06-14
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Application version
	App = "1.0.0"

	// DiagramFormat is the version of the saved JSON/YAML document layout
	DiagramFormat = "1"

	// HistorySchema is the version of the command history database schema
	HistorySchema = "1"
)

// Build metadata, set with -ldflags "-X ...".
var (
	Commit = "unknown"
	Date   = "unknown"
)

// Component returns the version for a component name
func Component(name string) string {
	switch name {
	case "diagram", "format":
		return DiagramFormat
	case "history":
		return HistorySchema
	default:
		return App
	}
}

// String returns the full version line printed by "muml version"
func String() string {
	return fmt.Sprintf("muml %s (commit %s, built %s, diagram format v%s)", App, Commit, Date, DiagramFormat)
}
