// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps them to
//              log levels when an error is reported.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-06-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-06-14 v0.2.0: Code mapping re-targeted to the new codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks user mistakes: bad input, unknown names
	SeverityLow Severity = iota

	// SeverityMedium marks failures with an obvious workaround
	SeverityMedium

	// SeverityHigh marks failures of the environment (files, database)
	SeverityHigh

	// SeverityCritical marks broken internal state
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the severity implied by a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeIO, CodeHistory, CodeConfigError:
		return SeverityHigh
	case CodeGrammar, CodeDispatch, CodeInvalidInput, CodeNotFound,
		CodeAlreadyExists, CodeDanglingReference, CodeNoSnapshot, CodeTimelineBoundary:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
