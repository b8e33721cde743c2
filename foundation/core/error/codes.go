// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to categorize failures of the
//              diagram engine: grammar, dispatch, model invariants, I/O and
//              configuration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-06-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard error codes
// - 2025-06-14 v0.2.0: Codes re-targeted to the command language and model

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Command language codes
	CodeGrammar  Code = "GRAMMAR"
	CodeDispatch Code = "DISPATCH"

	// Model invariant codes
	CodeNotFound          Code = "NOT_FOUND"
	CodeAlreadyExists     Code = "ALREADY_EXISTS"
	CodeDanglingReference Code = "DANGLING_REFERENCE"
	CodeNoSnapshot        Code = "NO_SNAPSHOT"
	CodeTimelineBoundary  Code = "TIMELINE_BOUNDARY"

	// I/O and environment codes
	CodeIO          Code = "IO"
	CodeHistory     Code = "HISTORY"
	CodeConfigError Code = "CONFIG_ERROR"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsValid returns true if the code is one of the defined codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeGrammar, CodeDispatch,
		CodeNotFound, CodeAlreadyExists, CodeDanglingReference, CodeNoSnapshot, CodeTimelineBoundary,
		CodeIO, CodeHistory, CodeConfigError:
		return true
	default:
		return false
	}
}

// Category returns the category of the error code
func (c Code) Category() string {
	switch c {
	case CodeGrammar:
		return "grammar"
	case CodeDispatch:
		return "dispatch"
	case CodeNotFound, CodeAlreadyExists, CodeDanglingReference, CodeInvalidInput:
		return "model"
	case CodeNoSnapshot, CodeTimelineBoundary:
		return "timeline"
	case CodeIO, CodeHistory:
		return "io"
	case CodeConfigError:
		return "configuration"
	default:
		return "generic"
	}
}
