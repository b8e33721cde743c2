// Package slicex provides the generic slice helpers shared by the mUML packages.
//
// Package: slicex
// Title: Slice Utilities
// Description: Filter, Map and Unique over generic slices. Results
//              are new slices and inputs are never modified.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-06-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2025-06-14 v0.2.0: Reduced to the helpers used by the completer
package slicex
