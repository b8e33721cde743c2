// Package filex provides the file helpers shared by the mUML packages.
//
// Package: filex
// Title: File Utilities
// Description: Existence checks, directory creation and atomic file
//              replacement. WriteAtomic is what keeps a saved diagram from
//              being truncated when a write fails half way.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-06-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2025-06-14 v0.2.0: Reduced to the helpers used by the diagram editor
package filex
