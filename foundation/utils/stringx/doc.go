// Package stringx provides the string helpers shared by the mUML packages.
//
// Package: stringx
// Title: String Utilities
// Description: Blank checks, whitespace tokenizing and rune-aware padding
//              used by the command tokenizer and the class box renderer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-06-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-06-14 v0.2.0: Reduced to the helpers used by the diagram editor
package stringx
