// Package command implements the mUML command language: a static catalog of
// templates, the prefix tree compiled from it, the dispatcher that turns a
// token sequence into a typed Command, and snapshot-based Commit/Undo.
//
// A template is a space-separated list of literal words and bracketed
// placeholders, for example
//
//	field rename [class_name] [field_name] [name]
//
// Dispatch narrows the catalog left to right: a template stays a candidate
// while its word at the current position equals the token or is a
// placeholder. As soon as one candidate remains, the whole token list is
// bound against that template and each placeholder is parsed into its typed
// value.
package command
