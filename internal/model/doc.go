// Package model holds the class-diagram domain: fields, parameters, method
// signatures, methods, classes, relationships and the Diagram aggregate that
// owns them.
//
// Values are created only through validating constructors and change only
// through mutators that validate first and leave the value untouched when
// they fail. Every failure carries exactly one reason.
//
// A Diagram owns all of its data. Clone returns a structurally independent
// copy, which is what snapshot-based undo relies on.
package model
