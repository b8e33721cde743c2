package model

import (
	"github.com/msto63/mUML/internal/grammar"
)

// Field is a named, typed attribute of a Class.
type Field struct {
	name string
	typ  string
}

// NewField validates name as an Identifier and typ as a Type expression.
func NewField(name, typ string) (Field, error) {
	if err := grammar.CheckIdentifier("field name", name); err != nil {
		return Field{}, err
	}
	if err := grammar.CheckType("field type", typ); err != nil {
		return Field{}, err
	}
	return Field{name: name, typ: typ}, nil
}

func (f Field) Name() string { return f.name }
func (f Field) Type() string { return f.typ }

// Rename changes the field name.
func (f *Field) Rename(name string) error {
	if err := grammar.CheckIdentifier("field name", name); err != nil {
		return err
	}
	f.name = name
	return nil
}

// ChangeType changes the field type.
func (f *Field) ChangeType(typ string) error {
	if err := grammar.CheckType("field type", typ); err != nil {
		return err
	}
	f.typ = typ
	return nil
}

// String formats the field as name:type.
func (f Field) String() string {
	return f.name + ":" + f.typ
}

// Extended formats the field as "name: type".
func (f Field) Extended() string {
	return f.name + ": " + f.typ
}
