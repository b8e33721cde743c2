package model

import (
	"strings"

	"github.com/msto63/mUML/internal/grammar"
)

// RelationshipType is the kind of a directed edge between two classes.
type RelationshipType int

const (
	Aggregation RelationshipType = iota
	Composition
	Inheritance
	Realization
)

var relationshipTypeNames = [...]string{
	Aggregation: "Aggregation",
	Composition: "Composition",
	Inheritance: "Inheritance",
	Realization: "Realization",
}

// RelationshipTypes lists every relationship type in declaration order.
func RelationshipTypes() []RelationshipType {
	return []RelationshipType{Aggregation, Composition, Inheritance, Realization}
}

func (t RelationshipType) String() string {
	if t < 0 || int(t) >= len(relationshipTypeNames) {
		return "Unknown"
	}
	return relationshipTypeNames[t]
}

// ParseRelationshipType maps an exact, case-sensitive name to its type.
func ParseRelationshipType(name string) (RelationshipType, error) {
	for i, n := range relationshipTypeNames {
		if n == name {
			return RelationshipType(i), nil
		}
	}
	return 0, invalid("invalid relationship type: '%s'", name)
}

// MarshalText implements encoding.TextMarshaler.
func (t RelationshipType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(relationshipTypeNames) {
		return nil, invalid("invalid relationship type: '%d'", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *RelationshipType) UnmarshalText(text []byte) error {
	parsed, err := ParseRelationshipType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Relationship is a directed, typed edge between two classes. A diagram holds
// at most one relationship per (source, destination) pair.
type Relationship struct {
	source      string
	destination string
	typ         RelationshipType
}

// NewRelationship validates both class names.
func NewRelationship(source, destination string, typ RelationshipType) (Relationship, error) {
	if err := grammar.CheckIdentifier("class name", source); err != nil {
		return Relationship{}, err
	}
	if err := grammar.CheckIdentifier("class name", destination); err != nil {
		return Relationship{}, err
	}
	return Relationship{source: source, destination: destination, typ: typ}, nil
}

func (r Relationship) Source() string         { return r.source }
func (r Relationship) Destination() string    { return r.destination }
func (r Relationship) Type() RelationshipType { return r.typ }

// Connects reports whether the relationship runs from source to destination.
func (r Relationship) Connects(source, destination string) bool {
	return r.source == source && r.destination == destination
}

// Touches reports whether either endpoint is the named class.
func (r Relationship) Touches(class string) bool {
	return r.source == class || r.destination == class
}

// Compare orders by source, then destination.
func (r Relationship) Compare(other Relationship) int {
	if c := strings.Compare(r.source, other.source); c != 0 {
		return c
	}
	return strings.Compare(r.destination, other.destination)
}

// String formats the relationship as "src -> dst (Type)".
func (r Relationship) String() string {
	return r.source + " -> " + r.destination + " (" + r.typ.String() + ")"
}
