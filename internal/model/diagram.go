package model

import (
	"sort"

	"github.com/msto63/mUML/internal/grammar"
)

// Diagram is the aggregate root: a set of classes and the relationships
// between them. Classes are kept ordered by name and relationships by
// (source, destination). Every relationship endpoint names a class in the
// diagram.
type Diagram struct {
	classes       []Class
	relationships []Relationship
}

// New returns an empty diagram.
func New() *Diagram {
	return &Diagram{}
}

// Clone returns a deep copy sharing no mutable state with d.
func (d *Diagram) Clone() *Diagram {
	out := &Diagram{
		classes:       make([]Class, len(d.classes)),
		relationships: append([]Relationship(nil), d.relationships...),
	}
	for i, c := range d.classes {
		out.classes[i] = c.clone()
	}
	return out
}

// Replace makes d a copy of other.
func (d *Diagram) Replace(other *Diagram) {
	*d = *other.Clone()
}

// Empty reports whether the diagram has no classes.
func (d *Diagram) Empty() bool {
	return len(d.classes) == 0
}

// Classes returns deep copies of all classes in name order.
func (d *Diagram) Classes() []Class {
	out := make([]Class, len(d.classes))
	for i, c := range d.classes {
		out[i] = c.clone()
	}
	return out
}

// ClassNames returns the class names in order.
func (d *Diagram) ClassNames() []string {
	names := make([]string, len(d.classes))
	for i, c := range d.classes {
		names[i] = c.name
	}
	return names
}

// Relationships returns all relationships in (source, destination) order.
func (d *Diagram) Relationships() []Relationship {
	return append([]Relationship(nil), d.relationships...)
}

// Class looks up a class by name and returns a copy.
func (d *Diagram) Class(name string) (Class, error) {
	idx, err := d.classIndex(name)
	if err != nil {
		return Class{}, err
	}
	return d.classes[idx].clone(), nil
}

// WithClass runs fn against the named class in place. A class renamed by fn
// is restored and reported as an error; use RenameClass for that.
func (d *Diagram) WithClass(name string, fn func(*Class) error) error {
	idx, err := d.classIndex(name)
	if err != nil {
		return err
	}
	before := d.classes[idx].clone()
	err = fn(&d.classes[idx])
	if d.classes[idx].name != name {
		d.classes[idx] = before
		return invalid("class '%s' can only be renamed through the diagram", name)
	}
	return err
}

func (d *Diagram) classIndex(name string) (int, error) {
	if err := grammar.CheckIdentifier("class name", name); err != nil {
		return -1, err
	}
	if idx := d.findClass(name); idx >= 0 {
		return idx, nil
	}
	return -1, notFound("class '%s' does not exist", name)
}

func (d *Diagram) findClass(name string) int {
	i := sort.Search(len(d.classes), func(i int) bool { return d.classes[i].name >= name })
	if i < len(d.classes) && d.classes[i].name == name {
		return i
	}
	return -1
}

// AddClass adds an empty class.
func (d *Diagram) AddClass(name string) error {
	c, err := NewClass(name)
	if err != nil {
		return err
	}
	if d.findClass(name) >= 0 {
		return alreadyExists("Class '%s' cannot be added because it already exists", name)
	}
	d.classes = append(d.classes, c)
	d.sortClasses()
	return nil
}

// DeleteClass removes a class and every relationship touching it.
func (d *Diagram) DeleteClass(name string) error {
	idx, err := d.classIndex(name)
	if err != nil {
		return err
	}
	kept := d.relationships[:0:0]
	for _, r := range d.relationships {
		if !r.Touches(name) {
			kept = append(kept, r)
		}
	}
	d.relationships = kept
	d.classes = append(d.classes[:idx:idx], d.classes[idx+1:]...)
	return nil
}

// RenameClass renames a class and rewrites relationship endpoints.
func (d *Diagram) RenameClass(oldName, newName string) error {
	idx, err := d.classIndex(oldName)
	if err != nil {
		return err
	}
	if err := grammar.CheckIdentifier("class name", newName); err != nil {
		return err
	}
	if d.findClass(newName) >= 0 {
		return alreadyExists("the new class already exists")
	}
	if err := d.classes[idx].rename(newName); err != nil {
		return err
	}
	for i := range d.relationships {
		if d.relationships[i].source == oldName {
			d.relationships[i].source = newName
		}
		if d.relationships[i].destination == oldName {
			d.relationships[i].destination = newName
		}
	}
	d.sortClasses()
	d.sortRelationships()
	return nil
}

// MoveClass sets the position of a class.
func (d *Diagram) MoveClass(name string, x, y int) error {
	return d.WithClass(name, func(c *Class) error {
		c.Move(x, y)
		return nil
	})
}

// Relationship looks up the relationship from source to destination.
func (d *Diagram) Relationship(source, destination string) (Relationship, error) {
	idx, err := d.relationshipIndex(source, destination)
	if err != nil {
		return Relationship{}, err
	}
	return d.relationships[idx], nil
}

func (d *Diagram) relationshipIndex(source, destination string) (int, error) {
	if err := grammar.CheckIdentifier("class name", source); err != nil {
		return -1, err
	}
	if err := grammar.CheckIdentifier("class name", destination); err != nil {
		return -1, err
	}
	if idx := d.findRelationship(source, destination); idx >= 0 {
		return idx, nil
	}
	return -1, notFound("relationship between '%s' and '%s' does not exist", source, destination)
}

func (d *Diagram) findRelationship(source, destination string) int {
	for i, r := range d.relationships {
		if r.Connects(source, destination) {
			return i
		}
	}
	return -1
}

// AddRelationship connects two existing classes.
func (d *Diagram) AddRelationship(source, destination string, typ RelationshipType) error {
	if _, err := d.classIndex(source); err != nil {
		return err
	}
	if _, err := d.classIndex(destination); err != nil {
		return err
	}
	if d.findRelationship(source, destination) >= 0 {
		return alreadyExists("Cannot add relationship because it already exists")
	}
	d.relationships = append(d.relationships, Relationship{source: source, destination: destination, typ: typ})
	d.sortRelationships()
	return nil
}

// DeleteRelationship removes the relationship from source to destination.
func (d *Diagram) DeleteRelationship(source, destination string) error {
	idx, err := d.relationshipIndex(source, destination)
	if err != nil {
		return err
	}
	d.relationships = append(d.relationships[:idx:idx], d.relationships[idx+1:]...)
	return nil
}

// ChangeRelationshipSource moves the source endpoint to another class.
func (d *Diagram) ChangeRelationshipSource(source, destination, newSource string) error {
	idx, err := d.relationshipIndex(source, destination)
	if err != nil {
		return err
	}
	if d.findRelationship(newSource, destination) >= 0 {
		return alreadyExists("a relationship between %s and %s already exists", newSource, destination)
	}
	if _, err := d.classIndex(newSource); err != nil {
		return err
	}
	d.relationships[idx].source = newSource
	d.sortRelationships()
	return nil
}

// ChangeRelationshipDestination moves the destination endpoint to another
// class.
func (d *Diagram) ChangeRelationshipDestination(source, destination, newDestination string) error {
	idx, err := d.relationshipIndex(source, destination)
	if err != nil {
		return err
	}
	if d.findRelationship(source, newDestination) >= 0 {
		return alreadyExists("a relationship between %s and %s already exists", source, newDestination)
	}
	if _, err := d.classIndex(newDestination); err != nil {
		return err
	}
	d.relationships[idx].destination = newDestination
	d.sortRelationships()
	return nil
}

// ChangeRelationshipType retypes the relationship from source to destination.
func (d *Diagram) ChangeRelationshipType(source, destination string, typ RelationshipType) error {
	idx, err := d.relationshipIndex(source, destination)
	if err != nil {
		return err
	}
	d.relationships[idx].typ = typ
	return nil
}

func (d *Diagram) sortClasses() {
	sort.SliceStable(d.classes, func(i, j int) bool {
		return d.classes[i].name < d.classes[j].name
	})
}

func (d *Diagram) sortRelationships() {
	sort.SliceStable(d.relationships, func(i, j int) bool {
		return d.relationships[i].Compare(d.relationships[j]) < 0
	})
}
