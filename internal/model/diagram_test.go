package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mumlerr "github.com/msto63/mUML/foundation/core/error"
)

func relationshipStrings(d *Diagram) []string {
	var out []string
	for _, r := range d.Relationships() {
		out = append(out, r.String())
	}
	return out
}

func sampleDiagram(t *testing.T) *Diagram {
	t.Helper()
	d := New()
	for _, name := range []string{"Car", "Engine", "Wheel", "Vehicle"} {
		require.NoError(t, d.AddClass(name))
	}
	require.NoError(t, d.AddRelationship("Car", "Engine", Composition))
	require.NoError(t, d.AddRelationship("Car", "Wheel", Aggregation))
	require.NoError(t, d.AddRelationship("Car", "Vehicle", Inheritance))
	return d
}

func TestDiagramAddClass(t *testing.T) {
	d := New()
	assert.True(t, d.Empty())
	require.NoError(t, d.AddClass("B"))
	require.NoError(t, d.AddClass("A"))
	assert.Equal(t, []string{"A", "B"}, d.ClassNames())

	err := d.AddClass("A")
	assert.EqualError(t, err, "Class 'A' cannot be added because it already exists")
	assert.True(t, mumlerr.HasCode(err, mumlerr.CodeAlreadyExists))

	assert.EqualError(t, d.AddClass("A<int>"), "Invalid class name: 'A<int>'. Reason: extra characters encountered: <int>")
	assert.Len(t, d.ClassNames(), 2)
}

func TestDiagramClassLookup(t *testing.T) {
	d := sampleDiagram(t)
	_, err := d.Class("Boat")
	assert.EqualError(t, err, "class 'Boat' does not exist")
	assert.True(t, mumlerr.HasCode(err, mumlerr.CodeNotFound))

	c, err := d.Class("Car")
	require.NoError(t, err)
	require.NoError(t, c.AddField("x", "int"))

	again, _ := d.Class("Car")
	assert.Empty(t, again.Fields(), "Class returns a copy")
}

func TestDiagramWithClass(t *testing.T) {
	d := sampleDiagram(t)
	require.NoError(t, d.WithClass("Car", func(c *Class) error {
		return c.AddField("speed", "int")
	}))
	c, _ := d.Class("Car")
	assert.Len(t, c.Fields(), 1)

	assert.EqualError(t, d.WithClass("Boat", func(*Class) error { return nil }), "class 'Boat' does not exist")
}

func TestDiagramWithClassRejectsRename(t *testing.T) {
	d := sampleDiagram(t)
	err := d.WithClass("Car", func(c *Class) error {
		if err := c.AddField("speed", "int"); err != nil {
			return err
		}
		return c.rename("Aardvark")
	})
	require.Error(t, err)
	assert.Equal(t, "class 'Car' can only be renamed through the diagram", err.Error())
	assert.True(t, mumlerr.HasCode(err, mumlerr.CodeInvalidInput))

	assert.Equal(t, []string{"Car", "Engine", "Vehicle", "Wheel"}, d.ClassNames())
	c, err := d.Class("Car")
	require.NoError(t, err)
	assert.Empty(t, c.Fields())
	assert.Len(t, relationshipStrings(d), 3)
}

func TestDiagramDeleteClassCascades(t *testing.T) {
	d := sampleDiagram(t)
	require.NoError(t, d.AddRelationship("Wheel", "Vehicle", Realization))

	require.NoError(t, d.DeleteClass("Car"))
	assert.Equal(t, []string{"Engine", "Vehicle", "Wheel"}, d.ClassNames())
	assert.Equal(t, []string{"Wheel -> Vehicle (Realization)"}, relationshipStrings(d))

	assert.EqualError(t, d.DeleteClass("Car"), "class 'Car' does not exist")
}

func TestDiagramRenameClass(t *testing.T) {
	d := sampleDiagram(t)

	assert.EqualError(t, d.RenameClass("Car", "Wheel"), "the new class already exists")
	assert.EqualError(t, d.RenameClass("Boat", "Ship"), "class 'Boat' does not exist")
	assert.Error(t, d.RenameClass("Car", "Car*"))

	require.NoError(t, d.RenameClass("Car", "Zeppelin"))
	assert.Equal(t, []string{"Engine", "Vehicle", "Wheel", "Zeppelin"}, d.ClassNames())
	assert.Equal(t, []string{
		"Zeppelin -> Engine (Composition)",
		"Zeppelin -> Vehicle (Inheritance)",
		"Zeppelin -> Wheel (Aggregation)",
	}, relationshipStrings(d))
}

func TestDiagramMoveClass(t *testing.T) {
	d := sampleDiagram(t)
	require.NoError(t, d.MoveClass("Car", 10, -4))
	c, _ := d.Class("Car")
	assert.Equal(t, Point{X: 10, Y: -4}, c.Position())
	assert.Error(t, d.MoveClass("Boat", 1, 1))
}

func TestDiagramRelationships(t *testing.T) {
	d := sampleDiagram(t)
	assert.Equal(t, []string{
		"Car -> Engine (Composition)",
		"Car -> Vehicle (Inheritance)",
		"Car -> Wheel (Aggregation)",
	}, relationshipStrings(d))

	assert.EqualError(t, d.AddRelationship("Car", "Engine", Aggregation), "Cannot add relationship because it already exists")
	assert.EqualError(t, d.AddRelationship("Car", "Boat", Aggregation), "class 'Boat' does not exist")
	require.NoError(t, d.AddRelationship("Engine", "Car", Aggregation), "reverse direction is a distinct pair")

	_, err := d.Relationship("Wheel", "Car")
	assert.EqualError(t, err, "relationship between 'Wheel' and 'Car' does not exist")

	require.NoError(t, d.ChangeRelationshipType("Car", "Wheel", Composition))
	r, err := d.Relationship("Car", "Wheel")
	require.NoError(t, err)
	assert.Equal(t, Composition, r.Type())

	require.NoError(t, d.DeleteRelationship("Engine", "Car"))
	assert.EqualError(t, d.DeleteRelationship("Engine", "Car"), "relationship between 'Engine' and 'Car' does not exist")
}

func TestDiagramChangeRelationshipEndpoints(t *testing.T) {
	d := sampleDiagram(t)

	assert.EqualError(t, d.ChangeRelationshipSource("Car", "Engine", "Car"), "a relationship between Car and Engine already exists")
	assert.EqualError(t, d.ChangeRelationshipSource("Car", "Engine", "Boat"), "class 'Boat' does not exist")
	require.NoError(t, d.ChangeRelationshipSource("Car", "Engine", "Wheel"))

	assert.EqualError(t, d.ChangeRelationshipDestination("Car", "Wheel", "Vehicle"), "a relationship between Car and Vehicle already exists")
	require.NoError(t, d.ChangeRelationshipDestination("Car", "Wheel", "Car"))

	assert.Equal(t, []string{
		"Car -> Car (Aggregation)",
		"Car -> Vehicle (Inheritance)",
		"Wheel -> Engine (Composition)",
	}, relationshipStrings(d))
}

func TestDiagramClone(t *testing.T) {
	d := sampleDiagram(t)
	require.NoError(t, d.WithClass("Car", func(c *Class) error {
		return c.AddMethod(method(t, "drive(speed:int)->void"))
	}))

	snapshot := d.Clone()
	require.NoError(t, d.WithClass("Car", func(c *Class) error {
		return c.RenameParameter(sig(t, "drive(int)"), "speed", "kmh")
	}))
	require.NoError(t, d.DeleteRelationship("Car", "Engine"))

	assert.NotEqual(t, d, snapshot)
	c, _ := snapshot.Class("Car")
	assert.Equal(t, "drive(speed:int)->void", c.Methods()[0].String())
	assert.Len(t, snapshot.Relationships(), 3)

	d.Replace(snapshot)
	assert.Equal(t, snapshot, d)
}
