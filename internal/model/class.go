package model

import (
	"sort"

	"github.com/msto63/mUML/internal/grammar"
)

// Point is a class position on the canvas.
type Point struct {
	X int
	Y int
}

// Class is a named box holding fields and methods. Fields are kept ordered
// by name and methods by signature. No two fields share a name and no two
// methods share a signature.
type Class struct {
	name     string
	fields   []Field
	methods  []Method
	position Point
}

// NewClass creates an empty class at the origin.
func NewClass(name string) (Class, error) {
	if err := grammar.CheckIdentifier("class name", name); err != nil {
		return Class{}, err
	}
	return Class{name: name}, nil
}

func (c Class) Name() string    { return c.name }
func (c Class) Position() Point { return c.position }
func (c Class) Fields() []Field { return append([]Field(nil), c.fields...) }

// Methods returns deep copies of the methods.
func (c Class) Methods() []Method {
	out := make([]Method, len(c.methods))
	for i, m := range c.methods {
		out[i] = m.clone()
	}
	return out
}

// Field looks up a field by name.
func (c Class) Field(name string) (Field, error) {
	idx, err := c.fieldIndex(name)
	if err != nil {
		return Field{}, err
	}
	return c.fields[idx], nil
}

// Method looks up a method by signature.
func (c Class) Method(sig MethodSignature) (Method, error) {
	idx, err := c.methodIndex(sig)
	if err != nil {
		return Method{}, err
	}
	return c.methods[idx].clone(), nil
}

func (c Class) fieldIndex(name string) (int, error) {
	if err := grammar.CheckIdentifier("field name", name); err != nil {
		return -1, err
	}
	for i, f := range c.fields {
		if f.name == name {
			return i, nil
		}
	}
	return -1, notFound("field '%s' does not exist", name)
}

func (c Class) hasField(name string) bool {
	for _, f := range c.fields {
		if f.name == name {
			return true
		}
	}
	return false
}

func (c Class) methodIndex(sig MethodSignature) (int, error) {
	for i, m := range c.methods {
		if m.Matches(sig) {
			return i, nil
		}
	}
	return -1, notFound("method does not exist")
}

// signatureTaken reports whether a method other than skip has sig.
func (c Class) signatureTaken(sig MethodSignature, skip int) bool {
	for i, m := range c.methods {
		if i != skip && m.Matches(sig) {
			return true
		}
	}
	return false
}

// rename changes the class name. Only Diagram.RenameClass calls it, so
// relationships and class order stay in step.
func (c *Class) rename(name string) error {
	if err := grammar.CheckIdentifier("class name", name); err != nil {
		return err
	}
	c.name = name
	return nil
}

// Move sets the class position.
func (c *Class) Move(x, y int) {
	c.position = Point{X: x, Y: y}
}

// AddField adds a new field.
func (c *Class) AddField(name, typ string) error {
	f, err := NewField(name, typ)
	if err != nil {
		return err
	}
	if c.hasField(name) {
		return alreadyExists("the new field already exists")
	}
	c.fields = append(c.fields, f)
	c.sortFields()
	return nil
}

// DeleteField removes a field.
func (c *Class) DeleteField(name string) error {
	idx, err := c.fieldIndex(name)
	if err != nil {
		return err
	}
	c.fields = append(c.fields[:idx:idx], c.fields[idx+1:]...)
	return nil
}

// RenameField renames a field. The new name must not be in use.
func (c *Class) RenameField(oldName, newName string) error {
	idx, err := c.fieldIndex(oldName)
	if err != nil {
		return err
	}
	if c.hasField(newName) {
		return alreadyExists("the new field name is already in use")
	}
	if err := c.fields[idx].Rename(newName); err != nil {
		return err
	}
	c.sortFields()
	return nil
}

// RetypeField changes the type of a field.
func (c *Class) RetypeField(name, typ string) error {
	idx, err := c.fieldIndex(name)
	if err != nil {
		return err
	}
	return c.fields[idx].ChangeType(typ)
}

// AddMethod adds a method whose signature is not yet present.
func (c *Class) AddMethod(m Method) error {
	if c.signatureTaken(m.Signature(), -1) {
		return alreadyExists("a method with the signature already exists")
	}
	c.methods = append(c.methods, m.clone())
	c.sortMethods()
	return nil
}

// DeleteMethod removes the method with the given signature.
func (c *Class) DeleteMethod(sig MethodSignature) error {
	idx, err := c.methodIndex(sig)
	if err != nil {
		return err
	}
	c.methods = append(c.methods[:idx:idx], c.methods[idx+1:]...)
	return nil
}

// RenameMethod renames a method unless the renamed signature collides with
// another method.
func (c *Class) RenameMethod(sig MethodSignature, newName string) error {
	idx, err := c.methodIndex(sig)
	if err != nil {
		return err
	}
	if err := grammar.CheckIdentifier("method name", newName); err != nil {
		return err
	}
	if c.signatureTaken(sig.WithName(newName), idx) {
		return alreadyExists("a method with the new signature already exists")
	}
	if err := c.methods[idx].rename(newName); err != nil {
		return err
	}
	c.sortMethods()
	return nil
}

// ChangeReturnType changes a method's return type.
func (c *Class) ChangeReturnType(sig MethodSignature, typ string) error {
	idx, err := c.methodIndex(sig)
	if err != nil {
		return err
	}
	return c.methods[idx].changeReturnType(typ)
}

// AddParameter appends a parameter to a method.
func (c *Class) AddParameter(sig MethodSignature, name, typ string) error {
	idx, err := c.methodIndex(sig)
	if err != nil {
		return err
	}
	p, err := NewParameter(name, typ)
	if err != nil {
		return err
	}
	if c.signatureTaken(sig.WithAddedParameter(typ), idx) {
		return alreadyExists("a method with the new signature already exists")
	}
	if err := c.methods[idx].addParameter(p); err != nil {
		return err
	}
	c.sortMethods()
	return nil
}

// DeleteParameter removes one parameter from a method.
func (c *Class) DeleteParameter(sig MethodSignature, name string) error {
	idx, err := c.methodIndex(sig)
	if err != nil {
		return err
	}
	pidx, err := c.methods[idx].parameterIndex(name)
	if err != nil {
		return err
	}
	if c.signatureTaken(sig.WithoutParameter(pidx), idx) {
		return alreadyExists("a method with the new signature already exists")
	}
	c.methods[idx].removeParameter(pidx)
	c.sortMethods()
	return nil
}

// DeleteParameters removes every parameter from a method.
func (c *Class) DeleteParameters(sig MethodSignature) error {
	idx, err := c.methodIndex(sig)
	if err != nil {
		return err
	}
	if c.signatureTaken(sig.WithParameters(nil), idx) {
		return alreadyExists("a method with the new signature already exists")
	}
	c.methods[idx].params = nil
	c.sortMethods()
	return nil
}

// ChangeParameters replaces the whole parameter list of a method.
func (c *Class) ChangeParameters(sig MethodSignature, params []Parameter) error {
	idx, err := c.methodIndex(sig)
	if err != nil {
		return err
	}
	if err := checkParameters(params); err != nil {
		return err
	}
	if c.signatureTaken(sig.WithParameters(parameterTypes(params)), idx) {
		return alreadyExists("a method with the new signature already exists")
	}
	if err := c.methods[idx].setParameters(params); err != nil {
		return err
	}
	c.sortMethods()
	return nil
}

// RenameParameter renames a parameter. The signature is unaffected.
func (c *Class) RenameParameter(sig MethodSignature, oldName, newName string) error {
	idx, err := c.methodIndex(sig)
	if err != nil {
		return err
	}
	return c.methods[idx].renameParameter(oldName, newName)
}

// ChangeParameterType retypes one parameter of a method.
func (c *Class) ChangeParameterType(sig MethodSignature, name, typ string) error {
	idx, err := c.methodIndex(sig)
	if err != nil {
		return err
	}
	pidx, err := c.methods[idx].parameterIndex(name)
	if err != nil {
		return err
	}
	if err := grammar.CheckType("parameter type", typ); err != nil {
		return err
	}
	if c.signatureTaken(sig.WithParameterType(pidx, typ), idx) {
		return alreadyExists("a method with the new signature already exists")
	}
	if err := c.methods[idx].changeParameterType(pidx, typ); err != nil {
		return err
	}
	c.sortMethods()
	return nil
}

func (c *Class) sortFields() {
	sort.SliceStable(c.fields, func(i, j int) bool {
		return c.fields[i].name < c.fields[j].name
	})
}

func (c *Class) sortMethods() {
	sort.SliceStable(c.methods, func(i, j int) bool {
		return c.methods[i].Compare(c.methods[j]) < 0
	})
}

func (c Class) clone() Class {
	c.fields = append([]Field(nil), c.fields...)
	methods := make([]Method, len(c.methods))
	for i, m := range c.methods {
		methods[i] = m.clone()
	}
	c.methods = methods
	return c
}
