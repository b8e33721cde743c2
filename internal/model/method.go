package model

import (
	"cmp"
	"strings"

	"github.com/msto63/mUML/internal/grammar"
)

// Method is a named operation with an ordered parameter list and a return
// type. Parameter names are unique within a method.
type Method struct {
	name       string
	returnType string
	params     []Parameter
}

// NewMethod validates the parameters, the name and the return type.
func NewMethod(name, returnType string, params []Parameter) (Method, error) {
	if err := checkParameters(params); err != nil {
		return Method{}, err
	}
	if err := grammar.CheckIdentifier("method name", name); err != nil {
		return Method{}, err
	}
	if err := grammar.CheckType("method return type", returnType); err != nil {
		return Method{}, err
	}
	return Method{
		name:       name,
		returnType: returnType,
		params:     append([]Parameter(nil), params...),
	}, nil
}

// ParseMethod parses text such as "f(a:int,b:str)->void".
func ParseMethod(text string) (Method, error) {
	spec, err := grammar.ParseMethod(text)
	if err != nil {
		return Method{}, err
	}
	params, err := parametersFromSpecs(spec.Params)
	if err != nil {
		return Method{}, err
	}
	return NewMethod(spec.Name, spec.ReturnType, params)
}

func (m Method) Name() string       { return m.name }
func (m Method) ReturnType() string { return m.returnType }

// Parameters returns a copy of the parameter list.
func (m Method) Parameters() []Parameter {
	return append([]Parameter(nil), m.params...)
}

// Signature derives the overload key.
func (m Method) Signature() MethodSignature {
	return MethodSignature{name: m.name, types: parameterTypes(m.params)}
}

// Matches reports whether the method has the given signature.
func (m Method) Matches(sig MethodSignature) bool {
	return m.Signature().Equal(sig)
}

// Compare orders by name, parameter count, parameter types pairwise and
// finally return type.
func (m Method) Compare(other Method) int {
	if c := strings.Compare(m.name, other.name); c != 0 {
		return c
	}
	if c := cmp.Compare(len(m.params), len(other.params)); c != 0 {
		return c
	}
	for i := range m.params {
		if c := strings.Compare(m.params[i].typ, other.params[i].typ); c != 0 {
			return c
		}
	}
	return strings.Compare(m.returnType, other.returnType)
}

// parameterIndex finds a parameter by name.
func (m Method) parameterIndex(name string) (int, error) {
	if err := grammar.CheckIdentifier("parameter name", name); err != nil {
		return -1, err
	}
	for i, p := range m.params {
		if p.name == name {
			return i, nil
		}
	}
	return -1, notFound("method parameter '%s' does not exist", name)
}

func (m *Method) rename(name string) error {
	if err := grammar.CheckIdentifier("method name", name); err != nil {
		return err
	}
	m.name = name
	return nil
}

func (m *Method) changeReturnType(typ string) error {
	if err := grammar.CheckType("method return type", typ); err != nil {
		return err
	}
	m.returnType = typ
	return nil
}

func (m *Method) addParameter(p Parameter) error {
	for _, existing := range m.params {
		if existing.name == p.name {
			return alreadyExists("adding duplicate parameter")
		}
	}
	m.params = append(m.params, p)
	return nil
}

func (m *Method) removeParameter(index int) {
	m.params = append(m.params[:index:index], m.params[index+1:]...)
}

func (m *Method) setParameters(params []Parameter) error {
	if err := checkParameters(params); err != nil {
		return err
	}
	m.params = append([]Parameter(nil), params...)
	return nil
}

func (m *Method) renameParameter(oldName, newName string) error {
	idx, err := m.parameterIndex(oldName)
	if err != nil {
		return err
	}
	if err := grammar.CheckIdentifier("parameter name", newName); err != nil {
		return err
	}
	for _, p := range m.params {
		if p.name == newName {
			return alreadyExists("duplicate parameter name")
		}
	}
	m.params[idx].name = newName
	return nil
}

func (m *Method) changeParameterType(index int, typ string) error {
	return m.params[index].ChangeType(typ)
}

func (m Method) clone() Method {
	m.params = append([]Parameter(nil), m.params...)
	return m
}

// String formats the method as name(a:int,b:str)->ret.
func (m Method) String() string {
	return m.name + "(" + FormatParameters(m.params) + ")->" + m.returnType
}

// Extended formats the method as "name(a: int, b: str) -> ret".
func (m Method) Extended() string {
	parts := make([]string, len(m.params))
	for i, p := range m.params {
		parts[i] = p.Extended()
	}
	return m.name + "(" + strings.Join(parts, ", ") + ") -> " + m.returnType
}

// SignatureString formats the signature as name(t1,t2).
func (m Method) SignatureString() string {
	return m.Signature().String()
}
