package model

import (
	"strings"

	"github.com/msto63/mUML/internal/grammar"
)

// MethodSignature is the overload key of a method: its name and ordered
// parameter types. Parameter names and the return type are not part of it.
type MethodSignature struct {
	name  string
	types []string
}

// NewMethodSignature validates the name and every parameter type.
func NewMethodSignature(name string, types []string) (MethodSignature, error) {
	if err := grammar.CheckIdentifier("method name", name); err != nil {
		return MethodSignature{}, err
	}
	for _, t := range types {
		if err := grammar.CheckType("parameter type", t); err != nil {
			return MethodSignature{}, err
		}
	}
	return MethodSignature{name: name, types: append([]string(nil), types...)}, nil
}

// ParseMethodSignature parses text such as "f(int,str)".
func ParseMethodSignature(text string) (MethodSignature, error) {
	spec, err := grammar.ParseSignature(text)
	if err != nil {
		return MethodSignature{}, err
	}
	return NewMethodSignature(spec.Name, spec.Types)
}

func (s MethodSignature) Name() string { return s.name }

// ParameterTypes returns a copy of the parameter types.
func (s MethodSignature) ParameterTypes() []string {
	return append([]string(nil), s.types...)
}

func (s MethodSignature) WithName(name string) MethodSignature {
	return MethodSignature{name: name, types: s.ParameterTypes()}
}

func (s MethodSignature) WithParameters(types []string) MethodSignature {
	return MethodSignature{name: s.name, types: append([]string(nil), types...)}
}

func (s MethodSignature) WithAddedParameter(typ string) MethodSignature {
	return MethodSignature{name: s.name, types: append(s.ParameterTypes(), typ)}
}

func (s MethodSignature) WithoutParameter(index int) MethodSignature {
	types := make([]string, 0, len(s.types))
	types = append(types, s.types[:index]...)
	types = append(types, s.types[index+1:]...)
	return MethodSignature{name: s.name, types: types}
}

func (s MethodSignature) WithParameterType(index int, typ string) MethodSignature {
	types := s.ParameterTypes()
	types[index] = typ
	return MethodSignature{name: s.name, types: types}
}

// Equal compares name and parameter types.
func (s MethodSignature) Equal(other MethodSignature) bool {
	if s.name != other.name || len(s.types) != len(other.types) {
		return false
	}
	for i := range s.types {
		if s.types[i] != other.types[i] {
			return false
		}
	}
	return true
}

// Compare orders by name, then parameter types pairwise, then count.
func (s MethodSignature) Compare(other MethodSignature) int {
	if c := strings.Compare(s.name, other.name); c != 0 {
		return c
	}
	for i := 0; i < len(s.types) && i < len(other.types); i++ {
		if c := strings.Compare(s.types[i], other.types[i]); c != 0 {
			return c
		}
	}
	return len(s.types) - len(other.types)
}

// String formats the signature as name(t1,t2).
func (s MethodSignature) String() string {
	return s.name + "(" + strings.Join(s.types, ",") + ")"
}
