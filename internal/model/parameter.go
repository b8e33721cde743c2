package model

import (
	"strings"

	"github.com/msto63/mUML/internal/grammar"
)

// Parameter is a named, typed argument of a Method.
type Parameter struct {
	name string
	typ  string
}

// NewParameter validates name as an Identifier and typ as a Type expression.
func NewParameter(name, typ string) (Parameter, error) {
	if err := grammar.CheckIdentifier("parameter name", name); err != nil {
		return Parameter{}, err
	}
	if err := grammar.CheckType("parameter type", typ); err != nil {
		return Parameter{}, err
	}
	return Parameter{name: name, typ: typ}, nil
}

// ParseParameters parses "a:int,b:str" into parameters.
func ParseParameters(text string) ([]Parameter, error) {
	specs, err := grammar.ParseParameters(text)
	if err != nil {
		return nil, err
	}
	return parametersFromSpecs(specs)
}

func parametersFromSpecs(specs []grammar.ParamSpec) ([]Parameter, error) {
	params := make([]Parameter, 0, len(specs))
	for _, s := range specs {
		p, err := NewParameter(s.Name, s.Type)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, nil
}

func (p Parameter) Name() string { return p.name }
func (p Parameter) Type() string { return p.typ }

// Rename changes the parameter name.
func (p *Parameter) Rename(name string) error {
	if err := grammar.CheckIdentifier("parameter name", name); err != nil {
		return err
	}
	p.name = name
	return nil
}

// ChangeType changes the parameter type.
func (p *Parameter) ChangeType(typ string) error {
	if err := grammar.CheckType("parameter type", typ); err != nil {
		return err
	}
	p.typ = typ
	return nil
}

func (p Parameter) String() string {
	return p.name + ":" + p.typ
}

func (p Parameter) Extended() string {
	return p.name + ": " + p.typ
}

// FormatParameters joins parameters as "a:int,b:str".
func FormatParameters(params []Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return strings.Join(parts, ",")
}

func parameterTypes(params []Parameter) []string {
	types := make([]string, len(params))
	for i, p := range params {
		types[i] = p.typ
	}
	return types
}

// checkParameters validates every parameter and requires unique names.
func checkParameters(params []Parameter) error {
	seen := make(map[string]struct{}, len(params))
	for _, p := range params {
		if _, dup := seen[p.name]; dup {
			return alreadyExists("Duplicate parameter names exist")
		}
		seen[p.name] = struct{}{}
	}
	for _, p := range params {
		if err := grammar.CheckIdentifier("parameter name", p.name); err != nil {
			return err
		}
	}
	for _, p := range params {
		if err := grammar.CheckType("parameter type", p.typ); err != nil {
			return err
		}
	}
	return nil
}
