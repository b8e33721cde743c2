package command

import (
	"github.com/msto63/mUML/internal/grammar"
	"github.com/msto63/mUML/internal/model"
)

// parseArg converts one token according to the placeholder it fills.
// Name-like placeholders pass through unchanged; the model validates them
// when the command executes.
func parseArg(placeholder, token string) (interface{}, error) {
	switch placeholder {
	case PlaceholderInt:
		return grammar.ParseInt(token)
	case PlaceholderMethodSignature:
		return model.ParseMethodSignature(token)
	case PlaceholderMethodDefinition:
		return model.ParseMethod(token)
	case PlaceholderParamList:
		return model.ParseParameters(token)
	case PlaceholderRelationshipType:
		return model.ParseRelationshipType(token)
	default:
		return token, nil
	}
}

// args hands parsed placeholder values to a catalog builder in order.
type args struct {
	values []interface{}
	next   int
}

func (a *args) pop() interface{} {
	v := a.values[a.next]
	a.next++
	return v
}

func (a *args) str() string                      { return a.pop().(string) }
func (a *args) integer() int                     { return a.pop().(int) }
func (a *args) signature() model.MethodSignature { return a.pop().(model.MethodSignature) }
func (a *args) method() model.Method             { return a.pop().(model.Method) }
func (a *args) params() []model.Parameter        { return a.pop().([]model.Parameter) }
func (a *args) relationshipType() model.RelationshipType {
	return a.pop().(model.RelationshipType)
}
