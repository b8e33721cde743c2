package command

import (
	"fmt"

	mumlerr "github.com/msto63/mUML/foundation/core/error"
	"github.com/msto63/mUML/internal/model"
)

// action is the closed set of command payloads. Each variant carries its
// parsed arguments and applies itself to an Env.
type action interface {
	apply(env Env) error
}

type loadAction struct{ path string }

func (a loadAction) apply(env Env) error { return env.Diagram.Load(a.path) }

type saveAction struct{ path string }

func (a saveAction) apply(env Env) error { return env.Diagram.Save(a.path) }

type listAction struct {
	classes       bool
	relationships bool
}

func (a listAction) apply(env Env) error {
	var out string
	if a.classes {
		out += env.Diagram.RenderClasses()
	}
	if a.relationships {
		out += env.Diagram.RenderRelationships()
	}
	_, err := fmt.Fprintln(env.out(), out)
	return err
}

type listClassAction struct{ class string }

func (a listClassAction) apply(env Env) error {
	c, err := env.Diagram.Class(a.class)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.out(), c.Box())
	return err
}

type helpAction struct{}

func (helpAction) apply(env Env) error {
	for _, t := range Templates() {
		if _, err := fmt.Fprintln(env.out(), t); err != nil {
			return err
		}
	}
	return nil
}

type exitAction struct{}

func (exitAction) apply(Env) error { return nil }

type undoAction struct{}

func (undoAction) apply(env Env) error {
	if env.History == nil {
		return errNoHistory
	}
	cmd, err := env.History.Undo()
	if err != nil {
		return err
	}
	if err := cmd.Undo(env.Diagram); err != nil {
		env.History.Revert()
		return err
	}
	return nil
}

type redoAction struct{}

func (redoAction) apply(env Env) error {
	if env.History == nil {
		return errNoHistory
	}
	cmd, err := env.History.Redo()
	if err != nil {
		return err
	}
	if err := cmd.Execute(env); err != nil {
		env.History.Revert()
		return err
	}
	return nil
}

var errNoHistory = mumlerr.New("undo history is not available").WithCode(mumlerr.CodeInternal)

type addClassAction struct{ name string }

func (a addClassAction) apply(env Env) error { return env.Diagram.AddClass(a.name) }

type removeClassAction struct{ class string }

func (a removeClassAction) apply(env Env) error { return env.Diagram.DeleteClass(a.class) }

type renameClassAction struct{ class, name string }

func (a renameClassAction) apply(env Env) error { return env.Diagram.RenameClass(a.class, a.name) }

type moveClassAction struct {
	class string
	x, y  int
}

func (a moveClassAction) apply(env Env) error { return env.Diagram.MoveClass(a.class, a.x, a.y) }

type addFieldAction struct{ class, name, typ string }

func (a addFieldAction) apply(env Env) error {
	return env.Diagram.WithClass(a.class, func(c *model.Class) error {
		return c.AddField(a.name, a.typ)
	})
}

type removeFieldAction struct{ class, field string }

func (a removeFieldAction) apply(env Env) error {
	return env.Diagram.WithClass(a.class, func(c *model.Class) error {
		return c.DeleteField(a.field)
	})
}

type renameFieldAction struct{ class, field, name string }

func (a renameFieldAction) apply(env Env) error {
	return env.Diagram.WithClass(a.class, func(c *model.Class) error {
		return c.RenameField(a.field, a.name)
	})
}

type retypeFieldAction struct{ class, field, typ string }

func (a retypeFieldAction) apply(env Env) error {
	return env.Diagram.WithClass(a.class, func(c *model.Class) error {
		return c.RetypeField(a.field, a.typ)
	})
}

type addMethodAction struct {
	class  string
	method model.Method
}

func (a addMethodAction) apply(env Env) error {
	return env.Diagram.WithClass(a.class, func(c *model.Class) error {
		return c.AddMethod(a.method)
	})
}

type removeMethodAction struct {
	class string
	sig   model.MethodSignature
}

func (a removeMethodAction) apply(env Env) error {
	return env.Diagram.WithClass(a.class, func(c *model.Class) error {
		return c.DeleteMethod(a.sig)
	})
}

type renameMethodAction struct {
	class string
	sig   model.MethodSignature
	name  string
}

func (a renameMethodAction) apply(env Env) error {
	return env.Diagram.WithClass(a.class, func(c *model.Class) error {
		return c.RenameMethod(a.sig, a.name)
	})
}

type changeReturnTypeAction struct {
	class string
	sig   model.MethodSignature
	typ   string
}

func (a changeReturnTypeAction) apply(env Env) error {
	return env.Diagram.WithClass(a.class, func(c *model.Class) error {
		return c.ChangeReturnType(a.sig, a.typ)
	})
}

type addParameterAction struct {
	class     string
	sig       model.MethodSignature
	name, typ string
}

func (a addParameterAction) apply(env Env) error {
	return env.Diagram.WithClass(a.class, func(c *model.Class) error {
		return c.AddParameter(a.sig, a.name, a.typ)
	})
}

type removeParameterAction struct {
	class string
	sig   model.MethodSignature
	param string
}

func (a removeParameterAction) apply(env Env) error {
	return env.Diagram.WithClass(a.class, func(c *model.Class) error {
		return c.DeleteParameter(a.sig, a.param)
	})
}

type renameParameterAction struct {
	class       string
	sig         model.MethodSignature
	param, name string
}

func (a renameParameterAction) apply(env Env) error {
	return env.Diagram.WithClass(a.class, func(c *model.Class) error {
		return c.RenameParameter(a.sig, a.param, a.name)
	})
}

type retypeParameterAction struct {
	class      string
	sig        model.MethodSignature
	param, typ string
}

func (a retypeParameterAction) apply(env Env) error {
	return env.Diagram.WithClass(a.class, func(c *model.Class) error {
		return c.ChangeParameterType(a.sig, a.param, a.typ)
	})
}

type clearParametersAction struct {
	class string
	sig   model.MethodSignature
}

func (a clearParametersAction) apply(env Env) error {
	return env.Diagram.WithClass(a.class, func(c *model.Class) error {
		return c.DeleteParameters(a.sig)
	})
}

type setParametersAction struct {
	class  string
	sig    model.MethodSignature
	params []model.Parameter
}

func (a setParametersAction) apply(env Env) error {
	return env.Diagram.WithClass(a.class, func(c *model.Class) error {
		return c.ChangeParameters(a.sig, a.params)
	})
}

type addRelationshipAction struct {
	source, destination string
	typ                 model.RelationshipType
}

func (a addRelationshipAction) apply(env Env) error {
	return env.Diagram.AddRelationship(a.source, a.destination, a.typ)
}

type removeRelationshipAction struct{ source, destination string }

func (a removeRelationshipAction) apply(env Env) error {
	return env.Diagram.DeleteRelationship(a.source, a.destination)
}

type changeSourceAction struct{ source, destination, to string }

func (a changeSourceAction) apply(env Env) error {
	return env.Diagram.ChangeRelationshipSource(a.source, a.destination, a.to)
}

type changeDestinationAction struct{ source, destination, to string }

func (a changeDestinationAction) apply(env Env) error {
	return env.Diagram.ChangeRelationshipDestination(a.source, a.destination, a.to)
}

type changeTypeAction struct {
	source, destination string
	typ                 model.RelationshipType
}

func (a changeTypeAction) apply(env Env) error {
	return env.Diagram.ChangeRelationshipType(a.source, a.destination, a.typ)
}
