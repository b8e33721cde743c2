package command

import (
	"io"
	"os"
	"strings"

	mumlerr "github.com/msto63/mUML/foundation/core/error"
	"github.com/msto63/mUML/internal/model"
)

// History is the undo/redo surface the undo and redo commands act on.
// Revert takes back the cursor move of the last Undo or Redo, for when
// applying the returned command failed.
type History interface {
	Undo() (*Command, error)
	Redo() (*Command, error)
	Revert()
}

// Env is everything a command may touch while executing.
type Env struct {
	Diagram *model.Diagram
	History History
	Out     io.Writer
}

func (e Env) out() io.Writer {
	if e.Out == nil {
		return os.Stdout
	}
	return e.Out
}

// Command is one dispatched operation with its parsed arguments. After
// Commit it also holds the diagram state from just before execution.
type Command struct {
	kind     Kind
	tokens   []string
	action   action
	snapshot *model.Diagram
}

// Kind returns the command kind.
func (c *Command) Kind() Kind { return c.kind }

// Template returns the catalog template the command was built from.
func (c *Command) Template() string { return catalog[c.kind].template }

// Trackable reports whether the command belongs in the undo timeline.
// Queries and session control are never tracked.
func (c *Command) Trackable() bool { return catalog[c.kind].trackable }

// Exit reports whether the command ends the session.
func (c *Command) Exit() bool { return c.kind == KindExit }

// String returns the command line as entered.
func (c *Command) String() string { return strings.Join(c.tokens, " ") }

// Commit snapshots the diagram and then executes the command. On failure
// the snapshot is kept but the command must not be added to a timeline.
func (c *Command) Commit(env Env) error {
	c.snapshot = env.Diagram.Clone()
	return c.Execute(env)
}

// Execute applies the command without taking a snapshot. Redo uses this
// to replay a command forward.
func (c *Command) Execute(env Env) error {
	return c.action.apply(env)
}

// Undo restores the diagram captured by Commit. Untrackable commands have
// nothing to revert.
func (c *Command) Undo(d *model.Diagram) error {
	if !c.Trackable() {
		return nil
	}
	if c.snapshot == nil {
		return mumlerr.New("No prior state to restore").WithCode(mumlerr.CodeNoSnapshot)
	}
	d.Replace(c.snapshot)
	return nil
}
