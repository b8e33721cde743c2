package command

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mumlerr "github.com/msto63/mUML/foundation/core/error"
	"github.com/msto63/mUML/internal/model"
)

type stubHistory struct {
	undo     *Command
	redo     *Command
	err      error
	reverted int
}

func (h *stubHistory) Undo() (*Command, error) { return h.undo, h.err }
func (h *stubHistory) Redo() (*Command, error) { return h.redo, h.err }
func (h *stubHistory) Revert()                 { h.reverted++ }

func mustParse(t *testing.T, line string) *Command {
	t.Helper()
	cmd, err := Parse(line)
	require.NoError(t, err)
	return cmd
}

func commitAll(t *testing.T, env Env, lines ...string) {
	t.Helper()
	for _, line := range lines {
		require.NoError(t, mustParse(t, line).Commit(env), line)
	}
}

func TestCommitAndUndo(t *testing.T) {
	d := model.New()
	env := Env{Diagram: d}

	cmd := mustParse(t, "class add A")
	require.NoError(t, cmd.Commit(env))
	assert.Equal(t, []string{"A"}, d.ClassNames())

	require.NoError(t, cmd.Undo(d))
	assert.True(t, d.Empty())
}

func TestUndoWithoutCommit(t *testing.T) {
	err := mustParse(t, "class add A").Undo(model.New())
	assert.EqualError(t, err, "No prior state to restore")
	assert.True(t, mumlerr.HasCode(err, mumlerr.CodeNoSnapshot))
}

func TestUndoUntrackableIsNoop(t *testing.T) {
	d := model.New()
	require.NoError(t, d.AddClass("A"))
	assert.NoError(t, mustParse(t, "list all").Undo(d))
	assert.Equal(t, []string{"A"}, d.ClassNames())
}

func TestFailedCommitLeavesDiagram(t *testing.T) {
	d := model.New()
	require.NoError(t, d.AddClass("A"))
	before := d.Clone()

	err := mustParse(t, "class remove B").Commit(Env{Diagram: d})
	assert.EqualError(t, err, "class 'B' does not exist")
	assert.Equal(t, before, d)
}

func TestScriptOfEveryMutation(t *testing.T) {
	d := model.New()
	env := Env{Diagram: d}

	commitAll(t, env,
		"class add Car",
		"class add Engine",
		"class add Vehicle",
		"field add Car speed int",
		"field rename Car speed velocity",
		"field retype Car velocity float",
		"method add Car drive(to:str)->void",
		"method rename Car drive(str) go",
		"method change-return-type Car go(str) bool",
		"parameter add Car go(str) fast bool",
		"parameter rename Car go(str,bool) fast quick",
		"parameter retype Car go(str,bool) quick int",
		"parameter remove Car go(str,int) to",
		"parameters set Car go(int) a:int,b:int",
		"parameters clear Car go(int,int)",
		"relationship add Car Engine Composition",
		"relationship add Car Vehicle Inheritance",
		"relationship change type Car Engine Aggregation",
		"relationship change source Car Engine Vehicle",
		"relationship change destination Car Vehicle Car",
		"relationship remove Car Car",
		"class move Car 5 6",
		"class rename Engine Motor",
		"method add Vehicle stop()->void",
		"method remove Vehicle stop()",
		"field add Vehicle wheels int",
		"field remove Vehicle wheels",
	)

	assert.Equal(t, []string{"Car", "Motor", "Vehicle"}, d.ClassNames())

	car, err := d.Class("Car")
	require.NoError(t, err)
	require.Len(t, car.Fields(), 1)
	assert.Equal(t, "velocity:float", car.Fields()[0].String())
	require.Len(t, car.Methods(), 1)
	assert.Equal(t, "go()->bool", car.Methods()[0].String())
	assert.Equal(t, model.Point{X: 5, Y: 6}, car.Position())

	rels := d.Relationships()
	require.Len(t, rels, 1)
	assert.Equal(t, "Vehicle -> Motor (Aggregation)", rels[0].String())

	vehicle, _ := d.Class("Vehicle")
	assert.Empty(t, vehicle.Fields())
	assert.Empty(t, vehicle.Methods())
}

func TestListOutput(t *testing.T) {
	d := model.New()
	var out bytes.Buffer
	env := Env{Diagram: d, Out: &out}
	commitAll(t, env, "class add A", "class add B", "relationship add A B Realization")

	out.Reset()
	require.NoError(t, mustParse(t, "list all").Commit(env))
	assert.Equal(t, d.RenderClasses()+d.RenderRelationships()+"\n", out.String())

	out.Reset()
	require.NoError(t, mustParse(t, "list relationships").Commit(env))
	assert.Equal(t, "A -> B (Realization)\n\n", out.String())

	out.Reset()
	require.NoError(t, mustParse(t, "list classes").Commit(env))
	assert.Equal(t, d.RenderClasses()+"\n", out.String())

	out.Reset()
	a, _ := d.Class("A")
	require.NoError(t, mustParse(t, "list class A").Commit(env))
	assert.Equal(t, a.Box()+"\n", out.String())

	assert.EqualError(t, mustParse(t, "list class Z").Commit(env), "class 'Z' does not exist")
}

func TestHelpOutput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, mustParse(t, "help").Commit(Env{Diagram: model.New(), Out: &out}))
	assert.Equal(t, strings.Join(Templates(), "\n")+"\n", out.String())
}

func TestExit(t *testing.T) {
	cmd := mustParse(t, "exit")
	assert.True(t, cmd.Exit())
	assert.NoError(t, cmd.Commit(Env{Diagram: model.New()}))
	assert.False(t, mustParse(t, "help").Exit())
}

func TestUndoRedoCommands(t *testing.T) {
	d := model.New()
	add := mustParse(t, "class add A")
	require.NoError(t, add.Commit(Env{Diagram: d}))

	hist := &stubHistory{undo: add, redo: add}
	env := Env{Diagram: d, History: hist}

	require.NoError(t, mustParse(t, "undo").Commit(env))
	assert.True(t, d.Empty())

	require.NoError(t, mustParse(t, "redo").Commit(env))
	assert.Equal(t, []string{"A"}, d.ClassNames())

	hist.err = mumlerr.New("Cannot undo any further")
	assert.EqualError(t, mustParse(t, "undo").Commit(env), "Cannot undo any further")

	assert.Error(t, mustParse(t, "redo").Commit(Env{Diagram: d}), "no history attached")
	assert.Zero(t, hist.reverted)
}

func TestRedoFailureRevertsHistory(t *testing.T) {
	d := model.New()
	require.NoError(t, d.AddClass("A"))

	// replaying "class add A" against a diagram that already has A fails
	hist := &stubHistory{redo: mustParse(t, "class add A")}
	env := Env{Diagram: d, History: hist}

	err := mustParse(t, "redo").Commit(env)
	assert.EqualError(t, err, "Class 'A' cannot be added because it already exists")
	assert.Equal(t, 1, hist.reverted)

	// an undo of a command that was never committed has no snapshot
	hist.undo = mustParse(t, "class add B")
	assert.Error(t, mustParse(t, "undo").Commit(env))
	assert.Equal(t, 2, hist.reverted)
	assert.Equal(t, []string{"A"}, d.ClassNames())
}

func TestSaveAndLoadCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.json")
	d := model.New()
	env := Env{Diagram: d}
	commitAll(t, env, "class add A", "field add A x int", "save "+path)

	other := model.New()
	load := mustParse(t, "load "+path)
	require.NoError(t, load.Commit(Env{Diagram: other}))
	assert.Equal(t, d, other)

	require.NoError(t, load.Undo(other))
	assert.True(t, other.Empty())
}
