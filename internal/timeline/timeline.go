// Package timeline keeps the linear undo/redo history of committed commands.
package timeline

import (
	mumlerr "github.com/msto63/mUML/foundation/core/error"
	"github.com/msto63/mUML/internal/command"
)

// Timeline is an ordered list of committed commands plus a cursor. Entries
// at or after the cursor have been undone and are dropped by the next Add.
type Timeline struct {
	entries []*command.Command
	cursor  int
	// last cursor move made by Undo (-1) or Redo (+1), 0 once settled
	last int
}

// New returns an empty timeline.
func New() *Timeline {
	return &Timeline{}
}

// Add records a successfully committed command. Untrackable commands are
// ignored.
func (t *Timeline) Add(cmd *command.Command) {
	if !cmd.Trackable() {
		return
	}
	t.entries = append(t.entries[:t.cursor], cmd)
	t.cursor++
	t.last = 0
}

// CanUndo reports whether Undo would succeed.
func (t *Timeline) CanUndo() bool {
	return t.cursor > 0
}

// CanRedo reports whether Redo would succeed.
func (t *Timeline) CanRedo() bool {
	return t.cursor < len(t.entries)
}

// Undo steps the cursor back and returns the command to revert.
func (t *Timeline) Undo() (*command.Command, error) {
	if !t.CanUndo() {
		return nil, mumlerr.New("Cannot undo any further").WithCode(mumlerr.CodeTimelineBoundary)
	}
	t.cursor--
	t.last = -1
	return t.entries[t.cursor], nil
}

// Redo returns the command to replay and steps the cursor forward.
func (t *Timeline) Redo() (*command.Command, error) {
	if !t.CanRedo() {
		return nil, mumlerr.New("Cannot redo any further").WithCode(mumlerr.CodeTimelineBoundary)
	}
	cmd := t.entries[t.cursor]
	t.cursor++
	t.last = 1
	return cmd, nil
}

// Revert moves the cursor back over the last Undo or Redo. It does nothing
// if the timeline changed since, or if it was already reverted.
func (t *Timeline) Revert() {
	t.cursor -= t.last
	t.last = 0
}

// Stats returns the cursor position and the number of entries.
func (t *Timeline) Stats() (cursor, total int) {
	return t.cursor, len(t.entries)
}

// Entries returns the recorded command lines, oldest first.
func (t *Timeline) Entries() []string {
	out := make([]string, len(t.entries))
	for i, c := range t.entries {
		out[i] = c.String()
	}
	return out
}

// Clear drops all entries.
func (t *Timeline) Clear() {
	t.entries = nil
	t.cursor = 0
	t.last = 0
}

var _ command.History = (*Timeline)(nil)
