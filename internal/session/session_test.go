package session

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mumlerr "github.com/msto63/mUML/foundation/core/error"
	"github.com/msto63/mUML/internal/history"
	"github.com/msto63/mUML/internal/model"
)

func newTestSession(opts Options) (*Session, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	opts.Out = &out
	opts.Err = &errOut
	return New(opts), &out, &errOut
}

func TestRun_Script(t *testing.T) {
	s, out, errOut := newTestSession(Options{})

	script := strings.Join([]string{
		"invalid command",
		"class add a",
		"class add b",
		"relationship add a b Composition",
		"list all",
		"exit",
		"class add never",
	}, "\n")
	require.NoError(t, s.Run(context.Background(), NewScannerSource(strings.NewReader(script))))

	assert.True(t, strings.HasPrefix(errOut.String(), "Invalid command"))
	assert.Contains(t, out.String(), "a -> b (Composition)")
	assert.Equal(t, []string{"a", "b"}, s.Diagram().ClassNames())

	rels := s.Diagram().Relationships()
	require.Len(t, rels, 1)
	assert.Equal(t, "a", rels[0].Source())
	assert.Equal(t, "b", rels[0].Destination())
	assert.Equal(t, model.Composition, rels[0].Type())
}

func TestRun_Prompt(t *testing.T) {
	s, out, _ := newTestSession(Options{Prompt: "UML> "})

	require.NoError(t, s.Run(context.Background(), NewScannerSource(strings.NewReader("class add A\r\n"))))
	assert.Equal(t, "UML> UML> ", out.String())
	assert.Equal(t, []string{"A"}, s.Diagram().ClassNames())
}

func TestRun_Strict(t *testing.T) {
	s, _, errOut := newTestSession(Options{Strict: true})

	script := "class add A\nfield add B x int\nclass add C\n"
	err := s.Run(context.Background(), NewScannerSource(strings.NewReader(script)))
	require.Error(t, err)
	assert.Equal(t, "line 2: class 'B' does not exist", err.Error())
	assert.True(t, mumlerr.HasCode(err, mumlerr.CodeNotFound))
	assert.Equal(t, "class 'B' does not exist\n", errOut.String())
	assert.Equal(t, []string{"A"}, s.Diagram().ClassNames())
}

type blockingSource struct{ release chan struct{} }

func (b blockingSource) ReadLine() (string, error) {
	<-b.release
	return "", nil
}

func TestRun_Cancel(t *testing.T) {
	s, _, _ := newTestSession(Options{})
	src := blockingSource{release: make(chan struct{})}
	defer close(src.release)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, src) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

type closableSource struct {
	closed   chan struct{}
	finished chan struct{}
}

func (c *closableSource) ReadLine() (string, error) {
	<-c.closed
	close(c.finished)
	return "", io.ErrClosedPipe
}

func (c *closableSource) Close() error {
	close(c.closed)
	return nil
}

func TestRun_CancelClosesSource(t *testing.T) {
	s, _, _ := newTestSession(Options{})
	src := &closableSource{closed: make(chan struct{}), finished: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Run(ctx, src), context.Canceled)

	select {
	case <-src.finished:
	case <-time.After(5 * time.Second):
		t.Fatal("reader still blocked after cancellation")
	}
}

func TestScannerSource_Close(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	src := NewScannerSource(r)
	require.NoError(t, src.Close())
	_, err := src.ReadLine()
	assert.ErrorIs(t, err, io.ErrClosedPipe)

	assert.NoError(t, NewScannerSource(strings.NewReader("x")).Close())
}

func TestHandle_UndoRedo(t *testing.T) {
	s, _, _ := newTestSession(Options{})

	for _, line := range []string{"class add A", "class add B", "class rename B C"} {
		exit, err := s.Handle(line)
		require.NoError(t, err, line)
		assert.False(t, exit)
	}
	assert.Equal(t, []string{"A", "C"}, s.Diagram().ClassNames())

	_, err := s.Handle("class add A")
	require.Error(t, err)
	cursor, total := s.Timeline().Stats()
	assert.Equal(t, 3, cursor)
	assert.Equal(t, 3, total)

	_, err = s.Handle("undo")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, s.Diagram().ClassNames())

	_, err = s.Handle("undo")
	require.NoError(t, err)
	_, err = s.Handle("undo")
	require.NoError(t, err)
	assert.Empty(t, s.Diagram().ClassNames())

	_, err = s.Handle("undo")
	assert.EqualError(t, err, "Cannot undo any further")

	_, err = s.Handle("redo")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, s.Diagram().ClassNames())

	// a new command drops the undone future
	_, err = s.Handle("class add Z")
	require.NoError(t, err)
	_, err = s.Handle("redo")
	assert.EqualError(t, err, "Cannot redo any further")
	assert.Equal(t, []string{"A", "Z"}, s.Diagram().ClassNames())
}

func TestHandle_Exit(t *testing.T) {
	s, _, _ := newTestSession(Options{})

	exit, err := s.Handle("exit")
	require.NoError(t, err)
	assert.True(t, exit)

	exit, err = s.Handle("exit now")
	require.Error(t, err)
	assert.False(t, exit)
}

func TestHandle_RecordsHistory(t *testing.T) {
	store := history.NewMemoryStore(0)
	s, _, _ := newTestSession(Options{History: store})

	_, _ = s.Handle("class add A")
	_, _ = s.Handle("   ")
	_, _ = s.Handle("class add A")

	entries, err := store.Query(context.Background(), history.Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, s.ID(), entries[0].SessionID)
	assert.False(t, entries[0].Succeeded)
	assert.Equal(t, "Class 'A' cannot be added because it already exists", entries[0].Error)
	assert.True(t, entries[1].Succeeded)
	assert.Empty(t, entries[1].Error)
}

func TestAutosave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autosave.json")
	s, _, _ := newTestSession(Options{AutosavePath: path})

	_, err := s.Handle("class add A")
	require.NoError(t, err)
	require.NoError(t, s.Autosave())

	loaded := model.New()
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, []string{"A"}, loaded.ClassNames())

	none, _, _ := newTestSession(Options{})
	assert.NoError(t, none.Autosave())
	_, statErr := os.Stat(filepath.Join(t.TempDir(), "autosave.json"))
	assert.True(t, os.IsNotExist(statErr))
}
