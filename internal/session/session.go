// Package session binds one diagram and its undo timeline to a stream of
// command lines.
package session

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	mumlerr "github.com/msto63/mUML/foundation/core/error"
	"github.com/msto63/mUML/foundation/core/log"
	"github.com/msto63/mUML/foundation/utils/stringx"
	"github.com/msto63/mUML/internal/command"
	"github.com/msto63/mUML/internal/history"
	"github.com/msto63/mUML/internal/model"
	"github.com/msto63/mUML/internal/timeline"
)

// Options configures a Session. Zero values are usable.
type Options struct {
	// Out receives command output, Err receives error messages.
	// Both default to the process streams.
	Out io.Writer
	Err io.Writer

	Logger *log.Logger

	// History, when set, records every non-blank line.
	History history.Store

	// Prompt is written before each line read by Run. Empty disables it.
	Prompt string

	// Strict makes Run stop at the first failing line.
	Strict bool

	// AutosavePath is where Autosave writes the diagram.
	AutosavePath string
}

// Session owns one diagram and one timeline.
type Session struct {
	id       string
	diagram  *model.Diagram
	timeline *timeline.Timeline
	history  history.Store
	logger   *log.Logger
	out      io.Writer
	errOut   io.Writer
	prompt   string
	strict   bool
	autosave string
}

// New creates a session with an empty diagram.
func New(opts Options) *Session {
	s := &Session{
		id:       uuid.New().String(),
		diagram:  model.New(),
		timeline: timeline.New(),
		history:  opts.History,
		out:      opts.Out,
		errOut:   opts.Err,
		prompt:   opts.Prompt,
		strict:   opts.Strict,
		autosave: opts.AutosavePath,
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.errOut == nil {
		s.errOut = os.Stderr
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNop()
	}
	s.logger = logger.WithField("session", s.id)
	return s
}

// ID returns the session id recorded with history entries.
func (s *Session) ID() string { return s.id }

// Diagram returns the live diagram.
func (s *Session) Diagram() *model.Diagram { return s.diagram }

// Timeline returns the undo timeline.
func (s *Session) Timeline() *timeline.Timeline { return s.timeline }

func (s *Session) env() command.Env {
	return command.Env{Diagram: s.diagram, History: s.timeline, Out: s.out}
}

// Handle runs a single line. It reports whether the line asked to end the
// session. A failed line leaves the diagram and timeline as they were.
func (s *Session) Handle(line string) (exit bool, err error) {
	return s.HandleContext(context.Background(), line)
}

// HandleContext is Handle with a context for the history store.
func (s *Session) HandleContext(ctx context.Context, line string) (exit bool, err error) {
	cmd, err := command.Parse(line)
	if err == nil {
		timer := s.logger.StartTimer("command").
			WithField("command", cmd.String()).
			WithField("trackable", cmd.Trackable())
		err = cmd.Commit(s.env())
		timer.StopWithError(err)
	} else {
		s.logger.WithField("line", line).LogError(err)
	}

	s.record(ctx, line, err)
	if err != nil {
		return false, err
	}

	s.timeline.Add(cmd)
	return cmd.Exit(), nil
}

func (s *Session) record(ctx context.Context, line string, failure error) {
	if s.history == nil || stringx.IsBlank(line) {
		return
	}
	entry := &history.Entry{SessionID: s.id, Line: line, Succeeded: failure == nil}
	if failure != nil {
		entry.Error = failure.Error()
	}
	if err := s.history.Append(ctx, entry); err != nil {
		s.logger.WarnWithErr("Failed to record history", err)
	}
}

// Run reads lines from src until exit, end of input or cancellation.
// Errors go to the error stream and the loop continues, unless the
// session is strict. On cancellation a src that is an io.Closer is closed
// so the reading goroutine can finish; any other src keeps that goroutine
// blocked until its pending ReadLine returns.
func (s *Session) Run(ctx context.Context, src LineSource) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan readResult)
	go func() {
		defer close(lines)
		for {
			line, err := src.ReadLine()
			select {
			case lines <- readResult{line, err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for n := 1; ; n++ {
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}

		var next readResult
		select {
		case <-ctx.Done():
			if c, ok := src.(io.Closer); ok {
				c.Close()
			}
			return ctx.Err()
		case r, ok := <-lines:
			if !ok {
				return nil
			}
			next = r
		}
		if next.err == io.EOF {
			return nil
		}
		if next.err != nil {
			return mumlerr.Wrap(next.err, "read input").WithCode(mumlerr.CodeIO)
		}

		exit, err := s.HandleContext(ctx, next.line)
		if err != nil {
			fmt.Fprintln(s.errOut, err)
			if s.strict {
				return mumlerr.Wrap(err, fmt.Sprintf("line %d", n)).WithDetail("line", n)
			}
			continue
		}
		if exit {
			return nil
		}
	}
}

// Autosave writes the diagram to the configured autosave path, if any.
func (s *Session) Autosave() error {
	if s.autosave == "" {
		return nil
	}
	if err := s.diagram.Save(s.autosave); err != nil {
		return err
	}
	s.logger.Debug("Diagram autosaved", log.Fields{"path": s.autosave})
	return nil
}
