// Package tui is the full-screen front end of the diagram shell.
package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mUML/foundation/core/log"
	"github.com/msto63/mUML/foundation/utils/stringx"
	"github.com/msto63/mUML/internal/completion"
	"github.com/msto63/mUML/internal/history"
	"github.com/msto63/mUML/internal/session"
)

// recallLimit bounds the lines loaded from the history store
const recallLimit = 500

// Options configures the TUI model
type Options struct {
	Styles  Styles
	Logger  *log.Logger
	History history.Store
	Prompt  string

	// AutosavePath is handed to the session
	AutosavePath string
}

// Model is the bubbletea model of the shell
type Model struct {
	session   *session.Session
	completer *completion.Completer
	store     history.Store
	out       *bytes.Buffer
	styles    Styles
	prompt    string

	// Components
	input    textinput.Model
	viewport viewport.Model
	width    int
	height   int
	ready    bool

	transcript []entry
	candidates []string

	// line recall, recallIdx == len(recall) is the line being edited
	recall    []string
	recallIdx int
	draft     string

	quitting bool
}

// New creates a model with a fresh session
func New(opts Options) Model {
	if opts.Prompt == "" {
		opts.Prompt = "UML> "
	}
	out := &bytes.Buffer{}
	s := session.New(session.Options{
		Out:          out,
		Err:          out,
		Logger:       opts.Logger,
		History:      opts.History,
		AutosavePath: opts.AutosavePath,
	})

	ti := textinput.New()
	ti.Prompt = opts.Prompt
	ti.PromptStyle = opts.Styles.Prompt
	ti.Placeholder = "help"
	ti.Focus()

	return Model{
		session:   s,
		completer: completion.New(s.Diagram()),
		store:     opts.History,
		out:       out,
		styles:    opts.Styles,
		prompt:    opts.Prompt,
		input:     ti,
	}
}

// Session returns the session driven by the model
func (m Model) Session() *session.Session {
	return m.session
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadHistory())
}

// loadHistory reads recent lines for recall
func (m Model) loadHistory() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		if store == nil {
			return historyLoadedMsg{}
		}
		lines, err := store.Lines(context.Background(), recallLimit)
		return historyLoadedMsg{lines: lines, err: err}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "ctrl+d":
			if m.input.Value() == "" {
				m.quitting = true
				return m, tea.Quit
			}

		case "enter":
			return m.submit()

		case "tab":
			m.complete()
			return m, nil

		case "up":
			m.recallPrevious()
			return m, nil

		case "down":
			m.recallNext()
			return m, nil

		case "pgup", "pgdown":
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		viewportHeight := max(msg.Height-7, 3)
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - len(m.prompt) - 2
		m.updateContent()

	case historyLoadedMsg:
		if msg.err != nil {
			m.transcript = append(m.transcript, entry{kind: entryError, text: "history unavailable: " + msg.err.Error()})
		} else {
			m.recall = append(msg.lines, m.recall...)
			m.recallIdx = len(m.recall)
		}
		m.updateContent()
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit runs the input line through the session
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.candidates = nil
	m.draft = ""

	if !stringx.IsBlank(line) {
		m.recall = append(m.recall, line)
	}
	m.recallIdx = len(m.recall)

	m.transcript = append(m.transcript, entry{kind: entryEcho, text: line})
	exit, err := m.session.Handle(line)
	if out := strings.TrimRight(m.out.String(), "\n"); out != "" {
		m.transcript = append(m.transcript, entry{kind: entryOutput, text: out})
	}
	m.out.Reset()
	if err != nil {
		m.transcript = append(m.transcript, entry{kind: entryError, text: err.Error()})
	}
	m.updateContent()

	if exit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// complete applies completion candidates to the input line
func (m *Model) complete() {
	line := m.input.Value()
	m.candidates = m.completer.Complete(line)
	if next := applyCompletion(line, m.candidates); next != line {
		m.input.SetValue(next)
		m.input.CursorEnd()
	}
	if len(m.candidates) == 1 {
		m.candidates = nil
	}
}

func (m *Model) recallPrevious() {
	if m.recallIdx == 0 {
		return
	}
	if m.recallIdx == len(m.recall) {
		m.draft = m.input.Value()
	}
	m.recallIdx--
	m.input.SetValue(m.recall[m.recallIdx])
	m.input.CursorEnd()
}

func (m *Model) recallNext() {
	if m.recallIdx >= len(m.recall) {
		return
	}
	m.recallIdx++
	if m.recallIdx == len(m.recall) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.recall[m.recallIdx])
	}
	m.input.CursorEnd()
}

// applyCompletion replaces the word being typed. A single candidate is
// completed with a trailing space, several extend the word to their
// common prefix.
func applyCompletion(line string, candidates []string) string {
	if len(candidates) == 0 {
		return line
	}
	word := ""
	if i := strings.LastIndexAny(line, " \t"); i < len(line)-1 {
		word = line[i+1:]
	}
	base := line[:len(line)-len(word)]

	if len(candidates) == 1 {
		return base + candidates[0] + " "
	}
	if prefix := commonPrefix(candidates); len(prefix) > len(word) {
		return base + prefix
	}
	return line
}

func commonPrefix(words []string) string {
	prefix := words[0]
	for _, w := range words[1:] {
		n := 0
		for n < len(prefix) && n < len(w) && prefix[n] == w[n] {
			n++
		}
		prefix = prefix[:n]
	}
	return prefix
}

// updateContent renders the transcript into the viewport
func (m *Model) updateContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m Model) renderTranscript() string {
	var b strings.Builder
	for i, e := range m.transcript {
		if i > 0 {
			b.WriteString("\n")
		}
		switch e.kind {
		case entryEcho:
			b.WriteString(m.styles.Echo.Render(m.prompt + e.text))
		case entryOutput:
			b.WriteString(m.styles.Output.Render(e.text))
		case entryError:
			b.WriteString(m.styles.Error.Render(e.text))
		}
	}
	return b.String()
}

// View renders the model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		m.styles.Title.Render("mUML"),
		" ",
		m.styles.Subtitle.Render("UML class diagram shell"),
	)

	panel := m.styles.Panel.
		Width(m.width - 2).
		Render(m.viewport.View())

	var hint string
	if len(m.candidates) > 0 {
		hint = m.styles.Candidate.Render(strings.Join(m.candidates, "  "))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		panel,
		m.input.View(),
		hint,
		m.renderStatus(),
	)
}

func (m Model) renderStatus() string {
	d := m.session.Diagram()
	cursor, total := m.session.Timeline().Stats()
	status := fmt.Sprintf("classes: %d  relationships: %d  undo: %d/%d",
		len(d.ClassNames()), len(d.Relationships()), cursor, total)
	help := "tab complete • ↑/↓ history • ctrl+c quit"
	return m.styles.StatusBar.Render(status) + m.styles.Help.Render(help)
}
