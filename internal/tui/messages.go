package tui

// historyLoadedMsg carries recalled lines from the history store
type historyLoadedMsg struct {
	lines []string
	err   error
}

// entryKind classifies a transcript entry
type entryKind int

const (
	entryEcho entryKind = iota
	entryOutput
	entryError
)

// entry is one block of the transcript
type entry struct {
	kind entryKind
	text string
}
