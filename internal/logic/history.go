package logic

import (
	"slices"
	"strings"
)

// CommandHistory records the non-blank commands of a session.
type CommandHistory struct {
	entries []string
}

// NewCommandHistory creates an empty history.
func NewCommandHistory() *CommandHistory {
	return &CommandHistory{}
}

// Add records input. Blank input is ignored.
func (h *CommandHistory) Add(input string) {
	if strings.TrimSpace(input) == "" {
		return
	}
	h.entries = append(h.entries, input)
}

// Entries returns the recorded commands, oldest first.
func (h *CommandHistory) Entries() []string {
	return slices.Clone(h.entries)
}

// Last returns the newest entry.
func (h *CommandHistory) Last() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	return h.entries[len(h.entries)-1], true
}
