// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// commandLine is the single-line text editor at the bottom of the
// console panel. It implements cursor-addressed editing over a rune
// buffer; submit and dismiss keys are handled by the Console before
// messages reach it.
type commandLine struct {
	buffer  []rune
	cursor  int // Cursor position within the buffer.
	focused bool
	theme   Theme
}

func newCommandLine(theme Theme) commandLine {
	return commandLine{theme: theme}
}

// Value returns the current command line text.
func (line commandLine) Value() string {
	return string(line.buffer)
}

// Clear empties the buffer and resets the cursor. Focus is unchanged.
func (line *commandLine) Clear() {
	line.buffer = nil
	line.cursor = 0
}

// Focus directs subsequent key messages to the editor and shows the
// cursor.
func (line *commandLine) Focus() {
	line.focused = true
}

// Blur hides the cursor and marks the editor as not accepting input.
func (line *commandLine) Blur() {
	line.focused = false
}

// Focused reports whether the editor currently has keyboard focus.
func (line commandLine) Focused() bool {
	return line.focused
}

// Update processes a key message as a line-editing operation. Keys
// with no editing meaning are ignored.
func (line *commandLine) Update(message tea.KeyMsg) {
	switch message.Type {
	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			line.insertRune(character)
		}

	case tea.KeyBackspace:
		if line.cursor > 0 {
			line.buffer = append(line.buffer[:line.cursor-1], line.buffer[line.cursor:]...)
			line.cursor--
		}

	case tea.KeyDelete:
		if line.cursor < len(line.buffer) {
			line.buffer = append(line.buffer[:line.cursor], line.buffer[line.cursor+1:]...)
		}

	case tea.KeyLeft:
		if line.cursor > 0 {
			line.cursor--
		}

	case tea.KeyRight:
		if line.cursor < len(line.buffer) {
			line.cursor++
		}

	case tea.KeyHome, tea.KeyCtrlA:
		line.cursor = 0

	case tea.KeyEnd, tea.KeyCtrlE:
		line.cursor = len(line.buffer)
	}
}

// insertRune inserts a single rune at the cursor position.
func (line *commandLine) insertRune(character rune) {
	buffer := make([]rune, len(line.buffer)+1)
	copy(buffer, line.buffer[:line.cursor])
	buffer[line.cursor] = character
	copy(buffer[line.cursor+1:], line.buffer[line.cursor:])
	line.buffer = buffer
	line.cursor++
}

// View renders the input bar as exactly one line of the given width:
// prompt, buffer with cursor, background-tinted padding. The cursor is
// only drawn while the editor has focus.
func (line commandLine) View(width int) string {
	barStyle := lipgloss.NewStyle().
		Background(line.theme.PanelBackground)

	promptStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(line.theme.Prompt).
		Background(line.theme.PanelBackground)

	textStyle := lipgloss.NewStyle().
		Foreground(line.theme.NormalText).
		Background(line.theme.PanelBackground)

	cursorStyle := lipgloss.NewStyle().
		Reverse(true)

	rendered := promptStyle.Render("> ")
	switch {
	case !line.focused:
		rendered += textStyle.Render(string(line.buffer))
	case line.cursor >= len(line.buffer):
		rendered += textStyle.Render(string(line.buffer)) + cursorStyle.Render(" ")
	default:
		before := textStyle.Render(string(line.buffer[:line.cursor]))
		atCursor := cursorStyle.Render(string(line.buffer[line.cursor : line.cursor+1]))
		after := textStyle.Render(string(line.buffer[line.cursor+1:]))
		rendered += before + atCursor + after
	}

	return padPanelLine(rendered, width, barStyle)
}
