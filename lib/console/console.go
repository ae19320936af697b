// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package console provides a toggleable developer console overlay for
// bubbletea applications: an append-only scrollback above a single
// command line, docked to the bottom of the screen.
//
// The console is a component, not a program. A host embeds a Console
// in its model, forwards messages to Update, and splices the panel
// onto its own rendered view:
//
//	type model struct {
//		console console.Console
//	}
//
//	func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
//		cmd := m.console.Update(msg)
//		...
//		return m, cmd
//	}
//
//	func (m model) View() string {
//		return m.console.Overlay(m.renderWorkArea())
//	}
//
// The host owns the toggle key: call Show or Hide in response to its
// own bindings. Submitted command text is delivered synchronously to
// the callback registered with SetCommandCallback; the console does
// not interpret commands. Output goes in through Append as
// pre-rendered Markup fragments and is never truncated.
package console

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// focusDelay is how long after Show the command input takes keyboard
// focus. The delay lets the reveal settle before keystrokes land, so
// the key that triggered the toggle is not captured by the input.
const focusDelay = 150 * time.Millisecond

// panelMinHeight is the smallest useful panel: border row, two
// scrollback rows, input row.
const panelMinHeight = 4

// focusInputMsg is delivered through the event loop after focusDelay
// to give the command input keyboard focus. Delivery is
// fire-and-forget: the message focuses the input even when Hide was
// called during the delay window. That is harmless because key
// routing also requires the console to be visible, and the next Show
// schedules a fresh focus anyway.
type focusInputMsg struct{}

// Console is a developer console overlay. The zero value is not
// usable; construct with New. All methods must be called from the
// host program's event loop: the Console is single-goroutine like
// any other bubbletea model state.
type Console struct {
	theme Theme
	keys  KeyMap

	// Screen dimensions, from the host's WindowSizeMsg.
	width  int
	height int

	visible   bool
	maximized bool

	scrollback scrollback
	input      commandLine

	// callback receives submitted command text. Zero or one handler;
	// registering replaces silently.
	callback func(command string)
}

// New creates a hidden console with the given theme and the default
// key map. Geometry is established by the first SetSize (or a
// forwarded tea.WindowSizeMsg); until then the console renders
// nothing, but appends and visibility changes are remembered.
func New(theme Theme) Console {
	return Console{
		theme: theme,
		keys:  DefaultKeyMap,
		input: newCommandLine(theme),
	}
}

// SetSize updates the console for a new screen size. Scrollback
// content rewraps to the new panel width.
func (c *Console) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.layout()
}

// Show reveals the console, records the maximized flag, and pins the
// scrollback to the newest line. The returned command delivers focus
// to the command input after focusDelay; hosts must run it (return it
// from Update) or the input never takes focus.
func (c *Console) Show(maximized bool) tea.Cmd {
	c.maximized = maximized
	c.layout()
	c.scrollback.PinBottom()
	c.visible = true
	return tea.Tick(focusDelay, func(time.Time) tea.Msg {
		return focusInputMsg{}
	})
}

// Hide conceals the console and blurs the command input. The command
// line text and the maximized flag are left untouched, so a later
// Show restores the previous size and pending input.
func (c *Console) Hide() {
	c.visible = false
	c.input.Blur()
}

// Visible reports whether the panel is currently shown.
func (c *Console) Visible() bool {
	return c.visible
}

// Maximized reports whether the panel takes the full screen height
// when visible. The flag is set by Show and survives Hide.
func (c *Console) Maximized() bool {
	return c.maximized
}

// Append adds a pre-rendered fragment to the scrollback and pins the
// view to the newest line. The fragment is displayed verbatim;
// appending works while hidden and the content appears on the next
// Show.
func (c *Console) Append(fragment Markup) {
	c.scrollback.Append(fragment)
}

// SetCommandCallback registers the handler invoked with submitted
// command text. A previously registered handler is replaced silently;
// nil is equivalent to ClearCommandCallback.
func (c *Console) SetCommandCallback(handler func(command string)) {
	c.callback = handler
}

// ClearCommandCallback removes the registered handler. Submits still
// echo into the scrollback.
func (c *Console) ClearCommandCallback() {
	c.callback = nil
}

// CommandLine returns the current text of the command input.
func (c *Console) CommandLine() string {
	return c.input.Value()
}

// Focused reports whether the command input has keyboard focus. Focus
// arrives via the command returned by Show, one focusDelay after the
// reveal.
func (c *Console) Focused() bool {
	return c.input.Focused()
}

// Content returns the scrollback fragments joined with newlines,
// without display wrapping. Intended for hosts that persist or
// inspect console output.
func (c *Console) Content() string {
	return c.scrollback.Content()
}

// Update routes a message to the console. Keyboard input is consumed
// only while the console is visible and the command input has focus:
// submit runs the command line, dismiss hides the panel, everything
// else edits the input. Mouse wheel events over the panel scroll the
// scrollback. Hosts forward all messages unconditionally and run the
// returned command.
func (c *Console) Update(message tea.Msg) tea.Cmd {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		c.SetSize(message.Width, message.Height)

	case focusInputMsg:
		c.input.Focus()

	case logRecordMsg:
		c.appendLogRecord(message)

	case tea.KeyMsg:
		if !c.visible || !c.input.Focused() {
			return nil
		}
		switch {
		case key.Matches(message, c.keys.Submit):
			c.submit()
		case key.Matches(message, c.keys.Dismiss):
			c.Hide()
		default:
			c.input.Update(message)
		}

	case tea.MouseMsg:
		c.handleMouse(message)
	}
	return nil
}

// submit runs the current command line: clear the input, echo the
// text into the scrollback, then hand it to the registered callback.
// Empty submissions go through the same path; the callback decides
// what an empty command means. Callback panics propagate to the host.
func (c *Console) submit() {
	command := c.input.Value()
	c.input.Clear()

	marker := lipgloss.NewStyle().
		Bold(true).
		Foreground(c.theme.Prompt).
		Render("» ")
	c.Append(Markup(marker + command))

	if c.callback != nil {
		c.callback(command)
	}
}

// handleMouse scrolls the scrollback on wheel events over the panel
// region. Scrolling works while the input is unfocused; the next
// Append or Show re-pins the view to the bottom.
func (c *Console) handleMouse(message tea.MouseMsg) {
	if !c.visible || c.height <= 0 {
		return
	}
	panelTop := c.height - c.panelHeight()
	if message.Y < panelTop {
		return
	}

	switch message.Button {
	case tea.MouseButtonWheelUp:
		c.scrollback.viewport.LineUp(3)
	case tea.MouseButtonWheelDown:
		c.scrollback.viewport.LineDown(3)
	}
}

// appendLogRecord appends a slog record delivered by LogHandler as a
// level-colored scrollback line.
func (c *Console) appendLogRecord(record logRecordMsg) {
	color := c.theme.LogInfo
	switch {
	case record.Level >= slog.LevelError:
		color = c.theme.LogError
	case record.Level >= slog.LevelWarn:
		color = c.theme.LogWarn
	case record.Level < slog.LevelInfo:
		color = c.theme.LogDebug
	}
	style := lipgloss.NewStyle().Foreground(color)
	c.Append(Markup(style.Render(record.Summary)))
}

// panelHeight returns the total panel height in rows for the current
// screen: the full screen when maximized, two fifths otherwise,
// clamped between panelMinHeight and the screen height.
func (c *Console) panelHeight() int {
	if c.height <= 0 {
		return 0
	}
	height := c.height * 2 / 5
	if c.maximized {
		height = c.height
	}
	if height < panelMinHeight {
		height = panelMinHeight
	}
	if height > c.height {
		height = c.height
	}
	return height
}

// layout resizes the scrollback viewport for the current screen and
// maximized state. The scrollback region is the panel minus the
// border row and the input row; its content width leaves one column
// of left padding and one for the scrollbar.
func (c *Console) layout() {
	if c.width <= 0 || c.height <= 0 {
		return
	}
	c.scrollback.SetSize(c.width-2, c.panelHeight()-2)
}

// Render produces the panel lines, each exactly the screen width:
// a border row, the scrollback region with a scrollbar column, and
// the input bar. Returns nil while hidden or unsized.
func (c *Console) Render() []string {
	if !c.visible || c.width <= 0 || c.height <= 0 {
		return nil
	}

	panelHeight := c.panelHeight()
	scrollbackHeight := panelHeight - 2

	borderStyle := lipgloss.NewStyle().Foreground(c.theme.BorderColor)
	lines := make([]string, 0, panelHeight)
	lines = append(lines, borderStyle.Render(strings.Repeat("─", c.width)))

	viewportLines := strings.Split(c.scrollback.viewport.View(), "\n")
	scrollbarLines := strings.Split(renderScrollbar(
		c.theme, scrollbackHeight,
		c.scrollback.viewport.TotalLineCount(),
		c.scrollback.viewport.Height,
		c.scrollback.viewport.YOffset,
		c.input.Focused(),
	), "\n")

	plain := lipgloss.NewStyle()
	for index := 0; index < scrollbackHeight; index++ {
		row := " "
		if index < len(viewportLines) {
			row += viewportLines[index]
		}
		row = padPanelLine(row, c.width-1, plain)
		if index < len(scrollbarLines) {
			row += scrollbarLines[index]
		}
		lines = append(lines, row)
	}

	lines = append(lines, c.input.View(c.width))
	return lines
}

// Overlay splices the rendered panel onto a host view, bottom
// anchored. While the console is hidden the view passes through
// unchanged.
func (c *Console) Overlay(view string) string {
	return overlayBottom(view, c.Render())
}
