// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// scrollback is the append-only output log backing the console's
// display region. Fragments are stored verbatim and never truncated or
// reordered; the viewport content is rematerialized from them with
// width-aware wrapping, so a resize reflows the display without
// touching the log.
type scrollback struct {
	viewport  viewport.Model
	fragments []Markup
	width     int // Content width used for wrapping.
}

// Append adds a fragment to the log and pins the view to the newest
// line, even if the user had scrolled up.
func (log *scrollback) Append(fragment Markup) {
	log.fragments = append(log.fragments, fragment)
	log.refill()
	log.PinBottom()
}

// SetSize updates the viewport dimensions and rewraps the content at
// the new width. A view pinned to the bottom stays pinned; otherwise
// the scroll offset is preserved, clamped to the new content height.
func (log *scrollback) SetSize(width, height int) {
	previousOffset := log.viewport.YOffset
	pinned := previousOffset >= log.maxOffset()

	log.width = width
	log.viewport.Width = width
	log.viewport.Height = height
	log.refill()

	if pinned {
		log.PinBottom()
		return
	}
	maxOffset := log.maxOffset()
	if previousOffset > maxOffset {
		previousOffset = maxOffset
	}
	log.viewport.SetYOffset(previousOffset)
}

// PinBottom scrolls the viewport so the newest content is visible.
func (log *scrollback) PinBottom() {
	log.viewport.SetYOffset(log.maxOffset())
}

// maxOffset returns the largest valid scroll offset for the current
// content and viewport height.
func (log scrollback) maxOffset() int {
	maxOffset := log.viewport.TotalLineCount() - log.viewport.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// Content returns the fragment log joined with newlines, unwrapped.
func (log scrollback) Content() string {
	parts := make([]string, len(log.fragments))
	for index, fragment := range log.fragments {
		parts[index] = string(fragment)
	}
	return strings.Join(parts, "\n")
}

// Count returns the number of appended fragments.
func (log scrollback) Count() int {
	return len(log.fragments)
}

// refill rematerializes the viewport content from the fragment log.
// Wrapping to the content width happens here rather than at append
// time so the stored fragments stay verbatim.
func (log *scrollback) refill() {
	if len(log.fragments) == 0 {
		log.viewport.SetContent("")
		return
	}
	content := log.Content()
	if log.width > 0 {
		content = lipgloss.NewStyle().Width(log.width).Render(content)
	}
	log.viewport.SetContent(content)
}
