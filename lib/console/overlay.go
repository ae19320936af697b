// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlayBottom splices full-width panel lines over the bottom rows of
// a rendered view. Each spliced line is wrapped in SGR resets so open
// escape sequences in the host view cannot bleed into the panel, and
// panel styles cannot bleed into the host's following lines.
//
// Panel lines beyond the top of the view are dropped rather than
// growing the view, so a short host render stays short.
func overlayBottom(view string, panelLines []string) string {
	if len(panelLines) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")
	anchorY := len(viewLines) - len(panelLines)

	for index, panelLine := range panelLines {
		viewLineIndex := anchorY + index
		if viewLineIndex < 0 || viewLineIndex >= len(viewLines) {
			continue
		}
		viewLines[viewLineIndex] = "\x1b[0m" + panelLine + "\x1b[0m"
	}

	return strings.Join(viewLines, "\n")
}

// padPanelLine pads styled content to an exact column width with
// spaces rendered through the given style, truncating ANSI-aware when
// the content is already wider.
func padPanelLine(styledContent string, width int, padStyle lipgloss.Style) string {
	contentWidth := ansi.StringWidth(styledContent)
	if contentWidth > width {
		return ansi.Truncate(styledContent, width, "")
	}
	if contentWidth == width {
		return styledContent
	}
	return styledContent + padStyle.Render(strings.Repeat(" ", width-contentWidth))
}
