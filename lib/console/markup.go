// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import "github.com/charmbracelet/lipgloss"

// Markup is a pre-rendered terminal fragment appended to the console
// scrollback. Fragments may contain ANSI escape sequences and embedded
// newlines; the console displays them verbatim and never escapes,
// validates, or filters the content. Callers own what they append.
//
// Each fragment is a block: the scrollback joins fragments with
// newlines, so a single-line fragment occupies exactly one scrollback
// line before wrapping.
type Markup string

// Text wraps plain text as a Markup fragment with no styling.
func Text(content string) Markup {
	return Markup(content)
}

// Styled renders content through a lipgloss style and wraps the result
// as a Markup fragment.
func Styled(style lipgloss.Style, content string) Markup {
	return Markup(style.Render(content))
}
