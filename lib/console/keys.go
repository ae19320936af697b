// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings the console acts on while it is
// visible and the command input has focus. Every other key goes to
// the input's line editor.
type KeyMap struct {
	Submit  key.Binding // Run the current command line.
	Dismiss key.Binding // Hide the console, leaving the command line intact.
}

// DefaultKeyMap is the built-in binding set: enter submits, escape
// dismisses.
var DefaultKeyMap = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "run command"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "hide console"),
	),
}
