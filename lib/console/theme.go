// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Theme defines the color palette for the console panel. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility;
// hex values work on terminals with truecolor support.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Prompt is used for the input prompt and the marker prefixed to
	// echoed commands in the scrollback.
	Prompt lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color // Markdown headings.
	BorderColor      lipgloss.Color // Panel border, rules, scrollbar track.
	PanelBackground  lipgloss.Color // Background tint for the input bar.

	// Accent colors the scrollbar thumb while the input has focus.
	Accent lipgloss.Color

	// Log record levels, used when slog records are routed into the
	// scrollback via LogHandler.
	LogDebug lipgloss.Color
	LogInfo  lipgloss.Color
	LogWarn  lipgloss.Color
	LogError lipgloss.Color

	// LinkForeground colors URLs in rendered markdown.
	LinkForeground lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed
// for 256-color terminals with a dark background (the common case for
// development environments and tmux sessions).
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	Prompt: lipgloss.Color("114"), // green

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	PanelBackground:  lipgloss.Color("236"), // slightly lighter than terminal background

	Accent: lipgloss.Color("220"), // yellow/amber

	LogDebug: lipgloss.Color("240"), // dim gray
	LogInfo:  lipgloss.Color("252"), // same as NormalText
	LogWarn:  lipgloss.Color("220"), // yellow/amber
	LogError: lipgloss.Color("196"), // bright red

	LinkForeground: lipgloss.Color("75"), // blue
}

// themeFile is the YAML representation of a theme. Every field is
// optional; empty fields keep the DefaultTheme value.
type themeFile struct {
	NormalText       string `yaml:"normal_text"`
	FaintText        string `yaml:"faint_text"`
	Prompt           string `yaml:"prompt"`
	HeaderForeground string `yaml:"header_foreground"`
	BorderColor      string `yaml:"border"`
	PanelBackground  string `yaml:"panel_background"`
	Accent           string `yaml:"accent"`
	LogDebug         string `yaml:"log_debug"`
	LogInfo          string `yaml:"log_info"`
	LogWarn          string `yaml:"log_warn"`
	LogError         string `yaml:"log_error"`
	LinkForeground   string `yaml:"link"`
}

// LoadTheme reads a YAML theme file and overlays its values onto
// DefaultTheme. Colors are ANSI 256 palette indices ("252") or hex
// values ("#1e90ff"). Unknown fields and invalid colors are rejected
// so a typo in the file fails loudly instead of silently falling back
// to the default.
//
// Example file:
//
//	prompt: "114"
//	accent: "#d7af00"
//	panel_background: "236"
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file: %w", err)
	}

	var file themeFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Theme{}, fmt.Errorf("parsing theme file %s: %w", path, err)
	}

	theme := DefaultTheme
	var errs []error
	overlay := func(target *lipgloss.Color, value, field string) {
		if value == "" {
			return
		}
		if !validColor(value) {
			errs = append(errs, fmt.Errorf("%s: invalid color %q (want 0-255 or #rrggbb)", field, value))
			return
		}
		*target = lipgloss.Color(value)
	}

	overlay(&theme.NormalText, file.NormalText, "normal_text")
	overlay(&theme.FaintText, file.FaintText, "faint_text")
	overlay(&theme.Prompt, file.Prompt, "prompt")
	overlay(&theme.HeaderForeground, file.HeaderForeground, "header_foreground")
	overlay(&theme.BorderColor, file.BorderColor, "border")
	overlay(&theme.PanelBackground, file.PanelBackground, "panel_background")
	overlay(&theme.Accent, file.Accent, "accent")
	overlay(&theme.LogDebug, file.LogDebug, "log_debug")
	overlay(&theme.LogInfo, file.LogInfo, "log_info")
	overlay(&theme.LogWarn, file.LogWarn, "log_warn")
	overlay(&theme.LogError, file.LogError, "log_error")
	overlay(&theme.LinkForeground, file.LinkForeground, "link")

	if len(errs) > 0 {
		return Theme{}, errors.Join(errs...)
	}
	return theme, nil
}

var colorPattern = regexp.MustCompile(`^([0-9]{1,3}|#[0-9a-fA-F]{6})$`)

// validColor reports whether a color string is an ANSI 256 palette
// index (0-255) or a #rrggbb hex value.
func validColor(value string) bool {
	if !colorPattern.MatchString(value) {
		return false
	}
	if strings.HasPrefix(value, "#") {
		return true
	}
	index, err := strconv.Atoi(value)
	return err == nil && index <= 255
}
