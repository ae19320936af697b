// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeThemeFile writes YAML content to a temp file and returns its
// path.
func writeThemeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing theme file: %v", err)
	}
	return path
}

func TestLoadThemeOverlaysDefaults(t *testing.T) {
	path := writeThemeFile(t, "prompt: \"99\"\naccent: \"#d7af00\"\n")

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme failed: %v", err)
	}

	if theme.Prompt != "99" {
		t.Errorf("prompt should be overridden to 99, got %q", theme.Prompt)
	}
	if theme.Accent != "#d7af00" {
		t.Errorf("accent should be overridden to #d7af00, got %q", theme.Accent)
	}
	// Fields absent from the file keep their defaults.
	if theme.NormalText != DefaultTheme.NormalText {
		t.Errorf("normal_text should keep the default, got %q", theme.NormalText)
	}
	if theme.BorderColor != DefaultTheme.BorderColor {
		t.Errorf("border should keep the default, got %q", theme.BorderColor)
	}
}

func TestLoadThemeEmptyFile(t *testing.T) {
	path := writeThemeFile(t, "")

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme failed on empty file: %v", err)
	}
	if theme != DefaultTheme {
		t.Error("empty file should load the default theme unchanged")
	}
}

func TestLoadThemeInvalidColor(t *testing.T) {
	// 999 matches the digit pattern but exceeds the 256-color palette.
	path := writeThemeFile(t, "prompt: \"999\"\n")
	if _, err := LoadTheme(path); err == nil {
		t.Error("palette index above 255 should be rejected")
	}

	path = writeThemeFile(t, "accent: \"bright-red\"\n")
	if _, err := LoadTheme(path); err == nil {
		t.Error("color names should be rejected")
	}

	path = writeThemeFile(t, "border: \"#12g4ff\"\n")
	if _, err := LoadTheme(path); err == nil {
		t.Error("malformed hex values should be rejected")
	}
}

func TestLoadThemeCollectsAllColorErrors(t *testing.T) {
	path := writeThemeFile(t, "prompt: \"999\"\naccent: \"nope\"\n")

	_, err := LoadTheme(path)
	if err == nil {
		t.Fatal("invalid colors should produce an error")
	}
	message := err.Error()
	if !strings.Contains(message, "prompt") || !strings.Contains(message, "accent") {
		t.Errorf("error should name every invalid field, got %q", message)
	}
}

func TestLoadThemeUnknownField(t *testing.T) {
	path := writeThemeFile(t, "promt: \"114\"\n")

	if _, err := LoadTheme(path); err == nil {
		t.Error("unknown fields should be rejected, not ignored")
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	if _, err := LoadTheme(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file should produce an error")
	}
}

func TestValidColor(t *testing.T) {
	valid := []string{"0", "15", "114", "255", "#1e90ff", "#D7AF00"}
	for _, value := range valid {
		if !validColor(value) {
			t.Errorf("%q should be a valid color", value)
		}
	}

	invalid := []string{"", "256", "999", "-1", "red", "#fff", "#12g4ff", "1e90ff"}
	for _, value := range invalid {
		if validColor(value) {
			t.Errorf("%q should be rejected", value)
		}
	}
}
