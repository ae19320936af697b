// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"fmt"
	"strings"
	"testing"
)

// testScrollback creates a sized scrollback filled with n single-line
// fragments.
func testScrollback(width, height, n int) scrollback {
	var log scrollback
	log.SetSize(width, height)
	for index := 0; index < n; index++ {
		log.Append(Markup(fmt.Sprintf("entry-%02d", index)))
	}
	return log
}

func TestScrollbackEmpty(t *testing.T) {
	var log scrollback
	log.SetSize(40, 5)

	if log.Count() != 0 {
		t.Errorf("empty scrollback count should be 0, got %d", log.Count())
	}
	if log.Content() != "" {
		t.Errorf("empty scrollback content should be empty, got %q", log.Content())
	}
	if log.maxOffset() != 0 {
		t.Errorf("empty scrollback max offset should be 0, got %d", log.maxOffset())
	}
}

func TestScrollbackAppendPinsToBottom(t *testing.T) {
	log := testScrollback(40, 5, 10)

	if log.viewport.TotalLineCount() != 10 {
		t.Fatalf("10 single-line fragments should be 10 lines, got %d", log.viewport.TotalLineCount())
	}
	if log.maxOffset() != 5 {
		t.Fatalf("max offset should be 5, got %d", log.maxOffset())
	}
	if log.viewport.YOffset != 5 {
		t.Errorf("append should pin to the bottom, offset is %d", log.viewport.YOffset)
	}
}

func TestScrollbackAppendRepinsAfterScroll(t *testing.T) {
	log := testScrollback(40, 5, 10)

	log.viewport.LineUp(3)
	if log.viewport.YOffset != 2 {
		t.Fatalf("scroll up should move the offset to 2, got %d", log.viewport.YOffset)
	}

	log.Append(Markup("entry-10"))
	if log.viewport.YOffset != log.maxOffset() {
		t.Errorf("append should repin to the bottom, offset %d max %d",
			log.viewport.YOffset, log.maxOffset())
	}
}

func TestScrollbackResizeKeepsBottomPin(t *testing.T) {
	log := testScrollback(40, 5, 10)

	// Shrinking the region increases the max offset; a pinned view
	// must follow the bottom.
	log.SetSize(40, 3)
	if log.viewport.YOffset != 7 {
		t.Errorf("pinned view should stay pinned through resize, offset is %d", log.viewport.YOffset)
	}

	log.SetSize(40, 8)
	if log.viewport.YOffset != 2 {
		t.Errorf("pinned view should stay pinned when growing, offset is %d", log.viewport.YOffset)
	}
}

func TestScrollbackResizePreservesScrolledOffset(t *testing.T) {
	log := testScrollback(40, 5, 10)

	// Scroll to the top: clearly not pinned.
	log.viewport.SetYOffset(0)
	log.SetSize(40, 4)
	if log.viewport.YOffset != 0 {
		t.Errorf("unpinned offset should be preserved through resize, got %d", log.viewport.YOffset)
	}
}

func TestScrollbackResizeClampsOffset(t *testing.T) {
	log := testScrollback(40, 5, 10)

	// Offset 2 of max 5: unpinned. Growing the region to 9 lines
	// drops the max offset below the saved position.
	log.viewport.SetYOffset(2)
	log.SetSize(40, 9)
	if log.maxOffset() != 1 {
		t.Fatalf("max offset should be 1 after growing, got %d", log.maxOffset())
	}
	if log.viewport.YOffset != 1 {
		t.Errorf("offset should clamp to the new max, got %d", log.viewport.YOffset)
	}
}

func TestScrollbackRewrap(t *testing.T) {
	var log scrollback
	log.SetSize(10, 5)
	log.Append(Markup("aaaa bbbb cccc"))

	if log.viewport.TotalLineCount() < 2 {
		t.Errorf("14 columns of text should wrap at width 10, got %d lines",
			log.viewport.TotalLineCount())
	}

	// The stored fragment is not rewritten by display wrapping.
	if log.Content() != "aaaa bbbb cccc" {
		t.Errorf("content should stay unwrapped, got %q", log.Content())
	}

	// At a generous width the same content is a single line again.
	log.SetSize(40, 5)
	if log.viewport.TotalLineCount() != 1 {
		t.Errorf("content should rewrap to 1 line at width 40, got %d",
			log.viewport.TotalLineCount())
	}
}

func TestScrollbackMultilineFragment(t *testing.T) {
	var log scrollback
	log.SetSize(40, 5)
	log.Append(Markup("first\nsecond\nthird"))

	if log.Count() != 1 {
		t.Errorf("a multiline fragment is one entry, got %d", log.Count())
	}
	if log.viewport.TotalLineCount() != 3 {
		t.Errorf("a 3-line fragment should display as 3 lines, got %d",
			log.viewport.TotalLineCount())
	}
}

func TestScrollbackContentJoinsFragments(t *testing.T) {
	var log scrollback
	log.SetSize(40, 5)
	log.Append(Markup("one"))
	log.Append(Markup("two"))

	if log.Content() != "one\ntwo" {
		t.Errorf("content should join fragments with newlines, got %q", log.Content())
	}
	if !strings.Contains(log.viewport.View(), "one") {
		t.Error("viewport should display the first fragment")
	}
}
