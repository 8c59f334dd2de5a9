package tui

import (
	"strings"
	"testing"
)

func TestBuildStyledRunesCursor(t *testing.T) {
	target := []rune("ab")
	input := []rune("a")
	cursorIndex := len(input)

	runes := buildStyledRunes(target, input, cursorIndex)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != currentWordStyle.Underline(true).Render("b") {
		t.Fatalf("expected cursor style for second rune")
	}
}

func TestBuildStyledRunesKeepsTargetOnMistype(t *testing.T) {
	target := []rune("ab")
	input := []rune("ax")

	runes := buildStyledRunes(target, input, -1)
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style for second rune")
	}
}

func TestBuildStyledRunesWordHighlighting(t *testing.T) {
	target := []rune("one two")
	input := []rune("o")

	runes := buildStyledRunes(target, input, len(input))
	if runes[2].s != currentWordStyle.Render("e") {
		t.Fatalf("expected current word style for untyped in current word")
	}
	if runes[4].s != pendingStyle.Render("t") {
		t.Fatalf("expected pending style for next word")
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	runes := buildStyledRunes([]rune("a b"), []rune("ax"), 2)
	if runes[1].s != incorrectStyle.Render("•") {
		t.Fatalf("expected red dot for wrong space")
	}
}

func TestBuildStyledRunesOvertype(t *testing.T) {
	runes := buildStyledRunes([]rune("ab"), []rune("ab c"), -1)
	if len(runes) != 4 {
		t.Fatalf("expected 4 runes including overtype, got %d", len(runes))
	}
	if runes[2].s != overtypeStyle.Render("•") {
		t.Fatalf("expected overtyped space to render as a dot")
	}
	if runes[3].s != overtypeStyle.Render("c") {
		t.Fatalf("expected overtype style for extra rune")
	}
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	target := []rune("aaa bbb ccc")
	runes := buildStyledRunes(target, nil, -1)
	wrapped := wrapStyledRunes(runes, 7)
	if got := strings.Count(wrapped, "\n"); got != 1 {
		t.Fatalf("expected 1 line break, got %d in %q", got, wrapped)
	}
}
