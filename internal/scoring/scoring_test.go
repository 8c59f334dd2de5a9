package scoring

import (
	"math"
	"testing"
	"time"
)

func TestComputeAccuracyEmptyInputs(t *testing.T) {
	if got := ComputeAccuracy("The cat sat on the mat", ""); got != 0 {
		t.Fatalf("expected 0 for empty typed, got %v", got)
	}
	if got := ComputeAccuracy("", "anything"); got != 0 {
		t.Fatalf("expected 0 for empty target, got %v", got)
	}
	if got := ComputeAccuracy("abc", "   "); got != 0 {
		t.Fatalf("expected 0 for whitespace-only typed, got %v", got)
	}
}

func TestComputeAccuracyExactMatch(t *testing.T) {
	for _, target := range []string{"a", "The quick brown fox jumps over the lazy dog", "naïve café"} {
		if got := ComputeAccuracy(target, target); got != 100 {
			t.Fatalf("expected 100 for %q, got %v", target, got)
		}
	}
}

func TestComputeAccuracyBounds(t *testing.T) {
	cases := []struct {
		target string
		typed  string
		want   float64
	}{
		{"abc", "abcdef", 100},
		{"abc", "xbc", 66.7},
		{"abc", "a", 33.3},
		{"abcd", "bcd", 0},
		{"The cat sat on the mat", "the cat sat on the mat", 95.5},
		{"abc", "abc   ", 100},
	}
	for _, tc := range cases {
		got := ComputeAccuracy(tc.target, tc.typed)
		if got != tc.want {
			t.Fatalf("ComputeAccuracy(%q, %q) = %v, want %v", tc.target, tc.typed, got, tc.want)
		}
		if got < 0 || got > 100 {
			t.Fatalf("accuracy out of range: %v", got)
		}
	}
}

func TestIsCapitalizationOnlyError(t *testing.T) {
	if !IsCapitalizationOnlyError("Hello world", "hello world") {
		t.Fatalf("expected first-letter case mismatch to be detected")
	}
	if IsCapitalizationOnlyError("Hello world", "Hello World") {
		t.Fatalf("expected mismatch past the first letter to be ignored")
	}
	if IsCapitalizationOnlyError("Hello world", "Hello world") {
		t.Fatalf("expected exact match not to count as a capitalization error")
	}
	if IsCapitalizationOnlyError("Hello", "hello!") {
		t.Fatalf("expected length mismatch to be rejected")
	}
	if IsCapitalizationOnlyError("", "") {
		t.Fatalf("expected empty strings to be rejected")
	}
	if IsCapitalizationOnlyError("Hello", "jello") {
		t.Fatalf("expected different letters to be rejected")
	}
	if !IsCapitalizationOnlyError("Hello world", "hello world  ") {
		t.Fatalf("expected trailing whitespace to be trimmed")
	}
}

func TestCountCorrectCharacters(t *testing.T) {
	if got := CountCorrectCharacters("Abcx", "abc"); got != 2 {
		t.Fatalf("expected 2 correct, got %d", got)
	}
	if got := CountCorrectCharacters("", "abc"); got != 0 {
		t.Fatalf("expected 0 correct, got %d", got)
	}
}

func TestComputeWPMZeroElapsed(t *testing.T) {
	if got := ComputeWPM("hello", "hello", 0); got != 0 {
		t.Fatalf("expected 0 WPM for zero elapsed, got %v", got)
	}
	if got := ComputeWPM("hello", "hello", -1); got != 0 {
		t.Fatalf("expected 0 WPM for negative elapsed, got %v", got)
	}
	if got := ComputeWPM("hello", "hello", math.NaN()); got != 0 {
		t.Fatalf("expected 0 WPM for NaN elapsed, got %v", got)
	}
}

func TestComputeWPM(t *testing.T) {
	got := ComputeWPM("aaaaaaaaaa", "aaaaaaaaaa", 0.5)
	if got != 4 {
		t.Fatalf("expected 4 WPM, got %v", got)
	}
}

func TestClassifyOutcome(t *testing.T) {
	cases := []struct {
		acc      float64
		capsOnly bool
		want     Outcome
	}{
		{100, false, Perfect},
		{100, true, Perfect},
		{95, false, Good},
		{90, false, Good},
		{95.5, true, CapitalizationOnly},
		{85, false, TryAgain},
		{0, false, TryAgain},
	}
	for _, tc := range cases {
		if got := ClassifyOutcome(tc.acc, tc.capsOnly); got != tc.want {
			t.Fatalf("ClassifyOutcome(%v, %v) = %s, want %s", tc.acc, tc.capsOnly, got, tc.want)
		}
	}
	if !TryAgain.RequiresRetry() || Good.RequiresRetry() {
		t.Fatalf("only TryAgain should require a retry")
	}
}

func TestScoreCapitalizationOnlyRound(t *testing.T) {
	res := Score(Input{
		Target:  "The cat sat on the mat",
		Typed:   "the cat sat on the mat",
		Elapsed: 5 * time.Second,
	})
	if res.Accuracy >= 100 {
		t.Fatalf("expected accuracy below 100, got %v", res.Accuracy)
	}
	if !res.CapitalizationOnly {
		t.Fatalf("expected capitalization-only flag")
	}
	if res.Outcome != CapitalizationOnly {
		t.Fatalf("expected capitalization-only outcome, got %s", res.Outcome)
	}
}

func TestScorePerfectRound(t *testing.T) {
	res := Score(Input{
		Target:  "I like to eat pizza",
		Typed:   "I like to eat pizza",
		Elapsed: 10 * time.Second,
	})
	if res.Accuracy != 100 {
		t.Fatalf("expected 100 accuracy, got %v", res.Accuracy)
	}
	if res.Outcome != Perfect {
		t.Fatalf("expected perfect outcome, got %s", res.Outcome)
	}
	// 19 correct chars / 5 / (1/6 min) = 22.8.
	if res.WPM != 23 {
		t.Fatalf("expected 23 WPM, got %d", res.WPM)
	}
}

func TestScoreZeroElapsed(t *testing.T) {
	res := Score(Input{Target: "abc", Typed: "abc"})
	if res.WPM != 0 {
		t.Fatalf("expected 0 WPM, got %d", res.WPM)
	}
	if res.Outcome != Perfect {
		t.Fatalf("expected perfect outcome, got %s", res.Outcome)
	}
}
