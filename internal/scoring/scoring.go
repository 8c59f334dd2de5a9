// Package scoring computes accuracy, WPM, and the outcome of a typing round.
package scoring

import (
	"math"
	"strings"
	"time"
	"unicode"
)

// avgWordLength is the conventional characters-per-word used for WPM.
const avgWordLength = 5.0

// goodThreshold is the minimum accuracy for a Good outcome.
const goodThreshold = 90.0

// Input is the snapshot taken when a round is stopped.
type Input struct {
	Target  string
	Typed   string
	Elapsed time.Duration
}

// Result is the scored outcome of a round.
type Result struct {
	Accuracy           float64
	WPM                int
	Outcome            Outcome
	CapitalizationOnly bool
}

// Score trims the typed text and computes accuracy, WPM, and outcome.
func Score(in Input) Result {
	typed := TrimTyped(in.Typed)
	acc := ComputeAccuracy(in.Target, typed)
	capsOnly := IsCapitalizationOnlyError(in.Target, typed)
	minutes := 0.0
	if in.Elapsed > 0 {
		minutes = in.Elapsed.Minutes()
	}
	wpm := ComputeWPM(typed, in.Target, minutes)
	return Result{
		Accuracy:           acc,
		WPM:                int(math.Round(wpm)),
		Outcome:            ClassifyOutcome(acc, capsOnly),
		CapitalizationOnly: capsOnly,
	}
}

// TrimTyped removes trailing whitespace from typed text.
func TrimTyped(typed string) string {
	return strings.TrimRightFunc(typed, unicode.IsSpace)
}

// ComputeAccuracy returns the position-wise match percentage of typed against
// target, rounded to one decimal and capped at 100.
func ComputeAccuracy(target, typed string) float64 {
	targetRunes := []rune(target)
	typedRunes := []rune(TrimTyped(typed))
	if len(targetRunes) == 0 || len(typedRunes) == 0 {
		return 0
	}
	n := len(targetRunes)
	if len(typedRunes) > n {
		n = len(typedRunes)
	}
	correct := 0
	for i := 0; i < n; i++ {
		if i >= len(targetRunes) || i >= len(typedRunes) {
			continue
		}
		if targetRunes[i] == typedRunes[i] {
			correct++
		}
	}
	acc := math.Round(float64(correct)/float64(len(targetRunes))*100*10) / 10
	if acc > 100 {
		acc = 100
	}
	return acc
}

// IsCapitalizationOnlyError reports whether typed matches target ignoring
// case and the first letter differs only in case. Mismatches past the first
// character are not inspected.
func IsCapitalizationOnlyError(target, typed string) bool {
	typed = TrimTyped(typed)
	targetRunes := []rune(target)
	typedRunes := []rune(typed)
	if len(targetRunes) == 0 || len(typedRunes) == 0 {
		return false
	}
	if len(targetRunes) != len(typedRunes) {
		return false
	}
	if !strings.EqualFold(target, typed) {
		return false
	}
	a, b := targetRunes[0], typedRunes[0]
	if a == b {
		return false
	}
	if !unicode.IsLetter(a) || !unicode.IsLetter(b) {
		return false
	}
	return unicode.ToLower(a) == unicode.ToLower(b)
}

// CountCorrectCharacters counts case-sensitive matches over the common prefix length.
func CountCorrectCharacters(typed, target string) int {
	typedRunes := []rune(typed)
	targetRunes := []rune(target)
	n := len(typedRunes)
	if len(targetRunes) < n {
		n = len(targetRunes)
	}
	correct := 0
	for i := 0; i < n; i++ {
		if typedRunes[i] == targetRunes[i] {
			correct++
		}
	}
	return correct
}

// ComputeWPM returns correct characters per five, per elapsed minute.
// Non-positive and NaN durations yield 0.
func ComputeWPM(typed, target string, elapsedMinutes float64) float64 {
	if !(elapsedMinutes > 0) {
		return 0
	}
	correct := CountCorrectCharacters(typed, target)
	wpm := (float64(correct) / avgWordLength) / elapsedMinutes
	if wpm < 0 {
		return 0
	}
	return wpm
}
