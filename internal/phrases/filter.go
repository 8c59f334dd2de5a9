package phrases

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxPhraseRunes bounds the length of a phrase.
const MaxPhraseRunes = 300

// ErrInvalidPhrase is returned for phrases that cannot be typed.
var ErrInvalidPhrase = errors.New("invalid phrase")

// Normalize trims a phrase and collapses whitespace runs to a single space.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Validate checks that a phrase is a non-empty, printable single line.
func Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: phrase is empty", ErrInvalidPhrase)
	}
	if strings.ContainsAny(text, "\r\n") {
		return fmt.Errorf("%w: phrase must be a single line", ErrInvalidPhrase)
	}
	if n := utf8.RuneCountInString(text); n > MaxPhraseRunes {
		return fmt.Errorf("%w: phrase has %d characters (max %d)", ErrInvalidPhrase, n, MaxPhraseRunes)
	}
	for _, r := range text {
		if r == '\t' || !unicode.IsPrint(r) {
			return fmt.Errorf("%w: phrase contains unprintable character %q", ErrInvalidPhrase, r)
		}
	}
	return nil
}
