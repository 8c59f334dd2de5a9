// Package phrases provides difficulty tiers and phrase sources.
package phrases

import (
	"fmt"
	"strings"
)

// Difficulty is a phrase tier.
type Difficulty string

// Supported difficulty tiers.
const (
	Easy         Difficulty = "easy"
	Intermediate Difficulty = "intermediate"
	Hard         Difficulty = "hard"
)

var order = []Difficulty{Easy, Intermediate, Hard}

// All returns the difficulty tiers from easiest to hardest.
func All() []Difficulty {
	return append([]Difficulty(nil), order...)
}

// ParseDifficulty parses a tier name, ignoring case and surrounding spaces.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range order {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (expected easy, intermediate, or hard)", s)
}

// Next returns the following tier, wrapping from hard back to easy.
func (d Difficulty) Next() Difficulty {
	for i, known := range order {
		if d == known {
			return order[(i+1)%len(order)]
		}
	}
	return Easy
}

func (d Difficulty) String() string {
	return string(d)
}
