// Package model defines shared data structures.
package model

import (
	"time"

	"github.com/verte-zerg/typeracer/internal/scoring"
)

// Config defines play settings.
type Config struct {
	Difficulty  string
	Custom      bool
	OnlyCustom  bool
	TickMs      int
	MaxOvertype int
	LogFile     string
	Debug       bool
}

// Round captures a stopped typing round. Rounds are kept in memory only.
type Round struct {
	StartedAt  time.Time
	Difficulty string
	Target     string
	Typed      string
	Elapsed    time.Duration
	Result     scoring.Result
}

// Phrase is a user-authored phrase stored in the library.
type Phrase struct {
	ID         int64
	Difficulty string
	Text       string
	CreatedAt  time.Time
}
