// Package session tracks the lifecycle of a single typing round.
package session

import (
	"time"

	"github.com/verte-zerg/typeracer/internal/model"
	"github.com/verte-zerg/typeracer/internal/scoring"
)

// DefaultMaxOvertype is how many runes may be typed past the end of the target.
const DefaultMaxOvertype = 20

// State is the round state.
type State int

const (
	// Idle means no key has been typed yet.
	Idle State = iota
	// Running means the timer is active.
	Running
	// Stopped means the round has been scored.
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Clock returns the current time.
type Clock func() time.Time

// Session is one round: a fixed target, the typed runes, and the timer.
type Session struct {
	difficulty  string
	target      []rune
	typed       []rune
	state       State
	startedAt   time.Time
	elapsed     time.Duration
	maxOvertype int
	clock       Clock
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides time.Now.
func WithClock(clock Clock) Option {
	return func(s *Session) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithMaxOvertype limits how far input may run past the target.
func WithMaxOvertype(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.maxOvertype = n
		}
	}
}

// New creates an idle round for target.
func New(difficulty, target string, opts ...Option) *Session {
	s := &Session{
		difficulty:  difficulty,
		target:      []rune(target),
		maxOvertype: DefaultMaxOvertype,
		clock:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Retry returns a fresh idle round with the same target and settings.
func (s *Session) Retry() *Session {
	return &Session{
		difficulty:  s.difficulty,
		target:      s.target,
		maxOvertype: s.maxOvertype,
		clock:       s.clock,
	}
}

// Difficulty returns the tier of the round.
func (s *Session) Difficulty() string { return s.difficulty }

// Target returns the phrase to type.
func (s *Session) Target() string { return string(s.target) }

// TargetRunes returns the target as runes. The slice must not be modified.
func (s *Session) TargetRunes() []rune { return s.target }

// TypedRunes returns the typed runes. The slice must not be modified.
func (s *Session) TypedRunes() []rune { return s.typed }

// State returns the current round state.
func (s *Session) State() State { return s.state }

// Type appends runes. The first accepted rune starts the timer.
func (s *Session) Type(runes []rune) {
	if s.state == Stopped {
		return
	}
	limit := len(s.target) + s.maxOvertype
	for _, r := range runes {
		if len(s.typed) >= limit {
			return
		}
		if s.state == Idle {
			s.state = Running
			s.startedAt = s.clock()
		}
		s.typed = append(s.typed, r)
	}
}

// Backspace removes the last typed rune.
func (s *Session) Backspace() {
	if s.state == Stopped || len(s.typed) == 0 {
		return
	}
	s.typed = s.typed[:len(s.typed)-1]
}

// Elapsed is live while running and frozen once stopped.
func (s *Session) Elapsed() time.Duration {
	switch s.state {
	case Running:
		d := s.clock().Sub(s.startedAt)
		if d < 0 {
			return 0
		}
		return d
	case Stopped:
		return s.elapsed
	default:
		return 0
	}
}

// Tick returns the elapsed time to display at now without changing the round.
func (s *Session) Tick(now time.Time) time.Duration {
	if s.state != Running {
		return s.Elapsed()
	}
	d := now.Sub(s.startedAt)
	if d < 0 {
		return 0
	}
	return d
}

// LiveAccuracy scores the current input without stopping the round.
func (s *Session) LiveAccuracy() float64 {
	return scoring.ComputeAccuracy(string(s.target), string(s.typed))
}

// Stop freezes the elapsed time and scores the round. Stopping an already
// stopped round re-scores the same snapshot.
func (s *Session) Stop() model.Round {
	if s.state != Stopped {
		s.elapsed = s.Elapsed()
		s.state = Stopped
	}
	in := scoring.Input{
		Target:  string(s.target),
		Typed:   string(s.typed),
		Elapsed: s.elapsed,
	}
	return model.Round{
		StartedAt:  s.startedAt,
		Difficulty: s.difficulty,
		Target:     in.Target,
		Typed:      scoring.TrimTyped(in.Typed),
		Elapsed:    s.elapsed,
		Result:     scoring.Score(in),
	}
}
