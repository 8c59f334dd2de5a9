package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typeracer/internal/generator"
	"github.com/verte-zerg/typeracer/internal/model"
	"github.com/verte-zerg/typeracer/internal/phrases"
	"github.com/verte-zerg/typeracer/internal/scoring"
	"github.com/verte-zerg/typeracer/internal/session"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func newTestModel(t *testing.T, target string) (*Model, *testClock) {
	t.Helper()
	pools := map[phrases.Difficulty][]string{
		phrases.Easy: {target, "Another easy phrase"},
		phrases.Hard: {"A hard phrase"},
	}
	cfg := model.Config{Difficulty: "easy", MaxOvertype: 5}
	m := NewModel(cfg, pools, generator.NewWithSeed(1), nil)
	clock := &testClock{now: time.Unix(100, 0)}
	m.clock = clock.Now
	m.startRound(target)
	return m, clock
}

func typeText(m *Model, text string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return cmd
}

func press(m *Model, kt tea.KeyType) {
	m.Update(tea.KeyMsg{Type: kt})
}

func pressRune(m *Model, r rune) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestPerfectRoundThenNext(t *testing.T) {
	m, clock := newTestModel(t, "I like to eat pizza")
	if cmd := typeText(m, "I like to eat pizza"); cmd == nil {
		t.Fatalf("expected first keystroke to start the tick")
	}
	clock.now = clock.now.Add(10 * time.Second)
	press(m, tea.KeyEnter)

	if m.screen != screenResult {
		t.Fatalf("expected result screen")
	}
	rounds := m.Rounds()
	if len(rounds) != 1 {
		t.Fatalf("expected 1 round, got %d", len(rounds))
	}
	if rounds[0].Result.Outcome != scoring.Perfect || rounds[0].Result.WPM != 23 {
		t.Fatalf("unexpected result: %+v", rounds[0].Result)
	}
	if rounds[0].Elapsed != 10*time.Second {
		t.Fatalf("expected 10s elapsed, got %v", rounds[0].Elapsed)
	}

	press(m, tea.KeyEnter)
	if m.screen != screenTyping {
		t.Fatalf("expected typing screen after continue")
	}
	if m.session.Target() != "Another easy phrase" {
		t.Fatalf("expected a new phrase, got %q", m.session.Target())
	}
}

func TestStopBeforeTypingIsIgnored(t *testing.T) {
	m, _ := newTestModel(t, "abc")
	press(m, tea.KeyEnter)
	if m.screen != screenTyping || len(m.Rounds()) != 0 {
		t.Fatalf("expected stop to be ignored on an idle round")
	}
	if m.notice == "" {
		t.Fatalf("expected a notice")
	}
}

func TestTryAgainForcesRetry(t *testing.T) {
	m, clock := newTestModel(t, "The cat sat on the mat")
	typeText(m, "xyz")
	clock.now = clock.now.Add(time.Second)
	press(m, tea.KeyEnter)
	if m.last == nil || m.last.Result.Outcome != scoring.TryAgain {
		t.Fatalf("expected try-again outcome")
	}

	pressRune(m, 'n')
	if m.screen != screenResult || m.notice == "" {
		t.Fatalf("expected next to be refused after try-again")
	}

	press(m, tea.KeyEnter)
	if m.screen != screenTyping {
		t.Fatalf("expected retry on continue")
	}
	if m.session.Target() != "The cat sat on the mat" || m.session.State() != session.Idle {
		t.Fatalf("expected a fresh round on the same phrase")
	}
}

func TestCapitalizationOnlyRound(t *testing.T) {
	m, clock := newTestModel(t, "The cat sat on the mat")
	typeText(m, "the cat sat on the mat")
	clock.now = clock.now.Add(5 * time.Second)
	press(m, tea.KeyEnter)
	if m.last.Result.Outcome != scoring.CapitalizationOnly {
		t.Fatalf("expected capitalization-only outcome, got %s", m.last.Result.Outcome)
	}
	pressRune(m, 'r')
	if m.session.Target() != "The cat sat on the mat" || m.screen != screenTyping {
		t.Fatalf("expected retry of the same phrase")
	}
}

func TestSpaceAndBackspace(t *testing.T) {
	m, _ := newTestModel(t, "a b")
	typeText(m, "a")
	press(m, tea.KeySpace)
	typeText(m, "x")
	press(m, tea.KeyBackspace)
	if got := string(m.session.TypedRunes()); got != "a " {
		t.Fatalf("expected %q, got %q", "a ", got)
	}
}

func TestCycleDifficultySkipsEmptyTiers(t *testing.T) {
	m, _ := newTestModel(t, "abc")
	press(m, tea.KeyShiftTab)
	if m.difficulty != phrases.Hard {
		t.Fatalf("expected hard (intermediate has no phrases), got %s", m.difficulty)
	}
	if m.session.Target() != "A hard phrase" {
		t.Fatalf("expected hard phrase, got %q", m.session.Target())
	}
}

func TestTickUpdatesElapsedWhileRunning(t *testing.T) {
	m, clock := newTestModel(t, "abc")
	typeText(m, "a")
	_, cmd := m.Update(tickMsg(clock.now.Add(1500 * time.Millisecond)))
	if cmd == nil {
		t.Fatalf("expected tick to reschedule while running")
	}
	if m.elapsed != 1500*time.Millisecond {
		t.Fatalf("expected 1.5s elapsed, got %v", m.elapsed)
	}
	press(m, tea.KeyEnter)
	if _, cmd := m.Update(tickMsg(clock.now)); cmd != nil {
		t.Fatalf("expected tick loop to stop after the round")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, "abc")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestViewRendersResult(t *testing.T) {
	m, clock := newTestModel(t, "abc")
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	typeText(m, "abc")
	clock.now = clock.now.Add(time.Second)
	press(m, tea.KeyEnter)
	out := m.View()
	if !containsAll(out, []string{"Perfect!", "100.0%", "Rounds 1"}) {
		t.Fatalf("unexpected view:\n%s", out)
	}
}

func TestLastRoundIsIndependentOfHistory(t *testing.T) {
	m, clock := newTestModel(t, "abc")
	typeText(m, "abc")
	clock.now = clock.now.Add(time.Second)
	press(m, tea.KeyEnter)
	if m.last == &m.rounds[0] {
		t.Fatalf("expected last round to be a copy")
	}
	m.rounds[0].Result.WPM = -1
	if m.last.Result.WPM != 36 {
		t.Fatalf("expected last round to keep its result, got %d WPM", m.last.Result.WPM)
	}
}
