// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/typeracer/internal/generator"
	"github.com/verte-zerg/typeracer/internal/model"
	"github.com/verte-zerg/typeracer/internal/phrases"
	"github.com/verte-zerg/typeracer/internal/report"
	"github.com/verte-zerg/typeracer/internal/session"
)

const defaultTickInterval = 100 * time.Millisecond

type screen int

const (
	screenTyping screen = iota
	screenResult
)

type tickMsg time.Time

// Model implements the Bubble Tea typing UI.
type Model struct {
	config    model.Config
	pools     map[phrases.Difficulty][]string
	gen       *generator.Generator
	logger    *zap.Logger
	presenter report.Presenter
	clock     session.Clock

	width  int
	height int

	difficulty phrases.Difficulty
	session    *session.Session
	screen     screen
	elapsed    time.Duration
	ticking    bool
	tick       time.Duration

	last   *model.Round
	rounds []model.Round
	notice string

	keys keyMap
	help help.Model
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	overtypeStyle    = incorrectStyle.Copy().Strikethrough(true)
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	noticeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// NewModel constructs a typing TUI model. pools must hold at least one phrase
// for the configured difficulty.
func NewModel(cfg model.Config, pools map[phrases.Difficulty][]string, gen *generator.Generator, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	difficulty, err := phrases.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		difficulty = phrases.Easy
	}
	tick := time.Duration(cfg.TickMs) * time.Millisecond
	if tick <= 0 {
		tick = defaultTickInterval
	}
	m := &Model{
		config:     cfg,
		pools:      pools,
		gen:        gen,
		logger:     logger,
		presenter:  report.StyledPresenter{},
		clock:      time.Now,
		difficulty: difficulty,
		tick:       tick,
		keys:       newKeyMap(),
		help:       help.New(),
	}
	m.nextPhrase()
	return m
}

// Rounds returns the rounds stopped during this run.
func (m *Model) Rounds() []model.Round {
	return append([]model.Round(nil), m.rounds...)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		if m.session.State() != session.Running {
			m.ticking = false
			return m, nil
		}
		m.elapsed = m.session.Tick(time.Time(msg))
		return m, m.tickCmd()
	case tea.KeyMsg:
		if m.screen == screenResult {
			return m.updateResult(msg)
		}
		return m.updateTyping(msg)
	default:
		return m, nil
	}
}

func (m *Model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Stop):
		if m.session.State() == session.Idle {
			m.notice = "Start typing first."
			return m, nil
		}
		m.finishRound()
		return m, nil
	case key.Matches(msg, m.keys.NewPhrase):
		m.nextPhrase()
		return m, nil
	case key.Matches(msg, m.keys.Difficulty):
		m.cycleDifficulty()
		return m, nil
	case key.Matches(msg, m.keys.Backspace):
		m.session.Backspace()
		return m, nil
	}
	switch msg.Type {
	case tea.KeySpace:
		return m, m.handleRunes([]rune{' '})
	case tea.KeyRunes:
		return m, m.handleRunes(msg.Runes)
	default:
		return m, nil
	}
}

func (m *Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mustRetry := m.last != nil && m.last.Result.Outcome.RequiresRetry()
	switch {
	case key.Matches(msg, m.keys.QuitResult):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Continue):
		if mustRetry {
			m.retry()
		} else {
			m.nextPhrase()
		}
	case key.Matches(msg, m.keys.Retry):
		m.retry()
	case key.Matches(msg, m.keys.Next):
		if mustRetry {
			m.notice = "Accuracy below 90%. Retry this phrase first."
			return m, nil
		}
		m.nextPhrase()
	case key.Matches(msg, m.keys.Difficulty):
		m.cycleDifficulty()
	}
	return m, nil
}

func (m *Model) handleRunes(runes []rune) tea.Cmd {
	wasIdle := m.session.State() == session.Idle
	m.session.Type(runes)
	m.notice = ""
	if wasIdle && m.session.State() == session.Running {
		m.elapsed = 0
		return m.startTicking()
	}
	return nil
}

func (m *Model) startTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return m.tickCmd()
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) finishRound() {
	round := m.session.Stop()
	m.elapsed = round.Elapsed
	m.rounds = append(m.rounds, round)
	last := round
	m.last = &last
	m.screen = screenResult
	m.notice = ""
	m.logger.Info("round stopped",
		zap.String("difficulty", round.Difficulty),
		zap.Float64("accuracy", round.Result.Accuracy),
		zap.Int("wpm", round.Result.WPM),
		zap.Stringer("outcome", round.Result.Outcome),
		zap.Duration("elapsed", round.Elapsed),
	)
}

func (m *Model) retry() {
	m.session = m.session.Retry()
	m.resetRoundState()
	m.logger.Debug("round retried", zap.String("target", m.session.Target()))
}

func (m *Model) nextPhrase() {
	previous := ""
	if m.session != nil {
		previous = m.session.Target()
	}
	target, ok := m.gen.Pick(m.pools[m.difficulty], previous)
	if !ok {
		m.logger.Warn("no phrases for difficulty", zap.Stringer("difficulty", m.difficulty))
		target = previous
	}
	m.startRound(target)
}

func (m *Model) startRound(target string) {
	m.session = session.New(m.difficulty.String(), target,
		session.WithClock(m.clock),
		session.WithMaxOvertype(m.config.MaxOvertype),
	)
	m.resetRoundState()
	m.logger.Debug("round ready", zap.Stringer("difficulty", m.difficulty), zap.String("target", target))
}

func (m *Model) resetRoundState() {
	m.screen = screenTyping
	m.elapsed = 0
	m.notice = ""
}

func (m *Model) cycleDifficulty() {
	next := m.difficulty
	for range phrases.All() {
		next = next.Next()
		if len(m.pools[next]) > 0 {
			break
		}
	}
	if len(m.pools[next]) == 0 || next == m.difficulty {
		m.notice = "No other difficulty has phrases."
		return
	}
	m.difficulty = next
	m.nextPhrase()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.session == nil || len(m.session.TargetRunes()) == 0 {
		return "No phrases available."
	}
	targetRunes := m.session.TargetRunes()
	inputRunes := m.session.TypedRunes()
	cursorIndex := -1
	if m.screen == screenTyping && len(inputRunes) < len(targetRunes) {
		cursorIndex = len(inputRunes)
	}
	styledRunes := buildStyledRunes(targetRunes, inputRunes, cursorIndex)
	if m.width == 0 || m.height == 0 {
		return renderStyledRunes(styledRunes)
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapStyledRunes(styledRunes, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	if m.screen == screenResult && m.last != nil {
		card := m.presenter.Present(*m.last)
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", card)
	}
	if m.notice != "" {
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", noticeStyle.Render(m.notice))
	}
	footer := m.renderFooter() + "\n" + m.renderHelp()
	if m.height < 4 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 2
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLines := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footer)
	return body + "\n" + footerLines
}

func (m *Model) renderHelp() string {
	if m.screen == screenResult {
		mustRetry := m.last != nil && m.last.Result.Outcome.RequiresRetry()
		return m.help.ShortHelpView(m.keys.resultHelp(mustRetry))
	}
	return m.help.ShortHelpView(m.keys.typingHelp())
}

func (m *Model) renderFooter() string {
	if m.session == nil {
		return ""
	}
	elapsed := m.elapsed
	if m.session.State() == session.Stopped {
		elapsed = m.session.Elapsed()
	}
	segments := []string{
		fmt.Sprintf("Difficulty %s", m.difficulty),
		fmt.Sprintf("Time %s", report.FormatElapsed(elapsed)),
	}
	if m.screen == screenTyping {
		segments = append(segments, fmt.Sprintf("Accuracy %s", report.FormatAccuracy(m.session.LiveAccuracy())))
	}
	if m.last != nil {
		segments = append(segments, fmt.Sprintf("Last %d WPM · %s", m.last.Result.WPM, report.FormatAccuracy(m.last.Result.Accuracy)))
	}
	segments = append(segments, fmt.Sprintf("Rounds %d", len(m.rounds)))
	return footerStyle.Render(strings.Join(segments, "  "))
}
