// Package report turns scored rounds into user-facing text.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typeracer/internal/model"
	"github.com/verte-zerg/typeracer/internal/scoring"
)

// Presenter renders a stopped round.
type Presenter interface {
	Present(round model.Round) string
}

// Message returns the user-visible text for an outcome.
func Message(o scoring.Outcome) string {
	switch o {
	case scoring.Perfect:
		return "Perfect! You typed it exactly right."
	case scoring.CapitalizationOnly:
		return "So close! Only the capitalization of the first letter is off."
	case scoring.Good:
		return "Good job! Just a few mistakes."
	default:
		return "Too many mistakes. Try again!"
	}
}

// FormatElapsed renders d as "12.3s", or "m:ss.t" from one minute up.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	tenths := d.Milliseconds() / 100
	if d < time.Minute {
		return fmt.Sprintf("%d.%ds", tenths/10, tenths%10)
	}
	minutes := tenths / 600
	rest := tenths % 600
	return fmt.Sprintf("%d:%02d.%d", minutes, rest/10, rest%10)
}

// FormatAccuracy renders accuracy with one decimal.
func FormatAccuracy(acc float64) string {
	return fmt.Sprintf("%.1f%%", acc)
}

// TextPresenter renders rounds as plain text.
type TextPresenter struct{}

// Present implements Presenter.
func (TextPresenter) Present(round model.Round) string {
	lines := []string{
		Message(round.Result.Outcome),
		fmt.Sprintf("Outcome:  %s", round.Result.Outcome),
		fmt.Sprintf("Accuracy: %s", FormatAccuracy(round.Result.Accuracy)),
		fmt.Sprintf("WPM:      %d", round.Result.WPM),
		fmt.Sprintf("Time:     %s", FormatElapsed(round.Elapsed)),
	}
	return strings.Join(lines, "\n")
}

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	resultFrame  = lipgloss.NewStyle().Padding(1, 3).Border(lipgloss.RoundedBorder(), true)
	outcomeColor = map[scoring.Outcome]lipgloss.Color{
		scoring.Perfect:            lipgloss.Color("#52C41A"),
		scoring.CapitalizationOnly: lipgloss.Color("#C89A3A"),
		scoring.Good:               lipgloss.Color("#40A9FF"),
		scoring.TryAgain:           lipgloss.Color("#FF4D4F"),
	}
)

// OutcomeColor returns the accent color for an outcome.
func OutcomeColor(o scoring.Outcome) lipgloss.Color {
	if c, ok := outcomeColor[o]; ok {
		return c
	}
	return lipgloss.Color("#F0F0F0")
}

// StyledPresenter renders rounds as a bordered lipgloss card.
type StyledPresenter struct {
	Width int
}

// Present implements Presenter.
func (p StyledPresenter) Present(round model.Round) string {
	color := OutcomeColor(round.Result.Outcome)
	message := lipgloss.NewStyle().Foreground(color).Bold(true).Render(Message(round.Result.Outcome))
	fields := lipgloss.JoinHorizontal(lipgloss.Top,
		field("WPM", fmt.Sprintf("%d", round.Result.WPM)),
		field("Accuracy", FormatAccuracy(round.Result.Accuracy)),
		field("Time", FormatElapsed(round.Elapsed)),
	)
	body := []string{message, "", fields}
	if round.Difficulty != "" {
		body = append(body, "", mutedStyle.Render("Difficulty: "+round.Difficulty))
	}
	frame := resultFrame.BorderForeground(color)
	if p.Width > 0 {
		frame = frame.Width(p.Width)
	}
	return frame.Render(strings.Join(body, "\n"))
}

func field(label, value string) string {
	return lipgloss.NewStyle().PaddingRight(4).Render(labelStyle.Render(label) + "\n" + valueStyle.Render(value))
}
