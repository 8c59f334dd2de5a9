// Package stats summarizes the rounds played during one run.
package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/typeracer/internal/model"
	"github.com/verte-zerg/typeracer/internal/report"
	"github.com/verte-zerg/typeracer/internal/scoring"
)

const sparkChars = " .:-=+*#%@"

const colorReset = "\x1b[0m"

var outcomeANSI = map[scoring.Outcome]string{
	scoring.Perfect:            "\x1b[32m",
	scoring.CapitalizationOnly: "\x1b[33m",
	scoring.Good:               "\x1b[36m",
	scoring.TryAgain:           "\x1b[31m",
}

// Summary aggregates a run.
type Summary struct {
	Rounds      int
	AvgWPM      float64
	BestWPM     int
	AvgAccuracy float64
	Outcomes    map[scoring.Outcome]int
}

// Summarize aggregates rounds.
func Summarize(rounds []model.Round) Summary {
	s := Summary{Outcomes: map[scoring.Outcome]int{}}
	if len(rounds) == 0 {
		return s
	}
	var totalWPM, totalAcc float64
	for _, r := range rounds {
		totalWPM += float64(r.Result.WPM)
		totalAcc += r.Result.Accuracy
		if r.Result.WPM > s.BestWPM {
			s.BestWPM = r.Result.WPM
		}
		s.Outcomes[r.Result.Outcome]++
	}
	s.Rounds = len(rounds)
	s.AvgWPM = totalWPM / float64(len(rounds))
	s.AvgAccuracy = totalAcc / float64(len(rounds))
	return s
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints the run summary and a per-round table.
func RenderSummary(w io.Writer, rounds []model.Round) error {
	return RenderSummaryWithColor(w, rounds, false)
}

// RenderSummaryWithColor prints the run summary with optional forced color output.
func RenderSummaryWithColor(w io.Writer, rounds []model.Round, forceColor bool) error {
	if len(rounds) == 0 {
		_, err := fmt.Fprintln(w, "No rounds played.")
		return err
	}
	s := Summarize(rounds)
	lines := []string{
		"Run Summary",
		fmt.Sprintf("Rounds: %d", s.Rounds),
		fmt.Sprintf("Avg WPM: %.1f", s.AvgWPM),
		fmt.Sprintf("Best WPM: %d", s.BestWPM),
		fmt.Sprintf("Avg Accuracy: %.1f%%", s.AvgAccuracy),
		fmt.Sprintf("Perfect: %d  Caps only: %d  Good: %d  Try again: %d",
			s.Outcomes[scoring.Perfect], s.Outcomes[scoring.CapitalizationOnly], s.Outcomes[scoring.Good], s.Outcomes[scoring.TryAgain]),
	}
	if len(rounds) > 1 {
		wpms := make([]float64, len(rounds))
		for i, r := range rounds {
			wpms[i] = float64(r.Result.WPM)
		}
		lines = append(lines, "WPM trend: "+Sparkline(wpms))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return renderRoundTable(w, rounds, shouldUseColor(w, forceColor))
}

func renderRoundTable(w io.Writer, rounds []model.Round, useColor bool) error {
	headers := []string{"#", "Difficulty", "Time", "WPM", "Accuracy", "Outcome"}
	rows := make([][]string, 0, len(rounds))
	for i, r := range rounds {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.Difficulty,
			report.FormatElapsed(r.Elapsed),
			fmt.Sprintf("%d", r.Result.WPM),
			report.FormatAccuracy(r.Result.Accuracy),
			r.Result.Outcome.String(),
		})
	}
	var decorate cellDecorator
	if useColor {
		decorate = func(row, col int, cell string) string {
			if row < 0 || col != 5 {
				return cell
			}
			return outcomeANSI[rounds[row].Result.Outcome] + cell + colorReset
		}
	}
	rightAlign := map[int]bool{0: true, 2: true, 3: true, 4: true}
	for _, line := range formatTable(headers, rows, rightAlign, decorate) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
