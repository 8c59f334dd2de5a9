// Package libraryui provides the Bubble Tea browser for the custom phrase library.
package libraryui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typeracer/internal/model"
	"github.com/verte-zerg/typeracer/internal/phrases"
	"github.com/verte-zerg/typeracer/internal/store"
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	modalStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// Library is the phrase storage the browser edits.
type Library interface {
	ListPhrases(ctx context.Context, difficulty string) ([]model.Phrase, error)
	AddPhrase(ctx context.Context, difficulty, text string) (int64, error)
	RemovePhrase(ctx context.Context, id int64) error
}

// Model implements the Bubble Tea phrase library UI.
type Model struct {
	lib Library

	tiers     []phrases.Difficulty
	activeTab int
	list      []model.Phrase
	table     table.Model

	width  int
	height int

	addMode  bool
	input    textinput.Model
	inputErr string

	status string
	errMsg string
}

// NewModel constructs a library browser starting on the given difficulty tab.
func NewModel(lib Library, start phrases.Difficulty) *Model {
	m := &Model{
		lib:   lib,
		tiers: phrases.All(),
		table: buildTable(nil, 0, 10),
		input: newInput("Phrase: "),
	}
	for i, d := range m.tiers {
		if d == start {
			m.activeTab = i
		}
	}
	m.refresh()
	return m
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
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.addMode {
			return m.updateAdd(msg)
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "left", "h":
			m.moveTab(-1)
			return m, nil
		case "right", "l":
			m.moveTab(1)
			return m, nil
		case "a":
			return m.startAdd()
		case "d", "x":
			m.removeSelected()
			return m, nil
		case "g", "home":
			m.table.GotoTop()
			return m, nil
		case "G", "end":
			m.table.GotoBottom()
			return m, nil
		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.addMode {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderAddModal())
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderTabs(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

// Difficulty returns the difficulty of the active tab.
func (m *Model) Difficulty() phrases.Difficulty {
	return m.tiers[m.activeTab]
}

func (m *Model) moveTab(delta int) {
	m.activeTab = (m.activeTab + delta + len(m.tiers)) % len(m.tiers)
	m.status = ""
	m.refresh()
}

func (m *Model) refresh() {
	list, err := m.lib.ListPhrases(context.Background(), m.Difficulty().String())
	if err != nil {
		m.errMsg = err.Error()
		list = nil
	} else {
		m.errMsg = ""
	}
	m.list = list
	m.table.SetRows(buildRows(list))
	if len(list) > 0 {
		m.table.SetCursor(minInt(maxInt(0, m.table.Cursor()), len(list)-1))
	}
}

func (m *Model) startAdd() (tea.Model, tea.Cmd) {
	m.addMode = true
	m.inputErr = ""
	m.input.SetValue("")
	return m, m.input.Focus()
}

func (m *Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.addMode = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		if err := m.addPhrase(m.input.Value()); err != nil {
			m.inputErr = err.Error()
			return m, nil
		}
		m.addMode = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) addPhrase(raw string) error {
	text := phrases.Normalize(raw)
	if err := phrases.Validate(text); err != nil {
		return err
	}
	id, err := m.lib.AddPhrase(context.Background(), m.Difficulty().String(), text)
	if err != nil {
		if errors.Is(err, store.ErrDuplicatePhrase) {
			return fmt.Errorf("phrase already exists")
		}
		return err
	}
	m.refresh()
	m.status = fmt.Sprintf("Added phrase %d", id)
	return nil
}

func (m *Model) removeSelected() {
	row := m.table.SelectedRow()
	if row == nil {
		m.status = "Nothing to remove."
		return
	}
	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		m.errMsg = fmt.Sprintf("invalid phrase id %q", row[0])
		return
	}
	if err := m.lib.RemovePhrase(context.Background(), id); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.refresh()
	m.status = fmt.Sprintf("Removed phrase %d", id)
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 2
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	_, bodyHeight, _ := m.layoutHeights()
	textWidth := maxInt(10, m.width-6-12-3)
	m.table.SetColumns(columns(textWidth))
	m.table.SetWidth(m.width)
	m.table.SetHeight(maxInt(1, bodyHeight-1))
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tiers))
	for i, d := range m.tiers {
		label := d.String()
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(label))
		} else {
			parts = append(parts, inactiveNavStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderBody() string {
	if len(m.list) == 0 {
		return headerStyle.Render(fmt.Sprintf("No custom %s phrases. Press a to add one.", m.Difficulty()))
	}
	return m.table.View()
}

func (m *Model) renderFooter() string {
	help := headerStyle.Render("Nav: left/right  Scroll: up/down  Add: a  Remove: d  Quit: q")
	switch {
	case m.errMsg != "":
		return help + "\n" + errorStyle.Render(m.errMsg)
	case m.status != "":
		return help + "\n" + statusStyle.Render(m.status)
	default:
		return help
	}
}

func (m *Model) renderAddModal() string {
	lines := []string{
		fmt.Sprintf("Add %s phrase", m.Difficulty()),
		"",
		m.input.View(),
	}
	if m.inputErr != "" {
		lines = append(lines, "", errorStyle.Render(m.inputErr))
	}
	lines = append(lines, "", headerStyle.Render("Save: enter  Cancel: esc"))
	return modalStyle.Width(modalWidth(m.width)).Render(strings.Join(lines, "\n"))
}

func newInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = phrases.MaxPhraseRunes
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func columns(textWidth int) []table.Column {
	return []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Added", Width: 12},
		{Title: "Text", Width: textWidth},
	}
}

func buildRows(list []model.Phrase) []table.Row {
	rows := make([]table.Row, 0, len(list))
	for _, p := range list {
		rows = append(rows, table.Row{
			strconv.FormatInt(p.ID, 10),
			p.CreatedAt.Format("2006-01-02"),
			p.Text,
		})
	}
	return rows
}

func buildTable(list []model.Phrase, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns(maxInt(10, width-21))),
		table.WithRows(buildRows(list)),
		table.WithHeight(maxInt(1, height-1)),
		table.WithFocused(true),
	)
	t.SetWidth(width)
	t.SetStyles(tableStyles())
	return t
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func modalWidth(width int) int {
	return maxInt(20, minInt(width-4, 72))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}
