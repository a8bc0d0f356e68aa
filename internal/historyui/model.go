// Package historyui provides the Bubble Tea history browser.
package historyui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/readability/internal/model"
	"github.com/verte-zerg/readability/internal/report"
)

const timeLayout = "2006-01-02 15:04"

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// Model implements the Bubble Tea history browser.
type Model struct {
	report     report.Report
	table      table.Model
	showDetail bool

	width  int
	height int
}

// NewModel constructs a history browser over a prepared report.
func NewModel(r report.Report) *Model {
	m := &Model{report: r}
	m.table = table.New(
		table.WithColumns(columns()),
		table.WithRows(buildRows(r.Analyses)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	m.table.SetStyles(tableStyles())
	if len(r.Analyses) > 0 {
		m.table.GotoBottom()
	}
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
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			m.showDetail = !m.showDetail
			m.updateLayout()
			return m, nil
		case "esc":
			m.showDetail = false
			m.updateLayout()
			return m, nil
		case "g", "home":
			m.table.GotoTop()
			return m, nil
		case "G", "end":
			m.table.GotoBottom()
			return m, nil
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if len(m.report.Analyses) == 0 {
		return "No analyses found.\n"
	}
	parts := []string{m.renderHeader(), m.table.View()}
	if m.showDetail {
		if a, ok := m.selected(); ok {
			parts = append(parts, renderDetail(a, m.width))
		}
	}
	parts = append(parts, headerStyle.Render("↑/↓: move  enter: details  g/G: top/bottom  q: quit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) selected() (model.Analysis, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.report.Analyses) {
		return model.Analysis{}, false
	}
	return m.report.Analyses[idx], true
}

func (m *Model) renderHeader() string {
	summary := fmt.Sprintf("%d analyses", m.report.Total)
	if len(m.report.Grades) > 0 {
		summary += fmt.Sprintf("  most common: %s", m.report.Grades[0].Grade)
	}
	if spark := report.Sparkline(m.report.Trend); spark != "" {
		summary += fmt.Sprintf("  trend: [%s]", spark)
	}
	return titleStyle.Render("Readability history") + "\n" + headerStyle.Render(summary)
}

func (m *Model) updateLayout() {
	if m.height == 0 {
		return
	}
	reserved := 4
	if m.showDetail {
		reserved += 8
	}
	m.table.SetHeight(maxInt(3, m.height-reserved))
	if m.width > 0 {
		m.table.SetWidth(m.width)
	}
}

func renderDetail(a model.Analysis, width int) string {
	lines := []string{
		labelStyle.Render("Grade ") + valueStyle.Render(a.Grade) +
			labelStyle.Render("  Index ") + valueStyle.Render(report.FormatIndex(a)),
		labelStyle.Render(fmt.Sprintf("Letters %d  Words %d  Sentences %d", a.Letters, a.Words, a.Sentences)),
		"",
		a.Text,
	}
	style := detailStyle
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func columns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 5},
		{Title: "When", Width: 16},
		{Title: "Grade", Width: 14},
		{Title: "Index", Width: 5},
		{Title: "Words", Width: 5},
		{Title: "Text", Width: 40},
	}
}

func buildRows(analyses []model.Analysis) []table.Row {
	rows := make([]table.Row, 0, len(analyses))
	for _, a := range analyses {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", a.ID),
			a.CreatedAt.Local().Format(timeLayout),
			a.Grade,
			report.FormatIndex(a),
			fmt.Sprintf("%d", a.Words),
			a.Text,
		})
	}
	return rows
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

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
