// Package report renders a dashboard view for the terminal.
package report

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/surveyadmin/backend/internal/dashboard"
)

const barWidth = 30

// Render returns the view as terminal text.
func Render(v dashboard.View, noColor bool) string {
	parts := []string{renderHeader(v, noColor)}

	switch v.State {
	case dashboard.StateLoading:
		parts = append(parts, stylize("Loading...", noColor, lipgloss.Color("244")))
	case dashboard.StateEmpty:
		parts = append(parts,
			v.Empty.Message,
			stylize(v.Empty.ActionLabel+": "+v.Empty.ActionURL, noColor, lipgloss.Color("39")),
		)
	case dashboard.StateError:
		parts = append(parts, stylize("Error: "+v.Error.Message, noColor, lipgloss.Color("196")))
		for _, h := range v.Error.Hints {
			parts = append(parts, "  - "+h)
		}
	case dashboard.StateReady:
		parts = append(parts,
			renderTotals(*v.Totals, noColor),
			renderSeries(v.Charts.AnswersByLevel, noColor),
			renderSeries(v.Charts.Correctness, noColor),
			renderSeries(v.Charts.AnswersByCategory, noColor),
			renderTables(*v.Tables, noColor),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func renderHeader(v dashboard.View, noColor bool) string {
	line := "Survey analytics | State: " + string(v.State)
	if !v.UpdatedAt.IsZero() {
		line += " | Updated: " + v.UpdatedAt.Format("2006-01-02 15:04:05")
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

func renderTotals(t dashboard.Totals, noColor bool) string {
	line := "Questions: " + strconv.Itoa(t.TotalQuestions) +
		" Responses: " + strconv.Itoa(t.TotalResponses) +
		" Answered: " + strconv.Itoa(t.TotalAnswered) +
		" Skipped: " + strconv.Itoa(t.TotalSkipped) +
		" Skip rate: " + t.OverallSkipRate + "%"
	return stylize(line, noColor, lipgloss.Color("242"))
}

func renderSeries(s dashboard.Series, noColor bool) string {
	peak := 0
	labelWidth := 0
	for _, b := range s.Buckets {
		peak = max(peak, b.Value)
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
	}

	lines := []string{"", stylize(s.Title, noColor, lipgloss.Color("252"))}
	label := lipgloss.NewStyle().Width(labelWidth + 2)
	for _, b := range s.Buckets {
		n := 0
		if peak > 0 {
			n = b.Value * barWidth / peak
		}
		bar := stylize(strings.Repeat("█", n), noColor, lipgloss.Color("42"))
		lines = append(lines, label.Render(b.Label)+bar+" "+strconv.Itoa(b.Value))
	}
	return strings.Join(lines, "\n")
}

func renderTables(t dashboard.Tables, noColor bool) string {
	var sections []string

	rows := make([][]string, 0, len(t.MostSkipped))
	for _, r := range t.MostSkipped {
		rows = append(rows, []string{strconv.Itoa(r.Rank), r.Question, r.Category, r.Level, r.SkipRate + "%"})
	}
	sections = append(sections, renderTable("Most skipped questions",
		[]string{"#", "Question", "Category", "Level", "Skip rate"}, rows, noColor))

	sections = append(sections,
		renderSkipRates("Skip rate by category", t.CategorySkipRates, noColor),
		renderSkipRates("Skip rate by level", t.LevelSkipRates, noColor),
	)

	rows = make([][]string, 0, len(t.Leaderboard))
	for _, r := range t.Leaderboard {
		rows = append(rows, []string{strconv.Itoa(r.Rank), r.Category, strconv.Itoa(r.Answered), strconv.Itoa(r.Correct), r.Accuracy + "%"})
	}
	sections = append(sections, renderTable("Category leaderboard",
		[]string{"#", "Category", "Answered", "Correct", "Accuracy"}, rows, noColor))

	rows = make([][]string, 0, len(t.RecentAnswers))
	for _, r := range t.RecentAnswers {
		result := "incorrect"
		if r.Correct {
			result = "correct"
		}
		rows = append(rows, []string{r.AnsweredAt.Format("2006-01-02 15:04"), r.Question, result})
	}
	sections = append(sections, renderTable("Recent answers",
		[]string{"When", "Question", "Result"}, rows, noColor))

	return strings.Join(sections, "\n")
}

func renderSkipRates(title string, groups []dashboard.SkipRateRow, noColor bool) string {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{strconv.Itoa(g.Rank), g.Name, strconv.Itoa(g.Answered), strconv.Itoa(g.Skipped), g.SkipRate + "%"})
	}
	return renderTable(title, []string{"#", "Name", "Answered", "Skipped", "Skip rate"}, rows, noColor)
}

// renderTable lays out rows in left-aligned columns sized to their widest cell.
func renderTable(title string, header []string, rows [][]string, noColor bool) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	line := func(cells []string) string {
		out := make([]string, len(cells))
		for i, c := range cells {
			out[i] = lipgloss.NewStyle().Width(widths[i] + 2).Render(c)
		}
		return strings.TrimRight(strings.Join(out, ""), " ")
	}

	lines := []string{"", stylize(title, noColor, lipgloss.Color("252")), stylize(line(header), noColor, lipgloss.Color("244"))}
	if len(rows) == 0 {
		lines = append(lines, "(none)")
	}
	for _, row := range rows {
		lines = append(lines, line(row))
	}
	return strings.Join(lines, "\n")
}

func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
