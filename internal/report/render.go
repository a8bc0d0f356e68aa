package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/readability/internal/model"
)

const (
	sparkChars   = " .:-=+*#%@"
	excerptWidth = 40
	barWidth     = 30
	timeLayout   = "2006-01-02 15:04"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
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

// ShouldUseColor reports whether styled output should be written to w.
func ShouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func style(s lipgloss.Style, text string, useColor bool) string {
	if !useColor {
		return text
	}
	return s.Render(text)
}

// RenderSummary prints totals, the grade distribution, and the index trend.
func RenderSummary(w io.Writer, r Report, useColor bool) error {
	if len(r.Analyses) == 0 {
		_, err := fmt.Fprintln(w, "No analyses found.")
		return err
	}
	lines := []string{style(titleStyle, "Summary", useColor)}
	if r.Total > len(r.Analyses) {
		lines = append(lines, fmt.Sprintf("Analyses: %d (showing last %d)", r.Total, len(r.Analyses)))
	} else {
		lines = append(lines, fmt.Sprintf("Analyses: %d", len(r.Analyses)))
	}

	var sum float64
	computable := 0
	for _, a := range r.Analyses {
		if a.Computable {
			sum += float64(a.Index)
			computable++
		}
	}
	if computable > 0 {
		lines = append(lines, fmt.Sprintf("Avg index: %.2f", sum/float64(computable)))
	} else {
		lines = append(lines, "Avg index: n/a")
	}
	if len(r.Grades) > 0 {
		lines = append(lines, fmt.Sprintf("Most common: %s", r.Grades[0].Grade))
	}
	if spark := Sparkline(r.Trend); spark != "" {
		lines = append(lines, fmt.Sprintf("Trend: [%s]", spark))
	}
	lines = append(lines, "")

	if len(r.Grades) > 0 {
		lines = append(lines, style(titleStyle, "Grades", useColor))
		maxCount := r.Grades[0].Count
		rows := make([][]string, 0, len(r.Grades))
		for _, g := range r.Grades {
			bar := 1
			if maxCount > 0 {
				bar = int(math.Ceil(float64(g.Count) / float64(maxCount) * barWidth))
			}
			rows = append(rows, []string{g.Grade, fmt.Sprintf("%d", g.Count), strings.Repeat("#", bar)})
		}
		lines = append(lines, formatTable(nil, rows, map[int]bool{1: true})...)
		lines = append(lines, "")
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderHistory prints one row per analysis.
func RenderHistory(w io.Writer, analyses []model.Analysis, useColor bool) error {
	if len(analyses) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, style(titleStyle, "History", useColor)); err != nil {
		return err
	}
	headers := []string{"ID", "When", "Grade", "Index", "Letters", "Words", "Sentences", "Text"}
	rows := make([][]string, 0, len(analyses))
	for _, a := range analyses {
		rows = append(rows, []string{
			fmt.Sprintf("%d", a.ID),
			a.CreatedAt.Local().Format(timeLayout),
			a.Grade,
			FormatIndex(a),
			fmt.Sprintf("%d", a.Letters),
			fmt.Sprintf("%d", a.Words),
			fmt.Sprintf("%d", a.Sentences),
			truncate(a.Text, excerptWidth),
		})
	}
	rightAlign := map[int]bool{0: true, 3: true, 4: true, 5: true, 6: true}
	lines := formatTable(headers, rows, rightAlign)
	for i, line := range lines {
		if i == 0 {
			line = style(mutedStyle, line, useColor)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatIndex renders the index of an analysis, or "-" when it had no words.
func FormatIndex(a model.Analysis) string {
	if !a.Computable {
		return "-"
	}
	return fmt.Sprintf("%d", a.Index)
}
