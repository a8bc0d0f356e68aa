package report

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Grade", "Index", "Words"}
	rows := [][]string{
		{"Grade 5", "5", "56"},
		{"Before Grade 1", "-10", "2"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Grade          Index Words" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "Grade 5            5    56" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Before Grade 1   -10     2" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestDisplayWidthCountsWideRunes(t *testing.T) {
	if got := displayWidth("日本"); got != 4 {
		t.Fatalf("expected width 4, got %d", got)
	}
	headers := []string{"Text", "N"}
	rows := [][]string{{"日本", "1"}, {"abc", "2"}}
	lines := formatTable(headers, rows, map[int]bool{1: true})
	if lines[1] != "日本 1" || lines[2] != "abc  2" {
		t.Fatalf("unexpected wide rune alignment: %q", lines)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("unexpected truncate of short value: %q", got)
	}
	got := truncate("Congratulations! Today is your day.", 10)
	if displayWidth(got) > 10 || got[len(got)-len("…"):] != "…" {
		t.Fatalf("unexpected truncated value: %q", got)
	}
}
