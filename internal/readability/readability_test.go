package readability

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestCount(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Stats
	}{
		{name: "empty", text: "", want: Stats{}},
		{name: "spaces only", text: "    ", want: Stats{}},
		{name: "two sentences", text: "Congratulations! Today is your day.", want: Stats{Letters: 29, Words: 5, Sentences: 2}},
		{name: "question", text: "Would you like to play a game?", want: Stats{Letters: 23, Words: 7, Sentences: 1}},
		{name: "collapsed spaces", text: "Hi   there.", want: Stats{Letters: 7, Words: 2, Sentences: 1}},
		{name: "leading and trailing spaces", text: "  Leading and trailing  ", want: Stats{Letters: 18, Words: 3}},
		{name: "every terminator counts", text: "Wait... really?!", want: Stats{Letters: 10, Words: 2, Sentences: 5}},
		{name: "digits are not letters", text: "R2 D2.", want: Stats{Letters: 2, Words: 2, Sentences: 1}},
		{name: "tab is not a separator", text: "a\tb", want: Stats{Letters: 2, Words: 1}},
		{name: "non ascii bytes", text: "café", want: Stats{Letters: 3, Words: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Count(tc.text)
			if got != tc.want {
				t.Fatalf("Count(%q) = %+v, want %+v", tc.text, got, tc.want)
			}
		})
	}
}

func TestAnalyzeOutput(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{text: "Congratulations! Today is your day.", want: "Grade 6"},
		{text: "Would you like to play a game?", want: "Before Grade 1"},
		{text: "Supercalifragilisticexpialidocious", want: "Grade 16+"},
		{text: "One fish. Two fish. Red fish. Blue fish.", want: "Before Grade 1"},
		{text: "Would you like them here or there? I would not like them here or there. I would not like them anywhere.", want: "Grade 2"},
		{text: "Harry Potter was a highly unusual boy in many ways. For one thing, he hated the summer holidays more than any other time of year. For another, he really wanted to do his homework, but was forced to do it in secret, in the dead of the night. And he also happened to be a wizard.", want: "Grade 5"},
		{text: "It was a bright cold day in April, and the clocks were striking thirteen. Winston Smith, his chin nuzzled into his breast in an effort to escape the vile wind, slipped quickly through the glass doors of Victory Mansions, though not quickly enough to prevent a swirl of gritty dust from entering along with him.", want: "Grade 10"},
		{text: "A large class of computational problems involve the determination of properties of graphs, digraphs, integers, arrays of integers, finite families of finite sets, boolean formulas and elements of other countable domains.", want: "Grade 16+"},
	}
	for _, tc := range cases {
		got := Analyze(tc.text)
		if !got.Computable {
			t.Fatalf("Analyze(%q) not computable", tc.text)
		}
		if got.Grade.String() != tc.want {
			t.Fatalf("Analyze(%q) = %q (index %d), want %q", tc.text, got.Grade, got.Index, tc.want)
		}
	}
}

func TestAnalyzeBoundaryTexts(t *testing.T) {
	cases := []struct {
		text      string
		wantIndex int
		want      string
	}{
		// 17 letters over 6 words: raw index 0.86.
		{text: "abc abc abc abc abc ab", wantIndex: 1, want: "Grade 1"},
		// 21 letters over 4 words: raw index 15.07.
		{text: "abcde abcde abcde abcdef", wantIndex: 15, want: "Grade 15"},
		// 27 letters over 5 words: raw index 15.952.
		{text: "abcde abcde abcde abcdef abcdef", wantIndex: 16, want: "Grade 16+"},
	}
	for _, tc := range cases {
		got := Analyze(tc.text)
		if got.Index != tc.wantIndex {
			t.Fatalf("Analyze(%q).Index = %d, want %d", tc.text, got.Index, tc.wantIndex)
		}
		if got.Grade.String() != tc.want {
			t.Fatalf("Analyze(%q) = %q, want %q", tc.text, got.Grade, tc.want)
		}
	}
}

func TestAnalyzeWithoutWords(t *testing.T) {
	for _, text := range []string{"", " ", "     "} {
		got := Analyze(text)
		if got.Computable {
			t.Fatalf("Analyze(%q) should not be computable", text)
		}
		if got.Grade.Kind != BeforeGrade1 {
			t.Fatalf("Analyze(%q) kind = %v, want BeforeGrade1", text, got.Grade.Kind)
		}
		if got.Grade.String() != "Before Grade 1" {
			t.Fatalf("Analyze(%q) = %q", text, got.Grade)
		}
	}
}

func TestIndexNoWords(t *testing.T) {
	_, err := Index(Stats{Letters: 3, Sentences: 1})
	if !errors.Is(err, ErrNoWords) {
		t.Fatalf("expected ErrNoWords, got %v", err)
	}
	if _, err := RawIndex(Stats{}); !errors.Is(err, ErrNoWords) {
		t.Fatalf("expected ErrNoWords from RawIndex, got %v", err)
	}
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		index int
		want  string
	}{
		{index: -60, want: "Before Grade 1"},
		{index: 0, want: "Before Grade 1"},
		{index: 1, want: "Grade 1"},
		{index: 2, want: "Grade 2"},
		{index: 15, want: "Grade 15"},
		{index: 16, want: "Grade 16+"},
		{index: 184, want: "Grade 16+"},
	}
	for _, tc := range cases {
		if got := Classify(tc.index).String(); got != tc.want {
			t.Fatalf("Classify(%d) = %q, want %q", tc.index, got, tc.want)
		}
	}
}

func TestRoundIndexHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		num, den int64
		want     int
	}{
		{num: 1, den: 2, want: 1},
		{num: 3, den: 2, want: 2},
		{num: 5, den: 2, want: 3},
		{num: 31, den: 2, want: 16},
		{num: 49, den: 100, want: 0},
		{num: -1, den: 2, want: -1},
		{num: -5, den: 2, want: -3},
		{num: -49, den: 100, want: 0},
		{num: 600, den: 200, want: 3},
	}
	for _, tc := range cases {
		if got := roundIndex(tc.num, tc.den); got != tc.want {
			t.Fatalf("roundIndex(%d/%d) = %d, want %d", tc.num, tc.den, got, tc.want)
		}
	}
}

func TestIndexExactTies(t *testing.T) {
	cases := []struct {
		stats Stats
		want  int
	}{
		{stats: Stats{Letters: 40, Words: 8, Sentences: 3}, want: 3},     // 2.5
		{stats: Stats{Letters: 105, Words: 22, Sentences: 8}, want: 2},   // 1.5
		{stats: Stats{Letters: 65, Words: 10, Sentences: 2}, want: 17},   // 16.5
		{stats: Stats{Letters: 35, Words: 6}, want: 19},                  // 18.5
		{stats: Stats{Letters: 230, Words: 12, Sentences: 33}, want: 16}, // 15.5
		{stats: Stats{Letters: 25, Words: 2, Sentences: 4}, want: -2},    // -1.5
	}
	for _, tc := range cases {
		got, err := Index(tc.stats)
		if err != nil {
			t.Fatalf("Index(%+v): %v", tc.stats, err)
		}
		if got != tc.want {
			t.Fatalf("Index(%+v) = %d, want %d", tc.stats, got, tc.want)
		}
	}
}

func TestAnalyzeTieRoundsUp(t *testing.T) {
	// 40 letters, 8 words, 3 sentences: index exactly 2.5.
	text := "abcde abcde. abcde abcde. abcde abcde abcde abcde."
	got := Analyze(text)
	if got.Stats != (Stats{Letters: 40, Words: 8, Sentences: 3}) {
		t.Fatalf("Count(%q) = %+v", text, got.Stats)
	}
	if got.Index != 3 || got.Grade.String() != "Grade 3" {
		t.Fatalf("Analyze(%q) = %q (index %d), want Grade 3", text, got.Grade, got.Index)
	}

	// 230 letters, 12 words, 33 sentences: index exactly 15.5.
	word := strings.Repeat("a", 19) + "..."
	text = strings.Repeat(word+" ", 11) + strings.Repeat("a", 21)
	got = Analyze(text)
	if got.Stats != (Stats{Letters: 230, Words: 12, Sentences: 33}) {
		t.Fatalf("Count = %+v", got.Stats)
	}
	if got.Grade.String() != "Grade 16+" {
		t.Fatalf("Analyze = %q (index %d), want Grade 16+", got.Grade, got.Index)
	}
}

func TestRawIndexMatchesFormula(t *testing.T) {
	raw, err := RawIndex(Stats{Letters: 7, Words: 2, Sentences: 1})
	if err != nil {
		t.Fatalf("raw index: %v", err)
	}
	want := 0.0588*350 - 0.296*50 - 15.8
	if math.Abs(raw-want) > 1e-9 {
		t.Fatalf("RawIndex = %v, want %v", raw, want)
	}
}

func TestParseGrade(t *testing.T) {
	cases := map[string]string{
		"Before Grade 1": "Before Grade 1",
		"before":         "Before Grade 1",
		"0":              "Before Grade 1",
		"Grade 7":        "Grade 7",
		"7":              "Grade 7",
		" grade 15 ":     "Grade 15",
		"16+":            "Grade 16+",
		"Grade 16+":      "Grade 16+",
	}
	for in, want := range cases {
		got, err := ParseGrade(in)
		if err != nil {
			t.Fatalf("ParseGrade(%q): %v", in, err)
		}
		if got.String() != want {
			t.Fatalf("ParseGrade(%q) = %q, want %q", in, got, want)
		}
	}
	for _, in := range []string{"", "16", "-1", "Grade 99", "college"} {
		if _, err := ParseGrade(in); err == nil {
			t.Fatalf("ParseGrade(%q) should fail", in)
		}
	}
}
