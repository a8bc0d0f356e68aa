package readability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Coleman-Liau weights scaled by 10000 so that the index times 100*words
// is the integer 588*letters - 2960*sentences - 1580*words.
const (
	letterWeight   = 588
	sentenceWeight = 2960
	wordOffset     = 1580

	// MinGrade is the lowest index reported as a numbered grade.
	MinGrade = 1
	// MaxGrade is the index at and above which the result is Grade 16+.
	MaxGrade = 16
)

// ErrNoWords is returned by Index when the text contains no words.
var ErrNoWords = errors.New("no words found in text")

// Kind identifies the class of a Grade.
type Kind int

const (
	// BeforeGrade1 covers every index below 1.
	BeforeGrade1 Kind = iota
	// Numbered covers indexes 1 through 15.
	Numbered
	// Grade16Plus covers every index of 16 and above.
	Grade16Plus
)

// Grade is a grade-level classification.
type Grade struct {
	Kind Kind
	// Level is the grade number; it is only meaningful for Numbered.
	Level int
}

// String renders the grade the way it is printed to users.
func (g Grade) String() string {
	switch g.Kind {
	case BeforeGrade1:
		return "Before Grade 1"
	case Grade16Plus:
		return "Grade 16+"
	default:
		return fmt.Sprintf("Grade %d", g.Level)
	}
}

// Result is the outcome of analyzing one text.
type Result struct {
	Stats Stats
	Index int
	Grade Grade
	// Computable is false when the text had no words; Grade is then BeforeGrade1.
	Computable bool
}

// Analyze counts text and classifies its grade level. Text without words
// cannot be scored and is classified as Before Grade 1.
func Analyze(text string) Result {
	stats := Count(text)
	index, err := Index(stats)
	if err != nil {
		return Result{Stats: stats, Grade: Grade{Kind: BeforeGrade1}}
	}
	return Result{
		Stats:      stats,
		Index:      index,
		Grade:      Classify(index),
		Computable: true,
	}
}

// RawIndex returns the unrounded Coleman-Liau index for stats.
func RawIndex(s Stats) (float64, error) {
	num, den, err := scaledIndex(s)
	if err != nil {
		return 0, err
	}
	return float64(num) / float64(den), nil
}

// Index returns the Coleman-Liau index for stats, rounded half away from zero.
// Rounding is done on the exact rational value, so ties such as 2.5 always
// round up in magnitude.
func Index(s Stats) (int, error) {
	num, den, err := scaledIndex(s)
	if err != nil {
		return 0, err
	}
	return roundIndex(num, den), nil
}

// scaledIndex returns the index as the fraction num/den with den > 0.
func scaledIndex(s Stats) (num, den int64, err error) {
	if s.Words <= 0 {
		return 0, 0, ErrNoWords
	}
	num = letterWeight*int64(s.Letters) - sentenceWeight*int64(s.Sentences) - wordOffset*int64(s.Words)
	return num, 100 * int64(s.Words), nil
}

// Classify maps an index onto a grade.
func Classify(index int) Grade {
	switch {
	case index < MinGrade:
		return Grade{Kind: BeforeGrade1}
	case index >= MaxGrade:
		return Grade{Kind: Grade16Plus}
	default:
		return Grade{Kind: Numbered, Level: index}
	}
}

// roundIndex rounds num/den half away from zero; den must be positive.
func roundIndex(num, den int64) int {
	if num < 0 {
		return -int((-2*num + den) / (2 * den))
	}
	return int((2*num + den) / (2 * den))
}

// ParseGrade parses a grade label as printed by Grade.String, or a short form:
// "before" or "0" for Before Grade 1, "1" to "15", and "16+".
func ParseGrade(s string) (Grade, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "grade ")
	switch v {
	case "before grade 1", "before", "0":
		return Grade{Kind: BeforeGrade1}, nil
	case "16+":
		return Grade{Kind: Grade16Plus}, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < MinGrade || n >= MaxGrade {
		return Grade{}, fmt.Errorf("unknown grade %q", s)
	}
	return Grade{Kind: Numbered, Level: n}, nil
}
