// Package model defines shared data structures.
package model

import "time"

// Config defines analyze settings.
type Config struct {
	Prompt       string
	History      bool
	HistoryLimit int
}

// HistoryConfig defines filters and options for history output.
type HistoryConfig struct {
	Since *time.Time
	Last  int
	Grade string
	Trend int
}

// Analysis captures one analyzed text.
type Analysis struct {
	ID         int64
	CreatedAt  time.Time
	Text       string
	Letters    int
	Words      int
	Sentences  int
	Index      int
	Grade      string
	Computable bool
}

// GradeCount is the number of stored analyses with a given grade label.
type GradeCount struct {
	Grade string
	Count int
}
