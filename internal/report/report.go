// Package report builds and renders analysis history.
package report

import (
	"context"

	"github.com/verte-zerg/readability/internal/model"
	"github.com/verte-zerg/readability/internal/store"
)

// Report contains precomputed data for history rendering.
type Report struct {
	Analyses []model.Analysis
	// Total is the number of analyses matching the filters before Last is applied.
	Total  int
	Grades []model.GradeCount
	Trend  []float64
}

// BuildReport loads and prepares data for history rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.HistoryConfig) (Report, error) {
	analyses, err := st.ListAnalyses(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	total := len(analyses)
	if cfg.Last > 0 && len(analyses) > cfg.Last {
		analyses = analyses[len(analyses)-cfg.Last:]
	}
	grades, err := st.GradeCounts(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Analyses: analyses,
		Total:    total,
		Grades:   grades,
		Trend:    MovingAverage(indexSeries(analyses), cfg.Trend),
	}, nil
}

func indexSeries(analyses []model.Analysis) []float64 {
	values := make([]float64, 0, len(analyses))
	for _, a := range analyses {
		if !a.Computable {
			continue
		}
		values = append(values, float64(a.Index))
	}
	return values
}
