package engine

import (
	"github.com/mitesh699/dealflow/internal/store"
)

// PipelineStats summarizes the funnel.
type PipelineStats struct {
	Total          int                 `json:"total"`
	ByStage        map[store.Stage]int `json:"by_stage"`
	AverageScore   float64             `json:"average_score"`
	AverageAgeDays float64             `json:"average_age_days"`
}

// Stats computes per-stage counts, mean score, and mean days in pipeline.
// A contact whose created_at does not parse contributes age 0 to the
// average instead of failing the scan.
func (e *Engine) Stats(contacts []store.Contact) PipelineStats {
	stats := PipelineStats{ByStage: make(map[store.Stage]int)}
	if len(contacts) == 0 {
		return stats
	}

	now := e.Clock.Now()
	var scoreSum, ageSum int
	for i := range contacts {
		c := &contacts[i]
		stats.Total++
		stats.ByStage[c.Stage]++
		scoreSum += c.Score
		if age, err := parseDays(c.CreatedAt, now); err == nil {
			ageSum += age
		}
	}

	stats.AverageScore = float64(scoreSum) / float64(stats.Total)
	stats.AverageAgeDays = float64(ageSum) / float64(stats.Total)
	return stats
}
