package engine

import (
	"testing"

	"github.com/mitesh699/dealflow/internal/store"
)

func TestStats(t *testing.T) {
	e := pureEngine()
	contacts := []store.Contact{
		{Stage: store.StageProspect, Score: 40, CreatedAt: daysAgo(10)},
		{Stage: store.StageProspect, Score: 60, CreatedAt: daysAgo(20)},
		{Stage: store.StagePortfolio, Score: 80, CreatedAt: daysAgo(30)},
	}

	stats := e.Stats(contacts)
	if stats.Total != 3 {
		t.Errorf("total = %d, want 3", stats.Total)
	}
	if stats.ByStage[store.StageProspect] != 2 || stats.ByStage[store.StagePortfolio] != 1 {
		t.Errorf("by_stage = %v", stats.ByStage)
	}
	if stats.AverageScore != 60 {
		t.Errorf("average_score = %v, want 60", stats.AverageScore)
	}
	if stats.AverageAgeDays != 20 {
		t.Errorf("average_age_days = %v, want 20", stats.AverageAgeDays)
	}
}

func TestStatsUnparsableCreatedAtCountsAsZero(t *testing.T) {
	e := pureEngine()
	contacts := []store.Contact{
		{Stage: store.StageProspect, Score: 50, CreatedAt: daysAgo(10)},
		{Stage: store.StageProspect, Score: 50, CreatedAt: "bogus"},
	}

	stats := e.Stats(contacts)
	if stats.AverageAgeDays != 5 {
		t.Errorf("average_age_days = %v, want 5 (bad date counts as 0)", stats.AverageAgeDays)
	}
}

func TestStatsEmpty(t *testing.T) {
	e := pureEngine()

	stats := e.Stats(nil)
	if stats.Total != 0 || stats.AverageScore != 0 || stats.AverageAgeDays != 0 {
		t.Errorf("empty stats = %+v, want zeros", stats)
	}
}
