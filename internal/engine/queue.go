package engine

import (
	"sort"

	"github.com/mitesh699/dealflow/internal/store"
)

// FollowUpEntry is one row of the follow-up queue. Derived per query; it
// carries no identity across invocations.
type FollowUpEntry struct {
	ContactID        string         `json:"contact_id"`
	Name             string         `json:"name"`
	Company          string         `json:"company"`
	DaysSinceContact int            `json:"days_since_contact"`
	StaleLevel       StalenessLevel `json:"stale_level"`
	Suggestion       string         `json:"suggestion"`
	Priority         Priority       `json:"priority"`
	Score            int            `json:"score"`
}

// BuildFollowUpQueue evaluates every contact (passed included, which pins
// to low priority) and returns the queue sorted by priority first, then by
// days since contact descending so the most stale surface first.
func (e *Engine) BuildFollowUpQueue(contacts []store.Contact) []FollowUpEntry {
	now := e.Clock.Now()
	entries := make([]FollowUpEntry, 0, len(contacts))
	for i := range contacts {
		c := &contacts[i]
		days := DaysSince(c.LastContact, now)
		suggestion, priority := EvaluateFollowUp(c.Stage, days)
		entries = append(entries, FollowUpEntry{
			ContactID:        c.ID,
			Name:             c.Name,
			Company:          c.Company,
			DaysSinceContact: days,
			StaleLevel:       e.Thresholds.Classify(days),
			Suggestion:       suggestion,
			Priority:         priority,
			Score:            c.Score,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := priorityRank(entries[i].Priority), priorityRank(entries[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return entries[i].DaysSinceContact > entries[j].DaysSinceContact
	})
	return entries
}
