package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/mitesh699/dealflow/internal/store"
)

// Notification types.
const (
	NotificationDeadLead  = "dead_lead"
	NotificationStaleLead = "stale_lead"
	NotificationScoreDrop = "score_drop"
)

// scoreDropThreshold: contacts scoring below this get a score_drop
// notification regardless of staleness.
const scoreDropThreshold = 50

// Notification is derived per invocation; IDs restart at 1 each scan.
type Notification struct {
	ID        int      `json:"id"`
	Type      string   `json:"type"`
	Priority  Priority `json:"priority"`
	Read      bool     `json:"read"`
	Title     string   `json:"title"`
	ContactID string   `json:"contact_id"`
	Message   string   `json:"message"`
	CreatedAt string   `json:"created_at"`
}

// BuildNotifications derives notifications for every non-passed contact:
// at most one staleness notification per contact, plus an independent
// score_drop when the score is low. IDs are assigned in contact-iteration
// order. The result is sorted by priority only, with a stable sort; unlike
// the follow-up queue there is no staleness tie-break (kept as found, see
// the known-asymmetry test in notify_test.go).
func (e *Engine) BuildNotifications(contacts []store.Contact) []Notification {
	now := e.Clock.Now()
	created := now.Format(time.RFC3339)

	var notes []Notification
	nextID := 1
	add := func(n Notification) {
		n.ID = nextID
		nextID++
		n.CreatedAt = created
		notes = append(notes, n)
	}

	for i := range contacts {
		c := &contacts[i]
		if c.Stage == store.StagePassed {
			continue
		}
		days := DaysSince(c.LastContact, now)

		switch e.Thresholds.Classify(days) {
		case StalenessDead:
			add(Notification{
				Type:      NotificationDeadLead,
				Priority:  PriorityUrgent,
				Title:     "Dead lead: " + c.Name,
				ContactID: c.ID,
				Message:   fmt.Sprintf("No contact with %s (%s) in %d days", c.Name, c.Company, days),
			})
		case StalenessCritical:
			add(Notification{
				Type:      NotificationStaleLead,
				Priority:  PriorityHigh,
				Title:     "Stale lead: " + c.Name,
				ContactID: c.ID,
				Message:   fmt.Sprintf("%s (%s) has gone %d days without contact", c.Name, c.Company, days),
			})
		case StalenessWarning:
			add(Notification{
				Type:      NotificationStaleLead,
				Priority:  PriorityMedium,
				Title:     "Stale lead: " + c.Name,
				ContactID: c.ID,
				Message:   fmt.Sprintf("%s (%s) has gone %d days without contact", c.Name, c.Company, days),
			})
		}

		if c.Score < scoreDropThreshold {
			add(Notification{
				Type:      NotificationScoreDrop,
				Priority:  PriorityMedium,
				Title:     "Low conviction: " + c.Name,
				ContactID: c.ID,
				Message:   fmt.Sprintf("%s has a conviction score of %d", c.Name, c.Score),
			})
		}
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return priorityRank(notes[i].Priority) < priorityRank(notes[j].Priority)
	})
	return notes
}
