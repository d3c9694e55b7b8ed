package engine

import (
	"testing"

	"github.com/mitesh699/dealflow/internal/store"
)

func TestQueueSortsByPriorityThenStaleness(t *testing.T) {
	e := pureEngine()
	contacts := []store.Contact{
		{ID: "fresh", Stage: store.StageProspect, LastContact: daysAgo(2)},    // low
		{ID: "medium-8", Stage: store.StageProspect, LastContact: daysAgo(8)}, // medium
		{ID: "urgent", Stage: store.StageDiligence, LastContact: daysAgo(6)},  // urgent
		{ID: "medium-10", Stage: store.StageIntro, LastContact: daysAgo(10)},  // medium
	}

	queue := e.BuildFollowUpQueue(contacts)
	if len(queue) != 4 {
		t.Fatalf("len = %d, want 4", len(queue))
	}

	wantOrder := []string{"urgent", "medium-10", "medium-8", "fresh"}
	for i, id := range wantOrder {
		if queue[i].ContactID != id {
			t.Errorf("queue[%d] = %s, want %s", i, queue[i].ContactID, id)
		}
	}

	// Equal priority breaks ties by days descending: 10 before 8.
	if queue[1].DaysSinceContact != 10 || queue[2].DaysSinceContact != 8 {
		t.Errorf("tie-break order: got days %d, %d; want 10, 8",
			queue[1].DaysSinceContact, queue[2].DaysSinceContact)
	}
}

func TestQueueEntryFields(t *testing.T) {
	e := pureEngine()
	contacts := []store.Contact{
		{ID: "c-1", Name: "Dana", Company: "Fathom Robotics", Stage: store.StageDiligence,
			LastContact: daysAgo(8), Score: 70},
	}

	queue := e.BuildFollowUpQueue(contacts)
	if len(queue) != 1 {
		t.Fatalf("len = %d, want 1", len(queue))
	}

	entry := queue[0]
	if entry.Suggestion != "Follow up on outstanding diligence materials" {
		t.Errorf("suggestion = %q", entry.Suggestion)
	}
	if entry.Priority != PriorityUrgent {
		t.Errorf("priority = %q, want urgent (diligence and days > 5)", entry.Priority)
	}
	if entry.StaleLevel != StalenessActive {
		t.Errorf("stale_level = %q, want active", entry.StaleLevel)
	}
	if entry.DaysSinceContact != 8 || entry.Score != 70 {
		t.Errorf("days = %d score = %d, want 8/70", entry.DaysSinceContact, entry.Score)
	}
}

func TestQueueIncludesPassedAtLowPriority(t *testing.T) {
	e := pureEngine()
	contacts := []store.Contact{
		{ID: "done", Stage: store.StagePassed, LastContact: daysAgo(400)},
		{ID: "live", Stage: store.StageProspect, LastContact: daysAgo(8)},
	}

	queue := e.BuildFollowUpQueue(contacts)
	if len(queue) != 2 {
		t.Fatalf("len = %d, want 2", len(queue))
	}
	if queue[0].ContactID != "live" {
		t.Errorf("queue[0] = %s, want live (passed sorts last)", queue[0].ContactID)
	}
	if queue[1].Priority != PriorityLow {
		t.Errorf("passed priority = %q, want low", queue[1].Priority)
	}
	if queue[1].Suggestion != "Consider revisiting if thesis changes" {
		t.Errorf("passed suggestion = %q", queue[1].Suggestion)
	}
}

func TestQueueUnparsableDateSortsFirst(t *testing.T) {
	e := pureEngine()
	contacts := []store.Contact{
		{ID: "stale", Stage: store.StageProspect, LastContact: daysAgo(40)},
		{ID: "broken", Stage: store.StageProspect, LastContact: "???"},
	}

	queue := e.BuildFollowUpQueue(contacts)
	// Both urgent; sentinel 999 beats 40 on the staleness tie-break.
	if queue[0].ContactID != "broken" {
		t.Errorf("queue[0] = %s, want broken", queue[0].ContactID)
	}
	if queue[0].DaysSinceContact != 999 {
		t.Errorf("days = %d, want sentinel 999", queue[0].DaysSinceContact)
	}
}
