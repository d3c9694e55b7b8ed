package engine

import (
	"sync"
	"testing"

	"github.com/mitesh699/dealflow/internal/store"
)

func seedContact(t *testing.T, e *Engine, c *store.Contact) *store.Contact {
	t.Helper()
	if err := e.DB.CreateContact(c); err != nil {
		t.Fatalf("CreateContact: %v", err)
	}
	return c
}

func TestExecuteStageProgression(t *testing.T) {
	e := testEngine(t)
	c := seedContact(t, e, &store.Contact{Name: "Pia", Stage: store.StageProspect})

	// Two separate calls advance two steps: prospect -> intro -> diligence.
	// Re-execution is intentionally not idempotent.
	res, err := e.ExecuteAction(c.ID, ActionStageProgression, ActionParams{})
	if err != nil {
		t.Fatalf("ExecuteAction: %v", err)
	}
	if !res.Success || res.Contact.Stage != store.StageIntro {
		t.Fatalf("first call: success=%v stage=%q, want intro", res.Success, res.Contact.Stage)
	}

	res, err = e.ExecuteAction(c.ID, ActionStageProgression, ActionParams{})
	if err != nil {
		t.Fatalf("ExecuteAction: %v", err)
	}
	if res.Contact.Stage != store.StageDiligence {
		t.Fatalf("second call: stage = %q, want diligence", res.Contact.Stage)
	}

	got, _ := e.DB.GetContact(c.ID)
	if got.Stage != store.StageDiligence {
		t.Errorf("persisted stage = %q, want diligence", got.Stage)
	}
}

func TestExecuteStageProgressionNoSuccessor(t *testing.T) {
	e := testEngine(t)

	for _, stage := range []store.Stage{store.StagePortfolio, store.StagePassed} {
		c := seedContact(t, e, &store.Contact{Name: "Topped " + string(stage), Stage: stage})

		res, err := e.ExecuteAction(c.ID, ActionStageProgression, ActionParams{})
		if err != nil {
			t.Fatalf("%s: ExecuteAction: %v", stage, err)
		}
		if !res.Success {
			t.Errorf("%s: no-successor progression should still succeed", stage)
		}

		got, _ := e.DB.GetContact(c.ID)
		if got.Stage != stage {
			t.Errorf("%s: stage changed to %q, want unchanged", stage, got.Stage)
		}
	}
}

func TestExecuteFollowUpSetsLastContact(t *testing.T) {
	e := testEngine(t)
	c := seedContact(t, e, &store.Contact{Name: "Quiet", LastContact: daysAgo(40)})

	res, err := e.ExecuteAction(c.ID, ActionFollowUp, ActionParams{})
	if err != nil {
		t.Fatalf("ExecuteAction: %v", err)
	}
	if !res.Success {
		t.Fatal("follow_up should always succeed")
	}

	got, _ := e.DB.GetContact(c.ID)
	want := testNow.Format(store.DateLayout)
	if got.LastContact != want {
		t.Errorf("last_contact = %q, want %q (clock date)", got.LastContact, want)
	}
}

func TestExecuteScoreUpdateDefaultDelta(t *testing.T) {
	e := testEngine(t)
	c := seedContact(t, e, &store.Contact{Name: "Dip", Score: 48})

	res, err := e.ExecuteAction(c.ID, ActionScoreUpdate, ActionParams{})
	if err != nil {
		t.Fatalf("ExecuteAction: %v", err)
	}
	if res.Contact.Score != 33 {
		t.Errorf("score = %d, want 33 (48 - 15)", res.Contact.Score)
	}
}

func TestExecuteScoreUpdateClamps(t *testing.T) {
	e := testEngine(t)

	low := seedContact(t, e, &store.Contact{Name: "Floor", Score: 10})
	res, err := e.ExecuteAction(low.ID, ActionScoreUpdate, ActionParams{})
	if err != nil {
		t.Fatalf("ExecuteAction: %v", err)
	}
	if res.Contact.Score != 0 {
		t.Errorf("score = %d, want 0 (clamped, not negative)", res.Contact.Score)
	}

	high := seedContact(t, e, &store.Contact{Name: "Ceiling", Score: 95})
	delta := 20
	res, err = e.ExecuteAction(high.ID, ActionScoreUpdate, ActionParams{Delta: &delta})
	if err != nil {
		t.Fatalf("ExecuteAction: %v", err)
	}
	if res.Contact.Score != 100 {
		t.Errorf("score = %d, want 100 (clamped)", res.Contact.Score)
	}
}

func TestExecuteScoreUpdateExplicitDelta(t *testing.T) {
	e := testEngine(t)
	c := seedContact(t, e, &store.Contact{Name: "Up", Score: 50})

	delta := 25
	res, err := e.ExecuteAction(c.ID, ActionScoreUpdate, ActionParams{Delta: &delta})
	if err != nil {
		t.Fatalf("ExecuteAction: %v", err)
	}
	if res.Contact.Score != 75 {
		t.Errorf("score = %d, want 75", res.Contact.Score)
	}
}

func TestExecuteArchive(t *testing.T) {
	e := testEngine(t)
	c := seedContact(t, e, &store.Contact{Name: "Gone", Stage: store.StageDiligence})

	res, err := e.ExecuteAction(c.ID, ActionArchive, ActionParams{})
	if err != nil {
		t.Fatalf("ExecuteAction: %v", err)
	}
	if !res.Success || res.Contact.Stage != store.StagePassed {
		t.Errorf("archive: success=%v stage=%q, want passed", res.Success, res.Contact.Stage)
	}

	// Archiving again is a success no-op.
	res, err = e.ExecuteAction(c.ID, ActionArchive, ActionParams{})
	if err != nil {
		t.Fatalf("second archive: %v", err)
	}
	if !res.Success {
		t.Error("second archive should succeed")
	}
}

func TestExecuteUnknownTypeFailsWithoutMutation(t *testing.T) {
	e := testEngine(t)
	c := seedContact(t, e, &store.Contact{Name: "Safe", Stage: store.StageIntro, Score: 60})

	res, err := e.ExecuteAction(c.ID, "teleport", ActionParams{})
	if err != nil {
		t.Fatalf("unknown type should not error: %v", err)
	}
	if res.Success {
		t.Error("unknown type reported success")
	}

	got, _ := e.DB.GetContact(c.ID)
	if got.Stage != store.StageIntro || got.Score != 60 {
		t.Errorf("contact mutated by unknown action: stage=%q score=%d", got.Stage, got.Score)
	}
}

func TestExecuteUnknownContact(t *testing.T) {
	e := testEngine(t)

	_, err := e.ExecuteAction("no-such-id", ActionFollowUp, ActionParams{})
	if err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestExecuteRecordsActivity(t *testing.T) {
	e := testEngine(t)
	c := seedContact(t, e, &store.Contact{Name: "Audited", Stage: store.StageProspect})

	if _, err := e.ExecuteAction(c.ID, ActionStageProgression, ActionParams{}); err != nil {
		t.Fatalf("ExecuteAction: %v", err)
	}

	activities, err := e.DB.ListActivities(c.ID)
	if err != nil {
		t.Fatalf("ListActivities: %v", err)
	}
	if len(activities) != 1 || activities[0].Kind != store.ActivityExecuted {
		t.Errorf("activities = %+v, want one agent_action entry", activities)
	}
}

func TestConcurrentExecutionsSameContactSerialize(t *testing.T) {
	e := testEngine(t)
	c := seedContact(t, e, &store.Contact{Name: "Contested", Score: 100})

	// Ten concurrent -10 updates must all land: no lost read-modify-write.
	var wg sync.WaitGroup
	delta := -10
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := e.ExecuteAction(c.ID, ActionScoreUpdate, ActionParams{Delta: &delta}); err != nil {
				t.Errorf("ExecuteAction: %v", err)
			}
		}()
	}
	wg.Wait()

	got, _ := e.DB.GetContact(c.ID)
	if got.Score != 0 {
		t.Errorf("score = %d, want 0 after ten serialized -10 updates", got.Score)
	}
}
