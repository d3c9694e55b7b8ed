package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCreateAndGetContact(t *testing.T) {
	db := testDB(t)

	c := &Contact{
		Name:    "Ada Lovelace",
		Company: "Analytical Engines",
		Role:    "CEO",
		Email:   "ada@analytical.example",
		Score:   72,
		Tags:    []string{"deep-tech", "referral"},
		Notes:   "Warm intro via Babbage.",
	}
	if err := db.CreateContact(c); err != nil {
		t.Fatalf("CreateContact: %v", err)
	}
	if c.ID == "" {
		t.Fatal("expected generated ID")
	}
	if c.Stage != StageProspect {
		t.Errorf("default stage = %q, want prospect", c.Stage)
	}
	if c.CreatedAt == "" || c.LastContact == "" {
		t.Errorf("expected default dates, got created=%q last=%q", c.CreatedAt, c.LastContact)
	}

	got, err := db.GetContact(c.ID)
	if err != nil {
		t.Fatalf("GetContact: %v", err)
	}
	if got == nil {
		t.Fatal("GetContact returned nil for existing contact")
	}
	if diff := cmp.Diff(c, got); diff != "" {
		t.Errorf("contact mismatch (-want +got):\n%s", diff)
	}
}

func TestGetContactMissing(t *testing.T) {
	db := testDB(t)

	got, err := db.GetContact("no-such-id")
	if err != nil {
		t.Fatalf("GetContact: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing contact, got %+v", got)
	}
}

func TestListContactsInsertionOrder(t *testing.T) {
	db := testDB(t)

	names := []string{"First", "Second", "Third"}
	for _, n := range names {
		if err := db.CreateContact(&Contact{Name: n}); err != nil {
			t.Fatalf("CreateContact(%s): %v", n, err)
		}
	}

	contacts, err := db.ListContacts()
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(contacts) != 3 {
		t.Fatalf("len = %d, want 3", len(contacts))
	}
	for i, n := range names {
		if contacts[i].Name != n {
			t.Errorf("contacts[%d].Name = %q, want %q", i, contacts[i].Name, n)
		}
	}
}

func TestUpdateContact(t *testing.T) {
	db := testDB(t)

	c := &Contact{Name: "Grace", Score: 40}
	if err := db.CreateContact(c); err != nil {
		t.Fatalf("CreateContact: %v", err)
	}

	c.Stage = StageDiligence
	c.Score = 85
	c.Tags = []string{"compilers"}
	ok, err := db.UpdateContact(c)
	if err != nil {
		t.Fatalf("UpdateContact: %v", err)
	}
	if !ok {
		t.Fatal("UpdateContact reported no rows affected")
	}

	got, err := db.GetContact(c.ID)
	if err != nil {
		t.Fatalf("GetContact: %v", err)
	}
	if got.Stage != StageDiligence || got.Score != 85 {
		t.Errorf("got stage=%q score=%d, want diligence/85", got.Stage, got.Score)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "compilers" {
		t.Errorf("tags = %v, want [compilers]", got.Tags)
	}

	// Updating a missing contact reports false
	missing := &Contact{ID: "nope", Name: "x"}
	ok, err = db.UpdateContact(missing)
	if err != nil {
		t.Fatalf("UpdateContact missing: %v", err)
	}
	if ok {
		t.Error("expected false for missing contact")
	}
}

func TestTargetedUpdates(t *testing.T) {
	db := testDB(t)

	c := &Contact{Name: "Linus", Score: 60}
	if err := db.CreateContact(c); err != nil {
		t.Fatalf("CreateContact: %v", err)
	}

	if err := db.UpdateStage(c.ID, StageIntro); err != nil {
		t.Fatalf("UpdateStage: %v", err)
	}
	if err := db.UpdateScore(c.ID, 45); err != nil {
		t.Fatalf("UpdateScore: %v", err)
	}
	if err := db.UpdateLastContact(c.ID, "2026-08-01"); err != nil {
		t.Fatalf("UpdateLastContact: %v", err)
	}

	got, _ := db.GetContact(c.ID)
	if got.Stage != StageIntro {
		t.Errorf("stage = %q, want intro", got.Stage)
	}
	if got.Score != 45 {
		t.Errorf("score = %d, want 45", got.Score)
	}
	if got.LastContact != "2026-08-01" {
		t.Errorf("last_contact = %q, want 2026-08-01", got.LastContact)
	}
}

func TestDeleteContact(t *testing.T) {
	db := testDB(t)

	c := &Contact{Name: "Ephemeral"}
	if err := db.CreateContact(c); err != nil {
		t.Fatalf("CreateContact: %v", err)
	}

	ok, err := db.DeleteContact(c.ID)
	if err != nil {
		t.Fatalf("DeleteContact: %v", err)
	}
	if !ok {
		t.Fatal("expected delete to report a row")
	}

	got, _ := db.GetContact(c.ID)
	if got != nil {
		t.Error("contact still present after delete")
	}

	ok, err = db.DeleteContact(c.ID)
	if err != nil {
		t.Fatalf("second DeleteContact: %v", err)
	}
	if ok {
		t.Error("expected false on second delete")
	}
}

func TestCountByStage(t *testing.T) {
	db := testDB(t)

	stages := []Stage{StageProspect, StageProspect, StageIntro, StagePassed}
	for i, s := range stages {
		c := &Contact{Name: "c", Stage: s}
		c.Name = string(rune('a' + i))
		if err := db.CreateContact(c); err != nil {
			t.Fatalf("CreateContact: %v", err)
		}
	}

	counts, err := db.CountByStage()
	if err != nil {
		t.Fatalf("CountByStage: %v", err)
	}
	want := map[Stage]int{StageProspect: 2, StageIntro: 1, StagePassed: 1}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
}

func TestValidStage(t *testing.T) {
	for _, s := range []Stage{StageProspect, StageIntro, StageDiligence, StagePortfolio, StagePassed} {
		if !ValidStage(s) {
			t.Errorf("ValidStage(%q) = false, want true", s)
		}
	}
	if ValidStage("limbo") {
		t.Error(`ValidStage("limbo") = true, want false`)
	}
}
