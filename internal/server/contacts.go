package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mitesh699/dealflow/internal/ai"
	"github.com/mitesh699/dealflow/internal/engine"
	"github.com/mitesh699/dealflow/internal/store"
)

// contactRequest is the validated payload for create and update.
type contactRequest struct {
	Name        string   `json:"name"`
	Company     string   `json:"company"`
	Role        string   `json:"role"`
	Email       string   `json:"email"`
	Stage       string   `json:"stage"`
	Score       *int     `json:"score"`
	LastContact string   `json:"last_contact"`
	Tags        []string `json:"tags"`
	Notes       string   `json:"notes"`
}

func (req *contactRequest) validate() error {
	if req.Name == "" {
		return fmt.Errorf("name required")
	}
	if req.Stage != "" && !store.ValidStage(store.Stage(req.Stage)) {
		return fmt.Errorf("invalid stage %q", req.Stage)
	}
	if req.Score != nil && (*req.Score < 0 || *req.Score > 100) {
		return fmt.Errorf("score must be between 0 and 100")
	}
	return nil
}

// contactJSON is the wire shape of a contact, enriched with the derived
// staleness fields.
type contactJSON struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Company          string   `json:"company"`
	Role             string   `json:"role"`
	Email            string   `json:"email"`
	Stage            string   `json:"stage"`
	Score            int      `json:"score"`
	LastContact      string   `json:"last_contact"`
	CreatedAt        string   `json:"created_at"`
	Tags             []string `json:"tags"`
	Notes            string   `json:"notes"`
	DaysSinceContact int      `json:"days_since_contact"`
	StaleLevel       string   `json:"stale_level"`
}

func (s *Server) contactJSON(c *store.Contact) contactJSON {
	days := s.engine.DaysSinceContact(c)
	return contactJSON{
		ID:               c.ID,
		Name:             c.Name,
		Company:          c.Company,
		Role:             c.Role,
		Email:            c.Email,
		Stage:            string(c.Stage),
		Score:            c.Score,
		LastContact:      c.LastContact,
		CreatedAt:        c.CreatedAt,
		Tags:             c.Tags,
		Notes:            c.Notes,
		DaysSinceContact: days,
		StaleLevel:       string(s.engine.Thresholds.Classify(days)),
	}
}

func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	c := &store.Contact{
		Name:        req.Name,
		Company:     req.Company,
		Role:        req.Role,
		Email:       req.Email,
		Stage:       store.Stage(req.Stage),
		LastContact: req.LastContact,
		Tags:        req.Tags,
		Notes:       req.Notes,
	}
	if req.Score != nil {
		c.Score = *req.Score
	} else {
		c.Score = 50
	}

	if err := s.db.CreateContact(c); err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}
	s.db.AddActivity(c.ID, store.ActivityCreated, "contact created")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(s.contactJSON(c))
}

func (s *Server) handleGetContact(w http.ResponseWriter, r *http.Request) {
	c, err := s.db.GetContact(chi.URLParam(r, "contactID"))
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}
	if c == nil {
		http.Error(w, `{"error":"contact not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.contactJSON(c))
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.db.ListContacts()
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	// Plain ?stage= filter, plus a free-text ?q= parsed by the mock AI.
	filter := ai.ParseFilter(r.URL.Query().Get("q"))
	if stage := r.URL.Query().Get("stage"); stage != "" {
		filter.Stage = store.Stage(stage)
	}

	out := make([]contactJSON, 0, len(contacts))
	for i := range contacts {
		c := &contacts[i]
		if !s.matchesFilter(c, filter) {
			continue
		}
		out = append(out, s.contactJSON(c))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"count":    len(out),
		"contacts": out,
	})
}

// matchesFilter applies a parsed natural-language filter to one contact.
// "stale" admits warning and worse; a named level matches exactly.
func (s *Server) matchesFilter(c *store.Contact, f ai.Filter) bool {
	if f.Stage != "" && c.Stage != f.Stage {
		return false
	}
	if f.MinScore != nil && c.Score < *f.MinScore {
		return false
	}
	if f.MaxScore != nil && c.Score > *f.MaxScore {
		return false
	}
	if f.Staleness != "" {
		level := s.engine.ClassifyContact(c)
		if f.Staleness == "stale" {
			if level == engine.StalenessActive {
				return false
			}
		} else if string(level) != f.Staleness {
			return false
		}
	}
	return true
}

func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	c, err := s.db.GetContact(chi.URLParam(r, "contactID"))
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}
	if c == nil {
		http.Error(w, `{"error":"contact not found"}`, http.StatusNotFound)
		return
	}

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	c.Name = req.Name
	c.Company = req.Company
	c.Role = req.Role
	c.Email = req.Email
	c.Notes = req.Notes
	if req.Stage != "" {
		c.Stage = store.Stage(req.Stage)
	}
	if req.Score != nil {
		c.Score = *req.Score
	}
	if req.LastContact != "" {
		c.LastContact = req.LastContact
	}
	if req.Tags != nil {
		c.Tags = req.Tags
	}

	if _, err := s.db.UpdateContact(c); err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}
	s.db.AddActivity(c.ID, store.ActivityUpdated, "contact updated")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.contactJSON(c))
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	ok, err := s.db.DeleteContact(chi.URLParam(r, "contactID"))
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, `{"error":"contact not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "contactID")

	c, err := s.db.GetContact(contactID)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}
	if c == nil {
		http.Error(w, `{"error":"contact not found"}`, http.StatusNotFound)
		return
	}

	activities, err := s.db.ListActivities(contactID)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	type activityJSON struct {
		ID        int64  `json:"id"`
		Kind      string `json:"kind"`
		Detail    string `json:"detail"`
		CreatedAt int64  `json:"created_at"`
	}
	out := make([]activityJSON, len(activities))
	for i, a := range activities {
		out[i] = activityJSON{a.ID, a.Kind, a.Detail, a.CreatedAt}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"contact_id": contactID,
		"activities": out,
	})
}
