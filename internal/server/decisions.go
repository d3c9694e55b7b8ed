package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mitesh699/dealflow/internal/engine"
)

func (s *Server) handleFollowUps(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.db.ListContacts()
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	queue := s.engine.BuildFollowUpQueue(contacts)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"count":   len(queue),
		"queue":   queue,
		"ordered": "priority, then days since contact",
	})
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.db.ListContacts()
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	notifications := s.engine.BuildNotifications(contacts)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"count":         len(notifications),
		"notifications": notifications,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.db.ListContacts()
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.engine.Stats(contacts))
}

func (s *Server) handleAgentActions(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.db.ListContacts()
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	actions := s.engine.ProposeActions(contacts)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"count":   len(actions),
		"actions": actions,
	})
}

// executeRequest is the validated payload for agent action execution.
type executeRequest struct {
	ContactID  string `json:"contact_id"`
	ActionType string `json:"action_type"`
	Delta      *int   `json:"delta,omitempty"`
}

func (s *Server) handleAgentExecute(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}
	if req.ContactID == "" {
		http.Error(w, `{"error":"contact_id required"}`, http.StatusBadRequest)
		return
	}
	if req.ActionType == "" {
		http.Error(w, `{"error":"action_type required"}`, http.StatusBadRequest)
		return
	}

	res, err := s.engine.ExecuteAction(req.ContactID, req.ActionType, engine.ActionParams{Delta: req.Delta})
	if errors.Is(err, engine.ErrNotFound) {
		http.Error(w, `{"error":"contact not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if !res.Success {
		w.WriteHeader(http.StatusBadRequest)
	}
	json.NewEncoder(w).Encode(res)
}
