package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mitesh699/dealflow/internal/ai"
)

func (s *Server) handleTriage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, `{"error":"text required"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ai.Triage(req.Text))
}

func (s *Server) handleMeetingNotes(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, `{"error":"text required"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ai.ExtractNotes(req.Text))
}

// handleNews serves canned company news. Real retrieval is out of scope;
// the frontend just needs stable shapes to render.
func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	company := r.URL.Query().Get("company")
	if company == "" {
		http.Error(w, `{"error":"company parameter required"}`, http.StatusBadRequest)
		return
	}

	type newsItem struct {
		Title  string `json:"title"`
		Source string `json:"source"`
		Date   string `json:"date"`
	}

	today := time.Now().Format("2006-01-02")
	items := []newsItem{
		{fmt.Sprintf("%s announces new product milestone", company), "Dealflow Wire", today},
		{fmt.Sprintf("%s expands engineering team", company), "Dealflow Wire", today},
		{fmt.Sprintf("Analysts weigh in on %s's market", company), "Dealflow Wire", today},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"company": company,
		"items":   items,
	})
}
