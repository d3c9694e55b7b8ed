package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/mitesh699/dealflow/internal/store"
)

// ErrNotFound is returned by ExecuteAction when the contact id is unknown.
var ErrNotFound = errors.New("contact not found")

// nextStage maps each stage to its successor in the pipeline progression.
// passed and portfolio have no successor.
var nextStage = map[store.Stage]store.Stage{
	store.StageProspect:  store.StageIntro,
	store.StageIntro:     store.StageDiligence,
	store.StageDiligence: store.StagePortfolio,
}

// ActionParams carries optional execution parameters.
type ActionParams struct {
	// Delta applies to score_update only; nil means the stock -15.
	Delta *int `json:"delta,omitempty"`
}

// ExecResult reports the outcome of one action execution.
type ExecResult struct {
	Success bool           `json:"success"`
	Detail  string         `json:"detail"`
	Contact *store.Contact `json:"contact,omitempty"`
}

// ExecuteAction applies exactly one action to exactly one contact and
// persists the change. Holding a per-contact lock across the read-modify-
// write prevents lost updates from concurrent executions on the same
// contact. An unknown action type yields a failed result without mutating
// anything; only the lookup and the store can error.
//
// Re-executing stage_progression advances one more step and re-executing
// score_update re-applies the delta. That is the contract, not a bug to
// fix here.
func (e *Engine) ExecuteAction(contactID, actionType string, params ActionParams) (*ExecResult, error) {
	lock := e.contactLock(contactID)
	lock.Lock()
	defer lock.Unlock()

	c, err := e.DB.GetContact(contactID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}

	var detail string
	switch actionType {
	case ActionStageProgression:
		next, ok := nextStage[c.Stage]
		if !ok {
			// No successor: still a success, nothing changes.
			detail = fmt.Sprintf("%s is already at %s, no stage change", c.Name, c.Stage)
		} else {
			if err := e.DB.UpdateStage(c.ID, next); err != nil {
				return nil, err
			}
			detail = fmt.Sprintf("Advanced %s from %s to %s", c.Name, c.Stage, next)
			c.Stage = next
		}

	case ActionFollowUp:
		today := e.Clock.Now().Format(store.DateLayout)
		if err := e.DB.UpdateLastContact(c.ID, today); err != nil {
			return nil, err
		}
		c.LastContact = today
		detail = fmt.Sprintf("Marked %s as contacted on %s", c.Name, today)

	case ActionScoreUpdate:
		delta := decayDelta
		if params.Delta != nil {
			delta = *params.Delta
		}
		score := clampScore(c.Score + delta)
		if err := e.DB.UpdateScore(c.ID, score); err != nil {
			return nil, err
		}
		detail = fmt.Sprintf("Score for %s: %d to %d", c.Name, c.Score, score)
		c.Score = score

	case ActionArchive:
		if c.Stage != store.StagePassed {
			if err := e.DB.UpdateStage(c.ID, store.StagePassed); err != nil {
				return nil, err
			}
		}
		c.Stage = store.StagePassed
		detail = fmt.Sprintf("Archived %s to passed", c.Name)

	default:
		return &ExecResult{
			Success: false,
			Detail:  fmt.Sprintf("unknown action type %q", actionType),
		}, nil
	}

	if err := e.DB.AddActivity(c.ID, store.ActivityExecuted, actionType+": "+detail); err != nil {
		log.Printf("record activity for %s: %v", c.ID, err)
	}

	return &ExecResult{Success: true, Detail: detail, Contact: c}, nil
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
