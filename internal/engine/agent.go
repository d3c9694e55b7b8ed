package engine

import (
	"fmt"

	"github.com/mitesh699/dealflow/internal/store"
)

// Agent action types.
const (
	ActionFollowUp         = "follow_up"
	ActionStageProgression = "stage_progression"
	ActionScoreUpdate      = "score_update"
	ActionArchive          = "archive"
)

// Impact levels attached to proposed actions. Display ordering only.
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
)

// StatusProposed is the status every candidate action starts in.
const StatusProposed = "proposed"

// Proposal rule constants. The day cutoffs deliberately mirror the
// staleness thresholds, so they come from Engine.Thresholds.
const (
	progressionMinScore = 65
	decayMinScore       = 40
	decayDelta          = -15
)

// AgentAction is a candidate mutation proposed by the scan. Not persisted;
// IDs restart at 1 on every scan.
type AgentAction struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	ContactID   string `json:"contact_id"`
	ContactName string `json:"contact_name"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
	Impact      string `json:"impact"`
}

// ProposeActions scans every non-passed contact and independently
// evaluates three rules, so one contact can yield up to three actions.
// IDs are sequential across the whole scan in contact-then-rule order.
// Nothing here mutates state; execution happens later, one action at a
// time, through ExecuteAction.
func (e *Engine) ProposeActions(contacts []store.Contact) []AgentAction {
	now := e.Clock.Now()
	var actions []AgentAction
	nextID := 1
	add := func(a AgentAction) {
		a.ID = nextID
		nextID++
		a.Status = StatusProposed
		actions = append(actions, a)
	}

	for i := range contacts {
		c := &contacts[i]
		if c.Stage == store.StagePassed {
			continue
		}
		days := DaysSince(c.LastContact, now)

		if days >= e.Thresholds.WarningDays {
			impact := ImpactMedium
			if days >= e.Thresholds.CriticalDays {
				impact = ImpactHigh
			}
			add(AgentAction{
				Type:        ActionFollowUp,
				ContactID:   c.ID,
				ContactName: c.Name,
				Company:     c.Company,
				Description: fmt.Sprintf("Schedule follow-up with %s", c.Name),
				Reason:      fmt.Sprintf("%d days since last contact", days),
				Impact:      impact,
			})
		}

		if c.Stage == store.StageProspect && c.Score >= progressionMinScore {
			add(AgentAction{
				Type:        ActionStageProgression,
				ContactID:   c.ID,
				ContactName: c.Name,
				Company:     c.Company,
				Description: fmt.Sprintf("Advance %s from prospect to intro", c.Name),
				Reason:      fmt.Sprintf("Score of %d signals readiness to engage", c.Score),
				Impact:      ImpactHigh,
			})
		}

		if days >= e.Thresholds.DeadDays && c.Score > decayMinScore {
			add(AgentAction{
				Type:        ActionScoreUpdate,
				ContactID:   c.ID,
				ContactName: c.Name,
				Company:     c.Company,
				Description: fmt.Sprintf("Lower %s's score by %d", c.Name, -decayDelta),
				Reason:      fmt.Sprintf("No activity in %d days", days),
				Impact:      ImpactMedium,
			})
		}
	}
	return actions
}
