package engine

import (
	"github.com/mitesh699/dealflow/internal/store"
)

// Priority ranks how urgently a contact needs outreach. Distinct from
// staleness: a fresh diligence contact can already be urgent.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// priorityRank gives the sort order over priorities; urgent sorts first.
func priorityRank(p Priority) int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

// EvaluateFollowUp returns the follow-up suggestion and priority for a
// contact in the given stage with the given days since last contact.
func EvaluateFollowUp(stage store.Stage, days int) (string, Priority) {
	return suggestionFor(stage, days), priorityFor(stage, days)
}

// FollowUpFor evaluates the follow-up policy for one contact.
func (e *Engine) FollowUpFor(c *store.Contact) (string, Priority) {
	return EvaluateFollowUp(c.Stage, e.DaysSinceContact(c))
}

// suggestionFor is a per-stage ladder; within a stage the first matching
// rung wins.
func suggestionFor(stage store.Stage, days int) string {
	switch stage {
	case store.StagePassed:
		return "Consider revisiting if thesis changes"
	case store.StagePortfolio:
		switch {
		case days > 14:
			return "Schedule monthly check-in call"
		case days > 7:
			return "Send portfolio update request"
		default:
			return "Relationship healthy"
		}
	case store.StageDiligence:
		switch {
		case days > 7:
			return "Follow up on outstanding diligence materials"
		case days > 3:
			return "Schedule technical deep-dive or reference call"
		default:
			return "Continue diligence process"
		}
	case store.StageIntro:
		switch {
		case days > 14:
			return "Re-engage with warm intro or new angle"
		case days > 7:
			return "Schedule follow-up meeting"
		default:
			return "Send additional materials or thesis alignment notes"
		}
	default: // prospect
		switch {
		case days > 21:
			return "Cold — consider archiving or re-engaging"
		case days > 14:
			return "Send personalized outreach with thesis updates"
		case days > 7:
			return "Follow up on initial outreach"
		default:
			return "Monitor for signals"
		}
	}
}

// priorityFor applies the priority rules in order; the first match wins.
// Stage-specific rules fire before the generic day thresholds, so a
// diligence contact at 6 days is urgent even though 6 days is otherwise low.
func priorityFor(stage store.Stage, days int) Priority {
	switch {
	case stage == store.StagePassed:
		return PriorityLow
	case stage == store.StageDiligence && days > 5:
		return PriorityUrgent
	case stage == store.StagePortfolio && days > 14:
		return PriorityUrgent
	case days > 21:
		return PriorityUrgent
	case days > 14:
		return PriorityHigh
	case days > 7:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
