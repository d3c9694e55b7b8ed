// Package ai implements the deterministic free-text extraction behind the
// mocked AI endpoints. There is no model behind these: compiled regexps and
// keyword lists produce stable, testable output.
package ai

import (
	"regexp"
	"strings"

	"github.com/mitesh699/dealflow/internal/store"
)

// TriageResult is the synthesized triage of an inbound note or email.
type TriageResult struct {
	Company        string      `json:"company"`
	ContactName    string      `json:"contact_name"`
	Sentiment      string      `json:"sentiment"`
	SuggestedStage store.Stage `json:"suggested_stage"`
	Urgency        string      `json:"urgency"`
}

var (
	companyRe = regexp.MustCompile(`\b(?:at|from|of)\s+([A-Z][A-Za-z0-9&'.-]*(?:\s+[A-Z][A-Za-z0-9&'.-]*)?)`)
	// Case-folding the verb phrase by hand keeps the name capture strict:
	// a (?i) flag would let [A-Z] match lowercase words.
	nameRe = regexp.MustCompile(`(?:[Mm]et with|[Cc]all with|[Ss]poke (?:to|with)|[Ii]ntro(?:duced)? to)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)
	urgentRe  = regexp.MustCompile(`(?i)\b(?:asap|urgent|urgently|immediately|today|this week)\b`)
)

var positiveWords = []string{
	"excited", "great", "strong", "impressive", "promising", "love", "traction",
}

var negativeWords = []string{
	"concerned", "concern", "weak", "risk", "churn", "pass", "disappointing",
}

// stageSignals are checked in order; the first match names the stage.
var stageSignals = []struct {
	re    *regexp.Regexp
	stage store.Stage
}{
	{regexp.MustCompile(`(?i)\b(?:pass(?:ing)? on|not a fit)\b`), store.StagePassed},
	{regexp.MustCompile(`(?i)\b(?:term sheet|invest(?:ment)?|wire|closing)\b`), store.StagePortfolio},
	{regexp.MustCompile(`(?i)\b(?:diligence|data room|reference call)\b`), store.StageDiligence},
	{regexp.MustCompile(`(?i)\b(?:intro|meeting|call|demo)\b`), store.StageIntro},
}

// Triage extracts a company, a contact name, sentiment, a suggested stage,
// and urgency from free text. Every field has a defined fallback; the
// function never fails.
func Triage(text string) TriageResult {
	result := TriageResult{
		Sentiment:      sentimentOf(text),
		SuggestedStage: store.StageProspect,
		Urgency:        "normal",
	}

	if m := companyRe.FindStringSubmatch(text); m != nil {
		result.Company = m[1]
	}
	if m := nameRe.FindStringSubmatch(text); m != nil {
		result.ContactName = m[1]
	}
	if urgentRe.MatchString(text) {
		result.Urgency = "high"
	}
	for _, s := range stageSignals {
		if s.re.MatchString(text) {
			result.SuggestedStage = s.stage
			break
		}
	}
	return result
}

// sentimentOf counts keyword hits from each list; majority wins, ties and
// silence are neutral.
func sentimentOf(text string) string {
	lower := strings.ToLower(text)
	var pos, neg int
	for _, w := range positiveWords {
		pos += strings.Count(lower, w)
	}
	for _, w := range negativeWords {
		neg += strings.Count(lower, w)
	}
	switch {
	case pos > neg:
		return "positive"
	case neg > pos:
		return "negative"
	default:
		return "neutral"
	}
}
