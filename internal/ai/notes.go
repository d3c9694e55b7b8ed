package ai

import (
	"regexp"
	"strings"
)

// MeetingNotes is the synthesized summary of pasted meeting notes.
type MeetingNotes struct {
	ActionItems    []string `json:"action_items"`
	MentionedDates []string `json:"mentioned_dates"`
	Sentiment      string   `json:"sentiment"`
}

var (
	// A line is an action item when it opens (after optional list markers)
	// with an imperative verb from the outreach vocabulary.
	actionItemRe = regexp.MustCompile(`(?i)^[-*]?\s*(?:send|schedule|follow up|intro(?:duce)?|review|prepare|share|draft|confirm|book)\b`)

	mentionedDateRe = regexp.MustCompile(`(?i)\b(?:\d{4}-\d{2}-\d{2}|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{1,2}|tomorrow|next week|next month)\b`)
)

// ExtractNotes pulls action items, mentioned dates, and overall sentiment
// from free-form meeting notes. Lines that match nothing are ignored.
func ExtractNotes(text string) MeetingNotes {
	notes := MeetingNotes{
		ActionItems:    []string{},
		MentionedDates: []string{},
		Sentiment:      sentimentOf(text),
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if actionItemRe.MatchString(line) {
			notes.ActionItems = append(notes.ActionItems, strings.TrimLeft(line, "-* "))
		}
	}

	for _, m := range mentionedDateRe.FindAllString(text, -1) {
		notes.MentionedDates = append(notes.MentionedDates, m)
	}
	return notes
}
