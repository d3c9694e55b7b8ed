package ai

import (
	"regexp"
	"strconv"

	"github.com/mitesh699/dealflow/internal/store"
)

// Filter is a natural-language contact query reduced to structured terms.
// Zero values mean "no constraint". Staleness is a level name ("warning",
// "critical", "dead") or the looser "stale"; the caller decides what each
// admits.
type Filter struct {
	Stage     store.Stage `json:"stage,omitempty"`
	MinScore  *int        `json:"min_score,omitempty"`
	MaxScore  *int        `json:"max_score,omitempty"`
	Staleness string      `json:"staleness,omitempty"`
}

var (
	stageWordRe = regexp.MustCompile(`(?i)\b(prospect|intro|diligence|portfolio|passed)s?\b`)
	minScoreRe  = regexp.MustCompile(`(?i)score\s*(?:>=|>|above|over|at least)\s*(\d+)`)
	maxScoreRe  = regexp.MustCompile(`(?i)score\s*(?:<=|<|below|under|at most)\s*(\d+)`)
	stalenessRe = regexp.MustCompile(`(?i)\b(dead|critical|warning|stale)\b`)
)

// ParseFilter reduces a query like "stale prospects with score > 50" to a
// Filter. Unrecognized text is ignored; an empty query matches everything.
func ParseFilter(query string) Filter {
	var f Filter

	if m := stageWordRe.FindStringSubmatch(query); m != nil {
		f.Stage = store.Stage(toLowerASCII(m[1]))
	}
	if m := minScoreRe.FindStringSubmatch(query); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			f.MinScore = &n
		}
	}
	if m := maxScoreRe.FindStringSubmatch(query); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			f.MaxScore = &n
		}
	}
	if m := stalenessRe.FindStringSubmatch(query); m != nil {
		f.Staleness = toLowerASCII(m[1])
	}
	return f
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
