package engine

import (
	"time"

	"github.com/mitesh699/dealflow/internal/store"
)

// StalenessLevel classifies how long a relationship has gone without contact.
type StalenessLevel string

const (
	StalenessActive   StalenessLevel = "active"
	StalenessWarning  StalenessLevel = "warning"
	StalenessCritical StalenessLevel = "critical"
	StalenessDead     StalenessLevel = "dead"
)

// Thresholds are the inclusive lower bounds, in days, for each staleness
// level above active.
type Thresholds struct {
	WarningDays  int
	CriticalDays int
	DeadDays     int
}

// DefaultThresholds are the stock staleness boundaries.
var DefaultThresholds = Thresholds{
	WarningDays:  14,
	CriticalDays: 21,
	DeadDays:     30,
}

// Classify maps days-since-contact to a staleness level. Total and pure:
// every input, including negative days, maps to a level.
func (t Thresholds) Classify(days int) StalenessLevel {
	switch {
	case days >= t.DeadDays:
		return StalenessDead
	case days >= t.CriticalDays:
		return StalenessCritical
	case days >= t.WarningDays:
		return StalenessWarning
	default:
		return StalenessActive
	}
}

// staleDaysSentinel stands in for an unparsable last_contact date. The
// source of these dates is external input; a bad date reads as extremely
// stale rather than failing the whole scan.
const staleDaysSentinel = 999

// parseDays returns whole calendar days from a YYYY-MM-DD date to now.
func parseDays(date string, now time.Time) (int, error) {
	d, err := time.Parse(store.DateLayout, date)
	if err != nil {
		return 0, err
	}
	y, m, day := now.UTC().Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return int(today.Sub(d).Hours() / 24), nil
}

// DaysSince returns whole days between a YYYY-MM-DD date and now, falling
// back to the extreme-staleness sentinel when the date does not parse.
func DaysSince(date string, now time.Time) int {
	days, err := parseDays(date, now)
	if err != nil {
		return staleDaysSentinel
	}
	return days
}

// DaysSinceContact returns the days since the contact was last touched.
func (e *Engine) DaysSinceContact(c *store.Contact) int {
	return DaysSince(c.LastContact, e.Clock.Now())
}

// ClassifyContact returns the contact's current staleness level.
func (e *Engine) ClassifyContact(c *store.Contact) StalenessLevel {
	return e.Thresholds.Classify(e.DaysSinceContact(c))
}
