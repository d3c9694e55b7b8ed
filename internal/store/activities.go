package store

import (
	"fmt"
	"time"
)

// Activity kinds recorded against a contact.
const (
	ActivityCreated  = "created"
	ActivityUpdated  = "updated"
	ActivityExecuted = "agent_action"
)

// Activity is one entry in a contact's audit trail.
type Activity struct {
	ID        int64
	ContactID string
	Kind      string
	Detail    string
	CreatedAt int64
}

// AddActivity appends an activity row for a contact.
func (db *DB) AddActivity(contactID, kind, detail string) error {
	_, err := db.Exec(`
		INSERT INTO activities (contact_id, kind, detail, created_at)
		VALUES (?, ?, ?, ?)
	`, contactID, kind, detail, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("add activity: %w", err)
	}
	return nil
}

// ListActivities returns a contact's activities, newest first.
func (db *DB) ListActivities(contactID string) ([]Activity, error) {
	rows, err := db.Query(`
		SELECT id, contact_id, kind, detail, created_at
		FROM activities WHERE contact_id = ?
		ORDER BY created_at DESC, id DESC
	`, contactID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.ContactID, &a.Kind, &a.Detail, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
