package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Stage is a contact's position in the pipeline funnel.
type Stage string

const (
	StageProspect  Stage = "prospect"
	StageIntro     Stage = "intro"
	StageDiligence Stage = "diligence"
	StagePortfolio Stage = "portfolio"
	StagePassed    Stage = "passed"
)

// ValidStage reports whether s is one of the five pipeline stages.
func ValidStage(s Stage) bool {
	switch s {
	case StageProspect, StageIntro, StageDiligence, StagePortfolio, StagePassed:
		return true
	}
	return false
}

// DateLayout is the calendar-date format used for last_contact and created_at.
const DateLayout = "2006-01-02"

// Contact is a tracked relationship in the pipeline.
type Contact struct {
	ID          string
	Name        string
	Company     string
	Role        string
	Email       string
	Stage       Stage
	Score       int
	LastContact string // YYYY-MM-DD; may be unparsable from external input
	CreatedAt   string // YYYY-MM-DD, immutable after creation
	Tags        []string
	Notes       string
	UpdatedAt   int64
}

// CreateContact inserts a new contact. Assigns a uuid if the ID is empty and
// defaults created_at and last_contact to today.
func (db *DB) CreateContact(c *Contact) error {
	now := time.Now()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Stage == "" {
		c.Stage = StageProspect
	}
	today := now.Format(DateLayout)
	if c.CreatedAt == "" {
		c.CreatedAt = today
	}
	if c.LastContact == "" {
		c.LastContact = today
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	tags, err := json.Marshal(c.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}
	c.UpdatedAt = now.UnixMilli()

	_, err = db.Exec(`
		INSERT INTO contacts (id, name, company, role, email, stage, score, last_contact, created_at, tags, notes, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.Name, c.Company, c.Role, c.Email, string(c.Stage), c.Score,
		c.LastContact, c.CreatedAt, string(tags), c.Notes, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

const contactColumns = "id, name, company, role, email, stage, score, last_contact, created_at, tags, notes, updated_at"

func scanContact(row interface{ Scan(...any) error }) (*Contact, error) {
	var c Contact
	var stage, tags string
	err := row.Scan(&c.ID, &c.Name, &c.Company, &c.Role, &c.Email, &stage, &c.Score,
		&c.LastContact, &c.CreatedAt, &tags, &c.Notes, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Stage = Stage(stage)
	if err := json.Unmarshal([]byte(tags), &c.Tags); err != nil {
		c.Tags = []string{}
	}
	return &c, nil
}

// GetContact returns a contact by id, or (nil, nil) if it does not exist.
func (db *DB) GetContact(id string) (*Contact, error) {
	row := db.QueryRow("SELECT "+contactColumns+" FROM contacts WHERE id = ?", id)
	c, err := scanContact(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

// ListContacts returns all contacts, including passed ones, in insertion order.
// Insertion order keeps derived notification/action IDs deterministic.
func (db *DB) ListContacts() ([]Contact, error) {
	rows, err := db.Query("SELECT " + contactColumns + " FROM contacts ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, *c)
	}
	return contacts, rows.Err()
}

// ListContactsByStage returns all contacts in the given stage, in insertion order.
func (db *DB) ListContactsByStage(stage Stage) ([]Contact, error) {
	rows, err := db.Query("SELECT "+contactColumns+" FROM contacts WHERE stage = ? ORDER BY rowid", string(stage))
	if err != nil {
		return nil, fmt.Errorf("list contacts by stage: %w", err)
	}
	defer rows.Close()

	var contacts []Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, *c)
	}
	return contacts, rows.Err()
}

// UpdateContact rewrites the mutable fields of an existing contact.
// created_at is never touched. Returns (false, nil) if no such contact.
func (db *DB) UpdateContact(c *Contact) (bool, error) {
	tags, err := json.Marshal(c.Tags)
	if err != nil {
		return false, fmt.Errorf("marshal tags: %w", err)
	}
	c.UpdatedAt = time.Now().UnixMilli()

	res, err := db.Exec(`
		UPDATE contacts SET name = ?, company = ?, role = ?, email = ?, stage = ?,
			score = ?, last_contact = ?, tags = ?, notes = ?, updated_at = ?
		WHERE id = ?
	`, c.Name, c.Company, c.Role, c.Email, string(c.Stage), c.Score,
		c.LastContact, string(tags), c.Notes, c.UpdatedAt, c.ID)
	if err != nil {
		return false, fmt.Errorf("update contact: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// UpdateStage sets a contact's stage.
func (db *DB) UpdateStage(id string, stage Stage) error {
	_, err := db.Exec("UPDATE contacts SET stage = ?, updated_at = ? WHERE id = ?",
		string(stage), time.Now().UnixMilli(), id)
	if err != nil {
		return fmt.Errorf("update stage: %w", err)
	}
	return nil
}

// UpdateScore sets a contact's score.
func (db *DB) UpdateScore(id string, score int) error {
	_, err := db.Exec("UPDATE contacts SET score = ?, updated_at = ? WHERE id = ?",
		score, time.Now().UnixMilli(), id)
	if err != nil {
		return fmt.Errorf("update score: %w", err)
	}
	return nil
}

// UpdateLastContact sets a contact's last_contact date.
func (db *DB) UpdateLastContact(id, date string) error {
	_, err := db.Exec("UPDATE contacts SET last_contact = ?, updated_at = ? WHERE id = ?",
		date, time.Now().UnixMilli(), id)
	if err != nil {
		return fmt.Errorf("update last contact: %w", err)
	}
	return nil
}

// DeleteContact removes a contact and, via cascade, its activities.
// Returns (false, nil) if no such contact.
func (db *DB) DeleteContact(id string) (bool, error) {
	res, err := db.Exec("DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete contact: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// CountByStage returns the number of contacts in each stage.
func (db *DB) CountByStage() (map[Stage]int, error) {
	rows, err := db.Query("SELECT stage, COUNT(*) FROM contacts GROUP BY stage")
	if err != nil {
		return nil, fmt.Errorf("count by stage: %w", err)
	}
	defer rows.Close()

	counts := make(map[Stage]int)
	for rows.Next() {
		var stage string
		var n int
		if err := rows.Scan(&stage, &n); err != nil {
			return nil, fmt.Errorf("scan stage count: %w", err)
		}
		counts[Stage(stage)] = n
	}
	return counts, rows.Err()
}
