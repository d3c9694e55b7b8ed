package engine

import (
	"testing"
	"time"

	"github.com/mitesh699/dealflow/internal/store"
)

// testNow is the pinned instant all engine tests run against.
var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// daysAgo formats the date n whole days before testNow.
func daysAgo(n int) string {
	return testNow.AddDate(0, 0, -n).Format(store.DateLayout)
}

func testDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// testEngine returns an engine with a pinned clock and an in-memory store.
func testEngine(t *testing.T) *Engine {
	t.Helper()
	return New(testDB(t), fixedClock{testNow})
}

// pureEngine returns an engine with a pinned clock and no store, for the
// read-only scans that never touch the repository.
func pureEngine() *Engine {
	return New(nil, fixedClock{testNow})
}
