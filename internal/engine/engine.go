package engine

import (
	"sync"

	"github.com/mitesh699/dealflow/internal/store"
)

// Engine derives staleness, follow-up guidance, notifications, and agent
// actions from the contact collection, and executes approved agent actions.
// Classification and policy evaluation are pure package functions; Engine
// adds the clock, the thresholds, and the repository used by the executor.
type Engine struct {
	DB         *store.DB
	Clock      Clock
	Thresholds Thresholds

	// Per-contact mutation locks. Executions against the same contact are
	// serialized; different contacts proceed in parallel.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an Engine over the given store. A nil clock means the system
// clock.
func New(db *store.DB, clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Engine{
		DB:         db,
		Clock:      clock,
		Thresholds: DefaultThresholds,
		locks:      make(map[string]*sync.Mutex),
	}
}

func (e *Engine) contactLock(id string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[id]
	if !ok {
		l = &sync.Mutex{}
		e.locks[id] = l
	}
	return l
}
