package sheet

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	sheet Sheet
	done  chan struct{}
}

// Store is the in-memory registry of uploaded sheets. Each upload is read
// by a single asynchronous parse; completion or failure is delivered as a
// state update on the entry.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
}

// NewStore creates a store whose sheets expire after ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]*entry),
		ttl:     ttl,
	}
}

// Create registers a new sheet in loading status and starts its parse.
// The returned id is usable immediately; callers observe the outcome
// through Get or Wait.
func (s *Store) Create(filename string, content []byte) string {
	id := uuid.NewString()
	e := &entry{
		sheet: Sheet{
			ID:        id,
			Filename:  filename,
			Status:    StatusLoading,
			CreatedAt: time.Now(),
		},
		done: make(chan struct{}),
	}

	s.mu.Lock()
	s.entries[id] = e
	s.mu.Unlock()

	log.Printf("[Store] Sheet %s registered for %s (%d bytes)", id, filename, len(content))
	go s.load(e, content)

	return id
}

// load runs the parse-and-validate pipeline for one upload.
func (s *Store) load(e *entry, content []byte) {
	defer close(e.done)

	rows, summary, err := parseAndValidate(e.sheet.Filename, content)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		e.sheet.Status = StatusFailed
		e.sheet.Err = userMessage(err)
		e.sheet.Rows = nil
		log.Printf("[Store] Sheet %s failed: %v", e.sheet.ID, err)
		return
	}

	e.sheet.Status = StatusReady
	e.sheet.Rows = rows
	e.sheet.Summary = summary
	log.Printf("[Store] Sheet %s ready (%d rows)", e.sheet.ID, len(rows))
}

// Get returns a snapshot of the sheet with the given id.
func (s *Store) Get(id string) (Sheet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok {
		return Sheet{}, false
	}
	return e.sheet, true
}

// Delete removes the sheet with the given id. Clearing an upload resets
// everything the server holds for it.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; ok {
		delete(s.entries, id)
		log.Printf("[Store] Sheet %s cleared", id)
	}
}

// Wait blocks until the sheet with the given id leaves loading status.
// Unknown ids return immediately.
func (s *Store) Wait(id string) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()

	if ok {
		<-e.done
	}
}

// Len returns the number of sheets currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sweep drops sheets older than the store's TTL and returns how many were
// removed. Loading sheets are never swept.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.entries {
		if e.sheet.Status == StatusLoading {
			continue
		}
		if now.Sub(e.sheet.CreatedAt) > s.ttl {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// StartJanitor periodically sweeps expired sheets until ctx is cancelled.
func (s *Store) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if removed := s.Sweep(now); removed > 0 {
					log.Printf("[Store] Janitor removed %d expired sheets", removed)
				}
			}
		}
	}()
}
