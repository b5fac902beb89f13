package state

import (
	"sync"
	"time"

	"github.com/apex/log"
)

// JournalEntry records one applied event.
type JournalEntry struct {
	Event Event
	At    time.Time
}

// Store is the single owner of State. Every transition goes through
// Dispatch, which applies events one at a time under the write lock, so
// completions for the same key land in the order they are dispatched: the
// last completion wins.
//
// The zero value is ready to use and keeps no journal.
type Store struct {
	mu          sync.RWMutex
	state       State
	lastUpdated time.Time
	journal     []JournalEntry
	journalSize int
	log         log.Interface
}

// NewStore returns a Store that keeps the most recent journalSize events.
// A nil logger disables event logging.
func NewStore(journalSize int, logger log.Interface) *Store {
	if journalSize < 0 {
		journalSize = 0
	}
	return &Store{journalSize: journalSize, log: logger}
}

// Dispatch applies events in order.
func (s *Store) Dispatch(events ...Event) {
	if len(events) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for _, ev := range events {
		if ev == nil {
			continue
		}
		s.state = Reduce(s.state, ev)
		s.lastUpdated = now
		s.record(ev, now)
		if s.log != nil {
			s.log.WithField("event", string(ev.Type())).Debug("dispatch")
		}
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Lookup returns the detail cache entry for unitCode without copying the
// whole state.
func (s *Store) Lookup(unitCode string) (DetailEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.state.Cache[unitCode]
	if ok && entry.Detail != nil {
		detail := entry.Detail.Clone()
		entry.Detail = &detail
	}
	return entry, ok
}

// LastUpdated reports when the last event was applied.
func (s *Store) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

// Journal returns the retained events, oldest first.
func (s *Store) Journal() []JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.journal) == 0 {
		return nil
	}
	dup := make([]JournalEntry, len(s.journal))
	copy(dup, s.journal)
	return dup
}

func (s *Store) record(ev Event, at time.Time) {
	if s.journalSize == 0 {
		return
	}
	if len(s.journal) == s.journalSize {
		copy(s.journal, s.journal[1:])
		s.journal = s.journal[:len(s.journal)-1]
	}
	s.journal = append(s.journal, JournalEntry{Event: ev, At: at})
}
