package models

import "sync"

// EntryStore is the in-memory append-only time log. Readers always get
// copies; the analytics code never observes concurrent mutation.
type EntryStore struct {
	mu      sync.RWMutex
	entries []TimeLogEntry
}

func NewEntryStore() *EntryStore {
	return &EntryStore{entries: make([]TimeLogEntry, 0)}
}

func (s *EntryStore) Append(e TimeLogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
}

func (s *EntryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetAll returns a snapshot copy of the full log.
func (s *EntryStore) GetAll() []TimeLogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]TimeLogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Delete removes entries whose IDs appear in ids and reports how many
// were removed.
func (s *EntryStore) Delete(ids []string) int {
	if len(ids) == 0 {
		return 0
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	removed := 0
	for _, e := range s.entries {
		if _, ok := drop[e.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return removed
}

// PutData replaces the whole log, e.g. on restore or import.
func (s *EntryStore) PutData(entries []TimeLogEntry) {
	data := make([]TimeLogEntry, len(entries))
	copy(data, entries)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = data
}
