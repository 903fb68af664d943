package models

import (
	"sort"
	"sync"
)

// HolidaySet tracks calendar days (YYYY-MM-DD) scored under the relaxed
// holiday policy. Marking a day does not touch its logged entries.
type HolidaySet struct {
	mu   sync.RWMutex
	days map[string]struct{}
}

func NewHolidaySet() *HolidaySet {
	return &HolidaySet{days: make(map[string]struct{})}
}

func (hs *HolidaySet) Add(day string) {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.days[day] = struct{}{}
}

func (hs *HolidaySet) Remove(day string) {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	delete(hs.days, day)
}

func (hs *HolidaySet) Contains(day string) bool {
	hs.mu.RLock()
	defer hs.mu.RUnlock()
	_, ok := hs.days[day]
	return ok
}

func (hs *HolidaySet) Len() int {
	hs.mu.RLock()
	defer hs.mu.RUnlock()
	return len(hs.days)
}

func (hs *HolidaySet) List() []string {
	hs.mu.RLock()
	defer hs.mu.RUnlock()
	out := make([]string, 0, len(hs.days))
	for d := range hs.days {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

func (hs *HolidaySet) PutData(days []string) {
	data := make(map[string]struct{}, len(days))
	for _, d := range days {
		if d != "" {
			data[d] = struct{}{}
		}
	}
	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.days = data
}
