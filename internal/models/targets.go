package models

import (
	"sort"
	"sync"
	"time"
)

// DailyTargets is one target configuration, effective from Timestamp onward.
// Configurations are never edited in place; changing targets appends a new
// one so historical days keep the policy that was active at the time.
type DailyTargets struct {
	ProductiveHours  float64 `json:"productiveHours"`
	WastefulMaxHours float64 `json:"wastefulMaxHours"`
	NeutralMaxHours  float64 `json:"neutralMaxHours"`
	Timestamp        string  `json:"timestamp"`
}

func (t *DailyTargets) Valid() bool {
	if t.ProductiveHours < 0 || t.WastefulMaxHours < 0 || t.NeutralMaxHours < 0 {
		return false
	}
	_, err := time.Parse(time.RFC3339, t.Timestamp)
	return err == nil
}

func (t *DailyTargets) effectiveFrom() time.Time {
	ts, _ := time.Parse(time.RFC3339, t.Timestamp)
	return ts
}

// DefaultTargets is the configuration used when the user never set any.
func DefaultTargets() DailyTargets {
	return DailyTargets{
		ProductiveHours:  4,
		WastefulMaxHours: 1,
		NeutralMaxHours:  2,
		Timestamp:        time.Unix(0, 0).UTC().Format(time.RFC3339),
	}
}

// TargetHistory is an append-only, never-empty list of DailyTargets.
type TargetHistory struct {
	mu      sync.RWMutex
	targets []DailyTargets
}

func NewTargetHistory() *TargetHistory {
	return &TargetHistory{targets: []DailyTargets{DefaultTargets()}}
}

func (th *TargetHistory) Append(t DailyTargets) {
	th.mu.Lock()
	defer th.mu.Unlock()
	th.targets = append(th.targets, t)
}

func (th *TargetHistory) List() []DailyTargets {
	th.mu.RLock()
	defer th.mu.RUnlock()
	out := make([]DailyTargets, len(th.targets))
	copy(out, th.targets)
	return out
}

func (th *TargetHistory) Len() int {
	th.mu.RLock()
	defer th.mu.RUnlock()
	return len(th.targets)
}

// PutData replaces the history, dropping malformed configurations. An empty
// or fully malformed replacement falls back to the default configuration.
func (th *TargetHistory) PutData(targets []DailyTargets) {
	valid := make([]DailyTargets, 0, len(targets))
	for _, t := range targets {
		if t.Valid() {
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		valid = []DailyTargets{DefaultTargets()}
	}
	th.mu.Lock()
	defer th.mu.Unlock()
	th.targets = valid
}

// AsOf resolves the configuration governing the calendar day `day`
// (YYYY-MM-DD in loc). A configuration created at any instant within the
// day governs that day. Days after `now` use the newest known
// configuration since no future one exists. Days before all configurations
// use the earliest. Never fails: malformed state degrades to defaults.
func (th *TargetHistory) AsOf(day string, loc *time.Location, now time.Time) DailyTargets {
	sorted := th.sortedDesc()
	if len(sorted) == 0 {
		return DefaultTargets()
	}

	dayStart, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return sorted[0]
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if dayStart.After(today) {
		return sorted[0]
	}

	dayEnd := dayStart.AddDate(0, 0, 1)
	for _, t := range sorted {
		if t.effectiveFrom().Before(dayEnd) {
			return t
		}
	}
	// Query precedes every configuration; the earliest one applies.
	return sorted[len(sorted)-1]
}

// sortedDesc returns valid configurations, newest first.
func (th *TargetHistory) sortedDesc() []DailyTargets {
	th.mu.RLock()
	defer th.mu.RUnlock()

	sorted := make([]DailyTargets, 0, len(th.targets))
	for _, t := range th.targets {
		if t.Valid() {
			sorted = append(sorted, t)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].effectiveFrom().After(sorted[j].effectiveFrom())
	})
	return sorted
}
