// Package analytics turns a raw, unordered time log into daily aggregates,
// a recency-weighted productivity score and trend summaries. Everything
// here is a pure function over snapshots: no shared state, no locks.
package analytics

import (
	"time"

	"tod/internal/models"
)

const DayLayout = "2006-01-02"

// DayKey buckets an instant into its calendar day in loc. One location is
// applied uniformly everywhere; mixing UTC and local day keys shifts
// entries logged near midnight into the wrong day.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayLayout)
}

// EntryDayKey returns the day bucket for an entry, or ok=false when its
// timestamp does not parse.
func EntryDayKey(e *models.TimeLogEntry, loc *time.Location) (string, bool) {
	ts, err := e.Time()
	if err != nil {
		return "", false
	}
	return DayKey(ts, loc), true
}

// DayTotals are raw per-category minutes for one calendar day. The
// pomodoro multiplier is a scoring concern and is not applied here.
type DayTotals struct {
	Productive int `json:"productive"`
	Wasteful   int `json:"wasteful"`
	Neutral    int `json:"neutral"`
}

func (d DayTotals) Total() int {
	return d.Productive + d.Wasteful + d.Neutral
}

func (d *DayTotals) add(category models.Category, minutes int) {
	switch category {
	case models.CategoryProductive:
		d.Productive += minutes
	case models.CategoryWasteful:
		d.Wasteful += minutes
	case models.CategoryNeutral:
		d.Neutral += minutes
	}
}

// GroupByDay produces the sparse day -> totals mapping. Days without
// entries are absent. Accumulation is commutative, so entry order never
// affects the result. Entries with unparseable timestamps are skipped.
func GroupByDay(entries []models.TimeLogEntry, loc *time.Location) map[string]DayTotals {
	totals := make(map[string]DayTotals)
	for i := range entries {
		day, ok := EntryDayKey(&entries[i], loc)
		if !ok {
			continue
		}
		t := totals[day]
		t.add(entries[i].Category, entries[i].DurationMinutes())
		totals[day] = t
	}
	return totals
}

// FilterDay returns the entries falling on one calendar day.
func FilterDay(entries []models.TimeLogEntry, day string, loc *time.Location) []models.TimeLogEntry {
	out := make([]models.TimeLogEntry, 0)
	for i := range entries {
		if k, ok := EntryDayKey(&entries[i], loc); ok && k == day {
			out = append(out, entries[i])
		}
	}
	return out
}
