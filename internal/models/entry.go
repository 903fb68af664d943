package models

import (
	"errors"
	"time"
)

type Category string

const (
	CategoryProductive Category = "productive"
	CategoryNeutral    Category = "neutral"
	CategoryWasteful   Category = "wasteful"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryProductive, CategoryNeutral, CategoryWasteful:
		return true
	}
	return false
}

// PomodoroMultiplier boosts an entry's weight in scoring. It never affects
// raw minute totals or exports.
const PomodoroMultiplier = 1.5

// TimeLogEntry is one logged activity. JSON field names match the backup
// format of exported log files and must not change.
type TimeLogEntry struct {
	ID         string   `json:"id"`
	Activity   string   `json:"activity"`
	Hours      int      `json:"hours"`
	Minutes    int      `json:"minutes"`
	Category   Category `json:"category"`
	Timestamp  string   `json:"timestamp"`
	Synced     bool     `json:"synced,omitempty"`
	IsPomodoro bool     `json:"isPomodoro,omitempty"`
}

var (
	ErrInvalidCategory  = errors.New("category must be one of productive, neutral, wasteful")
	ErrNegativeDuration = errors.New("hours and minutes must be non-negative")
	ErrBadTimestamp     = errors.New("timestamp must be RFC3339")
)

// Normalize carries minute overflow into hours and substitutes the category
// name for a blank activity label.
func (e *TimeLogEntry) Normalize() {
	if e.Minutes >= 60 {
		e.Hours += e.Minutes / 60
		e.Minutes %= 60
	}
	if e.Activity == "" {
		e.Activity = string(e.Category)
	}
}

func (e *TimeLogEntry) Validate() error {
	if !e.Category.Valid() {
		return ErrInvalidCategory
	}
	if e.Hours < 0 || e.Minutes < 0 {
		return ErrNegativeDuration
	}
	if e.Timestamp != "" {
		if _, err := e.Time(); err != nil {
			return ErrBadTimestamp
		}
	}
	return nil
}

// DurationMinutes is the raw logged duration.
func (e *TimeLogEntry) DurationMinutes() int {
	return e.Hours*60 + e.Minutes
}

// EffectiveHours is the scoring-weighted duration in fractional hours.
func (e *TimeLogEntry) EffectiveHours() float64 {
	hours := float64(e.Hours) + float64(e.Minutes)/60
	if e.IsPomodoro {
		return hours * PomodoroMultiplier
	}
	return hours
}

// Time parses the entry's creation instant.
func (e *TimeLogEntry) Time() (time.Time, error) {
	return time.Parse(time.RFC3339, e.Timestamp)
}
