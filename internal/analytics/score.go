package analytics

import (
	"math"
	"sort"
	"time"

	"tod/internal/models"
)

const (
	productiveWeight = 0.6
	wastefulWeight   = 0.3
	neutralWeight    = 0.1

	// decayFactor weights day i (0 = most recent) by decayFactor^i in the
	// composite average, so recent days dominate long histories.
	decayFactor = 0.9
)

// Score is the composite productivity result. TotalDays counts only
// regular (non-holiday) scored days; holidays contribute to the weighted
// average but not to the denominator statistic.
type Score struct {
	Score     float64 `json:"score"`
	TotalDays int     `json:"totalDays"`
}

// effectiveHours are per-category scoring hours for one day, with the
// pomodoro multiplier already applied per entry.
type effectiveHours struct {
	productive float64
	wasteful   float64
	neutral    float64
}

type dayScore struct {
	day     string
	score   float64
	regular bool
}

// ComputeScore folds the whole log into one recency-weighted score.
// Returns nil when there is nothing to score: an empty log means "no
// data", which must not be confused with a measured score of zero. The
// contract is score-or-nothing; unexpected internal failures also yield
// nil rather than a panic reaching the caller.
func ComputeScore(entries []models.TimeLogEntry, history *models.TargetHistory, holidays *models.HolidaySet, loc *time.Location, now time.Time) (result *Score) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
		}
	}()

	if len(entries) == 0 {
		return nil
	}
	if history == nil {
		history = models.NewTargetHistory()
	}

	byDay := make(map[string]effectiveHours)
	for i := range entries {
		day, ok := EntryDayKey(&entries[i], loc)
		if !ok {
			continue
		}
		hours := entries[i].EffectiveHours()
		eh := byDay[day]
		switch entries[i].Category {
		case models.CategoryProductive:
			eh.productive += hours
		case models.CategoryWasteful:
			eh.wasteful += hours
		case models.CategoryNeutral:
			eh.neutral += hours
		}
		byDay[day] = eh
	}
	if len(byDay) == 0 {
		return nil
	}

	// Target lookup is one history scan per distinct day, not per entry.
	targetsFor := make(map[string]models.DailyTargets, len(byDay))
	for day := range byDay {
		targetsFor[day] = history.AsOf(day, loc, now)
	}

	scored := make([]dayScore, 0, len(byDay))
	for day, eh := range byDay {
		targets := targetsFor[day]
		isHoliday := holidays != nil && holidays.Contains(day)
		scored = append(scored, dayScore{
			day:     day,
			score:   scoreDay(eh, targets, isHoliday),
			regular: !isHoliday,
		})
	}

	// Most recent first; day keys sort lexicographically.
	sort.Slice(scored, func(i, j int) bool {
		return scored[i].day > scored[j].day
	})

	var weightedSum, totalWeight float64
	totalDays := 0
	for i, ds := range scored {
		weight := math.Pow(decayFactor, float64(i))
		weightedSum += ds.score * weight
		totalWeight += weight
		if ds.regular {
			totalDays++
		}
	}

	return &Score{
		Score:     round2(weightedSum / totalWeight),
		TotalDays: totalDays,
	}
}

// scoreDay applies the per-day formula.
//
// Holidays are measured only by voluntary productive effort: the ratio is
// uncapped, there is no penalty term, and a zero productive target scores
// 0 instead of dividing by zero.
//
// Regular days combine a capped productive ratio, a capped wasteful
// penalty and a capped neutral balance at 60/30/10. A zero target
// denominator saturates its term at 100: a zero target is trivially
// met or exceeded. The result stays within [0, 100].
func scoreDay(eh effectiveHours, targets models.DailyTargets, isHoliday bool) float64 {
	if isHoliday {
		if targets.ProductiveHours == 0 {
			return 0
		}
		return eh.productive / targets.ProductiveHours * 100
	}

	productiveScore := cappedRatio(eh.productive, targets.ProductiveHours)
	wastefulPenalty := cappedRatio(eh.wasteful, targets.WastefulMaxHours)
	neutralBalance := cappedRatio(eh.neutral, targets.NeutralMaxHours)

	return productiveScore*productiveWeight +
		(100-wastefulPenalty)*wastefulWeight +
		neutralBalance*neutralWeight
}

func cappedRatio(actual, target float64) float64 {
	if target == 0 {
		return 100
	}
	return math.Min(actual/target*100, 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
