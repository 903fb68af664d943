package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tod/internal/models"
)

var scoreNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// History with the default configuration only: P=4, W=1, N=2.
func defaultHistory() *models.TargetHistory {
	return models.NewTargetHistory()
}

func TestComputeScore_EmptyLogMeansNoScore(t *testing.T) {
	result := ComputeScore(nil, defaultHistory(), models.NewHolidaySet(), time.UTC, scoreNow)
	assert.Nil(t, result)

	result = ComputeScore([]models.TimeLogEntry{}, defaultHistory(), models.NewHolidaySet(), time.UTC, scoreNow)
	assert.Nil(t, result)
}

func TestComputeScore_OnlyBadTimestamps(t *testing.T) {
	entries := []models.TimeLogEntry{entry("garbage", models.CategoryProductive, 2, 0)}
	assert.Nil(t, ComputeScore(entries, defaultHistory(), models.NewHolidaySet(), time.UTC, scoreNow))
}

// Worked by hand: productive 3h of target 4 gives 75, wasteful 2h of max
// 1 saturates the penalty, no neutral time. 75*0.6 + 0*0.3 + 0*0.1 = 45.
func TestComputeScore_SingleRegularDay(t *testing.T) {
	entries := []models.TimeLogEntry{
		entry("2024-03-01T09:00:00Z", models.CategoryProductive, 3, 0),
		entry("2024-03-01T15:00:00Z", models.CategoryWasteful, 2, 0),
	}

	result := ComputeScore(entries, defaultHistory(), models.NewHolidaySet(), time.UTC, scoreNow)

	require.NotNil(t, result)
	assert.Equal(t, 45.0, result.Score)
	assert.Equal(t, 1, result.TotalDays)
}

func TestComputeScore_SingleHolidayDay(t *testing.T) {
	entries := []models.TimeLogEntry{
		entry("2024-03-01T09:00:00Z", models.CategoryProductive, 3, 0),
		entry("2024-03-01T15:00:00Z", models.CategoryWasteful, 2, 0),
	}
	holidays := models.NewHolidaySet()
	holidays.Add("2024-03-01")

	result := ComputeScore(entries, defaultHistory(), holidays, time.UTC, scoreNow)

	require.NotNil(t, result)
	// Only productive effort counts; wasteful time is not penalized.
	assert.Equal(t, 75.0, result.Score)
	assert.Equal(t, 0, result.TotalDays)
}

func TestComputeScore_HolidayUncappedAbove100(t *testing.T) {
	entries := []models.TimeLogEntry{
		entry("2024-03-01T09:00:00Z", models.CategoryProductive, 8, 0),
	}
	holidays := models.NewHolidaySet()
	holidays.Add("2024-03-01")

	result := ComputeScore(entries, defaultHistory(), holidays, time.UTC, scoreNow)

	require.NotNil(t, result)
	assert.Equal(t, 200.0, result.Score)
}

func TestComputeScore_HolidaysExcludedFromTotalDays(t *testing.T) {
	entries := []models.TimeLogEntry{
		entry("2024-03-01T09:00:00Z", models.CategoryProductive, 2, 0),
		entry("2024-03-02T09:00:00Z", models.CategoryProductive, 2, 0),
		entry("2024-03-03T09:00:00Z", models.CategoryProductive, 2, 0),
		entry("2024-03-04T09:00:00Z", models.CategoryProductive, 2, 0),
	}
	holidays := models.NewHolidaySet()
	holidays.Add("2024-03-04")

	result := ComputeScore(entries, defaultHistory(), holidays, time.UTC, scoreNow)

	require.NotNil(t, result)
	assert.Equal(t, 3, result.TotalDays)
}

// Same per-day scores, different recency: the composite must favor
// whichever score is on the more recent day.
func TestComputeScore_RecencyDecay(t *testing.T) {
	goodRecent := []models.TimeLogEntry{
		entry("2024-03-02T09:00:00Z", models.CategoryProductive, 4, 0),
		entry("2024-03-01T09:00:00Z", models.CategoryWasteful, 2, 0),
	}
	goodOld := []models.TimeLogEntry{
		entry("2024-03-01T09:00:00Z", models.CategoryProductive, 4, 0),
		entry("2024-03-02T09:00:00Z", models.CategoryWasteful, 2, 0),
	}

	recent := ComputeScore(goodRecent, defaultHistory(), models.NewHolidaySet(), time.UTC, scoreNow)
	old := ComputeScore(goodOld, defaultHistory(), models.NewHolidaySet(), time.UTC, scoreNow)

	require.NotNil(t, recent)
	require.NotNil(t, old)
	// Good day scores 90, bad day 0. Weighted 1 vs 0.9:
	// recent-good = 90/1.9, old-good = 81/1.9.
	assert.Equal(t, 47.37, recent.Score)
	assert.Equal(t, 42.63, old.Score)
	assert.Greater(t, recent.Score, old.Score)
}

func TestComputeScore_PomodoroMultiplier(t *testing.T) {
	plain := []models.TimeLogEntry{
		entry("2024-03-01T09:00:00Z", models.CategoryProductive, 2, 0),
	}
	pomodoro := []models.TimeLogEntry{
		entry("2024-03-01T09:00:00Z", models.CategoryProductive, 2, 0),
	}
	pomodoro[0].IsPomodoro = true

	plainResult := ComputeScore(plain, defaultHistory(), models.NewHolidaySet(), time.UTC, scoreNow)
	pomodoroResult := ComputeScore(pomodoro, defaultHistory(), models.NewHolidaySet(), time.UTC, scoreNow)

	require.NotNil(t, plainResult)
	require.NotNil(t, pomodoroResult)
	// 2h of 4h target = 50 -> 30 + 30 penalty-free; 3h effective = 75 -> 45 + 30.
	assert.Equal(t, 60.0, plainResult.Score)
	assert.Equal(t, 75.0, pomodoroResult.Score)
}

func TestComputeScore_RegularDayBounds(t *testing.T) {
	// Extreme inputs: overwhelming wasteful time cannot push a regular
	// day below 0, overwhelming productive time cannot push it above 100.
	worst := []models.TimeLogEntry{
		entry("2024-03-01T09:00:00Z", models.CategoryWasteful, 20, 0),
	}
	best := []models.TimeLogEntry{
		entry("2024-03-02T09:00:00Z", models.CategoryProductive, 20, 0),
		entry("2024-03-02T10:00:00Z", models.CategoryNeutral, 2, 0),
	}

	worstResult := ComputeScore(worst, defaultHistory(), models.NewHolidaySet(), time.UTC, scoreNow)
	bestResult := ComputeScore(best, defaultHistory(), models.NewHolidaySet(), time.UTC, scoreNow)

	require.NotNil(t, worstResult)
	require.NotNil(t, bestResult)
	assert.GreaterOrEqual(t, worstResult.Score, 0.0)
	assert.LessOrEqual(t, bestResult.Score, 100.0)
}

// A zero target denominator saturates its term instead of dividing by
// zero: productive and neutral contribute fully, the wasteful penalty
// eats its whole weight. 100*0.6 + 0*0.3 + 100*0.1 = 70.
func TestComputeScore_ZeroTargetsSaturate(t *testing.T) {
	history := models.NewTargetHistory()
	history.PutData([]models.DailyTargets{{
		ProductiveHours:  0,
		WastefulMaxHours: 0,
		NeutralMaxHours:  0,
		Timestamp:        "2024-01-01T00:00:00Z",
	}})
	entries := []models.TimeLogEntry{
		entry("2024-03-01T09:00:00Z", models.CategoryProductive, 1, 0),
	}

	result := ComputeScore(entries, history, models.NewHolidaySet(), time.UTC, scoreNow)

	require.NotNil(t, result)
	assert.Equal(t, 70.0, result.Score)
}

func TestComputeScore_HolidayZeroProductiveTarget(t *testing.T) {
	history := models.NewTargetHistory()
	history.PutData([]models.DailyTargets{{
		ProductiveHours:  0,
		WastefulMaxHours: 1,
		NeutralMaxHours:  2,
		Timestamp:        "2024-01-01T00:00:00Z",
	}})
	entries := []models.TimeLogEntry{
		entry("2024-03-01T09:00:00Z", models.CategoryProductive, 3, 0),
	}
	holidays := models.NewHolidaySet()
	holidays.Add("2024-03-01")

	result := ComputeScore(entries, history, holidays, time.UTC, scoreNow)

	require.NotNil(t, result)
	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, 0, result.TotalDays)
}

// Targets changed mid-history: each day is scored against the policy
// active on that day.
func TestComputeScore_UsesPerDayTargets(t *testing.T) {
	history := models.NewTargetHistory()
	history.PutData([]models.DailyTargets{
		{ProductiveHours: 2, WastefulMaxHours: 1, NeutralMaxHours: 2, Timestamp: "2024-01-01T00:00:00Z"},
		{ProductiveHours: 8, WastefulMaxHours: 1, NeutralMaxHours: 2, Timestamp: "2024-03-02T00:00:00Z"},
	})
	entries := []models.TimeLogEntry{
		entry("2024-03-01T09:00:00Z", models.CategoryProductive, 2, 0),
	}

	result := ComputeScore(entries, history, models.NewHolidaySet(), time.UTC, scoreNow)

	require.NotNil(t, result)
	// 2h fully meets the 2h target active on 2024-03-01: 60 + 30 + 0.
	assert.Equal(t, 90.0, result.Score)
}

func TestComputeScore_NilCollaborators(t *testing.T) {
	entries := []models.TimeLogEntry{
		entry("2024-03-01T09:00:00Z", models.CategoryProductive, 4, 0),
	}

	result := ComputeScore(entries, nil, nil, time.UTC, scoreNow)

	require.NotNil(t, result)
	assert.Equal(t, 90.0, result.Score)
}

func TestComputeScore_RoundsToTwoDecimals(t *testing.T) {
	entries := []models.TimeLogEntry{
		entry("2024-03-01T09:00:00Z", models.CategoryProductive, 1, 0),
		entry("2024-03-02T09:00:00Z", models.CategoryProductive, 2, 0),
	}

	result := ComputeScore(entries, defaultHistory(), models.NewHolidaySet(), time.UTC, scoreNow)

	require.NotNil(t, result)
	// Day scores 60 (recent) and 45: (60 + 45*0.9) / 1.9 = 52.894736...
	assert.Equal(t, 52.89, result.Score)
}
