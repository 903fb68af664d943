package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var targetsNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func seededHistory() *TargetHistory {
	th := NewTargetHistory()
	th.Append(DailyTargets{ProductiveHours: 4, WastefulMaxHours: 1, NeutralMaxHours: 2, Timestamp: "2024-01-01T00:00:00Z"})
	th.Append(DailyTargets{ProductiveHours: 6, WastefulMaxHours: 1, NeutralMaxHours: 2, Timestamp: "2024-02-01T00:00:00Z"})
	return th
}

func TestDefaultTargets(t *testing.T) {
	d := DefaultTargets()

	assert.Equal(t, 4.0, d.ProductiveHours)
	assert.Equal(t, 1.0, d.WastefulMaxHours)
	assert.Equal(t, 2.0, d.NeutralMaxHours)
	assert.True(t, d.Valid())
}

func TestNewTargetHistory_NeverEmpty(t *testing.T) {
	th := NewTargetHistory()

	require.Equal(t, 1, th.Len())
	assert.Equal(t, DefaultTargets(), th.List()[0])
}

func TestAsOf_PicksConfigActiveOnDay(t *testing.T) {
	th := seededHistory()

	assert.Equal(t, 4.0, th.AsOf("2024-01-15", time.UTC, targetsNow).ProductiveHours)
	assert.Equal(t, 6.0, th.AsOf("2024-02-15", time.UTC, targetsNow).ProductiveHours)
}

func TestAsOf_BeforeAllConfigsUsesEarliest(t *testing.T) {
	th := &TargetHistory{}
	th.PutData([]DailyTargets{
		{ProductiveHours: 4, WastefulMaxHours: 1, NeutralMaxHours: 2, Timestamp: "2024-01-01T00:00:00Z"},
		{ProductiveHours: 6, WastefulMaxHours: 1, NeutralMaxHours: 2, Timestamp: "2024-02-01T00:00:00Z"},
	})

	assert.Equal(t, 4.0, th.AsOf("2023-12-01", time.UTC, targetsNow).ProductiveHours)
}

func TestAsOf_FutureDayUsesNewest(t *testing.T) {
	th := seededHistory()

	assert.Equal(t, 6.0, th.AsOf("2024-06-01", time.UTC, targetsNow).ProductiveHours)
}

// A configuration created mid-day governs that whole day.
func TestAsOf_SameDayConfigApplies(t *testing.T) {
	th := NewTargetHistory()
	th.Append(DailyTargets{ProductiveHours: 8, WastefulMaxHours: 1, NeutralMaxHours: 2, Timestamp: "2024-02-10T15:30:00Z"})

	assert.Equal(t, 8.0, th.AsOf("2024-02-10", time.UTC, targetsNow).ProductiveHours)
	assert.Equal(t, 4.0, th.AsOf("2024-02-09", time.UTC, targetsNow).ProductiveHours)
}

func TestAsOf_MalformedDayFallsBackToNewest(t *testing.T) {
	th := seededHistory()

	assert.Equal(t, 6.0, th.AsOf("soon", time.UTC, targetsNow).ProductiveHours)
}

func TestPutData_DropsMalformed(t *testing.T) {
	th := NewTargetHistory()
	th.PutData([]DailyTargets{
		{ProductiveHours: -1, WastefulMaxHours: 1, NeutralMaxHours: 2, Timestamp: "2024-01-01T00:00:00Z"},
		{ProductiveHours: 5, WastefulMaxHours: 1, NeutralMaxHours: 2, Timestamp: "2024-01-02T00:00:00Z"},
		{ProductiveHours: 5, WastefulMaxHours: 1, NeutralMaxHours: 2, Timestamp: "not-a-time"},
	})

	require.Equal(t, 1, th.Len())
	assert.Equal(t, "2024-01-02T00:00:00Z", th.List()[0].Timestamp)
}

func TestPutData_EmptyReseedsDefault(t *testing.T) {
	th := seededHistory()
	th.PutData(nil)

	require.Equal(t, 1, th.Len())
	assert.Equal(t, DefaultTargets(), th.List()[0])
}

func TestList_ReturnsCopy(t *testing.T) {
	th := seededHistory()
	list := th.List()
	list[0].ProductiveHours = 99

	assert.NotEqual(t, 99.0, th.List()[0].ProductiveHours)
}
