package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"tod/internal/analytics"
	"tod/internal/models"
	"tod/internal/structures"
)

var (
	entryLog      = models.NewEntryStore()
	targetHistory = models.NewTargetHistory()
	holidaySet    = models.NewHolidaySet()

	savedActivities struct {
		sync.Mutex
		Data []models.SavedActivity
	}
)

type TimeLogServiceInterface interface {
	AddEntry(e models.TimeLogEntry) models.TimeLogEntry
	GetAllEntries() []models.TimeLogEntry
	GetDayEntries(day string) []models.TimeLogEntry
	DeleteEntries(ids []string) int
	ReplaceEntries(entries []models.TimeLogEntry)
	EntryCount() int

	AddTargets(t models.DailyTargets) models.DailyTargets
	GetTargetHistory() []models.DailyTargets
	TargetsAsOf(day string) models.DailyTargets

	AddHoliday(day string)
	RemoveHoliday(day string)
	GetHolidays() []string

	SaveActivity(a models.SavedActivity)
	GetSavedActivities() []models.SavedActivity

	DailyTotals() map[string]analytics.DayTotals
	TodayTotals() analytics.DayTotals
	Today() string
	ComputeScore() *analytics.Score
	WeekTrends() analytics.WeekSummary
	AllTimeTrends() *analytics.AllTimeSummary

	GetSnapshot() *models.Storage
	PutSnapshot(s *models.Storage)
}

// TimeLogService owns the in-memory stores and runs the analytics over
// snapshots of them. All bucketing happens in one configured location.
type TimeLogService struct {
	loc *time.Location
}

func NewTimeLogService(conf *structures.Config) (TimeLogServiceInterface, error) {
	loc := time.Local
	if tz := conf.Analytics.Timezone; tz != "" && tz != "Local" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid analytics timezone %q: %w", tz, err)
		}
		loc = parsed
	}

	entryLog = models.NewEntryStore()
	targetHistory = models.NewTargetHistory()
	holidaySet = models.NewHolidaySet()
	savedActivities.Lock()
	savedActivities.Data = make([]models.SavedActivity, 0)
	savedActivities.Unlock()

	return &TimeLogService{loc: loc}, nil
}

// AddEntry normalizes and completes the entry (ID, timestamp) before
// appending. The returned entry is what was stored.
func (s *TimeLogService) AddEntry(e models.TimeLogEntry) models.TimeLogEntry {
	e.Normalize()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp == "" {
		e.Timestamp = time.Now().In(s.loc).Format(time.RFC3339)
	}
	entryLog.Append(e)
	return e
}

func (s *TimeLogService) GetAllEntries() []models.TimeLogEntry {
	return entryLog.GetAll()
}

func (s *TimeLogService) GetDayEntries(day string) []models.TimeLogEntry {
	return analytics.FilterDay(entryLog.GetAll(), day, s.loc)
}

func (s *TimeLogService) DeleteEntries(ids []string) int {
	return entryLog.Delete(ids)
}

func (s *TimeLogService) ReplaceEntries(entries []models.TimeLogEntry) {
	entryLog.PutData(entries)
}

func (s *TimeLogService) EntryCount() int {
	return entryLog.Len()
}

func (s *TimeLogService) AddTargets(t models.DailyTargets) models.DailyTargets {
	if t.Timestamp == "" {
		t.Timestamp = time.Now().In(s.loc).Format(time.RFC3339)
	}
	targetHistory.Append(t)
	return t
}

func (s *TimeLogService) GetTargetHistory() []models.DailyTargets {
	return targetHistory.List()
}

func (s *TimeLogService) TargetsAsOf(day string) models.DailyTargets {
	return targetHistory.AsOf(day, s.loc, time.Now())
}

func (s *TimeLogService) AddHoliday(day string) {
	holidaySet.Add(day)
}

func (s *TimeLogService) RemoveHoliday(day string) {
	holidaySet.Remove(day)
}

func (s *TimeLogService) GetHolidays() []string {
	return holidaySet.List()
}

func (s *TimeLogService) SaveActivity(a models.SavedActivity) {
	savedActivities.Lock()
	defer savedActivities.Unlock()
	savedActivities.Data = append(savedActivities.Data, a)
}

func (s *TimeLogService) GetSavedActivities() []models.SavedActivity {
	savedActivities.Lock()
	defer savedActivities.Unlock()
	out := make([]models.SavedActivity, len(savedActivities.Data))
	copy(out, savedActivities.Data)
	return out
}

func (s *TimeLogService) DailyTotals() map[string]analytics.DayTotals {
	return analytics.GroupByDay(entryLog.GetAll(), s.loc)
}

// TodayTotals treats an absent day bucket as all-zero.
func (s *TimeLogService) TodayTotals() analytics.DayTotals {
	return s.DailyTotals()[s.Today()]
}

func (s *TimeLogService) Today() string {
	return analytics.DayKey(time.Now(), s.loc)
}

func (s *TimeLogService) ComputeScore() *analytics.Score {
	return analytics.ComputeScore(entryLog.GetAll(), targetHistory, holidaySet, s.loc, time.Now())
}

func (s *TimeLogService) WeekTrends() analytics.WeekSummary {
	return analytics.WeekTrends(entryLog.GetAll(), s.loc, time.Now())
}

func (s *TimeLogService) AllTimeTrends() *analytics.AllTimeSummary {
	return analytics.AllTimeTrends(entryLog.GetAll(), s.loc)
}

func (s *TimeLogService) GetSnapshot() *models.Storage {
	return &models.Storage{
		Version:         models.StorageVersion,
		Entries:         entryLog.GetAll(),
		Targets:         targetHistory.List(),
		Holidays:        holidaySet.List(),
		SavedActivities: s.GetSavedActivities(),
	}
}

func (s *TimeLogService) PutSnapshot(snap *models.Storage) {
	if snap == nil {
		return
	}
	entryLog.PutData(snap.Entries)
	targetHistory.PutData(snap.Targets)
	holidaySet.PutData(snap.Holidays)
	savedActivities.Lock()
	savedActivities.Data = append(savedActivities.Data[:0], snap.SavedActivities...)
	savedActivities.Unlock()
}
